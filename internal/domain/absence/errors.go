package absence

import "errors"

var (
	ErrAbsenceNotFound   = errors.New("absence record not found")
	ErrAbsenceOnHoliday  = errors.New("cannot place an absence on a public holiday")
	ErrInvalidReasonCode = errors.New("unknown absence reason code")

	ErrTypeLabelRequired = errors.New("absence type label is required")
	ErrTypeLabelExists   = errors.New("an absence type with this label already exists")
	ErrInvalidCategory   = errors.New("invalid absence category")
)
