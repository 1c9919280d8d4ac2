package absence

import (
	"time"
)

type Source string

const (
	SourceFile   Source = "FILE"
	SourceManual Source = "MANUAL"
)

// Absence is a recorded non-worked day for one employee. At most one
// FILE-sourced and one MANUAL-sourced record may exist per
// (matricule, date) pair; writes are upserts keyed on that triple.
type Absence struct {
	ID         string
	Matricule  string
	Date       string // YYYY-MM-DD
	ReasonCode string
	Source     Source
	Note       *string
	UploadID   *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Built-in reason code vocabulary. Custom codes are added at runtime
// through the absence-type registry.
const (
	ReasonAbsent = "ABSENT"
	ReasonSick   = "SICK"
	ReasonLeave  = "LEAVE"
	ReasonUnpaid = "UNPAID"
)

type Category string

const (
	CategoryJustified   Category = "JUSTIFIED"
	CategoryUnjustified Category = "UNJUSTIFIED"
	CategoryWorkRelated Category = "WORK_RELATED"
	CategorySpecial     Category = "SPECIAL"
)

// AbsenceType is a runtime-registered reason code with a display label.
type AbsenceType struct {
	ReasonCode  string
	Label       string
	Description *string
	Category    Category
	CreatedAt   time.Time
}
