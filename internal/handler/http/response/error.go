package response

import (
	"errors"
	"net/http"

	"github.com/atlashr/pointage-backend-go/internal/domain/absence"
	"github.com/atlashr/pointage-backend-go/internal/domain/employee"
	"github.com/atlashr/pointage-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Absence domain errors
	case errors.Is(err, absence.ErrAbsenceNotFound):
		NotFound(w, "Absence record not found")
	case errors.Is(err, absence.ErrAbsenceOnHoliday):
		BadRequest(w, "Cannot place an absence on a public holiday", nil)
	case errors.Is(err, absence.ErrInvalidReasonCode):
		BadRequest(w, "Unknown absence reason code", nil)
	case errors.Is(err, absence.ErrTypeLabelRequired):
		BadRequest(w, "Absence type label is required", nil)
	case errors.Is(err, absence.ErrInvalidCategory):
		BadRequest(w, "Invalid absence category", nil)
	case errors.Is(err, absence.ErrTypeLabelExists):
		Conflict(w, "An absence type with this label already exists")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
