package absence

import (
	"github.com/atlashr/pointage-backend-go/internal/pkg/validator"
)

type CreateAbsenceRequest struct {
	Matricule  string  `json:"matricule"`
	Date       string  `json:"date"`
	ReasonCode string  `json:"reason_code"`
	Note       *string `json:"note,omitempty"`
}

func (r *CreateAbsenceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Matricule) {
		errs = append(errs, validator.ValidationError{
			Field:   "matricule",
			Message: "matricule is required",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.ReasonCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason_code",
			Message: "reason_code is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateAbsenceRequest struct {
	ID         string  `json:"-"`
	Date       string  `json:"date"`
	ReasonCode string  `json:"reason_code"`
	Note       *string `json:"note,omitempty"`
}

func (r *UpdateAbsenceRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if validator.IsEmpty(r.ReasonCode) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason_code",
			Message: "reason_code is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ImportRow is one normalized row from an absence file upload. Header
// mapping from the raw file is done by the import layer; this carries
// the already-extracted cell values.
type ImportRow struct {
	Matricule string `json:"matricule"`
	Date      string `json:"date"`
	Reason    string `json:"reason"`
	Note      string `json:"note,omitempty"`
}

type ImportRequest struct {
	Rows []ImportRow `json:"rows"`
}

type ImportResult struct {
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
	UploadID string `json:"upload_id"`
}

type CreateTypeRequest struct {
	Label       string  `json:"label"`
	Description *string `json:"description,omitempty"`
	Category    string  `json:"category"`
}

func (r *CreateTypeRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Label) {
		errs = append(errs, validator.ValidationError{
			Field:   "label",
			Message: "label is required",
		})
	}

	switch Category(r.Category) {
	case CategoryJustified, CategoryUnjustified, CategoryWorkRelated, CategorySpecial:
	default:
		errs = append(errs, validator.ValidationError{
			Field:   "category",
			Message: "category must be one of JUSTIFIED, UNJUSTIFIED, WORK_RELATED, SPECIAL",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AbsenceResponse struct {
	ID         string  `json:"id"`
	Matricule  string  `json:"matricule"`
	Date       string  `json:"date"`
	ReasonCode string  `json:"reason_code"`
	Source     string  `json:"source"`
	Note       *string `json:"note,omitempty"`
	UploadID   *string `json:"upload_id,omitempty"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

type AbsenceTypeResponse struct {
	ReasonCode  string  `json:"reason_code"`
	Label       string  `json:"label"`
	Description *string `json:"description,omitempty"`
	Category    string  `json:"category"`
}

// VersionInfo is the monotonically increasing epoch of the absence
// data set. Callers cache derived analytics keyed on it.
type VersionInfo struct {
	Version      uint64 `json:"version"`
	RecomputedAt string `json:"recomputed_at"`
}
