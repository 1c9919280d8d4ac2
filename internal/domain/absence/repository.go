package absence

import "context"

// AbsenceRepository defines data access for absence records. The
// one-FILE-one-MANUAL-per-(matricule,date) invariant is enforced here
// through Upsert; callers never insert blindly.
type AbsenceRepository interface {
	// ListForMonth retrieves absences for a year+month, optionally
	// scoped to one employee (empty matricule means all).
	ListForMonth(ctx context.Context, year int, month int, matricule string) ([]Absence, error)

	// ListForDate retrieves absences for one calendar date.
	ListForDate(ctx context.Context, date string) ([]Absence, error)

	// GetByID retrieves one absence record.
	GetByID(ctx context.Context, id string) (Absence, error)

	// Upsert inserts the record, replacing any existing record with the
	// same (matricule, date, source).
	Upsert(ctx context.Context, a Absence) (Absence, error)

	// Update modifies reason code, date and note of an existing record.
	Update(ctx context.Context, a Absence) error

	// Delete removes an absence record by ID.
	Delete(ctx context.Context, id string) error

	// ListTypes returns the registered custom absence types.
	ListTypes(ctx context.Context) ([]AbsenceType, error)

	// CreateType registers a new custom absence type.
	CreateType(ctx context.Context, t AbsenceType) (AbsenceType, error)
}
