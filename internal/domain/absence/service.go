package absence

import "context"

// AbsenceService defines business logic for absence records. All writes
// bump the absence data version and refuse dates that fall on a public
// holiday; file and manual records are upserted independently per
// (matricule, date).
type AbsenceService interface {
	// ListAbsences retrieves absences for a year+month, optionally
	// scoped to one employee.
	ListAbsences(ctx context.Context, year int, month int, matricule string) ([]AbsenceResponse, error)

	// AddAbsence records a MANUAL absence, replacing any existing
	// manual record for the same employee and date.
	AddAbsence(ctx context.Context, req CreateAbsenceRequest) (AbsenceResponse, error)

	// UpdateAbsence modifies an existing absence record.
	UpdateAbsence(ctx context.Context, req UpdateAbsenceRequest) (AbsenceResponse, error)

	// DeleteAbsence removes an absence record.
	DeleteAbsence(ctx context.Context, id string) error

	// ImportFromFile upserts FILE-sourced absences from normalized
	// upload rows. Rows with unknown reason codes, malformed dates or
	// holiday dates are skipped, not rejected.
	ImportFromFile(ctx context.Context, rows []ImportRow) (ImportResult, error)

	// Version returns the current absence data epoch.
	Version() VersionInfo

	// ListTypes returns built-in and custom absence types.
	ListTypes(ctx context.Context) ([]AbsenceTypeResponse, error)

	// AddType registers a custom absence type.
	AddType(ctx context.Context, req CreateTypeRequest) (AbsenceTypeResponse, error)
}
