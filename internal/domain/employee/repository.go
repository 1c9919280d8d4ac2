package employee

import "context"

// EmployeeRepository defines read access to the employee collection.
// Employees are created and updated by the import/merge pipeline; the
// analytics engine only ever reads them.
type EmployeeRepository interface {
	// GetByMatricule retrieves one employee with all of their punches.
	GetByMatricule(ctx context.Context, matricule string) (Employee, error)

	// List retrieves employees matching the filter, without punches,
	// with pagination.
	List(ctx context.Context, filter ListFilter) ([]Employee, int64, error)

	// ListWithPunches retrieves every employee together with their
	// punches for the given month. Used to feed the analytics engine.
	ListWithPunches(ctx context.Context, year int, month int) ([]Employee, error)

	// ListWithPunchesForDate retrieves every employee together with
	// their punches for a single calendar date. Used by daily alerts.
	ListWithPunchesForDate(ctx context.Context, date string) ([]Employee, error)

	// Departments returns the distinct department names, sorted.
	Departments(ctx context.Context) ([]string, error)
}
