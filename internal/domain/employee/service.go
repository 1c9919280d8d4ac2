package employee

import "context"

// EmployeeService defines read-only business logic over the employee
// collection.
type EmployeeService interface {
	// ListEmployees retrieves employees with filters and pagination.
	ListEmployees(ctx context.Context, filter ListFilter) (ListEmployeesResponse, error)

	// GetEmployee retrieves a single employee with punches.
	GetEmployee(ctx context.Context, matricule string) (EmployeeDetailResponse, error)

	// ListDepartments returns the distinct department names.
	ListDepartments(ctx context.Context) ([]string, error)
}
