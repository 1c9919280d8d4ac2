package postgresql

import (
	"context"
	"testing"
	"time"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlashr/pointage-backend-go/internal/domain/employee"
)

func newEmployeeMock(t *testing.T) (pgxmock.PgxPoolIface, employee.EmployeeRepository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return mock, NewEmployeeRepository(mock)
}

func joinedColumns() []string {
	return []string{
		"matricule", "first_name", "last_name", "department", "status",
		"punch_datetime", "direction", "note", "raw_hours", "raw_lateness", "raw_absence",
	}
}

func TestEmployeeRepository_GetByMatricule(t *testing.T) {
	t.Parallel()
	mock, repo := newEmployeeMock(t)

	now := time.Now()
	mock.ExpectQuery(`SELECT (.+) FROM employees`).
		WithArgs("100").
		WillReturnRows(pgxmock.NewRows([]string{
			"matricule", "first_name", "last_name", "department", "status", "created_at", "updated_at",
		}).AddRow("100", "Karim", "El Amrani", "Sales", "Active", now, now))

	direction := "IN"
	mock.ExpectQuery(`SELECT (.+) FROM punches`).
		WithArgs("100").
		WillReturnRows(pgxmock.NewRows([]string{
			"matricule", "punch_datetime", "direction", "note", "raw_hours", "raw_lateness", "raw_absence",
		}).
			AddRow("100", "2025-06-11 09:00:00", direction, (*string)(nil), (*float64)(nil), (*float64)(nil), (*string)(nil)).
			AddRow("100", "2025-06-11 18:00:00", "OUT", (*string)(nil), (*float64)(nil), (*float64)(nil), (*string)(nil)))

	emp, err := repo.GetByMatricule(context.Background(), "100")

	require.NoError(t, err)
	assert.Equal(t, "Karim El Amrani", emp.FullName())
	require.Len(t, emp.Punches, 2)
	assert.Equal(t, employee.PunchIn, emp.Punches[0].Direction)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_GetByMatricule_NotFound(t *testing.T) {
	t.Parallel()
	mock, repo := newEmployeeMock(t)

	mock.ExpectQuery(`SELECT (.+) FROM employees`).
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows([]string{
			"matricule", "first_name", "last_name", "department", "status", "created_at", "updated_at",
		}))

	_, err := repo.GetByMatricule(context.Background(), "missing")

	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_ListWithPunchesForDate_GroupsRows(t *testing.T) {
	t.Parallel()
	mock, repo := newEmployeeMock(t)

	in := "IN"
	out := "OUT"
	mock.ExpectQuery(`LEFT JOIN punches`).
		WithArgs("2025-06-11").
		WillReturnRows(pgxmock.NewRows(joinedColumns()).
			AddRow("100", "Karim", "El Amrani", "Sales", "Active",
				ptr("2025-06-11 09:00:00"), &in, (*string)(nil), (*float64)(nil), (*float64)(nil), (*string)(nil)).
			AddRow("100", "Karim", "El Amrani", "Sales", "Active",
				ptr("2025-06-11 18:00:00"), &out, (*string)(nil), (*float64)(nil), (*float64)(nil), (*string)(nil)).
			AddRow("200", "Sara", "Alaoui", "IT", "Active",
				(*string)(nil), (*string)(nil), (*string)(nil), (*float64)(nil), (*float64)(nil), (*string)(nil)))

	employees, err := repo.ListWithPunchesForDate(context.Background(), "2025-06-11")

	require.NoError(t, err)
	require.Len(t, employees, 2)
	assert.Len(t, employees[0].Punches, 2)
	// Employees without punches on the date still come back, with an
	// empty punch list.
	assert.Equal(t, "200", employees[1].Matricule)
	assert.Empty(t, employees[1].Punches)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmployeeRepository_Departments(t *testing.T) {
	t.Parallel()
	mock, repo := newEmployeeMock(t)

	mock.ExpectQuery(`SELECT DISTINCT department`).
		WillReturnRows(pgxmock.NewRows([]string{"department"}).
			AddRow("IT").
			AddRow("Production").
			AddRow("Sales"))

	departments, err := repo.Departments(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"IT", "Production", "Sales"}, departments)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func ptr(s string) *string { return &s }
