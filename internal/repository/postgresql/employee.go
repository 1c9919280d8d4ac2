package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/atlashr/pointage-backend-go/internal/domain/employee"
	"github.com/atlashr/pointage-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db database.Querier
}

func NewEmployeeRepository(db database.Querier) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// GetByMatricule implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) GetByMatricule(ctx context.Context, matricule string) (employee.Employee, error) {
	query := `
		SELECT matricule, first_name, last_name, department, status, created_at, updated_at
		FROM employees
		WHERE matricule = $1
	`

	var emp employee.Employee
	err := e.db.QueryRow(ctx, query, matricule).Scan(
		&emp.Matricule, &emp.FirstName, &emp.LastName, &emp.Department,
		&emp.Status, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee %s: %w", matricule, err)
	}

	punchQuery := `
		SELECT matricule, punch_datetime, direction, note, raw_hours, raw_lateness, raw_absence
		FROM punches
		WHERE matricule = $1
		ORDER BY punch_date NULLS LAST, punch_datetime
	`

	rows, err := e.db.Query(ctx, punchQuery, matricule)
	if err != nil {
		return employee.Employee{}, fmt.Errorf("failed to get punches for employee %s: %w", matricule, err)
	}
	defer rows.Close()

	for rows.Next() {
		var p employee.Punch
		err := rows.Scan(&p.Matricule, &p.PunchDateTime, &p.Direction, &p.Note, &p.RawHours, &p.RawLateness, &p.RawAbsence)
		if err != nil {
			return employee.Employee{}, err
		}
		emp.Punches = append(emp.Punches, p)
	}
	if err = rows.Err(); err != nil {
		return employee.Employee{}, err
	}

	return emp, nil
}

// List implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) List(ctx context.Context, filter employee.ListFilter) ([]employee.Employee, int64, error) {
	var conditions []string
	var args []interface{}

	if len(filter.Departments) > 0 {
		args = append(args, filter.Departments)
		conditions = append(conditions, fmt.Sprintf("department = ANY($%d)", len(args)))
	}
	if len(filter.Status) > 0 {
		statuses := make([]string, 0, len(filter.Status))
		for _, s := range filter.Status {
			statuses = append(statuses, string(s))
		}
		args = append(args, statuses)
		conditions = append(conditions, fmt.Sprintf("status = ANY($%d)", len(args)))
	}
	if filter.Search != "" {
		args = append(args, "%"+filter.Search+"%", filter.Search+"%")
		conditions = append(conditions, fmt.Sprintf(
			"((first_name || ' ' || last_name) ILIKE $%d OR matricule ILIKE $%d)", len(args)-1, len(args)))
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := `SELECT COUNT(*) FROM employees ` + where
	var total int64
	if err := e.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := fmt.Sprintf(`
		SELECT e.matricule, e.first_name, e.last_name, e.department, e.status,
			(SELECT COUNT(*) FROM punches p WHERE p.matricule = e.matricule),
			e.created_at, e.updated_at
		FROM employees e
		%s
		ORDER BY e.matricule
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args))

	rows, err := e.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var emp employee.Employee
		var punchCount int
		err := rows.Scan(
			&emp.Matricule, &emp.FirstName, &emp.LastName, &emp.Department,
			&emp.Status, &punchCount, &emp.CreatedAt, &emp.UpdatedAt,
		)
		if err != nil {
			return nil, 0, err
		}
		// The list view only needs the count; expose it as that many
		// empty punches so len() works on the mapping side.
		emp.Punches = make([]employee.Punch, punchCount)
		employees = append(employees, emp)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// ListWithPunches implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListWithPunches(ctx context.Context, year int, month int) ([]employee.Employee, error) {
	query := `
		SELECT e.matricule, e.first_name, e.last_name, e.department, e.status,
			p.punch_datetime, p.direction, p.note, p.raw_hours, p.raw_lateness, p.raw_absence
		FROM employees e
		LEFT JOIN punches p
			ON p.matricule = e.matricule
			AND p.punch_date >= make_date($1, $2, 1)
			AND p.punch_date < make_date($1, $2, 1) + INTERVAL '1 month'
		ORDER BY e.matricule, p.punch_date, p.punch_datetime
	`

	rows, err := e.db.Query(ctx, query, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees with punches: %w", err)
	}
	defer rows.Close()

	return collectEmployeesWithPunches(rows)
}

// ListWithPunchesForDate implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) ListWithPunchesForDate(ctx context.Context, date string) ([]employee.Employee, error) {
	query := `
		SELECT e.matricule, e.first_name, e.last_name, e.department, e.status,
			p.punch_datetime, p.direction, p.note, p.raw_hours, p.raw_lateness, p.raw_absence
		FROM employees e
		LEFT JOIN punches p
			ON p.matricule = e.matricule AND p.punch_date = $1::date
		ORDER BY e.matricule, p.punch_datetime
	`

	rows, err := e.db.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees with punches for %s: %w", date, err)
	}
	defer rows.Close()

	return collectEmployeesWithPunches(rows)
}

// Departments implements employee.EmployeeRepository.
func (e *employeeRepositoryImpl) Departments(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT department
		FROM employees
		WHERE department <> ''
		ORDER BY department
	`

	rows, err := e.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	var departments []string
	for rows.Next() {
		var d string
		if err := rows.Scan(&d); err != nil {
			return nil, err
		}
		departments = append(departments, d)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

// collectEmployeesWithPunches folds employee LEFT JOIN punches rows
// into one Employee per matricule. Punch columns are NULL for
// employees without punches in the window.
func collectEmployeesWithPunches(rows pgx.Rows) ([]employee.Employee, error) {
	var employees []employee.Employee
	index := make(map[string]int)

	for rows.Next() {
		var emp employee.Employee
		var punchDateTime, direction *string
		var note, rawAbsence *string
		var rawHours, rawLateness *float64

		err := rows.Scan(
			&emp.Matricule, &emp.FirstName, &emp.LastName, &emp.Department, &emp.Status,
			&punchDateTime, &direction, &note, &rawHours, &rawLateness, &rawAbsence,
		)
		if err != nil {
			return nil, err
		}

		i, ok := index[emp.Matricule]
		if !ok {
			i = len(employees)
			index[emp.Matricule] = i
			employees = append(employees, emp)
		}

		if punchDateTime != nil {
			p := employee.Punch{
				Matricule:     emp.Matricule,
				PunchDateTime: *punchDateTime,
				Note:          note,
				RawHours:      rawHours,
				RawLateness:   rawLateness,
				RawAbsence:    rawAbsence,
			}
			if direction != nil {
				p.Direction = employee.PunchDirection(*direction)
			}
			employees[i].Punches = append(employees[i].Punches, p)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}
