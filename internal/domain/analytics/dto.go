package analytics

import (
	"time"

	"github.com/atlashr/pointage-backend-go/internal/domain/employee"
	"github.com/atlashr/pointage-backend-go/internal/pkg/validator"
)

// Filters selects which employees and which month the monthly
// aggregation covers.
type Filters struct {
	Year                 int
	Month                time.Month
	Departments          []string
	Status               []employee.EmploymentStatus
	SearchText           string
	AutoDeriveAbsence    bool
	CountAbsenceOnHoliday bool
}

func (f *Filters) Validate() error {
	var errs validator.ValidationErrors

	if f.Year < 2000 || f.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}

	if f.Month < time.January || f.Month > time.December {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type GroupKey string

const (
	GroupByDepartment GroupKey = "department"
	GroupByRole       GroupKey = "role"
)

// MonthlyAnalytics is the full aggregation result for one month.
type MonthlyAnalytics struct {
	EmployeeKPIs   []MonthlyKPI    `json:"employee_kpis"`
	CompanyKPIs    CompanyKPIs     `json:"company_kpis"`
	DepartmentKPIs []DepartmentKPI `json:"department_kpis"`
}

type RollupRequest struct {
	Matricule             string
	Date                  string
	CountAbsenceOnHoliday bool
}

func (r *RollupRequest) Validate() error {
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

	if len(errs) > 0 {
		return errs
	}

	return nil
}
