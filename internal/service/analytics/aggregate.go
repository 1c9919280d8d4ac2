package analytics

import (
	"sort"
	"strings"

	"github.com/atlashr/pointage-backend-go/internal/domain/absence"
	"github.com/atlashr/pointage-backend-go/internal/domain/analytics"
	"github.com/atlashr/pointage-backend-go/internal/domain/employee"
	"github.com/atlashr/pointage-backend-go/internal/pkg/textfold"
	"github.com/atlashr/pointage-backend-go/internal/pkg/validator"
)

// Aggregate computes one MonthlyKPI per filtered employee and reduces
// them into company and per-department totals.
func (e *Engine) Aggregate(
	employees []employee.Employee,
	filters analytics.Filters,
	absencesForPeriod []absence.Absence,
) analytics.MonthlyAnalytics {
	var filtered []employee.Employee
	for _, emp := range employees {
		if len(filters.Departments) > 0 && !validator.IsInSlice(emp.Department, filters.Departments) {
			continue
		}
		if len(filters.Status) > 0 && !statusIn(emp.Status, filters.Status) {
			continue
		}
		filtered = append(filtered, emp)
	}

	absencesByMatricule := make(map[string][]absence.Absence)
	for _, a := range absencesForPeriod {
		absencesByMatricule[a.Matricule] = append(absencesByMatricule[a.Matricule], a)
	}

	kpis := make([]analytics.MonthlyKPI, 0, len(filtered))
	for _, emp := range filtered {
		kpis = append(kpis, e.MonthlyKPI(
			emp,
			filters.Year,
			filters.Month,
			absencesByMatricule[emp.Matricule],
			filters.AutoDeriveAbsence,
			filters.CountAbsenceOnHoliday,
		))
	}

	if filters.SearchText != "" {
		needle := textfold.Fold(filters.SearchText)
		matched := kpis[:0]
		for _, kpi := range kpis {
			if strings.HasPrefix(strings.ToLower(kpi.Matricule), needle) ||
				strings.Contains(textfold.Fold(kpi.Name), needle) {
				matched = append(matched, kpi)
			}
		}
		kpis = matched
	}

	return analytics.MonthlyAnalytics{
		EmployeeKPIs:   kpis,
		CompanyKPIs:    reduceCompany(kpis),
		DepartmentKPIs: reduceDepartments(kpis),
	}
}

func statusIn(status employee.EmploymentStatus, set []employee.EmploymentStatus) bool {
	for _, s := range set {
		if s == status {
			return true
		}
	}
	return false
}

// reduceCompany sums the employee KPIs. The delay average only counts
// employees whose own average is nonzero, mirroring the per-employee
// rule that undetected delays are unknown rather than zero.
func reduceCompany(kpis []analytics.MonthlyKPI) analytics.CompanyKPIs {
	var totals analytics.CompanyKPIs
	var delaySum float64
	var delayCount int
	for _, kpi := range kpis {
		totals.DaysWorked += kpi.DaysWorked
		totals.DaysAbsent += kpi.DaysAbsent
		totals.LateDays += kpi.LateDays
		totals.WorkedHolidays += kpi.WorkedHolidays
		if kpi.AvgDelayMin > 0 {
			delaySum += kpi.AvgDelayMin
			delayCount++
		}
	}
	if delayCount > 0 {
		totals.AvgDelay = round1(delaySum / float64(delayCount))
	}
	return totals
}

func reduceDepartments(kpis []analytics.MonthlyKPI) []analytics.DepartmentKPI {
	type deptAcc struct {
		kpi        analytics.DepartmentKPI
		delaySum   float64
		delayCount int
	}
	byDept := make(map[string]*deptAcc)
	for _, kpi := range kpis {
		dept := kpi.Department
		if dept == "" {
			dept = "Unknown"
		}
		acc, ok := byDept[dept]
		if !ok {
			acc = &deptAcc{kpi: analytics.DepartmentKPI{Department: dept}}
			byDept[dept] = acc
		}
		acc.kpi.Employees++
		acc.kpi.DaysWorked += kpi.DaysWorked
		acc.kpi.DaysAbsent += kpi.DaysAbsent
		acc.kpi.LateDays += kpi.LateDays
		acc.kpi.WorkedHolidays += kpi.WorkedHolidays
		if kpi.AvgDelayMin > 0 {
			acc.delaySum += kpi.AvgDelayMin
			acc.delayCount++
		}
	}

	result := make([]analytics.DepartmentKPI, 0, len(byDept))
	for _, acc := range byDept {
		if acc.delayCount > 0 {
			acc.kpi.AvgDelay = round1(acc.delaySum / float64(acc.delayCount))
		}
		result = append(result, acc.kpi)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Department < result[j].Department })
	return result
}
