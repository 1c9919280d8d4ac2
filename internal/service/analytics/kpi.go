package analytics

import (
	"fmt"
	"strings"
	"time"

	"github.com/atlashr/pointage-backend-go/internal/domain/absence"
	"github.com/atlashr/pointage-backend-go/internal/domain/analytics"
	"github.com/atlashr/pointage-backend-go/internal/domain/employee"
	"github.com/atlashr/pointage-backend-go/internal/pkg/holiday"
	scheduleresolver "github.com/atlashr/pointage-backend-go/internal/service/schedule"
)

// MonthlyKPI reduces one employee's day rollups over one month.
// absences must already be scoped to the employee (any month is fine;
// only rows matching the target month count).
func (e *Engine) MonthlyKPI(
	emp employee.Employee,
	year int,
	month time.Month,
	absences []absence.Absence,
	autoDeriveAbsence bool,
	countAbsenceOnHoliday bool,
) analytics.MonthlyKPI {
	monthPrefix := fmt.Sprintf("%04d-%02d", year, int(month))

	kpi := analytics.MonthlyKPI{
		Matricule:  emp.Matricule,
		Month:      monthPrefix,
		Name:       emp.FullName(),
		Department: emp.Department,
		Status:     string(emp.Status),
	}

	// An employee with no trace in this month would otherwise read as
	// fully absent; without autoDeriveAbsence that is noise from an
	// incomplete data slice, so return the zero KPI as-is.
	hasAbsences := false
	for _, a := range absences {
		if strings.HasPrefix(a.Date, monthPrefix) {
			hasAbsences = true
			break
		}
	}
	if !hasPunchInMonth(emp, monthPrefix) && !hasAbsences && !autoDeriveAbsence {
		return kpi
	}

	sched := scheduleresolver.Resolve(emp, e.config)

	absenceByDate := make(map[string]*absence.Absence, len(absences))
	for i := range absences {
		absenceByDate[absences[i].Date] = &absences[i]
	}

	var (
		totalHours float64
		delaySum   float64
		delayCount int
	)

	daysInMonth := time.Date(year, month+1, 0, 0, 0, 0, 0, holiday.Location()).Day()
	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, holiday.Location())
		rollup := e.DayRollup(emp, date, sched, absenceByDate[date.Format("2006-01-02")], countAbsenceOnHoliday)

		kpi.DaysWorked += rollup.Credit
		totalHours += rollup.Hours
		if rollup.WorkedHoliday {
			kpi.WorkedHolidays++
		}
		if rollup.IsAbsentFromFile {
			kpi.DaysAbsent++
		}
		if rollup.DelayMin != nil && *rollup.DelayMin > 0 {
			delaySum += float64(*rollup.DelayMin)
			delayCount++
		}
		switch rollup.Status {
		case analytics.StatusLate:
			kpi.LateDays++
		case analytics.StatusMinorDelay:
			kpi.MinorDays++
		case analytics.StatusOnTime:
			kpi.OnTimeDays++
		}
	}

	if autoDeriveAbsence {
		derived := e.policy.RequiredDaysPerMonth - kpi.DaysWorked
		if derived < 0 {
			derived = 0
		}
		if derived > kpi.DaysAbsent {
			kpi.DaysAbsent = derived
		}
	}

	kpi.DeltaDays = kpi.DaysWorked - e.policy.RequiredDaysPerMonth
	kpi.TotalHours = round1(totalHours)
	if delayCount > 0 {
		kpi.AvgDelayMin = round1(delaySum / float64(delayCount))
	}
	return kpi
}
