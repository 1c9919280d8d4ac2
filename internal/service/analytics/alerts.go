package analytics

import (
	"sort"
	"time"

	"github.com/atlashr/pointage-backend-go/internal/domain/absence"
	"github.com/atlashr/pointage-backend-go/internal/domain/analytics"
	"github.com/atlashr/pointage-backend-go/internal/domain/employee"
	"github.com/atlashr/pointage-backend-go/internal/pkg/holiday"
	scheduleresolver "github.com/atlashr/pointage-backend-go/internal/service/schedule"
)

// DailyAlerts computes the categorized alert groups for one date.
// Alerts are informational, so recorded absences falling on holidays
// are never surfaced (countAbsenceOnHoliday is forced off here).
func (e *Engine) DailyAlerts(
	employees []employee.Employee,
	date time.Time,
	absencesForDate []absence.Absence,
	groupBy analytics.GroupKey,
) analytics.DailyAlertsData {
	dateYMD := date.In(holiday.Location()).Format("2006-01-02")

	absenceByMatricule := make(map[string]*absence.Absence, len(absencesForDate))
	for i := range absencesForDate {
		if absencesForDate[i].Date == dateYMD {
			absenceByMatricule[absencesForDate[i].Matricule] = &absencesForDate[i]
		}
	}

	var items []analytics.AlertItem
	for _, emp := range employees {
		sched := scheduleresolver.Resolve(emp, e.config)
		rollup := e.DayRollup(emp, date, sched, absenceByMatricule[emp.Matricule], false)

		var reasonTag analytics.AlertType
		switch rollup.Status {
		case analytics.StatusLate:
			reasonTag = analytics.AlertLate
		case analytics.StatusMinorDelay:
			reasonTag = analytics.AlertMinor
		case analytics.StatusAbsent:
			reasonTag = analytics.AlertAbsent
		case analytics.StatusWorkedOnHoliday:
			reasonTag = analytics.AlertHolidayWorked
		case analytics.StatusHoliday:
			reasonTag = analytics.AlertHolidayNoAtt
		default:
			continue
		}

		// The rollup already demotes holiday absences, but keep the
		// guard: an Absent alert on a holiday is always wrong.
		if reasonTag == analytics.AlertAbsent && rollup.IsHoliday {
			continue
		}

		item := analytics.AlertItem{
			Matricule:  emp.Matricule,
			Name:       emp.FullName(),
			Department: emp.Department,
			DelayMin:   rollup.DelayMin,
			Hours:      rollup.Hours,
			ReasonTag:  reasonTag,
		}
		if rollup.AbsenceInfo != nil {
			item.Note = rollup.AbsenceInfo.Note
		}
		items = append(items, item)
	}

	// Employees carry no role attribute, so the role grouping key
	// degrades to department.
	return analytics.DailyAlertsData{
		Date:        dateYMD,
		Groups:      groupAlerts(items),
		TotalAlerts: len(items),
	}
}

func groupAlerts(items []analytics.AlertItem) []analytics.AlertGroup {
	byKey := make(map[string]*analytics.AlertGroup)
	for _, item := range items {
		key := item.Department
		if key == "" {
			key = "Unknown"
		}
		group, ok := byKey[key]
		if !ok {
			group = &analytics.AlertGroup{Key: key}
			byKey[key] = group
		}
		group.Items = append(group.Items, item)
		switch item.ReasonTag {
		case analytics.AlertLate:
			group.Totals.Late++
		case analytics.AlertMinor:
			group.Totals.Minor++
		case analytics.AlertAbsent:
			group.Totals.Absent++
		case analytics.AlertHolidayWorked:
			group.Totals.HolidayWorked++
		case analytics.AlertHolidayNoAtt:
			group.Totals.HolidayNoAtt++
		}
	}

	groups := make([]analytics.AlertGroup, 0, len(byKey))
	for _, g := range byKey {
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Key < groups[j].Key })
	return groups
}
