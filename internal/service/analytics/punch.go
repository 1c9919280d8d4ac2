package analytics

import (
	"sort"
	"strconv"
	"time"

	"github.com/atlashr/pointage-backend-go/internal/domain/employee"
	"github.com/atlashr/pointage-backend-go/internal/pkg/holiday"
)

// excelEpochDays is the Excel serial value of 1970-01-01; serial
// timestamps below it cannot be punches and are treated as malformed.
const excelEpochDays = 25569

var punchLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parsePunchTime decodes the raw punch timestamp. Attendance exports
// carry either ISO-ish datetimes or Excel day serials; anything else is
// dropped by returning false.
func parsePunchTime(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, false
	}

	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		if serial <= excelEpochDays {
			return time.Time{}, false
		}
		// Whole days only: the time fraction in absence exports is
		// noise from the spreadsheet conversion.
		days := int64(serial) - excelEpochDays
		return time.Unix(days*86400, 0).UTC(), true
	}

	for _, layout := range punchLayouts {
		if t, err := time.ParseInLocation(layout, raw, holiday.Location()); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

type timedPunch struct {
	employee.Punch
	at time.Time
}

// punchesOn returns emp's parseable punches whose local calendar date
// equals dateYMD, sorted ascending.
func punchesOn(emp employee.Employee, dateYMD string) []timedPunch {
	var selected []timedPunch
	for _, p := range emp.Punches {
		at, ok := parsePunchTime(p.PunchDateTime)
		if !ok {
			continue
		}
		if at.In(holiday.Location()).Format("2006-01-02") != dateYMD {
			continue
		}
		selected = append(selected, timedPunch{Punch: p, at: at})
	}
	sort.Slice(selected, func(i, j int) bool { return selected[i].at.Before(selected[j].at) })
	return selected
}

// hasPunchInMonth reports whether any parseable punch of emp falls in
// the month given by its "YYYY-MM" prefix.
func hasPunchInMonth(emp employee.Employee, monthPrefix string) bool {
	for _, p := range emp.Punches {
		at, ok := parsePunchTime(p.PunchDateTime)
		if !ok {
			continue
		}
		if at.In(holiday.Location()).Format("2006-01") == monthPrefix {
			return true
		}
	}
	return false
}
