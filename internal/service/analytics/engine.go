// Package analytics implements the attendance computation engine: day
// rollups, monthly KPIs, company aggregation and daily alerts. Every
// computation is a pure function of the inputs plus the static
// schedule, policy and holiday configuration; nothing is persisted.
package analytics

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/atlashr/pointage-backend-go/internal/domain/absence"
	"github.com/atlashr/pointage-backend-go/internal/domain/analytics"
	"github.com/atlashr/pointage-backend-go/internal/domain/employee"
	"github.com/atlashr/pointage-backend-go/internal/domain/schedule"
	"github.com/atlashr/pointage-backend-go/internal/pkg/holiday"
)

// saturdayStart is the reference clock-in time for schedules that work
// Saturdays; Saturday shifts have no configured morning window.
const saturdayStart = "09:00"

type Engine struct {
	calendar *holiday.Calendar
	config   schedule.Config
	policy   schedule.LatenessPolicy
}

func NewEngine(calendar *holiday.Calendar, config schedule.Config, policy schedule.LatenessPolicy) *Engine {
	return &Engine{
		calendar: calendar,
		config:   config,
		policy:   policy,
	}
}

// DayRollup computes the attendance outcome for one employee on one
// date. date must be a calendar day in the company timezone.
// absenceForDay is the recorded absence for that date, if any.
func (e *Engine) DayRollup(
	emp employee.Employee,
	date time.Time,
	sched schedule.Details,
	absenceForDay *absence.Absence,
	countAbsenceOnHoliday bool,
) analytics.DayRollup {
	dateYMD := date.Format("2006-01-02")
	punches := punchesOn(emp, dateYMD)

	_, isHoliday := e.calendar.IsHoliday(dateYMD)
	weekday := date.Weekday()
	isWorkingSaturday := sched.WorksSaturday && weekday == time.Saturday
	isWeekend := !isWorkingSaturday && (weekday == time.Saturday || weekday == time.Sunday)
	isAbsentFromFile := absenceForDay != nil

	hours := e.hoursWorked(punches)
	credit := e.credit(hours, isAbsentFromFile)
	delayMin := e.delayMinutes(punches, sched, date, isWorkingSaturday)

	// Priority-ordered status rules; this block is the business rule,
	// keep the order intact.
	var status analytics.DayStatus
	switch {
	case isHoliday:
		if credit > 0 {
			status = analytics.StatusWorkedOnHoliday
		} else {
			status = analytics.StatusHoliday
		}
	case isWeekend:
		status = analytics.StatusWeekend
	case isAbsentFromFile:
		status = analytics.StatusAbsent
	case credit > 0:
		switch {
		case delayMin != nil && *delayMin > e.policy.MinorDelayMinutes:
			status = analytics.StatusLate
		case delayMin != nil && *delayMin > e.policy.GraceMinutes:
			status = analytics.StatusMinorDelay
		default:
			status = analytics.StatusOnTime
		}
	default:
		// Non-worked day without a recorded absence: neutral, so that
		// incomplete source data never raises Absent alerts.
		status = analytics.StatusOnTime
	}

	if isHoliday && status == analytics.StatusAbsent && !countAbsenceOnHoliday {
		status = analytics.StatusHoliday
	}

	rollup := analytics.DayRollup{
		Matricule:        emp.Matricule,
		Date:             dateYMD,
		Hours:            hours,
		IsHoliday:        isHoliday,
		WorkedHoliday:    isHoliday && credit > 0,
		Credit:           credit,
		IsAbsentFromFile: isAbsentFromFile,
		AbsenceInfo:      absenceForDay,
		DelayMin:         delayMin,
		Status:           status,
		Punches:          make([]employee.Punch, 0, len(punches)),
	}
	for _, p := range punches {
		rollup.Punches = append(rollup.Punches, p.Punch)
	}
	if len(punches) > 0 {
		firstIn := punches[0].at.UTC().Format(time.RFC3339)
		rollup.FirstIn = &firstIn
	}
	return rollup
}

// hoursWorked prefers an export-supplied hour total on the day's first
// punch, falling back to pairing punches positionally as (in, out).
func (e *Engine) hoursWorked(punches []timedPunch) float64 {
	var hours float64
	if len(punches) > 0 && punches[0].RawHours != nil && *punches[0].RawHours > 0 {
		hours = *punches[0].RawHours
	} else {
		for i := 0; i+1 < len(punches); i += 2 {
			if d := punches[i+1].at.Sub(punches[i].at).Hours(); d > 0 {
				hours += d
			}
		}
	}
	return math.Max(0, round2(hours))
}

func (e *Engine) credit(hours float64, isAbsentFromFile bool) float64 {
	switch {
	case isAbsentFromFile:
		return 0
	case hours >= e.policy.HalfDayThresholdHours:
		return 1
	case hours > 0:
		return 0.5
	default:
		return 0
	}
}

// delayMinutes returns the minutes of lateness past the scheduled
// start, or nil when no delay was detected. nil means "unknown", not
// zero: days without a first punch or without a morning window carry no
// delay information at all.
func (e *Engine) delayMinutes(punches []timedPunch, sched schedule.Details, date time.Time, isWorkingSaturday bool) *int {
	if len(punches) > 0 && punches[0].RawLateness != nil && *punches[0].RawLateness > 0 {
		d := int(math.Round(*punches[0].RawLateness))
		return &d
	}

	if len(punches) == 0 {
		return nil
	}
	startStr := ""
	if isWorkingSaturday {
		startStr = saturdayStart
	} else if sched.Morning != nil {
		startStr = sched.Morning.Start
	}
	if startStr == "" {
		return nil
	}

	hh, mm, ok := parseClock(startStr)
	if !ok {
		return nil
	}
	scheduledStart := time.Date(date.Year(), date.Month(), date.Day(), hh, mm, 0, 0, holiday.Location())
	delay := punches[0].at.Sub(scheduledStart).Minutes()
	if delay <= 0 {
		return nil
	}
	d := int(math.Round(delay))
	return &d
}

// parseClock splits "HH:MM" into its parts.
func parseClock(s string) (hh, mm int, ok bool) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	hh, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, false
	}
	mm, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, false
	}
	return hh, mm, true
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
