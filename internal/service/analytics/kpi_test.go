package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/atlashr/pointage-backend-go/internal/domain/absence"
	"github.com/atlashr/pointage-backend-go/internal/pkg/holiday"
)

// newPlainEngine has no holidays at all, which keeps monthly
// expectations easy to compute by hand.
func newPlainEngine() *Engine {
	return NewEngine(holiday.NewCalendar(holiday.Table{}), testScheduleConfig(), testPolicy())
}

func TestMonthlyKPI_NoTraceShortCircuits(t *testing.T) {
	t.Parallel()
	e := newPlainEngine()
	emp := testEmployee("100", "Sales")

	kpi := e.MonthlyKPI(emp, 2025, time.June, nil, false, true)

	// No punches, no absences, no derivation: the month is an empty
	// data slice, not 26 days of absence.
	assert.Equal(t, "100", kpi.Matricule)
	assert.Equal(t, "2025-06", kpi.Month)
	assert.Equal(t, "Karim El Amrani", kpi.Name)
	assert.Equal(t, "Sales", kpi.Department)
	assert.Equal(t, 0.0, kpi.DaysWorked)
	assert.Equal(t, 0.0, kpi.DaysAbsent)
	assert.Equal(t, 0.0, kpi.DeltaDays)
	assert.Equal(t, 0.0, kpi.TotalHours)
	assert.Equal(t, 0, kpi.OnTimeDays)
}

func TestMonthlyKPI_AutoDeriveAbsence(t *testing.T) {
	t.Parallel()
	e := newPlainEngine()
	emp := testEmployee("100", "Sales")

	kpi := e.MonthlyKPI(emp, 2025, time.June, nil, true, true)

	assert.Equal(t, 0.0, kpi.DaysWorked)
	assert.Equal(t, 26.0, kpi.DaysAbsent)
	assert.Equal(t, -26.0, kpi.DeltaDays)
}

func TestMonthlyKPI_SumsCreditsHoursAndDelays(t *testing.T) {
	t.Parallel()
	e := newPlainEngine()
	emp := testEmployee("100", "Sales",
		// Full on-time day.
		"2025-06-10 09:00:00",
		"2025-06-10 13:00:00",
		"2025-06-10 14:00:00",
		"2025-06-10 18:00:00",
		// Late day, 20 min past start.
		"2025-06-11 09:20:00",
		"2025-06-11 13:00:00",
		"2025-06-11 14:00:00",
		"2025-06-11 18:00:00",
	)

	kpi := e.MonthlyKPI(emp, 2025, time.June, nil, false, true)

	assert.Equal(t, 2.0, kpi.DaysWorked)
	assert.Equal(t, 15.7, kpi.TotalHours) // 8 + 7.67
	assert.Equal(t, 20.0, kpi.AvgDelayMin)
	assert.Equal(t, 1, kpi.LateDays)
	assert.Equal(t, 0, kpi.MinorDays)
	// Every non-worked weekday in June is neutral OnTime; June 2025 has
	// 21 weekdays and one of them is Late.
	assert.Equal(t, 20, kpi.OnTimeDays)
	assert.Equal(t, -24.0, kpi.DeltaDays)
}

func TestMonthlyKPI_AvgDelayIgnoresOnTimeDays(t *testing.T) {
	t.Parallel()
	e := newPlainEngine()
	emp := testEmployee("100", "Sales",
		"2025-06-10 09:30:00",
		"2025-06-10 18:00:00",
		"2025-06-11 08:50:00", // early, no delay recorded
		"2025-06-11 18:00:00",
	)

	kpi := e.MonthlyKPI(emp, 2025, time.June, nil, false, true)

	// One delay of 30 min: the average is 30, not 15.
	assert.Equal(t, 30.0, kpi.AvgDelayMin)
}

func TestMonthlyKPI_RecordedAbsences(t *testing.T) {
	t.Parallel()
	e := newPlainEngine()
	emp := testEmployee("100", "Sales")
	absences := []absence.Absence{
		{Matricule: "100", Date: "2025-06-10", ReasonCode: absence.ReasonSick, Source: absence.SourceFile},
		{Matricule: "100", Date: "2025-06-11", ReasonCode: absence.ReasonAbsent, Source: absence.SourceManual},
		{Matricule: "100", Date: "2025-05-30", ReasonCode: absence.ReasonAbsent, Source: absence.SourceFile}, // other month
	}

	kpi := e.MonthlyKPI(emp, 2025, time.June, absences, false, true)

	assert.Equal(t, 2.0, kpi.DaysAbsent)
	assert.Equal(t, 0.0, kpi.DaysWorked)
	assert.Equal(t, -26.0, kpi.DeltaDays)
}

func TestMonthlyKPI_AutoDeriveKeepsLargerRecordedCount(t *testing.T) {
	t.Parallel()
	e := newPlainEngine()
	emp := testEmployee("100", "Sales",
		"2025-06-10 09:00:00",
		"2025-06-10 18:00:00",
	)
	absences := []absence.Absence{
		{Matricule: "100", Date: "2025-06-11", ReasonCode: absence.ReasonAbsent, Source: absence.SourceFile},
	}

	kpi := e.MonthlyKPI(emp, 2025, time.June, absences, true, true)

	// Derived 26-1=25 outweighs the single recorded absence.
	assert.Equal(t, 1.0, kpi.DaysWorked)
	assert.Equal(t, 25.0, kpi.DaysAbsent)
}

func TestMonthlyKPI_WorkedHoliday(t *testing.T) {
	t.Parallel()
	e := newTestEngine()
	// 2025-06-09 is a Monday and an Eid al-Adha administrative holiday.
	emp := testEmployee("100", "Sales",
		"2025-06-09 09:00:00",
		"2025-06-09 18:00:00",
	)

	kpi := e.MonthlyKPI(emp, 2025, time.June, nil, false, true)

	assert.Equal(t, 1, kpi.WorkedHolidays)
	assert.Equal(t, 1.0, kpi.DaysWorked)
	assert.Equal(t, 0, kpi.LateDays)
}
