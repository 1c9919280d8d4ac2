package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atlashr/pointage-backend-go/internal/domain/absence"
	"github.com/atlashr/pointage-backend-go/internal/domain/analytics"
	"github.com/atlashr/pointage-backend-go/internal/domain/employee"
	"github.com/atlashr/pointage-backend-go/internal/domain/schedule"
	"github.com/atlashr/pointage-backend-go/internal/pkg/holiday"
)

func testPolicy() schedule.LatenessPolicy {
	return schedule.LatenessPolicy{
		GraceMinutes:          5,
		MinorDelayMinutes:     10,
		HalfDayThresholdHours: 4,
		RequiredDaysPerMonth:  26,
	}
}

func testScheduleConfig() schedule.Config {
	worksSaturday := true
	return schedule.Config{
		CompanyDefault: schedule.Details{
			Morning:       &schedule.Window{Start: "09:00", End: "13:00"},
			Afternoon:     &schedule.Window{Start: "14:00", End: "18:00"},
			WorksSaturday: false,
		},
		DepartmentDefault: map[string]schedule.Override{
			"Production": {WorksSaturday: &worksSaturday},
		},
		EmployeeOverride: map[string]schedule.Override{},
	}
}

func newTestEngine() *Engine {
	return NewEngine(holiday.NewCalendar(holiday.DefaultTable()), testScheduleConfig(), testPolicy())
}

func punchAt(matricule, localDateTime string) employee.Punch {
	return employee.Punch{
		Matricule:     matricule,
		PunchDateTime: localDateTime,
		Direction:     employee.PunchIn,
	}
}

func testEmployee(matricule, dept string, punchTimes ...string) employee.Employee {
	emp := employee.Employee{
		Matricule:  matricule,
		FirstName:  "Karim",
		LastName:   "El Amrani",
		Department: dept,
		Status:     employee.EmploymentStatusActive,
	}
	for _, ts := range punchTimes {
		emp.Punches = append(emp.Punches, punchAt(matricule, ts))
	}
	return emp
}

func dayInLoc(ymd string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", ymd, holiday.Location())
	if err != nil {
		panic(err)
	}
	return t
}

// ===== DAY ROLLUP =====

func TestDayRollup_FullDayWithLateness(t *testing.T) {
	t.Parallel()
	e := newTestEngine()
	// 2025-06-11 is a regular Wednesday.
	emp := testEmployee("100", "Sales",
		"2025-06-11 09:12:00",
		"2025-06-11 13:00:00",
		"2025-06-11 14:00:00",
		"2025-06-11 18:05:00",
	)

	rollup := e.DayRollup(emp, dayInLoc("2025-06-11"), e.config.CompanyDefault, nil, true)

	assert.Equal(t, 7.88, rollup.Hours)
	require.NotNil(t, rollup.DelayMin)
	assert.Equal(t, 12, *rollup.DelayMin)
	assert.Equal(t, analytics.StatusLate, rollup.Status)
	assert.Equal(t, 1.0, rollup.Credit)
	assert.False(t, rollup.IsHoliday)
	assert.Len(t, rollup.Punches, 4)
	require.NotNil(t, rollup.FirstIn)
}

func TestDayRollup_OnTimeWithinGrace(t *testing.T) {
	t.Parallel()
	e := newTestEngine()
	emp := testEmployee("100", "Sales",
		"2025-06-11 09:04:00",
		"2025-06-11 13:00:00",
		"2025-06-11 14:00:00",
		"2025-06-11 18:00:00",
	)

	rollup := e.DayRollup(emp, dayInLoc("2025-06-11"), e.config.CompanyDefault, nil, true)

	// Delay of 4 min is within the 5 min grace.
	require.NotNil(t, rollup.DelayMin)
	assert.Equal(t, 4, *rollup.DelayMin)
	assert.Equal(t, analytics.StatusOnTime, rollup.Status)
}

func TestDayRollup_MinorDelayBoundaryIsInclusive(t *testing.T) {
	t.Parallel()
	e := newTestEngine()
	// Delay of exactly 10 min is not > 10, so MinorDelay, not Late.
	emp := testEmployee("100", "Sales",
		"2025-06-11 09:10:00",
		"2025-06-11 13:10:00",
		"2025-06-11 14:00:00",
		"2025-06-11 18:00:00",
	)

	rollup := e.DayRollup(emp, dayInLoc("2025-06-11"), e.config.CompanyDefault, nil, true)

	require.NotNil(t, rollup.DelayMin)
	assert.Equal(t, 10, *rollup.DelayMin)
	assert.Equal(t, analytics.StatusMinorDelay, rollup.Status)
}

func TestDayRollup_HalfDayCredit(t *testing.T) {
	t.Parallel()
	e := newTestEngine()
	emp := testEmployee("100", "Sales",
		"2025-06-11 09:00:00",
		"2025-06-11 12:30:00",
	)

	rollup := e.DayRollup(emp, dayInLoc("2025-06-11"), e.config.CompanyDefault, nil, true)

	assert.Equal(t, 3.5, rollup.Hours)
	assert.Equal(t, 0.5, rollup.Credit)
}

func TestDayRollup_NoPunchesNoAbsenceIsNeutral(t *testing.T) {
	t.Parallel()
	e := newTestEngine()
	emp := testEmployee("100", "Sales")

	rollup := e.DayRollup(emp, dayInLoc("2025-06-11"), e.config.CompanyDefault, nil, true)

	// Zero hours without a recorded absence must not read as Absent.
	assert.Equal(t, 0.0, rollup.Hours)
	assert.Equal(t, 0.0, rollup.Credit)
	assert.Equal(t, analytics.StatusOnTime, rollup.Status)
	assert.Nil(t, rollup.DelayMin)
	assert.Nil(t, rollup.FirstIn)
}

func TestDayRollup_RecordedAbsence(t *testing.T) {
	t.Parallel()
	e := newTestEngine()
	emp := testEmployee("100", "Sales")
	abs := &absence.Absence{Matricule: "100", Date: "2025-06-11", ReasonCode: absence.ReasonSick, Source: absence.SourceManual}

	rollup := e.DayRollup(emp, dayInLoc("2025-06-11"), e.config.CompanyDefault, abs, true)

	assert.Equal(t, analytics.StatusAbsent, rollup.Status)
	assert.True(t, rollup.IsAbsentFromFile)
	assert.Equal(t, 0.0, rollup.Credit)
	assert.Equal(t, abs, rollup.AbsenceInfo)
}

func TestDayRollup_AbsenceOverridesWorkedHours(t *testing.T) {
	t.Parallel()
	e := newTestEngine()
	emp := testEmployee("100", "Sales",
		"2025-06-11 09:00:00",
		"2025-06-11 18:00:00",
	)
	abs := &absence.Absence{Matricule: "100", Date: "2025-06-11", ReasonCode: absence.ReasonAbsent, Source: absence.SourceFile}

	rollup := e.DayRollup(emp, dayInLoc("2025-06-11"), e.config.CompanyDefault, abs, true)

	// Credit is zero whenever an absence record exists, even with hours.
	assert.Equal(t, 9.0, rollup.Hours)
	assert.Equal(t, 0.0, rollup.Credit)
	assert.Equal(t, analytics.StatusAbsent, rollup.Status)
}

func TestDayRollup_HolidayWithoutWork(t *testing.T) {
	t.Parallel()
	e := newTestEngine()
	emp := testEmployee("100", "Sales")

	rollup := e.DayRollup(emp, dayInLoc("2025-01-01"), e.config.CompanyDefault, nil, true)

	assert.True(t, rollup.IsHoliday)
	assert.False(t, rollup.WorkedHoliday)
	assert.Equal(t, analytics.StatusHoliday, rollup.Status)
}

func TestDayRollup_WorkedOnHoliday(t *testing.T) {
	t.Parallel()
	e := newTestEngine()
	emp := testEmployee("100", "Sales",
		"2025-01-01 09:30:00",
		"2025-01-01 17:30:00",
	)

	rollup := e.DayRollup(emp, dayInLoc("2025-01-01"), e.config.CompanyDefault, nil, true)

	// Holiday outranks lateness: never Late on a holiday.
	assert.Equal(t, analytics.StatusWorkedOnHoliday, rollup.Status)
	assert.True(t, rollup.WorkedHoliday)
	assert.Equal(t, 1.0, rollup.Credit)
}

func TestDayRollup_AbsenceOnHolidayDemotedToHoliday(t *testing.T) {
	t.Parallel()
	e := newTestEngine()
	emp := testEmployee("100", "Sales")
	abs := &absence.Absence{Matricule: "100", Date: "2025-01-01", ReasonCode: absence.ReasonAbsent, Source: absence.SourceFile}

	rollup := e.DayRollup(emp, dayInLoc("2025-01-01"), e.config.CompanyDefault, abs, false)

	assert.Equal(t, analytics.StatusHoliday, rollup.Status)

	// With countAbsenceOnHoliday the absence stands.
	rollup = e.DayRollup(emp, dayInLoc("2025-01-01"), e.config.CompanyDefault, abs, true)
	assert.Equal(t, analytics.StatusAbsent, rollup.Status)
}

func TestDayRollup_Weekend(t *testing.T) {
	t.Parallel()
	e := newTestEngine()
	emp := testEmployee("100", "Sales")

	// 2025-06-14 is a Saturday, 2025-06-15 a Sunday.
	rollup := e.DayRollup(emp, dayInLoc("2025-06-14"), e.config.CompanyDefault, nil, true)
	assert.Equal(t, analytics.StatusWeekend, rollup.Status)

	rollup = e.DayRollup(emp, dayInLoc("2025-06-15"), e.config.CompanyDefault, nil, true)
	assert.Equal(t, analytics.StatusWeekend, rollup.Status)
}

func TestDayRollup_WorkingSaturdayUsesFixedReference(t *testing.T) {
	t.Parallel()
	e := newTestEngine()
	emp := testEmployee("200", "Production",
		"2025-06-14 09:10:00",
		"2025-06-14 13:10:00",
	)
	sched := e.config.CompanyDefault
	sched.WorksSaturday = true

	rollup := e.DayRollup(emp, dayInLoc("2025-06-14"), sched, nil, true)

	// Saturday delay is measured against the fixed 09:00 reference.
	require.NotNil(t, rollup.DelayMin)
	assert.Equal(t, 10, *rollup.DelayMin)
	assert.Equal(t, analytics.StatusMinorDelay, rollup.Status)
	assert.NotEqual(t, analytics.StatusWeekend, rollup.Status)
}

func TestDayRollup_SundayIsAlwaysWeekend(t *testing.T) {
	t.Parallel()
	e := newTestEngine()
	emp := testEmployee("200", "Production")
	sched := e.config.CompanyDefault
	sched.WorksSaturday = true

	rollup := e.DayRollup(emp, dayInLoc("2025-06-15"), sched, nil, true)

	assert.Equal(t, analytics.StatusWeekend, rollup.Status)
}

func TestDayRollup_RawHoursPreferred(t *testing.T) {
	t.Parallel()
	e := newTestEngine()
	rawHours := 6.5
	emp := testEmployee("100", "Sales", "2025-06-11 09:00:00", "2025-06-11 10:00:00")
	emp.Punches[0].RawHours = &rawHours

	rollup := e.DayRollup(emp, dayInLoc("2025-06-11"), e.config.CompanyDefault, nil, true)

	assert.Equal(t, 6.5, rollup.Hours)
	assert.Equal(t, 1.0, rollup.Credit)
}

func TestDayRollup_RawLatenessPreferred(t *testing.T) {
	t.Parallel()
	e := newTestEngine()
	rawLateness := 25.0
	emp := testEmployee("100", "Sales", "2025-06-11 09:00:00", "2025-06-11 18:00:00")
	emp.Punches[0].RawLateness = &rawLateness

	rollup := e.DayRollup(emp, dayInLoc("2025-06-11"), e.config.CompanyDefault, nil, true)

	require.NotNil(t, rollup.DelayMin)
	assert.Equal(t, 25, *rollup.DelayMin)
	assert.Equal(t, analytics.StatusLate, rollup.Status)
}

func TestDayRollup_MalformedPunchesExcluded(t *testing.T) {
	t.Parallel()
	e := newTestEngine()
	emp := testEmployee("100", "Sales",
		"garbage",
		"2025-06-11 09:00:00",
		"",
		"2025-06-11 13:00:00",
	)

	rollup := e.DayRollup(emp, dayInLoc("2025-06-11"), e.config.CompanyDefault, nil, true)

	assert.Len(t, rollup.Punches, 2)
	assert.Equal(t, 4.0, rollup.Hours)
}

func TestDayRollup_UnpairedPunchIgnored(t *testing.T) {
	t.Parallel()
	e := newTestEngine()
	emp := testEmployee("100", "Sales",
		"2025-06-11 09:00:00",
		"2025-06-11 13:00:00",
		"2025-06-11 14:00:00", // no matching out punch
	)

	rollup := e.DayRollup(emp, dayInLoc("2025-06-11"), e.config.CompanyDefault, nil, true)

	assert.Equal(t, 4.0, rollup.Hours)
}

func TestDayRollup_NoMorningWindowSkipsDelay(t *testing.T) {
	t.Parallel()
	e := newTestEngine()
	emp := testEmployee("100", "Sales",
		"2025-06-11 15:00:00",
		"2025-06-11 19:00:00",
	)
	sched := schedule.Details{Afternoon: &schedule.Window{Start: "14:00", End: "18:00"}}

	rollup := e.DayRollup(emp, dayInLoc("2025-06-11"), sched, nil, true)

	assert.Nil(t, rollup.DelayMin)
	assert.Equal(t, analytics.StatusOnTime, rollup.Status)
}

func TestDayRollup_CreditIsAlwaysValid(t *testing.T) {
	t.Parallel()
	e := newTestEngine()
	cases := []employee.Employee{
		testEmployee("100", "Sales"),
		testEmployee("100", "Sales", "2025-06-11 09:00:00", "2025-06-11 09:30:00"),
		testEmployee("100", "Sales", "2025-06-11 09:00:00", "2025-06-11 18:00:00"),
		testEmployee("100", "Sales", "2025-06-11 18:00:00", "2025-06-11 09:00:00"), // reversed
	}
	for _, emp := range cases {
		rollup := e.DayRollup(emp, dayInLoc("2025-06-11"), e.config.CompanyDefault, nil, true)
		assert.Contains(t, []float64{0, 0.5, 1}, rollup.Credit)
		assert.GreaterOrEqual(t, rollup.Hours, 0.0)
	}
}

func TestDayRollup_ExcelSerialPunch(t *testing.T) {
	t.Parallel()
	e := newTestEngine()
	// Serial 45819 is 2025-06-11 (days since 1899-12-30).
	emp := testEmployee("100", "Sales", "45819")

	rollup := e.DayRollup(emp, dayInLoc("2025-06-11"), e.config.CompanyDefault, nil, true)

	assert.Len(t, rollup.Punches, 1)
}
