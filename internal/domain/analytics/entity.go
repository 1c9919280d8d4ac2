package analytics

import (
	"github.com/atlashr/pointage-backend-go/internal/domain/absence"
	"github.com/atlashr/pointage-backend-go/internal/domain/employee"
)

// DayStatus is the categorical outcome of one employee-day.
//
// A non-worked weekday with no recorded absence is deliberately
// classified OnTime with credit 0: incomplete source data must not
// raise Absent alerts, so "no data" and "present with zero hours" are
// indistinguishable here.
type DayStatus string

const (
	StatusOnTime          DayStatus = "OnTime"
	StatusMinorDelay      DayStatus = "MinorDelay"
	StatusLate            DayStatus = "Late"
	StatusAbsent          DayStatus = "Absent"
	StatusWorked          DayStatus = "Worked"
	StatusHoliday         DayStatus = "Holiday"
	StatusWorkedOnHoliday DayStatus = "WorkedOnHoliday"
	StatusWeekend         DayStatus = "Weekend"
)

// DayRollup is the computed attendance outcome for one employee on one
// calendar date. It is derived on demand and never persisted.
type DayRollup struct {
	Matricule        string           `json:"matricule"`
	Date             string           `json:"date"`
	Hours            float64          `json:"hours"`
	FirstIn          *string          `json:"first_in,omitempty"` // RFC3339
	DelayMin         *int             `json:"delay_min,omitempty"`
	IsHoliday        bool             `json:"is_holiday"`
	WorkedHoliday    bool             `json:"worked_holiday"`
	Credit           float64          `json:"credit"` // 0, 0.5 or 1
	IsAbsentFromFile bool             `json:"is_absent_from_file"`
	AbsenceInfo      *absence.Absence `json:"absence_info,omitempty"`
	Punches          []employee.Punch `json:"punches"`
	Status           DayStatus        `json:"status"`
}

// MonthlyKPI is the reduction of one employee's day rollups over one
// month, with denormalized identity fields for display.
type MonthlyKPI struct {
	Matricule      string  `json:"matricule"`
	Month          string  `json:"month"` // YYYY-MM
	Name           string  `json:"name"`
	Department     string  `json:"department"`
	Status         string  `json:"status"`
	DaysWorked     float64 `json:"days_worked"`
	DaysAbsent     float64 `json:"days_absent"`
	DeltaDays      float64 `json:"delta_days"`
	TotalHours     float64 `json:"total_hours"`
	AvgDelayMin    float64 `json:"avg_delay_min"`
	LateDays       int     `json:"late_days"`
	MinorDays      int     `json:"minor_days"`
	OnTimeDays     int     `json:"on_time_days"`
	WorkedHolidays int     `json:"worked_holidays"`
}

// CompanyKPIs are the company-wide totals over the filtered employees.
// AvgDelay averages only employees whose own average delay is nonzero,
// matching the per-employee semantic.
type CompanyKPIs struct {
	DaysWorked     float64 `json:"days_worked"`
	DaysAbsent     float64 `json:"days_absent"`
	AvgDelay       float64 `json:"avg_delay"`
	LateDays       int     `json:"late_days"`
	WorkedHolidays int     `json:"worked_holidays"`
}

// DepartmentKPI is the same reduction restricted to one department.
type DepartmentKPI struct {
	Department     string  `json:"department"`
	Employees      int     `json:"employees"`
	DaysWorked     float64 `json:"days_worked"`
	DaysAbsent     float64 `json:"days_absent"`
	AvgDelay       float64 `json:"avg_delay"`
	LateDays       int     `json:"late_days"`
	WorkedHolidays int     `json:"worked_holidays"`
}

type AlertType string

const (
	AlertLate          AlertType = "LATE"
	AlertMinor         AlertType = "MINOR"
	AlertAbsent        AlertType = "ABSENT"
	AlertHolidayWorked AlertType = "HOLIDAY_WORKED"
	AlertHolidayNoAtt  AlertType = "HOLIDAY_NO_ATT"
)

// AlertItem is one categorized alert for one employee on one date.
type AlertItem struct {
	Matricule  string    `json:"matricule"`
	Name       string    `json:"name"`
	Department string    `json:"department"`
	DelayMin   *int      `json:"delay_min,omitempty"`
	Hours      float64   `json:"hours"`
	ReasonTag  AlertType `json:"reason_tag"`
	Note       *string   `json:"note,omitempty"`
}

// AlertTotals carries per-type counts within one group.
type AlertTotals struct {
	Late          int `json:"late"`
	Minor         int `json:"minor"`
	Absent        int `json:"absent"`
	HolidayWorked int `json:"holiday_worked"`
	HolidayNoAtt  int `json:"holiday_no_att"`
}

type AlertGroup struct {
	Key    string      `json:"key"`
	Totals AlertTotals `json:"totals"`
	Items  []AlertItem `json:"items"`
}

type DailyAlertsData struct {
	Date        string       `json:"date"`
	Groups      []AlertGroup `json:"groups"`
	TotalAlerts int          `json:"total_alerts"`
}
