package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/atlashr/pointage-backend-go/internal/domain/schedule"
	"github.com/atlashr/pointage-backend-go/internal/pkg/holiday"
)

// LoadAttendance reads attendance settings from a YAML file. An empty
// path returns the compiled-in defaults. File sections left empty fall
// back to the corresponding default section.
func LoadAttendance(path string) (*AttendanceConfig, error) {
	cfg := DefaultAttendance()
	if path == "" {
		return cfg, nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read attendance config %s: %w", path, err)
	}

	var file AttendanceConfig
	if err := yaml.Unmarshal(b, &file); err != nil {
		return nil, fmt.Errorf("parse attendance config: %w", err)
	}

	if file.Policy != (schedule.LatenessPolicy{}) {
		cfg.Policy = file.Policy
	}
	if file.Schedule.CompanyDefault.Morning != nil || file.Schedule.CompanyDefault.Afternoon != nil {
		cfg.Schedule = file.Schedule
	}
	if len(file.Holidays.Fixed) > 0 || len(file.Holidays.Religious) > 0 {
		cfg.Holidays = file.Holidays
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// DefaultAttendance returns the built-in attendance settings. Times are
// wall-clock in the company timezone.
func DefaultAttendance() *AttendanceConfig {
	worksSaturday := true
	return &AttendanceConfig{
		Policy: schedule.LatenessPolicy{
			GraceMinutes:          5,
			MinorDelayMinutes:     10,
			HalfDayThresholdHours: 4,
			RequiredDaysPerMonth:  26,
		},
		Schedule: schedule.Config{
			CompanyDefault: schedule.Details{
				Morning:       &schedule.Window{Start: "09:00", End: "13:00"},
				Afternoon:     &schedule.Window{Start: "14:00", End: "18:00"},
				WorksSaturday: false,
			},
			DepartmentDefault: map[string]schedule.Override{
				"Production": {
					WorksSaturday: &worksSaturday,
				},
				"IT": {
					Morning:   &schedule.Window{Start: "08:30", End: "12:30"},
					Afternoon: &schedule.Window{Start: "13:30", End: "17:30"},
				},
			},
			EmployeeOverride: map[string]schedule.Override{},
		},
		Holidays: holiday.DefaultTable(),
	}
}
