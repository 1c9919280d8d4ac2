package schedule

// Window is a wall-clock time range in the company timezone.
type Window struct {
	Start string `yaml:"start" json:"start"` // "HH:MM"
	End   string `yaml:"end" json:"end"`     // "HH:MM"
}

// Details is a fully resolved work schedule. Morning and Afternoon may
// be nil for schedules without that segment.
type Details struct {
	Morning       *Window `yaml:"morning" json:"morning"`
	Afternoon     *Window `yaml:"afternoon" json:"afternoon"`
	WorksSaturday bool    `yaml:"works_saturday" json:"works_saturday"`
}

// Override is a partial schedule. Only the fields it sets take effect;
// nil fields inherit from the layer below.
type Override struct {
	Morning       *Window `yaml:"morning"`
	Afternoon     *Window `yaml:"afternoon"`
	WorksSaturday *bool   `yaml:"works_saturday"`
}

// Config is the three-tier schedule configuration. Resolution order is
// employee override, then department override, then company default,
// merged field by field.
type Config struct {
	CompanyDefault    Details             `yaml:"company_default"`
	DepartmentDefault map[string]Override `yaml:"department_defaults"`
	EmployeeOverride  map[string]Override `yaml:"employee_overrides"`
}

// LatenessPolicy is the global lateness and crediting configuration.
type LatenessPolicy struct {
	GraceMinutes          int     `yaml:"grace_minutes"`
	MinorDelayMinutes     int     `yaml:"minor_delay_minutes"`
	HalfDayThresholdHours float64 `yaml:"half_day_threshold_hours"`
	RequiredDaysPerMonth  float64 `yaml:"required_days_per_month"`
}
