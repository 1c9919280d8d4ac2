package employee

type ListFilter struct {
	Departments []string
	Status      []EmploymentStatus
	Search      string
	Page        int
	Limit       int
}

// Normalize applies the pagination defaults used across list endpoints.
func (f *ListFilter) Normalize() {
	if f.Page < 1 {
		f.Page = 1
	}
	if f.Limit < 1 || f.Limit > 200 {
		f.Limit = 50
	}
}

type EmployeeResponse struct {
	Matricule  string `json:"matricule"`
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Status     string `json:"status"`
	PunchCount int    `json:"punch_count"`
}

type ListEmployeesResponse struct {
	TotalCount int64              `json:"total_count"`
	Page       int                `json:"page"`
	Limit      int                `json:"limit"`
	TotalPages int                `json:"total_pages"`
	Employees  []EmployeeResponse `json:"employees"`
}

type PunchResponse struct {
	PunchDateTime string   `json:"punch_datetime"`
	Direction     string   `json:"direction"`
	Note          *string  `json:"note,omitempty"`
	RawHours      *float64 `json:"raw_hours,omitempty"`
	RawLateness   *float64 `json:"raw_lateness,omitempty"`
}

type EmployeeDetailResponse struct {
	EmployeeResponse
	Punches []PunchResponse `json:"punches"`
}
