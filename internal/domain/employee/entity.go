package employee

import (
	"time"
)

type Employee struct {
	Matricule  string
	FirstName  string
	LastName   string
	Department string
	Status     EmploymentStatus
	Punches    []Punch
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// FullName joins the name parts for display and search.
func (e Employee) FullName() string {
	if e.FirstName == "" {
		return e.LastName
	}
	if e.LastName == "" {
		return e.FirstName
	}
	return e.FirstName + " " + e.LastName
}

type EmploymentStatus string

const (
	EmploymentStatusActive   EmploymentStatus = "Active"
	EmploymentStatusInactive EmploymentStatus = "Inactive"
)

type PunchDirection string

const (
	PunchIn  PunchDirection = "IN"
	PunchOut PunchDirection = "OUT"
)

// Punch is a single clock event as imported from the source file. The
// timestamp is kept raw: attendance exports mix ISO strings, local
// datetimes and Excel serial numbers, and rows the engine cannot parse
// are skipped at computation time rather than rejected at import time.
type Punch struct {
	Matricule     string
	PunchDateTime string
	Direction     PunchDirection
	Note          *string

	// Pre-computed values carried by some payroll exports. When present
	// they take precedence over values derived from the punch pairs.
	RawHours    *float64
	RawLateness *float64
	RawAbsence  *string
}
