// Package schedule resolves the effective work schedule for an
// employee from the three-tier configuration.
package schedule

import (
	"github.com/atlashr/pointage-backend-go/internal/domain/employee"
	"github.com/atlashr/pointage-backend-go/internal/domain/schedule"
)

// Resolve returns the effective schedule for emp. An employee-level
// override wins over a department-level one; both merge shallowly over
// the company default, field by field. The result is always complete.
func Resolve(emp employee.Employee, cfg schedule.Config) schedule.Details {
	if override, ok := cfg.EmployeeOverride[emp.Matricule]; ok {
		return merge(cfg.CompanyDefault, override)
	}
	if override, ok := cfg.DepartmentDefault[emp.Department]; ok {
		return merge(cfg.CompanyDefault, override)
	}
	return cfg.CompanyDefault
}

func merge(base schedule.Details, override schedule.Override) schedule.Details {
	resolved := base
	if override.Morning != nil {
		resolved.Morning = override.Morning
	}
	if override.Afternoon != nil {
		resolved.Afternoon = override.Afternoon
	}
	if override.WorksSaturday != nil {
		resolved.WorksSaturday = *override.WorksSaturday
	}
	return resolved
}
