package employee

import (
	"context"
	"fmt"
	"math"

	"github.com/atlashr/pointage-backend-go/internal/domain/employee"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
}

func NewEmployeeService(employeeRepo employee.EmployeeRepository) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
	}
}

// ListEmployees implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.ListFilter) (employee.ListEmployeesResponse, error) {
	filter.Normalize()

	employees, total, err := s.employeeRepo.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeesResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}

	return employee.ListEmployeesResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Employees:  responses,
	}, nil
}

// GetEmployee implements employee.EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, matricule string) (employee.EmployeeDetailResponse, error) {
	emp, err := s.employeeRepo.GetByMatricule(ctx, matricule)
	if err != nil {
		return employee.EmployeeDetailResponse{}, err
	}

	detail := employee.EmployeeDetailResponse{
		EmployeeResponse: mapEmployeeToResponse(emp),
		Punches:          make([]employee.PunchResponse, 0, len(emp.Punches)),
	}
	for _, p := range emp.Punches {
		detail.Punches = append(detail.Punches, employee.PunchResponse{
			PunchDateTime: p.PunchDateTime,
			Direction:     string(p.Direction),
			Note:          p.Note,
			RawHours:      p.RawHours,
			RawLateness:   p.RawLateness,
		})
	}
	return detail, nil
}

// ListDepartments implements employee.EmployeeService.
func (s *EmployeeServiceImpl) ListDepartments(ctx context.Context) ([]string, error) {
	departments, err := s.employeeRepo.Departments(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	return departments, nil
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		Matricule:  emp.Matricule,
		FirstName:  emp.FirstName,
		LastName:   emp.LastName,
		Name:       emp.FullName(),
		Department: emp.Department,
		Status:     string(emp.Status),
		PunchCount: len(emp.Punches),
	}
}
