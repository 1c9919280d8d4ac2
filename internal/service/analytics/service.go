package analytics

import (
	"context"
	"fmt"
	"time"

	"github.com/atlashr/pointage-backend-go/internal/domain/absence"
	"github.com/atlashr/pointage-backend-go/internal/domain/analytics"
	"github.com/atlashr/pointage-backend-go/internal/domain/employee"
	"github.com/atlashr/pointage-backend-go/internal/pkg/holiday"
	"github.com/atlashr/pointage-backend-go/internal/pkg/validator"
	scheduleresolver "github.com/atlashr/pointage-backend-go/internal/service/schedule"
)

type AnalyticsServiceImpl struct {
	engine       *Engine
	employeeRepo employee.EmployeeRepository
	absenceRepo  absence.AbsenceRepository
}

func NewAnalyticsService(
	engine *Engine,
	employeeRepo employee.EmployeeRepository,
	absenceRepo absence.AbsenceRepository,
) analytics.AnalyticsService {
	return &AnalyticsServiceImpl{
		engine:       engine,
		employeeRepo: employeeRepo,
		absenceRepo:  absenceRepo,
	}
}

// ComputeRollup implements analytics.AnalyticsService.
func (s *AnalyticsServiceImpl) ComputeRollup(ctx context.Context, req analytics.RollupRequest) (analytics.DayRollup, error) {
	if err := req.Validate(); err != nil {
		return analytics.DayRollup{}, err
	}

	emp, err := s.employeeRepo.GetByMatricule(ctx, req.Matricule)
	if err != nil {
		return analytics.DayRollup{}, fmt.Errorf("failed to get employee: %w", err)
	}

	absences, err := s.absenceRepo.ListForDate(ctx, req.Date)
	if err != nil {
		return analytics.DayRollup{}, fmt.Errorf("failed to list absences: %w", err)
	}
	var absenceForDay *absence.Absence
	for i := range absences {
		if absences[i].Matricule == emp.Matricule {
			absenceForDay = &absences[i]
			break
		}
	}

	day, _ := validator.IsValidDate(req.Date)
	date := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, holiday.Location())
	sched := scheduleresolver.Resolve(emp, s.engine.config)

	return s.engine.DayRollup(emp, date, sched, absenceForDay, req.CountAbsenceOnHoliday), nil
}

// Aggregate implements analytics.AnalyticsService.
func (s *AnalyticsServiceImpl) Aggregate(ctx context.Context, filters analytics.Filters) (analytics.MonthlyAnalytics, error) {
	if err := filters.Validate(); err != nil {
		return analytics.MonthlyAnalytics{}, err
	}

	employees, err := s.employeeRepo.ListWithPunches(ctx, filters.Year, int(filters.Month))
	if err != nil {
		return analytics.MonthlyAnalytics{}, fmt.Errorf("failed to list employees: %w", err)
	}

	absences, err := s.absenceRepo.ListForMonth(ctx, filters.Year, int(filters.Month), "")
	if err != nil {
		return analytics.MonthlyAnalytics{}, fmt.Errorf("failed to list absences: %w", err)
	}

	return s.engine.Aggregate(employees, filters, absences), nil
}

// GenerateDailyAlerts implements analytics.AnalyticsService.
func (s *AnalyticsServiceImpl) GenerateDailyAlerts(ctx context.Context, dateYMD string, groupBy analytics.GroupKey) (analytics.DailyAlertsData, error) {
	if dateYMD == "" {
		dateYMD = holiday.TodayYMD()
	}
	day, ok := validator.IsValidDate(dateYMD)
	if !ok {
		return analytics.DailyAlertsData{}, validator.ValidationErrors{{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		}}
	}

	employees, err := s.employeeRepo.ListWithPunchesForDate(ctx, dateYMD)
	if err != nil {
		return analytics.DailyAlertsData{}, fmt.Errorf("failed to list employees: %w", err)
	}

	absences, err := s.absenceRepo.ListForDate(ctx, dateYMD)
	if err != nil {
		return analytics.DailyAlertsData{}, fmt.Errorf("failed to list absences: %w", err)
	}

	date := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, holiday.Location())
	return s.engine.DailyAlerts(employees, date, absences, groupBy), nil
}
