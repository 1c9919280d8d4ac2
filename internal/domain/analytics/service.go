package analytics

import "context"

// AnalyticsService is the attendance computation engine surface. Every
// result is a pure function of the stored employees and absences plus
// the static schedule, policy and holiday configuration; nothing here
// is persisted or cached across calls.
type AnalyticsService interface {
	// ComputeRollup computes one employee-day outcome.
	ComputeRollup(ctx context.Context, req RollupRequest) (DayRollup, error)

	// Aggregate computes per-employee monthly KPIs for the filtered
	// employees and reduces them into company and department totals.
	Aggregate(ctx context.Context, filters Filters) (MonthlyAnalytics, error)

	// GenerateDailyAlerts computes the categorized alert groups for one
	// date across all employees.
	GenerateDailyAlerts(ctx context.Context, date string, groupBy GroupKey) (DailyAlertsData, error)
}
