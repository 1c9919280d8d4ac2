package http

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/atlashr/pointage-backend-go/internal/domain/analytics"
	"github.com/atlashr/pointage-backend-go/internal/domain/employee"
	"github.com/atlashr/pointage-backend-go/internal/handler/http/response"
	"github.com/atlashr/pointage-backend-go/internal/pkg/validator"
)

type AnalyticsHandler interface {
	GetMonthlyAnalytics(w http.ResponseWriter, r *http.Request)
	ExportMonthlyAnalytics(w http.ResponseWriter, r *http.Request)
	GetRollup(w http.ResponseWriter, r *http.Request)
	GetDailyAlerts(w http.ResponseWriter, r *http.Request)
}

type analyticsHandlerImpl struct {
	analyticsService analytics.AnalyticsService
}

func NewAnalyticsHandler(analyticsService analytics.AnalyticsService) AnalyticsHandler {
	return &analyticsHandlerImpl{
		analyticsService: analyticsService,
	}
}

// parseFilters reads the shared monthly-analytics query parameters.
// Booleans default to true so the dashboard view needs no parameters.
func parseFilters(r *http.Request) (analytics.Filters, error) {
	query := r.URL.Query()

	now := time.Now()
	filters := analytics.Filters{
		Year:                  now.Year(),
		Month:                 now.Month(),
		SearchText:            query.Get("search"),
		AutoDeriveAbsence:     parseBoolDefault(query.Get("auto_derive_absence"), true),
		CountAbsenceOnHoliday: parseBoolDefault(query.Get("count_absence_on_holiday"), true),
	}

	if y := query.Get("year"); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil {
			return filters, validator.ValidationErrors{{Field: "year", Message: "year must be a number"}}
		}
		filters.Year = year
	}
	if m := query.Get("month"); m != "" {
		month, err := strconv.Atoi(m)
		if err != nil {
			return filters, validator.ValidationErrors{{Field: "month", Message: "month must be a number"}}
		}
		filters.Month = time.Month(month)
	}
	if d := query.Get("departments"); d != "" {
		filters.Departments = strings.Split(d, ",")
	}
	if s := query.Get("status"); s != "" {
		for _, status := range strings.Split(s, ",") {
			filters.Status = append(filters.Status, employee.EmploymentStatus(status))
		}
	}

	return filters, filters.Validate()
}

func parseBoolDefault(value string, fallback bool) bool {
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

// GetMonthlyAnalytics implements AnalyticsHandler
func (h *analyticsHandlerImpl) GetMonthlyAnalytics(w http.ResponseWriter, r *http.Request) {
	filters, err := parseFilters(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.analyticsService.Aggregate(r.Context(), filters)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportMonthlyAnalytics implements AnalyticsHandler - CSV download of
// the per-employee KPI table.
func (h *analyticsHandlerImpl) ExportMonthlyAnalytics(w http.ResponseWriter, r *http.Request) {
	filters, err := parseFilters(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.analyticsService.Aggregate(r.Context(), filters)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("analytics_%04d-%02d.csv", filters.Year, int(filters.Month))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)

	writer := csv.NewWriter(w)
	_ = writer.Write([]string{
		"Matricule", "Name", "Department", "Status", "Days Worked", "Days Absent",
		"Delta Days", "Total Hours", "Avg Delay (min)", "Late Days", "Worked Holidays",
	})
	for _, kpi := range result.EmployeeKPIs {
		_ = writer.Write([]string{
			kpi.Matricule,
			kpi.Name,
			kpi.Department,
			kpi.Status,
			strconv.FormatFloat(kpi.DaysWorked, 'f', -1, 64),
			strconv.FormatFloat(kpi.DaysAbsent, 'f', -1, 64),
			strconv.FormatFloat(kpi.DeltaDays, 'f', -1, 64),
			strconv.FormatFloat(kpi.TotalHours, 'f', -1, 64),
			strconv.FormatFloat(kpi.AvgDelayMin, 'f', -1, 64),
			strconv.Itoa(kpi.LateDays),
			strconv.Itoa(kpi.WorkedHolidays),
		})
	}
	writer.Flush()
}

// GetRollup implements AnalyticsHandler
func (h *analyticsHandlerImpl) GetRollup(w http.ResponseWriter, r *http.Request) {
	req := analytics.RollupRequest{
		Matricule:             r.URL.Query().Get("matricule"),
		Date:                  r.URL.Query().Get("date"),
		CountAbsenceOnHoliday: parseBoolDefault(r.URL.Query().Get("count_absence_on_holiday"), true),
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	rollup, err := h.analyticsService.ComputeRollup(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rollup)
}

// GetDailyAlerts implements AnalyticsHandler
func (h *analyticsHandlerImpl) GetDailyAlerts(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	groupBy := analytics.GroupKey(r.URL.Query().Get("group_by"))
	if groupBy == "" {
		groupBy = analytics.GroupByDepartment
	}

	alerts, err := h.analyticsService.GenerateDailyAlerts(r.Context(), date, groupBy)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, alerts)
}
