package main

import (
	"fmt"
	"net/http"

	"github.com/atlashr/pointage-backend-go/internal/config"
	appHTTP "github.com/atlashr/pointage-backend-go/internal/handler/http"
	"github.com/atlashr/pointage-backend-go/internal/pkg/database"
	"github.com/atlashr/pointage-backend-go/internal/pkg/holiday"
	"github.com/atlashr/pointage-backend-go/internal/repository/postgresql"
	absenceService "github.com/atlashr/pointage-backend-go/internal/service/absence"
	analyticsService "github.com/atlashr/pointage-backend-go/internal/service/analytics"
	employeeService "github.com/atlashr/pointage-backend-go/internal/service/employee"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	absenceRepo := postgresql.NewAbsenceRepository(db)

	calendar := holiday.NewCalendar(cfg.Attendance.Holidays)
	engine := analyticsService.NewEngine(calendar, cfg.Attendance.Schedule, cfg.Attendance.Policy)

	analyticsSvc := analyticsService.NewAnalyticsService(engine, employeeRepo, absenceRepo)
	absenceSvc := absenceService.NewAbsenceService(absenceRepo, calendar)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)

	router := appHTTP.NewRouter(
		cfg.App.Env,
		appHTTP.NewAnalyticsHandler(analyticsSvc),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewAbsenceHandler(absenceSvc),
		appHTTP.NewHolidayHandler(calendar),
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server starting on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
