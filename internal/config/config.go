package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/atlashr/pointage-backend-go/internal/domain/schedule"
	"github.com/atlashr/pointage-backend-go/internal/pkg/holiday"
)

type Config struct {
	Database   DatabaseConfig
	App        AppConfig
	Attendance AttendanceConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port     int
	Env      string
	LogLevel string
}

func Load() (*Config, error) {
	// A missing .env file is fine in production; env vars win anyway.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "pointage"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:     appPort,
		Env:      getEnv("APP_ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	// Attendance configuration (schedule, lateness policy, holidays)
	attendance, err := LoadAttendance(getEnv("ATTENDANCE_CONFIG", ""))
	if err != nil {
		return nil, fmt.Errorf("loading attendance config: %w", err)
	}
	config.Attendance = *attendance

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	return c.Attendance.Validate()
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// AttendanceConfig bundles the static attendance settings the engine
// reads: the lateness policy, the three-tier schedule configuration and
// the holiday tables.
type AttendanceConfig struct {
	Policy   schedule.LatenessPolicy `yaml:"lateness_policy"`
	Schedule schedule.Config         `yaml:"schedule"`
	Holidays holiday.Table           `yaml:"holidays"`
}

func (a *AttendanceConfig) Validate() error {
	if a.Policy.GraceMinutes < 0 || a.Policy.MinorDelayMinutes < a.Policy.GraceMinutes {
		return fmt.Errorf("lateness policy: minor_delay_minutes must be >= grace_minutes >= 0")
	}
	if a.Policy.HalfDayThresholdHours <= 0 {
		return fmt.Errorf("lateness policy: half_day_threshold_hours must be positive")
	}
	if a.Policy.RequiredDaysPerMonth <= 0 || a.Policy.RequiredDaysPerMonth > 31 {
		return fmt.Errorf("lateness policy: required_days_per_month must be between 1 and 31")
	}
	return nil
}
