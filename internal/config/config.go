package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Payroll  PayrollConfig
	Cron     CronConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// PayrollConfig holds commission/paystub behavior switches.
type PayrollConfig struct {
	// VendorScopedPaystubs switches paystub rows from the legacy agent-wide
	// total to per-vendor totals. Off until the reporting side signs off.
	VendorScopedPaystubs bool

	// SystemUserID is stamped as modified_by when a rebuild runs without an
	// authenticated caller (cron, admin CLI).
	SystemUserID int
}

type CronConfig struct {
	ReprocessEnabled  bool
	ReprocessInterval time.Duration
}

func Load() (*Config, error) {
	// Missing .env is fine in deployed environments; env vars win either way.
	_ = godotenv.Load()

	config := &Config{}

	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "choice_payroll"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	systemUserID, err := strconv.Atoi(getEnv("PAYROLL_SYSTEM_USER_ID", "7"))
	if err != nil {
		return nil, fmt.Errorf("invalid PAYROLL_SYSTEM_USER_ID: %w", err)
	}

	config.Payroll = PayrollConfig{
		VendorScopedPaystubs: getEnv("PAYSTUB_VENDOR_SCOPED", "false") == "true",
		SystemUserID:         systemUserID,
	}

	reprocessInterval, err := time.ParseDuration(getEnv("CRON_REPROCESS_INTERVAL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid CRON_REPROCESS_INTERVAL: %w", err)
	}

	config.Cron = CronConfig{
		ReprocessEnabled:  getEnv("CRON_REPROCESS_ENABLED", "true") == "true",
		ReprocessInterval: reprocessInterval,
	}

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
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Payroll.SystemUserID <= 0 {
		return fmt.Errorf("PAYROLL_SYSTEM_USER_ID must be positive")
	}
	return nil
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
