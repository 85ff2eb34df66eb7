package config

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	App      AppConfig
	Database DatabaseConfig
	CORS     CORSConfig
	Contact  ContactConfig
}

// AppConfig holds application-level configuration
type AppConfig struct {
	Name    string
	Version string
	Debug   bool
	Port    string
	Host    string
}

// DatabaseConfig holds the catalog database location
type DatabaseConfig struct {
	URL string
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	MaxAge         int
}

// ContactConfig holds contact form submission settings
type ContactConfig struct {
	// ProcessingDelay is the fixed pause before a successful submission is answered
	ProcessingDelay time.Duration
	MaxBodyBytes    int64
	Sink            string // "log" or "discard"
}

// Supported submission sink providers
const (
	SinkLog     = "log"
	SinkDiscard = "discard"
)

var globalConfig *Config

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	config := &Config{
		App: AppConfig{
			Name:    getEnv("APP_NAME", "Lanzar EOR API"),
			Version: getEnv("APP_VERSION", "1.0.0"),
			Debug:   getEnvAsBool("DEBUG", false),
			Port:    getEnv("PORT", "8000"),
			Host:    getEnv("HOST", "0.0.0.0"),
		},
		Database: DatabaseConfig{
			URL: getEnv("DATABASE_URL", "sqlite:///./lanzar.db"),
		},
		CORS: CORSConfig{
			AllowedOrigins: getEnvAsSlice("ALLOWED_HOSTS", []string{"*"}),
			// the API is read-only apart from the contact form
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Content-Type", "Accept", "X-Request-ID"},
			MaxAge:         600,
		},
		Contact: ContactConfig{
			ProcessingDelay: getEnvAsDuration("CONTACT_PROCESSING_DELAY", time.Second),
			MaxBodyBytes:    int64(getEnvAsInt("CONTACT_MAX_BODY_BYTES", 64<<10)),
			Sink:            strings.ToLower(getEnv("SUBMISSION_SINK", SinkLog)),
		},
	}

	// Validate configuration
	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	globalConfig = config
	return config, nil
}

// validateConfig validates the configuration
func validateConfig(cfg *Config) error {
	if cfg.App.Port == "" {
		return fmt.Errorf("PORT must be set")
	}
	if cfg.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL must be set")
	}
	if cfg.Contact.ProcessingDelay < 0 {
		return fmt.Errorf("CONTACT_PROCESSING_DELAY must not be negative")
	}
	if cfg.Contact.MaxBodyBytes <= 0 {
		return fmt.Errorf("CONTACT_MAX_BODY_BYTES must be greater than 0")
	}
	switch cfg.Contact.Sink {
	case SinkLog, SinkDiscard:
	default:
		return fmt.Errorf("unsupported SUBMISSION_SINK: %s", cfg.Contact.Sink)
	}
	return nil
}

// IsPostgres checks if the database URL is for PostgreSQL
func (c *DatabaseConfig) IsPostgres() bool {
	return strings.HasPrefix(c.URL, "postgres://") || strings.HasPrefix(c.URL, "postgresql://")
}

// PostgresDSN returns the connection string handed to the Postgres driver.
// pgx parses both URLs and keyword/value strings.
func (c *DatabaseConfig) PostgresDSN() string {
	return c.URL
}

// SQLitePath extracts the SQLite database path from the URL
func (c *DatabaseConfig) SQLitePath() string {
	return strings.TrimPrefix(c.URL, "sqlite:///")
}

// Get returns the global configuration
func Get() *Config {
	if globalConfig == nil {
		// Load default config if not loaded
		config, _ := Load()
		return config
	}
	return globalConfig
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
