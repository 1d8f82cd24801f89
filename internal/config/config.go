package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/osse101/DecisionSpinner_Go/internal/domain"
)

// Config holds the application configuration
type Config struct {
	Port        int
	APIKey      string // API key for authentication
	LogLevel    string
	LogFormat   string
	LogDir      string
	Environment string
	ServiceName string
	Version     string

	// Storage
	StorageDriver     string
	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration
	SQLitePath        string
	StorageDir        string
	StateCacheTTL     time.Duration
	HealthInterval    time.Duration

	// Wheel
	SpinDuration        time.Duration
	SpinMinTurns        int
	SpinMaxTurns        int
	SpinPointerOffset   float64
	CelebrationDuration time.Duration

	// Events
	EventMaxRetries     int
	EventRetryDelay     time.Duration
	EventDeadLetterPath string

	// HTTP
	CORSAllowedOrigins []string
	TrustedProxies     []string
	ShutdownTimeout    time.Duration

	// Integrations
	AdsPublisherID         string
	AdsPlacementsPath      string
	AnalyticsMeasurementID string

	// Optional YAML catalogue overriding the built-in sample sets
	SamplesPath string
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:      getEnv("API_KEY", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		LogDir:      getEnv("LOG_DIR", "logs"),
		Environment: getEnv("ENVIRONMENT", "dev"),
		ServiceName: getEnv("SERVICE_NAME", "decision-spinner"),
		Version:     getEnv("VERSION", "dev"),

		StorageDriver:     strings.ToLower(getEnv("STORAGE_DRIVER", DefaultStorageDriver)),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "spinner"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", DefaultDBMaxConns),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", DefaultDBMaxConnIdleTime),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", DefaultDBMaxConnLifetime),
		SQLitePath:        getEnv("SQLITE_PATH", DefaultSQLitePath),
		StorageDir:        getEnv("STORAGE_DIR", DefaultStorageDir),
		StateCacheTTL:     getEnvAsDuration("STATE_CACHE_TTL", DefaultStateCacheTTL),
		HealthInterval:    getEnvAsDuration("STORAGE_HEALTH_INTERVAL", DefaultHealthInterval),

		SpinDuration:        getEnvAsDuration("SPIN_DURATION", domain.DefaultSpinDuration),
		SpinMinTurns:        getEnvAsInt("SPIN_MIN_TURNS", domain.DefaultMinSpins),
		SpinMaxTurns:        getEnvAsInt("SPIN_MAX_TURNS", domain.DefaultMaxSpins),
		SpinPointerOffset:   getEnvAsFloat("SPIN_POINTER_OFFSET", domain.DefaultPointerOffset),
		CelebrationDuration: getEnvAsDuration("CELEBRATION_DURATION", domain.DefaultCelebrationDuration),

		EventMaxRetries:     getEnvAsInt("EVENT_MAX_RETRIES", DefaultEventMaxRetries),
		EventRetryDelay:     getEnvAsDuration("EVENT_RETRY_DELAY", DefaultEventRetryDelay),
		EventDeadLetterPath: getEnv("EVENT_DEADLETTER_PATH", DefaultDeadLetterPath),

		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		TrustedProxies:     getEnvAsList("TRUSTED_PROXIES", nil),
		ShutdownTimeout:    getEnvAsDuration("SHUTDOWN_TIMEOUT", DefaultShutdownTimeout),

		AdsPublisherID:         getEnv("ADS_PUBLISHER_ID", ""),
		AdsPlacementsPath:      getEnv("ADS_PLACEMENTS_PATH", ""),
		AnalyticsMeasurementID: getEnv("ANALYTICS_MEASUREMENT_ID", ""),
		SamplesPath:            getEnv("SAMPLES_PATH", ""),
	}

	port, err := strconv.Atoi(getEnv("PORT", strconv.Itoa(DefaultPort)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidPort, err)
	}
	cfg.Port = port

	if cfg.APIKey == "" {
		return nil, errors.New(ErrMsgAPIKeyRequired)
	}

	return cfg, nil
}

// Validate checks values that parsed but cannot be used together
func (c *Config) Validate() error {
	var errs []error

	switch c.StorageDriver {
	case StorageDriverPostgres, StorageDriverFile, StorageDriverMemory:
	case StorageDriverSQLite:
		if c.SQLitePath == "" {
			errs = append(errs, errors.New(ErrMsgSQLitePathNeeded))
		}
	default:
		errs = append(errs, fmt.Errorf("%s: %q", ErrMsgUnknownDriver, c.StorageDriver))
	}

	if c.SpinMinTurns < 1 || c.SpinMinTurns > c.SpinMaxTurns || c.SpinMaxTurns > MaxSpinTurns {
		errs = append(errs, fmt.Errorf("%s (got %d..%d, max %d)", ErrMsgSpinTurns, c.SpinMinTurns, c.SpinMaxTurns, MaxSpinTurns))
	}
	if c.SpinDuration < MinSpinDuration || c.SpinDuration > MaxSpinDuration {
		errs = append(errs, fmt.Errorf("%s: %s not in [%s, %s]", ErrMsgSpinDuration, c.SpinDuration, MinSpinDuration, MaxSpinDuration))
	}
	if c.CelebrationDuration < 0 {
		errs = append(errs, errors.New(ErrMsgCelebration))
	}
	if c.SpinPointerOffset < 0 || c.SpinPointerOffset >= MaxPointerOffset {
		errs = append(errs, fmt.Errorf("%s: %g", ErrMsgPointerOffset, c.SpinPointerOffset))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, errors.New(ErrMsgShutdownTimeout))
	}
	if c.EventMaxRetries < 0 {
		errs = append(errs, errors.New(ErrMsgEventRetries))
	}
	if c.StateCacheTTL < 0 {
		errs = append(errs, errors.New(ErrMsgStateCacheTTL))
	}

	return errors.Join(errs...)
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back on absence or bad input
func getEnvAsInt(key string, defaultValue int) int {
	if v, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if v, err := time.ParseDuration(os.Getenv(key)); err == nil {
		return v
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return v
	}
	return defaultValue
}

// getEnvAsList splits a comma separated variable. Blank entries are dropped;
// an unset or blank variable yields the default.
func getEnvAsList(key string, defaultValue []string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
