package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	Backend   BackendConfig
	Redis     RedisConfig
	Session   SessionConfig
	Dataset   DatasetConfig
	RateLimit RateLimitConfig
	Admin     AdminConfig
	Log       LogConfig
}

type AppConfig struct {
	Name        string
	Port        string
	Env         string
	CORSOrigins string
}

type BackendConfig struct {
	BaseURL string        // photo indexing backend, e.g. http://localhost:5000/api/v1
	Timeout time.Duration // per request, except dataset ingestion
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	DB       int
}

type SessionConfig struct {
	IdleTimeout   time.Duration // in-memory sessions idle longer than this are evicted
	SnapshotTTL   time.Duration // how long a snapshot can be reattached after eviction
	SweepSchedule string        // cron expression for the eviction job
}

type DatasetConfig struct {
	Timeout       time.Duration
	QueueSize     int
	MaxConcurrent int
}

type RateLimitConfig struct {
	Enabled bool
	Max     int
	Window  time.Duration
}

type AdminConfig struct {
	Token string // guards the log viewer; empty disables it
}

type LogConfig struct {
	Dir     string
	Level   string
	Console bool
}

func LoadConfig() (*Config, error) {
	// Load .env file if exists (optional for production)
	_ = godotenv.Load()

	config := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Photo Dashboard"),
			Port:        getEnv("APP_PORT", "3000"),
			Env:         getEnv("APP_ENV", "development"),
			CORSOrigins: getEnv("CORS_ORIGINS", "*"),
		},
		Backend: BackendConfig{
			BaseURL: strings.TrimRight(getEnv("BACKEND_URL", "http://localhost:5000/api/v1"), "/"),
			Timeout: getDuration("BACKEND_TIMEOUT", 15*time.Second),
		},
		Redis: RedisConfig{
			Enabled:  getBool("REDIS_ENABLED", true),
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnv("REDIS_PORT", "6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getInt("REDIS_DB", 0),
		},
		Session: SessionConfig{
			IdleTimeout:   getDuration("SESSION_IDLE_TIMEOUT", 30*time.Minute),
			SnapshotTTL:   getDuration("SESSION_SNAPSHOT_TTL", 24*time.Hour),
			SweepSchedule: getEnv("SESSION_SWEEP_SCHEDULE", "*/5 * * * *"),
		},
		Dataset: DatasetConfig{
			Timeout:       getDuration("DATASET_TIMEOUT", 30*time.Minute),
			QueueSize:     getInt("DATASET_QUEUE_SIZE", 16),
			MaxConcurrent: getInt("DATASET_MAX_CONCURRENT", 1),
		},
		RateLimit: RateLimitConfig{
			Enabled: getBool("RATE_LIMIT_ENABLED", true),
			Max:     getInt("RATE_LIMIT_MAX", 120),
			Window:  getDuration("RATE_LIMIT_WINDOW", time.Minute),
		},
		Admin: AdminConfig{
			Token: getEnv("ADMIN_TOKEN", ""),
		},
		Log: LogConfig{
			Dir:     getEnv("LOG_DIR", "logs"),
			Level:   getEnv("LOG_LEVEL", "info"),
			Console: getBool("LOG_CONSOLE", true),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// Validate rejects settings the service cannot start with
func (c *Config) Validate() error {
	if c.Backend.BaseURL == "" {
		return fmt.Errorf("BACKEND_URL must not be empty")
	}
	if c.Backend.Timeout <= 0 {
		return fmt.Errorf("BACKEND_TIMEOUT must be positive")
	}
	if c.Session.IdleTimeout <= 0 {
		return fmt.Errorf("SESSION_IDLE_TIMEOUT must be positive")
	}
	if c.Dataset.MaxConcurrent < 1 {
		return fmt.Errorf("DATASET_MAX_CONCURRENT must be at least 1")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getInt(key string, defaultValue int) int {
	n, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return n
}

func getBool(key string, defaultValue bool) bool {
	b, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return b
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	d, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return d
}
