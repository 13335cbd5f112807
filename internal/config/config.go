package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates all runtime settings of the client.
type Config struct {
	AppName     string
	Environment string
	API         APIConfig
	Session     SessionConfig
	Sync        SyncConfig
	Context     ContextConfig
	Logger      LoggerConfig
}

type APIConfig struct {
	BaseURL        string
	RequestTimeout time.Duration
	Device         string
}

// SessionConfig selects and parameterizes the token persistence
// backend: "file", "bolt", "redis" or "memory".
type SessionConfig struct {
	Backend  string
	FilePath string
	BoltPath string
	Redis    RedisConfig
}

type RedisConfig struct {
	URL      string
	Password string
	DB       int
	TTL      time.Duration
}

type SyncConfig struct {
	Enabled  bool
	Interval time.Duration
}

type ContextConfig struct {
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level    string
	Encoding string
}

// Load reads configuration from environment variables (optionally .env)
// and applies sane defaults so the client can run with nothing but an
// API base URL.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{
		AppName:     getString("APP_NAME", "todoclient"),
		Environment: getString("APP_ENV", "development"),
		API: APIConfig{
			BaseURL:        getString("API_BASE_URL", "http://localhost:8000"),
			RequestTimeout: getDuration("API_REQUEST_TIMEOUT", 10*time.Second),
			Device:         getString("CLIENT_DEVICE", ""),
		},
		Session: SessionConfig{
			Backend:  getString("SESSION_BACKEND", "file"),
			FilePath: getString("SESSION_FILE_PATH", defaultStatePath("session")),
			BoltPath: getString("SESSION_BOLT_PATH", defaultStatePath("session.db")),
			Redis: RedisConfig{
				URL:      getString("SESSION_REDIS_URL", "redis://localhost:6379"),
				Password: os.Getenv("SESSION_REDIS_PASSWORD"),
				DB:       getInt("SESSION_REDIS_DB", 0),
				TTL:      getDuration("SESSION_REDIS_TTL", 0),
			},
		},
		Sync: SyncConfig{
			Enabled:  getBool("SYNC_ENABLED", true),
			Interval: getDuration("SYNC_INTERVAL_SECONDS", 60*time.Second),
		},
		Context: ContextConfig{
			RequestTimeout:  getDuration("REQUEST_TIMEOUT_SECONDS", 5*time.Second),
			ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT_SECONDS", 15*time.Second),
		},
		Logger: LoggerConfig{
			Level:    getString("LOG_LEVEL", "info"),
			Encoding: getString("LOG_ENCODING", "console"),
		},
	}

	return cfg, nil
}

// MustLoad panics if configuration cannot be loaded.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func defaultStatePath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".todoclient", name)
	}
	return filepath.Join(home, ".todoclient", name)
}

func getString(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.ParseBool(val); err == nil {
			return parsed
		}
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
		if seconds, err := strconv.Atoi(val); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}
