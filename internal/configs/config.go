package configs

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type DBconfig struct {
	// URL may be empty: the service then starts in degraded mode and
	// serves the fallback dataset instead of refusing to boot.
	URL string
}

type RabbitMQConfig struct {
	URL     string
	Enabled bool
}

type RESTconfig struct {
	Port string
}

type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type FluentBitConfig struct {
	Enabled bool
	Host    string
	Port    int
	Level   string
}

type StdoutLoggerConfig struct {
	Level string
}

// AppConfig holds the full application configuration.
type AppConfig struct {
	AppName      string
	Database     DBconfig
	RabbitMQ     RabbitMQConfig
	Rest         RESTconfig
	Auth         AuthConfig
	FluentBit    FluentBitConfig
	StdoutLogger StdoutLoggerConfig
}

// LoadConfig reads configuration from the environment. A .env file is
// loaded first when present; a missing file is not an error.
func LoadConfig(envPath ...string) (*AppConfig, error) {
	var err error
	if len(envPath) > 0 {
		err = godotenv.Load(envPath[0])
	} else {
		err = godotenv.Load()
	}
	if err != nil {
		log.Printf("Info: Could not load .env file (path: %v): %v.\n", envPath, err)
	}

	cfg := &AppConfig{}

	cfg.AppName = getEnv("APP_NAME", "listing-service")

	cfg.Database.URL = os.Getenv("DATABASE_URL")

	cfg.RabbitMQ.URL = os.Getenv("RABBITMQ_URL")
	cfg.RabbitMQ.Enabled = cfg.RabbitMQ.URL != ""

	cfg.Rest.Port = getEnv("PORT", "8080")

	cfg.Auth.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}
	cfg.Auth.TokenTTL = getEnvAsDuration("JWT_TOKEN_TTL", 24*time.Hour)

	cfg.FluentBit.Enabled = getEnvAsBool("FLUENTBIT_ENABLED", false)
	cfg.FluentBit.Host = getEnv("FLUENTBIT_HOST", "127.0.0.1")
	cfg.FluentBit.Port = getEnvAsInt("FLUENTBIT_PORT", 24224)
	cfg.FluentBit.Level = getEnv("FLUENTBIT_LOG_LEVEL", "info")

	cfg.StdoutLogger.Level = getEnv("LOG_LEVEL", "info")

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("Warning: invalid bool for %s: %q. Using default %v.\n", key, raw, fallback)
		return fallback
	}
	return value
}

func getEnvAsInt(key string, fallback int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		log.Printf("Warning: invalid int for %s: %q. Using default %d.\n", key, raw, fallback)
		return fallback
	}
	return value
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: invalid duration for %s: %q. Using default %s.\n", key, raw, fallback)
		return fallback
	}
	return value
}
