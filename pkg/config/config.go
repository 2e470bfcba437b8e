package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds the service configuration.
type Config struct {
	// HTTPPort is the port the API listens on.
	HTTPPort string `toml:"http_port"`

	// AdminID is the identity of the pool administrator. Only this caller
	// may create pools.
	AdminID string `toml:"admin_id"`

	// JWTSecret signs and verifies caller identity tokens.
	JWTSecret string `toml:"jwt_secret"`

	// EventsQueueURL, when set, enables asynchronous event fan-out to SQS
	// for the audit indexer.
	EventsQueueURL string `toml:"events_queue_url"`

	// EventsTable, when set, enables the DynamoDB audit event index and the
	// /events read API.
	EventsTable string `toml:"events_table"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		HTTPPort: "8080",
		AdminID:  "admin",
	}
}

// Load reads an optional TOML configuration file at path, merges it on top
// of the built-in defaults, applies environment variable overrides, and
// validates the result. A missing file is not an error; env-only deployments
// pass an empty path.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to decode config file %s: %w", path, err)
		}
	}

	// Load .env file if present (silently ignore if missing).
	_ = godotenv.Load()

	applyEnvOverrides(&cfg)

	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}
	if cfg.AdminID == "" {
		return nil, fmt.Errorf("ADMIN_ID is not set")
	}

	return &cfg, nil
}

// applyEnvOverrides overwrites Config fields from well-known environment
// variables when set, letting operators inject secrets at deploy time
// without touching the TOML file.
func applyEnvOverrides(cfg *Config) {
	setStr(&cfg.HTTPPort, "HTTP_PORT")
	setStr(&cfg.AdminID, "ADMIN_ID")
	setStr(&cfg.JWTSecret, "JWT_SECRET")
	setStr(&cfg.EventsQueueURL, "SQS_EVENTS_QUEUE_URL")
	setStr(&cfg.EventsTable, "DYNAMODB_EVENTS_TABLE_NAME")
}

func setStr(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
