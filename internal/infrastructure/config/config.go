package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Storage backends for the ledger
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config holds all configuration for the application
type Config struct {
	Environment string          `mapstructure:"environment"`
	Server      ServerConfig    `mapstructure:"server"`
	Database    DatabaseConfig  `mapstructure:"database"`
	Logger      LoggerConfig    `mapstructure:"logger"`
	Ledger      LedgerConfig    `mapstructure:"ledger"`
	RateLimit   RateLimitConfig `mapstructure:"rateLimit"`
	Metrics     MetricsConfig   `mapstructure:"metrics"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
	AllowedOrigins    []string      `mapstructure:"allowedOrigins"`
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            string        `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LedgerConfig contains the engine and token bootstrap settings
type LedgerConfig struct {
	Storage       string   `mapstructure:"storage"`
	LockTimeoutMs int64    `mapstructure:"lockTimeoutMs"`
	Owner         string   `mapstructure:"owner"`
	Controllers   []string `mapstructure:"controllers"`
	InitialSupply string   `mapstructure:"initialSupply"`
	TokenName     string   `mapstructure:"tokenName"`
	Symbol        string   `mapstructure:"symbol"`
	Decimals      uint8    `mapstructure:"decimals"`
}

// RateLimitConfig contains per-client request throttling settings
type RateLimitConfig struct {
	Enabled           bool    `mapstructure:"enabled"`
	RequestsPerSecond float64 `mapstructure:"requestsPerSecond"`
	Burst             int     `mapstructure:"burst"`
}

// MetricsConfig contains prometheus settings
type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
	Path      string `mapstructure:"path"`
}

// LockTimeout returns the account lock timeout as a duration
func (c LedgerConfig) LockTimeout() time.Duration {
	return time.Duration(c.LockTimeoutMs) * time.Millisecond
}

// UsesDatabase reports whether the ledger is backed by postgres
func (c *Config) UsesDatabase() bool {
	return c.Ledger.Storage == StoragePostgres
}

// IsProduction reports whether the service runs in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == Production
}

// Validate checks every required setting and reports all problems at once
func (c *Config) Validate() error {
	var problems []error

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port))
	}

	switch c.Ledger.Storage {
	case StorageMemory:
	case StoragePostgres:
		missing := make([]string, 0)
		if c.Database.Host == "" {
			missing = append(missing, "database.host")
		}
		if c.Database.Username == "" {
			missing = append(missing, "database.username")
		}
		if c.Database.Password == "" {
			missing = append(missing, "database.password")
		}
		if c.Database.Database == "" {
			missing = append(missing, "database.database")
		}
		if len(missing) > 0 {
			problems = append(problems, fmt.Errorf("missing required settings: %s", strings.Join(missing, ", ")))
		}
	default:
		problems = append(problems, fmt.Errorf("ledger.storage must be %q or %q, got %q",
			StorageMemory, StoragePostgres, c.Ledger.Storage))
	}

	if strings.TrimSpace(c.Ledger.Owner) == "" {
		problems = append(problems, errors.New("ledger.owner is required"))
	}
	if c.Ledger.LockTimeoutMs < 0 {
		problems = append(problems, fmt.Errorf("ledger.lockTimeoutMs must not be negative, got %d", c.Ledger.LockTimeoutMs))
	}
	if c.RateLimit.Enabled && (c.RateLimit.RequestsPerSecond <= 0 || c.RateLimit.Burst <= 0) {
		problems = append(problems, errors.New("rateLimit.requestsPerSecond and rateLimit.burst must be positive when enabled"))
	}

	return errors.Join(problems...)
}
