// Package config loads process configuration from the environment.
package config

import (
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"dev" validate:"oneof=dev staging prod test"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"cardbuilder" validate:"required"`
	Version     string `env:"VERSION" envDefault:"dev"`

	LogLevel  string `env:"LOG_LEVEL" envDefault:"info" validate:"loglevel"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text" validate:"oneof=text json"`
	LogDir    string `env:"LOG_DIR" envDefault:"logs"`

	StoreBackend string `env:"STORE_BACKEND" envDefault:"sqlite" validate:"oneof=memory sqlite postgres"`
	SQLitePath   string `env:"SQLITE_PATH" envDefault:"cardbuilder.db" validate:"required_if=StoreBackend sqlite"`

	DBUser            string        `env:"DB_USER" envDefault:"postgres" validate:"required_if=StoreBackend postgres"`
	DBPassword        string        `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost            string        `env:"DB_HOST" envDefault:"localhost" validate:"required_if=StoreBackend postgres"`
	DBPort            string        `env:"DB_PORT" envDefault:"5432" validate:"omitempty,numeric"`
	DBName            string        `env:"DB_NAME" envDefault:"cardbuilder" validate:"required_if=StoreBackend postgres"`
	DBMaxConns        int           `env:"DB_MAX_CONNS" envDefault:"10" validate:"gte=1"`
	DBMaxConnIdle     time.Duration `env:"DB_MAX_CONN_IDLE" envDefault:"5m"`
	DBMaxConnLifetime time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`

	AppShareURL       string `env:"APP_SHARE_URL" envDefault:"https://apps.apple.com/us/app/card-builder-create-a-game/id6737691823" validate:"url"`
	AppReviewURL      string `env:"APP_REVIEW_URL" envDefault:"https://apps.apple.com/us/app/card-builder-create-a-game/id6737691823" validate:"url"`
	AppUsagePolicyURL string `env:"APP_USAGE_POLICY_URL" envDefault:"https://www.termsfeed.com/live/b41b1666-bbbf-4d3d-a2c1-e0a9a6a0b98d" validate:"url"`
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	return Parse()
}

// Parse reads the current environment into a validated Config without touching .env
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgParseEnv, err)
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field constraints and reports them by environment variable name
func Validate(cfg *Config) error {
	if err := structValidator().Struct(cfg); err != nil {
		return formatValidationError(err)
	}
	return nil
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return c.connString(c.DBName)
}

// GetServerConnString returns a connection string for the server's default
// postgres database, used before DBName exists
func (c *Config) GetServerConnString() string {
	return c.connString(defaultServerDatabase)
}

func (c *Config) connString(database string) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + database,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// IsDevelopment reports whether source locations should be added to logs
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvironmentDev
}
