package config

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Debug            bool          `envconfig:"debug"`
	Port             int           `envconfig:"port" default:"5000"`
	Env              string        `envconfig:"env" default:"dev"`
	LogLevel         string        `envconfig:"log_level" default:"info"`
	DatabaseDriver   string        `envconfig:"database_driver" default:"sqlite"`
	DatabaseURL      string        `envconfig:"database_url"`
	PostgresHost     string        `envconfig:"postgres_host"`
	PostgresUser     string        `envconfig:"postgres_user"`
	PostgresDB       string        `envconfig:"postgres_db"`
	PostgresPort     int           `envconfig:"postgres_port" default:"5432"`
	PostgresPassword string        `envconfig:"postgres_password"`
	SessionSecret    string        `envconfig:"secret_key"`
	SessionMaxAge    time.Duration `envconfig:"session_max_age" default:"16h"`
	AllowedOrigins   []string      `envconfig:"allowed_origins"`
}

// Load reads ./.env (outside release mode) and the BOOKXCHANGE_* environment.
// SECRET_KEY, DATABASE_URL and friends are honoured without the prefix too.
func Load() (*Config, error) {
	env := os.Getenv("GIN_MODE")
	if env != "release" {
		if err := godotenv.Load("./.env"); err != nil {
			log.Printf("couldn't load env vars: %v", err)
		}
	}

	c := &Config{}
	err := envconfig.Process("bookxchange", c)
	if err != nil {
		return nil, err
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Validate() error {
	switch c.DatabaseDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported database driver %q", c.DatabaseDriver)
	}
	if c.SessionSecret == "" {
		if c.IsProd() {
			return fmt.Errorf("SECRET_KEY must be set in prod")
		}
		c.SessionSecret = "dev-only-session-secret-change-me"
	}
	return nil
}

// DSN returns the connection string for the configured driver.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	if c.DatabaseDriver == DriverPostgres {
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%d sslmode=disable TimeZone=UTC",
			c.PostgresHost, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresPort)
	}
	return "book_exchange.db"
}

func (c *Config) IsProd() bool {
	return strings.EqualFold(c.Env, "prod")
}
