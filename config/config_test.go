package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		req := require.New(t)
		t.Setenv("GIN_MODE", "release")
		t.Setenv("SECRET_KEY", "")

		c, err := Load()

		req.NoError(err)
		req.Equal(5000, c.Port)
		req.Equal(DriverSQLite, c.DatabaseDriver)
		req.Equal(16*time.Hour, c.SessionMaxAge)
		req.Equal("book_exchange.db", c.DSN())
		req.NotEmpty(c.SessionSecret)
	})

	t.Run("should read unprefixed secret and database url", func(t *testing.T) {
		req := require.New(t)
		t.Setenv("GIN_MODE", "release")
		t.Setenv("SECRET_KEY", "s3cret")
		t.Setenv("DATABASE_URL", "file:test.db")

		c, err := Load()

		req.NoError(err)
		req.Equal("s3cret", c.SessionSecret)
		req.Equal("file:test.db", c.DSN())
	})

	t.Run("should reject unknown driver", func(t *testing.T) {
		t.Setenv("GIN_MODE", "release")
		t.Setenv("BOOKXCHANGE_DATABASE_DRIVER", "mysql")

		_, err := Load()

		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	t.Run("should require a secret in prod", func(t *testing.T) {
		for _, env := range []string{"prod", "PROD", "Prod"} {
			c := &Config{Env: env, DatabaseDriver: DriverSQLite}
			require.Error(t, c.Validate(), env)
			require.Empty(t, c.SessionSecret, env)
		}
	})

	t.Run("should fall back to a dev secret outside prod", func(t *testing.T) {
		c := &Config{Env: "dev", DatabaseDriver: DriverSQLite}
		require.NoError(t, c.Validate())
		require.NotEmpty(t, c.SessionSecret)
	})

	t.Run("should build a postgres dsn from parts", func(t *testing.T) {
		req := require.New(t)
		c := &Config{
			DatabaseDriver:   DriverPostgres,
			PostgresHost:     "db",
			PostgresUser:     "books",
			PostgresPassword: "pw",
			PostgresDB:       "bookxchange",
			PostgresPort:     5432,
		}
		req.NoError(c.Validate())
		req.Equal("host=db user=books password=pw dbname=bookxchange port=5432 sslmode=disable TimeZone=UTC", c.DSN())
	})
}
