package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := fromEnv()
	require.NoError(t, err)

	assert.Equal(t, 3000, cfg.ServerPort)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.True(t, cfg.Database.Synchronize)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("DB_USERNAME", "svc")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "accounts")
	t.Setenv("DB_SYNCHRONIZE", "false")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("APP_ENV", "production")

	cfg, err := fromEnv()
	require.NoError(t, err)

	assert.Equal(t, 8081, cfg.ServerPort)
	assert.False(t, cfg.Database.Synchronize)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t,
		"host=db.internal port=6543 user=svc password=secret dbname=accounts sslmode=disable",
		cfg.Database.DSN())
}

func TestFromEnv_DatabaseURLWins(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://u:p@h:5432/d")
	t.Setenv("DB_HOST", "ignored")

	cfg, err := fromEnv()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@h:5432/d", cfg.Database.DSN())
}

func TestFromEnv_SQLite(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/u.db")

	cfg, err := fromEnv()
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/u.db", cfg.Database.DSN())
}

func TestFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		name, key, value string
	}{
		{"port", "PORT", "eighty"},
		{"db port", "DB_PORT", "x"},
		{"synchronize", "DB_SYNCHRONIZE", "maybe"},
		{"rps", "RATE_LIMIT_RPS", "fast"},
		{"driver", "DB_DRIVER", "mysql"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := fromEnv()
			assert.Error(t, err)
		})
	}
}
