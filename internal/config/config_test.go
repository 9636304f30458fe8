package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"DATABASE_DRIVER", "DATABASE_URL", "DATABASE_USER", "DATABASE_PASSWORD",
		"DATABASE_HOST", "DATABASE_PORT", "DATABASE_NAME", "BACKEND_CORS_ORIGINS",
		"PORT", "JWT_SECRET", "JWT_EXPIRE_HOURS", "LOG_LEVEL", "APP_ENV", "SEED_DEMO_USERS",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mysql", cfg.DBDriver)
	assert.Equal(t, "3306", cfg.DBPort)
	assert.Equal(t, "my_blog", cfg.DBName)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost"}, cfg.CORSOrigins)
	assert.Equal(t, "8888", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiry)
	assert.Equal(t, defaultJWTSecret, cfg.JWTSecret)
	assert.False(t, cfg.SeedDemoUsers)
	assert.Equal(t, "root:123456@tcp(localhost:3306)/my_blog?charset=utf8mb4&parseTime=True&loc=UTC", cfg.DSN())
}

func TestLoad_Postgres(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_DRIVER", "Postgres")
	t.Setenv("BACKEND_CORS_ORIGINS", " https://blog.example.com , ,http://localhost:5173")
	t.Setenv("JWT_EXPIRE_HOURS", "2")
	t.Setenv("SEED_DEMO_USERS", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.DBDriver)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, []string{"https://blog.example.com", "http://localhost:5173"}, cfg.CORSOrigins)
	assert.Equal(t, 2*time.Hour, cfg.JWTExpiry)
	assert.True(t, cfg.SeedDemoUsers)
	assert.Contains(t, cfg.DSN(), "host=localhost")
	assert.Contains(t, cfg.DSN(), "port=5432")
}

func TestLoad_DatabaseURLWins(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/blog")
	t.Setenv("DATABASE_DRIVER", "postgres")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@db:5432/blog", cfg.DSN())
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string][2]string{
		"driver": {"DATABASE_DRIVER", "oracle"},
		"port":   {"DATABASE_PORT", "abc"},
		"expiry": {"JWT_EXPIRE_HOURS", "-1"},
	}
	for name, kv := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(kv[0], kv[1])
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
