package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "LOG_LEVEL", "DB_HOST", "DB_PORT", "DB_NAME", "DB_USER", "DB_PASSWORD", "DB_SSLMODE", "JWT_SECRET", "FRONTEND_URL"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "methodhub", cfg.DBName)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, 7*24*time.Hour, cfg.TokenTTL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PASSWORD", "s3cret")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "db.internal", cfg.DBHost)
}

func TestDSN(t *testing.T) {
	cfg := Config{
		DBHost:     "localhost",
		DBPort:     "5432",
		DBName:     "methodhub",
		DBUser:     "postgres",
		DBPassword: "postgres",
		DBSSLMode:  "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 dbname=methodhub user=postgres password=postgres sslmode=disable",
		cfg.DSN())
}
