package config

import (
	"fmt"
	"os"
	"time"
)

// Config is assembled once in main and passed down explicitly.
type Config struct {
	Port        string
	FrontendURL string
	LogLevel    string

	DBHost     string
	DBPort     string
	DBName     string
	DBUser     string
	DBPassword string
	DBSSLMode  string

	JWTSecret string
	TokenTTL  time.Duration
}

// Load reads configuration from the environment with development defaults.
func Load() Config {
	return Config{
		Port:        getenv("PORT", "8080"),
		FrontendURL: os.Getenv("FRONTEND_URL"),
		LogLevel:    getenv("LOG_LEVEL", "info"),

		DBHost:     getenv("DB_HOST", "localhost"),
		DBPort:     getenv("DB_PORT", "5432"),
		DBName:     getenv("DB_NAME", "methodhub"),
		DBUser:     getenv("DB_USER", "postgres"),
		DBPassword: getenv("DB_PASSWORD", "postgres"),
		DBSSLMode:  getenv("DB_SSLMODE", "disable"),

		JWTSecret: getenv("JWT_SECRET", "your-secret-key-here"),
		TokenTTL:  7 * 24 * time.Hour,
	}
}

// DSN builds the PostgreSQL connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s dbname=%s user=%s password=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBName, c.DBUser, c.DBPassword, c.DBSSLMode,
	)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
