package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// HTTP server
	Port string

	// MongoDB
	MongoURI string
	DBName   string

	// Auth
	JWTSecret string

	// CORS
	CORSOrigins []string

	// Logging
	Development bool
	LogLevel    string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8080"),
		MongoURI:    getEnv("MONGO_URI", ""),
		DBName:      getEnv("DB_NAME", "finance_tracker"),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		CORSOrigins: splitOrigins(getEnv("CORS_ORIGINS", "*")),
		Development: getEnvBool("DEVELOPMENT", false),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

// Validate returns an error describing every invalid field at once.
func (c *Config) Validate() error {
	var problems []string

	if _, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port %q: must be a number", c.Port))
	}
	if c.MongoURI == "" {
		problems = append(problems, "MONGO_URI must be set")
	}
	if c.JWTSecret == "" {
		problems = append(problems, "JWT_SECRET must be set")
	}
	if c.DBName == "" {
		problems = append(problems, "DB_NAME must not be empty")
	}

	if len(problems) > 0 {
		return fmt.Errorf("config validation failed: %s", strings.Join(problems, "; "))
	}
	return nil
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}
