// Package config loads runtime settings from a .env file and the environment.
// File: config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"ycfl-league/logger"
)

// DefaultAdminPassword is the league's shared admin secret when ADMIN_PASSWORD is unset.
// It is a placeholder gate for a single organiser, not an access-control system.
const DefaultAdminPassword = "yemenistudentsunion" // #nosec G101

// Config holds every setting the server reads at start-up.
type Config struct {
	Env            string
	Port           string
	ApplicationURL string
	AdminPassword  string
	SessionSecret  string
	LogDir         string
	TemplatesDir   string
	MaxUploadMB    int
	CORSOrigins    []string

	MetricsEnabled   bool
	MetricsNamespace string
	TracingEnabled   bool
}

// Load reads .env (if present) and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug.Println("config: no .env file found, relying on system environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Env:              getEnv("APP_ENV", "development"),
		Port:             getEnv("PORT", "8080"),
		ApplicationURL:   getEnv("APPLICATION_URL", "http://localhost:8080"),
		AdminPassword:    getEnv("ADMIN_PASSWORD", DefaultAdminPassword),
		SessionSecret:    getEnv("SESSION_SECRET", "ycfl-dev-session-secret"),
		LogDir:           getEnv("LOG_DIR", "./logs"),
		TemplatesDir:     getEnv("TEMPLATES_DIR", "templates"),
		MetricsNamespace: getEnv("METRICS_NAMESPACE", "YCFL"),
		CORSOrigins:      splitList(getEnv("CORS_ORIGINS", "")),
	}

	var err error
	if cfg.MaxUploadMB, err = getEnvAsInt("MAX_UPLOAD_MB", 8); err != nil {
		return nil, err
	}
	if cfg.MaxUploadMB <= 0 {
		return nil, fmt.Errorf("MAX_UPLOAD_MB must be positive, got %d", cfg.MaxUploadMB)
	}
	if cfg.MetricsEnabled, err = getEnvAsBool("METRICS_ENABLED", false); err != nil {
		return nil, err
	}
	if cfg.TracingEnabled, err = getEnvAsBool("TRACING_ENABLED", false); err != nil {
		return nil, err
	}

	if cfg.AdminPassword == DefaultAdminPassword && cfg.Env == "production" {
		logger.Warn.Println("config: using the default ADMIN_PASSWORD in production")
	}
	if strings.HasPrefix(cfg.SessionSecret, "ycfl-dev") && cfg.Env == "production" {
		logger.Warn.Println("config: using the default SESSION_SECRET in production")
	}
	return cfg, nil
}

// RegisterURL is the public registration page, encoded into the QR code.
func (c *Config) RegisterURL() string {
	return strings.TrimRight(c.ApplicationURL, "/") + "/register"
}

// MaxUploadBytes is the multipart memory limit for photo uploads.
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback, fmt.Errorf("env var %s: expected integer, got '%s'", key, raw)
	}
	return v, nil
}

func getEnvAsBool(key string, fallback bool) (bool, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback, fmt.Errorf("env var %s: expected boolean, got '%s'", key, raw)
	}
	return v, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
