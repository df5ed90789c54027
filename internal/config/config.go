// Package config reads the service configuration from the environment,
// optionally seeded from a .env file.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/udi/talleres-api/internal/logging"
)

// Config is read once at startup.
type Config struct {
	Port        string   `env:"PORT" envDefault:"3000"`
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173,http://127.0.0.1:5173"`
	LogLevel    string   `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string   `env:"LOG_FORMAT" envDefault:"text"`
}

// Load parses the environment into a Config and checks it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if _, err := cfg.Logging(); err != nil {
		return Config{}, err
	}
	if cfg.Port == "" {
		return Config{}, fmt.Errorf("PORT must not be empty")
	}
	return cfg, nil
}

// Logging converts the log settings into a logging.Config.
func (c Config) Logging() (logging.Config, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return logging.Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	format, err := logging.ParseFormat(c.LogFormat)
	if err != nil {
		return logging.Config{}, fmt.Errorf("LOG_FORMAT: %w", err)
	}
	return logging.Config{Level: level, Format: format}, nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + c.Port
}

const envSearchDepth = 6

// LoadDotEnv looks for a .env file in the working directory and its parents
// and loads it without overriding variables that are already set. A missing
// file is not an error; the path loaded, if any, is returned.
func LoadDotEnv(logger *slog.Logger) string {
	dir, err := os.Getwd()
	if err != nil {
		logger.Warn("failed to locate .env", "error", err)
		return ""
	}
	path := findEnvFile(dir)
	if path == "" {
		logger.Debug(".env not found in current or parent directories")
		return ""
	}
	if err := godotenv.Load(path); err != nil {
		logger.Warn("failed to load .env", "path", path, "error", err)
		return ""
	}
	return path
}

func findEnvFile(dir string) string {
	for i := 0; i < envSearchDepth; i++ {
		path := filepath.Join(dir, ".env")
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}
