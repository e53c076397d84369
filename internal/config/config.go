package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Port           int           `envconfig:"PORT" default:"8080"`
	AllowedOrigins string        `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:5173,http://localhost:3000"`
	LogLevel       string        `envconfig:"LOG_LEVEL" default:"info"`
	SessionSecret  string        `envconfig:"SESSION_SECRET" default:"dev-secret-change-in-production"`
	SessionTTL     time.Duration `envconfig:"SESSION_TTL" default:"30m"`
	BrushSize      float64       `envconfig:"BRUSH_SIZE" default:"8"`
	FontSize       float64       `envconfig:"FONT_SIZE" default:"24"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.BrushSize <= 0 || cfg.FontSize <= 0 {
		return nil, fmt.Errorf("BRUSH_SIZE and FONT_SIZE must be positive")
	}
	return &cfg, nil
}

// Level parses LogLevel into a slog level.
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	return level, nil
}

// Origins splits AllowedOrigins on commas.
func (c *Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
