package config

import (
	"log/slog"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != 8080 || cfg.SessionTTL != 30*time.Minute || cfg.BrushSize != 8 || cfg.FontSize != 24 {
		t.Errorf("Load() = %+v", cfg)
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SESSION_TTL", "90s")
	t.Setenv("BRUSH_SIZE", "4.5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Port != 9000 || cfg.SessionTTL != 90*time.Second || cfg.BrushSize != 4.5 {
		t.Errorf("Load() = %+v", cfg)
	}
}

func TestLoadRejectsBadSizes(t *testing.T) {
	t.Setenv("FONT_SIZE", "0")
	if _, err := Load(); err == nil {
		t.Error("Load() with FONT_SIZE=0 error = nil")
	}
}

func TestLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"WARN", slog.LevelWarn, false},
		{"info", slog.LevelInfo, false},
		{"loud", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		cfg := Config{LogLevel: tt.in}
		got, err := cfg.Level()
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("Level(%q) = %v, %v, want %v (err %v)", tt.in, got, err, tt.want, tt.wantErr)
		}
	}
}

func TestOrigins(t *testing.T) {
	cfg := Config{AllowedOrigins: "http://a, http://b,,"}
	got := cfg.Origins()
	if len(got) != 2 || got[0] != "http://a" || got[1] != "http://b" {
		t.Errorf("Origins() = %v", got)
	}
}
