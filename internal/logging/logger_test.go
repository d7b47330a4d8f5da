package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name        string
		config      Config
		wantEnabled bool
	}{
		{
			name: "text file",
			config: Config{
				FilePath:   filepath.Join(t.TempDir(), "noted.log"),
				Level:      slog.LevelInfo,
				Format:     FormatText,
				MaxSizeMB:  10,
				MaxBackups: 2,
			},
			wantEnabled: true,
		},
		{
			name: "json file",
			config: Config{
				FilePath:   filepath.Join(t.TempDir(), "noted.log"),
				Level:      slog.LevelDebug,
				Format:     FormatJSON,
				MaxSizeMB:  10,
				MaxBackups: 2,
			},
			wantEnabled: true,
		},
		{
			name:        "empty filepath discards",
			config:      Config{Level: slog.LevelInfo, Format: FormatText},
			wantEnabled: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Init(tt.config); err != nil {
				t.Fatalf("Init() error = %v", err)
			}
			defer Shutdown()

			logger := Get()
			if logger == nil {
				t.Fatal("Get() returned nil logger")
			}
			if logger.IsEnabled() != tt.wantEnabled {
				t.Errorf("IsEnabled() = %v, want %v", logger.IsEnabled(), tt.wantEnabled)
			}

			// Must not panic either way
			logger.Debug("debug")
			logger.Info("info")
			logger.Warn("warn")
			logger.Error("error")
		})
	}
}

func TestGetBeforeInit(t *testing.T) {
	if err := Shutdown(); err != nil {
		t.Fatalf("Shutdown() error = %v", err)
	}
	if Get().IsEnabled() {
		t.Error("logger should be disabled after Shutdown")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"invalid", slog.LevelInfo},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected LogFormat
	}{
		{"text", FormatText},
		{"json", FormatJSON},
		{"JSON", FormatJSON},
		{"invalid", FormatText},
		{"", FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseFormat(tt.input); got != tt.expected {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestWithWritesContext(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "noted.log")
	if err := Init(Config{FilePath: logFile, Level: slog.LevelDebug, Format: FormatText, MaxSizeMB: 1}); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer Shutdown()

	Get().With("component", "commands").Info("registry created")
	Warn("package level", "key", "value")

	content, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	text := string(content)
	if !strings.Contains(text, "component=commands") {
		t.Errorf("log missing With() attribute:\n%s", text)
	}
	if !strings.Contains(text, "key=value") {
		t.Errorf("log missing package-level record:\n%s", text)
	}
}
