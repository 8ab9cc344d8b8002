package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"solar_cli/pkg/config"
)

func TestInitCreatesLogFile(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "logs", "solar_cli.log")

	cfg := config.Default()
	cfg.LogFile = logPath
	cfg.LogFormat = "json"
	cfg.LogLevel = "info"

	logger, err := Init(cfg)
	if err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	defer slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	logger.Info("hello", slog.String("component", "test"), slog.String("api_key", "sk-or-v1-abcdefghijkl"))

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "hello") {
		t.Fatalf("Expected log to contain message, got: %s", out)
	}
	if strings.Contains(out, "abcdefghijkl") {
		t.Fatalf("Expected api_key to be masked, got: %s", out)
	}
	if !strings.Contains(out, "sk-o...ijkl") {
		t.Fatalf("Expected masked api_key, got: %s", out)
	}
}

func TestInitTraceLevel(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "trace.log")

	cfg := config.Default()
	cfg.LogFile = logPath
	cfg.LogFormat = "text"
	cfg.LogLevel = "trace"

	logger, err := Init(cfg)
	if err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	defer slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	logger.Log(t.Context(), LevelTrace, "raw_body")

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("ReadFile() error: %v", err)
	}
	if !strings.Contains(string(data), "level=TRACE") {
		t.Fatalf("Expected TRACE level label, got: %s", data)
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"trace", LevelTrace},
		{"DEBUG", slog.LevelDebug},
		{" info ", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLogLevel(tt.in); got != tt.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestMaskSecret(t *testing.T) {
	if got := MaskSecret("short"); got != "*****" {
		t.Errorf("Expected short secret fully masked, got %q", got)
	}
	if got := MaskSecret("0123456789"); got != "0123...6789" {
		t.Errorf("Expected partial mask, got %q", got)
	}
}
