package common

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestLogError_IncludesErrorAndFields(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, nil)))
	defer slog.SetDefault(prev)

	LogError(errors.New("disk full"), "Command failed", Fields{"args": "score"})

	out := buf.String()
	if !strings.Contains(out, "disk full") {
		t.Errorf("Expected error detail in output, got %s", out)
	}
	if !strings.Contains(out, "score") {
		t.Errorf("Expected field value in output, got %s", out)
	}
	if !strings.Contains(out, "Command failed") {
		t.Errorf("Expected message in output, got %s", out)
	}
}

func TestSetupLogger_Formats(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	for _, format := range []string{"json", "console", "unknown"} {
		if err := SetupLogger(slog.LevelInfo, format); err != nil {
			t.Errorf("SetupLogger(%q) failed: %v", format, err)
		}
	}
}
