// File: logger_test.go
// Title: Logger Tests
// Description: Tests for the core logger covering level filtering,
//              context fields, formatter selection, and the package
//              default logger.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial test implementation

package log

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		name      string
		minLevel  Level
		logLevel  Level
		wantWrite bool
	}{
		{"debug at debug", LevelDebug, LevelDebug, true},
		{"debug at info", LevelInfo, LevelDebug, false},
		{"info at info", LevelInfo, LevelInfo, true},
		{"warn at error", LevelError, LevelWarn, false},
		{"error at warn", LevelWarn, LevelError, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := New().WithOutput(&buf).WithLevel(tt.minLevel)

			switch tt.logLevel {
			case LevelDebug:
				logger.Debug("message")
			case LevelInfo:
				logger.Info("message")
			case LevelWarn:
				logger.Warn("message")
			case LevelError:
				logger.Error("message")
			}

			if got := buf.Len() > 0; got != tt.wantWrite {
				t.Errorf("wrote=%v, want %v (output: %q)", got, tt.wantWrite, buf.String())
			}
		})
	}
}

func TestLogger_WithFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New().
		WithOutput(&buf).
		WithFormat(FormatText).
		WithField("component", "parser")

	logger.Info("started", Fields{"host": "example.com"})

	out := buf.String()
	if !strings.Contains(out, "component=parser") {
		t.Errorf("output missing context field: %q", out)
	}
	if !strings.Contains(out, "host=example.com") {
		t.Errorf("output missing call field: %q", out)
	}
}

func TestLogger_WithFieldDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	parent := New().WithOutput(&buf)
	_ = parent.WithField("child", "only")

	parent.Info("message")

	if strings.Contains(buf.String(), "child=only") {
		t.Errorf("parent logger inherited child field: %q", buf.String())
	}
}

func TestLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithConfig(Config{
		Level:  LevelDebug,
		Format: FormatJSON,
		Output: &buf,
		Name:   "test",
	})

	logger.Info("hello", Fields{"count": 3})

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not valid JSON: %v (output: %q)", err, buf.String())
	}
	if entry["message"] != "hello" {
		t.Errorf("message = %v, want hello", entry["message"])
	}
	if entry["logger"] != "test" {
		t.Errorf("logger = %v, want test", entry["logger"])
	}
	if entry["level"] != "info" {
		t.Errorf("level = %v, want info", entry["level"])
	}
}

func TestLogger_ErrorWithErr(t *testing.T) {
	var buf bytes.Buffer
	logger := New().WithOutput(&buf).WithFormat(FormatText)

	logger.ErrorWithErr("operation failed", errTest)

	if !strings.Contains(buf.String(), "test error") {
		t.Errorf("output missing error text: %q", buf.String())
	}
}

var errTest = &testError{}

type testError struct{}

func (e *testError) Error() string { return "test error" }

func TestLogger_Name(t *testing.T) {
	var buf bytes.Buffer
	logger := New().WithOutput(&buf).WithFormat(FormatText).WithName("netrc")

	logger.Info("message")

	if !strings.Contains(buf.String(), "netrc:") {
		t.Errorf("output missing logger name: %q", buf.String())
	}
}

func TestGetDefault(t *testing.T) {
	first := GetDefault()
	second := GetDefault()
	if first != second {
		t.Error("GetDefault returned different instances")
	}
}

func TestSetDefault(t *testing.T) {
	original := GetDefault()
	defer SetDefault(original)

	custom := New().WithName("custom")
	SetDefault(custom)

	if GetDefault() != custom {
		t.Error("SetDefault did not replace the default logger")
	}
}
