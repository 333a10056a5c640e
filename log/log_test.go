package log

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestMake_JSONOutput(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf,
		WithFormat(FormatJSON),
		WithPretty(false),
		WithTimeLayout(""),
	)

	l.Info("hello", slog.String("who", "world"))

	var record map[string]any

	err := json.Unmarshal(buf.Bytes(), &record)
	if err != nil {
		t.Fatalf("output is not valid JSON: %v\noutput: %s", err, buf.String())
	}

	if record["msg"] != "hello" {
		t.Errorf("expected msg %q, got %v", "hello", record["msg"])
	}

	if record["who"] != "world" {
		t.Errorf("expected who %q, got %v", "world", record["who"])
	}
}

func TestMake_LevelFiltering(t *testing.T) {
	tests := []struct {
		name    string
		level   Level
		logAt   func(Logger)
		written bool
	}{
		{
			name:    "debug suppressed at info",
			level:   LevelInfo,
			logAt:   func(l Logger) { l.Debug("nope") },
			written: false,
		},
		{
			name:    "trace suppressed at debug",
			level:   LevelDebug,
			logAt:   func(l Logger) { l.Trace("nope") },
			written: false,
		},
		{
			name:    "trace emitted at trace",
			level:   LevelTrace,
			logAt:   func(l Logger) { l.Trace("yep") },
			written: true,
		},
		{
			name:    "error always emitted",
			level:   LevelError,
			logAt:   func(l Logger) { l.Error("yep") },
			written: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			l := Make(&buf,
				WithFormat(FormatText),
				WithPretty(false),
				WithLevel(tt.level),
			)

			tt.logAt(l)

			if got := buf.Len() > 0; got != tt.written {
				t.Errorf("written = %v, want %v (output: %q)",
					got, tt.written, buf.String())
			}
		})
	}
}

func TestLogger_Wrap(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf, WithPretty(false), WithLevel(LevelError))

	wrapped := l.Wrap(WithLevel(LevelDebug))
	if wrapped.Level() != LevelDebug {
		t.Errorf("wrapped level = %v, want %v", wrapped.Level(), LevelDebug)
	}

	// Original is unchanged.
	if l.Level() != LevelError {
		t.Errorf("original level = %v, want %v", l.Level(), LevelError)
	}
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf,
		WithFormat(FormatText),
		WithPretty(false),
		WithTimeLayout(""),
	).With(slog.String("component", "engine"))

	l.Info("staged")

	if !strings.Contains(buf.String(), "component=engine") {
		t.Errorf("expected component attr in output: %q", buf.String())
	}
}

func TestLogger_ZeroValue(t *testing.T) {
	var l Logger

	// Must not panic.
	l.Info("ignored")
	l.Error("ignored")

	if l.Level() != DefaultLevel {
		t.Errorf("zero logger level = %v, want %v", l.Level(), DefaultLevel)
	}
}

func TestPrettyTextHandler_Colors(t *testing.T) {
	var buf bytes.Buffer

	l := Make(&buf,
		WithFormat(FormatText),
		WithPretty(true),
		WithTimeLayout(""),
	)

	l.Info("colorful", slog.Int("n", 1))

	out := buf.String()
	if !strings.Contains(out, "\033[") {
		t.Errorf("expected ANSI escapes in pretty output: %q", out)
	}

	if !strings.Contains(out, "colorful") {
		t.Errorf("expected message in pretty output: %q", out)
	}
}
