package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"trace", LevelTrace},
		{"TRACE", LevelTrace},
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"bogus", DefaultLevel},
		{"", DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestZeroValueDiscards(t *testing.T) {
	var l Logger

	// Must not panic.
	l.Info("nothing")
	l.Error("nothing", slog.String("k", "v"))

	if l.Level() != DefaultLevel {
		t.Errorf("zero value Level() = %v, want %v", l.Level(), DefaultLevel)
	}
}

func TestTextOutput(t *testing.T) {
	buf := new(bytes.Buffer)
	l := Make(buf,
		WithFormat(FormatText),
		WithLevel(LevelTrace),
		WithTimeLayout(""),
	)

	l.Trace("scanning", slog.Int("index", 3))

	out := buf.String()

	if !strings.Contains(out, "level=TRACE") {
		t.Errorf("output missing trace level: %q", out)
	}

	if !strings.Contains(out, "index=3") {
		t.Errorf("output missing attribute: %q", out)
	}
}

func TestLevelFiltering(t *testing.T) {
	buf := new(bytes.Buffer)
	l := Make(buf, WithFormat(FormatText), WithLevel(LevelWarn))

	l.Info("dropped")
	l.Warn("kept")

	if strings.Contains(buf.String(), "dropped") {
		t.Errorf("info message survived warn-level filter: %q", buf.String())
	}

	if !strings.Contains(buf.String(), "kept") {
		t.Errorf("warn message missing: %q", buf.String())
	}
}
