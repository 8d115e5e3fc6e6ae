package log

import (
	"slices"
	"testing"
	"time"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{LevelTrace, "trace"},
		{LevelDebug, "debug"},
		{LevelInfo, "info"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
		{LevelTrace + 2, "trace+2"},
		{LevelTrace - 1, "trace-1"},
		{LevelInfo + 1, "info+1"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.want {
			t.Errorf("Level(%d): expected %q, got %q", tt.level, tt.want, got)
		}
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"trace", LevelTrace},
		{"TRACE", LevelTrace},
		{" debug ", LevelDebug},
		{"info", LevelInfo},
		{"WARN", LevelWarn},
		{"error", LevelError},
		{"info+2", LevelInfo + 2},
		{"bogus", DefaultLevel},
		{"", DefaultLevel},
	}

	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q): expected %v, got %v", tt.input, tt.want, got)
		}
	}
}

func TestLevels_RoundTrip(t *testing.T) {
	names := slices.Collect(Levels())
	if len(names) != 5 {
		t.Fatalf("expected 5 levels, got %v", names)
	}

	for _, name := range names {
		if got := ParseLevel(name).String(); got != name {
			t.Errorf("expected %q to round-trip, got %q", name, got)
		}
	}
}

func TestFormat(t *testing.T) {
	if got := slices.Collect(Formats()); !slices.Equal(got, []string{"json", "text"}) {
		t.Errorf("expected [json text], got %v", got)
	}

	tests := []struct {
		input string
		want  Format
	}{
		{"json", FormatJSON},
		{"TEXT", FormatText},
		{"yaml", DefaultFormat},
	}

	for _, tt := range tests {
		if got := ParseFormat(tt.input); got != tt.want {
			t.Errorf("ParseFormat(%q): expected %v, got %v", tt.input, tt.want, got)
		}
	}

	if got := Format(9).String(); got != "Format(9)" {
		t.Errorf("expected Format(9), got %q", got)
	}
}

func TestMakeFormatTimeFunc(t *testing.T) {
	ts := time.Date(2024, 3, 5, 14, 7, 9, 123456789, time.UTC)

	tests := []struct {
		name   string
		layout string
		want   string
	}{
		{"named rfc3339", "RFC3339", "2024-03-05T14:07:09Z"},
		{"named rfc3339 nano", "rfc3339nano", "2024-03-05T14:07:09.123456789Z"},
		{"named kitchen", "Kitchen", "2:07PM"},
		{"alias ms", "ms", "Mar  5 14:07:09.123"},
		{"custom", "2006/01/02", "2024/03/05"},
		{"empty", "  ", ""},
		{"none", "none", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := makeFormatTimeFunc(tt.layout)(ts); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestConfig_OptionsDoNotAlias(t *testing.T) {
	base := makeConfig(nil)
	derived := apply(base, WithLevel(LevelError), WithCaller(true))

	if base.level != DefaultLevel || base.caller {
		t.Errorf("expected base config unchanged, got level=%v caller=%v",
			base.level, base.caller)
	}

	if derived.level != LevelError || !derived.caller {
		t.Errorf("expected derived config updated, got level=%v caller=%v",
			derived.level, derived.caller)
	}
}
