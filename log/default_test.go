package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestPackage_LogFunctions_UseDefaultLogger(t *testing.T) {
	original := defaultLog

	t.Cleanup(func() { defaultLog = original })

	var buf bytes.Buffer

	Config(
		WithOutput(&buf),
		WithLevel(LevelTrace),
		WithFormat(FormatJSON),
		WithPretty(false),
	)

	tests := []struct {
		name  string
		fn    func(string, ...slog.Attr)
		level string
	}{
		{"Trace", Trace, "TRACE"},
		{"Debug", Debug, "DEBUG"},
		{"Info", Info, "INFO"},
		{"Warn", Warn, "WARN"},
		{"Error", Error, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.fn("message", slog.String("key", "value"))

			output := buf.String()
			if !strings.Contains(output, `"level":"`+tt.level+`"`) {
				t.Errorf("expected level %q, got: %s", tt.level, output)
			}

			if !strings.Contains(output, `"key":"value"`) {
				t.Errorf("expected attribute, got: %s", output)
			}
		})
	}
}

func TestPackage_ContextFunctions_UseDefaultLogger(t *testing.T) {
	original := defaultLog

	t.Cleanup(func() { defaultLog = original })

	var buf bytes.Buffer

	Config(WithOutput(&buf), WithLevel(LevelTrace), WithPretty(false))

	TraceContext(t.Context(), "a")
	DebugContext(t.Context(), "b")
	InfoContext(t.Context(), "c")
	WarnContext(t.Context(), "d")
	ErrorContext(t.Context(), "e")

	if n := strings.Count(buf.String(), "\n"); n != 5 {
		t.Errorf("expected 5 records, got %d:\n%s", n, buf.String())
	}
}

func TestPackage_DefaultAndWith(t *testing.T) {
	original := defaultLog

	t.Cleanup(func() { defaultLog = original })

	var buf bytes.Buffer

	Config(WithOutput(&buf), WithPretty(false))

	if Default().Level() != defaultLog.Level() {
		t.Error("expected Default to return the default logger")
	}

	With(slog.String("scope", "test")).Info("scoped")

	if !strings.Contains(buf.String(), `"scope":"test"`) {
		t.Errorf("expected scoped attribute, got: %s", buf.String())
	}
}
