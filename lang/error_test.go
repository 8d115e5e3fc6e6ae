package lang

import (
	"errors"
	"io"
	"log/slog"
	"testing"
)

func TestError_Is(t *testing.T) {
	derived := ErrUndefinedVariable.With(slog.String("name", "x"))

	if !errors.Is(derived, ErrUndefinedVariable) {
		t.Error("expected derived error to match its sentinel")
	}

	if errors.Is(derived, ErrUndefinedFunction) {
		t.Error("expected derived error not to match another sentinel")
	}

	twice := derived.WithPosition(Position{Line: 3, Column: 4})
	if !errors.Is(twice, ErrUndefinedVariable) {
		t.Error("expected error derived twice to match its sentinel")
	}
}

func TestError_Wrap(t *testing.T) {
	err := ErrOutput.Wrap(io.ErrShortWrite)

	if !errors.Is(err, ErrOutput) {
		t.Error("expected wrapped error to match its sentinel")
	}

	if !errors.Is(err, io.ErrShortWrite) {
		t.Error("expected wrapped error to match its cause")
	}
}

func TestError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "message only",
			err:  ErrDivisionByZero,
			want: "division by zero",
		},
		{
			name: "with attributes",
			err:  ErrUndefinedVariable.With(slog.String("name", "x")),
			want: "undefined variable (name=x)",
		},
		{
			name: "with position",
			err:  ErrSyntax.WithPosition(Position{Line: 2, Column: 7}),
			want: "syntax error (line=2 column=7)",
		},
		{
			name: "with cause",
			err:  ErrReadInput.Wrap(io.ErrUnexpectedEOF),
			want: "failed to read input: unexpected EOF",
		},
		{
			name: "wrapped foreign error",
			err:  WrapError(io.EOF),
			want: "EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestWrapError_Preserves(t *testing.T) {
	orig := ErrSyntax.With(slog.String("got", "x"))

	if WrapError(orig) != orig {
		t.Error("expected WrapError to return an existing *Error unchanged")
	}
}

func TestError_LogValue(t *testing.T) {
	err := ErrDivisionByZero.With(slog.Int64("dividend", 5))

	v := err.LogValue()
	if v.Kind() != slog.KindGroup {
		t.Fatalf("expected group value, got %v", v.Kind())
	}

	got := map[string]string{}
	for _, a := range v.Group() {
		got[a.Key] = a.Value.String()
	}

	if got["error"] != "division by zero" || got["dividend"] != "5" {
		t.Errorf("unexpected attributes: %v", got)
	}
}

func TestError_Immutable(t *testing.T) {
	_ = ErrSyntax.With(slog.String("k", "v"))

	if _, ok := ErrSyntax.Attr("k"); ok {
		t.Error("expected sentinel to be unchanged by With")
	}
}
