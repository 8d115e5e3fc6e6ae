package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/ardnew/arith/lang"
)

const sampleProgram = `a = 2 * 3
b = a
c = a + b / 2
print(c)
print(1)
`

func commandContext(t *testing.T, stdin string, opts ...lang.Option) (context.Context, *bytes.Buffer) {
	t.Helper()

	var out bytes.Buffer

	ctx := WithInput(t.Context(), strings.NewReader(stdin))
	ctx = WithOutput(ctx, &out)
	ctx = WithOptions(ctx, opts...)

	return ctx, &out
}

func TestRun(t *testing.T) {
	tests := []struct {
		name   string
		env    string
		indent int
		want   string
	}{
		{"output only", "none", 2, "9\n1\n"},
		{"text env", "text", 2, "9\n1\na = 6\nb = 6\nc = 9\n"},
		{"json env", "json", 0, "9\n1\n{\"a\":6,\"b\":6,\"c\":9}\n"},
		{"yaml env", "yaml", 2, "9\n1\na: 6\nb: 6\nc: 9\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, out := commandContext(t, sampleProgram)

			err := (&Run{Env: tt.env, Indent: tt.indent}).Run(ctx)
			if err != nil {
				t.Fatal(err)
			}

			if got := out.String(); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRun_FromFiles(t *testing.T) {
	dir := t.TempDir()

	first := writeFile(t, dir, "first.arith", "x = 40")
	second := writeFile(t, dir, "second.arith", "print(x + 2)\n")

	ctx, out := commandContext(t, "")

	err := (&Run{Files: []string{first, second}}).Run(ctx)
	if err != nil {
		t.Fatal(err)
	}

	if got := out.String(); got != "42\n" {
		t.Errorf("expected 42, got %q", got)
	}
}

func TestRun_Errors(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		opts    []lang.Option
		env     string
		want    error
		wantOut string
	}{
		{"undefined variable", "print(1)\nprint(z)\n", nil, "none", lang.ErrUndefinedVariable, "1\n"},
		{"syntax error prevents output", "print(1)\n= 2\n", nil, "none", lang.ErrSyntax, ""},
		{"checked overflow", "print(9223372036854775807 * 2)\n",
			[]lang.Option{lang.WithCheckedArithmetic(true)}, "none", lang.ErrOverflow, ""},
		{"invalid env format", "a = 1\n", nil, "xml", ErrInvalidFormat, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, out := commandContext(t, tt.source, tt.opts...)

			err := (&Run{Env: tt.env}).Run(ctx)
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}

			if got := out.String(); got != tt.wantOut {
				t.Errorf("expected output %q, got %q", tt.wantOut, got)
			}
		})
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, out := commandContext(t, sampleProgram)

	ctx, cancel := context.WithCancel(ctx)
	cancel()

	err := (&Run{}).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}

	if out.Len() != 0 {
		t.Errorf("expected no output, got %q", out.String())
	}
}

func TestTokens(t *testing.T) {
	ctx, out := commandContext(t, "a = 12\n")

	err := (&Tokens{}).Run(ctx)
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 tokens, got %q", out.String())
	}

	for i, kind := range []string{"Identifier", "Equal", "NumberLiteral", "NewLine"} {
		if !strings.Contains(lines[i], kind) {
			t.Errorf("line %d: expected %s in %q", i, kind, lines[i])
		}
	}

	ctx, _ = commandContext(t, "a = 1x\n")
	if err := (&Tokens{}).Run(ctx); !errors.Is(err, lang.ErrLex) {
		t.Errorf("expected ErrLex, got %v", err)
	}
}

func TestAST(t *testing.T) {
	ctx, out := commandContext(t, "a = b + 2\n")

	err := (&AST{}).Run(ctx)
	if err != nil {
		t.Fatal(err)
	}

	for _, want := range []string{"Assignment: a", "BinaryOperation: +", "Variable: b", "Number: 2"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("expected %q in %q", want, out.String())
		}
	}

	ctx, _ = commandContext(t, "a = (1\n")
	if err := (&AST{}).Run(ctx); !errors.Is(err, lang.ErrSyntax) {
		t.Errorf("expected ErrSyntax, got %v", err)
	}
}
