package lang

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func mustLex(t *testing.T, source string) []Token {
	t.Helper()

	tokens, err := Lex(source)
	if err != nil {
		t.Fatalf("lex error: %v", err)
	}

	return tokens
}

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string // String() of each statement
	}{
		{
			name:  "empty program",
			input: "",
			want:  []string{},
		},
		{
			name:  "precedence",
			input: "2 + 3 * 4",
			want:  []string{"(2 + (3 * 4))"},
		},
		{
			name:  "left associative subtraction",
			input: "10 - 3 - 2",
			want:  []string{"((10 - 3) - 2)"},
		},
		{
			name:  "left associative division",
			input: "20 / 4 / 5",
			want:  []string{"((20 / 4) / 5)"},
		},
		{
			name:  "mixed factor operators",
			input: "a * b / c",
			want:  []string{"((a * b) / c)"},
		},
		{
			name:  "chained assignment",
			input: "a = b = 2 * 3",
			want:  []string{"a = b = (2 * 3)"},
		},
		{
			name:  "parentheses",
			input: "(2 + 3) * 4",
			want:  []string{"((2 + 3) * 4)"},
		},
		{
			name:  "call argument",
			input: "c = print(a + 3)",
			want:  []string{"c = print((a + 3))"},
		},
		{
			name:  "assignment inside parentheses",
			input: "(a = 2) + 1",
			want:  []string{"(a = 2 + 1)"},
		},
		{
			name:  "multiple statements",
			input: "a = 1\nb = a\nprint(b)\n",
			want:  []string{"a = 1", "b = a", "print(b)"},
		},
		{
			name:  "final statement without newline",
			input: "x = 1\nx",
			want:  []string{"x = 1", "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := Parse(mustLex(t, tt.input))
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}

			if prog.Len() != len(tt.want) {
				t.Fatalf("expected %d statements, got %d", len(tt.want), prog.Len())
			}

			for i, stmt := range prog.All() {
				if got := stmt.String(); got != tt.want[i] {
					t.Errorf("statement %d: expected %q, got %q", i, tt.want[i], got)
				}
			}
		})
	}
}

func TestParse_Shape(t *testing.T) {
	prog, err := Parse(mustLex(t, "a = b = 2 * 3"))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	outer, ok := prog.Statements[0].(*Assignment)
	if !ok {
		t.Fatalf("expected *Assignment, got %T", prog.Statements[0])
	}

	if outer.Target.Identifier() != "a" {
		t.Errorf("expected target a, got %s", outer.Target.Identifier())
	}

	inner, ok := outer.Value.(*Assignment)
	if !ok {
		t.Fatalf("expected nested *Assignment, got %T", outer.Value)
	}

	if inner.Target.Identifier() != "b" {
		t.Errorf("expected target b, got %s", inner.Target.Identifier())
	}

	op, ok := inner.Value.(*BinaryOperation)
	if !ok {
		t.Fatalf("expected *BinaryOperation, got %T", inner.Value)
	}

	if op.Operator.Kind != KindStar {
		t.Errorf("expected Star, got %s", op.Operator.Kind)
	}

	if op.Pos() != (Position{Offset: 8, Line: 1, Column: 9}) {
		t.Errorf("expected position 1:9, got %s", op.Pos())
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{name: "blank line", input: "a = 1\n\nb = 2", want: ErrSyntax},
		{name: "leading newline", input: "\n", want: ErrSyntax},
		{name: "missing operand", input: "1 +", want: ErrUnexpectedEOF},
		{name: "missing assignment value", input: "a =", want: ErrUnexpectedEOF},
		{name: "unclosed paren", input: "(1 + 2", want: ErrUnexpectedEOF},
		{name: "unclosed call", input: "print(1", want: ErrUnexpectedEOF},
		{name: "unmatched close paren", input: "1 )", want: ErrSyntax},
		{name: "two values on one line", input: "1 2", want: ErrSyntax},
		{name: "assign to number", input: "1 = 2", want: ErrSyntax},
		{name: "assign to expression", input: "(a) = 2", want: ErrSyntax},
		{name: "unary minus", input: "-1", want: ErrSyntax},
		{name: "operator at start", input: "* 2", want: ErrSyntax},
		{name: "empty parens", input: "()", want: ErrSyntax},
		{name: "number too large", input: "99999999999999999999", want: ErrInvalidNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prog, err := Parse(mustLex(t, tt.input))
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}

			if prog != nil {
				t.Errorf("expected nil program on error, got %v", prog)
			}
		})
	}
}

func TestParse_NumberRange(t *testing.T) {
	prog, err := Parse(mustLex(t, "9223372036854775807"))
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}

	num, ok := prog.Statements[0].(*Number)
	if !ok {
		t.Fatalf("expected *Number, got %T", prog.Statements[0])
	}

	if num.Value != 9223372036854775807 {
		t.Errorf("expected max int64, got %d", num.Value)
	}
}

func TestParse_MaxDepth(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"((1))", nil},
		{"(((1)))", ErrMaxDepthExceeded},
		{"a = b = 1", nil},
		{"a = b = c = 1", ErrMaxDepthExceeded},
		{"1 + 2 - 3", nil},
		{"1 + 2 - 3 + 4", ErrMaxDepthExceeded},
		{"1 * 2 / 3 * 4", ErrMaxDepthExceeded},
		{"print(print(1))", nil},
		{"print(print(print(1)))", ErrMaxDepthExceeded},
		{"a = 1\nb = (2)\nc = 1 + 2", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Parse(mustLex(t, tt.input), WithMaxDepth(3))
			if !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}

			if err == nil {
				return
			}

			var perr *Error
			if !errors.As(err, &perr) {
				t.Fatalf("expected *Error, got %T", err)
			}

			if _, ok := perr.Attr("line"); !ok {
				t.Errorf("expected position in %v", err)
			}
		})
	}
}

func TestParse_MaxDepthDefault(t *testing.T) {
	const depth = 100_000

	source := "print(" + strings.Repeat("(", depth) + "1" + strings.Repeat(")", depth) + ")"

	var out bytes.Buffer

	err := Run(t.Context(), source, NewEnv(), WithOutput(&out), WithCache(false))
	if !errors.Is(err, ErrMaxDepthExceeded) {
		t.Fatalf("expected ErrMaxDepthExceeded, got %v", err)
	}

	if out.Len() != 0 {
		t.Errorf("expected no output, got %q", out.String())
	}

	// A non-positive limit selects the default.
	_, err = Parse(mustLex(t, "((1))"), WithMaxDepth(0))
	if err != nil {
		t.Errorf("expected default limit, got %v", err)
	}
}

func TestParse_LongChain(t *testing.T) {
	const terms = 20000

	source := "print(1" + strings.Repeat(" + 1", terms-1) + ")"

	_, err := ParseString(t.Context(), source, WithCache(false))
	if !errors.Is(err, ErrMaxDepthExceeded) {
		t.Fatalf("expected ErrMaxDepthExceeded, got %v", err)
	}

	var out bytes.Buffer

	err = Run(t.Context(), source, NewEnv(), WithOutput(&out), WithMaxDepth(2*terms))
	if err != nil {
		t.Fatal(err)
	}

	if got := out.String(); got != "20000\n" {
		t.Errorf("expected 20000, got %q", got)
	}
}
