package lang

import (
	"log/slog"
	"strconv"
)

// Parse builds the program from a token sequence.
//
// Grammar, from lowest to highest precedence:
//
//	program    → (expr NEWLINE)*
//	expr       → assignment
//	assignment → IDENTIFIER '=' expr | term
//	term       → factor (('+' | '-') factor)*
//	factor     → primary (('*' | '/') primary)*
//	primary    → NUMBER | IDENTIFIER '(' expr ')' | IDENTIFIER | '(' expr ')'
//
// The final statement may end at end of input instead of a newline.
//
// Nesting deeper than the limit set with [WithMaxDepth] fails with
// [ErrMaxDepthExceeded]. Every parenthesized expression, call argument,
// assignment value and chained binary operator counts as one level.
func Parse(tokens []Token, opts ...Option) (*Program, error) {
	p := &parser{tokens: tokens, maxDepth: makeConfig(opts...).maxDepth}

	return p.parseProgram()
}

// parser holds the parser state.
type parser struct {
	tokens   []Token
	pos      int
	depth    int
	maxDepth int
}

// parseProgram parses every statement, one per line.
func (p *parser) parseProgram() (*Program, error) {
	prog := new(Program)
	prog.Statements = make([]Expr, 0)

	for !p.eof() {
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		err = p.expectEndOfLine()
		if err != nil {
			return nil, err
		}

		prog.Statements = append(prog.Statements, expr)
	}

	return prog, nil
}

func (p *parser) parseExpr() (Expr, error) {
	defer func(depth int) { p.depth = depth }(p.depth)

	err := p.descend()
	if err != nil {
		return nil, err
	}

	return p.parseAssignment()
}

// descend enters one more level of nesting.
func (p *parser) descend() error {
	p.depth++

	if p.depth <= p.maxDepth {
		return nil
	}

	tok, ok := p.peek()
	if !ok && p.pos > 0 {
		tok = p.tokens[p.pos-1]
	}

	return ErrMaxDepthExceeded.WithPosition(tok.Pos).
		With(slog.Int("max_depth", p.maxDepth))
}

// parseAssignment parses: IDENTIFIER '=' expr | term.
// The right-hand side recurses into expr, so chained assignment associates
// right to left.
func (p *parser) parseAssignment() (Expr, error) {
	if next, ok := p.peekAt(1); !ok || next.Kind != KindEqual {
		return p.parseTerm()
	}

	target, err := p.parseVariable()
	if err != nil {
		return nil, err
	}

	_, err = p.expect(KindEqual)
	if err != nil {
		return nil, err
	}

	value, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &Assignment{Target: target, Value: value}, nil
}

// parseTerm parses: factor (('+' | '-') factor)*.
func (p *parser) parseTerm() (Expr, error) {
	return p.parseLeftFold(p.parseFactor, KindPlus, KindMinus)
}

// parseFactor parses: primary (('*' | '/') primary)*.
func (p *parser) parseFactor() (Expr, error) {
	return p.parseLeftFold(p.parsePrimary, KindStar, KindSlash)
}

// parseLeftFold parses operand (op operand)* for the two given operator
// kinds, wrapping the running result as the left operand of each new
// operation.
func (p *parser) parseLeftFold(
	operand func() (Expr, error),
	op1, op2 Kind,
) (Expr, error) {
	defer func(depth int) { p.depth = depth }(p.depth)

	lhs, err := operand()
	if err != nil {
		return nil, err
	}

	for {
		tok, ok := p.peek()
		if !ok || (tok.Kind != op1 && tok.Kind != op2) {
			return lhs, nil
		}

		// Each operator nests the operation built so far one level deeper.
		err = p.descend()
		if err != nil {
			return nil, err
		}

		p.pos++

		rhs, err := operand()
		if err != nil {
			return nil, err
		}

		lhs = &BinaryOperation{Left: lhs, Operator: tok, Right: rhs}
	}
}

// parsePrimary parses:
// NUMBER | IDENTIFIER '(' expr ')' | IDENTIFIER | '(' expr ')'.
func (p *parser) parsePrimary() (Expr, error) {
	tok, err := p.next("expression")
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case KindNumber:
		num, err := parseNumber(tok)
		if err != nil {
			return nil, err
		}

		return num, nil

	case KindIdentifier:
		name := &Variable{Name: tok}

		if next, ok := p.peek(); !ok || next.Kind != KindLeftParen {
			return name, nil
		}

		p.pos++ // skip '('

		arg, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		_, err = p.expect(KindRightParen)
		if err != nil {
			return nil, err
		}

		return &FunctionCall{Callee: name, Argument: arg}, nil

	case KindLeftParen:
		inner, err := p.parseExpr()
		if err != nil {
			return nil, err
		}

		_, err = p.expect(KindRightParen)
		if err != nil {
			return nil, err
		}

		return inner, nil

	default:
		return nil, ErrSyntax.WithPosition(tok.Pos).
			With(slog.String("unexpected", tok.String()))
	}
}

// parseVariable parses a single identifier.
func (p *parser) parseVariable() (*Variable, error) {
	tok, err := p.expect(KindIdentifier)
	if err != nil {
		return nil, err
	}

	return &Variable{Name: tok}, nil
}

// parseNumber converts a number literal token to its value.
func parseNumber(tok Token) (*Number, error) {
	value, err := strconv.ParseInt(tok.Text, 10, 64)
	if err != nil {
		return nil, ErrInvalidNumber.WithPosition(tok.Pos).
			With(slog.String("literal", tok.Text))
	}

	return &Number{Value: value, Token: tok}, nil
}

// Helper methods

func (p *parser) peek() (Token, bool) {
	return p.peekAt(0)
}

func (p *parser) peekAt(n int) (Token, bool) {
	if p.pos+n >= len(p.tokens) {
		return Token{}, false
	}

	return p.tokens[p.pos+n], true
}

// next consumes a token that must be present. want describes the construct
// being parsed for the error message.
func (p *parser) next(want string) (Token, error) {
	tok, ok := p.peek()
	if !ok {
		return Token{}, ErrUnexpectedEOF.With(
			slog.String("expected", want),
		)
	}

	p.pos++

	return tok, nil
}

// expect consumes a token that must be present and of the given kind.
func (p *parser) expect(kind Kind) (Token, error) {
	tok, err := p.next(kind.String())
	if err != nil {
		return Token{}, err
	}

	if tok.Kind != kind {
		return Token{}, ErrSyntax.WithPosition(tok.Pos).
			With(
				slog.String("expected", kind.String()),
				slog.String("got", tok.String()),
			)
	}

	return tok, nil
}

// expectEndOfLine consumes the newline ending a statement. End of input is
// an implicit terminator.
func (p *parser) expectEndOfLine() error {
	if p.eof() {
		return nil
	}

	_, err := p.expect(KindNewLine)

	return err
}

func (p *parser) eof() bool {
	return p.pos >= len(p.tokens)
}
