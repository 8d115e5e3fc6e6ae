package lang

import (
	"log/slog"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Lex converts source text into the ordered sequence of tokens covering it.
//
// Scanning is a single left-to-right pass. The only lexical error is a
// character other than a digit or terminator inside a number literal.
func Lex(source string) ([]Token, error) {
	l := &lexer{
		input: source,
		line:  1,
		col:   1,
	}

	return l.run()
}

// lexer holds the lexer state.
type lexer struct {
	input  string
	pos    int
	line   int
	col    int
	tokens []Token
}

func (l *lexer) run() ([]Token, error) {
	for !l.eof() {
		start := l.position()
		ch := l.peek()

		if kind, ok := symbols[ch]; ok {
			l.advance()
			l.emit(kind, start)

			continue
		}

		switch {
		case isDigit(ch):
			err := l.lexNumber()
			if err != nil {
				return nil, err
			}

		case ch == ' ':
			l.advance()

		default:
			l.lexIdentifier()
		}
	}

	return l.tokens, nil
}

// lexNumber consumes a run of digits. The terminating character is left for
// the main loop.
func (l *lexer) lexNumber() error {
	start := l.position()

	for !l.eof() {
		ch := l.peek()
		if isNumberTerminator(ch) {
			break
		}

		if !isDigit(ch) {
			return ErrLex.WithPosition(l.position()).
				With(slog.String("char", strconv.QuoteRune(ch)))
		}

		l.advance()
	}

	l.emit(KindNumber, start)

	return nil
}

// lexIdentifier consumes the current character and every identifier
// character that follows it.
func (l *lexer) lexIdentifier() {
	start := l.position()

	l.advance()

	for !l.eof() && isIdentifierContinue(l.peek()) {
		l.advance()
	}

	l.emit(KindIdentifier, start)
}

// emit appends a token spanning from start to the current position.
func (l *lexer) emit(kind Kind, start Position) {
	l.tokens = append(l.tokens, Token{
		Kind: kind,
		Text: l.input[start.Offset:l.pos],
		Pos:  start,
	})
}

// Helper methods

func (l *lexer) peek() rune {
	if l.eof() {
		return 0
	}

	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])

	return r
}

func (l *lexer) advance() {
	if l.eof() {
		return
	}

	r, size := utf8.DecodeRuneInString(l.input[l.pos:])

	l.pos += size
	if r == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
}

func (l *lexer) eof() bool {
	return l.pos >= len(l.input)
}

func (l *lexer) position() Position {
	return Position{
		Offset: l.pos,
		Line:   l.line,
		Column: l.col,
	}
}

// Character classification

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isNumberTerminator(r rune) bool {
	return r == ' ' || r == ')' || r == '\n'
}

func isIdentifierContinue(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}
