package lang

import (
	"log/slog"
	"strconv"
)

// Kind classifies a token.
type Kind uint8

const (
	KindNumber     Kind = iota // NumberLiteral
	KindIdentifier             // Identifier
	KindEqual                  // Equal
	KindPlus                   // Plus
	KindMinus                  // Minus
	KindStar                   // Star
	KindSlash                  // Slash
	KindLeftParen              // LeftParen
	KindRightParen             // RightParen
	KindNewLine                // NewLine
)

var kindName = [...]string{
	KindNumber:     "NumberLiteral",
	KindIdentifier: "Identifier",
	KindEqual:      "Equal",
	KindPlus:       "Plus",
	KindMinus:      "Minus",
	KindStar:       "Star",
	KindSlash:      "Slash",
	KindLeftParen:  "LeftParen",
	KindRightParen: "RightParen",
	KindNewLine:    "NewLine",
}

// String returns the name of the token kind.
func (k Kind) String() string {
	if int(k) < len(kindName) {
		return kindName[k]
	}

	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// symbols maps each single-character lexeme to its token kind.
var symbols = map[rune]Kind{
	'=':  KindEqual,
	'+':  KindPlus,
	'-':  KindMinus,
	'*':  KindStar,
	'/':  KindSlash,
	'(':  KindLeftParen,
	')':  KindRightParen,
	'\n': KindNewLine,
}

// Position locates a token within its source text.
// Line and Column are 1-based; Offset is a byte offset.
type Position struct {
	Offset int
	Line   int
	Column int
}

// String returns the position formatted as "line:column".
func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// LogValue implements slog.LogValuer.
func (p Position) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("line", p.Line),
		slog.Int("column", p.Column),
	)
}

// Token is a classified lexeme. Its position is diagnostic only.
type Token struct {
	Kind Kind
	Text string
	Pos  Position
}

// String returns the kind and quoted text of the token.
func (t Token) String() string {
	return t.Kind.String() + " " + strconv.Quote(t.Text)
}
