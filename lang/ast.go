package lang

import (
	"iter"
	"strings"
)

// Expr is a node of the expression tree.
//
// The set of implementations is closed: [*Number], [*Variable],
// [*Assignment], [*BinaryOperation], and [*FunctionCall]. Every non-leaf node
// exclusively owns its children.
type Expr interface {
	// Pos returns the position of the first token of the expression.
	Pos() Position
	// String renders the expression in source syntax, parenthesizing every
	// binary operation.
	String() string

	exprNode()
}

// Number is an integer literal.
type Number struct {
	Value int64
	Token Token
}

// Variable is a reference to a name.
type Variable struct {
	Name Token
}

// Assignment binds the result of Value to Target.
type Assignment struct {
	Target *Variable
	Value  Expr
}

// BinaryOperation applies Operator to Left and Right.
type BinaryOperation struct {
	Left     Expr
	Operator Token
	Right    Expr
}

// FunctionCall calls the function named Callee with a single argument.
type FunctionCall struct {
	Callee   *Variable
	Argument Expr
}

func (*Number) exprNode()          {}
func (*Variable) exprNode()        {}
func (*Assignment) exprNode()      {}
func (*BinaryOperation) exprNode() {}
func (*FunctionCall) exprNode()    {}

func (n *Number) Pos() Position          { return n.Token.Pos }
func (v *Variable) Pos() Position        { return v.Name.Pos }
func (a *Assignment) Pos() Position      { return a.Target.Pos() }
func (b *BinaryOperation) Pos() Position { return b.Left.Pos() }
func (f *FunctionCall) Pos() Position    { return f.Callee.Pos() }

func (n *Number) String() string { return n.Token.Text }

func (v *Variable) String() string { return v.Name.Text }

func (a *Assignment) String() string {
	return a.Target.String() + " = " + a.Value.String()
}

func (b *BinaryOperation) String() string {
	return "(" + b.Left.String() + " " + b.Operator.Text + " " +
		b.Right.String() + ")"
}

func (f *FunctionCall) String() string {
	return f.Callee.String() + "(" + f.Argument.String() + ")"
}

// Identifier returns the name the variable refers to.
func (v *Variable) Identifier() string { return v.Name.Text }

// Program is the ordered sequence of top-level expressions, one per line.
type Program struct {
	Statements []Expr
}

// Len returns the number of top-level statements.
func (p *Program) Len() int { return len(p.Statements) }

// All returns an iterator over the top-level statements in program order.
func (p *Program) All() iter.Seq2[int, Expr] {
	return func(yield func(int, Expr) bool) {
		for i, stmt := range p.Statements {
			if !yield(i, stmt) {
				return
			}
		}
	}
}

// String renders each statement on its own line.
func (p *Program) String() string {
	var sb strings.Builder

	for _, stmt := range p.Statements {
		sb.WriteString(stmt.String())
		sb.WriteByte('\n')
	}

	return sb.String()
}
