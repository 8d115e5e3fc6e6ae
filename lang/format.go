package lang

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"
)

// FormatTokens writes one token per line as "line:column kind text".
func FormatTokens(w io.Writer, tokens []Token) error {
	for _, tok := range tokens {
		_, err := fmt.Fprintf(w, "%-7s %-14s %s\n",
			tok.Pos, tok.Kind, strconv.Quote(tok.Text))
		if err != nil {
			return err
		}
	}

	return nil
}

// Print writes the program as an indented tree, one node per line.
func (p *Program) Print(w io.Writer) error {
	tw := &treeWriter{w: w}

	for i, stmt := range p.All() {
		tw.put(0, "Statement", strconv.Itoa(i))
		tw.expr(stmt, 1)
	}

	return tw.err
}

// treeWriter writes indented "label: value" lines and keeps the first write
// error, after which it writes nothing.
type treeWriter struct {
	w   io.Writer
	err error
}

func (tw *treeWriter) put(indent int, item ...string) {
	if tw.err != nil {
		return
	}

	_, tw.err = io.WriteString(tw.w,
		strings.Repeat("  ", indent)+strings.Join(item, ": ")+"\n")
}

func (tw *treeWriter) expr(e Expr, indent int) {
	switch n := e.(type) {
	case *Number:
		tw.put(indent, "Number", n.Token.Text)

	case *Variable:
		tw.put(indent, "Variable", n.Identifier())

	case *Assignment:
		tw.put(indent, "Assignment", n.Target.Identifier())
		tw.expr(n.Value, indent+1)

	case *BinaryOperation:
		tw.put(indent, "BinaryOperation", n.Operator.Text)
		tw.expr(n.Left, indent+1)
		tw.expr(n.Right, indent+1)

	case *FunctionCall:
		tw.put(indent, "FunctionCall", n.Callee.Identifier())
		tw.expr(n.Argument, indent+1)

	default:
		tw.put(indent, fmt.Sprintf("%T", e))
	}
}

// Format writes the environment as "name = value" lines in name order.
func (e *Env) Format(_ context.Context, w io.Writer) error {
	for name, value := range e.All() {
		_, err := fmt.Fprintf(w, "%s = %d\n", name, value)
		if err != nil {
			return err
		}
	}

	return nil
}

// FormatJSON writes the environment as a JSON object.
// A positive indent selects multi-line output.
func (e *Env) FormatJSON(_ context.Context, w io.Writer, indent int) error {
	var (
		data []byte
		err  error
	)

	if indent > 0 {
		data, err = json.MarshalIndent(e.Snapshot(), "", strings.Repeat(" ", indent))
	} else {
		data, err = json.Marshal(e.Snapshot())
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

// FormatYAML writes the environment as a YAML mapping in name order.
// A positive indent selects block style, otherwise flow style.
func (e *Env) FormatYAML(ctx context.Context, w io.Writer, indent int) error {
	var opts []yaml.EncodeOption
	if indent > 0 {
		opts = append(opts, yaml.Indent(indent))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	items := make(yaml.MapSlice, 0, e.Len())
	for name, value := range e.All() {
		items = append(items, yaml.MapItem{Key: name, Value: value})
	}

	data, err := yaml.MarshalContext(ctx, items, opts...)
	if err != nil {
		return err
	}

	_, err = w.Write(data)

	return err
}
