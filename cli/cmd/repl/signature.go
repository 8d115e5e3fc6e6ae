package repl

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// builtinParams names the parameters of each builtin function.
var builtinParams = map[string][]string{
	"print": {"value"},
}

// signatureHintStyle styles for parameter hints.
var (
	signatureStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	signatureNameStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("6")).
				Bold(true)
	currentParamStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("11")).
				Bold(true)
)

// functionCall represents a detected function call in the input.
type functionCall struct {
	name   string // callee identifier
	inCall bool   // true if cursor is inside the argument list
}

// detectFunctionCall reports the innermost call whose argument list contains
// the cursor.
func detectFunctionCall(input string, cursor int) functionCall {
	if cursor > len(input) {
		cursor = len(input)
	}

	depth := 0
	open := -1

	for i := cursor - 1; i >= 0 && open < 0; i-- {
		switch input[i] {
		case ')':
			depth++
		case '(':
			if depth == 0 {
				open = i
			} else {
				depth--
			}
		}
	}

	if open < 0 {
		return functionCall{}
	}

	nameEnd := strings.TrimRight(input[:open], " ")

	_, start, _ := wordBounds(nameEnd, len(nameEnd))

	name := nameEnd[start:]
	if name == "" {
		return functionCall{}
	}

	return functionCall{name: name, inCall: true}
}

// getSignature returns the display signature and parameter names of the
// builtin function name. The signature is empty if name is not a builtin.
func getSignature(name string) (signature string, params []string) {
	if !isFunction(name) {
		return "", nil
	}

	params = builtinParams[name]

	return name + "(" + strings.Join(params, ", ") + ")", params
}

// renderSignatureHint renders the function signature with its argument
// highlighted. Every builtin takes exactly one argument.
func renderSignatureHint(signature string, params []string) string {
	open := strings.Index(signature, "(")
	if open == -1 || len(params) == 0 {
		return signatureStyle.Render(signature)
	}

	var b strings.Builder

	b.WriteString(signatureNameStyle.Render(signature[:open]))
	b.WriteString(signatureStyle.Render("("))
	b.WriteString(currentParamStyle.Render(params[0]))
	b.WriteString(signatureStyle.Render(") -> " + params[0]))

	return b.String()
}
