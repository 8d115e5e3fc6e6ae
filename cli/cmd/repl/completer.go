package repl

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/ardnew/arith/lang"
)

// ctrlCommands are the available control-mode commands.
var ctrlCommands = []string{"help", "env", "edit", "clear", "reset", "quit"}

// commandPrefix introduces a control command typed in eval mode.
const commandPrefix = ":"

// isWordBoundary returns true if the rune is a word delimiter for completion
// purposes: whitespace, the command prefix, and operator or punctuation
// characters of the language.
func isWordBoundary(r rune) bool {
	switch r {
	case ' ', '\t', ':',
		'(', ')', '=',
		'+', '-', '*', '/':
		return true
	}

	return false
}

// wordBounds returns the current word at the cursor position and its byte
// boundaries within input.
// Returns an empty word when the cursor sits on a boundary.
func wordBounds(input string, cursor int) (word string, start, end int) {
	if cursor > len(input) {
		cursor = len(input)
	}

	start = cursor

	for start > 0 {
		r, size := utf8.DecodeLastRuneInString(input[:start])
		if isWordBoundary(r) {
			break
		}

		start -= size
	}

	end = cursor

	for end < len(input) {
		r, size := utf8.DecodeRuneInString(input[end:])
		if isWordBoundary(r) {
			break
		}

		end += size
	}

	return input[start:end], start, end
}

// isCommandWord reports whether the word starting at wordStart is the name
// of a control command typed after the command prefix.
func isCommandWord(input string, wordStart int) bool {
	return strings.TrimSpace(input[:wordStart]) == commandPrefix
}

// candidates returns the completion candidates for the word at wordStart.
// Expressions complete variable names and builtins.
func candidates(
	mode inputMode,
	env *lang.Env,
	input string,
	wordStart int,
) []string {
	if mode == modeCtrl || isCommandWord(input, wordStart) {
		return ctrlCommands
	}

	// Only the first word of a command takes a completion.
	if strings.HasPrefix(strings.TrimSpace(input), commandPrefix) {
		return nil
	}

	return append(env.Names(), lang.Builtins()...)
}

// computeMatches calculates the fuzzy match results for the word at the
// cursor, ranked best-first. An empty word has no matches so the hint text
// stays visible.
func (m model) computeMatches() (
	matches fuzzy.Matches,
	cands []string,
	wordStart, wordEnd int,
) {
	input := m.input.Value()

	word, wordStart, wordEnd := wordBounds(input, m.input.Position())
	if word == "" {
		return nil, nil, wordStart, wordEnd
	}

	cands = candidates(m.mode, m.env, input, wordStart)
	if len(cands) == 0 {
		return nil, nil, wordStart, wordEnd
	}

	return fuzzy.Find(word, cands), cands, wordStart, wordEnd
}

// renderCandidateBar builds the single-line completion bar, ellipsized to fit
// within the given terminal width. The selected candidate (when tabbing) uses
// the selected style.
func renderCandidateBar(
	matches fuzzy.Matches,
	suggIdx int,
	tabActive bool,
	width int,
) string {
	if len(matches) == 0 || width <= 0 {
		return ""
	}

	const sep = "  "

	sepWidth := lipgloss.Width(sep)
	ellipsis := hintStyle.Render("...")
	ellipsisWidth := lipgloss.Width(ellipsis)

	var b strings.Builder

	used := 0

	for i, match := range matches {
		rendered := renderCandidate(match, tabActive && i == suggIdx)

		entryWidth := lipgloss.Width(rendered)
		if i > 0 {
			entryWidth += sepWidth
		}

		if used+entryWidth+ellipsisWidth > width && i > 0 {
			b.WriteString(sep)
			b.WriteString(ellipsis)

			break
		}

		if i > 0 {
			b.WriteString(sep)
		}

		b.WriteString(rendered)

		used += entryWidth
	}

	return b.String()
}

// renderCandidate renders a single candidate with matched characters
// highlighted. Builtin functions are displayed with a "()" suffix.
func renderCandidate(match fuzzy.Match, selected bool) string {
	baseStyle := suggestionStyle
	highlightStyle := matchStyle

	if selected {
		baseStyle = selectedStyle
		highlightStyle = selectedMatchStyle
	}

	var b strings.Builder

	for i, r := range match.Str {
		if slices.Contains(match.MatchedIndexes, i) {
			b.WriteString(highlightStyle.Render(string(r)))
		} else {
			b.WriteString(baseStyle.Render(string(r)))
		}
	}

	if isFunction(match.Str) {
		b.WriteString(baseStyle.Render("()"))
	}

	return b.String()
}

// isFunction reports whether name is a builtin function.
func isFunction(name string) bool {
	return slices.Contains(lang.Builtins(), name)
}
