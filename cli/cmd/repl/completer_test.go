package repl

import (
	"slices"
	"testing"

	"github.com/sahilm/fuzzy"

	"github.com/ardnew/arith/lang"
)

func TestWordBounds(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		cursor    int
		wantWord  string
		wantStart int
		wantEnd   int
	}{
		{"simple", "foo", 3, "foo", 0, 3},
		{"after_plus", "a + fo", 6, "fo", 4, 6},
		{"after_minus", "a-fo", 4, "fo", 2, 4},
		{"after_paren", "print(fo", 8, "fo", 6, 8},
		{"after_equals", "x =fo", 5, "fo", 3, 5},
		{"after_command_prefix", ":he", 3, "he", 1, 3},
		{"empty_at_boundary", "a + ", 4, "", 4, 4},
		{"mid_word", "foobar", 3, "foobar", 0, 6},
		{"at_start", "foo", 0, "foo", 0, 3},
		{"between_operators", "a*b", 2, "b", 2, 3},
		{"underscore", "my_var", 6, "my_var", 0, 6},
		{"cursor_past_end", "ab", 9, "ab", 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, start, end := wordBounds(tt.input, tt.cursor)
			if word != tt.wantWord || start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("wordBounds(%q, %d) = (%q, %d, %d), want (%q, %d, %d)",
					tt.input, tt.cursor, word, start, end,
					tt.wantWord, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestCandidates(t *testing.T) {
	env := lang.NewEnv()
	env.Set("total", 1)
	env.Set("alpha", 2)

	tests := []struct {
		name      string
		mode      inputMode
		input     string
		wordStart int
		want      []string
	}{
		{"expression", modeEval, "to", 0, []string{"alpha", "total", "print"}},
		{"command_prefix", modeEval, ":en", 1, ctrlCommands},
		{"command_prefix_spaced", modeEval, " : en", 3, ctrlCommands},
		{"command_argument", modeEval, ":env js", 5, nil},
		{"control_mode", modeCtrl, "re", 0, ctrlCommands},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := candidates(tt.mode, env, tt.input, tt.wordStart)
			if !slices.Equal(got, tt.want) {
				t.Errorf("candidates(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestRenderCandidateBar(t *testing.T) {
	matches := fuzzy.Find("a", []string{"alpha", "beta", "gamma", "delta"})

	if got := renderCandidateBar(nil, 0, false, 80); got != "" {
		t.Errorf("expected empty bar without matches, got %q", got)
	}

	if got := renderCandidateBar(matches, 0, false, 0); got != "" {
		t.Errorf("expected empty bar at zero width, got %q", got)
	}

	wide := stripANSI(renderCandidateBar(matches, 0, false, 80))
	for _, m := range matches {
		if !contains(wide, m.Str) {
			t.Errorf("expected %q in bar %q", m.Str, wide)
		}
	}

	narrow := stripANSI(renderCandidateBar(matches, 0, false, 14))
	if !contains(narrow, "...") {
		t.Errorf("expected ellipsis in narrow bar, got %q", narrow)
	}
}

func TestRenderCandidate_FunctionSuffix(t *testing.T) {
	got := stripANSI(renderCandidate(fuzzy.Match{Str: "print"}, false))
	if got != "print()" {
		t.Errorf("expected print(), got %q", got)
	}

	got = stripANSI(renderCandidate(fuzzy.Match{Str: "total"}, true))
	if got != "total" {
		t.Errorf("expected total, got %q", got)
	}
}
