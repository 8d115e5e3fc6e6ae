package repl

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ardnew/arith/lang"
	"github.com/ardnew/arith/log"
)

// editProgramMsg is sent when editing the session completes successfully.
type editProgramMsg struct {
	source string
	prog   *lang.Program
}

// editCancelledMsg is sent when the user cleared the editor content.
type editCancelledMsg struct{}

// editDeclinedMsg is sent when the user declined to re-edit after a parse
// error.
type editDeclinedMsg struct{}

// editErrorMsg is sent when the edit process encounters a non-parse error.
type editErrorMsg struct{ err error }

const (
	evalPrompt = "➜ "
	ctrlPrompt = " :"
)

func helpMessage() string {
	return `
: Commands (press Esc to toggle mode, or prefix with ':'):

  help            Print this cruft
  env [format]    Print variables (text, json, yaml)
  edit            Edit the session in external $EDITOR and replay it
  clear           Clear screen
  reset           Forget all variables and the session
  quit            Exit REPL

Usage:
  Type a statement to evaluate it, e.g. "a = 2 * (b + 1)" or "print(a)"
  Numbers must be followed by a space, ')' or the end of the line
  Completions appear automatically as you type
  Press Tab / Shift-Tab to cycle through candidates
  Press Space to accept the current candidate
  Use Up/Down arrows for history navigation (mode switches automatically)
  Use Shift+Up/Shift+Down for history navigation within current mode only
  Press Ctrl+C on empty line or Ctrl+D to exit
`
}

// inputMode represents the current input mode.
type inputMode int

const (
	modeEval inputMode = iota
	modeCtrl
)

// Styles.
var (
	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("6")).
			Bold(true)
	ctrlPromptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("5")).
			Bold(true)
	inputStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("15"))
	outputStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	resultStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errorStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	hintStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	suggestionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	matchStyle      = lipgloss.NewStyle().
			Foreground(lipgloss.Color("4")).
			Bold(true)
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("0")).
			Background(lipgloss.Color("4"))
	selectedMatchStyle = selectedStyle.Bold(true)
)

// formatCommand formats the echo line of an evaluated statement.
func formatCommand(input string) string {
	return promptStyle.Render(evalPrompt) + inputStyle.Render(input)
}

// formatCtrlCommand formats the echo line of a control command.
func formatCtrlCommand(input string) string {
	return ctrlPromptStyle.Render(ctrlPrompt) + inputStyle.Render(input)
}

// model is the Bubble Tea model for the REPL.
type model struct {
	ctxFunc      func() context.Context
	input        textinput.Model
	env          *lang.Env
	opts         []lang.Option
	session      []string // statements evaluated successfully, in order
	logger       log.Logger
	history      *History
	historyIdx   int
	matches      fuzzy.Matches // current fuzzy match results
	candidates   []string      // backing candidate list
	wordStart    int           // byte offset of current word start
	wordEnd      int           // byte offset of current word end
	suggIdx      int           // selected candidate index
	tabActive    bool          // whether user is tab-cycling
	preTabText   string        // input text before tab-cycling began
	preTabCursor int           // cursor position before tab-cycling began
	width        int           // terminal width for ellipsization
	quitting     bool
	mode         inputMode
	evalText     string
	evalCursor   int
	ctrlText     string
	ctrlCursor   int
}

// Run starts the REPL. If preload is not nil, the program it contains is run
// first and becomes the start of the session.
//
// History is persisted in cacheDir, or kept in memory if cacheDir is empty.
// Options are applied to every statement;
// the output of the print builtin is captured and shown in the REPL.
func Run(
	ctx context.Context,
	preload io.Reader,
	cacheDir string,
	logger log.Logger,
	opts ...lang.Option,
) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) { cancel(*err) }(&err)

	logger.TraceContext(
		ctx,
		"repl start",
		slog.String("cache_dir", cacheDir),
		slog.Bool("has_source", preload != nil),
	)

	env := lang.NewEnv()

	var session []string

	if preload != nil {
		prog, err := lang.ParseReader(ctx, preload, opts...)
		if err != nil {
			return err
		}

		err = lang.Evaluate(ctx, prog, env, opts...)
		if err != nil {
			return err
		}

		for _, stmt := range prog.All() {
			session = append(session, stmt.String())
		}

		logger.TraceContext(
			ctx,
			"repl program loaded",
			slog.Int("statements", prog.Len()),
			slog.Int("variables", env.Len()),
		)
	}

	var historyPath string
	if cacheDir != "" {
		historyPath = filepath.Join(cacheDir, baseHistory)
	}

	history := NewHistory(historyPath)

	err = history.Load()
	if err != nil {
		logger.WarnContext(ctx, "could not load history", slog.Any("error", err))
	}

	logger.TraceContext(
		ctx,
		"repl history loaded",
		slog.Int("entry_count", history.Len()),
	)

	m := newModel(ctx, env, history, logger, opts...)
	m.session = session

	_, err = tea.NewProgram(m, tea.WithContext(ctx)).Run()

	return err
}

const defaultWidth = 80

func newModel(
	ctx context.Context,
	env *lang.Env,
	history *History,
	logger log.Logger,
	opts ...lang.Option,
) model {
	ti := textinput.New()
	ti.Prompt = promptStyle.Render(evalPrompt)
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = defaultWidth

	return model{
		ctxFunc:    func() context.Context { return ctx },
		input:      ti,
		env:        env,
		opts:       opts,
		logger:     logger,
		history:    history,
		historyIdx: history.Len(),
		suggIdx:    -1,
		width:      defaultWidth,
		mode:       modeEval,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = msg.Width - len(evalPrompt) - 2

		return m, nil

	case editProgramMsg:
		return m.replay(msg.source, msg.prog)

	case editCancelledMsg:
		return m, tea.Println(hintStyle.Render("edit cancelled"))

	case editDeclinedMsg:
		m.quitting = true

		return m, tea.Quit

	case editErrorMsg:
		return m, tea.Println(errorStyle.Render("error: " + msg.err.Error()))
	}

	var cmd tea.Cmd

	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

func (m model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.input.View())
	b.WriteString("\n")

	input := m.input.Value()
	call := detectFunctionCall(input, m.input.Position())

	switch {
	case m.historyIdx < m.history.Len():
		hint := fmt.Sprintf("%s/%d",
			lipgloss.NewStyle().Bold(true).Render(strconv.Itoa(m.historyIdx+1)),
			m.history.Len())
		b.WriteString(hintStyle.Render(hint))

	case strings.TrimSpace(input) == "":
		hint := "Type a statement or press Esc for commands"
		if m.mode == modeCtrl {
			hint = "Type: " + strings.Join(ctrlCommands, ", ") +
				" (press Esc to return)"
		}

		b.WriteString(hintStyle.Render(hint))

	case len(m.matches) > 0:
		b.WriteString(renderCandidateBar(m.matches, m.suggIdx, m.tabActive, m.width))

	case call.inCall && m.mode == modeEval:
		signature, params := getSignature(call.name)
		if signature != "" {
			b.WriteString(renderSignatureHint(signature, params))
		}
	}

	b.WriteString("\n")

	return b.String()
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	m.logger.TraceContext(
		m.ctxFunc(),
		"repl keypress",
		slog.String("key", msg.String()),
		slog.Int("type", int(msg.Type)),
	)

	switch msg.Type {
	case tea.KeyCtrlC:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		m.input.SetValue("")
		m.tabActive = false
		m.historyIdx = m.history.Len()
		refreshMatches(&m, false)

		return m, nil

	case tea.KeyCtrlD:
		if m.input.Value() == "" {
			m.quitting = true

			return m, tea.Quit
		}

		return m, nil

	case tea.KeyEnter:
		if !m.tabActive || len(m.matches) == 0 {
			return m.executeInput()
		}
		// Lock in the current tab candidate without executing.
		m.tabActive = false
		refreshMatches(&m, true)

		return m, nil

	case tea.KeyTab:
		return m.cycle(1)

	case tea.KeyShiftTab:
		return m.cycle(-1)

	case tea.KeyUp:
		return m.historyStep(-1, false)

	case tea.KeyDown:
		return m.historyStep(1, false)

	case tea.KeyShiftUp:
		return m.historyStep(-1, true)

	case tea.KeyShiftDown:
		return m.historyStep(1, true)

	case tea.KeyEsc:
		if m.tabActive {
			m.tabActive = false
			m.input.SetValue(m.preTabText)
			m.input.SetCursor(m.preTabCursor)
			refreshMatches(&m, false)

			return m, nil
		}

		return m.toggleMode()

	case tea.KeyRunes, tea.KeySpace:
		// Space accepts the candidate while tab-cycling.
		if m.tabActive && msg.String() == " " {
			m.tabActive = false
		}

		var cmd tea.Cmd

		m.historyIdx = m.history.Len()
		m.input, cmd = m.input.Update(msg)
		refreshMatches(&m, true)

		return m, cmd
	}

	// Other keys (backspace, delete, arrows) edit or move without
	// auto-confirming a completion.
	var cmd tea.Cmd

	m.tabActive = false
	m.historyIdx = m.history.Len()
	m.input, cmd = m.input.Update(msg)
	refreshMatches(&m, false)

	return m, cmd
}

// cycle moves the tab selection by step through the current matches. A single
// candidate is completed and confirmed immediately.
func (m model) cycle(step int) (model, tea.Cmd) {
	n := len(m.matches)
	if n == 0 {
		return m, nil
	}

	if n == 1 {
		replaceCurrentWord(&m, m.matches[0].Str)
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil

		return m, nil
	}

	switch {
	case m.tabActive:
		m.suggIdx = (m.suggIdx + step + n) % n
	case step < 0:
		m.tabActive = true
		m.preTabText = m.input.Value()
		m.preTabCursor = m.input.Position()
		m.suggIdx = n - 1
	default:
		m.tabActive = true
		m.preTabText = m.input.Value()
		m.preTabCursor = m.input.Position()
		m.suggIdx = 0
	}

	replaceCurrentWord(&m, m.matches[m.suggIdx].Str)

	return m, nil
}

// replaceCurrentWord replaces the current word boundaries in the input with
// the given replacement text and repositions the cursor.
func replaceCurrentWord(m *model, replacement string) {
	input := m.input.Value()
	cursor := m.wordStart + len(replacement)

	m.input.SetValue(input[:m.wordStart] + replacement + input[m.wordEnd:])
	m.input.SetCursor(cursor)

	m.wordEnd = cursor
}

// refreshMatches recomputes fuzzy matches for the current input state.
// When autoConfirm is true it also confirms the completion when exactly one
// candidate remains and the typed word already equals it. Deletions and
// cursor movement pass false so editing never completes unexpectedly.
func refreshMatches(m *model, autoConfirm bool) {
	m.matches, m.candidates, m.wordStart, m.wordEnd = m.computeMatches()

	if !m.tabActive {
		m.suggIdx = -1
	}

	if !autoConfirm || len(m.matches) != 1 {
		return
	}

	if m.input.Value()[m.wordStart:m.wordEnd] == m.matches[0].Str {
		m.tabActive = false
		m.suggIdx = -1
		m.matches = nil
	}
}

func (m model) executeInput() (model, tea.Cmd) {
	input := strings.TrimSpace(m.input.Value())
	if input == "" {
		return m, nil
	}

	m.evalText, m.evalCursor = "", 0
	m.ctrlText, m.ctrlCursor = "", 0
	m.input.SetValue("")
	m.matches = nil

	mode := m.mode
	if cmd, ok := strings.CutPrefix(input, commandPrefix); ok && mode == modeEval {
		mode, input = modeCtrl, strings.TrimSpace(cmd)
	}

	err := m.history.Add(input, mode)
	if err != nil {
		m.logger.WarnContext(m.ctxFunc(), "could not save history",
			slog.Any("error", err))
	}

	m.historyIdx = m.history.Len()

	if mode == modeCtrl {
		m.logger.TraceContext(
			m.ctxFunc(),
			"repl command",
			slog.String("input", input),
		)

		return m.executeCommand(input)
	}

	m.logger.TraceContext(
		m.ctxFunc(),
		"repl eval",
		slog.String("input", input),
	)

	echo := tea.Println(formatCommand(input))

	output, value, err := m.evaluate(input)

	cmds := []tea.Cmd{echo}
	if output != "" {
		cmds = append(cmds, tea.Println(outputStyle.Render(output)))
	}

	if err != nil {
		m.logger.TraceContext(
			m.ctxFunc(),
			"repl eval result",
			slog.Any("error", err),
		)

		return m, tea.Sequence(append(cmds,
			tea.Println(errorStyle.Render("error: "+err.Error())))...)
	}

	m.session = append(m.session, input)

	m.logger.TraceContext(
		m.ctxFunc(),
		"repl eval result",
		slog.Int64("value", value),
		slog.Int("variables", m.env.Len()),
	)

	return m, tea.Sequence(append(cmds,
		tea.Println(resultStyle.Render(strconv.FormatInt(value, 10))))...)
}

// evaluate parses input as a program and evaluates it against the session
// environment. It returns the captured print output without its final line
// terminator and the value of the last statement. Output is returned even if
// evaluation fails, but the bindings of a failed line are discarded.
func (m model) evaluate(input string) (output string, value int64, err error) {
	ctx := m.ctxFunc()

	var out bytes.Buffer

	defer func() { output = strings.TrimSuffix(out.String(), "\n") }()

	prog, err := lang.ParseString(ctx, input, m.opts...)
	if err != nil {
		return "", 0, err
	}

	opts := append(m.opts[:len(m.opts):len(m.opts)], lang.WithOutput(&out))

	// The session environment changes only if every statement succeeds.
	scratch := m.env.Clone()

	for _, stmt := range prog.All() {
		value, err = lang.EvaluateExpr(ctx, stmt, scratch, opts...)
		if err != nil {
			return "", 0, err
		}
	}

	*m.env = *scratch

	return "", value, nil
}

func (m model) executeCommand(input string) (model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}

	echo := tea.Println(formatCtrlCommand(input))

	cmd, args := parts[0], parts[1:]

	m.logger.TraceContext(
		m.ctxFunc(),
		"repl exec command",
		slog.String("command", cmd),
		slog.Any("args", args),
	)

	switch cmd {
	case "q", "quit", "exit":
		m.quitting = true

		return m, tea.Sequence(echo, tea.Quit)

	case "h", "help":
		return m, tea.Sequence(echo, tea.Println(helpMessage()))

	case "v", "env":
		format := "text"
		if len(args) > 0 {
			format = args[0]
		}

		view, err := m.envView(format)
		if err != nil {
			return m, tea.Sequence(echo,
				tea.Println(errorStyle.Render("error: "+err.Error())))
		}

		return m, tea.Sequence(echo, tea.Println(view))

	case "c", "clear":
		return m, tea.ClearScreen

	case "r", "reset":
		m.env = lang.NewEnv()
		m.session = nil

		return m, tea.Sequence(echo,
			tea.Println(hintStyle.Render("environment reset")))

	case "e", "edit":
		return m, tea.Sequence(echo, m.edit())

	default:
		err := fmt.Errorf("%w: %s (try 'help')", ErrUnknownCommand, cmd)

		return m, tea.Println(errorStyle.Render(err.Error()))
	}
}

// envView renders the session environment in the given format.
func (m model) envView(format string) (string, error) {
	if m.env.Len() == 0 {
		return hintStyle.Render("(no variables)"), nil
	}

	ctx := m.ctxFunc()

	var (
		buf bytes.Buffer
		err error
	)

	switch format {
	case "text":
		err = m.env.Format(ctx, &buf)
	case "json":
		err = m.env.FormatJSON(ctx, &buf, 2)
	case "yaml":
		err = m.env.FormatYAML(ctx, &buf, 2)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	if err != nil {
		return "", err
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// edit returns the command that opens the session transcript in an external
// editor.
func (m model) edit() tea.Cmd {
	cmd := &editProgramCommand{
		source:  strings.Join(m.session, "\n"),
		opts:    m.opts,
		ctxFunc: m.ctxFunc,
		logger:  m.logger,
	}

	if cmd.source != "" {
		cmd.source += "\n"
	}

	return tea.Exec(cmd, func(err error) tea.Msg {
		if errors.Is(err, ErrEditDeclined) {
			return editDeclinedMsg{}
		}

		if err != nil {
			return editErrorMsg{err: err}
		}

		if cmd.prog == nil {
			return editCancelledMsg{}
		}

		return editProgramMsg{source: cmd.edited, prog: cmd.prog}
	})
}

// replay evaluates an edited session in a fresh environment. On failure the
// previous environment and session are kept.
func (m model) replay(source string, prog *lang.Program) (model, tea.Cmd) {
	var out bytes.Buffer

	env := lang.NewEnv()
	opts := append(m.opts[:len(m.opts):len(m.opts)], lang.WithOutput(&out))

	err := lang.Evaluate(m.ctxFunc(), prog, env, opts...)

	m.logger.TraceContext(
		m.ctxFunc(),
		"repl edit complete",
		slog.Int("statements", prog.Len()),
		slog.Bool("success", err == nil),
	)

	var cmds []tea.Cmd
	if s := strings.TrimSuffix(out.String(), "\n"); s != "" {
		cmds = append(cmds, tea.Println(outputStyle.Render(s)))
	}

	if err != nil {
		return m, tea.Sequence(append(cmds,
			tea.Println(errorStyle.Render("error: "+err.Error())))...)
	}

	m.env = env
	m.session = strings.Split(strings.TrimRight(source, "\n"), "\n")

	return m, tea.Sequence(append(cmds,
		tea.Println(resultStyle.Render("session replayed")))...)
}

// historyStep moves through history by step (-1 older, 1 newer). When
// sameMode is set, entries of the other mode are skipped; otherwise the mode
// follows the recalled entry.
func (m model) historyStep(step int, sameMode bool) (model, tea.Cmd) {
	for i := m.historyIdx + step; i >= 0 && i < m.history.Len(); i += step {
		entry, err := m.history.Entry(i)
		if err != nil {
			break
		}

		if sameMode && entry.Mode != m.mode {
			continue
		}

		if entry.Mode != m.mode {
			m, _ = m.switchToMode(entry.Mode)
		}

		m.historyIdx = i
		m.input.SetValue(entry.Line)
		m.input.SetCursor(len(entry.Line))
		refreshMatches(&m, false)

		return m, nil
	}

	// Moving past the newest entry returns to an empty line.
	if step > 0 && m.historyIdx < m.history.Len() {
		m.historyIdx = m.history.Len()
		m.input.SetValue("")
		refreshMatches(&m, false)
	}

	return m, nil
}

// toggleMode switches between eval and control modes.
func (m model) toggleMode() (model, tea.Cmd) {
	if m.mode == modeEval {
		return m.switchToMode(modeCtrl)
	}

	return m.switchToMode(modeEval)
}

// switchToMode switches to the specified mode, preserving the input of each
// mode.
func (m model) switchToMode(mode inputMode) (model, tea.Cmd) {
	if m.mode == modeEval {
		m.evalText = m.input.Value()
		m.evalCursor = m.input.Position()
	} else {
		m.ctrlText = m.input.Value()
		m.ctrlCursor = m.input.Position()
	}

	m.mode = mode
	if mode == modeEval {
		m.input.Prompt = promptStyle.Render(evalPrompt)
		m.input.SetValue(m.evalText)
		m.input.SetCursor(m.evalCursor)
	} else {
		m.input.Prompt = ctrlPromptStyle.Render(ctrlPrompt)
		m.input.SetValue(m.ctrlText)
		m.input.SetCursor(m.ctrlCursor)
	}

	refreshMatches(&m, false)

	return m, nil
}
