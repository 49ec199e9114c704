// Package tui is the interactive terminal front end: it drives question
// generation, walks the session question by question, and shows the
// scored result.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/nmehta/pharmaquiz/internal/archive"
	"github.com/nmehta/pharmaquiz/internal/difficulty"
	"github.com/nmehta/pharmaquiz/internal/questiongen"
	"github.com/nmehta/pharmaquiz/internal/quiz"
	"github.com/nmehta/pharmaquiz/internal/scoring"
	"github.com/nmehta/pharmaquiz/internal/session"
	"github.com/nmehta/pharmaquiz/internal/tui/components"
)

type state int

const (
	stateSetup state = iota
	stateGenerating
	stateQuestion
	stateResults
	stateError
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Deps carries everything the TUI needs from the caller.
type Deps struct {
	Builder *questiongen.Builder
	Params  quiz.Parameters
	Buckets difficulty.Buckets
	Scoring scoring.Config

	// Archive, when non-nil, receives the result after scoring.
	Archive *archive.Store

	// GenTimeout bounds the generation request.
	GenTimeout time.Duration
}

// Model is the root Bubble Tea model for one quiz run.
type Model struct {
	deps Deps

	state   state
	spinner int
	errMsg  string
	notice  string

	sess   *session.Session
	choice components.ChoiceList
	result *scoring.Result

	// Setup form, shown only when no therapy area was provided.
	inputs  []components.TextInput
	focused int

	width  int
	height int
}

// NewModel creates the root model. It opens on the setup form when the
// parameters are missing a therapy area, otherwise goes straight to
// generation.
func NewModel(deps Deps) Model {
	if deps.GenTimeout <= 0 {
		deps.GenTimeout = 2 * time.Minute
	}
	m := Model{deps: deps, state: stateGenerating}
	if deps.Params.TherapyArea == "" {
		m.state = stateSetup
		m.inputs = []components.TextInput{
			components.NewTextInput("Therapy area", "e.g. Oncology", true),
			components.NewTextInput("Indication", "e.g. NSCLC", false),
		}
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.state == stateSetup {
		return m.inputs[0].Focus()
	}
	return tea.Batch(m.generateCmd(), spinnerTick())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinnerTickMsg:
		if m.state != stateGenerating {
			return m, nil
		}
		m.spinner = (m.spinner + 1) % len(spinnerFrames)
		return m, spinnerTick()

	case setReadyMsg:
		return m.handleSetReady(msg)

	case scoredMsg:
		return m.handleScored(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleSetReady(msg setReadyMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.state = stateError
		m.errMsg = msg.Err.Error()
		return m, nil
	}

	m.sess = session.New(m.deps.Params, msg.Set)
	if err := m.sess.Start(); err != nil {
		m.state = stateError
		m.errMsg = err.Error()
		return m, nil
	}
	m.state = stateQuestion
	m.choice = m.choiceForCurrent()
	return m, nil
}

func (m Model) handleScored(msg scoredMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.state = stateError
		m.errMsg = msg.Err.Error()
		return m, nil
	}
	m.result = msg.Result
	m.state = stateResults
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.state {
	case stateSetup:
		return m.handleSetupKey(msg)
	case stateQuestion:
		return m.handleQuestionKey(msg)
	case stateResults, stateError:
		switch msg.String() {
		case "q", "esc", "enter":
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m Model) handleSetupKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch msg.String() {
	case "enter", "tab", "down":
		if m.focused < len(m.inputs)-1 {
			m.inputs[m.focused].Blur()
			m.focused++
			return m, m.inputs[m.focused].Focus()
		}
		if msg.String() != "enter" {
			return m, nil
		}
		// Last field submitted: validate and start generating.
		m.deps.Params.TherapyArea = m.inputs[0].Value()
		m.deps.Params.Indication = m.inputs[1].Value()
		if err := m.deps.Params.Validate(); err != nil {
			m.notice = err.Error()
			return m, nil
		}
		m.state = stateGenerating
		return m, tea.Batch(m.generateCmd(), spinnerTick())

	case "shift+tab", "up":
		if m.focused > 0 {
			m.inputs[m.focused].Blur()
			m.focused--
			return m, m.inputs[m.focused].Focus()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.inputs[m.focused], cmd = m.inputs[m.focused].Update(msg)
	return m, cmd
}

func (m Model) handleQuestionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch msg.String() {
	case "left", "h":
		m.sess.Retreat()
		m.choice = m.choiceForCurrent()
		return m, nil

	case "right", "l":
		m.sess.Advance()
		m.choice = m.choiceForCurrent()
		return m, nil

	case "enter":
		idx := m.sess.CurrentIndex()
		if _, err := m.sess.SubmitAnswer(idx, m.choice.Selection()); err != nil {
			m.notice = err.Error()
			return m, nil
		}
		if idx < len(m.sess.Questions())-1 {
			m.sess.Advance()
			m.choice = m.choiceForCurrent()
		}
		return m, nil

	case "s":
		// Record an explicit skip, then move on.
		idx := m.sess.CurrentIndex()
		if _, err := m.sess.SubmitAnswer(idx, nil); err != nil {
			m.notice = err.Error()
			return m, nil
		}
		m.sess.Advance()
		m.choice = m.choiceForCurrent()
		return m, nil

	case "f":
		if err := m.sess.Finish(); err != nil {
			m.notice = finishNotice(err)
			return m, nil
		}
		return m, m.scoreCmd()
	}

	var cmd tea.Cmd
	m.choice, cmd = m.choice.Update(msg)
	return m, cmd
}

// choiceForCurrent builds the selector for the question under the
// cursor, preselecting any recorded answer.
func (m Model) choiceForCurrent() components.ChoiceList {
	q := m.sess.CurrentQuestion()
	c := components.NewChoiceList(q.Options, q.Type == quiz.TypeMultiSelect)
	if a := m.sess.Answer(m.sess.CurrentIndex()); a != nil {
		c = c.Preselect(a.Selected)
	}
	return c
}

func finishNotice(err error) string {
	if inc, ok := err.(*session.IncompleteSessionError); ok {
		return fmt.Sprintf("%d questions still unanswered; answer or skip them first", len(inc.Unanswered))
	}
	return err.Error()
}

func (m Model) generateCmd() tea.Cmd {
	deps := m.deps
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), deps.GenTimeout)
		defer cancel()
		set, err := deps.Builder.Build(ctx, deps.Params, deps.Buckets)
		return setReadyMsg{Set: set, Err: err}
	}
}

func (m Model) scoreCmd() tea.Cmd {
	sess := m.sess
	deps := m.deps
	return func() tea.Msg {
		result, err := scoring.Evaluate(sess, deps.Scoring)
		if err != nil {
			return scoredMsg{Err: err}
		}
		if deps.Archive != nil {
			if serr := deps.Archive.SaveResult(result); serr != nil {
				slog.Warn("failed to archive result", "error", serr)
			}
		}
		return scoredMsg{Result: result}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(90*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

// Run starts the interactive quiz and blocks until it exits. Returns
// the scored result, or nil when the run was aborted before scoring.
func Run(deps Deps) (*scoring.Result, error) {
	p := tea.NewProgram(NewModel(deps))
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm.result, nil
	}
	return nil, nil
}
