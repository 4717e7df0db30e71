// Package tui is the terminal writing screen: a draft with live word
// suggestions, the reflection questionnaire and the final message.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/bastiangx/hearme/internal/utils"
	"github.com/bastiangx/hearme/pkg/message"
	"github.com/bastiangx/hearme/pkg/suggest"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
)

type screen int

const (
	screenWrite screen = iota
	screenQuestions
	screenFinal
)

// Options configure the screens.
type Options struct {
	Session         *suggest.Session
	MinWords        int
	MaxWords        int
	AnswerMaxChars  int
	MessageMaxWords int
	SettleDelay     time.Duration
	GenerationDelay time.Duration
}

type settleMsg struct{ id int }

type cycleMsg struct{ cycle suggest.Cycle }

// Model drives all three screens.
type Model struct {
	ctx    context.Context
	opts   Options
	keys   keyMap
	screen screen
	width  int

	input    textarea.Model
	settleID int
	settling bool
	pending  uint64
	cursor   int

	questions *message.Questionnaire
	answer    textarea.Model
	err       error

	final string
}

// New builds the writing screen over opts.Session.
func New(ctx context.Context, opts Options) *Model {
	in := textarea.New()
	in.Placeholder = "Write what is on your mind..."
	in.ShowLineNumbers = false
	in.CharLimit = 0
	in.SetHeight(6)
	in.SetValue(opts.Session.Text())
	in.Focus()

	return &Model{
		ctx:    ctx,
		opts:   opts,
		keys:   defaultKeys(),
		input:  in,
		answer: newAnswerArea(opts.AnswerMaxChars),
	}
}

func newAnswerArea(limit int) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = "Your answer..."
	ta.ShowLineNumbers = false
	ta.CharLimit = limit
	ta.SetHeight(4)
	return ta
}

// Run shows the screens until the user quits and returns the final message,
// empty when the user left before reaching it.
func Run(ctx context.Context, opts Options) (string, error) {
	out, err := tea.NewProgram(New(ctx, opts), tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return "", errors.Wrap(err, "running writing screen")
	}
	return out.(*Model).Final(), nil
}

// Final returns the voice memo request once the questionnaire is done.
func (m *Model) Final() string { return m.final }

// Busy reports whether a generation cycle is armed or running.
func (m *Model) Busy() bool { return m.settling || m.pending != 0 }

func (m *Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, m.settle())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.SetWidth(max(msg.Width-2, 20))
		m.answer.SetWidth(max(msg.Width-2, 20))
		return m, nil

	case settleMsg:
		if msg.id != m.settleID {
			return m, nil
		}
		m.settling = false
		return m, m.begin(m.opts.Session.Begin())

	case cycleMsg:
		m.opts.Session.Commit(msg.cycle)
		if msg.cycle.Gen == m.pending {
			m.pending = 0
		}
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		switch m.screen {
		case screenWrite:
			return m.updateWrite(msg)
		case screenQuestions:
			return m.updateQuestions(msg)
		case screenFinal:
			if key.Matches(msg, m.keys.Submit) {
				return m, tea.Quit
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.screen {
	case screenWrite:
		m.input, cmd = m.input.Update(msg)
	case screenQuestions:
		m.answer, cmd = m.answer.Update(msg)
	}
	return m, cmd
}

func (m *Model) updateWrite(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Accept):
		return m, m.accept()
	case key.Matches(msg, m.keys.Next):
		m.move(1)
		return m, nil
	case key.Matches(msg, m.keys.Prev):
		m.move(-1)
		return m, nil
	case key.Matches(msg, m.keys.Reset):
		m.reset()
		return m, nil
	case key.Matches(msg, m.keys.Continue):
		if !m.readiness().Ready {
			return m, nil
		}
		return m, m.toQuestions()
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return m, cmd
	}
	m.opts.Session.SetText(m.input.Value())
	return m, tea.Batch(cmd, m.settle())
}

// settle rearms the debounce. Only the newest id starts a cycle.
func (m *Model) settle() tea.Cmd {
	m.settleID++
	m.settling = true
	id := m.settleID
	return tea.Tick(m.opts.SettleDelay, func(time.Time) tea.Msg { return settleMsg{id: id} })
}

// begin computes the cycle for t off the update loop and delivers it after the generation delay.
func (m *Model) begin(t suggest.Ticket) tea.Cmd {
	m.pending = t.Gen
	engine := m.opts.Session.Engine()
	ctx := m.ctx
	return tea.Tick(m.opts.GenerationDelay, func(time.Time) tea.Msg {
		return cycleMsg{cycle: engine.Compute(ctx, t)}
	})
}

func (m *Model) accept() tea.Cmd {
	words, _ := m.visible()
	if len(words) == 0 {
		return nil
	}
	t := m.opts.Session.Accept(words[m.cursor])
	m.input.SetValue(m.opts.Session.Text())
	m.cursor = 0
	// the accept cycle replaces any settle still armed from typing
	m.settleID++
	m.settling = false
	return m.begin(t)
}

func (m *Model) reset() {
	m.opts.Session.Reset()
	m.input.SetValue(m.opts.Session.Text())
	m.settleID++
	m.settling = false
	m.pending = 0
	m.cursor = 0
}

func (m *Model) move(delta int) {
	words, _ := m.visible()
	if len(words) == 0 {
		m.cursor = 0
		return
	}
	m.cursor = (m.cursor + delta + len(words)) % len(words)
}

func (m *Model) clampCursor() {
	words, _ := m.visible()
	if m.cursor >= len(words) {
		m.cursor = 0
	}
}

// visible lists current words first, then previous words not already shown.
// It also returns how many of them are current.
func (m *Model) visible() ([]string, int) {
	snap := m.opts.Session.Snapshot()
	seen := utils.NewSeenFilter(snap.Current...)
	words := append([]string(nil), snap.Current...)
	for _, w := range snap.Previous {
		if seen.ShouldInclude(w) {
			words = append(words, w)
		}
	}
	return words, len(snap.Current)
}

func (m *Model) readiness() message.Readiness {
	return message.Check(m.input.Value(), m.opts.MinWords, m.opts.MaxWords)
}

func (m *Model) toQuestions() tea.Cmd {
	m.questions = message.NewQuestionnaire(m.opts.AnswerMaxChars, strings.TrimSpace(m.input.Value()))
	m.answer = newAnswerArea(m.opts.AnswerMaxChars)
	if m.width > 0 {
		m.answer.SetWidth(max(m.width-2, 20))
	}
	m.answer.SetValue(m.questions.Answer())
	m.input.Blur()
	m.screen = screenQuestions
	m.err = nil
	return m.answer.Focus()
}

func (m *Model) updateQuestions(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	q := m.questions
	switch {
	case key.Matches(msg, m.keys.Submit):
		if err := q.SetAnswer(m.answer.Value()); err != nil {
			m.err = err
			return m, nil
		}
		last := q.IsLast()
		if err := q.Next(); err != nil {
			m.err = err
			return m, nil
		}
		m.err = nil
		if !last {
			m.answer.SetValue(q.Answer())
			return m, nil
		}
		enc, err := q.Encouragement()
		if err != nil {
			m.err = err
			return m, nil
		}
		m.final = message.Final(message.TrimWords(enc, m.opts.MessageMaxWords))
		m.answer.Blur()
		m.screen = screenFinal
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if err := q.SetAnswer(m.answer.Value()); err != nil {
			m.err = err
			return m, nil
		}
		q.Back()
		m.answer.SetValue(q.Answer())
		m.err = nil
		return m, nil
	}

	var cmd tea.Cmd
	m.answer, cmd = m.answer.Update(msg)
	return m, cmd
}
