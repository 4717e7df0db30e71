package tui

import (
	"context"
	"strings"
	"testing"

	"github.com/bastiangx/hearme/pkg/message"
	"github.com/bastiangx/hearme/pkg/predict"
	"github.com/bastiangx/hearme/pkg/suggest"
	"github.com/bastiangx/hearme/pkg/vocab"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestModel(text string) *Model {
	gen := predict.NewGenerator(vocab.Builtin(), predict.NewSampler(11), predict.DefaultOptions())
	sess := suggest.NewSession(suggest.NewEngine(gen, suggest.DefaultLimits()), text)
	return New(context.Background(), Options{
		Session:         sess,
		MinWords:        7,
		MaxWords:        40,
		AnswerMaxChars:  300,
		MessageMaxWords: 100,
	})
}

func press(m *Model, k tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: k})
	return cmd
}

func typeText(m *Model, s string) {
	for _, r := range s {
		if r == ' ' {
			m.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// runCycle fires the latest settle and delivers the cycle it starts.
func runCycle(t *testing.T, m *Model) {
	t.Helper()
	_, cmd := m.Update(settleMsg{id: m.settleID})
	require.NotNil(t, cmd)
	m.Update(cmd())
}

func TestTypingDebounces(t *testing.T) {
	m := newTestModel("I ")
	typeText(m, "feel")

	assert.Equal(t, "I feel", m.opts.Session.Text())
	assert.Equal(t, 4, m.settleID)
	assert.True(t, m.Busy())

	_, cmd := m.Update(settleMsg{id: 1})
	assert.Nil(t, cmd, "superseded settle must not start a cycle")
	assert.Empty(t, m.opts.Session.Snapshot().Current)

	runCycle(t, m)
	assert.False(t, m.Busy())
	assert.NotEmpty(t, m.opts.Session.Snapshot().Current)
	assert.Contains(t, m.View(), m.opts.Session.Snapshot().Current[0])
}

func TestEditDuringCycleDiscardsIt(t *testing.T) {
	m := newTestModel("I feel")
	_, cmd := m.Update(settleMsg{id: m.settleID})
	require.NotNil(t, cmd)

	typeText(m, "s")
	m.Update(cmd())

	assert.Empty(t, m.opts.Session.Snapshot().Current)
	assert.True(t, m.Busy(), "the newer edit still has a settle armed")

	runCycle(t, m)
	snap := m.opts.Session.Snapshot()
	assert.Equal(t, "I feels", snap.Text)
	assert.NotEmpty(t, snap.Current)
}

func TestAcceptHighlighted(t *testing.T) {
	m := newTestModel("I feel")
	runCycle(t, m)

	words, _ := m.visible()
	require.Greater(t, len(words), 2)

	press(m, tea.KeyCtrlN)
	press(m, tea.KeyCtrlN)
	press(m, tea.KeyCtrlP)
	assert.Equal(t, 1, m.cursor)

	cmd := press(m, tea.KeyTab)
	require.NotNil(t, cmd)
	assert.Equal(t, "I feel "+words[1]+" ", m.input.Value())
	assert.Equal(t, 0, m.cursor)
	assert.True(t, m.Busy())

	m.Update(cmd())
	assert.False(t, m.Busy())
	snap := m.opts.Session.Snapshot()
	assert.NotContains(t, snap.Current, words[1])
	assert.NotContains(t, snap.Previous, words[1])
}

func TestCursorWraps(t *testing.T) {
	m := newTestModel("I feel")
	press(m, tea.KeyCtrlN)
	assert.Equal(t, 0, m.cursor, "nothing to move over yet")

	runCycle(t, m)
	words, _ := m.visible()
	press(m, tea.KeyCtrlP)
	assert.Equal(t, len(words)-1, m.cursor)
}

func TestReset(t *testing.T) {
	m := newTestModel("I ")
	typeText(m, "need help")
	runCycle(t, m)

	press(m, tea.KeyCtrlR)
	assert.Equal(t, "I ", m.input.Value())
	assert.False(t, m.Busy())
	snap := m.opts.Session.Snapshot()
	assert.Empty(t, snap.Current)
	assert.Empty(t, snap.Previous)
}

func TestContinueNeedsEnoughWords(t *testing.T) {
	m := newTestModel("I feel tired")
	press(m, tea.KeyCtrlS)
	assert.Equal(t, screenWrite, m.screen)
	assert.Contains(t, m.View(), "Need 4 more words to continue")
}

func TestQuestionnaireToFinal(t *testing.T) {
	m := newTestModel("I feel like my family does not listen to me ")
	assert.Contains(t, m.View(), "Ready for questionnaire")

	press(m, tea.KeyCtrlS)
	require.Equal(t, screenQuestions, m.screen)
	assert.Equal(t, "I feel like my family does not listen to me", m.answer.Value())
	assert.Contains(t, m.View(), message.Questions[0].Prompt)

	press(m, tea.KeyEnter)
	assert.Equal(t, 1, m.questions.Index())
	assert.Empty(t, m.answer.Value())

	press(m, tea.KeyEnter)
	assert.Equal(t, 1, m.questions.Index())
	assert.Contains(t, m.View(), "Please answer the current question before proceeding.")

	typeText(m, "fear")
	press(m, tea.KeyEnter)
	typeText(m, "rest")
	press(m, tea.KeyCtrlB)
	assert.Equal(t, 1, m.questions.Index())
	assert.Equal(t, "fear", m.answer.Value())

	press(m, tea.KeyEnter)
	assert.Equal(t, "rest", m.answer.Value())
	press(m, tea.KeyEnter)
	require.True(t, m.questions.IsLast())

	typeText(m, "You are enough")
	press(m, tea.KeyEnter)
	require.Equal(t, screenFinal, m.screen)
	assert.True(t, strings.Contains(m.Final(), "\"You are enough\""))

	cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestBackKeepsTooLongAnswer(t *testing.T) {
	m := newTestModel("I feel like my family does not listen to me ")
	press(m, tea.KeyCtrlS)
	press(m, tea.KeyEnter)
	require.Equal(t, 1, m.questions.Index())

	m.answer.CharLimit = 0
	m.answer.SetValue(strings.Repeat("a", 301))
	press(m, tea.KeyCtrlB)

	assert.Equal(t, 1, m.questions.Index(), "back must not leave an answer that was rejected")
	assert.True(t, errors.Is(m.err, message.ErrTooLong))
	assert.Contains(t, m.View(), "answer is too long")

	m.answer.SetValue("fear")
	press(m, tea.KeyCtrlB)
	assert.Equal(t, 0, m.questions.Index())
	assert.NoError(t, m.err)
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []tea.KeyType{tea.KeyEsc, tea.KeyCtrlC} {
		m := newTestModel("I ")
		cmd := press(m, k)
		require.NotNil(t, cmd)
		_, ok := cmd().(tea.QuitMsg)
		assert.True(t, ok)
		assert.Empty(t, m.Final())
	}
}
