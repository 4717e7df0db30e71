package tui

import (
	"fmt"
	"strings"

	"github.com/bastiangx/hearme/pkg/message"
	"github.com/charmbracelet/lipgloss"
	"github.com/cockroachdb/errors"
)

func (m *Model) View() string {
	switch m.screen {
	case screenQuestions:
		return m.questionsView()
	case screenFinal:
		return m.finalView()
	default:
		return m.writeView()
	}
}

func (m *Model) writeView() string {
	var b strings.Builder

	title := titleStyle.Render("What's on your mind?")
	if m.Busy() {
		title += " " + busyStyle.Render("●")
	}
	b.WriteString(title + "\n\n")
	b.WriteString(m.input.View() + "\n")

	r := m.readiness()
	status := fmt.Sprintf("%d / %d words  ", r.Count, r.Max)
	if r.Ready {
		status += readyStyle.Render(r.Status())
	} else {
		status += pendingStyle.Render(r.Status())
	}
	b.WriteString(status + "\n\n")

	b.WriteString(m.wordsView() + "\n\n")
	b.WriteString(helpStyle.Render(helpLine(m.keys.Accept, m.keys.Next, m.keys.Prev, m.keys.Reset, m.keys.Continue, m.keys.Quit)))
	return b.String()
}

func (m *Model) wordsView() string {
	words, current := m.visible()
	if len(words) == 0 {
		return previousStyle.Render("suggestions appear as you write")
	}
	parts := make([]string, len(words))
	for i, w := range words {
		switch {
		case i == m.cursor:
			parts[i] = selectedStyle.Render(w)
		case i < current:
			parts[i] = currentStyle.Render(w)
		default:
			parts[i] = previousStyle.Render(w)
		}
	}
	out := strings.Join(parts, "  ")
	if m.width > 0 {
		out = lipgloss.NewStyle().Width(m.width).Render(out)
	}
	return out
}

func (m *Model) questionsView() string {
	q := m.questions
	var b strings.Builder
	b.WriteString(titleStyle.Render(fmt.Sprintf("Question %d of %d", q.Index()+1, len(message.Questions))) + "\n\n")
	prompt := q.Current().Prompt
	if m.width > 0 {
		prompt = lipgloss.NewStyle().Width(m.width).Render(prompt)
	}
	b.WriteString(promptStyle.Render(prompt) + "\n\n")
	b.WriteString(m.answer.View() + "\n")
	b.WriteString(helpStyle.Render(fmt.Sprintf("%d / %d characters", len([]rune(m.answer.Value())), q.MaxChars())) + "\n")
	if m.err != nil {
		msg := m.err.Error()
		if hints := errors.GetAllHints(m.err); len(hints) > 0 {
			msg = hints[0]
		}
		b.WriteString(errorStyle.Render(msg) + "\n")
	}
	submit := m.keys.Submit
	if q.IsLast() {
		submit.SetHelp("enter", "finish")
	}
	b.WriteString("\n" + helpStyle.Render(helpLine(submit, m.keys.Back, m.keys.Quit)))
	return b.String()
}

func (m *Model) finalView() string {
	body := m.final
	if m.width > 4 {
		body = lipgloss.NewStyle().Width(m.width - 4).Render(body)
	}
	return titleStyle.Render("Send this to someone you trust") + "\n\n" +
		messageStyle.Render(body) + "\n\n" +
		helpStyle.Render("enter: done, the message is printed when you leave")
}
