package message

import (
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
)

var (
	ErrUnanswered = errors.New("question needs an answer")
	ErrTooLong    = errors.New("answer is too long")
)

// Question is one reflection prompt.
type Question struct {
	ID     string
	Prompt string
}

// Questions are asked in order; the last answer becomes the encouragement.
var Questions = []Question{
	{"internalize", "What is a recurring thing (belief, thought, behavior) that you have trouble internalizing?"},
	{"reasons", "What is/are hindering or preventing you from accepting this?"},
	{"believe", "What is/are things that would could help you to actually internalize this thing?"},
	{"encouragement", `Write a phrase in the form of "You [can/are/will]...". ` +
		"Imagine you are talking to a close friend and what you would say to encourage them in this situation."},
}

// Questionnaire walks Questions one at a time.
type Questionnaire struct {
	answers  []string
	index    int
	maxChars int
}

// NewQuestionnaire starts at the first question. A non-empty prefill becomes
// the first answer, cut to maxChars.
func NewQuestionnaire(maxChars int, prefill string) *Questionnaire {
	q := &Questionnaire{answers: make([]string, len(Questions)), maxChars: maxChars}
	q.answers[0] = truncateRunes(strings.TrimSpace(prefill), maxChars)
	return q
}

// Index returns the position of the current question.
func (q *Questionnaire) Index() int { return q.index }

// Current returns the current question.
func (q *Questionnaire) Current() Question { return Questions[q.index] }

// Answer returns the answer stored for the current question.
func (q *Questionnaire) Answer() string { return q.answers[q.index] }

// Answers returns a copy of every answer.
func (q *Questionnaire) Answers() []string { return append([]string(nil), q.answers...) }

// MaxChars returns the answer length limit.
func (q *Questionnaire) MaxChars() int { return q.maxChars }

// IsLast reports whether the current question is the final one.
func (q *Questionnaire) IsLast() bool { return q.index == len(Questions)-1 }

// SetAnswer stores text for the current question.
func (q *Questionnaire) SetAnswer(text string) error {
	if utf8.RuneCountInString(text) > q.maxChars {
		return errors.Wrapf(ErrTooLong, "%d characters max", q.maxChars)
	}
	q.answers[q.index] = text
	return nil
}

// Next moves forward once the current question is answered.
// On the last question it stays put.
func (q *Questionnaire) Next() error {
	if strings.TrimSpace(q.answers[q.index]) == "" {
		return errors.WithHint(ErrUnanswered, "Please answer the current question before proceeding.")
	}
	if !q.IsLast() {
		q.index++
	}
	return nil
}

// Back moves to the previous question, keeping answers.
func (q *Questionnaire) Back() {
	if q.index > 0 {
		q.index--
	}
}

// Encouragement returns the final answer, which must be filled in.
func (q *Questionnaire) Encouragement() (string, error) {
	final := strings.TrimSpace(q.answers[len(q.answers)-1])
	if final == "" {
		return "", errors.WithHint(ErrUnanswered, "Please complete your encouraging phrase before submitting.")
	}
	return final, nil
}

func truncateRunes(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
