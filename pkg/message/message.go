/*
Package message covers what happens around the writing aid: deciding when a
draft is long enough, walking the four reflection questions, and turning the
final encouragement into the voice memo request sent to a trusted person.
*/
package message

import (
	"fmt"
	"strings"

	"github.com/bastiangx/hearme/internal/utils"
)

// Readiness describes a draft against the word band.
type Readiness struct {
	Count   int
	Min     int
	Max     int
	Ready   bool
	Missing int // words still needed
	Over    int // words past the limit
}

// Check counts the words in text and compares them with [min, max].
func Check(text string, min, max int) Readiness {
	n := utils.CountWords(text)
	r := Readiness{Count: n, Min: min, Max: max}
	switch {
	case n < min:
		r.Missing = min - n
	case n > max:
		r.Over = n - max
	default:
		r.Ready = true
	}
	return r
}

// Status is the line shown under the draft.
func (r Readiness) Status() string {
	switch {
	case r.Missing > 0:
		return fmt.Sprintf("Need %d more words to continue", r.Missing)
	case r.Over > 0:
		return fmt.Sprintf("%d words over limit", r.Over)
	default:
		return "✓ Ready for questionnaire"
	}
}

// Starters are the connectors offered after "I" in the three part input.
var Starters = []string{
	"feel", "am", "need", "want", "have", "can", "believe", "hope", "think", "know",
	"struggle", "wish", "understand", "realize", "remember", "notice", "experience",
	"appreciate", "value", "love",
}

// IsStarter reports whether word is one of Starters.
func IsStarter(word string) bool {
	word = strings.ToLower(strings.TrimSpace(word))
	for _, s := range Starters {
		if s == word {
			return true
		}
	}
	return false
}

// StarterText is the text a three part draft opens with, "I feel " for "feel".
func StarterText(starter string) string {
	starter = strings.ToLower(strings.TrimSpace(starter))
	if starter == "" {
		return "I "
	}
	return "I " + starter + " "
}

// ComposeThreePart joins "I", the starter and the rest of the thought.
func ComposeThreePart(starter, body string) string {
	return strings.TrimSpace(StarterText(starter) + strings.TrimSpace(body))
}
