package predict

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatternMatcherRules(t *testing.T) {
	m := NewPatternMatcher(DefaultRules, DefaultNextWords)

	testCases := []struct {
		text        string
		expected    []string
		description string
	}{
		{"I ", []string{"feel", "am", "need", "want", "have", "can", "believe", "hope", "think", "know"}, "after I"},
		{"i", []string{"feel", "am", "need", "want", "have", "can", "believe", "hope", "think", "know"}, "lowercase i without space"},
		{"Lately I FELT", DefaultRules[1].Words, "felt shares the feel rule"},
		{"I really need", DefaultRules[2].Words, "need rule"},
		{"I think,", DefaultRules[7].Words, "trailing punctuation trimmed"},
		{"we walked home", []string{"and", "but", "because"}, "no rule"},
		{"", []string{"and", "but", "because"}, "empty text"},
		{"   \n\t", []string{"and", "but", "because"}, "whitespace only"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			assert.ElementsMatch(t, tc.expected, m.NextWords(tc.text))
		})
	}
}

func TestPatternMatcherDeterministicAndCopied(t *testing.T) {
	m := NewPatternMatcher(DefaultRules, nil)
	first := m.NextWords("I ")
	first[0] = "mutated"
	assert.Equal(t, "feel", m.NextWords("I ")[0])

	fallback := m.NextWords("xyz")
	fallback[0] = "mutated"
	assert.Equal(t, DefaultNextWords, m.NextWords("xyz"))
}

func TestPatternMatcherFirstRuleWins(t *testing.T) {
	m := NewPatternMatcher([]Rule{
		{Tokens: []string{"so"}, Words: []string{"first"}},
		{Tokens: []string{"so"}, Words: []string{"second"}},
	}, []string{"fallback"})
	assert.Equal(t, []string{"first"}, m.NextWords("and so"))
	assert.Equal(t, []string{"fallback"}, m.NextWords("nope"))
}

func TestRecentWords(t *testing.T) {
	testCases := []struct {
		text        string
		window      int
		expected    []string
		description string
	}{
		{"I feel overwhelmed ", 5, []string{"i", "feel", "overwhelmed"}, "short text"},
		{"One two three four five six seven", 5, []string{"three", "four", "five", "six", "seven"}, "window applied"},
		{"I'm   so -- tired, really!", 5, []string{"im", "so", "tired", "really"}, "punctuation stripped and empties dropped"},
		{"Café naïve", 5, []string{"cafe", "naive"}, "accents folded"},
		{"anything", 0, nil, "zero window"},
		{"", 5, []string{}, "empty"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got := RecentWords(tc.text, tc.window)
			if tc.expected == nil {
				assert.Nil(t, got)
				return
			}
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestTrailingToken(t *testing.T) {
	assert.Equal(t, "feel", TrailingToken("I FEEL... "))
	assert.Equal(t, "", TrailingToken("  "))
	assert.Equal(t, "i'm", TrailingToken("and I'm"))
}
