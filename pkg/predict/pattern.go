package predict

import "context"

// Rule maps trailing tokens to the words that usually follow them.
type Rule struct {
	Tokens []string
	Words  []string
}

// DefaultNextWords is returned when no rule matches.
var DefaultNextWords = []string{"and", "but", "because"}

// DefaultRules is the shipped rule table. Order only matters when two rules share a token.
var DefaultRules = []Rule{
	{
		Tokens: []string{"i"},
		Words:  []string{"feel", "am", "need", "want", "have", "can", "believe", "hope", "think", "know"},
	},
	{
		Tokens: []string{"feel", "felt"},
		Words: []string{"like", "that", "really", "so", "very", "deeply", "truly", "completely",
			"overwhelmed", "peaceful", "grateful", "anxious", "calm", "strong"},
	},
	{
		Tokens: []string{"need", "want"},
		Words: []string{"to", "help", "support", "understanding", "healing", "peace", "growth",
			"love", "acceptance", "validation"},
	},
	{
		Tokens: []string{"am", "was"},
		Words: []string{"feeling", "being", "learning", "growing", "healing", "grateful", "peaceful",
			"anxious", "overwhelmed", "strong", "tired", "hopeful"},
	},
	{
		Tokens: []string{"very", "really", "extremely"},
		Words: []string{"grateful", "peaceful", "hopeful", "confident", "aware", "present", "calm",
			"strong", "tired", "overwhelmed", "anxious", "stressed", "proud", "happy"},
	},
	{
		Tokens: []string{"have", "had"},
		Words: []string{"been", "felt", "experienced", "learned", "grown", "struggled", "overcome",
			"difficulty", "support", "love", "peace"},
	},
	{
		Tokens: []string{"can"},
		Words: []string{"feel", "be", "do", "learn", "grow", "heal", "change", "overcome",
			"understand", "accept", "forgive"},
	},
	{
		Tokens: []string{"believe", "think", "know"},
		Words:  []string{"that", "I", "this", "it", "deeply", "truly", "strongly"},
	},
	{
		Tokens: []string{"hope"},
		Words:  []string{"that", "to", "for", "I", "this", "things", "life"},
	},
	{
		Tokens: []string{"my"},
		Words: []string{"family", "heart", "mind", "body", "feelings", "needs", "friends",
			"partner", "work", "life"},
	},
	{
		Tokens: []string{"to"},
		Words:  []string{"feel", "be", "heal", "grow", "learn", "accept", "rest", "trust", "believe", "change"},
	},
	{
		Tokens: []string{"and", "but", "because", "so"},
		Words:  []string{"I", "it", "my", "sometimes", "now", "still", "that", "this"},
	},
}

// PatternMatcher proposes next words from the trailing token alone.
// It is deterministic and never returns an empty list.
type PatternMatcher struct {
	rules    map[string][]string
	fallback []string
}

// NewPatternMatcher indexes rules by token. The first rule naming a token wins.
// An empty fallback is replaced by DefaultNextWords.
func NewPatternMatcher(rules []Rule, fallback []string) *PatternMatcher {
	if len(fallback) == 0 {
		fallback = DefaultNextWords
	}
	m := &PatternMatcher{
		rules:    make(map[string][]string),
		fallback: append([]string(nil), fallback...),
	}
	for _, r := range rules {
		for _, tok := range r.Tokens {
			if _, dup := m.rules[tok]; !dup {
				m.rules[tok] = append([]string(nil), r.Words...)
			}
		}
	}
	return m
}

// NextWords returns a fresh copy of the rule list for text's trailing token.
func (m *PatternMatcher) NextWords(text string) []string {
	words, ok := m.rules[TrailingToken(text)]
	if !ok {
		words = m.fallback
	}
	return append([]string(nil), words...)
}

// Predict implements Predictor. It never fails.
func (m *PatternMatcher) Predict(_ context.Context, text string) ([]string, error) {
	return m.NextWords(text), nil
}
