package suggest

import (
	"strings"

	"github.com/bastiangx/hearme/internal/utils"
)

// Composer merges one cycle's sources into a current pool.
type Composer struct {
	limits  Limits
	shuffle func([]string)
}

// NewComposer returns a composer that shuffles with shuffle when trimming an oversized pool.
func NewComposer(limits Limits, shuffle func([]string)) *Composer {
	return &Composer{limits: limits, shuffle: shuffle}
}

// Compose filters each source against avoid, caps it, concatenates the lot in
// priority order (pattern, contextual, growth, skills) and drops repeats, first
// occurrence winning. A result longer than the current limit is shuffled and cut.
func (c *Composer) Compose(src Sources, avoid *utils.SeenFilter) []string {
	parts := []struct {
		words []string
		cap   int
	}{
		{src.Pattern, c.limits.Pattern},
		{src.Contextual, c.limits.Contextual},
		{src.Growth, c.limits.Random},
		{src.Skills, c.limits.Skills},
	}

	var combined []string
	for _, p := range parts {
		combined = append(combined, head(utils.Without(p.words, avoid), p.cap)...)
	}
	combined = utils.Unique(combined)

	if len(combined) > c.limits.Current {
		if c.shuffle != nil {
			c.shuffle(combined)
		}
		combined = combined[:c.limits.Current]
	}
	return combined
}

// MergePrevious puts the outgoing current pool in front of previous, drops repeats
// and anything in used, and keeps at most max words. Overflow evicts the oldest.
func MergePrevious(outgoing, previous, used []string, max int) []string {
	seen := utils.NewSeenFilter(used...)
	merged := make([]string, 0, len(outgoing)+len(previous))
	for _, list := range [][]string{outgoing, previous} {
		for _, w := range list {
			if seen.ShouldInclude(w) {
				merged = append(merged, w)
			}
		}
	}
	return head(merged, max)
}

// RemoveWord returns words without any case-insensitive match of word.
func RemoveWord(words []string, word string) []string {
	key := utils.Key(word)
	out := make([]string, 0, len(words))
	for _, w := range words {
		if utils.Key(w) != key {
			out = append(out, w)
		}
	}
	return out
}

// AppendWord appends word to text followed by a space, inserting a separating
// space first when text does not already end in whitespace.
func AppendWord(text, word string) string {
	word = strings.TrimSpace(word)
	if word == "" {
		return text
	}
	if text == "" || strings.HasSuffix(text, " ") || strings.HasSuffix(text, "\n") || strings.HasSuffix(text, "\t") {
		return text + word + " "
	}
	return text + " " + word + " "
}

func head(words []string, n int) []string {
	if n < 0 {
		n = 0
	}
	if len(words) > n {
		return words[:n]
	}
	return words
}
