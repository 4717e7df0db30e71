package predict

import (
	"strings"

	"github.com/bastiangx/hearme/internal/utils"
)

// DefaultRecencyWindow is how many trailing tokens count as recently used.
const DefaultRecencyWindow = 5

// TrailingToken returns the last whitespace separated token of text,
// folded to lowercase with surrounding punctuation removed.
func TrailingToken(text string) string {
	return utils.TrimPunct(utils.Fold(utils.LastField(text)))
}

// RecentWords returns the comparison keys of the last window tokens of text, oldest first.
// Tokens that reduce to nothing ("--", "42") are dropped before the window is applied.
// Earlier text stays eligible for re-suggestion on purpose.
func RecentWords(text string, window int) []string {
	if window <= 0 {
		return nil
	}
	fields := strings.Fields(text)
	keys := make([]string, 0, len(fields))
	for _, f := range fields {
		if k := utils.Key(f); k != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) > window {
		keys = keys[len(keys)-window:]
	}
	return keys
}
