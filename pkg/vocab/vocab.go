/*
Package vocab holds the categorized word lists every suggestion is drawn from.

A Store is immutable once built. Accessors hand out copies, so callers may shuffle
or truncate what they get back. A word may belong to several categories
("calm" is both an emotion and a time word); inside one category words are unique.

Every word is lowercase letters, optionally joined by inner hyphens for short
phrases such as "self-worth" or "asking-for-help". Anything else is rejected when
the store is built, so a broken vocabulary file fails at startup rather than
producing odd suggestions mid-session.
*/
package vocab

import (
	"sort"
	"strings"

	"github.com/bastiangx/hearme/internal/utils"
	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/sahilm/fuzzy"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Category names a word list.
type Category string

const (
	Emotions      Category = "emotions"
	Struggles     Category = "struggles"
	Needs         Category = "needs"
	Support       Category = "support"
	Actions       Category = "actions"
	Thoughts      Category = "thoughts"
	Relationships Category = "relationships"
	Time          Category = "time"
	Connectors    Category = "connectors"
	GrowthWords   Category = "growthWords"
	Skills        Category = "skills"
)

// All lists every category in canonical order.
var All = []Category{
	Emotions, Struggles, Needs, Support, Actions, Thoughts,
	Relationships, Time, Connectors, GrowthWords, Skills,
}

var (
	ErrEmptyCategory   = errors.New("vocabulary category is empty")
	ErrInvalidWord     = errors.New("invalid vocabulary word")
	ErrUnknownCategory = errors.New("unknown vocabulary category")
)

// minFuzzyPrefix is the shortest prefix that falls back to fuzzy matching.
const minFuzzyPrefix = 3

// ParseCategory resolves a category name, case-insensitively.
func ParseCategory(name string) (Category, error) {
	for _, c := range All {
		if strings.EqualFold(string(c), strings.TrimSpace(name)) {
			return c, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownCategory, "%q", name)
}

func known(c Category) bool {
	for _, k := range All {
		if k == c {
			return true
		}
	}
	return false
}

// Store is an immutable set of categorized words.
type Store struct {
	sets  map[Category][]string
	words []string       // every distinct word, sorted
	index *patricia.Trie // word -> []Category
}

// New validates sets and builds a Store from them.
// Words are lowercased and trimmed, repeats inside a category keep the first occurrence.
// Every category in All must be present and non-empty.
func New(sets map[Category][]string) (*Store, error) {
	for c := range sets {
		if !known(c) {
			return nil, errors.Wrapf(ErrUnknownCategory, "%q", c)
		}
	}

	s := &Store{
		sets:  make(map[Category][]string, len(All)),
		index: patricia.NewTrie(),
	}
	for _, c := range All {
		cleaned, err := clean(c, sets[c])
		if err != nil {
			return nil, err
		}
		s.sets[c] = cleaned
		for _, w := range cleaned {
			s.insert(w, c)
		}
	}
	sort.Strings(s.words)
	return s, nil
}

// Builtin returns the store shipped with the binary.
func Builtin() *Store {
	s, err := New(builtinSets())
	if err != nil {
		// the shipped lists are covered by tests
		panic(err)
	}
	return s
}

func clean(c Category, words []string) ([]string, error) {
	if len(words) == 0 {
		return nil, errors.WithHint(
			errors.Wrapf(ErrEmptyCategory, "%s", c),
			"every category needs at least one word; use mode: extend to keep the builtin list",
		)
	}
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, raw := range words {
		w := strings.ToLower(strings.TrimSpace(raw))
		if !utils.IsVocabWord(w) {
			return nil, errors.WithHint(
				errors.Wrapf(ErrInvalidWord, "%s: %q", c, raw),
				"words are letters, optionally joined by single hyphens",
			)
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out, nil
}

func (s *Store) insert(word string, c Category) {
	key := patricia.Prefix(word)
	if item := s.index.Get(key); item != nil {
		s.index.Set(key, append(item.([]Category), c))
		return
	}
	s.index.Insert(key, []Category{c})
	s.words = append(s.words, word)
}

// Category returns a copy of the words in c, in vocabulary order.
// Unknown categories yield nil.
func (s *Store) Category(c Category) []string {
	words := s.sets[c]
	if words == nil {
		return nil
	}
	out := make([]string, len(words))
	copy(out, words)
	return out
}

// Len returns the number of words in c.
func (s *Store) Len(c Category) int { return len(s.sets[c]) }

// Names returns the category names in canonical order.
func (s *Store) Names() []Category {
	out := make([]Category, len(All))
	copy(out, All)
	return out
}

// Size returns the number of distinct words across all categories.
func (s *Store) Size() int { return len(s.words) }

// Categories returns every category word belongs to, in canonical order.
func (s *Store) Categories(word string) []Category {
	item := s.index.Get(patricia.Prefix(strings.ToLower(strings.TrimSpace(word))))
	if item == nil {
		return nil
	}
	cats := item.([]Category)
	out := make([]Category, len(cats))
	copy(out, cats)
	return out
}

// Contains reports whether word is in c.
func (s *Store) Contains(c Category, word string) bool {
	for _, got := range s.Categories(word) {
		if got == c {
			return true
		}
	}
	return false
}

// Complete returns up to limit vocabulary words starting with prefix, alphabetically.
// When nothing starts with a prefix of at least three letters, the closest fuzzy
// matches are returned instead, best first.
func (s *Store) Complete(prefix string, limit int) []string {
	prefix = utils.Fold(strings.TrimSpace(prefix))
	if prefix == "" || limit <= 0 {
		return nil
	}

	var out []string
	err := s.index.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, _ patricia.Item) error {
		out = append(out, string(p))
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting vocabulary subtree: %v", err)
	}
	if len(out) > 0 {
		sort.Strings(out)
		if len(out) > limit {
			out = out[:limit]
		}
		return out
	}

	if len(prefix) < minFuzzyPrefix {
		return nil
	}
	matches := fuzzy.Find(prefix, s.words)
	for i := 0; i < len(matches) && i < limit; i++ {
		out = append(out, matches[i].Str)
	}
	return out
}
