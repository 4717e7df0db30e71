package predict

import (
	"strings"

	"github.com/bastiangx/hearme/internal/utils"
	"github.com/bastiangx/hearme/pkg/vocab"
	aho "github.com/petar-dambovaliev/aho-corasick"
)

// Trigger activates a category when any keyword occurs anywhere in the text.
// Matching is by substring, so "feel" also fires on "feelings".
type Trigger struct {
	Category vocab.Category
	Keywords []string
}

// DefaultTriggers is the shipped trigger list, in contribution order.
var DefaultTriggers = []Trigger{
	{vocab.Emotions, []string{"feel", "emotion", "mood"}},
	{vocab.Struggles, []string{"struggle", "difficult", "hard"}},
	{vocab.Needs, []string{"need", "want", "hope"}},
	{vocab.Support, []string{"help", "support"}},
	{vocab.Relationships, []string{
		"family", "friend", "relationship", "love", "parent", "mom", "dad",
		"mother", "father", "partner", "husband", "wife", "spouse",
	}},
	{vocab.Actions, []string{"try", "work", "change"}},
	{vocab.Thoughts, []string{"think", "believe", "wonder", "realize"}},
	{vocab.Time, []string{"today", "lately", "always", "never", "sometimes"}},
}

// ContextOptions caps what each source contributes.
type ContextOptions struct {
	CategorySample          int
	ConnectorSample         int
	FallbackSample          int
	FallbackConnectorSample int
}

// DefaultContextOptions returns the shipped caps.
func DefaultContextOptions() ContextOptions {
	return ContextOptions{
		CategorySample:          18,
		ConnectorSample:         12,
		FallbackSample:          12,
		FallbackConnectorSample: 8,
	}
}

// fallbackMix is drawn from when no trigger fires.
var fallbackMix = []vocab.Category{vocab.Emotions, vocab.Actions, vocab.Support}

// Classifier picks vocabulary categories from keyword triggers and samples them.
type Classifier struct {
	store    *vocab.Store
	triggers []Trigger
	opts     ContextOptions
	rng      *Sampler

	automaton aho.AhoCorasick
	owners    [][]int // keyword index -> trigger indexes
	built     bool
}

// NewClassifier compiles the trigger keywords into a single automaton.
func NewClassifier(store *vocab.Store, triggers []Trigger, opts ContextOptions, rng *Sampler) *Classifier {
	c := &Classifier{store: store, triggers: triggers, opts: opts, rng: rng}

	index := make(map[string]int)
	var keywords []string
	for ti, t := range triggers {
		for _, kw := range t.Keywords {
			kw = strings.ToLower(strings.TrimSpace(kw))
			if kw == "" {
				continue
			}
			ki, ok := index[kw]
			if !ok {
				ki = len(keywords)
				index[kw] = ki
				keywords = append(keywords, kw)
				c.owners = append(c.owners, nil)
			}
			c.owners[ki] = append(c.owners[ki], ti)
		}
	}
	if len(keywords) > 0 {
		builder := aho.NewAhoCorasickBuilder(aho.Opts{DFA: true})
		c.automaton = builder.Build(keywords)
		c.built = true
	}
	return c
}

// Activated returns the categories whose triggers fire on text, in trigger order.
func (c *Classifier) Activated(text string) []vocab.Category {
	if !c.built || strings.TrimSpace(text) == "" {
		return nil
	}
	fired := make([]bool, len(c.triggers))
	iter := c.automaton.IterOverlappingByte([]byte(utils.Fold(text)))
	for next := iter.Next(); next != nil; next = iter.Next() {
		for _, ti := range c.owners[next.Pattern()] {
			fired[ti] = true
		}
	}

	var out []vocab.Category
	seen := make(map[vocab.Category]bool)
	for ti, ok := range fired {
		cat := c.triggers[ti].Category
		if ok && !seen[cat] {
			seen[cat] = true
			out = append(out, cat)
		}
	}
	return out
}

// Words samples the activated categories, then connectors. With nothing
// activated it samples the balanced fallback mix instead. The result has no
// repeats and is never empty while the store is valid.
func (c *Classifier) Words(text string) []string {
	var words []string
	cats := c.Activated(text)
	if len(cats) > 0 {
		for _, cat := range cats {
			words = append(words, c.rng.Sample(c.store.Category(cat), c.opts.CategorySample)...)
		}
		words = append(words, c.rng.Sample(c.store.Category(vocab.Connectors), c.opts.ConnectorSample)...)
	} else {
		for _, cat := range fallbackMix {
			words = append(words, c.rng.Sample(c.store.Category(cat), c.opts.FallbackSample)...)
		}
		words = append(words, c.rng.Sample(c.store.Category(vocab.Connectors), c.opts.FallbackConnectorSample)...)
	}
	return utils.Unique(words)
}
