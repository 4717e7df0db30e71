/*
Package predict produces raw candidate words for a piece of text.

Four sources feed the suggestion pools:

  - pattern words, from the trailing token ("I" -> feel, am, need...)
  - contextual words, sampled from categories whose keywords appear anywhere in the text
  - growth words, a random sample of 15 to 25 words by default
  - skill words, a random sample drawn the same way

None of them look at what was already suggested; filtering and rotation live in
package suggest. Sampling goes through a Sampler, so a fixed seed makes every
source reproducible.

An optional inference endpoint can stand in for the pattern source. It runs
under a hard timeout and falls back to the pattern rules on any failure.
*/
package predict

import (
	"context"
	"sync"

	"github.com/bastiangx/hearme/pkg/vocab"
)

// Options configures a Generator.
type Options struct {
	Context       ContextOptions
	GrowthMin     int
	GrowthMax     int
	SkillMin      int
	SkillMax      int
	RecencyWindow int
}

// DefaultOptions returns the shipped sampling bands.
func DefaultOptions() Options {
	return Options{
		Context:       DefaultContextOptions(),
		GrowthMin:     15,
		GrowthMax:     25,
		SkillMin:      15,
		SkillMax:      25,
		RecencyWindow: DefaultRecencyWindow,
	}
}

// Generator bundles the candidate sources over one vocabulary.
// It is safe for concurrent use.
type Generator struct {
	store     *vocab.Store
	patterns  *PatternMatcher
	context   *Classifier
	rng       *Sampler
	opts      Options
	predictor Predictor
}

// NewGenerator builds the shipped rules and triggers over store.
// A nil rng gets a randomly seeded Sampler.
func NewGenerator(store *vocab.Store, rng *Sampler, opts Options) *Generator {
	if rng == nil {
		rng = NewSampler(0)
	}
	patterns := NewPatternMatcher(DefaultRules, DefaultNextWords)
	return &Generator{
		store:     store,
		patterns:  patterns,
		context:   NewClassifier(store, DefaultTriggers, opts.Context, rng),
		rng:       rng,
		opts:      opts,
		predictor: patterns,
	}
}

// WithPredictor returns a copy of g whose pattern source is p.
// Use NewFallback to keep the pattern rules as a safety net.
func (g *Generator) WithPredictor(p Predictor) *Generator {
	cp := *g
	if p == nil {
		p = g.patterns
	}
	cp.predictor = p
	return &cp
}

// Store returns the vocabulary the generator draws from.
func (g *Generator) Store() *vocab.Store { return g.store }

// Shuffle permutes words in place with the generator's random source.
func (g *Generator) Shuffle(words []string) { g.rng.Shuffle(words) }

// Patterns returns the rule based matcher.
func (g *Generator) Patterns() *PatternMatcher { return g.patterns }

// NextWords returns pattern words for text's trailing token.
func (g *Generator) NextWords(text string) []string {
	return g.patterns.NextWords(text)
}

// Predict asks the configured predictor for next words, falling back to the
// pattern rules when it fails or comes back empty.
func (g *Generator) Predict(ctx context.Context, text string) []string {
	words, err := g.predictor.Predict(ctx, text)
	if err != nil || len(words) == 0 {
		return g.patterns.NextWords(text)
	}
	return words
}

// ContextualWords samples categories triggered by keywords in text.
func (g *Generator) ContextualWords(text string) []string {
	return g.context.Words(text)
}

// Activated lists the categories text triggers.
func (g *Generator) Activated(text string) []vocab.Category {
	return g.context.Activated(text)
}

// RandomWords samples growth words, sized uniformly within the growth band.
func (g *Generator) RandomWords() []string {
	return g.sampleBand(vocab.GrowthWords, g.opts.GrowthMin, g.opts.GrowthMax)
}

// RandomSkills samples skill words, sized uniformly within the skill band.
func (g *Generator) RandomSkills() []string {
	return g.sampleBand(vocab.Skills, g.opts.SkillMin, g.opts.SkillMax)
}

func (g *Generator) sampleBand(c vocab.Category, lo, hi int) []string {
	words := g.store.Category(c)
	n := g.rng.Between(lo, hi)
	if n > len(words) {
		n = len(words)
	}
	return g.rng.Sample(words, n)
}

// UsedWords returns the recency window of text.
func (g *Generator) UsedWords(text string) []string {
	return RecentWords(text, g.opts.RecencyWindow)
}

var (
	defaultOnce sync.Once
	defaultGen  *Generator
)

// Default returns a generator over the builtin vocabulary with a random seed.
func Default() *Generator {
	defaultOnce.Do(func() {
		defaultGen = NewGenerator(vocab.Builtin(), NewSampler(0), DefaultOptions())
	})
	return defaultGen
}

// NextWords returns pattern words for text using the default generator.
func NextWords(text string) []string { return Default().NextWords(text) }

// ContextualWords returns contextual words for text using the default generator.
func ContextualWords(text string) []string { return Default().ContextualWords(text) }

// RandomWords returns a growth word sample from the default generator.
func RandomWords() []string { return Default().RandomWords() }

// RandomSkills returns a skill word sample from the default generator.
func RandomSkills() []string { return Default().RandomSkills() }

// UsedWords returns the last five token keys of text.
func UsedWords(text string) []string { return RecentWords(text, DefaultRecencyWindow) }
