// Package suggest turns raw candidates into the two suggestion pools a writing session shows.
//
// The current pool holds what was generated for the latest text. The previous
// pool remembers earlier suggestions that were neither accepted nor recently typed,
// newest first. Every generation cycle moves the outgoing current pool to the front
// of previous and draws a fresh current pool that avoids both the recency window
// and everything already in previous.
//
// Engine is pure apart from its random source: the same ticket against the same
// seed produces the same cycle. Session owns the mutable state and guards commits
// with a generation counter, so a cycle started before newer input never lands.
package suggest

import "context"

// Source produces raw candidates for a piece of text.
// *predict.Generator implements it.
type Source interface {
	// Predict returns next words for the trailing token, never empty.
	Predict(ctx context.Context, text string) []string
	// ContextualWords samples categories triggered by text.
	ContextualWords(text string) []string
	// RandomWords samples growth words.
	RandomWords() []string
	// RandomSkills samples skill words.
	RandomSkills() []string
	// UsedWords returns the recency window of text as comparison keys.
	UsedWords(text string) []string
	// Shuffle permutes words in place.
	Shuffle(words []string)
}

// Limits caps the pools and what each source may contribute.
type Limits struct {
	Current    int
	Previous   int
	Pattern    int
	Contextual int
	Random     int
	Skills     int
}

// DefaultLimits returns the shipped caps.
func DefaultLimits() Limits {
	return Limits{
		Current:    30,
		Previous:   200,
		Pattern:    20,
		Contextual: 10,
		Random:     4,
		Skills:     6,
	}
}

// Pools is the pair of lists a caller renders.
type Pools struct {
	Current  []string
	Previous []string
}

// Clone returns a deep copy.
func (p Pools) Clone() Pools {
	return Pools{
		Current:  append([]string(nil), p.Current...),
		Previous: append([]string(nil), p.Previous...),
	}
}

// Sources is one cycle's raw candidates, in priority order.
type Sources struct {
	Pattern    []string
	Contextual []string
	Growth     []string
	Skills     []string
}

// Ticket is the input of one generation cycle, captured from a Session.
type Ticket struct {
	Gen  uint64
	Text string
	Pools
}

// Cycle is the result of one generation cycle.
type Cycle struct {
	Gen  uint64
	Text string
	Pools
	// Used is the recency window the cycle avoided.
	Used []string
}
