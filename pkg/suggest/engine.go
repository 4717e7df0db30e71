package suggest

import (
	"context"
	"strings"

	"github.com/bastiangx/hearme/internal/utils"
)

// Engine runs generation cycles. It holds no session state and is safe for concurrent use.
type Engine struct {
	source   Source
	composer *Composer
	limits   Limits
}

// NewEngine builds an engine over source.
func NewEngine(source Source, limits Limits) *Engine {
	return &Engine{
		source:   source,
		composer: NewComposer(limits, source.Shuffle),
		limits:   limits,
	}
}

// Limits returns the caps the engine enforces.
func (e *Engine) Limits() Limits { return e.limits }

// Compute runs one cycle for t. Text that is blank clears the current pool and
// leaves previous as it was. Otherwise the outgoing current pool is folded into
// previous and a fresh current pool is composed that avoids the recency window
// and every word previous held when the cycle started.
func (e *Engine) Compute(ctx context.Context, t Ticket) Cycle {
	if strings.TrimSpace(t.Text) == "" {
		return Cycle{
			Gen:   t.Gen,
			Text:  t.Text,
			Pools: Pools{Current: []string{}, Previous: append([]string(nil), t.Previous...)},
		}
	}

	used := e.source.UsedWords(t.Text)
	avoid := utils.NewSeenFilter(used...)
	avoid.Exclude(t.Previous...)

	current := e.composer.Compose(Sources{
		Pattern:    e.source.Predict(ctx, t.Text),
		Contextual: e.source.ContextualWords(t.Text),
		Growth:     e.source.RandomWords(),
		Skills:     e.source.RandomSkills(),
	}, avoid)

	return Cycle{
		Gen:  t.Gen,
		Text: t.Text,
		Pools: Pools{
			Current:  current,
			Previous: MergePrevious(t.Current, t.Previous, used, e.limits.Previous),
		},
		Used: used,
	}
}

// GenerateSuggestions runs a cycle for text against pools and returns the new pools.
func (e *Engine) GenerateSuggestions(ctx context.Context, text string, pools Pools) Pools {
	return e.Compute(ctx, Ticket{Text: text, Pools: pools}).Pools
}

// ApplySuggestion accepts word: it leaves both pools, lands at the end of text
// followed by a space, and a new cycle runs on the result.
func (e *Engine) ApplySuggestion(ctx context.Context, word, text string, pools Pools) (string, Pools) {
	text = AppendWord(text, word)
	next := Pools{
		Current:  RemoveWord(pools.Current, word),
		Previous: RemoveWord(pools.Previous, word),
	}
	return text, e.GenerateSuggestions(ctx, text, next)
}
