package suggest

import (
	"context"
	"sync"
)

// Session owns one writer's text and pools.
//
// Every Begin, SetText, Accept and Reset advances the generation. A Cycle only
// commits when its generation is still the latest, so whichever cycle was started
// last wins and nothing started before a reset can repopulate the pools.
type Session struct {
	mu       sync.Mutex
	engine   *Engine
	initial  string
	text     string
	current  []string
	previous []string
	gen      uint64
}

// Snapshot is a copy of a session's state.
type Snapshot struct {
	Gen  uint64
	Text string
	Pools
}

// NewSession starts a session whose text begins as initial.
func NewSession(engine *Engine, initial string) *Session {
	return &Session{engine: engine, initial: initial, text: initial}
}

// Engine returns the engine cycles run on.
func (s *Session) Engine() *Engine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.engine
}

// SetEngine swaps the engine for the next cycle, used on config reload.
func (s *Session) SetEngine(e *Engine) {
	s.mu.Lock()
	s.engine = e
	s.mu.Unlock()
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{Gen: s.gen, Text: s.text, Pools: s.pools()}
}

// Text returns the session text.
func (s *Session) Text() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

// SetText replaces the text. A change supersedes any cycle in flight.
func (s *Session) SetText(text string) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if text != s.text {
		s.text = text
		s.gen++
	}
	return s.gen
}

// Begin starts a cycle on the current state and supersedes every earlier one.
func (s *Session) Begin() Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.beginLocked()
}

func (s *Session) beginLocked() Ticket {
	s.gen++
	return Ticket{Gen: s.gen, Text: s.text, Pools: s.pools()}
}

func (s *Session) pools() Pools {
	return Pools{Current: s.current, Previous: s.previous}.Clone()
}

// Commit applies c if no newer cycle, edit or reset happened since it began.
// It reports whether c was applied.
func (s *Session) Commit(c Cycle) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c.Gen != s.gen || c.Text != s.text {
		return false
	}
	s.current = c.Current
	s.previous = c.Previous
	return true
}

// Generate runs a full cycle synchronously and returns the resulting pools.
// If the cycle was superseded meanwhile the pools of the newer state are returned.
func (s *Session) Generate(ctx context.Context) Snapshot {
	t := s.Begin()
	s.Commit(s.Engine().Compute(ctx, t))
	return s.Snapshot()
}

// Accept removes word from both pools, appends it to the text and begins the
// follow-up cycle. Words that were never suggested are accepted all the same.
func (s *Session) Accept(word string) Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = RemoveWord(s.current, word)
	s.previous = RemoveWord(s.previous, word)
	s.text = AppendWord(s.text, word)
	return s.beginLocked()
}

// Apply accepts word and runs the follow-up cycle synchronously.
func (s *Session) Apply(ctx context.Context, word string) Snapshot {
	t := s.Accept(word)
	s.Commit(s.Engine().Compute(ctx, t))
	return s.Snapshot()
}

// Reset restores the initial text, clears both pools and cancels any cycle in flight.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.text = s.initial
	s.current = nil
	s.previous = nil
}
