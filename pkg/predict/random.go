package predict

import (
	"math/rand/v2"
	"sync"
)

// Sampler is a lockable random source. Production code seeds it randomly;
// tests pass a fixed seed so samples repeat run to run.
type Sampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSampler returns a Sampler for seed. Seed 0 picks a random seed.
func NewSampler(seed uint64) *Sampler {
	if seed == 0 {
		seed = rand.Uint64()
	}
	return &Sampler{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Shuffle permutes words in place, uniformly.
func (s *Sampler) Shuffle(words []string) {
	s.mu.Lock()
	s.rng.Shuffle(len(words), func(i, j int) { words[i], words[j] = words[j], words[i] })
	s.mu.Unlock()
}

// Sample returns up to n words drawn uniformly without replacement.
// words is left untouched.
func (s *Sampler) Sample(words []string, n int) []string {
	if n <= 0 || len(words) == 0 {
		return nil
	}
	out := append([]string(nil), words...)
	s.Shuffle(out)
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// Between returns an int in [lo, hi]. Swapped bounds are tolerated.
func (s *Sampler) Between(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return lo + s.rng.IntN(hi-lo+1)
}
