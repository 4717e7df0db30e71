package utils

// SeenFilter drops words whose Key was already seen.
// It is not safe for concurrent use; build one per composition.
type SeenFilter struct {
	seen map[string]struct{}
}

// NewSeenFilter creates a filter that already rejects every word in exclude.
func NewSeenFilter(exclude ...string) *SeenFilter {
	f := &SeenFilter{seen: make(map[string]struct{}, len(exclude))}
	f.Exclude(exclude...)
	return f
}

// Exclude marks words as seen without emitting them.
func (f *SeenFilter) Exclude(words ...string) {
	for _, w := range words {
		if k := Key(w); k != "" {
			f.seen[k] = struct{}{}
		}
	}
}

// Seen reports whether word was seen, without marking it.
func (f *SeenFilter) Seen(word string) bool {
	_, ok := f.seen[Key(word)]
	return ok
}

// ShouldInclude checks if a word should be included in results (not a duplicate)
// and marks it as seen. Words with an empty key are never included.
func (f *SeenFilter) ShouldInclude(word string) bool {
	k := Key(word)
	if k == "" {
		return false
	}
	if _, ok := f.seen[k]; ok {
		return false
	}
	f.seen[k] = struct{}{}
	return true
}

// Unique returns words without case-insensitive repeats, first occurrence wins.
func Unique(words []string) []string {
	f := NewSeenFilter()
	out := make([]string, 0, len(words))
	for _, w := range words {
		if f.ShouldInclude(w) {
			out = append(out, w)
		}
	}
	return out
}

// Without returns the words not excluded by avoid, keeping order.
func Without(words []string, avoid *SeenFilter) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if avoid == nil || !avoid.Seen(w) {
			out = append(out, w)
		}
	}
	return out
}
