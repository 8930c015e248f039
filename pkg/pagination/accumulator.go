package pagination

// Accumulator collects items across successive pages, dropping items whose
// key has already been seen.
type Accumulator[K comparable, T any] struct {
	key   func(T) K
	seen  map[K]struct{}
	items []T
}

// NewAccumulator creates an accumulator keyed by key.
func NewAccumulator[K comparable, T any](key func(T) K) *Accumulator[K, T] {
	return &Accumulator[K, T]{
		key:  key,
		seen: make(map[K]struct{}),
	}
}

// Append adds the items not seen before, preserving their order, and
// returns the ones that were added.
func (a *Accumulator[K, T]) Append(items ...T) []T {
	var added []T
	for _, item := range items {
		k := a.key(item)
		if _, dup := a.seen[k]; dup {
			continue
		}
		a.seen[k] = struct{}{}
		a.items = append(a.items, item)
		added = append(added, item)
	}
	return added
}

// Items returns a copy of everything accumulated so far.
func (a *Accumulator[K, T]) Items() []T {
	return append([]T(nil), a.items...)
}

// Len returns the number of accumulated items.
func (a *Accumulator[K, T]) Len() int {
	return len(a.items)
}

// Reset drops all accumulated items and seen keys.
func (a *Accumulator[K, T]) Reset() {
	a.seen = make(map[K]struct{})
	a.items = nil
}
