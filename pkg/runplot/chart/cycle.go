package chart

// Cycle is an endless round-robin over a fixed list of values.
// It can only be restarted by creating a new one.
type Cycle[T any] struct {
	items []T
	pos   int
}

// NewCycle returns a cycle over items. It panics if items is empty.
func NewCycle[T any](items ...T) *Cycle[T] {
	if len(items) == 0 {
		panic("chart: empty cycle")
	}
	return &Cycle[T]{items: append([]T(nil), items...)}
}

// Next returns the current value and advances the cycle.
func (c *Cycle[T]) Next() T {
	v := c.items[c.pos]
	c.pos = (c.pos + 1) % len(c.items)
	return v
}

// Period returns the number of values before the cycle repeats.
func (c *Cycle[T]) Period() int {
	return len(c.items)
}
