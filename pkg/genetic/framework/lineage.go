package framework

// Lineage counts how often each individual was picked as a selection parent.
// The counts are diagnostic only and never influence fitness or selection
// probability. Counts are keyed by gene content, so structurally equal
// individuals share a counter.
type Lineage[A comparable] struct {
	counts map[string]int
}

func NewLineage[A comparable]() *Lineage[A] {
	return &Lineage[A]{counts: make(map[string]int)}
}

// IncDescendants records one selection of ind as a parent.
func (l *Lineage[A]) IncDescendants(ind Individual[A]) {
	l.counts[ind.Key()]++
}

// Descendants returns how often ind has been selected as a parent.
func (l *Lineage[A]) Descendants(ind Individual[A]) int {
	return l.counts[ind.Key()]
}

// Reset discards all counts.
func (l *Lineage[A]) Reset() {
	l.counts = make(map[string]int)
}
