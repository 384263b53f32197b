package framework

import "fmt"

// Individual is one candidate solution: an immutable, fixed-length sequence
// of genes drawn from a finite alphabet A. All operators produce new
// individuals rather than mutating existing ones.
type Individual[A comparable] struct {
	genes []A
}

// NewIndividual copies genes into a new individual.
func NewIndividual[A comparable](genes []A) Individual[A] {
	g := make([]A, len(genes))
	copy(g, genes)
	return Individual[A]{genes: g}
}

// Length returns the number of genes.
func (ind Individual[A]) Length() int {
	return len(ind.genes)
}

// At returns the gene at position i.
func (ind Individual[A]) At(i int) A {
	return ind.genes[i]
}

// Genes returns a copy of the gene sequence.
func (ind Individual[A]) Genes() []A {
	g := make([]A, len(ind.genes))
	copy(g, ind.genes)
	return g
}

// Equal reports structural equality of the gene sequences.
func (ind Individual[A]) Equal(other Individual[A]) bool {
	if len(ind.genes) != len(other.genes) {
		return false
	}
	for i := range ind.genes {
		if ind.genes[i] != other.genes[i] {
			return false
		}
	}
	return true
}

// Key returns a content-derived key. Individuals with equal gene sequences
// have equal keys, so it can index maps where Equal defines identity.
func (ind Individual[A]) Key() string {
	return fmt.Sprintf("%v", ind.genes)
}

func (ind Individual[A]) String() string {
	return ind.Key()
}
