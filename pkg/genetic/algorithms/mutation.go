package algorithms

import (
	"math/rand/v2"

	"github.com/evoframe/genetic/pkg/genetic/framework"
)

// PointReplacement is the default mutation: one position is redrawn from the
// alphabet. The drawn symbol may equal the existing one, so mutation is not
// guaranteed to change the genome.
//
// Note that on a permutation encoding this can introduce duplicate gene
// values, which the order-based crossovers do not support; use Swap there.
type PointReplacement[A comparable] struct {
	alphabet []A
}

func NewPointReplacement[A comparable](alphabet []A) PointReplacement[A] {
	return PointReplacement[A]{alphabet: alphabet}
}

func (PointReplacement[A]) Name() string {
	return "PointReplacementMutation"
}

func (m PointReplacement[A]) Mutate(rng *rand.Rand, child framework.Individual[A]) framework.Individual[A] {
	pos := rng.IntN(child.Length())
	symbol := m.alphabet[rng.IntN(len(m.alphabet))]
	return replaceGene(child, pos, symbol)
}

func replaceGene[A comparable](child framework.Individual[A], pos int, symbol A) framework.Individual[A] {
	genes := child.Genes()
	genes[pos] = symbol
	return framework.NewIndividual(genes)
}

// Swap exchanges the genes at two random positions, which may coincide.
// Preserves permutation encodings.
type Swap[A comparable] struct{}

func (Swap[A]) Name() string {
	return "SwapMutation"
}

func (Swap[A]) Mutate(rng *rand.Rand, child framework.Individual[A]) framework.Individual[A] {
	p := rng.IntN(child.Length())
	c := rng.IntN(child.Length())
	return swapGenes(child, p, c)
}

func swapGenes[A comparable](child framework.Individual[A], p, c int) framework.Individual[A] {
	genes := child.Genes()
	genes[p], genes[c] = genes[c], genes[p]
	return framework.NewIndividual(genes)
}
