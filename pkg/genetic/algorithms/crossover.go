package algorithms

import (
	"math/rand/v2"

	"github.com/evoframe/genetic/pkg/genetic/framework"
)

// SinglePoint is the classic single-point crossover: the child takes the
// first parent's genes up to a random cut and the second parent's genes from
// there on. Works for any encoding, including ones with repeated values.
type SinglePoint[A comparable] struct{}

func (SinglePoint[A]) Name() string {
	return "SinglePointCrossover"
}

func (SinglePoint[A]) Cross(rng *rand.Rand, x, y framework.Individual[A]) framework.Individual[A] {
	c := rng.IntN(x.Length())
	return singlePointCross(x, y, c)
}

func singlePointCross[A comparable](x, y framework.Individual[A], c int) framework.Individual[A] {
	n := x.Length()
	genes := make([]A, n)
	for i := 0; i < c; i++ {
		genes[i] = x.At(i)
	}
	for i := c; i < n; i++ {
		genes[i] = y.At(i)
	}
	return framework.NewIndividual(genes)
}

// Order is the order crossover (OX): the segment [p1,p2) is copied verbatim
// from the first parent and the remaining positions are filled with the
// second parent's genes in their relative order, skipping values already in
// the segment.
//
// Requires a permutation encoding: gene values must be unique within an
// individual. Pair it with Swap mutation, which preserves that property.
type Order[A comparable] struct{}

func (Order[A]) Name() string {
	return "OrderCrossover"
}

func (Order[A]) Cross(rng *rand.Rand, x, y framework.Individual[A]) framework.Individual[A] {
	n := x.Length()
	p1 := rng.IntN(n)
	p2 := rng.IntN(n)
	if p2 < p1 {
		p1, p2 = p2, p1
	}
	return orderCross(x, y, p1, p2)
}

func orderCross[A comparable](x, y framework.Individual[A], p1, p2 int) framework.Individual[A] {
	n := x.Length()
	genes := make([]A, n)

	inSegment := make(map[A]bool, p2-p1)
	for i := p1; i < p2; i++ {
		genes[i] = x.At(i)
		inSegment[x.At(i)] = true
	}

	j := 0
	for i := 0; i < n; i++ {
		if i >= p1 && i < p2 {
			continue
		}
		for inSegment[y.At(j)] {
			j++
		}
		genes[i] = y.At(j)
		j++
	}
	return framework.NewIndividual(genes)
}

// CyclicOrder is the default crossover: two offsets p1, p2 are drawn with no
// ordering constraint and the segment [p1,p2) is treated cyclically. The
// child starts as a copy of the first parent; each gene of the second parent
// that does not occur in the first parent's wrapped segment is placed at the
// next free cyclic slot starting from p2.
//
// Requires a permutation encoding, like Order.
type CyclicOrder[A comparable] struct{}

func (CyclicOrder[A]) Name() string {
	return "CyclicOrderCrossover"
}

func (CyclicOrder[A]) Cross(rng *rand.Rand, x, y framework.Individual[A]) framework.Individual[A] {
	n := x.Length()
	p1 := rng.IntN(n)
	p2 := rng.IntN(n)
	return cyclicOrderCross(x, y, p1, p2)
}

func cyclicOrderCross[A comparable](x, y framework.Individual[A], p1, p2 int) framework.Individual[A] {
	n := x.Length()
	genes := x.Genes()

	// The segment end wraps past n when p2 <= p1.
	end := p2
	if p2 <= p1 {
		end += n
	}

	k := p2
	for i := 0; i < n; i++ {
		j := p1
		for j < end && y.At(i) != x.At(j%n) {
			j++
		}
		if j == end {
			genes[k%n] = y.At(i)
			k++
		}
	}
	return framework.NewIndividual(genes)
}
