package algorithms

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/evoframe/genetic/pkg/genetic/framework"
)

func TestSinglePointCross(t *testing.T) {
	x := framework.NewIndividual([]string{"A", "B", "C", "D"})
	y := framework.NewIndividual([]string{"d", "c", "b", "a"})

	child := singlePointCross(x, y, 2)
	want := []string{"A", "B", "b", "a"}
	if diff := cmp.Diff(want, child.Genes()); diff != "" {
		t.Errorf("unexpected child (-want +got):\n%s", diff)
	}

	// Cut at zero takes everything from the second parent.
	child = singlePointCross(x, y, 0)
	if !child.Equal(y) {
		t.Errorf("expected a copy of the second parent, got %v", child)
	}
}

func TestOrderCross(t *testing.T) {
	x := framework.NewIndividual([]int{1, 2, 3, 4, 5, 6, 7, 8})
	y := framework.NewIndividual([]int{8, 7, 6, 5, 4, 3, 2, 1})

	// Segment [2,5) keeps 3,4,5 in place; the rest comes from y in relative
	// order with 3,4,5 skipped: 8,7,6,2,1.
	child := orderCross(x, y, 2, 5)
	want := []int{8, 7, 3, 4, 5, 6, 2, 1}
	if diff := cmp.Diff(want, child.Genes()); diff != "" {
		t.Errorf("unexpected child (-want +got):\n%s", diff)
	}
}

func TestCyclicOrderCross(t *testing.T) {
	x := framework.NewIndividual([]string{"A", "B", "C", "D"})
	y := framework.NewIndividual([]string{"D", "C", "B", "A"})

	// Segment [1,3) of the first parent is B,C. D and A from the second
	// parent are re-placed from the cursor at 3, reproducing the first
	// parent for this pairing.
	child := cyclicOrderCross(x, y, 1, 3)
	if !child.Equal(x) {
		t.Errorf("expected %v, got %v", x, child)
	}
}

func TestCyclicOrderCrossWrapsSegment(t *testing.T) {
	x := framework.NewIndividual([]int{1, 2, 3, 4})
	y := framework.NewIndividual([]int{4, 3, 2, 1})

	// p2 <= p1, so the segment [3,1) wraps and covers positions 3 and 0
	// of the first parent (values 4 and 1). 3 and 2 from the second parent
	// are placed from the cursor at 1.
	child := cyclicOrderCross(x, y, 3, 1)
	want := []int{1, 3, 2, 4}
	if diff := cmp.Diff(want, child.Genes()); diff != "" {
		t.Errorf("unexpected child (-want +got):\n%s", diff)
	}
}

func TestCrossoverLeavesParentsUntouched(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 11))
	x := framework.NewIndividual([]int{0, 1, 2, 3, 4})
	y := framework.NewIndividual([]int{4, 3, 2, 1, 0})
	xBefore := x.Genes()
	yBefore := y.Genes()

	for _, c := range []framework.Crossover[int]{SinglePoint[int]{}, Order[int]{}, CyclicOrder[int]{}} {
		child := c.Cross(rng, x, y)
		if child.Length() != x.Length() {
			t.Errorf("%s: child length %d, want %d", c.Name(), child.Length(), x.Length())
		}
		if diff := cmp.Diff(xBefore, x.Genes()); diff != "" {
			t.Errorf("%s mutated the first parent:\n%s", c.Name(), diff)
		}
		if diff := cmp.Diff(yBefore, y.Genes()); diff != "" {
			t.Errorf("%s mutated the second parent:\n%s", c.Name(), diff)
		}
	}
}

func TestCyclicOrderCrossSelfPairing(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 3))
	x := framework.NewIndividual([]int{2, 0, 1, 3})

	// Selecting the same parent twice is legal. The child may be reordered
	// but must remain a permutation of the same values.
	child := CyclicOrder[int]{}.Cross(rng, x, x)
	seen := make(map[int]bool)
	for i := 0; i < child.Length(); i++ {
		seen[child.At(i)] = true
	}
	for i := 0; i < x.Length(); i++ {
		if !seen[x.At(i)] {
			t.Errorf("value %d lost in self-crossover: %v -> %v", x.At(i), x, child)
		}
	}
}
