package benchmarks

import (
	"math/rand/v2"
	"testing"

	"github.com/evoframe/genetic/pkg/genetic/framework"
)

func TestOneMaxFitness(t *testing.T) {
	problem := NewOneMax(6)
	fitness := problem.Fitness()

	if got := fitness(framework.NewIndividual([]byte{1, 0, 1, 1, 0, 0})); got != 3 {
		t.Errorf("expected fitness 3, got %v", got)
	}

	ones := framework.NewIndividual([]byte{1, 1, 1, 1, 1, 1})
	if got := fitness(ones); got != 6 {
		t.Errorf("expected fitness 6, got %v", got)
	}
	if !problem.GoalTest()(ones) {
		t.Error("goal test rejected the all-ones string")
	}
	if problem.GoalTest()(framework.NewIndividual([]byte{1, 1, 1, 1, 1, 0})) {
		t.Error("goal test accepted a string with a zero")
	}
}

func TestOneMaxInitialize(t *testing.T) {
	problem := NewOneMax(10)
	rng := rand.New(rand.NewPCG(6, 6))

	population := problem.Initialize(8, rng)
	if len(population) != 8 {
		t.Fatalf("expected 8 individuals, got %d", len(population))
	}
	for _, ind := range population {
		if ind.Length() != 10 {
			t.Errorf("individual %v has length %d, want 10", ind, ind.Length())
		}
		for i := 0; i < ind.Length(); i++ {
			if b := ind.At(i); b != 0 && b != 1 {
				t.Errorf("gene %d is not a bit: %d", i, b)
			}
		}
	}
}
