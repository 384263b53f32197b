package benchmarks

import (
	"math/rand/v2"

	"github.com/evoframe/genetic/pkg/genetic/framework"
)

const (
	OneMaxName = "OneMax"
)

// OneMax is the classic bit-string benchmark: fitness is the number of ones,
// the optimum is the all-ones string. Bits repeat freely, so it exercises
// the operators that allow duplicate gene values.
type OneMax struct {
	length int
}

func NewOneMax(length int) *OneMax {
	return &OneMax{length: length}
}

func (p *OneMax) Name() string {
	return OneMaxName
}

func (p *OneMax) Alphabet() []byte {
	return []byte{0, 1}
}

func (p *OneMax) Fitness() framework.FitnessFunction[byte] {
	return func(ind framework.Individual[byte]) float64 {
		ones := 0
		for i := 0; i < ind.Length(); i++ {
			if ind.At(i) == 1 {
				ones++
			}
		}
		return float64(ones)
	}
}

func (p *OneMax) GoalTest() framework.GoalTest[byte] {
	return func(ind framework.Individual[byte]) bool {
		for i := 0; i < ind.Length(); i++ {
			if ind.At(i) == 0 {
				return false
			}
		}
		return true
	}
}

func (p *OneMax) Initialize(popSize int, rng *rand.Rand) []framework.Individual[byte] {
	population := make([]framework.Individual[byte], popSize)
	for i := range population {
		genes := make([]byte, p.length)
		for j := range genes {
			genes[j] = byte(rng.IntN(2))
		}
		population[i] = framework.NewIndividual(genes)
	}
	return population
}
