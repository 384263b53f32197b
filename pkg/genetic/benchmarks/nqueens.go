package benchmarks

import (
	"math/rand/v2"

	"github.com/evoframe/genetic/pkg/genetic/framework"
)

const (
	NQueensName = "NQueens"
)

// NQueens is the n-queens problem encoded one queen per column: gene i is
// the row of the queen in column i. Fitness is the number of non-attacking
// queen pairs, so the optimum for a board of size n is n*(n-1)/2.
type NQueens struct {
	size int
}

func NewNQueens(size int) *NQueens {
	return &NQueens{size: size}
}

func (p *NQueens) Name() string {
	return NQueensName
}

func (p *NQueens) Alphabet() []int {
	rows := make([]int, p.size)
	for i := range rows {
		rows[i] = i
	}
	return rows
}

// MaxPairs returns the fitness of a solved board.
func (p *NQueens) MaxPairs() float64 {
	return float64(p.size*(p.size-1)) / 2
}

func (p *NQueens) Fitness() framework.FitnessFunction[int] {
	return func(ind framework.Individual[int]) float64 {
		attacking := 0
		for i := 0; i < ind.Length(); i++ {
			for j := i + 1; j < ind.Length(); j++ {
				ri, rj := ind.At(i), ind.At(j)
				if ri == rj || abs(ri-rj) == j-i {
					attacking++
				}
			}
		}
		return p.MaxPairs() - float64(attacking)
	}
}

func (p *NQueens) GoalTest() framework.GoalTest[int] {
	fitness := p.Fitness()
	return func(ind framework.Individual[int]) bool {
		return fitness(ind) == p.MaxPairs()
	}
}

// Initialize draws popSize boards with uniformly random rows per column.
func (p *NQueens) Initialize(popSize int, rng *rand.Rand) []framework.Individual[int] {
	population := make([]framework.Individual[int], popSize)
	for i := range population {
		genes := make([]int, p.size)
		for j := range genes {
			genes[j] = rng.IntN(p.size)
		}
		population[i] = framework.NewIndividual(genes)
	}
	return population
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
