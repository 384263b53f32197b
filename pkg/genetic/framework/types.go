package framework

import "math/rand/v2"

// FitnessFunction scores an individual; higher is better. Implementations
// must be free of side effects and return the same value for the same genes,
// so that runs with a seeded random source are reproducible.
type FitnessFunction[A comparable] func(Individual[A]) float64

// GoalTest reports whether the given individual is fit enough to stop.
type GoalTest[A comparable] func(Individual[A]) bool

// ProgressTracker observes the population once per generation. The population
// passed in is the committed next generation and must not be mutated.
type ProgressTracker[A comparable] func(iteration int, population []Individual[A])

// Crossover combines two parents of equal length into one child.
// Implementations must not mutate their inputs.
type Crossover[A comparable] interface {
	Name() string
	Cross(rng *rand.Rand, x, y Individual[A]) Individual[A]
}

// Mutation perturbs a child's genes, returning a new individual.
type Mutation[A comparable] interface {
	Name() string
	Mutate(rng *rand.Rand, child Individual[A]) Individual[A]
}

// Problem packages an optimization task: the gene alphabet, the fitness
// function, the goal test, and a way to draw a random initial population.
type Problem[A comparable] interface {
	Name() string

	Alphabet() []A
	Fitness() FitnessFunction[A]

	// GoalTest is optional. Problems without a recognizable optimum
	// return nil and rely on iteration or time bounds instead.
	GoalTest() GoalTest[A]

	Initialize(popSize int, rng *rand.Rand) []Individual[A]
}
