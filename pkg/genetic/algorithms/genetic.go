package algorithms

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"k8s.io/klog/v2"

	"github.com/evoframe/genetic/pkg/genetic/framework"
)

const (
	Name = "GeneticAlgorithm"
)

var (
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrEmptyPopulation = errors.New("population must contain at least one individual")
	ErrLengthMismatch  = errors.New("individual length does not match the configured individual length")
)

// Engine evolves a population of fixed-length individuals using
// fitness-proportionate selection, crossover, mutation, and elitism.
//
// The run is single-threaded and consumes the random source in a fixed
// order per offspring (two selection draws, crossover draws, the mutation
// gate draw, then mutation draws), so a seeded source yields reproducible
// runs.
type Engine[A comparable] struct {
	individualLength    int
	alphabet            []A
	mutationProbability float64
	rng                 *rand.Rand

	crossover framework.Crossover[A]
	mutation  framework.Mutation[A]

	trackers []framework.ProgressTracker[A]
	metrics  framework.Metrics
	lineage  *framework.Lineage[A]
}

// Option configures an Engine at construction time.
type Option[A comparable] func(*Engine[A])

// WithRand injects the random source. Inject a seeded source for
// reproducible runs; the default is seeded from the global generator.
func WithRand[A comparable](rng *rand.Rand) Option[A] {
	return func(e *Engine[A]) {
		e.rng = rng
	}
}

// WithCrossover replaces the default cyclic order-preserving crossover.
func WithCrossover[A comparable](c framework.Crossover[A]) Option[A] {
	return func(e *Engine[A]) {
		e.crossover = c
	}
}

// WithMutation replaces the default point-replacement mutation.
func WithMutation[A comparable](m framework.Mutation[A]) Option[A] {
	return func(e *Engine[A]) {
		e.mutation = m
	}
}

// New creates an engine for individuals of the given length over the given
// finite alphabet. Each offspring is mutated with probability
// mutationProbability.
func New[A comparable](individualLength int, alphabet []A, mutationProbability float64, opts ...Option[A]) (*Engine[A], error) {
	if individualLength <= 0 {
		return nil, fmt.Errorf("%w: individual length must be positive, got %d", ErrInvalidConfig, individualLength)
	}
	if len(alphabet) == 0 {
		return nil, fmt.Errorf("%w: alphabet must not be empty", ErrInvalidConfig)
	}
	if mutationProbability < 0 || mutationProbability > 1 {
		return nil, fmt.Errorf("%w: mutation probability must be in [0,1], got %v", ErrInvalidConfig, mutationProbability)
	}

	e := &Engine[A]{
		individualLength:    individualLength,
		alphabet:            append([]A(nil), alphabet...),
		mutationProbability: mutationProbability,
		rng:                 rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		crossover:           CyclicOrder[A]{},
		lineage:             framework.NewLineage[A](),
	}
	e.mutation = NewPointReplacement(e.alphabet)
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// AddProgressTracker registers a tracker. Trackers are notified in
// registration order once per generation and a final time on termination.
func (e *Engine[A]) AddProgressTracker(t framework.ProgressTracker[A]) {
	e.trackers = append(e.trackers, t)
}

// Metrics returns a snapshot of the run counters.
func (e *Engine[A]) Metrics() framework.Metrics {
	return e.metrics
}

// PopulationSize returns the size of the population of the last completed
// generation.
func (e *Engine[A]) PopulationSize() int {
	return e.metrics.PopulationSize()
}

// Iterations returns the number of completed generations.
func (e *Engine[A]) Iterations() int {
	return e.metrics.Iterations()
}

// Elapsed returns the wall-clock time of the run so far.
func (e *Engine[A]) Elapsed() time.Duration {
	return e.metrics.Elapsed()
}

// ResetMetrics zeroes the run counters and lineage counts, for reuse of the
// engine between runs.
func (e *Engine[A]) ResetMetrics() {
	e.metrics.Reset()
	e.lineage.Reset()
}

// Lineage exposes the descendant counts collected during selection.
func (e *Engine[A]) Lineage() *framework.Lineage[A] {
	return e.lineage
}

// Run evolves initPopulation until maxIterations generations have completed,
// then returns the best individual of the final population.
func (e *Engine[A]) Run(ctx context.Context, initPopulation []framework.Individual[A], fitnessFn framework.FitnessFunction[A], maxIterations int) (framework.Individual[A], error) {
	goalTest := func(framework.Individual[A]) bool {
		return e.Iterations() >= maxIterations
	}
	return e.RunWithGoal(ctx, initPopulation, fitnessFn, goalTest, 0)
}

// RunWithGoal evolves initPopulation until goalTest accepts the best
// individual of a generation, the optional wall-clock bound maxTime elapses
// (ignored when zero), or ctx is cancelled. At least one generation always
// runs before any termination check. Cancellation and timeout are observed
// only at generation boundaries, so an overrun of up to one generation is
// expected.
func (e *Engine[A]) RunWithGoal(ctx context.Context, initPopulation []framework.Individual[A], fitnessFn framework.FitnessFunction[A], goalTest framework.GoalTest[A], maxTime time.Duration) (framework.Individual[A], error) {
	logger := klog.FromContext(ctx)

	if err := e.validatePopulation(initPopulation); err != nil {
		return framework.Individual[A]{}, err
	}

	population := append([]framework.Individual[A](nil), initPopulation...)
	e.metrics.Update(len(population), 0, 0)
	start := time.Now()

	var best framework.Individual[A]
	itCount := 0
	for {
		best = BestIndividual(population, fitnessFn)
		population = e.nextGeneration(population, fitnessFn, best)
		itCount++
		e.metrics.Update(len(population), itCount, time.Since(start))

		logger.V(4).Info("generation complete",
			"algorithm", Name,
			"iteration", itCount,
			"bestFitness", fitnessFn(best),
			"averageFitness", AverageFitness(population, fitnessFn))

		if maxTime > 0 && time.Since(start) > maxTime {
			logger.V(4).Info("terminating: time bound exceeded", "elapsed", time.Since(start))
			break
		}
		if ctx.Err() != nil {
			logger.V(4).Info("terminating: context cancelled", "cause", ctx.Err())
			break
		}
		if goalTest(best) {
			break
		}
	}

	e.notifyProgressTrackers(itCount, population)
	return best, nil
}

// BestIndividual returns the individual with the highest fitness. Ties go to
// the earliest individual, since only a strict improvement replaces the
// running best. The population must not be empty.
func BestIndividual[A comparable](population []framework.Individual[A], fitnessFn framework.FitnessFunction[A]) framework.Individual[A] {
	var best framework.Individual[A]
	bestValue := math.Inf(-1)

	for _, ind := range population {
		if value := fitnessFn(ind); value > bestValue {
			best = ind
			bestValue = value
		}
	}
	return best
}

// AverageFitness returns the arithmetic mean fitness of the population.
func AverageFitness[A comparable](population []framework.Individual[A], fitnessFn framework.FitnessFunction[A]) float64 {
	values := make([]float64, len(population))
	for i, ind := range population {
		values[i] = fitnessFn(ind)
	}
	return stat.Mean(values, nil)
}

// nextGeneration builds len(population) individuals: len(population)-1
// offspring plus the carried-over best of the previous generation. Elitism
// keeps the best-seen fitness non-decreasing across generations.
func (e *Engine[A]) nextGeneration(population []framework.Individual[A], fitnessFn framework.FitnessFunction[A], bestBefore framework.Individual[A]) []framework.Individual[A] {
	next := make([]framework.Individual[A], 0, len(population))

	for i := 0; i < len(population)-1; i++ {
		x := e.randomSelection(population, fitnessFn)
		y := e.randomSelection(population, fitnessFn)

		child := e.crossover.Cross(e.rng, x, y)

		// The gate draw is consumed even when the probability is zero,
		// keeping the random stream layout independent of configuration.
		if e.rng.Float64() <= e.mutationProbability {
			child = e.mutation.Mutate(e.rng, child)
		}
		next = append(next, child)
	}
	next = append(next, bestBefore)

	e.notifyProgressTrackers(e.metrics.Iterations(), next)
	return next
}

// randomSelection draws one parent with probability proportional to its
// fitness after shifting all values by the population minimum. A population
// with all-equal fitness degenerates to a uniform draw. If rounding makes
// the cumulative walk fall through, the last individual is returned.
func (e *Engine[A]) randomSelection(population []framework.Individual[A], fitnessFn framework.FitnessFunction[A]) framework.Individual[A] {
	selected := population[len(population)-1]

	fValues := make([]float64, len(population))
	for i, ind := range population {
		fValues[i] = fitnessFn(ind)
	}

	// Shift so that all weights are non-negative even for negative fitness.
	minFitness := floats.Min(fValues)
	for i := range fValues {
		fValues[i] -= minFitness
	}

	if total := floats.Sum(fValues); total == 0 {
		uniform := 1 / float64(len(fValues))
		for i := range fValues {
			fValues[i] = uniform
		}
	} else {
		floats.Scale(1/total, fValues)
	}

	prob := e.rng.Float64()
	totalSoFar := 0.0
	for i, weight := range fValues {
		totalSoFar += weight
		if prob <= totalSoFar {
			selected = population[i]
			break
		}
	}

	e.lineage.IncDescendants(selected)
	return selected
}

func (e *Engine[A]) validatePopulation(population []framework.Individual[A]) error {
	if len(population) < 1 {
		return ErrEmptyPopulation
	}
	for _, ind := range population {
		if ind.Length() != e.individualLength {
			return fmt.Errorf("%w: individual %v has length %d, want %d",
				ErrLengthMismatch, ind, ind.Length(), e.individualLength)
		}
	}
	return nil
}

func (e *Engine[A]) notifyProgressTrackers(itCount int, population []framework.Individual[A]) {
	for _, tracker := range e.trackers {
		tracker(itCount, population)
	}
}
