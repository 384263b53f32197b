package util

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"

	"github.com/evoframe/genetic/pkg/genetic/algorithms"
	"github.com/evoframe/genetic/pkg/genetic/framework"
)

// GenerationStats is one recorded data point of a run.
type GenerationStats struct {
	Iteration      int
	BestFitness    float64
	AverageFitness float64
}

// FitnessHistory records best and average fitness per generation. Register
// its Track method as a progress tracker on the engine.
type FitnessHistory[A comparable] struct {
	fitnessFn framework.FitnessFunction[A]
	stats     []GenerationStats
}

func NewFitnessHistory[A comparable](fitnessFn framework.FitnessFunction[A]) *FitnessHistory[A] {
	return &FitnessHistory[A]{fitnessFn: fitnessFn}
}

// Track implements framework.ProgressTracker.
func (h *FitnessHistory[A]) Track(iteration int, population []framework.Individual[A]) {
	best := algorithms.BestIndividual(population, h.fitnessFn)
	h.stats = append(h.stats, GenerationStats{
		Iteration:      iteration,
		BestFitness:    h.fitnessFn(best),
		AverageFitness: algorithms.AverageFitness(population, h.fitnessFn),
	})
}

// Stats returns the recorded data points in notification order.
func (h *FitnessHistory[A]) Stats() []GenerationStats {
	return h.stats
}

// PlotFitnessHistory renders a line chart of best and average fitness per
// generation as a standalone HTML page.
func PlotFitnessHistory(w io.Writer, history []GenerationStats, problemName string) error {
	if len(history) == 0 {
		return fmt.Errorf("history is empty for %s", problemName)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("%s Results for %s", algorithms.Name, problemName),
			Subtitle: fmt.Sprintf("%s generations", humanize.Comma(int64(len(history)))),
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "generation",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "fitness",
			SplitLine: &opts.SplitLine{
				Show: opts.Bool(true),
			},
		}))

	xAxis := make([]int, len(history))
	best := make([]opts.LineData, len(history))
	average := make([]opts.LineData, len(history))
	for i, s := range history {
		xAxis[i] = s.Iteration
		best[i] = opts.LineData{Value: s.BestFitness}
		average[i] = opts.LineData{Value: s.AverageFitness}
	}

	line.SetXAxis(xAxis).
		AddSeries("Best Fitness", best).
		AddSeries("Average Fitness", average).
		SetSeriesOptions(
			charts.WithLabelOpts(opts.Label{
				Show: opts.Bool(false),
			}),
			charts.WithEmphasisOpts(opts.Emphasis{}),
		)

	return line.Render(w)
}
