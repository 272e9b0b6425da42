package sweep

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/san-kum/spectre/internal/experiment"
	"golang.org/x/sync/errgroup"
)

// GridSearch runs an experiment at every combination of parameter values and
// keeps the one minimizing a metric.
type GridSearch struct {
	paramNames []string
	ranges     [][]float64
	workers    int
}

func NewGridSearch(params []string, ranges [][]float64, workers int) *GridSearch {
	return &GridSearch{paramNames: params, ranges: ranges, workers: workers}
}

// Trial is one evaluated parameter combination.
type Trial struct {
	Params map[string]float64
	Value  float64
}

func (g *GridSearch) combinations() []map[string]float64 {
	combos := []map[string]float64{{}}
	for depth, name := range g.paramNames {
		next := make([]map[string]float64, 0, len(combos)*len(g.ranges[depth]))
		for _, c := range combos {
			for _, v := range g.ranges[depth] {
				m := make(map[string]float64, len(c)+1)
				for k, cv := range c {
					m[k] = cv
				}
				m[name] = v
				next = append(next, m)
			}
		}
		combos = next
	}
	return combos
}

// Search returns every trial in enumeration order together with the index
// of the best one. Failed builds or runs abort the search.
func (g *GridSearch) Search(
	ctx context.Context,
	buildExperiment func(params map[string]float64) (*experiment.Experiment, error),
	metricName string,
) ([]Trial, int, error) {
	if len(g.paramNames) != len(g.ranges) {
		return nil, -1, fmt.Errorf("sweep: %d params but %d ranges", len(g.paramNames), len(g.ranges))
	}

	combos := g.combinations()
	trials := make([]Trial, len(combos))

	eg, ctx := errgroup.WithContext(ctx)
	if g.workers > 0 {
		eg.SetLimit(g.workers)
	}

	var mu sync.Mutex
	best, bestIdx := math.Inf(1), -1

	for i, params := range combos {
		eg.Go(func() error {
			exp, err := buildExperiment(params)
			if err != nil {
				return err
			}
			result, err := exp.Run(ctx)
			if err != nil {
				return err
			}

			val, ok := result.Metrics[metricName]
			if !ok {
				return fmt.Errorf("sweep: unknown metric %q", metricName)
			}
			trials[i] = Trial{Params: params, Value: val}

			mu.Lock()
			if val < best || (val == best && i < bestIdx) {
				best, bestIdx = val, i
			}
			mu.Unlock()
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, -1, err
	}
	return trials, bestIdx, nil
}
