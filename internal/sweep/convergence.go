package sweep

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/san-kum/spectre/pkg/eigensolver"
	"golang.org/x/sync/errgroup"
)

var ErrNoSizes = errors.New("sweep: no grid sizes given")

// Point is the low spectrum at one grid size.
type Point struct {
	N       int
	Values  []float64
	Elapsed time.Duration
}

// Convergence solves base with every dimension resampled to each size and
// returns the lowest k eigenvalues per size, ordered by size. At most
// workers solves run at once; workers <= 0 means no limit.
func Convergence(ctx context.Context, base eigensolver.Problem, sizes []int, k, workers int) ([]Point, error) {
	if len(sizes) == 0 {
		return nil, ErrNoSizes
	}

	points := make([]Point, len(sizes))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i, size := range sizes {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			p := base
			p.N = make([]int, base.Dims())
			for d := range p.N {
				p.N[d] = size
			}

			start := time.Now()
			values, err := eigensolver.Eigenvalues(p, eigensolver.WithStates(k))
			if err != nil {
				return fmt.Errorf("n=%d: %w", size, err)
			}
			points[i] = Point{N: size, Values: values, Elapsed: time.Since(start)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.SliceStable(points, func(a, b int) bool { return points[a].N < points[b].N })
	return points, nil
}

// Drift returns, for each consecutive pair of points, the largest change of
// any eigenvalue held by both.
func Drift(points []Point) []float64 {
	if len(points) < 2 {
		return nil
	}
	out := make([]float64, len(points)-1)
	for i := 1; i < len(points); i++ {
		prev, cur := points[i-1].Values, points[i].Values
		n := min(len(prev), len(cur))
		for j := 0; j < n; j++ {
			out[i-1] = math.Max(out[i-1], math.Abs(cur[j]-prev[j]))
		}
	}
	return out
}
