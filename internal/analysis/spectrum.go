package analysis

import (
	"errors"
	"math"
)

var ErrEmptySpectrum = errors.New("analysis: empty spectrum")

// LevelSpacings returns E[i+1] − E[i].
func LevelSpacings(values []float64) []float64 {
	if len(values) < 2 {
		return nil
	}
	out := make([]float64, len(values)-1)
	for i := range out {
		out[i] = values[i+1] - values[i]
	}
	return out
}

// Degeneracies groups indices of sorted values whose neighbours differ by at
// most tol. Every index appears in exactly one group.
func Degeneracies(values []float64, tol float64) [][]int {
	if len(values) == 0 {
		return nil
	}
	groups := [][]int{{0}}
	for i := 1; i < len(values); i++ {
		last := &groups[len(groups)-1]
		if math.Abs(values[i]-values[i-1]) <= tol {
			*last = append(*last, i)
			continue
		}
		groups = append(groups, []int{i})
	}
	return groups
}

// CompareSpectrum returns the largest |got[i] − want[i]| over the shorter of
// the two slices.
func CompareSpectrum(got, want []float64) (float64, error) {
	n := min(len(got), len(want))
	if n == 0 {
		return 0, ErrEmptySpectrum
	}
	worst := 0.0
	for i := 0; i < n; i++ {
		worst = math.Max(worst, math.Abs(got[i]-want[i]))
	}
	return worst, nil
}
