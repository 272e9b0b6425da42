package metrics

import (
	"github.com/san-kum/spectre/pkg/eigensolver"
	"gonum.org/v1/gonum/mat"
)

// Metric scores a solved eigenproblem. h may be nil for metrics that only
// need the spectrum.
type Metric interface {
	Name() string
	Observe(sol *eigensolver.Solution, h mat.Symmetric)
	Value() float64
	Reset()
}

// Default returns the metrics evaluated after every run.
func Default() []Metric {
	return []Metric{
		NewGroundEnergy(),
		NewGap(),
		NewResidual(),
		NewOrthogonality(),
		NewLeakage(2),
	}
}

// Evaluate resets, observes and collects every metric by name.
func Evaluate(ms []Metric, sol *eigensolver.Solution, h mat.Symmetric) map[string]float64 {
	out := make(map[string]float64, len(ms))
	for _, m := range ms {
		m.Reset()
		m.Observe(sol, h)
		out[m.Name()] = m.Value()
	}
	return out
}
