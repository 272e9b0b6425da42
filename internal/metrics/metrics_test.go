package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/spectre/pkg/eigensolver"
)

func harmonicProblem(lo, hi float64) eigensolver.Problem {
	return eigensolver.Problem{
		Potential: func(x []float64) float64 { return 0.5 * x[0] * x[0] },
		N:         []int{40},
		Domain:    [][]float64{{lo, hi}},
		KDiag:     []float64{-0.5},
	}
}

func TestDefaultMetrics(t *testing.T) {
	p := harmonicProblem(-9, 9)
	sol, err := eigensolver.Solve(p, eigensolver.WithStates(4))
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}
	h, err := eigensolver.Hamiltonian(p)
	if err != nil {
		t.Fatalf("hamiltonian failed: %v", err)
	}

	got := Evaluate(Default(), sol, h)

	if math.Abs(got["ground_energy"]-0.5) > 1e-6 {
		t.Errorf("expected ground energy 0.5, got %f", got["ground_energy"])
	}
	if math.Abs(got["gap"]-1) > 1e-6 {
		t.Errorf("expected gap 1, got %f", got["gap"])
	}
	if got["residual"] > 1e-8 {
		t.Errorf("residual too large: %g", got["residual"])
	}
	if got["orthogonality"] > 1e-10 {
		t.Errorf("orthogonality error too large: %g", got["orthogonality"])
	}
	if got["leakage"] > 1e-10 {
		t.Errorf("expected negligible leakage, got %g", got["leakage"])
	}
}

func TestLeakageDetectsSmallBox(t *testing.T) {
	sol, err := eigensolver.Solve(harmonicProblem(-2, 2), eigensolver.WithStates(3))
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	m := NewLeakage(2)
	m.Observe(sol, nil)
	if m.Value() < 1e-3 {
		t.Errorf("expected visible leakage in a small box, got %g", m.Value())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero after reset")
	}
}

func TestMetricsWithoutVectors(t *testing.T) {
	sol, err := eigensolver.Solve(harmonicProblem(-9, 9), eigensolver.ValuesOnly())
	if err != nil {
		t.Fatalf("solve failed: %v", err)
	}

	got := Evaluate(Default(), sol, nil)
	if got["residual"] != 0 || got["orthogonality"] != 0 || got["leakage"] != 0 {
		t.Errorf("vector metrics should stay zero without vectors: %v", got)
	}
	if math.Abs(got["ground_energy"]-0.5) > 1e-6 {
		t.Errorf("expected ground energy 0.5, got %f", got["ground_energy"])
	}
}

func TestGroundEnergyUnset(t *testing.T) {
	g := NewGroundEnergy()
	if !math.IsNaN(g.Value()) {
		t.Error("expected NaN before observing")
	}
}
