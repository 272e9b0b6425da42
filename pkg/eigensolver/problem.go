package eigensolver

import (
	"math"

	"github.com/san-kum/spectre/internal/grid"
)

// MaxDimensions caps the number of spatial dimensions. The assembly itself is
// dimension-agnostic; the cap keeps the dense operator within reach.
const MaxDimensions = 3

// Potential maps one coordinate vector to an energy. The slice is reused
// between calls and must not be retained.
type Potential func(x []float64) float64

// Problem describes one eigenproblem.
//
// KDiag holds the coefficient of ∂²/∂x_i² per dimension (default −1).
// KCross holds the coefficient of ∂²/∂x_a∂x_b per unordered pair in the order
// (0,1), (0,2), (1,2) (default 0). A nonzero KCross entry needs an even N on
// both axes of its pair. Both are given in physical units and
// rescaled to the canonical period internally.
type Problem struct {
	Potential Potential
	N         []int
	Domain    [][]float64
	KDiag     []float64
	KCross    []float64
}

// Dims returns the number of spatial dimensions.
func (p Problem) Dims() int { return len(p.N) }

// Size returns ∏N_i, the side of the Hamiltonian.
func (p Problem) Size() int {
	s := 1
	for _, n := range p.N {
		s *= n
	}
	return s
}

// Validate checks the problem in a fixed order: dimensions, domain count,
// domain endpoints, domain ordering, grid sizes, coefficients, potential.
func (p Problem) Validate() error {
	n := len(p.N)
	if n == 0 || n > MaxDimensions {
		return configErr("N", -1, ErrDimension, "got %d dimensions, want 1..%d", n, MaxDimensions)
	}
	if len(p.Domain) != n {
		return configErr("Domain", -1, ErrDomainCount, "%d domains for %d dimensions", len(p.Domain), n)
	}
	for i, d := range p.Domain {
		if len(d) != 2 {
			return configErr("Domain", i, ErrDomainEndpoints, "got %d endpoints", len(d))
		}
	}
	for i, d := range p.Domain {
		if !finite(d[0]) || !finite(d[1]) || d[0] >= d[1] {
			return configErr("Domain", i, ErrDomainOrder, "[%g, %g]", d[0], d[1])
		}
	}
	for i, v := range p.N {
		if v < 2 {
			return configErr("N", i, ErrGridSize, "got %d points", v)
		}
	}
	if len(p.KDiag) != 0 && len(p.KDiag) != n {
		return configErr("KDiag", -1, ErrCoefficients, "got %d, want %d", len(p.KDiag), n)
	}
	if want := grid.NumPairs(n); len(p.KCross) != 0 && len(p.KCross) != want {
		return configErr("KCross", -1, ErrCoefficients, "got %d, want %d", len(p.KCross), want)
	}
	for j, pair := range grid.Pairs(n) {
		if j >= len(p.KCross) || p.KCross[j] == 0 {
			continue
		}
		if p.N[pair.A]%2 != 0 || p.N[pair.B]%2 != 0 {
			return configErr("KCross", j, ErrCrossParity, "N=%d and N=%d on axes %d,%d", p.N[pair.A], p.N[pair.B], pair.A, pair.B)
		}
	}
	if p.Potential == nil {
		return configErr("Potential", -1, ErrNilPotential, "no potential given")
	}
	return nil
}

func (p Problem) axes() []grid.Axis {
	axes := make([]grid.Axis, len(p.N))
	for i, n := range p.N {
		axes[i] = grid.Axis{N: n, Min: p.Domain[i][0], Max: p.Domain[i][1]}
	}
	return axes
}

func (p Problem) kdiag() []float64 {
	if len(p.KDiag) == 0 {
		return grid.DefaultKDiag(len(p.N))
	}
	return p.KDiag
}

func (p Problem) kcross() []float64 {
	if len(p.KCross) == 0 {
		return make([]float64, grid.NumPairs(len(p.N)))
	}
	return p.KCross
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
