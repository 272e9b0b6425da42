package analysis

import (
	"errors"
	"math"
	"math/cmplx"

	"github.com/san-kum/spectre/pkg/eigensolver"
	"gonum.org/v1/gonum/dsp/fourier"
)

var ErrNotOneDimensional = errors.New("analysis: momentum distribution needs a 1-D solution")

// MomentumDistribution returns the non-negative wavenumbers of state i and
// the probability carried by ±k at each, summing to 1.
func MomentumDistribution(sol *eigensolver.Solution, i int) (k, p []float64, err error) {
	if err := checkState(sol, i); err != nil {
		return nil, nil, err
	}
	if sol.Dims() != 1 {
		return nil, nil, ErrNotOneDimensional
	}

	psi := sol.State(i)
	n := len(psi)
	step := sol.Mesh().Axes[0].Step()

	fft := fourier.NewFFT(n)
	coeff := fft.Coefficients(nil, psi)

	k = make([]float64, len(coeff))
	p = make([]float64, len(coeff))
	total := 0.0
	for j, c := range coeff {
		k[j] = 2 * math.Pi * fft.Freq(j) / step
		w := cmplx.Abs(c)
		w *= w
		// interior bins stand for both +k and −k
		if j != 0 && !(n%2 == 0 && j == n/2) {
			w *= 2
		}
		p[j] = w
		total += w
	}
	for j := range p {
		p[j] /= total
	}
	return k, p, nil
}

// MeanSquareMomentum returns ⟨k²⟩ from a momentum distribution.
func MeanSquareMomentum(k, p []float64) float64 {
	s := 0.0
	for j := range k {
		s += k[j] * k[j] * p[j]
	}
	return s
}
