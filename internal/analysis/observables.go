package analysis

import (
	"errors"
	"fmt"

	"github.com/san-kum/spectre/pkg/eigensolver"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

var (
	ErrNoVectors = errors.New("analysis: solution has no eigenvectors")
	ErrState     = errors.New("analysis: state index out of range")
	ErrDimension = errors.New("analysis: dimension out of range")
)

func checkState(sol *eigensolver.Solution, i int) error {
	if !sol.HasVectors() {
		return ErrNoVectors
	}
	if i < 0 || i >= sol.NumStates() {
		return fmt.Errorf("%w: %d of %d", ErrState, i, sol.NumStates())
	}
	return nil
}

// Norm returns Σ|ψ_i|²·ΔV.
func Norm(sol *eigensolver.Solution, i int) (float64, error) {
	if err := checkState(sol, i); err != nil {
		return 0, err
	}
	return floats.Sum(sol.Density(i)) * sol.CellVolume(), nil
}

// coordinate returns x_dim at every mesh point in storage order.
func coordinate(sol *eigensolver.Solution, dim int) ([]float64, error) {
	if dim < 0 || dim >= sol.Dims() {
		return nil, fmt.Errorf("%w: %d of %d", ErrDimension, dim, sol.Dims())
	}
	mesh := sol.Mesh()
	x := make([]float64, mesh.Size())
	pt := make([]float64, mesh.Dims())
	for p := range x {
		x[p] = mesh.Point(p, pt)[dim]
	}
	return x, nil
}

func positionMoments(sol *eigensolver.Solution, i, dim int) (mean, std float64, err error) {
	if err := checkState(sol, i); err != nil {
		return 0, 0, err
	}
	x, err := coordinate(sol, dim)
	if err != nil {
		return 0, 0, err
	}
	mean, std = stat.PopMeanStdDev(x, sol.Density(i))
	return mean, std, nil
}

// Expectation returns ⟨x_dim⟩ for state i.
func Expectation(sol *eigensolver.Solution, i, dim int) (float64, error) {
	mean, _, err := positionMoments(sol, i, dim)
	return mean, err
}

// Uncertainty returns Δx_dim = √(⟨x²⟩ − ⟨x⟩²) for state i.
func Uncertainty(sol *eigensolver.Solution, i, dim int) (float64, error) {
	_, std, err := positionMoments(sol, i, dim)
	return std, err
}

// Entropy returns the Shannon entropy (nats) of the point probabilities
// |ψ_i(p)|²·ΔV.
func Entropy(sol *eigensolver.Solution, i int) (float64, error) {
	if err := checkState(sol, i); err != nil {
		return 0, err
	}
	p := sol.Density(i)
	floats.Scale(sol.CellVolume(), p)
	return stat.Entropy(p), nil
}

// Marginal returns the coordinates of dimension dim and the density of
// state i integrated over every other dimension.
func Marginal(sol *eigensolver.Solution, i, dim int) (x, rho []float64, err error) {
	if err := checkState(sol, i); err != nil {
		return nil, nil, err
	}
	if dim < 0 || dim >= sol.Dims() {
		return nil, nil, fmt.Errorf("%w: %d of %d", ErrDimension, dim, sol.Dims())
	}

	mesh := sol.Mesh()
	axis := mesh.Axes[dim]
	rest := mesh.CellVolume() / axis.Step()

	rho = make([]float64, axis.N)
	idx := make([]int, mesh.Dims())
	for p, d := range sol.Density(i) {
		mesh.Index(p, idx)
		rho[idx[dim]] += d * rest
	}
	return mesh.Coords[dim], rho, nil
}
