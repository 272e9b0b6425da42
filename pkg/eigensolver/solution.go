package eigensolver

import (
	"fmt"
	"math"

	"github.com/san-kum/spectre/internal/grid"
	"gonum.org/v1/gonum/mat"
)

// Solution holds the sorted spectrum and, unless values only were requested,
// the eigenvectors and the grid they live on.
type Solution struct {
	Values  []float64
	Vectors *mat.Dense  // column j belongs to Values[j]
	Grid    [][]float64 // one coordinate slice per dimension

	mesh *grid.Mesh
	h    *mat.SymDense
}

// Restore rebuilds a solution from stored parts. vectors may be nil for a
// values-only solution, in which case n and domain are ignored.
func Restore(values []float64, vectors *mat.Dense, n []int, domain [][]float64) (*Solution, error) {
	sol := &Solution{Values: values}
	if vectors == nil {
		return sol, nil
	}

	p := Problem{N: n, Domain: domain, Potential: func([]float64) float64 { return 0 }}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	rows, cols := vectors.Dims()
	if rows != p.Size() || cols != len(values) {
		return nil, fmt.Errorf("eigensolver: vectors are %dx%d, want %dx%d", rows, cols, p.Size(), len(values))
	}

	mesh := grid.NewMesh(p.axes())
	sol.Vectors = vectors
	sol.Grid = mesh.Coords
	sol.mesh = mesh
	return sol, nil
}

// Hamiltonian returns the operator the solution was computed from. It is nil
// for values-only and restored solutions.
func (s *Solution) Hamiltonian() mat.Symmetric {
	if s.h == nil {
		return nil
	}
	return s.h
}

// NumStates returns the number of eigenvalues held.
func (s *Solution) NumStates() int { return len(s.Values) }

// HasVectors reports whether eigenvectors were computed.
func (s *Solution) HasVectors() bool { return s.Vectors != nil }

// Dims returns the number of spatial dimensions, or 0 for values-only solutions.
func (s *Solution) Dims() int { return len(s.Grid) }

// Axis returns the coordinates of a 1-D solution, or nil otherwise.
func (s *Solution) Axis() []float64 {
	if len(s.Grid) != 1 {
		return nil
	}
	return s.Grid[0]
}

// Mesh returns the mesh the eigenvectors are sampled on.
func (s *Solution) Mesh() *grid.Mesh { return s.mesh }

// CellVolume returns the volume element of the mesh.
func (s *Solution) CellVolume() float64 {
	if s.mesh == nil {
		return 0
	}
	return s.mesh.CellVolume()
}

// State returns a copy of eigenvector i (unit Euclidean norm).
func (s *Solution) State(i int) []float64 {
	if s.Vectors == nil || i < 0 || i >= s.NumStates() {
		return nil
	}
	n, _ := s.Vectors.Dims()
	return mat.Col(make([]float64, n), i, s.Vectors)
}

// Wavefunction returns eigenvector i scaled so that Σ|ψ|²·ΔV = 1.
func (s *Solution) Wavefunction(i int) []float64 {
	psi := s.State(i)
	if psi == nil {
		return nil
	}
	scale := 1 / math.Sqrt(s.CellVolume())
	for k := range psi {
		psi[k] *= scale
	}
	return psi
}

// Density returns |ψ_i|² on the mesh for the normalized wavefunction.
func (s *Solution) Density(i int) []float64 {
	psi := s.Wavefunction(i)
	for k, v := range psi {
		psi[k] = v * v
	}
	return psi
}
