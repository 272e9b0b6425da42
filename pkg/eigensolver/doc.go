// Package eigensolver computes bound states of a Schrödinger-type operator
//
//	H = U(x) + Σ kd_i ∂²/∂x_i² + Σ kc_ab ∂²/∂x_a∂x_b
//
// on a periodic box in 1, 2 or 3 dimensions using Fourier spectral
// differentiation matrices.
//
// The Hamiltonian is assembled densely from Kronecker products of 1-D
// operators and diagonalized with a LAPACK symmetric eigensolver:
//
//   - [Problem]: potential, grid sizes, domains and kinetic coefficients
//   - [Hamiltonian]: the assembled operator as a *mat.SymDense
//   - [Solve]: eigenvalues, eigenvectors and grid
//   - [Eigenvalues]: eigenvalues only
//
// # Example
//
//	p := eigensolver.Problem{
//	    Potential: func(x []float64) float64 { return 0.5 * x[0] * x[0] },
//	    N:         []int{64},
//	    Domain:    [][]float64{{-10, 10}},
//	    KDiag:     []float64{-0.5},
//	}
//	sol, err := eigensolver.Solve(p, eigensolver.WithStates(5))
//
// # Ordering
//
// Mesh points and eigenvector components are flattened row-major, with the
// first dimension varying slowest.
//
// # Memory
//
// The Hamiltonian is dense with (∏N_i)² entries. Keep ∏N_i in the low
// thousands for 2-D and 3-D problems.
package eigensolver
