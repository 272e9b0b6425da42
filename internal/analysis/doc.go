// Package analysis derives physical observables from a solved eigenproblem.
//
// Position observables weight each mesh point by the state's density:
//
//   - [Norm]: ∫|ψ|² dV, which is 1 for every returned state
//   - [Expectation] and [Uncertainty]: ⟨x_d⟩ and Δx_d along one dimension
//   - [Entropy]: Shannon entropy of the discrete position distribution
//
// Spectrum helpers work on eigenvalues alone:
//
//	spacings := analysis.LevelSpacings(sol.Values)
//	groups := analysis.Degeneracies(sol.Values, 1e-8)
//
// [MomentumDistribution] transforms a 1-D state with a real FFT and returns
// its one-sided momentum distribution.
package analysis
