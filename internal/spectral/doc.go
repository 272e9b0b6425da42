// Package spectral builds Fourier spectral differentiation matrices and the
// tensor-product helpers used to lift them onto multi-dimensional grids.
//
// All matrices act on a periodic function sampled at N uniform points of the
// canonical period [0, 2π):
//
//   - [FirstDerivative]: Toeplitz approximation of d/dθ
//   - [SecondDerivative]: symmetric Toeplitz approximation of d²/dθ²
//   - [Embed]: places 1-D operators into their dimension slot of an
//     n-dimensional Kronecker product, identity elsewhere
//
// # Ordering
//
// Kronecker products are always taken in dimension order A0 ⊗ A1 ⊗ … so the
// last dimension varies fastest in the flattened index.
package spectral
