// Package physics provides potential energy surfaces for the eigensolver.
//
// Each potential implements [Potential]: a dimension count, a pointwise
// energy and runtime-adjustable parameters:
//
//   - [Free]: zero potential, plane waves on the periodic box
//   - [Harmonic]: isotropic oscillator ½ω²|x|² in any dimension
//   - [DoubleWell]: bistable A(x²−B)²
//   - [Morse]: anharmonic D(1−e^{−a(x−x0)})²
//   - [FiniteWell]: square well of given depth and width
//   - [Quartic]: pure quartic λx⁴
//   - [CoupledHarmonic]: 2-D oscillator with a bilinear λxy coupling
//
// # Example
//
//	pot := physics.NewHarmonic(1)
//	_ = pot.SetParam("omega", 2)
//	p := eigensolver.Problem{Potential: pot.Eval, ...}
package physics
