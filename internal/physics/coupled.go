package physics

import "math"

// CoupledHarmonic is ½ω²(x² + y²) + λxy. Its normal modes have frequencies
// √(ω² ± λ), so |λ| < ω² keeps it bound.
type CoupledHarmonic struct {
	Omega  float64
	Lambda float64
}

func NewCoupledHarmonic() *CoupledHarmonic {
	return &CoupledHarmonic{Omega: DefaultOmega, Lambda: 0.5}
}

func (c *CoupledHarmonic) Name() string { return "coupled_harmonic" }
func (c *CoupledHarmonic) Dims() int    { return 2 }

func (c *CoupledHarmonic) Eval(x []float64) float64 {
	return 0.5*c.Omega*c.Omega*(x[0]*x[0]+x[1]*x[1]) + c.Lambda*x[0]*x[1]
}

// Modes returns the two normal-mode frequencies.
func (c *CoupledHarmonic) Modes() (float64, float64) {
	w2 := c.Omega * c.Omega
	return math.Sqrt(w2 + c.Lambda), math.Sqrt(w2 - c.Lambda)
}

func (c *CoupledHarmonic) GetParams() map[string]float64 {
	return map[string]float64{"omega": c.Omega, "lambda": c.Lambda}
}

func (c *CoupledHarmonic) SetParam(n string, v float64) error {
	switch n {
	case "omega":
		c.Omega = v
	case "lambda":
		c.Lambda = v
	default:
		return unknownParam(c.Name(), n)
	}
	return nil
}
