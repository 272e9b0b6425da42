package physics

import "math"

// Morse is D·(1 − exp(−a(x − x0)))². With unit mass and ħ the bound levels
// are E_n = ω(n+½) − (ω(n+½))²/(4D), ω = a·√(2D).
type Morse struct {
	D, A, X0 float64
}

func NewMorse() *Morse {
	return &Morse{D: 10, A: 1, X0: 0}
}

func (m *Morse) Name() string { return "morse" }
func (m *Morse) Dims() int    { return 1 }

func (m *Morse) Eval(x []float64) float64 {
	e := 1 - math.Exp(-m.A*(x[0]-m.X0))
	return m.D * e * e
}

// Level returns the analytic bound-state energy n for kinetic term −½∂².
func (m *Morse) Level(n int) float64 {
	w := m.A * math.Sqrt(2*m.D)
	v := w * (float64(n) + 0.5)
	return v - v*v/(4*m.D)
}

func (m *Morse) GetParams() map[string]float64 {
	return map[string]float64{"D": m.D, "a": m.A, "x0": m.X0}
}

func (m *Morse) SetParam(n string, v float64) error {
	switch n {
	case "D":
		m.D = v
	case "a":
		m.A = v
	case "x0":
		m.X0 = v
	default:
		return unknownParam(m.Name(), n)
	}
	return nil
}
