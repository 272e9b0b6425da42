package physics

const DefaultOmega = 1.0

// Harmonic is the isotropic oscillator ½·ω²·|x − x0|² with unit mass.
type Harmonic struct {
	N      int
	Omega  float64
	Center float64
}

func NewHarmonic(dims int) *Harmonic {
	return &Harmonic{N: dims, Omega: DefaultOmega}
}

func (h *Harmonic) Name() string { return "harmonic" }
func (h *Harmonic) Dims() int    { return h.N }

func (h *Harmonic) Eval(x []float64) float64 {
	r2 := 0.0
	for _, xi := range x {
		d := xi - h.Center
		r2 += d * d
	}
	return 0.5 * h.Omega * h.Omega * r2
}

func (h *Harmonic) GetParams() map[string]float64 {
	return map[string]float64{"omega": h.Omega, "center": h.Center}
}

func (h *Harmonic) SetParam(n string, v float64) error {
	switch n {
	case "omega":
		h.Omega = v
	case "center":
		h.Center = v
	default:
		return unknownParam(h.Name(), n)
	}
	return nil
}
