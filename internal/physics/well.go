package physics

import "math"

// FiniteWell is −Depth inside |x_i| < Width/2 for every axis and 0 outside.
type FiniteWell struct {
	N     int
	Depth float64
	Width float64
}

func NewFiniteWell(dims int) *FiniteWell {
	return &FiniteWell{N: dims, Depth: 10, Width: 2}
}

func (w *FiniteWell) Name() string { return "finite_well" }
func (w *FiniteWell) Dims() int    { return w.N }

func (w *FiniteWell) Eval(x []float64) float64 {
	for _, xi := range x {
		if math.Abs(xi) >= w.Width/2 {
			return 0
		}
	}
	return -w.Depth
}

func (w *FiniteWell) GetParams() map[string]float64 {
	return map[string]float64{"depth": w.Depth, "width": w.Width}
}

func (w *FiniteWell) SetParam(n string, v float64) error {
	switch n {
	case "depth":
		w.Depth = v
	case "width":
		w.Width = v
	default:
		return unknownParam(w.Name(), n)
	}
	return nil
}
