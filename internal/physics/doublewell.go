package physics

// DoubleWell models a particle in the bistable potential A(x²−B)², minima at
// ±√B separated by a barrier of height A·B².
type DoubleWell struct {
	A, B float64
}

func NewDoubleWell() *DoubleWell {
	return &DoubleWell{A: 1.0, B: 1.0}
}

func (d *DoubleWell) Name() string { return "double_well" }
func (d *DoubleWell) Dims() int    { return 1 }

func (d *DoubleWell) Eval(x []float64) float64 {
	q := x[0]*x[0] - d.B
	return d.A * q * q
}

func (d *DoubleWell) Barrier() float64 { return d.A * d.B * d.B }

func (d *DoubleWell) GetParams() map[string]float64 {
	return map[string]float64{"A": d.A, "B": d.B}
}

func (d *DoubleWell) SetParam(n string, v float64) error {
	switch n {
	case "A":
		d.A = v
	case "B":
		d.B = v
	default:
		return unknownParam(d.Name(), n)
	}
	return nil
}
