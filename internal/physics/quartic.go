package physics

// Quartic is λ·x⁴.
type Quartic struct {
	Lambda float64
}

func NewQuartic() *Quartic { return &Quartic{Lambda: 1} }

func (q *Quartic) Name() string { return "quartic" }
func (q *Quartic) Dims() int    { return 1 }

func (q *Quartic) Eval(x []float64) float64 {
	x2 := x[0] * x[0]
	return q.Lambda * x2 * x2
}

func (q *Quartic) GetParams() map[string]float64 {
	return map[string]float64{"lambda": q.Lambda}
}

func (q *Quartic) SetParam(n string, v float64) error {
	if n != "lambda" {
		return unknownParam(q.Name(), n)
	}
	q.Lambda = v
	return nil
}
