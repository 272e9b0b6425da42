package physics

// Free is the zero potential.
type Free struct {
	N int
}

func NewFree(dims int) *Free { return &Free{N: dims} }

func (f *Free) Name() string                       { return "free" }
func (f *Free) Dims() int                          { return f.N }
func (f *Free) Eval(_ []float64) float64           { return 0 }
func (f *Free) GetParams() map[string]float64      { return map[string]float64{} }
func (f *Free) SetParam(n string, _ float64) error { return unknownParam(f.Name(), n) }
