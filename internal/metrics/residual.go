package metrics

import (
	"math"

	"github.com/san-kum/spectre/pkg/eigensolver"
	"gonum.org/v1/gonum/mat"
)

// Residual is the largest ‖Hψ − Eψ‖₂ over the held states.
type Residual struct {
	name string
	max  float64
}

func NewResidual() *Residual {
	return &Residual{name: "residual"}
}

func (r *Residual) Name() string { return r.name }

func (r *Residual) Observe(sol *eigensolver.Solution, h mat.Symmetric) {
	if sol == nil || h == nil || !sol.HasVectors() {
		return
	}
	n := h.SymmetricDim()
	var hpsi mat.VecDense
	for i := 0; i < sol.NumStates(); i++ {
		psi := mat.NewVecDense(n, sol.State(i))
		hpsi.MulVec(h, psi)
		hpsi.AddScaledVec(&hpsi, -sol.Values[i], psi)
		r.max = math.Max(r.max, mat.Norm(&hpsi, 2))
	}
}

func (r *Residual) Value() float64 { return r.max }

func (r *Residual) Reset() { r.max = 0 }

// Orthogonality is the largest entry of |VᵀV − I|.
type Orthogonality struct {
	name string
	max  float64
}

func NewOrthogonality() *Orthogonality {
	return &Orthogonality{name: "orthogonality"}
}

func (o *Orthogonality) Name() string { return o.name }

func (o *Orthogonality) Observe(sol *eigensolver.Solution, _ mat.Symmetric) {
	if sol == nil || !sol.HasVectors() {
		return
	}
	var g mat.Dense
	g.Mul(sol.Vectors.T(), sol.Vectors)
	k, _ := g.Dims()
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			want := 0.0
			if i == j {
				want = 1
			}
			o.max = math.Max(o.max, math.Abs(g.At(i, j)-want))
		}
	}
}

func (o *Orthogonality) Value() float64 { return o.max }

func (o *Orthogonality) Reset() { o.max = 0 }
