package eigensolver

import (
	"github.com/san-kum/spectre/internal/grid"
	"github.com/san-kum/spectre/internal/spectral"
	"gonum.org/v1/gonum/mat"
)

// Hamiltonian validates p and returns its assembled dense operator.
func Hamiltonian(p Problem) (*mat.SymDense, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	h, _, err := assemble(p)
	return h, err
}

// assemble builds H = diag(U) + Σ kd_i·D2_i + Σ kc_ab·D1_a·D1_b where each
// operator is embedded in its dimension slot of the tensor product. Cross
// terms with a zero coefficient are skipped.
func assemble(p Problem) (*mat.SymDense, *grid.Mesh, error) {
	axes := p.axes()
	mesh := grid.NewMesh(axes)
	sizes := mesh.Sizes()
	size := mesh.Size()

	kd := grid.ScaleDiag(p.kdiag(), axes)
	kc := grid.ScaleCross(p.kcross(), axes)

	h := mat.NewDense(size, size, nil)
	for i, u := range mesh.Sample(p.Potential) {
		h.Set(i, i, u)
	}

	d1 := make([]*mat.Dense, len(axes))
	for d, a := range axes {
		d2, err := spectral.SecondDerivative(a.N, a.Spacing())
		if err != nil {
			return nil, nil, err
		}
		term, err := spectral.Embed(sizes, map[int]mat.Matrix{d: d2})
		if err != nil {
			return nil, nil, err
		}
		addScaled(h, kd[d], term)
	}

	for j, pair := range grid.Pairs(len(axes)) {
		if kc[j] == 0 {
			continue
		}
		for _, d := range []int{pair.A, pair.B} {
			if d1[d] != nil {
				continue
			}
			op, err := spectral.FirstDerivative(axes[d].N, axes[d].Spacing())
			if err != nil {
				return nil, nil, err
			}
			d1[d] = op
		}
		term, err := spectral.Embed(sizes, map[int]mat.Matrix{pair.A: d1[pair.A], pair.B: d1[pair.B]})
		if err != nil {
			return nil, nil, err
		}
		addScaled(h, kc[j], term)
	}

	return symmetrize(h), mesh, nil
}

func addScaled(dst *mat.Dense, alpha float64, term *mat.Dense) {
	if alpha == 0 {
		return
	}
	var scaled mat.Dense
	scaled.Scale(alpha, term)
	dst.Add(dst, &scaled)
}

// symmetrize averages h with its transpose so the result is exactly symmetric.
func symmetrize(h *mat.Dense) *mat.SymDense {
	n, _ := h.Dims()
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, 0.5*(h.At(i, j)+h.At(j, i)))
		}
	}
	return sym
}
