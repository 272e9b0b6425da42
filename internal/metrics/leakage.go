package metrics

import (
	"math"

	"github.com/san-kum/spectre/pkg/eigensolver"
	"gonum.org/v1/gonum/mat"
)

// Leakage is the largest probability any held state places within width
// points of a box face. Large values mean the domain is too small and the
// periodic images interact.
type Leakage struct {
	name  string
	width int
	max   float64
}

func NewLeakage(width int) *Leakage {
	return &Leakage{name: "leakage", width: width}
}

func (l *Leakage) Name() string { return l.name }

func (l *Leakage) Observe(sol *eigensolver.Solution, _ mat.Symmetric) {
	if sol == nil || !sol.HasVectors() || sol.Mesh() == nil {
		return
	}
	mesh := sol.Mesh()
	sizes := mesh.Sizes()
	idx := make([]int, len(sizes))

	for i := 0; i < sol.NumStates(); i++ {
		psi := sol.State(i)
		edge := 0.0
		for p, v := range psi {
			mesh.Index(p, idx)
			if l.nearFace(idx, sizes) {
				edge += v * v
			}
		}
		l.max = math.Max(l.max, edge)
	}
}

func (l *Leakage) nearFace(idx, sizes []int) bool {
	for d, i := range idx {
		if i < l.width || i >= sizes[d]-l.width {
			return true
		}
	}
	return false
}

func (l *Leakage) Value() float64 { return l.max }

func (l *Leakage) Reset() { l.max = 0 }
