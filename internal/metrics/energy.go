package metrics

import (
	"math"

	"github.com/san-kum/spectre/pkg/eigensolver"
	"gonum.org/v1/gonum/mat"
)

type GroundEnergy struct {
	name  string
	value float64
	seen  bool
}

func NewGroundEnergy() *GroundEnergy {
	return &GroundEnergy{name: "ground_energy"}
}

func (g *GroundEnergy) Name() string { return g.name }

func (g *GroundEnergy) Observe(sol *eigensolver.Solution, _ mat.Symmetric) {
	if sol == nil || len(sol.Values) == 0 {
		return
	}
	g.value = sol.Values[0]
	g.seen = true
}

func (g *GroundEnergy) Value() float64 {
	if !g.seen {
		return math.NaN()
	}
	return g.value
}

func (g *GroundEnergy) Reset() {
	g.value = 0
	g.seen = false
}

// Gap is E1 − E0.
type Gap struct {
	name string
	gap  float64
}

func NewGap() *Gap {
	return &Gap{name: "gap"}
}

func (g *Gap) Name() string { return g.name }

func (g *Gap) Observe(sol *eigensolver.Solution, _ mat.Symmetric) {
	if sol == nil || len(sol.Values) < 2 {
		return
	}
	g.gap = sol.Values[1] - sol.Values[0]
}

func (g *Gap) Value() float64 { return g.gap }

func (g *Gap) Reset() { g.gap = 0 }
