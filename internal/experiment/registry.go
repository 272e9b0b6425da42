package experiment

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/san-kum/spectre/internal/metrics"
	"github.com/san-kum/spectre/internal/physics"
)

var (
	ErrUnknownPotential = errors.New("experiment: unknown potential")
	ErrDimsMismatch     = errors.New("experiment: potential does not support dimension count")
)

// Defaults fill whatever a config leaves out.
type Defaults struct {
	Dims   int
	N      int
	Domain [2]float64
	KDiag  float64
}

type entry struct {
	factory func(dims int) physics.Potential
	fixed   bool
	def     Defaults
}

type Registry struct {
	potentials map[string]entry
}

func NewRegistry() *Registry {
	r := &Registry{potentials: make(map[string]entry)}

	r.potentials["free"] = entry{
		factory: func(d int) physics.Potential { return physics.NewFree(d) },
		def:     Defaults{Dims: 1, N: 32, Domain: [2]float64{0, 2 * math.Pi}, KDiag: -0.5},
	}
	r.potentials["harmonic"] = entry{
		factory: func(d int) physics.Potential { return physics.NewHarmonic(d) },
		def:     Defaults{Dims: 1, N: 64, Domain: [2]float64{-10, 10}, KDiag: -0.5},
	}
	r.potentials["finite_well"] = entry{
		factory: func(d int) physics.Potential { return physics.NewFiniteWell(d) },
		def:     Defaults{Dims: 1, N: 96, Domain: [2]float64{-6, 6}, KDiag: -0.5},
	}
	r.potentials["double_well"] = entry{
		factory: func(int) physics.Potential { return physics.NewDoubleWell() },
		fixed:   true,
		def:     Defaults{Dims: 1, N: 96, Domain: [2]float64{-6, 6}, KDiag: -0.5},
	}
	r.potentials["morse"] = entry{
		factory: func(int) physics.Potential { return physics.NewMorse() },
		fixed:   true,
		def:     Defaults{Dims: 1, N: 96, Domain: [2]float64{-3, 12}, KDiag: -0.5},
	}
	r.potentials["quartic"] = entry{
		factory: func(int) physics.Potential { return physics.NewQuartic() },
		fixed:   true,
		def:     Defaults{Dims: 1, N: 64, Domain: [2]float64{-6, 6}, KDiag: -0.5},
	}
	r.potentials["coupled_harmonic"] = entry{
		factory: func(int) physics.Potential { return physics.NewCoupledHarmonic() },
		fixed:   true,
		def:     Defaults{Dims: 2, N: 20, Domain: [2]float64{-7, 7}, KDiag: -0.5},
	}

	return r
}

// GetPotential builds the named potential for dims dimensions. dims <= 0
// selects the registered default.
func (r *Registry) GetPotential(name string, dims int) (physics.Potential, error) {
	e, ok := r.potentials[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPotential, name)
	}
	if dims <= 0 {
		dims = e.def.Dims
	}
	if e.fixed && dims != e.def.Dims {
		return nil, fmt.Errorf("%w: %s is %d-D, got %d", ErrDimsMismatch, name, e.def.Dims, dims)
	}
	return e.factory(dims), nil
}

func (r *Registry) Defaults(name string) (Defaults, error) {
	e, ok := r.potentials[name]
	if !ok {
		return Defaults{}, fmt.Errorf("%w: %s", ErrUnknownPotential, name)
	}
	return e.def, nil
}

func (r *Registry) ListPotentials() []string {
	names := make([]string, 0, len(r.potentials))
	for name := range r.potentials {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Registry) DefaultMetrics() []metrics.Metric {
	return metrics.Default()
}
