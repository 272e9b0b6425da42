// Package grid maps the canonical periodic sample grid onto physical domains
// and prepares the kinetic coefficients that go with it.
//
// Mesh points are flattened row-major: dimension 0 varies slowest and the
// last dimension fastest, p = ((i0·N1)+i1)·N2+i2. This is the same order in
// which spectral.Embed forms Kronecker products.
package grid

import (
	"math"

	"github.com/san-kum/spectre/internal/spectral"
)

// Axis is one sampled spatial dimension.
type Axis struct {
	N   int
	Min float64
	Max float64
}

// Length returns the physical period Max − Min.
func (a Axis) Length() float64 { return a.Max - a.Min }

// Spacing returns the canonical spacing 2π/N.
func (a Axis) Spacing() float64 { return spectral.Spacing(a.N) }

// Step returns the physical distance between neighbouring points.
func (a Axis) Step() float64 { return a.Length() / float64(a.N) }

// Points returns the N canonical points i·h (i = 1..N) mapped linearly from
// [0, 2π] onto [Min, Max]. Max is included and Min is not.
func (a Axis) Points() []float64 {
	h := a.Spacing()
	l := a.Length()
	pts := make([]float64, a.N)
	for i := range pts {
		pts[i] = float64(i+1)*h/(2*math.Pi)*l + a.Min
	}
	return pts
}

// Mesh is the Cartesian product of its axes.
type Mesh struct {
	Axes   []Axis
	Coords [][]float64
	sizes  []int
	size   int
}

// NewMesh samples every axis and precomputes the flattened size.
func NewMesh(axes []Axis) *Mesh {
	m := &Mesh{
		Axes:   axes,
		Coords: make([][]float64, len(axes)),
		sizes:  make([]int, len(axes)),
		size:   1,
	}
	for d, a := range axes {
		m.Coords[d] = a.Points()
		m.sizes[d] = a.N
		m.size *= a.N
	}
	return m
}

// Dims returns the number of spatial dimensions.
func (m *Mesh) Dims() int { return len(m.Axes) }

// Size returns the number of mesh points, ∏N_i.
func (m *Mesh) Size() int { return m.size }

// Sizes returns the per-dimension point counts.
func (m *Mesh) Sizes() []int {
	out := make([]int, len(m.sizes))
	copy(out, m.sizes)
	return out
}

// CellVolume returns the product of physical steps, the volume element ΔV.
func (m *Mesh) CellVolume() float64 {
	v := 1.0
	for _, a := range m.Axes {
		v *= a.Step()
	}
	return v
}

// Index returns the per-dimension indices of flat point p.
func (m *Mesh) Index(p int, dst []int) []int {
	if dst == nil {
		dst = make([]int, len(m.sizes))
	}
	for d := len(m.sizes) - 1; d >= 0; d-- {
		dst[d] = p % m.sizes[d]
		p /= m.sizes[d]
	}
	return dst
}

// Point writes the coordinates of flat point p into dst.
func (m *Mesh) Point(p int, dst []float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(m.sizes))
	}
	for d := len(m.sizes) - 1; d >= 0; d-- {
		dst[d] = m.Coords[d][p%m.sizes[d]]
		p /= m.sizes[d]
	}
	return dst
}

// Sample evaluates f at every mesh point in flattened order. The slice passed
// to f is reused between calls.
func (m *Mesh) Sample(f func(x []float64) float64) []float64 {
	out := make([]float64, m.size)
	x := make([]float64, len(m.sizes))
	for p := range out {
		out[p] = f(m.Point(p, x))
	}
	return out
}
