package export

import (
	"errors"
	"fmt"

	"github.com/san-kum/spectre/pkg/eigensolver"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

var (
	ErrNotOneDimensional = errors.New("export: state plots need a 1-D solution")
	ErrNoVectors         = errors.New("export: solution has no eigenvectors")
)

const (
	plotWidth  = 16 * vg.Centimeter
	plotHeight = 10 * vg.Centimeter
)

// PlotStates draws the densities of the given states, each lifted to its
// energy. pot, when non-nil, is drawn underneath. The format follows the
// file extension.
func PlotStates(path string, sol *eigensolver.Solution, states []int, pot eigensolver.Potential) error {
	if !sol.HasVectors() {
		return ErrNoVectors
	}
	x := sol.Axis()
	if x == nil {
		return ErrNotOneDimensional
	}

	p := plot.New()
	p.Title.Text = "Eigenstates"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "E, |ψ|²"

	top := 0.0
	for _, i := range states {
		if i < 0 || i >= sol.NumStates() {
			return fmt.Errorf("export: state %d out of range", i)
		}
		rho := sol.Density(i)
		if m := floats.Max(rho); m > top {
			top = m
		}
	}
	spacing := 1.0
	if len(sol.Values) > 1 {
		spacing = sol.Values[len(sol.Values)-1] - sol.Values[0]
		spacing /= float64(len(sol.Values))
	}
	scale := 0.8 * spacing / top

	if pot != nil {
		xy := make(plotter.XYs, 0, len(x))
		ceil := sol.Values[len(sol.Values)-1] + spacing
		pt := make([]float64, 1)
		for _, xi := range x {
			pt[0] = xi
			if v := pot(pt); v <= ceil {
				xy = append(xy, plotter.XY{X: xi, Y: v})
			}
		}
		if len(xy) > 1 {
			line, err := plotter.NewLine(xy)
			if err != nil {
				return err
			}
			line.Color = plotutil.Color(0)
			line.Dashes = plotutil.Dashes(1)
			p.Add(line)
			p.Legend.Add("V(x)", line)
		}
	}

	for c, i := range states {
		rho := sol.Density(i)
		xy := make(plotter.XYs, len(x))
		for k := range x {
			xy[k] = plotter.XY{X: x[k], Y: sol.Values[i] + scale*rho[k]}
		}
		line, err := plotter.NewLine(xy)
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(c + 1)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("n=%d E=%.4f", i, sol.Values[i]), line)
	}

	p.Add(plotter.NewGrid())
	return p.Save(plotWidth, plotHeight, path)
}

// PlotLevels draws each eigenvalue as a horizontal bar.
func PlotLevels(path string, values []float64) error {
	if len(values) == 0 {
		return errors.New("export: no levels to plot")
	}

	p := plot.New()
	p.Title.Text = "Energy levels"
	p.Y.Label.Text = "E"
	p.X.Min, p.X.Max = 0, 1
	p.HideX()

	for i, e := range values {
		line, err := plotter.NewLine(plotter.XYs{{X: 0.1, Y: e}, {X: 0.9, Y: e}})
		if err != nil {
			return err
		}
		line.Color = plotutil.Color(i)
		line.Width = vg.Points(1.5)
		p.Add(line)
	}

	return p.Save(plotWidth/2, plotHeight, path)
}
