package viz

import (
	"fmt"

	"github.com/guptarohit/asciigraph"
)

// DensityPlot draws rho against x as an ASCII chart. The caption notes the
// coordinate range.
func DensityPlot(x, rho []float64, width, height int, title string) string {
	if len(rho) == 0 {
		return ""
	}
	caption := title
	if len(x) > 0 {
		caption = fmt.Sprintf("%s  x ∈ [%.3g, %.3g]", title, x[0], x[len(x)-1])
	}
	return asciigraph.Plot(rho,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.LowerBound(0),
		asciigraph.Caption(caption),
	)
}

// LevelPlot draws the eigenvalues against their index.
func LevelPlot(values []float64, width, height int) string {
	if len(values) == 0 {
		return ""
	}
	return asciigraph.Plot(values,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption("E_n"),
	)
}
