// Package viz renders spectra and densities for the terminal.
//
// [LevelTable] prints eigenvalues with their spacings and degeneracy groups
// in a lipgloss table. [DensityPlot] draws a probability density as an
// ASCII line chart. Colours come from a [Theme]; [Themes] lists the
// built-in ones.
package viz
