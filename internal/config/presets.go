package config

import "sort"

var Presets = map[string]map[string]*Config{
	"harmonic": {
		"ground": {
			Potential: "harmonic", N: []int{48}, Domain: [][]float64{{-10, 10}},
			KDiag: []float64{-0.5}, States: 6,
		},
		"stiff": {
			Potential: "harmonic", Params: map[string]float64{"omega": 4},
			N: []int{64}, Domain: [][]float64{{-5, 5}}, KDiag: []float64{-0.5}, States: 8,
		},
		"cross_kinetic": {
			Potential: "harmonic", N: []int{16, 16}, Domain: [][]float64{{-7, 7}, {-7, 7}},
			KDiag: []float64{-0.5, -0.5}, KCross: []float64{0.5}, States: 6,
		},
		"plane": {
			Potential: "harmonic", N: []int{24, 24}, Domain: [][]float64{{-8, 8}, {-8, 8}},
			KDiag: []float64{-0.5, -0.5}, States: 10,
		},
	},
	"free": {
		"ring": {
			Potential: "free", N: []int{32}, Domain: [][]float64{{0, 6.283185307179586}},
			KDiag: []float64{-1}, States: 9,
		},
	},
	"double_well": {
		"tunnel": {
			Potential: "double_well", Params: map[string]float64{"A": 1, "B": 4},
			N: []int{96}, Domain: [][]float64{{-6, 6}}, KDiag: []float64{-0.5}, States: 6,
		},
		"shallow": {
			Potential: "double_well", Params: map[string]float64{"A": 0.2, "B": 1},
			N: []int{64}, Domain: [][]float64{{-6, 6}}, KDiag: []float64{-0.5}, States: 6,
		},
	},
	"morse": {
		"diatomic": {
			Potential: "morse", Params: map[string]float64{"D": 10, "a": 1, "x0": 0},
			N: []int{96}, Domain: [][]float64{{-3, 12}}, KDiag: []float64{-0.5}, States: 8,
		},
	},
	"finite_well": {
		"box": {
			Potential: "finite_well", Params: map[string]float64{"depth": 20, "width": 2},
			N: []int{96}, Domain: [][]float64{{-6, 6}}, KDiag: []float64{-0.5}, States: 6,
		},
	},
	"coupled_harmonic": {
		"normal_modes": {
			Potential: "coupled_harmonic", Params: map[string]float64{"lambda": 0.5},
			N: []int{20, 20}, Domain: [][]float64{{-7, 7}, {-7, 7}},
			KDiag: []float64{-0.5, -0.5}, States: 8,
		},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(potential, preset string) *Config {
	potentialPresets, ok := Presets[potential]
	if !ok {
		return nil
	}
	cfg, ok := potentialPresets[preset]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets(potential string) []string {
	potentialPresets, ok := Presets[potential]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(potentialPresets))
	for name := range potentialPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
