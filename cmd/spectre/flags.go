package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/san-kum/spectre/internal/config"
	"github.com/san-kum/spectre/internal/experiment"
	"github.com/spf13/cobra"
)

var registry = experiment.NewRegistry()

var (
	// problem
	gridN      []int
	domainSpec string
	kDiag      []float64
	kCross     []float64
	states     int
	valuesOnly bool
	configFile string
	preset     string
	params     []string

	// solve
	saveRun bool
	jsonOut bool

	// stored runs
	stateIdx     int
	axisIdx      int
	renderOut    string
	exportOut    string
	renderStates []int
	renderLevels bool

	// sweeps
	sizes      []int
	workers    int
	scanRanges []string
	scanMetric string
)

func addProblemFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntSliceVar(&gridN, "n", nil, "points per dimension, e.g. 64 or 32,32")
	f.StringVar(&domainSpec, "domain", "", "domain per dimension as min:max, comma separated")
	f.Float64SliceVar(&kDiag, "kdiag", nil, "∂²/∂x_i² coefficients")
	f.Float64SliceVar(&kCross, "kcross", nil, "∂²/∂x_a∂x_b coefficients in pair order (0,1),(0,2),(1,2)")
	f.IntVar(&states, "states", config.DefaultStates, "number of states to keep (0 = all)")
	f.BoolVar(&valuesOnly, "values-only", false, "skip eigenvectors")
	f.StringVar(&configFile, "config", "", "problem file (yaml)")
	f.StringVar(&preset, "preset", "", "named preset for the potential")
	f.StringArrayVar(&params, "param", nil, "potential parameter as name=value (repeatable)")
}

// resolveConfig builds the problem config. Precedence from low to high:
// potential defaults, preset, config file, flags. changed reports whether a
// flag was set on the command line.
func resolveConfig(args []string, changed func(string) bool) (*config.Config, error) {
	cfg := &config.Config{Potential: config.DefaultPotential, States: config.DefaultStates}

	var fileCfg *config.Config
	if configFile != "" {
		var err error
		if fileCfg, err = config.Load(configFile); err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	switch {
	case len(args) > 0:
		cfg.Potential = args[0]
	case fileCfg != nil && fileCfg.Potential != "":
		cfg.Potential = fileCfg.Potential
	}

	if preset != "" {
		p := config.GetPreset(cfg.Potential, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(cfg.Potential))
		}
		cfg.Merge(p)
	}

	if fileCfg != nil {
		fileCfg.Potential = ""
		cfg.Merge(fileCfg)
	}

	if err := applyFlags(cfg, changed); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyFlags(cfg *config.Config, changed func(string) bool) error {
	if changed("n") {
		cfg.N = append([]int(nil), gridN...)
	}
	if changed("domain") {
		d, err := parseDomain(domainSpec)
		if err != nil {
			return err
		}
		cfg.Domain = d
	}
	if changed("kdiag") {
		cfg.KDiag = append([]float64(nil), kDiag...)
	}
	if changed("kcross") {
		cfg.KCross = append([]float64(nil), kCross...)
	}
	if changed("states") {
		cfg.States = states
	}
	if changed("values-only") {
		cfg.ValuesOnly = valuesOnly
	}
	if len(params) > 0 {
		p, err := parseParams(params)
		if err != nil {
			return err
		}
		if cfg.Params == nil {
			cfg.Params = map[string]float64{}
		}
		for k, val := range p {
			cfg.Params[k] = val
		}
	}
	return nil
}

// parseDomain reads "min:max[,min:max...]".
func parseDomain(s string) ([][]float64, error) {
	var out [][]float64
	for _, part := range strings.Split(s, ",") {
		lo, hi, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("invalid domain %q: want min:max", part)
		}
		a, err := strconv.ParseFloat(lo, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid domain %q: %w", part, err)
		}
		b, err := strconv.ParseFloat(hi, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid domain %q: %w", part, err)
		}
		out = append(out, []float64{a, b})
	}
	return out, nil
}

func parseParams(kvs []string) (map[string]float64, error) {
	out := make(map[string]float64, len(kvs))
	for _, kv := range kvs {
		name, val, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid param %q: want name=value", kv)
		}
		f, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid param %q: %w", kv, err)
		}
		out[name] = f
	}
	return out, nil
}

// parseRanges reads "name=v1,v2,..." entries for a grid search.
func parseRanges(specs []string) ([]string, [][]float64, error) {
	names := make([]string, 0, len(specs))
	ranges := make([][]float64, 0, len(specs))
	for _, r := range specs {
		name, list, ok := strings.Cut(r, "=")
		if !ok || name == "" || list == "" {
			return nil, nil, fmt.Errorf("invalid range %q: want name=v1,v2", r)
		}
		var vals []float64
		for _, s := range strings.Split(list, ",") {
			f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
			if err != nil {
				return nil, nil, fmt.Errorf("invalid range %q: %w", r, err)
			}
			vals = append(vals, f)
		}
		names = append(names, name)
		ranges = append(ranges, vals)
	}
	return names, ranges, nil
}
