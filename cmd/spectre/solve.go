package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/san-kum/spectre/internal/config"
	"github.com/san-kum/spectre/internal/experiment"
	"github.com/san-kum/spectre/internal/export"
	"github.com/san-kum/spectre/internal/storage"
	"github.com/san-kum/spectre/internal/sweep"
	"github.com/san-kum/spectre/internal/tui"
	"github.com/san-kum/spectre/internal/viz"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func buildExperiment(cmd *cobra.Command, args []string) (*experiment.Experiment, error) {
	cfg, err := resolveConfig(args, cmd.Flags().Changed)
	if err != nil {
		return nil, err
	}
	exp, err := experiment.New(registry, cfg)
	if err != nil {
		return nil, err
	}
	exp.SetLogger(log)

	resolved := exp.Config()
	log.WithFields(logrus.Fields{
		"potential": resolved.Potential,
		"n":         resolved.N,
		"domain":    resolved.Domain,
		"params":    exp.Potential().GetParams(),
	}).Debug("problem resolved")
	return exp, nil
}

func solve(cmd *cobra.Command, args []string) error {
	exp, err := buildExperiment(cmd, args)
	if err != nil {
		return err
	}

	res, err := exp.Run(cmd.Context())
	if err != nil {
		return err
	}

	if jsonOut {
		return export.WriteJSON(os.Stdout, export.NewRun(res.Config, res.Solution, res.Metrics))
	}

	fmt.Printf("%s  n=%v  %d states in %v\n\n", res.Config.Potential, res.Config.N, res.Solution.NumStates(), res.Elapsed)
	fmt.Println(viz.LevelTable(res.Solution.Values, -1, theme()))
	printMetrics(res.Metrics)

	if saveRun {
		st := storage.New(dataDir())
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(res)
		if err != nil {
			return err
		}
		fmt.Printf("\nrun id: %s\n", runID)
	}
	return nil
}

func printMetrics(metrics map[string]float64) {
	if len(metrics) == 0 {
		return
	}
	names := make([]string, 0, len(metrics))
	for name := range metrics {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Println("\nmetrics:")
	for _, name := range names {
		fmt.Printf("  %s: %.6g\n", name, metrics[name])
	}
}

func listPotentials(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDIMS\tN\tDOMAIN\tPARAMS")

	for _, name := range registry.ListPotentials() {
		def, err := registry.Defaults(name)
		if err != nil {
			return err
		}
		pot, err := registry.GetPotential(name, 0)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t[%g, %g]\t%v\n",
			name, def.Dims, def.N, def.Domain[0], def.Domain[1], pot.GetParams())
	}
	return w.Flush()
}

func converge(cmd *cobra.Command, args []string) error {
	exp, err := buildExperiment(cmd, args)
	if err != nil {
		return err
	}
	k := exp.Config().States
	if k <= 0 {
		k = config.DefaultStates
	}

	points, err := sweep.Convergence(cmd.Context(), exp.Problem(), sizes, k, workers)
	if err != nil {
		return err
	}
	drift := sweep.Drift(points)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "N\tE0\tE_last\tDRIFT\tTIME")
	for i, p := range points {
		d := "-"
		if i > 0 {
			d = fmt.Sprintf("%.3e", drift[i-1])
		}
		fmt.Fprintf(w, "%d\t%.10f\t%.10f\t%s\t%v\n", p.N, p.Values[0], p.Values[len(p.Values)-1], d, p.Elapsed)
	}
	return w.Flush()
}

func scan(cmd *cobra.Command, args []string) error {
	names, ranges, err := parseRanges(scanRanges)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return fmt.Errorf("no --range given")
	}

	base, err := resolveConfig(args, cmd.Flags().Changed)
	if err != nil {
		return err
	}

	build := func(p map[string]float64) (*experiment.Experiment, error) {
		cfg := base.Clone()
		cfg.ValuesOnly = true
		cfg.Merge(&config.Config{Params: p})
		return experiment.New(registry, cfg)
	}

	gs := sweep.NewGridSearch(names, ranges, workers)
	trials, best, err := gs.Search(cmd.Context(), build, scanMetric)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "PARAMS\t%s\n", scanMetric)
	for i, t := range trials {
		mark := ""
		if i == best {
			mark = "  *"
		}
		fmt.Fprintf(w, "%v\t%.8g%s\n", t.Params, t.Value, mark)
	}
	return w.Flush()
}

func browse(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		st := storage.New(dataDir())
		if sol, meta, err := st.LoadSolution(args[0]); err == nil {
			return tui.RunBrowser(sol, meta.ID, theme())
		}
	}

	exp, err := buildExperiment(cmd, args)
	if err != nil {
		return err
	}
	res, err := exp.Run(cmd.Context())
	if err != nil {
		return err
	}
	return tui.RunBrowser(res.Solution, fmt.Sprintf("%s n=%v", res.Config.Potential, res.Config.N), theme())
}
