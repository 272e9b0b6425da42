package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/san-kum/spectre/internal/analysis"
	"github.com/san-kum/spectre/internal/export"
	"github.com/san-kum/spectre/internal/storage"
	"github.com/san-kum/spectre/internal/viz"
	"github.com/spf13/cobra"
)

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir())
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tPOTENTIAL\tTIME\tN\tSTATES\tE0\tVECTORS")

	for _, run := range runs {
		e0 := "-"
		if v, ok := run.Metrics["ground_energy"]; ok {
			e0 = fmt.Sprintf("%.8f", v)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%v\t%d\t%s\t%t\n",
			run.ID,
			run.Potential,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.N,
			run.States,
			e0,
			run.HasVectors,
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir())
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	values, err := st.LoadValues(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("potential: %s %v\n", meta.Potential, meta.Params)
	fmt.Printf("grid: n=%v domain=%v\n", meta.N, meta.Domain)
	fmt.Printf("kinetic: k_diag=%v k_cross=%v\n", meta.KDiag, meta.KCross)
	fmt.Printf("solved in %.2fms\n\n", meta.ElapsedMS)

	fmt.Println(viz.LevelTable(values, -1, theme()))
	printMetrics(meta.Metrics)
	return nil
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir())
	sol, meta, err := st.LoadSolution(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("potential: %s\n\n", meta.Potential)

	if !sol.HasVectors() {
		fmt.Println(viz.LevelPlot(sol.Values, 60, 12))
		return nil
	}

	x, rho, err := analysis.Marginal(sol, stateIdx, axisIdx)
	if err != nil {
		return err
	}
	mean, _ := analysis.Expectation(sol, stateIdx, axisIdx)
	dx, _ := analysis.Uncertainty(sol, stateIdx, axisIdx)

	caption := fmt.Sprintf("|ψ_%d|² along x%d", stateIdx, axisIdx)
	fmt.Println(viz.DensityPlot(x, rho, 80, 12, caption))
	fmt.Printf("\nE=%.8f  <x%d>=%.6f  Δx%d=%.6f\n", sol.Values[stateIdx], axisIdx, mean, axisIdx, dx)
	return nil
}

func renderRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir())
	sol, meta, err := st.LoadSolution(args[0])
	if err != nil {
		return err
	}

	if renderLevels {
		if err := export.PlotLevels(renderOut, sol.Values); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", renderOut)
		return nil
	}

	pot, err := registry.GetPotential(meta.Potential, len(meta.N))
	if err != nil {
		return err
	}
	for k, val := range meta.Params {
		if err := pot.SetParam(k, val); err != nil {
			return err
		}
	}

	var drawn []int
	for _, i := range renderStates {
		if i < sol.NumStates() {
			drawn = append(drawn, i)
		}
	}
	if err := export.PlotStates(renderOut, sol, drawn, pot.Eval); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", renderOut)
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir())
	sol, meta, err := st.LoadSolution(args[0])
	if err != nil {
		return err
	}

	run := export.NewRun(meta.Config(), sol, meta.Metrics)
	if exportOut == "" {
		return export.WriteJSON(os.Stdout, run)
	}
	return export.JSON(exportOut, run)
}
