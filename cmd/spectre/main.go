package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/san-kum/spectre/internal/config"
	"github.com/san-kum/spectre/internal/viz"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	v   = viper.New()
	log = logrus.New()
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "spectre",
		Short:        "spectral schrödinger eigensolver",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().String("data", ".spectre", "data directory")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "debug logging")
	rootCmd.PersistentFlags().String("theme", "cyberpunk", "colour theme: "+strings.Join(viz.ThemeNames(), ", "))
	v.SetEnvPrefix("SPECTRE")
	v.AutomaticEnv()
	_ = v.BindPFlag("data", rootCmd.PersistentFlags().Lookup("data"))
	_ = v.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = v.BindPFlag("theme", rootCmd.PersistentFlags().Lookup("theme"))

	solveCmd := &cobra.Command{
		Use:   "solve [potential]",
		Short: "solve an eigenproblem",
		Args:  cobra.MaximumNArgs(1),
		RunE:  solve,
	}
	addProblemFlags(solveCmd)
	solveCmd.Flags().BoolVar(&saveRun, "save", false, "store the run in the data directory")
	solveCmd.Flags().BoolVar(&jsonOut, "json", false, "print the run as JSON")

	potentialsCmd := &cobra.Command{
		Use:   "potentials",
		Short: "list available potentials",
		RunE:  listPotentials,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [potential]",
		Short: "list available presets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			names := registry.ListPotentials()
			if len(args) == 1 {
				names = args
			}
			for _, name := range names {
				presets := config.ListPresets(name)
				if len(presets) == 0 {
					if len(args) == 1 {
						fmt.Printf("no presets for potential: %s\n", name)
					}
					continue
				}
				fmt.Printf("%s: %s\n", name, strings.Join(presets, ", "))
			}
			return nil
		},
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a state density in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&stateIdx, "state", 0, "state index")
	plotCmd.Flags().IntVar(&axisIdx, "axis", 0, "dimension to plot along")

	renderCmd := &cobra.Command{
		Use:   "render [run_id]",
		Short: "render states or levels to an image",
		Args:  cobra.ExactArgs(1),
		RunE:  renderRun,
	}
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "states.png", "output file (png, svg, pdf)")
	renderCmd.Flags().IntSliceVar(&renderStates, "states", []int{0, 1, 2, 3}, "states to draw")
	renderCmd.Flags().BoolVar(&renderLevels, "levels", false, "draw the level diagram instead")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export a stored run to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output file (default stdout)")

	convergeCmd := &cobra.Command{
		Use:   "converge [potential]",
		Short: "study eigenvalue convergence with grid size",
		Args:  cobra.MaximumNArgs(1),
		RunE:  converge,
	}
	addProblemFlags(convergeCmd)
	convergeCmd.Flags().IntSliceVar(&sizes, "sizes", []int{16, 24, 32, 48, 64}, "points per dimension")
	convergeCmd.Flags().IntVar(&workers, "workers", 0, "concurrent solves (0 = unlimited)")

	scanCmd := &cobra.Command{
		Use:   "scan [potential]",
		Short: "grid search over potential parameters",
		Args:  cobra.ExactArgs(1),
		RunE:  scan,
	}
	addProblemFlags(scanCmd)
	scanCmd.Flags().StringArrayVar(&scanRanges, "range", nil, "parameter values as name=v1,v2,...")
	scanCmd.Flags().StringVar(&scanMetric, "metric", "gap", "metric to minimize")
	scanCmd.Flags().IntVar(&workers, "workers", 0, "concurrent solves (0 = unlimited)")

	browseCmd := &cobra.Command{
		Use:   "browse [run_id|potential]",
		Short: "browse states interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE:  browse,
	}
	addProblemFlags(browseCmd)

	rootCmd.AddCommand(solveCmd, potentialsCmd, presetsCmd, listCmd, showCmd, plotCmd,
		renderCmd, exportJSONCmd, convergeCmd, scanCmd, browseCmd)
	return rootCmd
}

func setupLogging() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if v.GetBool("verbose") {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
}

func dataDir() string {
	return v.GetString("data")
}

func theme() viz.Theme {
	return viz.GetTheme(v.GetString("theme"))
}
