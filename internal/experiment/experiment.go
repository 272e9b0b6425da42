package experiment

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/san-kum/spectre/internal/config"
	"github.com/san-kum/spectre/internal/metrics"
	"github.com/san-kum/spectre/internal/physics"
	"github.com/san-kum/spectre/pkg/eigensolver"
	"github.com/sirupsen/logrus"
)

type Result struct {
	Config   *config.Config
	Solution *eigensolver.Solution
	Metrics  map[string]float64
	Elapsed  time.Duration
}

type Experiment struct {
	cfg       *config.Config
	potential physics.Potential
	metrics   []metrics.Metric
	logger    logrus.FieldLogger
}

// New resolves cfg against the registry: missing grid fields take the
// potential's defaults and params are applied. cfg itself is not modified.
func New(reg *Registry, cfg *config.Config) (*Experiment, error) {
	resolved := cfg.Clone()
	def, err := reg.Defaults(resolved.Potential)
	if err != nil {
		return nil, err
	}

	dims := resolved.Dims()
	if dims == 0 {
		dims = def.Dims
	}
	pot, err := reg.GetPotential(resolved.Potential, dims)
	if err != nil {
		return nil, err
	}
	if err := physics.SetParams(pot, resolved.Params); err != nil {
		return nil, err
	}
	fillDefaults(resolved, def, dims)

	discard := logrus.New()
	discard.SetOutput(io.Discard)

	return &Experiment{
		cfg:       resolved,
		potential: pot,
		metrics:   reg.DefaultMetrics(),
		logger:    discard,
	}, nil
}

func fillDefaults(c *config.Config, def Defaults, dims int) {
	if len(c.N) == 0 {
		c.N = make([]int, dims)
		for i := range c.N {
			c.N[i] = def.N
		}
	}
	if len(c.Domain) == 0 {
		c.Domain = make([][]float64, dims)
		for i := range c.Domain {
			c.Domain[i] = []float64{def.Domain[0], def.Domain[1]}
		}
	}
	if len(c.KDiag) == 0 {
		c.KDiag = make([]float64, dims)
		for i := range c.KDiag {
			c.KDiag[i] = def.KDiag
		}
	}
}

func (e *Experiment) SetLogger(l logrus.FieldLogger) {
	if l != nil {
		e.logger = l
	}
}

// SetMetrics replaces the metrics evaluated after Run.
func (e *Experiment) SetMetrics(ms []metrics.Metric) { e.metrics = ms }

// Config returns the resolved configuration.
func (e *Experiment) Config() *config.Config { return e.cfg }

func (e *Experiment) Potential() physics.Potential { return e.potential }

// Problem returns the eigenproblem described by the resolved configuration.
func (e *Experiment) Problem() eigensolver.Problem {
	return eigensolver.Problem{
		Potential: e.potential.Eval,
		N:         e.cfg.N,
		Domain:    e.cfg.Domain,
		KDiag:     e.cfg.KDiag,
		KCross:    e.cfg.KCross,
	}
}

func (e *Experiment) Run(ctx context.Context) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	opts := []eigensolver.Option{
		eigensolver.WithStates(e.cfg.States),
		eigensolver.WithLogger(e.logger),
	}
	if e.cfg.ValuesOnly {
		opts = append(opts, eigensolver.ValuesOnly())
	}

	start := time.Now()
	sol, err := eigensolver.Solve(e.Problem(), opts...)
	if err != nil {
		return nil, fmt.Errorf("solve %s: %w", e.cfg.Potential, err)
	}
	elapsed := time.Since(start)

	res := &Result{
		Config:   e.cfg,
		Solution: sol,
		Metrics:  metrics.Evaluate(e.metrics, sol, sol.Hamiltonian()),
		Elapsed:  elapsed,
	}
	e.logger.WithFields(logrus.Fields{
		"potential": e.cfg.Potential,
		"states":    sol.NumStates(),
		"elapsed":   elapsed,
	}).Info("run complete")

	return res, nil
}
