package export

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/spectre/internal/config"
	"github.com/san-kum/spectre/pkg/eigensolver"
)

type Run struct {
	Potential     string             `json:"potential"`
	Params        map[string]float64 `json:"params,omitempty"`
	N             []int              `json:"n"`
	Domain        [][]float64        `json:"domain"`
	KDiag         []float64          `json:"k_diag"`
	KCross        []float64          `json:"k_cross,omitempty"`
	Eigenvalues   []float64          `json:"eigenvalues"`
	Grid          [][]float64        `json:"grid,omitempty"`
	Wavefunctions [][]float64        `json:"wavefunctions,omitempty"`
	Metrics       map[string]float64 `json:"metrics,omitempty"`
}

// NewRun collects a solution for export. Wavefunctions are normalized so
// that Σ|ψ|²·ΔV = 1.
func NewRun(cfg *config.Config, sol *eigensolver.Solution, metrics map[string]float64) *Run {
	r := &Run{
		Potential:   cfg.Potential,
		Params:      cfg.Params,
		N:           cfg.N,
		Domain:      cfg.Domain,
		KDiag:       cfg.KDiag,
		KCross:      cfg.KCross,
		Eigenvalues: sol.Values,
		Grid:        sol.Grid,
		Metrics:     metrics,
	}
	if sol.HasVectors() {
		r.Wavefunctions = make([][]float64, sol.NumStates())
		for i := range r.Wavefunctions {
			r.Wavefunctions[i] = sol.Wavefunction(i)
		}
	}
	return r
}

func JSON(path string, run *Run) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return WriteJSON(file, run)
}

func WriteJSON(w io.Writer, run *Run) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(run)
}
