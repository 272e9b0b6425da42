package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/san-kum/spectre/internal/config"
	"github.com/san-kum/spectre/internal/experiment"
	"github.com/san-kum/spectre/pkg/eigensolver"
	"gonum.org/v1/gonum/mat"
)

const (
	metadataFile = "metadata.json"
	valuesFile   = "eigenvalues.csv"
	vectorsFile  = "eigenvectors.csv"
	gridFile     = "grid.csv"
)

var ErrNoVectors = errors.New("storage: run has no eigenvectors")

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

func (s *Store) Dir() string { return s.baseDir }

type RunMetadata struct {
	ID         string             `json:"id"`
	Potential  string             `json:"potential"`
	Timestamp  time.Time          `json:"timestamp"`
	Params     map[string]float64 `json:"params"`
	N          []int              `json:"n"`
	Domain     [][]float64        `json:"domain"`
	KDiag      []float64          `json:"k_diag"`
	KCross     []float64          `json:"k_cross"`
	States     int                `json:"states"`
	HasVectors bool               `json:"has_vectors"`
	ElapsedMS  float64            `json:"elapsed_ms"`
	Metrics    map[string]float64 `json:"metrics"`
}

// Config returns the problem description the run was made from.
func (m *RunMetadata) Config() *config.Config {
	return &config.Config{
		Potential:  m.Potential,
		Params:     m.Params,
		N:          m.N,
		Domain:     m.Domain,
		KDiag:      m.KDiag,
		KCross:     m.KCross,
		States:     m.States,
		ValuesOnly: !m.HasVectors,
	}
}

func newRunID(potential string) string {
	return fmt.Sprintf("%s_%d_%s", potential, time.Now().Unix(), uuid.NewString()[:8])
}

// Save writes res to a new run directory and returns its ID. Metadata is
// written last so a run only becomes listable once its data is complete; on
// any error the directory is removed.
func (s *Store) Save(res *experiment.Result) (string, error) {
	cfg, sol := res.Config, res.Solution
	runID := newRunID(cfg.Potential)
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Potential:  cfg.Potential,
		Timestamp:  time.Now(),
		Params:     cfg.Params,
		N:          cfg.N,
		Domain:     cfg.Domain,
		KDiag:      cfg.KDiag,
		KCross:     cfg.KCross,
		States:     sol.NumStates(),
		HasVectors: sol.HasVectors(),
		ElapsedMS:  float64(res.Elapsed.Microseconds()) / 1000,
		Metrics:    finiteMetrics(res.Metrics),
	}

	if err := writeRun(runDir, meta, sol); err != nil {
		if rmErr := os.RemoveAll(runDir); rmErr != nil {
			return "", errors.Join(err, rmErr)
		}
		return "", fmt.Errorf("save %s: %w", runID, err)
	}
	return runID, nil
}

func writeRun(runDir string, meta RunMetadata, sol *eigensolver.Solution) error {
	if err := writeValues(filepath.Join(runDir, valuesFile), sol.Values); err != nil {
		return err
	}
	if sol.HasVectors() {
		if err := writeVectors(filepath.Join(runDir, vectorsFile), sol.Vectors); err != nil {
			return err
		}
		if err := writeGrid(filepath.Join(runDir, gridFile), sol.Grid); err != nil {
			return err
		}
	}
	return writeJSON(filepath.Join(runDir, metadataFile), meta)
}

// List returns stored runs, newest first. Directories without readable
// metadata are skipped.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.SliceStable(runs, func(i, j int) bool {
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *Store) LoadValues(runID string) ([]float64, error) {
	records, err := readCSV(filepath.Join(s.baseDir, runID, valuesFile))
	if err != nil {
		return nil, err
	}

	values := make([]float64, 0, len(records))
	for _, rec := range records {
		if len(rec) < 2 {
			continue
		}
		v, err := strconv.ParseFloat(rec[1], 64)
		if err != nil {
			return nil, fmt.Errorf("storage: %s: %w", valuesFile, err)
		}
		values = append(values, v)
	}
	return values, nil
}

// LoadVectors returns the eigenvectors as columns, one row per mesh point.
func (s *Store) LoadVectors(runID string) (*mat.Dense, error) {
	path := filepath.Join(s.baseDir, runID, vectorsFile)
	records, err := readCSV(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoVectors
		}
		return nil, err
	}
	if len(records) == 0 || len(records[0]) < 2 {
		return nil, ErrNoVectors
	}

	rows, cols := len(records), len(records[0])-1
	data := make([]float64, 0, rows*cols)
	for _, rec := range records {
		if len(rec) != cols+1 {
			return nil, fmt.Errorf("storage: %s: ragged row", vectorsFile)
		}
		for _, field := range rec[1:] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("storage: %s: %w", vectorsFile, err)
			}
			data = append(data, v)
		}
	}
	return mat.NewDense(rows, cols, data), nil
}

// LoadGrid returns the coordinates of each dimension.
func (s *Store) LoadGrid(runID string) ([][]float64, error) {
	records, err := readCSV(filepath.Join(s.baseDir, runID, gridFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoVectors
		}
		return nil, err
	}

	var coords [][]float64
	for _, rec := range records {
		if len(rec) < 3 {
			continue
		}
		dim, err := strconv.Atoi(rec[0])
		if err != nil {
			return nil, fmt.Errorf("storage: %s: %w", gridFile, err)
		}
		v, err := strconv.ParseFloat(rec[2], 64)
		if err != nil {
			return nil, fmt.Errorf("storage: %s: %w", gridFile, err)
		}
		for len(coords) <= dim {
			coords = append(coords, nil)
		}
		coords[dim] = append(coords[dim], v)
	}
	return coords, nil
}

// LoadSolution rebuilds the stored solution.
func (s *Store) LoadSolution(runID string) (*eigensolver.Solution, *RunMetadata, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	values, err := s.LoadValues(runID)
	if err != nil {
		return nil, nil, err
	}

	var vecs *mat.Dense
	if meta.HasVectors {
		if vecs, err = s.LoadVectors(runID); err != nil {
			return nil, nil, err
		}
	}
	sol, err := eigensolver.Restore(values, vecs, meta.N, meta.Domain)
	if err != nil {
		return nil, nil, err
	}
	return sol, meta, nil
}

// finiteMetrics drops values JSON cannot encode.
func finiteMetrics(in map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(in))
	for k, v := range in {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			out[k] = v
		}
	}
	return out
}

func writeJSON(path string, v any) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func writeCSV(path string, header []string, rows func(w *csv.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	if err := rows(w); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

func writeValues(path string, values []float64) error {
	return writeCSV(path, []string{"state", "energy"}, func(w *csv.Writer) error {
		for i, v := range values {
			if err := w.Write([]string{strconv.Itoa(i), formatFloat(v)}); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeVectors(path string, vecs *mat.Dense) error {
	rows, cols := vecs.Dims()
	header := []string{"point"}
	for j := 0; j < cols; j++ {
		header = append(header, fmt.Sprintf("psi%d", j))
	}

	return writeCSV(path, header, func(w *csv.Writer) error {
		row := make([]string, cols+1)
		for i := 0; i < rows; i++ {
			row[0] = strconv.Itoa(i)
			for j := 0; j < cols; j++ {
				row[j+1] = formatFloat(vecs.At(i, j))
			}
			if err := w.Write(row); err != nil {
				return err
			}
		}
		return nil
	})
}

func writeGrid(path string, coords [][]float64) error {
	return writeCSV(path, []string{"dim", "index", "x"}, func(w *csv.Writer) error {
		for d, axis := range coords {
			for i, x := range axis {
				if err := w.Write([]string{strconv.Itoa(d), strconv.Itoa(i), formatFloat(x)}); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// readCSV returns the records after the header row.
func readCSV(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return [][]string{}, nil
	}
	return records[1:], nil
}
