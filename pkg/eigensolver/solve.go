package eigensolver

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Solve validates p, assembles its Hamiltonian and diagonalizes it.
// Eigenvalues come back in ascending order with eigenvector columns in the
// same order. With ValuesOnly the solution has no vectors or grid.
func Solve(p Problem, opts ...Option) (*Solution, error) {
	o := newOptions(opts)
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if o.sparse {
		return nil, ErrSparseUnsupported
	}

	log := o.logger.WithFields(logrus.Fields{"dims": p.Dims(), "size": p.Size()})

	start := time.Now()
	h, mesh, err := assemble(p)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{"stage": "assemble", "elapsed": time.Since(start)}).Debug("hamiltonian ready")

	start = time.Now()
	var es mat.EigenSym
	if ok := es.Factorize(h, !o.valuesOnly); !ok {
		return nil, fmt.Errorf("n=%d: %w", p.Size(), ErrEigenFailed)
	}
	log.WithFields(logrus.Fields{"stage": "factorize", "elapsed": time.Since(start)}).Debug("eigen decomposition done")

	values := es.Values(nil)
	order := make([]int, len(values))
	floats.Argsort(values, order)

	keep := len(values)
	if o.states > 0 && o.states < keep {
		keep = o.states
	}

	sol := &Solution{Values: values[:keep:keep]}
	if o.valuesOnly {
		return sol, nil
	}

	var raw mat.Dense
	es.VectorsTo(&raw)

	n := p.Size()
	vecs := mat.NewDense(n, keep, nil)
	col := make([]float64, n)
	for j := 0; j < keep; j++ {
		mat.Col(col, order[j], &raw)
		vecs.SetCol(j, col)
	}

	sol.Vectors = vecs
	sol.Grid = mesh.Coords
	sol.mesh = mesh
	sol.h = h
	return sol, nil
}

// Eigenvalues returns the ascending eigenvalues of p.
func Eigenvalues(p Problem, opts ...Option) ([]float64, error) {
	sol, err := Solve(p, append(opts, ValuesOnly())...)
	if err != nil {
		return nil, err
	}
	return sol.Values, nil
}
