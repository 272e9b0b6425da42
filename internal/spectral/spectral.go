package spectral

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrGridSize indicates fewer than two sample points.
	ErrGridSize = errors.New("spectral: grid needs at least 2 points")

	// ErrSpacing indicates a non-positive or non-finite sample spacing.
	ErrSpacing = errors.New("spectral: spacing must be positive and finite")

	// ErrSlot indicates an operator placed outside the tensor dimensions or
	// with a size that does not match its slot.
	ErrSlot = errors.New("spectral: operator does not fit tensor slot")
)

// Spacing returns the canonical sample spacing 2π/n.
func Spacing(n int) float64 {
	return 2 * math.Pi / float64(n)
}

func checkGrid(n int, h float64) error {
	if n < 2 {
		return fmt.Errorf("n=%d: %w", n, ErrGridSize)
	}
	if h <= 0 || math.IsNaN(h) || math.IsInf(h, 0) {
		return fmt.Errorf("h=%g: %w", h, ErrSpacing)
	}
	return nil
}

// FirstDerivative returns the n×n first-order Fourier differentiation matrix
// for spacing h. The first column is [0, ½(−1)^i cot(ih/2)] and the first row
// is that column reversed behind the leading zero. The matrix is skew for
// even n only; for odd n the cot column is symmetric about n/2.
func FirstDerivative(n int, h float64) (*mat.Dense, error) {
	if err := checkGrid(n, h); err != nil {
		return nil, err
	}

	col := make([]float64, n)
	for i := 1; i < n; i++ {
		col[i] = 0.5 * sign(i) / math.Tan(float64(i)*h/2)
	}

	row := make([]float64, n)
	for j := 1; j < n; j++ {
		row[j] = col[n-j]
	}

	return Toeplitz(col, row), nil
}

// SecondDerivative returns the n×n second-order Fourier differentiation
// matrix for spacing h. It is symmetric, so a single column defines it.
func SecondDerivative(n int, h float64) (*mat.Dense, error) {
	if err := checkGrid(n, h); err != nil {
		return nil, err
	}

	col := make([]float64, n)
	col[0] = -math.Pi*math.Pi/(3*h*h) - 1.0/6.0
	for i := 1; i < n; i++ {
		s := math.Sin(h * float64(i) / 2)
		col[i] = -0.5 * sign(i) / (s * s)
	}

	return Toeplitz(col, nil), nil
}

// Toeplitz builds the matrix with first column col and first row row.
// A nil row gives the symmetric Toeplitz matrix of col. row[0] is ignored;
// the diagonal always comes from col[0].
func Toeplitz(col, row []float64) *mat.Dense {
	if row == nil {
		row = col
	}
	r, c := len(col), len(row)
	data := make([]float64, r*c)
	for i := 0; i < r; i++ {
		base := i * c
		for j := 0; j < c; j++ {
			if i >= j {
				data[base+j] = col[i-j]
			} else {
				data[base+j] = row[j-i]
			}
		}
	}
	return mat.NewDense(r, c, data)
}

// Identity returns the n×n identity matrix.
func Identity(n int) *mat.Dense {
	id := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		id.Set(i, i, 1)
	}
	return id
}

// Kron returns a0 ⊗ a1 ⊗ … ⊗ ak, folding from the left.
func Kron(ops ...mat.Matrix) *mat.Dense {
	if len(ops) == 0 {
		return nil
	}
	acc := mat.DenseCopyOf(ops[0])
	for _, op := range ops[1:] {
		var next mat.Dense
		next.Kronecker(acc, op)
		acc = &next
	}
	return acc
}

// Embed returns the Kronecker product over len(sizes) dimensions where
// dimension d holds slots[d] if present and the sizes[d] identity otherwise.
func Embed(sizes []int, slots map[int]mat.Matrix) (*mat.Dense, error) {
	for d, op := range slots {
		if d < 0 || d >= len(sizes) {
			return nil, fmt.Errorf("slot %d of %d: %w", d, len(sizes), ErrSlot)
		}
		r, c := op.Dims()
		if r != sizes[d] || c != sizes[d] {
			return nil, fmt.Errorf("slot %d is %dx%d, want %d: %w", d, r, c, sizes[d], ErrSlot)
		}
	}

	ops := make([]mat.Matrix, len(sizes))
	for d, n := range sizes {
		if op, ok := slots[d]; ok {
			ops[d] = op
		} else {
			ops[d] = Identity(n)
		}
	}
	return Kron(ops...), nil
}

func sign(i int) float64 {
	if i%2 == 0 {
		return 1
	}
	return -1
}
