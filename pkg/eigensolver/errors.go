package eigensolver

import (
	"errors"
	"fmt"
)

// Configuration and numerical errors returned by Solve.
var (
	// ErrDimension indicates zero dimensions or more than MaxDimensions.
	ErrDimension = errors.New("eigensolver: unsupported number of dimensions")

	// ErrDomainCount indicates a domain list that does not match the number of dimensions.
	ErrDomainCount = errors.New("eigensolver: number of domains does not match dimensionality")

	// ErrDomainEndpoints indicates a domain entry without exactly a min and max endpoint.
	ErrDomainEndpoints = errors.New("eigensolver: domain must have exactly a min and max endpoint")

	// ErrDomainOrder indicates min >= max or non-finite endpoints.
	ErrDomainOrder = errors.New("eigensolver: domain min must be below max")

	// ErrGridSize indicates a dimension sampled with fewer than 2 points.
	ErrGridSize = errors.New("eigensolver: each dimension needs at least 2 points")

	// ErrCoefficients indicates kinetic coefficient slices of the wrong length.
	ErrCoefficients = errors.New("eigensolver: wrong number of kinetic coefficients")

	// ErrCrossParity indicates a nonzero cross coefficient on a pair with an
	// odd grid size, where the Fourier first derivative is not skew.
	ErrCrossParity = errors.New("eigensolver: cross coefficients need even grid sizes on both axes")

	// ErrNilPotential indicates a problem without a potential function.
	ErrNilPotential = errors.New("eigensolver: potential is nil")

	// ErrSparseUnsupported indicates a request for the sparse path.
	ErrSparseUnsupported = errors.New("eigensolver: sparse solver not implemented")

	// ErrEigenFailed indicates the dense eigensolver did not converge.
	ErrEigenFailed = errors.New("eigensolver: eigen decomposition failed")
)

// ConfigError wraps a configuration sentinel with the offending field.
type ConfigError struct {
	Field   string
	Index   int
	Detail  string
	Wrapped error
}

func (e *ConfigError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("%s[%d]: %s: %v", e.Field, e.Index, e.Detail, e.Wrapped)
	}
	return fmt.Sprintf("%s: %s: %v", e.Field, e.Detail, e.Wrapped)
}

func (e *ConfigError) Unwrap() error {
	return e.Wrapped
}

func configErr(field string, index int, err error, format string, args ...any) error {
	return &ConfigError{Field: field, Index: index, Detail: fmt.Sprintf(format, args...), Wrapped: err}
}
