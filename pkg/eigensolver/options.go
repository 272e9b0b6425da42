package eigensolver

import (
	"io"

	"github.com/sirupsen/logrus"
)

type options struct {
	valuesOnly bool
	sparse     bool
	states     int
	logger     logrus.FieldLogger
}

// Option configures a Solve call.
type Option func(*options)

// ValuesOnly skips eigenvectors; the solution carries eigenvalues only.
func ValuesOnly() Option {
	return func(o *options) { o.valuesOnly = true }
}

// WithSparse requests the sparse eigenproblem path. No sparse path exists,
// so Solve rejects it with ErrSparseUnsupported.
func WithSparse(sparse bool) Option {
	return func(o *options) { o.sparse = sparse }
}

// WithStates keeps only the k lowest eigenpairs. k <= 0 keeps all.
func WithStates(k int) Option {
	return func(o *options) { o.states = k }
}

// WithLogger sets the logger used for stage timings.
func WithLogger(l logrus.FieldLogger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func newOptions(opts []Option) *options {
	discard := logrus.New()
	discard.SetOutput(io.Discard)

	o := &options{logger: discard}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
