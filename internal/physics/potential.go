package physics

import (
	"errors"
	"fmt"
)

// ErrUnknownParam indicates a parameter name the potential does not have.
var ErrUnknownParam = errors.New("physics: unknown parameter")

// Potential is a real potential energy surface.
type Potential interface {
	Name() string
	Dims() int
	Eval(x []float64) float64
	GetParams() map[string]float64
	SetParam(name string, value float64) error
}

func unknownParam(pot, name string) error {
	return fmt.Errorf("%s.%s: %w", pot, name, ErrUnknownParam)
}

// SetParams applies every entry of params to p, stopping at the first error.
func SetParams(p Potential, params map[string]float64) error {
	for name, v := range params {
		if err := p.SetParam(name, v); err != nil {
			return err
		}
	}
	return nil
}
