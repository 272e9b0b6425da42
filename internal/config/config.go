package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPotential = "harmonic"
	DefaultN         = 64
	DefaultHalfWidth = 10.0
	DefaultKDiag     = -0.5
	DefaultStates    = 10
)

// Config is the on-disk description of a problem. Zero-valued slices fall
// back to the potential's registered defaults when the problem is built.
type Config struct {
	Potential  string             `yaml:"potential" json:"potential"`
	Params     map[string]float64 `yaml:"params,omitempty" json:"params,omitempty"`
	N          []int              `yaml:"n,flow" json:"n"`
	Domain     [][]float64        `yaml:"domain,flow" json:"domain"`
	KDiag      []float64          `yaml:"k_diag,flow" json:"k_diag"`
	KCross     []float64          `yaml:"k_cross,flow" json:"k_cross"`
	States     int                `yaml:"states" json:"states"`
	ValuesOnly bool               `yaml:"values_only" json:"values_only"`
}

func DefaultConfig() *Config {
	return &Config{
		Potential: DefaultPotential,
		Params:    map[string]float64{},
		N:         []int{DefaultN},
		Domain:    [][]float64{{-DefaultHalfWidth, DefaultHalfWidth}},
		KDiag:     []float64{DefaultKDiag},
		KCross:    []float64{},
		States:    DefaultStates,
	}
}

// Load reads a problem file. Fields the file leaves out stay zero so that
// presets and the potential's defaults can fill them.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Dims infers the dimensionality from whichever of N or Domain is set.
func (c *Config) Dims() int {
	if len(c.N) > 0 {
		return len(c.N)
	}
	return len(c.Domain)
}

// Clone returns a deep copy so presets can be modified safely.
func (c *Config) Clone() *Config {
	out := *c
	out.Params = make(map[string]float64, len(c.Params))
	for k, v := range c.Params {
		out.Params[k] = v
	}
	out.N = append([]int(nil), c.N...)
	out.KDiag = append([]float64(nil), c.KDiag...)
	out.KCross = append([]float64(nil), c.KCross...)
	out.Domain = make([][]float64, len(c.Domain))
	for i, d := range c.Domain {
		out.Domain[i] = append([]float64(nil), d...)
	}
	return &out
}

// Merge overlays the non-zero fields of o onto c.
func (c *Config) Merge(o *Config) {
	if o == nil {
		return
	}
	if o.Potential != "" {
		c.Potential = o.Potential
	}
	for k, v := range o.Params {
		if c.Params == nil {
			c.Params = map[string]float64{}
		}
		c.Params[k] = v
	}
	if len(o.N) > 0 {
		c.N = append([]int(nil), o.N...)
	}
	if len(o.Domain) > 0 {
		c.Domain = o.Clone().Domain
	}
	if len(o.KDiag) > 0 {
		c.KDiag = append([]float64(nil), o.KDiag...)
	}
	if len(o.KCross) > 0 {
		c.KCross = append([]float64(nil), o.KCross...)
	}
	if o.States > 0 {
		c.States = o.States
	}
	if o.ValuesOnly {
		c.ValuesOnly = true
	}
}
