package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/gasdyn/internal/diagnostics"
	"github.com/san-kum/gasdyn/internal/physics"
	"github.com/san-kum/gasdyn/internal/units"
)

const (
	DefaultCourant = 0.5
	DefaultCells   = 16
)

var (
	ErrMissingPressure = errors.New("config: neither pressure nor temperature given")
	ErrInvalid         = errors.New("config: invalid value")
)

// Config describes a gas snapshot. Pressure may be omitted when
// Temperature is given; it is then derived from the ideal gas law.
type Config struct {
	Name        string    `yaml:"name"`
	Metallicity float64   `yaml:"metallicity"`
	Courant     float64   `yaml:"courant"`
	CellWidth   float64   `yaml:"cell_width"`
	CellVolume  float64   `yaml:"cell_volume"`
	Density     []float64 `yaml:"density"`
	Pressure    []float64 `yaml:"pressure,omitempty"`
	Temperature []float64 `yaml:"temperature,omitempty"`
	Velocity    []float64 `yaml:"velocity"`
}

func DefaultConfig() *Config {
	pc := units.CGS().Parsec
	return &Config{
		Name:        "snapshot",
		Metallicity: units.SolarMetallicity,
		Courant:     DefaultCourant,
		CellWidth:   pc,
		CellVolume:  pc * pc * pc,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
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

func (c *Config) Validate() error {
	switch {
	case c.Metallicity < 0 || c.Metallicity >= 1:
		return fmt.Errorf("%w: metallicity %g outside [0, 1)", ErrInvalid, c.Metallicity)
	case c.Courant <= 0:
		return fmt.Errorf("%w: courant number %g", ErrInvalid, c.Courant)
	case c.CellWidth <= 0:
		return fmt.Errorf("%w: cell width %g", ErrInvalid, c.CellWidth)
	case c.CellVolume <= 0:
		return fmt.Errorf("%w: cell volume %g", ErrInvalid, c.CellVolume)
	}
	return nil
}

// Snapshot resolves the configuration into evaluable profiles. Explicit
// pressure wins over temperature.
func (c *Config) Snapshot() (diagnostics.Snapshot, error) {
	if err := c.Validate(); err != nil {
		return diagnostics.Snapshot{}, err
	}

	density := physics.Profile(c.Density).Clone()
	var pressure physics.Profile
	switch {
	case len(c.Pressure) > 0:
		pressure = physics.Profile(c.Pressure).Clone()
	case len(c.Temperature) > 0:
		mu := physics.MeanMolecularWeight(c.Metallicity)
		p, err := physics.PressureProfile(c.Temperature, density, mu)
		if err != nil {
			return diagnostics.Snapshot{}, fmt.Errorf("config %s: %w", c.Name, err)
		}
		pressure = p
	default:
		return diagnostics.Snapshot{}, ErrMissingPressure
	}

	return diagnostics.Snapshot{
		Name:        c.Name,
		Metallicity: c.Metallicity,
		Courant:     c.Courant,
		CellWidth:   c.CellWidth,
		CellVolume:  c.CellVolume,
		Density:     density,
		Pressure:    pressure,
		Velocity:    physics.Profile(c.Velocity).Clone(),
	}, nil
}

func (c *Config) clone() *Config {
	cp := *c
	cp.Density = append([]float64(nil), c.Density...)
	cp.Pressure = append([]float64(nil), c.Pressure...)
	cp.Temperature = append([]float64(nil), c.Temperature...)
	cp.Velocity = append([]float64(nil), c.Velocity...)
	return &cp
}
