package diagnostics

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/san-kum/gasdyn/internal/physics"
)

var ErrUnknownColumn = errors.New("diagnostics: unknown column")

// Snapshot is one instant of a 1-D gas state on cells of uniform width.
type Snapshot struct {
	Name        string
	Metallicity float64
	Courant     float64
	CellWidth   float64 // cm
	CellVolume  float64 // cm^3
	Density     physics.Profile
	Pressure    physics.Profile
	Velocity    physics.Profile
}

type Cell struct {
	Index          int     `csv:"cell" json:"cell"`
	Density        float64 `csv:"density" json:"density"`
	Pressure       float64 `csv:"pressure" json:"pressure"`
	Velocity       float64 `csv:"velocity" json:"velocity"`
	FaceVelocity   float64 `csv:"face_velocity" json:"face_velocity"`
	Mass           float64 `csv:"mass" json:"mass"`
	KineticEnergy  float64 `csv:"kinetic_energy" json:"kinetic_energy"`
	InternalEnergy float64 `csv:"internal_energy" json:"internal_energy"`
	Momentum       float64 `csv:"momentum" json:"momentum"`
	SoundSpeed     float64 `csv:"sound_speed" json:"sound_speed"`
	Temperature    float64 `csv:"temperature" json:"temperature"`
	Entropy        float64 `csv:"entropy" json:"entropy"`
	CrossingTime   float64 `csv:"crossing_time" json:"crossing_time"`
}

type Totals struct {
	MeanMolecularWeight float64 `json:"mu"`
	Mass                float64 `json:"mass"`
	KineticEnergy       float64 `json:"kinetic_energy"`
	InternalEnergy      float64 `json:"internal_energy"`
	Momentum            float64 `json:"momentum"`
	MinCrossingTime     float64 `json:"min_crossing_time"`
	Timestep            float64 `json:"timestep"`
}

type Report struct {
	Name   string
	Cells  []Cell
	Totals Totals
}

var columns = []string{
	"density", "pressure", "velocity", "face_velocity",
	"mass", "kinetic_energy", "internal_energy", "momentum",
	"sound_speed", "temperature", "entropy", "crossing_time",
}

// Columns lists the per-cell quantities in table order.
func Columns() []string {
	out := make([]string, len(columns))
	copy(out, columns)
	return out
}

// Evaluate applies every formula to each cell of s and aggregates the
// conserved totals. Numeric domain problems surface as NaN or Inf in the
// affected cells, not as errors.
func Evaluate(s Snapshot) (*Report, error) {
	r, err := evaluate(s)
	if err != nil {
		return nil, fmt.Errorf("evaluate %s: %w", s.Name, err)
	}
	return r, nil
}

func evaluate(s Snapshot) (*Report, error) {
	mu := physics.MeanMolecularWeight(s.Metallicity)

	cs, err := physics.SoundSpeedProfile(s.Pressure, s.Density)
	if err != nil {
		return nil, err
	}
	w, err := physics.FaceVelocity(s.Velocity)
	if err != nil {
		return nil, err
	}

	mass := physics.MassProfile(s.Density, s.CellVolume)
	ke, err := physics.KineticEnergyProfile(mass, s.Velocity)
	if err != nil {
		return nil, err
	}
	ei, err := physics.InternalEnergyProfile(mass, s.Pressure, s.Density)
	if err != nil {
		return nil, err
	}
	mom, err := physics.MomentumProfile(mass, s.Velocity)
	if err != nil {
		return nil, err
	}
	temp, err := physics.TemperatureProfile(s.Pressure, s.Density, mu)
	if err != nil {
		return nil, err
	}
	entropy, err := physics.EntropyProfile(temp, s.Density, mu)
	if err != nil {
		return nil, err
	}
	ct, err := physics.CrossingTimes(cs, s.Velocity, w, s.CellWidth)
	if err != nil {
		return nil, err
	}
	dt, err := physics.CourantTimestep(ct, s.Courant)
	if err != nil {
		return nil, err
	}

	cells := make([]Cell, len(s.Density))
	for i := range cells {
		cells[i] = Cell{
			Index:          i,
			Density:        s.Density[i],
			Pressure:       s.Pressure[i],
			Velocity:       s.Velocity[i],
			FaceVelocity:   w[i],
			Mass:           mass[i],
			KineticEnergy:  ke[i],
			InternalEnergy: ei[i],
			Momentum:       mom[i],
			SoundSpeed:     cs[i],
			Temperature:    temp[i],
			Entropy:        entropy[i],
			CrossingTime:   ct[i],
		}
	}

	return &Report{
		Name:  s.Name,
		Cells: cells,
		Totals: Totals{
			MeanMolecularWeight: mu,
			Mass:                floats.Sum(mass),
			KineticEnergy:       floats.Sum(ke),
			InternalEnergy:      floats.Sum(ei),
			Momentum:            floats.Sum(mom),
			MinCrossingTime:     floats.Min(ct),
			Timestep:            dt,
		},
	}, nil
}

// Column extracts one per-cell quantity by name.
func (r *Report) Column(name string) ([]float64, error) {
	get, ok := accessors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}
	out := make([]float64, len(r.Cells))
	for i, c := range r.Cells {
		out[i] = get(c)
	}
	return out, nil
}

// Column extracts one per-cell quantity from stored cells.
func Column(cells []Cell, name string) ([]float64, error) {
	return (&Report{Cells: cells}).Column(name)
}

var accessors = map[string]func(Cell) float64{
	"density":         func(c Cell) float64 { return c.Density },
	"pressure":        func(c Cell) float64 { return c.Pressure },
	"velocity":        func(c Cell) float64 { return c.Velocity },
	"face_velocity":   func(c Cell) float64 { return c.FaceVelocity },
	"mass":            func(c Cell) float64 { return c.Mass },
	"kinetic_energy":  func(c Cell) float64 { return c.KineticEnergy },
	"internal_energy": func(c Cell) float64 { return c.InternalEnergy },
	"momentum":        func(c Cell) float64 { return c.Momentum },
	"sound_speed":     func(c Cell) float64 { return c.SoundSpeed },
	"temperature":     func(c Cell) float64 { return c.Temperature },
	"entropy":         func(c Cell) float64 { return c.Entropy },
	"crossing_time":   func(c Cell) float64 { return c.CrossingTime },
}
