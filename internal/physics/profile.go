package physics

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Profile is an ordered sequence of cell samples along one spatial axis.
type Profile []float64

func (p Profile) Clone() Profile {
	c := make(Profile, len(p))
	copy(c, p)
	return c
}

// IsFinite reports whether no sample is NaN or Inf.
func (p Profile) IsFinite() bool {
	for _, v := range p {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// CrossingTime is the time for the fastest signal to cross a cell of width
// dr whose face moves with velocity w.
func CrossingTime(cAd, velocity, w, dr float64) float64 {
	return dr / (cAd + math.Abs(velocity-w))
}

// FaceVelocity interpolates cell velocities to cell faces. The first face is
// pinned at zero and face i (i > 0) is the mean of cells i-1 and i, so the
// result has the same length as v.
func FaceVelocity(v Profile) (Profile, error) {
	if len(v) < 2 {
		return nil, fmt.Errorf("face velocity over %d samples: %w", len(v), ErrInsufficientSamples)
	}
	w := make(Profile, len(v))
	floats.AddTo(w[1:], v[1:], v[:len(v)-1])
	floats.Scale(0.5, w[1:])
	return w, nil
}

// CrossingTimes is the element-wise form of CrossingTime.
func CrossingTimes(cAd, velocity, w Profile, dr float64) (Profile, error) {
	if err := sameLength(cAd, velocity, w); err != nil {
		return nil, fmt.Errorf("crossing times: %w", err)
	}
	out := make(Profile, len(velocity))
	for i := range out {
		out[i] = CrossingTime(cAd[i], velocity[i], w[i], dr)
	}
	return out, nil
}

// CourantTimestep scales the shortest crossing time by the Courant number.
func CourantTimestep(crossing Profile, courant float64) (float64, error) {
	if len(crossing) == 0 {
		return 0, fmt.Errorf("courant timestep: %w", ErrInsufficientSamples)
	}
	return courant * floats.Min(crossing), nil
}

func MassProfile(density Profile, dV float64) Profile {
	out := make(Profile, len(density))
	floats.ScaleTo(out, dV, density)
	return out
}

func MomentumProfile(mass, velocity Profile) (Profile, error) {
	if err := sameLength(mass, velocity); err != nil {
		return nil, fmt.Errorf("momentum: %w", err)
	}
	out := make(Profile, len(mass))
	floats.MulTo(out, mass, velocity)
	return out, nil
}

func KineticEnergyProfile(mass, velocity Profile) (Profile, error) {
	if err := sameLength(mass, velocity); err != nil {
		return nil, fmt.Errorf("kinetic energy: %w", err)
	}
	out := make(Profile, len(mass))
	for i := range out {
		out[i] = KineticEnergy(mass[i], velocity[i])
	}
	return out, nil
}

func InternalEnergyProfile(mass, pressure, density Profile) (Profile, error) {
	if err := sameLength(mass, pressure, density); err != nil {
		return nil, fmt.Errorf("internal energy: %w", err)
	}
	out := make(Profile, len(mass))
	for i := range out {
		out[i] = InternalEnergy(mass[i], pressure[i], density[i])
	}
	return out, nil
}

func SoundSpeedProfile(pressure, density Profile) (Profile, error) {
	if err := sameLength(pressure, density); err != nil {
		return nil, fmt.Errorf("sound speed: %w", err)
	}
	out := make(Profile, len(pressure))
	for i := range out {
		out[i] = SoundSpeed(pressure[i], density[i])
	}
	return out, nil
}

func TemperatureProfile(pressure, density Profile, mu float64) (Profile, error) {
	if err := sameLength(pressure, density); err != nil {
		return nil, fmt.Errorf("temperature: %w", err)
	}
	out := make(Profile, len(pressure))
	for i := range out {
		out[i] = Temperature(pressure[i], density[i], mu)
	}
	return out, nil
}

func PressureProfile(temperature, density Profile, mu float64) (Profile, error) {
	if err := sameLength(temperature, density); err != nil {
		return nil, fmt.Errorf("pressure: %w", err)
	}
	out := make(Profile, len(temperature))
	for i := range out {
		out[i] = Pressure(temperature[i], density[i], mu)
	}
	return out, nil
}

func EntropyProfile(temperature, density Profile, mu float64) (Profile, error) {
	if err := sameLength(temperature, density); err != nil {
		return nil, fmt.Errorf("entropy: %w", err)
	}
	out := make(Profile, len(temperature))
	for i := range out {
		out[i] = Entropy(temperature[i], density[i], mu)
	}
	return out, nil
}

func sameLength(ps ...Profile) error {
	for _, p := range ps[1:] {
		if len(p) != len(ps[0]) {
			return fmt.Errorf("%w (%d vs %d)", ErrLengthMismatch, len(ps[0]), len(p))
		}
	}
	return nil
}
