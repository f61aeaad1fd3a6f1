package physics

import (
	"math"

	"github.com/san-kum/gasdyn/internal/units"
)

var cgs = units.CGS()

// MeanMolecularWeight of a fully ionised gas with metal fraction z and the
// helium fraction fixed at units.HeliumFraction.
func MeanMolecularWeight(z float64) float64 {
	y := units.HeliumFraction
	x := 1 - y - z
	return 1 / (2*x + 0.75*y + 0.5*z)
}

// SoundSpeed is the adiabatic sound speed sqrt(gamma P / rho).
func SoundSpeed(pressure, density float64) float64 {
	return math.Sqrt(cgs.Gamma * pressure / density)
}

// Temperature of an ideal gas with mean molecular weight mu.
func Temperature(pressure, density, mu float64) float64 {
	return pressure / density * (mu * cgs.ProtonMass / cgs.KB)
}

// Pressure is the inverse of Temperature.
func Pressure(temperature, density, mu float64) float64 {
	return temperature * density * cgs.KB / (mu * cgs.ProtonMass)
}

// Entropy returns the dimensionless Sackur-Tetrode entropy per particle.
func Entropy(temperature, density, mu float64) float64 {
	m := mu * cgs.ProtonMass
	lambda := 2 * math.Pi * cgs.Hbar * cgs.Hbar / (m * cgs.KB * temperature)
	return 2.5 - math.Log(density/m*math.Pow(lambda, 1.5))
}
