package physics

func Mass(density, dV float64) float64 {
	return density * dV
}

func KineticEnergy(mass, velocity float64) float64 {
	return 0.5 * mass * (velocity * velocity)
}

// InternalEnergy of an ideal gas parcel, m P / (rho (gamma - 1)).
func InternalEnergy(mass, pressure, density float64) float64 {
	return mass * (1 / (cgs.Gamma - 1)) * pressure / density
}

// SpecificInternalEnergy is the internal energy per unit mass.
func SpecificInternalEnergy(pressure, density float64) float64 {
	return 1 / (cgs.Gamma - 1) * pressure / density
}

func Momentum(mass, velocity float64) float64 {
	return mass * velocity
}
