package units

import "math"

const (
	// HeliumFraction is the helium mass fraction Y assumed by the mean
	// molecular weight approximation.
	HeliumFraction = 0.23

	// AdiabaticIndex of a monatomic ideal gas.
	AdiabaticIndex = 5.0 / 3.0

	// SolarMetallicity is the default metal mass fraction Z.
	SolarMetallicity = 0.02
)

// Constants is the CGS constant set shared by every formula.
type Constants struct {
	Hbar       float64 // erg s
	KB         float64 // erg / K
	ProtonMass float64 // g

	Parsec    float64 // cm
	Year      float64 // s
	SolarMass float64 // g
	Kilogram  float64 // g
	Meter     float64 // cm
	Joule     float64 // erg

	Gamma            float64
	SolarMetallicity float64
}

// Entry is one named constant, for display.
type Entry struct {
	Name  string
	Value float64
	Unit  string
}

var cgs = derive()

// CGS returns a copy of the constant set. It is computed once at package
// initialisation and never modified.
func CGS() Constants {
	return cgs
}

func derive() Constants {
	kg := gramsPerKilogram
	m := centimetersPerMeter
	joule := kg * m * m

	return Constants{
		// k_B and m_p stay literal to match the external C reference constants.
		KB:         1.380649e-16,
		ProtonMass: 1.672622e-24,
		Hbar:       planckSI * joule / (2 * math.Pi),

		Parsec:    astronomicalUnitSI * m / arcsecond,
		Year:      julianYearDays * secondsPerDay,
		SolarMass: solarGMNominalSI / gravitationSI * kg,
		Kilogram:  kg,
		Meter:     m,
		Joule:     joule,

		Gamma:            AdiabaticIndex,
		SolarMetallicity: SolarMetallicity,
	}
}

// Entries lists the constant set in a stable order.
func (c Constants) Entries() []Entry {
	return []Entry{
		{"hbar", c.Hbar, "erg s"},
		{"k_b", c.KB, "erg/K"},
		{"m_proton", c.ProtonMass, "g"},
		{"pc", c.Parsec, "cm"},
		{"yr", c.Year, "s"},
		{"M_solar", c.SolarMass, "g"},
		{"kg", c.Kilogram, "g"},
		{"meters", c.Meter, "cm"},
		{"joules", c.Joule, "erg"},
		{"gamma", c.Gamma, ""},
		{"metallicity_solar", c.SolarMetallicity, ""},
	}
}
