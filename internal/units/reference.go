package units

import "math"

// Reference data, SI unless noted. CODATA 2018 and IAU 2012/2015 resolutions.
// The parsec follows IAU 2015 B2: 1 au over one arcsecond in radians.
const (
	planckSI           = 6.62607015e-34 // J s, exact
	gravitationSI      = 6.67430e-11    // m^3 kg^-1 s^-2
	solarGMNominalSI   = 1.3271244e20   // m^3 s^-2, IAU 2015 B3
	astronomicalUnitSI = 1.495978707e11 // m, IAU 2012 B2

	julianYearDays = 365.25
	secondsPerDay  = 86400.0

	gramsPerKilogram    = 1e3
	centimetersPerMeter = 1e2
)

var arcsecond = math.Pi / (180 * 3600)
