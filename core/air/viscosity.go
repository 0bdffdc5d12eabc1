package air

import "math"

// Critical-point data for dry air used by the Lucas correlation
// (VDI Wärmeatlas).
const (
	criticalTemperatureK = 132.63

	// bar
	criticalPressureBar = 37.858

	// g/mol; the correlation is parameterised in gram units
	molarMassGram = 28.9644
)

// DynamicViscosity returns the dynamic viscosity of dry air in Pa·s,
// computed with the Lucas correlation. Air carries no dipole moment, so
// the polarity correction factor is 1.
func DynamicViscosity(t float64) (float64, error) {
	if err := validateTemperature(t); err != nil {
		return 0, err
	}

	theta := 0.176 * math.Pow(criticalTemperatureK, 1.0/6.0) *
		math.Pow(molarMassGram, -0.5) *
		math.Pow(criticalPressureBar, -0.667)

	tr := t / criticalTemperatureK

	mu := (1.0 / theta) * (0.807*math.Pow(tr, 0.618) -
		0.357*math.Exp(-0.449*tr) +
		0.340*math.Exp(-4.058*tr) +
		0.018) * 1e-7

	return mu, nil
}
