package air

import (
	"math"

	"thermo-calc/internal/errors"
)

// coefficientSet holds the seven coefficients of a NASA polynomial fit
// for one temperature range.
type coefficientSet struct {
	a1, a2, a3, a4, a5, a6, a7 float64
}

// NASA 7-coefficient fits for dry air.
var (
	// lowRange covers 200 K to 1000 K
	lowRange = coefficientSet{
		a1: 10099.5016,
		a2: -196.8276,
		a3: 5.009155,
		a4: -0.005761014,
		a5: 1.06686e-05,
		a6: -7.940298e-09,
		a7: 2.185232e-12,
	}

	// highRange covers 1000 K to 6000 K
	highRange = coefficientSet{
		a1: 241521.443,
		a2: -1257.875,
		a3: 5.144559,
		a4: -0.0002138542,
		a5: 7.065228e-08,
		a6: -1.071483e-11,
		a7: 6.577800e-16,
	}
)

// rangeSwitchK is the boundary between the two coefficient sets. The high
// set applies at exactly 1000 K; the fit is discontinuous across the
// boundary and no smoothing is applied.
const rangeSwitchK = 1000.0

// validateTemperature rejects non-finite and non-positive absolute
// temperatures. The polynomial contains inverse powers of T, so T <= 0
// is a caller error, not a recoverable condition.
func validateTemperature(t float64) error {
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return errors.Input("temperature must be finite")
	}
	if t <= 0 {
		return errors.InvalidTemperature(t)
	}
	return nil
}

// MolarCp returns the molar heat capacity of dry air at constant pressure,
// J/(mol·K), from the NASA polynomial form:
//
//	Cp/R = a1/T² + a2/T + a3 + a4·T + a5·T² + a6·T³ + a7·T⁴
func MolarCp(t float64) (float64, error) {
	if err := validateTemperature(t); err != nil {
		return 0, err
	}

	c := lowRange
	if t >= rangeSwitchK {
		c = highRange
	}

	cpOverR := c.a1/(t*t) + c.a2/t + c.a3 + c.a4*t + c.a5*t*t + c.a6*t*t*t + c.a7*t*t*t*t

	return cpOverR * RUniversal, nil
}

// SpecificCp returns the mass-specific heat capacity of dry air at constant
// pressure, J/(kg·K).
func SpecificCp(t float64) (float64, error) {
	cp, err := MolarCp(t)
	if err != nil {
		return 0, err
	}
	return cp / MolarMass, nil
}

// SpecificCv returns the mass-specific heat capacity of dry air at constant
// volume, J/(kg·K). Air is treated as thermally ideal, so Cv = Cp - R.
func SpecificCv(t float64) (float64, error) {
	cp, err := SpecificCp(t)
	if err != nil {
		return 0, err
	}
	return cp - RSpecific, nil
}
