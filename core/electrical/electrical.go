// Package electrical computes supply power for heater connections.
package electrical

import (
	"math"

	"thermo-calc/internal/errors"
)

// SinglePhasePower returns P = U·I in W for a single-phase connection.
func SinglePhasePower(voltage, current float64) (float64, error) {
	if err := validate(voltage, current); err != nil {
		return 0, err
	}
	return voltage * current, nil
}

// ThreePhasePower returns P = √3·U·I in W for a three-phase connection,
// with U as the line-to-line voltage.
func ThreePhasePower(voltage, current float64) (float64, error) {
	if err := validate(voltage, current); err != nil {
		return 0, err
	}
	return voltage * current * math.Sqrt(3), nil
}

func validate(voltage, current float64) error {
	if voltage < 0 || math.IsNaN(voltage) || math.IsInf(voltage, 0) {
		return errors.Input("voltage must be finite and non-negative")
	}
	if current < 0 || math.IsNaN(current) || math.IsInf(current, 0) {
		return errors.Input("current must be finite and non-negative")
	}
	return nil
}
