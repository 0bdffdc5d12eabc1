// Package heater converts between electrical and thermal heater power
// through an efficiency factor.
package heater

import (
	"github.com/shopspring/decimal"

	"thermo-calc/internal/errors"
)

// resultPlaces is the number of decimal places reported for power values.
const resultPlaces = 2

// Query describes one conversion. Exactly one of ElectricalKW and
// ThermalKW must be set; the other is solved for.
type Query struct {
	// ElectricalKW is the electrical input power, kW
	ElectricalKW *float64

	// ThermalKW is the thermal output power, kW
	ThermalKW *float64

	// EfficiencyPercent is the heater efficiency, %
	EfficiencyPercent float64
}

// Result holds both sides of the conversion, rounded to two decimals.
type Result struct {
	// ElectricalKW is the electrical input power, kW
	ElectricalKW float64 `json:"electrical_kw"`

	// ThermalKW is the thermal output power, kW
	ThermalKW float64 `json:"thermal_kw"`

	// EfficiencyPercent echoes the efficiency used, %
	EfficiencyPercent float64 `json:"efficiency_percent"`
}

// Convert resolves the missing side of an electrical/thermal power pair.
func Convert(q Query) (*Result, error) {
	if q.EfficiencyPercent <= 0 {
		return nil, errors.Input("efficiency must be greater than zero")
	}
	if q.ElectricalKW != nil && q.ThermalKW != nil {
		return nil, errors.Input("give either electrical or thermal power, not both")
	}

	eta := q.EfficiencyPercent / 100.0

	switch {
	case q.ThermalKW != nil:
		return &Result{
			ElectricalKW:      round(*q.ThermalKW / eta),
			ThermalKW:         round(*q.ThermalKW),
			EfficiencyPercent: q.EfficiencyPercent,
		}, nil
	case q.ElectricalKW != nil:
		return &Result{
			ElectricalKW:      round(*q.ElectricalKW),
			ThermalKW:         round(*q.ElectricalKW * eta),
			EfficiencyPercent: q.EfficiencyPercent,
		}, nil
	default:
		return nil, errors.Input("electrical or thermal power required")
	}
}

// round truncates binary floating-point noise from division results so the
// reported powers are exact two-decimal values.
func round(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(resultPlaces).Float64()
	return f
}
