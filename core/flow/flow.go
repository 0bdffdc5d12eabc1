// Package flow computes duct flow quantities: cross-section area,
// hydraulic diameter, velocity, Reynolds number and flow regime.
package flow

import (
	"math"

	"thermo-calc/core/air"
	"thermo-calc/internal/errors"
)

// Shape identifies the duct cross section.
type Shape string

const (
	// Circular is a round duct described by its diameter
	Circular Shape = "circular"

	// Rectangular is a rectangular duct described by its side lengths
	Rectangular Shape = "rectangular"
)

// Unit identifies the volume flow unit of a query.
type Unit string

const (
	// CubicMetersPerHour is m³/h
	CubicMetersPerHour Unit = "m3/h"

	// CubicMetersPerSecond is m³/s
	CubicMetersPerSecond Unit = "m3/s"
)

// Regime classifies a pipe flow by its Reynolds number.
type Regime string

const (
	// Laminar flow, Re < 2300
	Laminar Regime = "laminar"

	// Transitional flow, 2300 <= Re < 11000
	Transitional Regime = "transitional"

	// Turbulent flow, Re >= 11000
	Turbulent Regime = "turbulent"
)

// Regime thresholds.
const (
	laminarLimit   = 2300.0
	turbulentLimit = 11000.0
)

// Query describes one duct flow calculation. Temperature and density are
// optional; without them only velocity and geometry are computed.
type Query struct {
	// Shape is the duct cross section
	Shape Shape

	// VolumeFlow is the volume flow in Unit
	VolumeFlow float64

	// Unit is the volume flow unit
	Unit Unit

	// DiameterMM is the duct diameter for circular ducts, mm
	DiameterMM *float64

	// SideAMM and SideBMM are the duct sides for rectangular ducts, mm
	SideAMM *float64
	SideBMM *float64

	// TemperatureC enables the Reynolds computation, °C
	TemperatureC *float64

	// Density is the air density for the Reynolds computation, kg/m³
	Density *float64
}

// Result holds the computed duct flow quantities.
type Result struct {
	// Area is the cross-section area, m²
	Area float64 `json:"area_m2"`

	// HydraulicDiameter is 4A/U, m (equals the diameter for round ducts)
	HydraulicDiameter float64 `json:"hydraulic_diameter_m"`

	// Velocity is the mean flow velocity, m/s
	Velocity float64 `json:"velocity_m_s"`

	// Reynolds is the Reynolds number; nil when temperature or density
	// were not supplied
	Reynolds *float64 `json:"reynolds,omitempty"`

	// Regime is the flow classification; empty without a Reynolds number
	Regime Regime `json:"regime,omitempty"`
}

// Calculate resolves the duct flow query.
func Calculate(q Query) (*Result, error) {
	volumeFlow := q.VolumeFlow
	switch q.Unit {
	case CubicMetersPerHour:
		volumeFlow /= 3600.0
	case CubicMetersPerSecond:
		// already m³/s
	default:
		return nil, errors.Newf(errors.TypeInput, "unknown volume flow unit %q", q.Unit)
	}

	var area, hydraulicDiameter float64
	switch q.Shape {
	case Circular:
		if q.DiameterMM == nil {
			return nil, errors.Input("diameter required for a circular duct")
		}
		diameter := *q.DiameterMM / 1000.0
		area = math.Pi * diameter * diameter / 4.0
		hydraulicDiameter = diameter
	case Rectangular:
		if q.SideAMM == nil || q.SideBMM == nil {
			return nil, errors.Input("both side lengths required for a rectangular duct")
		}
		a := *q.SideAMM / 1000.0
		b := *q.SideBMM / 1000.0
		area = a * b
		hydraulicDiameter = 4.0 * (a * b) / (2.0 * (a + b))
	default:
		return nil, errors.Newf(errors.TypeInput, "unknown duct shape %q", q.Shape)
	}

	if area <= 0 {
		return nil, errors.Input("cross-section area must be positive")
	}

	result := &Result{
		Area:              area,
		HydraulicDiameter: hydraulicDiameter,
		Velocity:          volumeFlow / area,
	}

	if q.TemperatureC != nil && q.Density != nil {
		mu, err := air.DynamicViscosity(*q.TemperatureC + air.KelvinOffset)
		if err != nil {
			return nil, err
		}
		re, err := ReynoldsNumber(hydraulicDiameter, result.Velocity, mu, *q.Density)
		if err != nil {
			return nil, err
		}
		result.Reynolds = &re
		result.Regime = Classify(re)
	}

	return result, nil
}

// KinematicViscosity converts a dynamic viscosity (Pa·s) and density
// (kg/m³) into a kinematic viscosity (m²/s).
func KinematicViscosity(dynamicViscosity, density float64) (float64, error) {
	if density <= 0 {
		return 0, errors.Input("density must be positive")
	}
	return dynamicViscosity / density, nil
}

// ReynoldsNumber returns the Reynolds number of a pipe flow from the
// hydraulic diameter (m), velocity (m/s), dynamic viscosity (Pa·s) and
// density (kg/m³).
func ReynoldsNumber(diameter, velocity, dynamicViscosity, density float64) (float64, error) {
	nu, err := KinematicViscosity(dynamicViscosity, density)
	if err != nil {
		return 0, err
	}
	if nu <= 0 {
		return 0, errors.Input("kinematic viscosity must be positive")
	}
	return diameter * velocity / nu, nil
}

// Classify maps a Reynolds number onto a flow regime.
func Classify(reynolds float64) Regime {
	switch {
	case reynolds < laminarLimit:
		return Laminar
	case reynolds < turbulentLimit:
		return Transitional
	default:
		return Turbulent
	}
}
