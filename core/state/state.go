// Package state computes air state changes across a heater: pressure,
// density, volume flow, viscosity, speed of sound, heat capacity and
// heating power between an inlet and an outlet condition.
package state

import (
	"math"

	"thermo-calc/core/air"
	"thermo-calc/internal/errors"
)

// Process selects how the state change is constrained.
type Process string

const (
	// Isobaric keeps pressure constant across the heater
	Isobaric Process = "isobaric"

	// Isochoric keeps density constant across the heater
	Isochoric Process = "isochoric"
)

// Norm identifies the reference condition a norm volume flow refers to.
type Norm string

const (
	// NormDIN is 0 °C / 101325 Pa (DIN 1343)
	NormDIN Norm = "din"

	// NormHeatrix is 20 °C / 101325 Pa
	NormHeatrix Norm = "heatrix"
)

// normCondition is a reference state for norm volume flows.
type normCondition struct {
	temperatureK float64
	pressurePa   float64
	density      float64
}

var normConditions = map[Norm]normCondition{
	NormDIN:     {temperatureK: 273.15, pressurePa: 101325, density: 1.29228},
	NormHeatrix: {temperatureK: 293.15, pressurePa: 101325, density: 1.20412},
}

// isentropicExponent of air, used for the speed of sound.
const isentropicExponent = 1.4

// Query describes one state-change calculation. Optional inputs are
// pointers; the inlet must be fixed either by a norm volume flow or by an
// operating volume flow plus pressure or density, and the outlet either by
// its temperature or by the heating power.
type Query struct {
	// Process selects isobaric or isochoric behaviour
	Process Process

	// InletTemperatureC is the inlet temperature, °C
	InletTemperatureC float64

	// OutletTemperatureC is the outlet temperature, °C (optional)
	OutletTemperatureC *float64

	// PowerKW is the heating power, kW (optional, solved for the outlet
	// temperature when set)
	PowerKW *float64

	// PressurePa is the inlet pressure, Pa (optional)
	PressurePa *float64

	// Density is the inlet density, kg/m³ (optional)
	Density *float64

	// VolumeFlow is the operating volume flow at the inlet, m³/h (optional)
	VolumeFlow *float64

	// NormVolumeFlow is the norm volume flow, Nm³/h (optional)
	NormVolumeFlow *float64

	// Norm is the reference condition for NormVolumeFlow
	Norm Norm

	// SolverMaxSteps bounds the outlet-temperature search (0 = default)
	SolverMaxSteps int
}

// Result holds both resolved states and the derived quantities.
type Result struct {
	// Inlet state
	P1       float64 `json:"p1_pa"`
	Rho1     float64 `json:"rho1_kg_m3"`
	V1       float64 `json:"v1_m3_h"`
	Mu1      float64 `json:"mu1_pa_s"`
	C1       float64 `json:"c1_m_s"`
	MassFlow float64 `json:"mass_flow_kg_s"`

	// Outlet state
	P2        float64 `json:"p2_pa"`
	Rho2      float64 `json:"rho2_kg_m3"`
	V2        float64 `json:"v2_m3_h"`
	Mu2       float64 `json:"mu2_pa_s"`
	C2        float64 `json:"c2_m_s"`
	MassFlow2 float64 `json:"mass_flow2_kg_s"`

	// Capacity1 and Capacity2 are Cp (isobaric) or Cv (isochoric) at the
	// two temperatures, J/(kg·K)
	Capacity1 float64 `json:"capacity1_j_kg_k"`
	Capacity2 float64 `json:"capacity2_j_kg_k"`

	// PowerKW is the transferred heating power, kW
	PowerKW float64 `json:"power_kw"`

	// OutletTemperatureC is the resolved outlet temperature, °C
	OutletTemperatureC float64 `json:"outlet_temperature_c"`
}

// Calculate resolves the air state change described by the query.
func Calculate(q Query) (*Result, error) {
	if q.Process != Isobaric && q.Process != Isochoric {
		return nil, errors.Newf(errors.TypeInput, "unknown process %q", q.Process)
	}
	useCv := q.Process == Isochoric

	t1 := q.InletTemperatureC + air.KelvinOffset
	if t1 <= 0 {
		return nil, errors.InvalidTemperature(t1)
	}

	var p1, rho1, v1 float64

	switch {
	case q.NormVolumeFlow != nil:
		norm, ok := normConditions[q.Norm]
		if !ok {
			return nil, errors.Newf(errors.TypeInput, "unknown norm reference %q", q.Norm)
		}
		if q.Process == Isobaric {
			p1 = norm.pressurePa
			rho1 = p1 / (air.RSpecific * t1)
		} else {
			rho1 = norm.density
			p1 = rho1 * air.RSpecific * t1
		}
		v1 = *q.NormVolumeFlow * (norm.pressurePa / p1) * (t1 / norm.temperatureK)

	case q.VolumeFlow != nil:
		v1 = *q.VolumeFlow
		switch {
		case q.PressurePa != nil && q.Density == nil:
			p1 = *q.PressurePa
			rho1 = p1 / (air.RSpecific * t1)
		case q.Density != nil && q.PressurePa == nil:
			rho1 = *q.Density
			p1 = rho1 * air.RSpecific * t1
		case q.PressurePa != nil && q.Density != nil:
			p1 = *q.PressurePa
			rho1 = *q.Density
		default:
			return nil, errors.Input("inlet pressure or density required with a volume flow")
		}

	default:
		return nil, errors.Input("either a norm volume flow or an operating volume flow is required")
	}

	massFlow := rho1 * v1 / 3600.0

	// Resolve the outlet temperature, either given directly or from the
	// heating power via the 1 K forward search.
	var t2, powerKW float64
	switch {
	case q.OutletTemperatureC != nil:
		t2 = *q.OutletTemperatureC + air.KelvinOffset
		if t2 <= 0 {
			return nil, errors.InvalidTemperature(t2)
		}
		var err error
		powerKW, err = air.RequiredPower(t1, t2, massFlow, useCv)
		if err != nil {
			return nil, err
		}
		if q.PowerKW != nil {
			powerKW = *q.PowerKW
		}
	case q.PowerKW != nil:
		var err error
		t2, err = air.SolveOutletTemperature(t1, massFlow, *q.PowerKW, useCv, q.SolverMaxSteps)
		if err != nil {
			return nil, err
		}
		powerKW = *q.PowerKW
	default:
		return nil, errors.Input("either the outlet temperature or the heating power is required")
	}

	var p2, v2 float64
	if q.Process == Isobaric {
		p2 = p1
		v2 = v1 * (t2 / t1)
	} else {
		v2 = v1
		p2 = p1 * (t2 / t1)
	}
	rho2 := rho1 * (p2 / p1) * (t1 / t2)

	mu1, err := air.DynamicViscosity(t1)
	if err != nil {
		return nil, err
	}
	mu2, err := air.DynamicViscosity(t2)
	if err != nil {
		return nil, err
	}

	capacity := air.SpecificCp
	if useCv {
		capacity = air.SpecificCv
	}
	cap1, err := capacity(t1)
	if err != nil {
		return nil, err
	}
	cap2, err := capacity(t2)
	if err != nil {
		return nil, err
	}

	return &Result{
		P1:        p1,
		Rho1:      rho1,
		V1:        v1,
		Mu1:       mu1,
		C1:        speedOfSound(t1),
		MassFlow:  massFlow,
		P2:        p2,
		Rho2:      rho2,
		V2:        v2,
		Mu2:       mu2,
		C2:        speedOfSound(t2),
		MassFlow2: rho2 * v2 / 3600.0,
		Capacity1: cap1,
		Capacity2: cap2,
		PowerKW:   powerKW,

		OutletTemperatureC: t2 - air.KelvinOffset,
	}, nil
}

// speedOfSound returns the speed of sound of air at t (K), m/s.
func speedOfSound(t float64) float64 {
	return math.Sqrt(isentropicExponent * air.RSpecific * t)
}
