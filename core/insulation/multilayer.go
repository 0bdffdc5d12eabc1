package insulation

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"thermo-calc/internal/errors"
)

// Defaults for the multi-layer iteration.
const (
	// DefaultToleranceK is the layer-temperature convergence tolerance, K
	DefaultToleranceK = 0.5

	// DefaultMaxIterations bounds the fixed-point iteration
	DefaultMaxIterations = 100
)

// Layer is one insulation layer of a multi-layer wall.
type Layer struct {
	// ThicknessMM is the layer thickness, mm
	ThicknessMM float64

	// Material supplies the k(T) measurement points
	Material *Material
}

// Options tunes the multi-layer solver. Zero values select the defaults.
type Options struct {
	// ToleranceK is the convergence tolerance on layer temperatures, K
	ToleranceK float64

	// MaxIterations bounds the iteration count
	MaxIterations int
}

// Result holds the converged solution of a multi-layer conduction problem.
type Result struct {
	// HeatFlux is the heat flux through the wall, W/m²
	HeatFlux float64 `json:"heat_flux_w_m2"`

	// TotalResistance is the area-specific thermal resistance including
	// the outer film, m²·K/W
	TotalResistance float64 `json:"total_resistance_m2k_w"`

	// InterfaceTemperaturesC has len(layers)+1 entries from the hot face
	// to the cold surface, °C
	InterfaceTemperaturesC []float64 `json:"interface_temperatures_c"`

	// LayerMeanTemperaturesC are the converged layer averages, °C
	LayerMeanTemperaturesC []float64 `json:"layer_mean_temperatures_c"`

	// LayerConductivities are the converged layer-averaged k values, W/(m·K)
	LayerConductivities []float64 `json:"layer_conductivities_w_mk"`

	// Iterations is the number of iterations until convergence
	Iterations int `json:"iterations"`
}

// Solve computes the steady-state heat flux and temperature profile through
// a stack of insulation layers with temperature-dependent conductivity.
//
// The hot face is held at hotFaceC, heat leaves the cold surface into
// ambientC through the convective film coefficient h (W/(m²·K)). Each
// layer is discretised in 1 mm steps with a linear local temperature
// profile; the layer-averaged conductivities feed the next iteration until
// the layer mean temperatures settle within the tolerance.
func Solve(layers []Layer, hotFaceC, ambientC, h float64, opt Options) (*Result, error) {
	if len(layers) == 0 {
		return nil, errors.Input("at least one layer is required")
	}
	if h <= 0 {
		return nil, errors.Input("film coefficient must be positive")
	}

	tolerance := opt.ToleranceK
	if tolerance <= 0 {
		tolerance = DefaultToleranceK
	}
	maxIterations := opt.MaxIterations
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}

	n := len(layers)
	thicknessM := make([]float64, n)
	curves := make([]*Curve, n)
	ks := make([]float64, n)

	for i, layer := range layers {
		if layer.ThicknessMM <= 0 {
			return nil, errors.Newf(errors.TypeInput, "layer %d: thickness must be positive", i+1)
		}
		if layer.Material == nil || len(layer.Material.Measurements) == 0 {
			return nil, errors.Newf(errors.TypeInput, "layer %d: material measurements missing", i+1)
		}

		thicknessM[i] = layer.ThicknessMM / 1000.0

		curve, err := FitConductivity(layer.Material.Temperatures(), layer.Material.Conductivities())
		if err != nil {
			return nil, err
		}
		curves[i] = curve

		// Measured mean as the starting conductivity.
		ks[i] = stat.Mean(layer.Material.Conductivities(), nil)
	}

	tAvgOld := make([]float64, n)
	for i := range tAvgOld {
		tAvgOld[i] = hotFaceC
	}

	rLayers := make([]float64, n)
	tAvgNew := make([]float64, n)
	kAvgNew := make([]float64, n)

	for iteration := 1; iteration <= maxIterations; iteration++ {
		for i := range rLayers {
			rLayers[i] = thicknessM[i] / ks[i]
		}
		rTotal := floats.Sum(rLayers) + 1.0/h
		q := (hotFaceC - ambientC) / rTotal

		interfaces := make([]float64, n+1)
		interfaces[0] = hotFaceC
		for i, r := range rLayers {
			interfaces[i+1] = interfaces[i] - q*r
		}

		// 1 mm discretisation with a linear local profile per layer.
		for i := range layers {
			steps := int(math.Round(layers[i].ThicknessMM))
			if steps < 1 {
				steps = 1
			}

			local := localProfile(interfaces[i], interfaces[i+1], steps)
			kLocal := make([]float64, len(local))
			for j, t := range local {
				kLocal[j] = curves[i].At(t)
			}

			tAvgNew[i] = stat.Mean(local, nil)
			kAvgNew[i] = stat.Mean(kLocal, nil)
		}

		delta := 0.0
		for i := range tAvgNew {
			if d := math.Abs(tAvgNew[i] - tAvgOld[i]); d > delta {
				delta = d
			}
		}

		if delta <= tolerance {
			return &Result{
				HeatFlux:               q,
				TotalResistance:        rTotal,
				InterfaceTemperaturesC: interfaces,
				LayerMeanTemperaturesC: append([]float64(nil), tAvgNew...),
				LayerConductivities:    append([]float64(nil), kAvgNew...),
				Iterations:             iteration,
			}, nil
		}

		copy(ks, kAvgNew)
		copy(tAvgOld, tAvgNew)
	}

	return nil, errors.DidNotConverge("multi-layer conduction", maxIterations)
}

// localProfile returns n linearly spaced temperatures from left to right
// inclusive.
func localProfile(left, right float64, n int) []float64 {
	if n == 1 {
		return []float64{left}
	}
	return floats.Span(make([]float64, n), left, right)
}
