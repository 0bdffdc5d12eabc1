package insulation

import (
	"math"
	"testing"

	"thermo-calc/internal/errors"
)

func constantMaterial(name string, k float64) *Material {
	return &Material{
		Name:         name,
		Measurements: []Measurement{{TemperatureC: 400, Conductivity: k}},
	}
}

// TestSolveConstantConductivity checks the solver against the closed-form
// solution for a single layer with constant k:
// R = d/k + 1/h, q = ΔT / R.
func TestSolveConstantConductivity(t *testing.T) {
	layers := []Layer{{ThicknessMM: 50, Material: constantMaterial("calcium silicate", 0.1)}}

	res, err := Solve(layers, 500, 20, 10, Options{})
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}

	wantR := 0.05/0.1 + 1.0/10.0 // 0.6 m²K/W
	if math.Abs(res.TotalResistance-wantR) > 1e-12 {
		t.Errorf("TotalResistance = %v, want %v", res.TotalResistance, wantR)
	}

	wantQ := (500.0 - 20.0) / wantR // 800 W/m²
	if math.Abs(res.HeatFlux-wantQ) > 1e-9 {
		t.Errorf("HeatFlux = %v, want %v", res.HeatFlux, wantQ)
	}

	if len(res.InterfaceTemperaturesC) != 2 {
		t.Fatalf("interface count = %d, want 2", len(res.InterfaceTemperaturesC))
	}
	if res.InterfaceTemperaturesC[0] != 500 {
		t.Errorf("hot face = %v, want 500", res.InterfaceTemperaturesC[0])
	}
	wantCold := 500 - wantQ*0.5
	if math.Abs(res.InterfaceTemperaturesC[1]-wantCold) > 1e-9 {
		t.Errorf("cold surface = %v, want %v", res.InterfaceTemperaturesC[1], wantCold)
	}

	// With constant k the second pass reproduces the first exactly.
	if res.Iterations != 2 {
		t.Errorf("Iterations = %d, want 2", res.Iterations)
	}
}

func TestSolveTemperatureDependentConductivity(t *testing.T) {
	fiber := &Material{
		Name: "ceramic fiber",
		Measurements: []Measurement{
			{TemperatureC: 200, Conductivity: 0.06},
			{TemperatureC: 400, Conductivity: 0.09},
			{TemperatureC: 600, Conductivity: 0.14},
		},
	}
	board := &Material{
		Name: "backing board",
		Measurements: []Measurement{
			{TemperatureC: 100, Conductivity: 0.05},
			{TemperatureC: 300, Conductivity: 0.07},
		},
	}

	res, err := Solve([]Layer{
		{ThicknessMM: 100, Material: fiber},
		{ThicknessMM: 50, Material: board},
	}, 600, 25, 8, Options{})
	if err != nil {
		t.Fatalf("Solve returned error: %v", err)
	}

	if res.HeatFlux <= 0 {
		t.Errorf("HeatFlux = %v, want > 0", res.HeatFlux)
	}

	// Temperatures must fall monotonically from the hot face outwards.
	temps := res.InterfaceTemperaturesC
	if len(temps) != 3 {
		t.Fatalf("interface count = %d, want 3", len(temps))
	}
	for i := 1; i < len(temps); i++ {
		if temps[i] >= temps[i-1] {
			t.Errorf("interface %d: %v not below %v", i, temps[i], temps[i-1])
		}
	}

	// The cold surface must still sit above ambient.
	if temps[len(temps)-1] <= 25 {
		t.Errorf("cold surface = %v, want > ambient", temps[len(temps)-1])
	}

	if res.Iterations < 1 || res.Iterations > DefaultMaxIterations {
		t.Errorf("Iterations = %d, out of range", res.Iterations)
	}
}

func TestSolveDoesNotConverge(t *testing.T) {
	layers := []Layer{{ThicknessMM: 50, Material: constantMaterial("board", 0.1)}}

	// One iteration can never satisfy the tolerance: the first pass always
	// moves the layer average away from the hot-face initialisation.
	_, err := Solve(layers, 500, 20, 10, Options{MaxIterations: 1})
	if err == nil {
		t.Fatal("expected convergence error, got none")
	}
	if !errors.IsType(err, errors.TypeConvergence) {
		t.Errorf("error type = %v, want %v", err, errors.TypeConvergence)
	}
}

func TestSolveInputValidation(t *testing.T) {
	valid := []Layer{{ThicknessMM: 50, Material: constantMaterial("board", 0.1)}}

	if _, err := Solve(nil, 500, 20, 10, Options{}); err == nil {
		t.Error("expected error for empty layer stack, got none")
	}
	if _, err := Solve(valid, 500, 20, 0, Options{}); err == nil {
		t.Error("expected error for zero film coefficient, got none")
	}
	if _, err := Solve([]Layer{{ThicknessMM: 0, Material: constantMaterial("board", 0.1)}}, 500, 20, 10, Options{}); err == nil {
		t.Error("expected error for zero thickness, got none")
	}
	if _, err := Solve([]Layer{{ThicknessMM: 50}}, 500, 20, 10, Options{}); err == nil {
		t.Error("expected error for missing material, got none")
	}
}
