package air

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"thermo-calc/internal/errors"
)

// DefaultOutletMaxSteps bounds the forward 1 K search of
// SolveOutletTemperature when no explicit limit is given.
const DefaultOutletMaxSteps = 100000

// capacityFunc selects between SpecificCp and SpecificCv.
func capacityFunc(useCv bool) func(float64) (float64, error) {
	if useCv {
		return SpecificCv
	}
	return SpecificCp
}

// meanCapacity samples the capacity function at 1 K steps from t1 up to and
// including t2 (for integer-width spans) and returns the unweighted
// arithmetic mean. The sampling grid starts at t1 and stops before t2+1,
// which is the precision the whole solver is specified against.
func meanCapacity(t1, t2 float64, useCv bool) (float64, error) {
	capacity := capacityFunc(useCv)

	samples := make([]float64, 0, int(t2-t1)+1)
	for t := t1; t < t2+1; t++ {
		c, err := capacity(t)
		if err != nil {
			return 0, err
		}
		samples = append(samples, c)
	}

	return stat.Mean(samples, nil), nil
}

// RequiredPower returns the heating power in kW needed to bring a mass flow
// of dry air (kg/s) from t1 to t2 (K):
//
//	Q = m · c_mean(t1,t2) · (t2 - t1) / 1000
//
// c_mean is the 1 K interval-averaged Cp (or Cv when useCv is set).
// t2 == t1 yields zero power; t2 < t1 is an invalid interval.
func RequiredPower(t1, t2, massFlow float64, useCv bool) (float64, error) {
	if err := validateTemperature(t1); err != nil {
		return 0, err
	}
	if err := validateTemperature(t2); err != nil {
		return 0, err
	}
	if math.IsNaN(massFlow) || math.IsInf(massFlow, 0) {
		return 0, errors.Input("mass flow must be finite")
	}
	if t2 < t1 {
		return 0, errors.InvalidInterval(t1, t2)
	}
	if t2 == t1 {
		return 0, nil
	}

	mean, err := meanCapacity(t1, t2, useCv)
	if err != nil {
		return 0, err
	}

	return massFlow * mean * (t2 - t1) / 1000.0, nil
}

// SolveOutletTemperature returns the smallest integer-stepped outlet
// temperature t2 > t1 (K) at which the interval-averaged heating power
// reaches or exceeds targetKW. The search advances in 1 K steps and
// re-averages the full [t1, t2] window each step, so the returned value is
// exactly the first crossing of the naive forward search.
//
// maxSteps bounds the search (DefaultOutletMaxSteps when <= 0). A
// non-positive mass flow or capacity can never reach a positive target;
// the bound turns that into a convergence error instead of a hang.
func SolveOutletTemperature(t1, massFlow, targetKW float64, useCv bool, maxSteps int) (float64, error) {
	if err := validateTemperature(t1); err != nil {
		return 0, err
	}
	if math.IsNaN(massFlow) || math.IsInf(massFlow, 0) {
		return 0, errors.Input("mass flow must be finite")
	}
	if math.IsNaN(targetKW) || math.IsInf(targetKW, 0) || targetKW <= 0 {
		return 0, errors.Input("target power must be finite and positive")
	}
	if maxSteps <= 0 {
		maxSteps = DefaultOutletMaxSteps
	}

	t2 := t1
	for step := 0; step < maxSteps; step++ {
		t2 += 1.0

		q, err := RequiredPower(t1, t2, massFlow, useCv)
		if err != nil {
			return 0, err
		}
		if q >= targetKW {
			return t2, nil
		}
	}

	return 0, errors.DidNotConverge("outlet temperature search", maxSteps)
}
