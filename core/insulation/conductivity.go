package insulation

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"thermo-calc/internal/errors"
)

// Curve is a fitted polynomial approximation of a material's thermal
// conductivity over temperature. The fit degree depends on the number of
// distinct measurement temperatures: quadratic for three or more, linear
// for two, constant for one.
type Curve struct {
	// coeffs holds the polynomial coefficients in ascending order
	coeffs []float64
}

// FitConductivity fits a conductivity curve to measurement points.
// Measurements at (nearly) the same temperature are averaged before
// fitting.
func FitConductivity(temps, conductivities []float64) (*Curve, error) {
	if len(temps) == 0 || len(conductivities) == 0 {
		return nil, errors.Input("no temperature or conductivity values given")
	}
	if len(temps) != len(conductivities) {
		return nil, errors.Input("temperature and conductivity counts differ")
	}

	ts, ks := dedupeSorted(temps, conductivities)

	degree := 2
	switch len(ts) {
	case 1:
		return &Curve{coeffs: []float64{ks[0]}}, nil
	case 2:
		degree = 1
	}

	coeffs, err := polyFit(ts, ks, degree)
	if err != nil {
		return nil, err
	}
	return &Curve{coeffs: coeffs}, nil
}

// At evaluates the fitted conductivity at a temperature, W/(m·K).
func (c *Curve) At(temperatureC float64) float64 {
	// Horner evaluation from the highest coefficient.
	v := 0.0
	for i := len(c.coeffs) - 1; i >= 0; i-- {
		v = v*temperatureC + c.coeffs[i]
	}
	return v
}

// dedupeSorted sorts the measurement points by temperature and merges
// points whose temperatures nearly coincide, averaging their
// conductivities.
func dedupeSorted(temps, conductivities []float64) ([]float64, []float64) {
	type point struct{ t, k float64 }
	points := make([]point, len(temps))
	for i := range temps {
		points[i] = point{temps[i], conductivities[i]}
	}
	sort.Slice(points, func(i, j int) bool { return points[i].t < points[j].t })

	var ts, ks []float64
	for i := 0; i < len(points); {
		j := i + 1
		sum := points[i].k
		for j < len(points) && nearlyEqual(points[j].t, points[i].t) {
			sum += points[j].k
			j++
		}
		ts = append(ts, points[i].t)
		ks = append(ks, sum/float64(j-i))
		i = j
	}
	return ts, ks
}

// nearlyEqual treats temperatures as the same measurement point when they
// agree within a small absolute and relative tolerance.
func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) <= 1e-8+1e-5*math.Abs(b)
}

// polyFit computes a least-squares polynomial fit of the given degree,
// returning coefficients in ascending order.
func polyFit(xs, ys []float64, degree int) ([]float64, error) {
	n := len(xs)

	vandermonde := mat.NewDense(n, degree+1, nil)
	for i, x := range xs {
		v := 1.0
		for j := 0; j <= degree; j++ {
			vandermonde.Set(i, j, v)
			v *= x
		}
	}
	rhs := mat.NewVecDense(n, ys)

	var solution mat.VecDense
	if err := solution.SolveVec(vandermonde, rhs); err != nil {
		return nil, errors.Wrap(errors.TypeInternal, "conductivity fit failed", err)
	}

	coeffs := make([]float64, degree+1)
	for j := range coeffs {
		coeffs[j] = solution.AtVec(j)
	}
	return coeffs, nil
}
