// Package air evaluates thermodynamic and transport properties of dry air
// and solves heating-power problems over temperature intervals.
package air

// Physical constants for dry air. Process-wide and immutable.
const (
	// RUniversal is the universal gas constant, J/(mol·K)
	RUniversal = 8.314462618

	// MolarMass is the molar mass of dry air, kg/mol
	MolarMass = 0.0289644

	// RSpecific is the specific gas constant of dry air, J/(kg·K)
	RSpecific = RUniversal / MolarMass

	// KelvinOffset converts between Celsius and Kelvin
	KelvinOffset = 273.15
)
