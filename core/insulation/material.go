// Package insulation models insulation materials with temperature-dependent
// conductivity and solves multi-layer heat conduction problems.
package insulation

// Measurement is one conductivity sample of a material: k at a temperature.
type Measurement struct {
	// TemperatureC is the measurement temperature, °C
	TemperatureC float64 `json:"temperature_c"`

	// Conductivity is the thermal conductivity at that temperature, W/(m·K)
	Conductivity float64 `json:"conductivity_w_mk"`
}

// Variant is a purchasable plate format of a material.
type Variant struct {
	// Name labels the variant, typically by thickness
	Name string `json:"name"`

	// ThicknessMM is the plate thickness, mm
	ThicknessMM float64 `json:"thickness_mm"`

	// LengthMM, WidthMM and HeightMM are the stock plate dimensions, mm
	LengthMM float64 `json:"length_mm"`
	WidthMM  float64 `json:"width_mm"`
	HeightMM float64 `json:"height_mm,omitempty"`

	// Price is the plate price per piece
	Price float64 `json:"price"`
}

// Material describes an insulation material and its measured k(T) points.
type Material struct {
	// Name identifies the material
	Name string `json:"name"`

	// ClassificationTempC is the maximum service temperature, °C
	ClassificationTempC float64 `json:"classification_temp_c"`

	// Density is the bulk density, kg/m³
	Density float64 `json:"density_kg_m3"`

	// Measurements are the k(T) sample points
	Measurements []Measurement `json:"measurements"`

	// Variants are the available plate formats
	Variants []Variant `json:"variants,omitempty"`
}

// Temperatures returns the measurement temperatures in declaration order.
func (m *Material) Temperatures() []float64 {
	out := make([]float64, len(m.Measurements))
	for i, p := range m.Measurements {
		out[i] = p.TemperatureC
	}
	return out
}

// Conductivities returns the measured conductivities in declaration order.
func (m *Material) Conductivities() []float64 {
	out := make([]float64, len(m.Measurements))
	for i, p := range m.Measurements {
		out[i] = p.Conductivity
	}
	return out
}
