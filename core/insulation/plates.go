package insulation

import (
	"github.com/shopspring/decimal"

	"thermo-calc/internal/errors"
)

// DimensionReference states whether box dimensions describe the outside or
// the inside of the insulation.
type DimensionReference string

const (
	// OuterDimensions means the given L/W/H are outside measurements
	OuterDimensions DimensionReference = "outer"

	// InnerDimensions means the given L/W/H are inside measurements
	InnerDimensions DimensionReference = "inner"
)

// Plate is one cut plate of an insulation layer.
type Plate struct {
	// Position names the plate's face: top, bottom, front, back, right, left
	Position string `json:"position"`

	// Length, Width and Thickness are the cut dimensions, mm
	Length    float64 `json:"length_mm"`
	Width     float64 `json:"width_mm"`
	Thickness float64 `json:"thickness_mm"`
}

// LayerPlates are the six plates of one insulation layer.
type LayerPlates struct {
	// LayerIndex counts layers from the inside out, starting at 1
	LayerIndex int `json:"layer_index"`

	// ThicknessMM is the layer thickness, mm
	ThicknessMM float64 `json:"thickness_mm"`

	// Plates are the six box faces of this layer
	Plates []Plate `json:"plates"`
}

// BuildResult describes the full plate layout of a boxed insulation.
type BuildResult struct {
	// Outer box dimensions, mm
	OuterLength float64 `json:"outer_length_mm"`
	OuterWidth  float64 `json:"outer_width_mm"`
	OuterHeight float64 `json:"outer_height_mm"`

	// Inner box dimensions, mm
	InnerLength float64 `json:"inner_length_mm"`
	InnerWidth  float64 `json:"inner_width_mm"`
	InnerHeight float64 `json:"inner_height_mm"`

	// Layers lists the plates per layer, inside out
	Layers []LayerPlates `json:"layers"`
}

// PlateDimensions computes the plate cut list for a box insulated with the
// given layer thicknesses (mm, inside out). The reference states whether
// length/width/height describe the outer or the inner box; the relation
// inner + 2·Σt = outer holds either way.
func PlateDimensions(thicknesses []float64, ref DimensionReference, length, width, height float64) (*BuildResult, error) {
	for _, t := range thicknesses {
		if t < 0 {
			return nil, errors.Input("layer thicknesses must be non-negative")
		}
	}

	var total float64
	for _, t := range thicknesses {
		total += t
	}

	var outerL, outerW, outerH, innerL, innerW, innerH float64
	switch ref {
	case OuterDimensions:
		outerL, outerW, outerH = length, width, height
		innerL, innerW, innerH = outerL-2*total, outerW-2*total, outerH-2*total
		if innerL <= 0 || innerW <= 0 || innerH <= 0 {
			return nil, errors.Input("outer dimensions too small for the summed layer thicknesses")
		}
	case InnerDimensions:
		innerL, innerW, innerH = length, width, height
		outerL, outerW, outerH = innerL+2*total, innerW+2*total, innerH+2*total
	default:
		return nil, errors.Newf(errors.TypeInput, "unknown dimension reference %q", ref)
	}

	result := &BuildResult{
		OuterLength: outerL,
		OuterWidth:  outerW,
		OuterHeight: outerH,
		InnerLength: innerL,
		InnerWidth:  innerW,
		InnerHeight: innerH,
	}

	cumBefore := 0.0 // Σ t_k for k < i
	for i, t := range thicknesses {
		cumThrough := cumBefore + t // Σ t_k for k <= i

		topBottomL := outerL - 2*cumBefore
		topBottomW := outerW - 2*cumBefore
		frontBackL := outerH - 2*cumThrough
		frontBackW := outerW - 2*cumBefore
		rightLeftL := outerL - 2*cumThrough
		rightLeftW := outerH - 2*cumThrough

		for _, dim := range []float64{topBottomL, topBottomW, frontBackL, frontBackW, rightLeftL, rightLeftW} {
			if dim <= 0 {
				return nil, errors.Newf(errors.TypeInput, "layer %d: plate dimension would be non-positive", i+1)
			}
		}

		result.Layers = append(result.Layers, LayerPlates{
			LayerIndex:  i + 1,
			ThicknessMM: t,
			Plates: []Plate{
				{Position: "top", Length: topBottomL, Width: topBottomW, Thickness: t},
				{Position: "bottom", Length: topBottomL, Width: topBottomW, Thickness: t},
				{Position: "front", Length: frontBackL, Width: frontBackW, Thickness: t},
				{Position: "back", Length: frontBackL, Width: frontBackW, Thickness: t},
				{Position: "right", Length: rightLeftL, Width: rightLeftW, Thickness: t},
				{Position: "left", Length: rightLeftL, Width: rightLeftW, Thickness: t},
			},
		})

		cumBefore = cumThrough
	}

	return result, nil
}

// CostSummary prices a plate cut list against a material's plate format.
// Each cut plate consumes at least one stock plate; plates larger than the
// stock format are rejected. The total is computed in exact decimals.
type CostSummary struct {
	// PlateCount is the number of stock plates consumed
	PlateCount int `json:"plate_count"`

	// Total is the summed price of the consumed stock plates
	Total decimal.Decimal `json:"total"`
}

// EstimateCost prices all plates of a build against one material variant.
func EstimateCost(build *BuildResult, variant Variant) (*CostSummary, error) {
	if variant.LengthMM <= 0 || variant.WidthMM <= 0 {
		return nil, errors.Input("variant plate format must be positive")
	}

	price := decimal.NewFromFloat(variant.Price)
	total := decimal.Zero
	count := 0

	for _, layer := range build.Layers {
		for _, plate := range layer.Plates {
			if !fitsFormat(plate, variant) {
				return nil, errors.Newf(errors.TypeInput,
					"plate %s of layer %d exceeds the %s stock format", plate.Position, layer.LayerIndex, variant.Name)
			}
			total = total.Add(price)
			count++
		}
	}

	return &CostSummary{PlateCount: count, Total: total}, nil
}

// fitsFormat checks whether a cut plate fits a stock plate, allowing a
// 90° rotation.
func fitsFormat(plate Plate, variant Variant) bool {
	if plate.Length <= variant.LengthMM && plate.Width <= variant.WidthMM {
		return true
	}
	return plate.Width <= variant.LengthMM && plate.Length <= variant.WidthMM
}
