package insulation

import (
	"testing"
)

func TestPlateDimensionsFromOuter(t *testing.T) {
	res, err := PlateDimensions([]float64{50, 50}, OuterDimensions, 1000, 1000, 1000)
	if err != nil {
		t.Fatalf("PlateDimensions returned error: %v", err)
	}

	if res.InnerLength != 800 || res.InnerWidth != 800 || res.InnerHeight != 800 {
		t.Errorf("inner dimensions = %v/%v/%v, want 800/800/800",
			res.InnerLength, res.InnerWidth, res.InnerHeight)
	}
	if len(res.Layers) != 2 {
		t.Fatalf("layer count = %d, want 2", len(res.Layers))
	}

	// First (innermost-referenced) layer: top/bottom span the full outer
	// face, front/back and right/left recede by the layer thickness.
	first := res.Layers[0]
	if p := first.Plates[0]; p.Length != 1000 || p.Width != 1000 || p.Thickness != 50 {
		t.Errorf("top plate = %+v, want 1000x1000x50", p)
	}
	if p := first.Plates[2]; p.Length != 900 || p.Width != 1000 {
		t.Errorf("front plate = %+v, want 900x1000", p)
	}
	if p := first.Plates[4]; p.Length != 900 || p.Width != 900 {
		t.Errorf("right plate = %+v, want 900x900", p)
	}

	second := res.Layers[1]
	if p := second.Plates[0]; p.Length != 900 || p.Width != 900 {
		t.Errorf("second layer top plate = %+v, want 900x900", p)
	}
	if p := second.Plates[2]; p.Length != 800 || p.Width != 900 {
		t.Errorf("second layer front plate = %+v, want 800x900", p)
	}
}

func TestPlateDimensionsFromInner(t *testing.T) {
	res, err := PlateDimensions([]float64{50}, InnerDimensions, 500, 500, 500)
	if err != nil {
		t.Fatalf("PlateDimensions returned error: %v", err)
	}

	if res.OuterLength != 600 || res.OuterWidth != 600 || res.OuterHeight != 600 {
		t.Errorf("outer dimensions = %v/%v/%v, want 600/600/600",
			res.OuterLength, res.OuterWidth, res.OuterHeight)
	}
}

func TestPlateDimensionsTooThick(t *testing.T) {
	if _, err := PlateDimensions([]float64{300, 300}, OuterDimensions, 1000, 1000, 1000); err == nil {
		t.Error("expected error for layers thicker than the box, got none")
	}
	if _, err := PlateDimensions([]float64{-10}, OuterDimensions, 1000, 1000, 1000); err == nil {
		t.Error("expected error for negative thickness, got none")
	}
}

func TestEstimateCost(t *testing.T) {
	build, err := PlateDimensions([]float64{50}, OuterDimensions, 1000, 800, 600)
	if err != nil {
		t.Fatalf("PlateDimensions returned error: %v", err)
	}

	variant := Variant{Name: "50mm", ThicknessMM: 50, LengthMM: 1000, WidthMM: 1000, Price: 12.5}
	summary, err := EstimateCost(build, variant)
	if err != nil {
		t.Fatalf("EstimateCost returned error: %v", err)
	}

	if summary.PlateCount != 6 {
		t.Errorf("PlateCount = %d, want 6", summary.PlateCount)
	}
	if got := summary.Total.String(); got != "75" {
		t.Errorf("Total = %s, want 75", got)
	}
}

func TestEstimateCostPlateTooLarge(t *testing.T) {
	build, err := PlateDimensions([]float64{50}, OuterDimensions, 2000, 2000, 2000)
	if err != nil {
		t.Fatalf("PlateDimensions returned error: %v", err)
	}

	variant := Variant{Name: "50mm", ThicknessMM: 50, LengthMM: 1000, WidthMM: 1000, Price: 12.5}
	if _, err := EstimateCost(build, variant); err == nil {
		t.Error("expected error for oversized plate, got none")
	}
}
