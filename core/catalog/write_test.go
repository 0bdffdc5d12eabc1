package catalog

import (
	"testing"

	"thermo-calc/core/insulation"
)

func testMaterial() *insulation.Material {
	return &insulation.Material{
		Name:                "Ceramic Fiber Board",
		ClassificationTempC: 1100,
		Density:             300,
		Measurements: []insulation.Measurement{
			{TemperatureC: 200, Conductivity: 0.06},
			{TemperatureC: 400, Conductivity: 0.09},
			{TemperatureC: 600, Conductivity: 0.13},
		},
		Variants: []insulation.Variant{
			{Name: "50mm", ThicknessMM: 50, LengthMM: 1000, WidthMM: 610, Price: 42.5},
		},
	}
}

func TestEncodeHCLRoundTrip(t *testing.T) {
	want := testMaterial()

	src := EncodeHCL([]*insulation.Material{want})
	parsed, err := ParseHCL(src, "roundtrip.hcl")
	if err != nil {
		t.Fatalf("ParseHCL: %v\n%s", err, src)
	}
	if len(parsed) != 1 {
		t.Fatalf("expected 1 material, got %d", len(parsed))
	}

	got := parsed[0]
	if got.Name != want.Name {
		t.Errorf("name = %q, want %q", got.Name, want.Name)
	}
	if got.ClassificationTempC != want.ClassificationTempC {
		t.Errorf("classification temp = %v, want %v", got.ClassificationTempC, want.ClassificationTempC)
	}
	if len(got.Measurements) != len(want.Measurements) {
		t.Fatalf("expected %d measurements, got %d", len(want.Measurements), len(got.Measurements))
	}
	for i, p := range want.Measurements {
		if got.Measurements[i] != p {
			t.Errorf("measurement %d = %+v, want %+v", i, got.Measurements[i], p)
		}
	}
	if len(got.Variants) != 1 || got.Variants[0] != want.Variants[0] {
		t.Errorf("variants = %+v, want %+v", got.Variants, want.Variants)
	}
}

func TestSaveMaterialAndReload(t *testing.T) {
	dir := t.TempDir()

	path, err := SaveMaterial(dir, testMaterial())
	if err != nil {
		t.Fatalf("SaveMaterial: %v", err)
	}
	if want := "ceramic-fiber-board.hcl"; path != dir+"/"+want {
		t.Errorf("path = %q, want suffix %q", path, want)
	}

	cat, err := LoadDirectory(dir)
	if err != nil {
		t.Fatalf("LoadDirectory: %v", err)
	}
	if cat.Len() != 1 {
		t.Fatalf("expected 1 material in catalog, got %d", cat.Len())
	}
	if _, err := cat.Get("ceramic fiber board"); err != nil {
		t.Errorf("Get after reload: %v", err)
	}
}

func TestSaveMaterialRejectsEmptyName(t *testing.T) {
	if _, err := SaveMaterial(t.TempDir(), &insulation.Material{}); err == nil {
		t.Fatal("expected error for unnamed material")
	}
}

func TestSlug(t *testing.T) {
	cases := map[string]string{
		"Ceramic Fiber Board": "ceramic-fiber-board",
		"WDS Ultra":           "wds-ultra",
		"Rockwool 35/70":      "rockwool-35-70",
	}
	for in, want := range cases {
		if got := slug(in); got != want {
			t.Errorf("slug(%q) = %q, want %q", in, got, want)
		}
	}
}
