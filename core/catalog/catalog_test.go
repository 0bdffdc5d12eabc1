package catalog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"thermo-calc/core/insulation"
	"thermo-calc/internal/errors"
)

const sampleHCL = `
material "ceramic fiber board" {
  classification_temp = 1100
  density             = 300

  measurement {
    temperature  = 200
    conductivity = 0.06
  }

  measurement {
    temperature  = 400
    conductivity = 0.09
  }

  measurement {
    temperature  = 600
    conductivity = 0.14
  }

  variant "50mm" {
    thickness = 50
    length    = 1000
    width     = 610
    price     = 42.50
  }
}

material "calcium silicate" {
  classification_temp = 1000
  density             = 240

  measurement {
    temperature  = 300
    conductivity = 0.08
  }
}
`

func TestParseHCL(t *testing.T) {
	materials, err := ParseHCL([]byte(sampleHCL), "materials.hcl")
	if err != nil {
		t.Fatalf("ParseHCL returned error: %v", err)
	}
	if len(materials) != 2 {
		t.Fatalf("material count = %d, want 2", len(materials))
	}

	fiber := materials[0]
	if fiber.Name != "ceramic fiber board" {
		t.Errorf("Name = %q, want %q", fiber.Name, "ceramic fiber board")
	}
	if fiber.ClassificationTempC != 1100 {
		t.Errorf("ClassificationTempC = %v, want 1100", fiber.ClassificationTempC)
	}
	if len(fiber.Measurements) != 3 {
		t.Fatalf("measurement count = %d, want 3", len(fiber.Measurements))
	}
	if fiber.Measurements[1].Conductivity != 0.09 {
		t.Errorf("second conductivity = %v, want 0.09", fiber.Measurements[1].Conductivity)
	}
	if len(fiber.Variants) != 1 || fiber.Variants[0].Price != 42.5 {
		t.Errorf("variants = %+v, want one 42.50 variant", fiber.Variants)
	}
}

func TestParseHCLRejectsMissingMeasurements(t *testing.T) {
	src := `material "empty" {}`
	if _, err := ParseHCL([]byte(src), "bad.hcl"); err == nil {
		t.Error("expected error for material without measurements, got none")
	}
}

func TestParseHCLSyntaxError(t *testing.T) {
	_, err := ParseHCL([]byte(`material "x" {`), "broken.hcl")
	if err == nil {
		t.Fatal("expected parse error, got none")
	}
	if !errors.IsType(err, errors.TypeParsing) {
		t.Errorf("error type = %v, want %v", err, errors.TypeParsing)
	}
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "materials.hcl"), []byte(sampleHCL), 0644); err != nil {
		t.Fatal(err)
	}
	// Non-HCL files are ignored.
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("scratch"), 0644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadDirectory(dir)
	if err != nil {
		t.Fatalf("LoadDirectory returned error: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("Len = %d, want 2", c.Len())
	}

	m, err := c.Get("Calcium Silicate")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if m.Density != 240 {
		t.Errorf("Density = %v, want 240", m.Density)
	}
}

func TestLoadDirectoryMissing(t *testing.T) {
	c, err := LoadDirectory(filepath.Join(t.TempDir(), "does-not-exist"))
	if err != nil {
		t.Fatalf("LoadDirectory returned error: %v", err)
	}
	if c.Len() != 0 {
		t.Errorf("Len = %d, want 0", c.Len())
	}
}

func TestCatalogAddRejectsDuplicates(t *testing.T) {
	c := New()
	m := &insulation.Material{Name: "Board"}

	if err := c.Add(m); err != nil {
		t.Fatalf("Add returned error: %v", err)
	}
	if err := c.Add(&insulation.Material{Name: "board"}); err == nil {
		t.Error("expected duplicate error, got none")
	}
	if err := c.Put(&insulation.Material{Name: "board", Density: 100}); err != nil {
		t.Fatalf("Put returned error: %v", err)
	}

	got, err := c.Get("BOARD")
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if got.Density != 100 {
		t.Errorf("Density = %v, want the replaced material", got.Density)
	}
}

func TestCatalogListSorted(t *testing.T) {
	c := New()
	for _, name := range []string{"Vermiculite", "Aerogel", "Mineral wool"} {
		if err := c.Add(&insulation.Material{Name: name}); err != nil {
			t.Fatal(err)
		}
	}

	list := c.List()
	want := []string{"Aerogel", "Mineral wool", "Vermiculite"}
	for i, m := range list {
		if m.Name != want[i] {
			t.Errorf("List[%d] = %q, want %q", i, m.Name, want[i])
		}
	}
}

func TestCSVRoundTrip(t *testing.T) {
	original := []*insulation.Material{
		{
			Name:                "ceramic fiber board",
			ClassificationTempC: 1100,
			Density:             300,
			Measurements: []insulation.Measurement{
				{TemperatureC: 200, Conductivity: 0.06},
				{TemperatureC: 400, Conductivity: 0.09},
			},
			Variants: []insulation.Variant{
				{Name: "25mm", ThicknessMM: 25, LengthMM: 1000, WidthMM: 610, Price: 28},
				{Name: "50mm", ThicknessMM: 50, LengthMM: 1000, WidthMM: 610, Price: 42.5},
			},
		},
	}

	var buf bytes.Buffer
	if err := ExportCSV(&buf, original); err != nil {
		t.Fatalf("ExportCSV returned error: %v", err)
	}

	imported, err := ImportCSV(&buf)
	if err != nil {
		t.Fatalf("ImportCSV returned error: %v", err)
	}
	if len(imported) != 1 {
		t.Fatalf("material count = %d, want 1", len(imported))
	}

	m := imported[0]
	if m.Name != original[0].Name || m.Density != 300 {
		t.Errorf("imported material = %+v, want original family data", m)
	}
	if len(m.Measurements) != 2 || m.Measurements[1].TemperatureC != 400 {
		t.Errorf("measurements = %+v, want two points", m.Measurements)
	}
	if len(m.Variants) != 2 || m.Variants[1].Price != 42.5 {
		t.Errorf("variants = %+v, want two variants", m.Variants)
	}
}

func TestImportCSVValidation(t *testing.T) {
	missingName := "name,classification_temp,density,temps,ks,variant_name,thickness,length,width,height,price\n" +
		",,,200;400,0.06;0.09,,,,,,\n"
	if _, err := ImportCSV(strings.NewReader(missingName)); err == nil {
		t.Error("expected error for missing name, got none")
	}

	lengthMismatch := "name,classification_temp,density,temps,ks,variant_name,thickness,length,width,height,price\n" +
		"board,,,200;400,0.06,,,,,,\n"
	if _, err := ImportCSV(strings.NewReader(lengthMismatch)); err == nil {
		t.Error("expected error for temps/ks length mismatch, got none")
	}
}
