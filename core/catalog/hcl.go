package catalog

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"go.uber.org/zap"

	"thermo-calc/core/insulation"
	"thermo-calc/internal/errors"
	"thermo-calc/internal/logging"
)

// HCL schema of a material definition file:
//
//	material "ceramic fiber board" {
//	  classification_temp = 1100
//	  density             = 300
//
//	  measurement {
//	    temperature  = 200
//	    conductivity = 0.06
//	  }
//
//	  variant "50mm" {
//	    thickness = 50
//	    length    = 1000
//	    width     = 610
//	    price     = 42.50
//	  }
//	}
type materialFile struct {
	Materials []materialBlock `hcl:"material,block"`
}

type materialBlock struct {
	Name               string             `hcl:"name,label"`
	ClassificationTemp float64            `hcl:"classification_temp,optional"`
	Density            float64            `hcl:"density,optional"`
	Measurements       []measurementBlock `hcl:"measurement,block"`
	Variants           []variantBlock     `hcl:"variant,block"`
}

type measurementBlock struct {
	Temperature  float64 `hcl:"temperature"`
	Conductivity float64 `hcl:"conductivity"`
}

type variantBlock struct {
	Name      string  `hcl:"name,label"`
	Thickness float64 `hcl:"thickness"`
	Length    float64 `hcl:"length,optional"`
	Width     float64 `hcl:"width,optional"`
	Height    float64 `hcl:"height,optional"`
	Price     float64 `hcl:"price,optional"`
}

// ParseHCL decodes material definitions from HCL source.
func ParseHCL(src []byte, filename string) ([]*insulation.Material, error) {
	parser := hclparse.NewParser()

	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing("invalid material definition", diags)
	}

	var decoded materialFile
	if diags := gohcl.DecodeBody(file.Body, nil, &decoded); diags.HasErrors() {
		return nil, errors.Parsing("invalid material definition", diags)
	}

	materials := make([]*insulation.Material, 0, len(decoded.Materials))
	for _, block := range decoded.Materials {
		if len(block.Measurements) == 0 {
			return nil, errors.Newf(errors.TypeParsing,
				"%s: material %q has no measurement blocks", filename, block.Name)
		}

		m := &insulation.Material{
			Name:                block.Name,
			ClassificationTempC: block.ClassificationTemp,
			Density:             block.Density,
		}
		for _, point := range block.Measurements {
			m.Measurements = append(m.Measurements, insulation.Measurement{
				TemperatureC: point.Temperature,
				Conductivity: point.Conductivity,
			})
		}
		for _, variant := range block.Variants {
			m.Variants = append(m.Variants, insulation.Variant{
				Name:        variant.Name,
				ThicknessMM: variant.Thickness,
				LengthMM:    variant.Length,
				WidthMM:     variant.Width,
				HeightMM:    variant.Height,
				Price:       variant.Price,
			})
		}
		materials = append(materials, m)
	}

	return materials, nil
}

// LoadDirectory builds a catalog from all *.hcl files in a directory.
// A missing directory yields an empty catalog.
func LoadDirectory(dir string) (*Catalog, error) {
	c := New()

	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			logging.Debug("material directory absent", zap.String("dir", dir))
			return c, nil
		}
		return nil, err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".hcl") {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}

		materials, err := ParseHCL(src, path)
		if err != nil {
			return nil, err
		}
		for _, m := range materials {
			if err := c.Add(m); err != nil {
				return nil, errors.Wrapf(errors.TypeParsing, err, "%s", path)
			}
		}
	}

	logging.Info("material catalog loaded",
		zap.String("dir", dir),
		zap.Int("materials", c.Len()))

	return c, nil
}
