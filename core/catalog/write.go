package catalog

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"thermo-calc/core/insulation"
	"thermo-calc/internal/errors"
)

// EncodeHCL renders materials in the catalog file schema.
func EncodeHCL(materials []*insulation.Material) []byte {
	file := hclwrite.NewEmptyFile()
	body := file.Body()

	for i, m := range materials {
		if i > 0 {
			body.AppendNewline()
		}
		block := body.AppendNewBlock("material", []string{m.Name})
		mb := block.Body()
		mb.SetAttributeValue("classification_temp", cty.NumberFloatVal(m.ClassificationTempC))
		mb.SetAttributeValue("density", cty.NumberFloatVal(m.Density))

		for _, p := range m.Measurements {
			mb.AppendNewline()
			pb := mb.AppendNewBlock("measurement", nil).Body()
			pb.SetAttributeValue("temperature", cty.NumberFloatVal(p.TemperatureC))
			pb.SetAttributeValue("conductivity", cty.NumberFloatVal(p.Conductivity))
		}

		for _, v := range m.Variants {
			mb.AppendNewline()
			vb := mb.AppendNewBlock("variant", []string{v.Name}).Body()
			vb.SetAttributeValue("thickness", cty.NumberFloatVal(v.ThicknessMM))
			vb.SetAttributeValue("length", cty.NumberFloatVal(v.LengthMM))
			vb.SetAttributeValue("width", cty.NumberFloatVal(v.WidthMM))
			if v.HeightMM != 0 {
				vb.SetAttributeValue("height", cty.NumberFloatVal(v.HeightMM))
			}
			vb.SetAttributeValue("price", cty.NumberFloatVal(v.Price))
		}
	}

	return file.Bytes()
}

// SaveMaterial writes one material as <dir>/<slug>.hcl, creating the
// directory when needed.
func SaveMaterial(dir string, m *insulation.Material) (string, error) {
	if m == nil || m.Name == "" {
		return "", errors.Input("material name must not be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(errors.TypeInternal, "create catalog directory", err)
	}

	path := filepath.Join(dir, slug(m.Name)+".hcl")
	if err := os.WriteFile(path, EncodeHCL([]*insulation.Material{m}), 0o644); err != nil {
		return "", errors.Wrap(errors.TypeInternal, "write material file", err)
	}
	return path, nil
}

// slug converts a material name to a file-system friendly base name.
func slug(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '-', r == '_', r == '/':
			b.WriteRune('-')
		}
	}
	return strings.Trim(b.String(), "-")
}
