package catalog

import (
	"io"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"thermo-calc/core/insulation"
	"thermo-calc/internal/errors"
)

// csvRow is the flat CSV exchange layout: one row per variant, family data
// repeated on each row. Measurement lists are semicolon-joined.
type csvRow struct {
	Name               string   `csv:"name"`
	ClassificationTemp *float64 `csv:"classification_temp"`
	Density            *float64 `csv:"density"`
	Temps              string   `csv:"temps"`
	Ks                 string   `csv:"ks"`
	VariantName        string   `csv:"variant_name"`
	Thickness          *float64 `csv:"thickness"`
	Length             *float64 `csv:"length"`
	Width              *float64 `csv:"width"`
	Height             *float64 `csv:"height"`
	Price              *float64 `csv:"price"`
}

// ImportCSV reads materials from the flat CSV layout. Rows sharing a name
// merge into one material; each row may contribute a variant.
func ImportCSV(r io.Reader) ([]*insulation.Material, error) {
	var rows []csvRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, errors.Parsing("invalid material CSV", err)
	}

	byName := make(map[string]*insulation.Material)
	var order []string

	for i, row := range rows {
		name := strings.TrimSpace(row.Name)
		if name == "" {
			return nil, errors.Newf(errors.TypeParsing, "row %d: material name missing", i+1)
		}

		m, seen := byName[name]
		if !seen {
			temps, err := parseNumericList(row.Temps)
			if err != nil {
				return nil, errors.Wrapf(errors.TypeParsing, err, "row %d: temps", i+1)
			}
			ks, err := parseNumericList(row.Ks)
			if err != nil {
				return nil, errors.Wrapf(errors.TypeParsing, err, "row %d: ks", i+1)
			}
			if len(temps) == 0 || len(temps) != len(ks) {
				return nil, errors.Newf(errors.TypeParsing,
					"row %d: temps and ks must be non-empty and of equal length", i+1)
			}

			m = &insulation.Material{Name: name}
			if row.ClassificationTemp != nil {
				m.ClassificationTempC = *row.ClassificationTemp
			}
			if row.Density != nil {
				m.Density = *row.Density
			}
			for j := range temps {
				m.Measurements = append(m.Measurements, insulation.Measurement{
					TemperatureC: temps[j],
					Conductivity: ks[j],
				})
			}

			byName[name] = m
			order = append(order, name)
		}

		if row.VariantName != "" {
			if row.Thickness == nil {
				return nil, errors.Newf(errors.TypeParsing, "row %d: variant thickness missing", i+1)
			}
			variant := insulation.Variant{
				Name:        row.VariantName,
				ThicknessMM: *row.Thickness,
			}
			if row.Length != nil {
				variant.LengthMM = *row.Length
			}
			if row.Width != nil {
				variant.WidthMM = *row.Width
			}
			if row.Height != nil {
				variant.HeightMM = *row.Height
			}
			if row.Price != nil {
				variant.Price = *row.Price
			}
			m.Variants = append(m.Variants, variant)
		}
	}

	out := make([]*insulation.Material, 0, len(order))
	for _, name := range order {
		out = append(out, byName[name])
	}
	return out, nil
}

// ExportCSV writes materials in the flat CSV layout.
func ExportCSV(w io.Writer, materials []*insulation.Material) error {
	var rows []csvRow

	for _, m := range materials {
		temps := joinNumericList(m.Temperatures())
		ks := joinNumericList(m.Conductivities())

		base := csvRow{
			Name:  m.Name,
			Temps: temps,
			Ks:    ks,
		}
		if m.ClassificationTempC != 0 {
			v := m.ClassificationTempC
			base.ClassificationTemp = &v
		}
		if m.Density != 0 {
			v := m.Density
			base.Density = &v
		}

		if len(m.Variants) == 0 {
			rows = append(rows, base)
			continue
		}

		for _, variant := range m.Variants {
			row := base
			row.VariantName = variant.Name
			thickness := variant.ThicknessMM
			row.Thickness = &thickness
			if variant.LengthMM != 0 {
				v := variant.LengthMM
				row.Length = &v
			}
			if variant.WidthMM != 0 {
				v := variant.WidthMM
				row.Width = &v
			}
			if variant.HeightMM != 0 {
				v := variant.HeightMM
				row.Height = &v
			}
			if variant.Price != 0 {
				v := variant.Price
				row.Price = &v
			}
			rows = append(rows, row)
		}
	}

	return gocsv.Marshal(&rows, w)
}

// parseNumericList splits a semicolon-joined list of floats.
func parseNumericList(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var out []float64
	for _, item := range strings.Split(s, ";") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		v, err := strconv.ParseFloat(item, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// joinNumericList renders floats as a semicolon-joined list.
func joinNumericList(values []float64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ";")
}
