// Package cmd - insulation commands
package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"thermo-calc/core/catalog"
	"thermo-calc/core/insulation"
	"thermo-calc/core/output"
	"thermo-calc/core/registry"
	"thermo-calc/internal/config"
	"thermo-calc/internal/errors"
	"thermo-calc/internal/logging"
)

var (
	insHot     float64
	insAmbient float64
	insFilm    float64
	insLayers  []string

	platesRef     string
	platesLength  float64
	platesWidth   float64
	platesHeight  float64
	platesVariant string

	exportFile string
)

// insulationCmd groups the insulation calculations
var insulationCmd = &cobra.Command{
	Use:   "insulation",
	Short: "Multi-layer insulation and plate layout",
}

// insulationCalcCmd solves a multi-layer conduction problem
var insulationCalcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Solve a multi-layer insulation",
	Long: `Solve the heat flux and interface temperatures of a multi-layer
insulation with temperature-dependent conductivities. Layers are given
inside out as material:thickness pairs, with the thickness in mm and the
material taken from the catalog.

Examples:
  thermo-calc insulation calc --hot 600 --ambient 25 --layer "ceramic fiber board:50" --layer "rockwool:100"`,
	RunE: runInsulationCalc,
}

// insulationMaterialsCmd lists or shows catalog materials
var insulationMaterialsCmd = &cobra.Command{
	Use:   "materials [name]",
	Short: "List catalog materials or show one",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInsulationMaterials,
}

// insulationPlatesCmd computes the plate cut list for a boxed insulation
var insulationPlatesCmd = &cobra.Command{
	Use:   "plates",
	Short: "Compute the plate cut list for a boxed insulation",
	Long: `Compute the six plates per layer for a box insulated inside out
with the given layer thicknesses. With --variant, the plates are priced
against a stock plate format from the catalog.

Examples:
  thermo-calc insulation plates --ref outer --length 1000 --width 1000 --height 1000 --layer "rockwool:50" --layer "rockwool:50"`,
	RunE: runInsulationPlates,
}

// insulationImportCmd imports materials from a CSV file into the catalog
var insulationImportCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import catalog materials from CSV",
	Args:  cobra.ExactArgs(1),
	RunE:  runInsulationImport,
}

// insulationExportCmd exports the catalog as CSV
var insulationExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the material catalog as CSV",
	RunE:  runInsulationExport,
}

func init() {
	insulationCalcCmd.Flags().Float64Var(&insHot, "hot", 0, "hot face temperature, °C")
	insulationCalcCmd.Flags().Float64Var(&insAmbient, "ambient", 20, "ambient temperature, °C")
	insulationCalcCmd.Flags().Float64Var(&insFilm, "film", 10, "outer film coefficient, W/(m²·K)")
	insulationCalcCmd.Flags().StringArrayVarP(&insLayers, "layer", "l", nil, "layer as material:thickness-mm, inside out")
	insulationCalcCmd.MarkFlagRequired("hot")
	insulationCalcCmd.MarkFlagRequired("layer")

	insulationPlatesCmd.Flags().StringVar(&platesRef, "ref", string(insulation.OuterDimensions), "dimension reference (outer, inner)")
	insulationPlatesCmd.Flags().Float64Var(&platesLength, "length", 0, "box length, mm")
	insulationPlatesCmd.Flags().Float64Var(&platesWidth, "width", 0, "box width, mm")
	insulationPlatesCmd.Flags().Float64Var(&platesHeight, "height", 0, "box height, mm")
	insulationPlatesCmd.Flags().StringArrayVarP(&insLayers, "layer", "l", nil, "layer as material:thickness-mm, inside out")
	insulationPlatesCmd.Flags().StringVar(&platesVariant, "variant", "", "price against material:variant from the catalog")
	insulationPlatesCmd.MarkFlagRequired("length")
	insulationPlatesCmd.MarkFlagRequired("width")
	insulationPlatesCmd.MarkFlagRequired("height")
	insulationPlatesCmd.MarkFlagRequired("layer")

	insulationExportCmd.Flags().StringVarP(&exportFile, "out", "o", "", "output file (default stdout)")

	insulationCmd.AddCommand(insulationCalcCmd)
	insulationCmd.AddCommand(insulationMaterialsCmd)
	insulationCmd.AddCommand(insulationPlatesCmd)
	insulationCmd.AddCommand(insulationImportCmd)
	insulationCmd.AddCommand(insulationExportCmd)
	rootCmd.AddCommand(insulationCmd)

	if err := registry.Default.Register(registry.Descriptor{
		Identifier:  "insulation",
		Name:        "Insulation",
		Description: "Multi-layer insulation solver, plate cut lists and material catalog",
		Enabled:     true,
	}); err != nil {
		panic(err)
	}
}

// loadCatalog reads the configured material directory.
func loadCatalog() (*catalog.Catalog, error) {
	dir := config.Get().Catalog.Directory
	return catalog.LoadDirectory(dir)
}

// parseLayerSpec splits a material:thickness pair.
func parseLayerSpec(spec string) (string, float64, error) {
	idx := strings.LastIndex(spec, ":")
	if idx <= 0 || idx == len(spec)-1 {
		return "", 0, errors.Newf(errors.TypeInput, "layer %q must be material:thickness-mm", spec)
	}
	name := strings.TrimSpace(spec[:idx])
	thickness, err := strconv.ParseFloat(strings.TrimSpace(spec[idx+1:]), 64)
	if err != nil {
		return "", 0, errors.Newf(errors.TypeInput, "layer %q has a non-numeric thickness", spec)
	}
	return name, thickness, nil
}

// resolveLayers turns layer specs into solver layers backed by catalog
// materials.
func resolveLayers(cat *catalog.Catalog, specs []string) ([]insulation.Layer, error) {
	layers := make([]insulation.Layer, 0, len(specs))
	for _, spec := range specs {
		name, thickness, err := parseLayerSpec(spec)
		if err != nil {
			return nil, err
		}
		material, err := cat.Get(name)
		if err != nil {
			return nil, err
		}
		layers = append(layers, insulation.Layer{ThicknessMM: thickness, Material: material})
	}
	return layers, nil
}

func runInsulationCalc(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}
	layers, err := resolveLayers(cat, insLayers)
	if err != nil {
		return err
	}

	cfg := config.Get().Solver
	result, err := insulation.Solve(layers, insHot, insAmbient, insFilm, insulation.Options{
		ToleranceK:    cfg.InsulationToleranceK,
		MaxIterations: cfg.InsulationMaxIterations,
	})
	if err != nil {
		return err
	}

	logging.Debug("insulation solved", zap.Int("iterations", result.Iterations))

	table := output.NewTable("Multi-layer insulation", precision())
	table.Value("Hot face", insHot, "°C")
	table.Value("Ambient", insAmbient, "°C")
	table.Value("Heat flux", result.HeatFlux, "W/m²")
	table.Value("Total resistance", result.TotalResistance, "m²·K/W")
	table.Value("Cold surface", result.InterfaceTemperaturesC[len(result.InterfaceTemperaturesC)-1], "°C")
	table.Section("Layers")
	for i, spec := range insLayers {
		name, thickness, _ := parseLayerSpec(spec)
		label := fmt.Sprintf("%d %s %.0fmm", i+1, name, thickness)
		table.Value(label+" interface", result.InterfaceTemperaturesC[i+1], "°C")
		table.Value(label+" mean k", result.LayerConductivities[i], "W/(m·K)")
	}
	return render(table)
}

func runInsulationMaterials(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	if len(args) == 1 {
		material, err := cat.Get(args[0])
		if err != nil {
			return err
		}
		format, err := resolveFormat()
		if err != nil {
			return err
		}
		if format == output.FormatJSON {
			return output.JSON(os.Stdout, material)
		}

		table := output.NewTable(material.Name, precision())
		table.Value("Classification temp", material.ClassificationTempC, "°C")
		table.Value("Density", material.Density, "kg/m³")
		table.Section("Measurements")
		for _, p := range material.Measurements {
			table.Value(fmt.Sprintf("k(%.0f °C)", p.TemperatureC), p.Conductivity, "W/(m·K)")
		}
		if len(material.Variants) > 0 {
			table.Section("Variants")
			for _, v := range material.Variants {
				table.Text(v.Name, fmt.Sprintf("%.0fx%.0fx%.0f mm, %.2f", v.LengthMM, v.WidthMM, v.ThicknessMM, v.Price))
			}
		}
		return table.Render(os.Stdout, format)
	}

	table := output.NewTable("Materials", precision())
	for _, m := range cat.List() {
		table.Text(m.Name, fmt.Sprintf("%.0f °C, %d measurements, %d variants",
			m.ClassificationTempC, len(m.Measurements), len(m.Variants)))
	}
	return render(table)
}

func runInsulationPlates(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	thicknesses := make([]float64, 0, len(insLayers))
	for _, spec := range insLayers {
		_, thickness, err := parseLayerSpec(spec)
		if err != nil {
			return err
		}
		thicknesses = append(thicknesses, thickness)
	}

	build, err := insulation.PlateDimensions(thicknesses,
		insulation.DimensionReference(platesRef), platesLength, platesWidth, platesHeight)
	if err != nil {
		return err
	}

	format, err := resolveFormat()
	if err != nil {
		return err
	}
	if format == output.FormatJSON {
		return output.JSON(os.Stdout, build)
	}

	table := output.NewTable("Insulation plates", precision())
	table.Text("Outer box", fmt.Sprintf("%.0f x %.0f x %.0f mm", build.OuterLength, build.OuterWidth, build.OuterHeight))
	table.Text("Inner box", fmt.Sprintf("%.0f x %.0f x %.0f mm", build.InnerLength, build.InnerWidth, build.InnerHeight))
	for _, layer := range build.Layers {
		table.Section(fmt.Sprintf("Layer %d (%.0f mm)", layer.LayerIndex, layer.ThicknessMM))
		for _, plate := range layer.Plates {
			table.Text(plate.Position, fmt.Sprintf("%.0f x %.0f x %.0f mm", plate.Length, plate.Width, plate.Thickness))
		}
	}

	if platesVariant != "" {
		materialName, variantName, err := splitVariantSpec(platesVariant)
		if err != nil {
			return err
		}
		material, err := cat.Get(materialName)
		if err != nil {
			return err
		}
		variant, err := findVariant(material, variantName)
		if err != nil {
			return err
		}
		cost, err := insulation.EstimateCost(build, variant)
		if err != nil {
			return err
		}
		table.Section("Cost")
		table.Text("Stock format", fmt.Sprintf("%s %s", material.Name, variant.Name))
		table.Text("Plates", strconv.Itoa(cost.PlateCount))
		table.Text("Total", cost.Total.String())
	}
	return table.Render(os.Stdout, format)
}

// splitVariantSpec splits a material:variant reference.
func splitVariantSpec(spec string) (string, string, error) {
	idx := strings.LastIndex(spec, ":")
	if idx <= 0 || idx == len(spec)-1 {
		return "", "", errors.Newf(errors.TypeInput, "variant %q must be material:variant", spec)
	}
	return strings.TrimSpace(spec[:idx]), strings.TrimSpace(spec[idx+1:]), nil
}

// findVariant looks up a named plate format of a material.
func findVariant(m *insulation.Material, name string) (insulation.Variant, error) {
	for _, v := range m.Variants {
		if strings.EqualFold(v.Name, name) {
			return v, nil
		}
	}
	return insulation.Variant{}, errors.NotFound("variant", m.Name+":"+name)
}

func runInsulationImport(cmd *cobra.Command, args []string) error {
	file, err := os.Open(args[0])
	if err != nil {
		return errors.Wrap(errors.TypeInput, "open CSV file", err)
	}
	defer file.Close()

	materials, err := catalog.ImportCSV(file)
	if err != nil {
		return err
	}

	dir := config.Get().Catalog.Directory
	for _, m := range materials {
		path, err := catalog.SaveMaterial(dir, m)
		if err != nil {
			return err
		}
		logging.Info("imported material", zap.String("name", m.Name), zap.String("path", path))
	}

	fmt.Printf("Imported %d materials into %s\n", len(materials), dir)
	return nil
}

func runInsulationExport(cmd *cobra.Command, args []string) error {
	cat, err := loadCatalog()
	if err != nil {
		return err
	}

	out := os.Stdout
	if exportFile != "" {
		f, err := os.Create(exportFile)
		if err != nil {
			return errors.Wrap(errors.TypeInternal, "create output file", err)
		}
		defer f.Close()
		out = f
	}

	return catalog.ExportCSV(out, cat.List())
}
