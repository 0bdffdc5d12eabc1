// Package cmd - flow command
package cmd

import (
	"github.com/spf13/cobra"

	"thermo-calc/core/flow"
	"thermo-calc/core/output"
	"thermo-calc/core/registry"
)

var (
	flowShape    string
	flowVolume   float64
	flowUnit     string
	flowDiameter float64
	flowSideA    float64
	flowSideB    float64
	flowTemp     float64
	flowDensity  float64
)

// flowCmd computes duct flow velocity, Reynolds number and regime
var flowCmd = &cobra.Command{
	Use:   "flow",
	Short: "Duct flow velocity and Reynolds number",
	Long: `Compute the mean velocity in a circular or rectangular duct, and,
when temperature and density are given, the Reynolds number and flow
regime.

Examples:
  thermo-calc flow --volume 500 --diameter 200
  thermo-calc flow --shape rectangular --volume 500 --side-a 200 --side-b 300 --temp 20 --density 1.2`,
	RunE: runFlow,
}

func init() {
	flowCmd.Flags().StringVar(&flowShape, "shape", string(flow.Circular), "duct shape (circular, rectangular)")
	flowCmd.Flags().Float64Var(&flowVolume, "volume", 0, "volume flow")
	flowCmd.Flags().StringVar(&flowUnit, "unit", string(flow.CubicMetersPerHour), "volume flow unit (m3/h, m3/s)")
	flowCmd.Flags().Float64VarP(&flowDiameter, "diameter", "d", 0, "duct diameter, mm")
	flowCmd.Flags().Float64Var(&flowSideA, "side-a", 0, "rectangular duct side a, mm")
	flowCmd.Flags().Float64Var(&flowSideB, "side-b", 0, "rectangular duct side b, mm")
	flowCmd.Flags().Float64VarP(&flowTemp, "temp", "t", 0, "air temperature, °C")
	flowCmd.Flags().Float64Var(&flowDensity, "density", 0, "air density, kg/m³")
	flowCmd.MarkFlagRequired("volume")

	rootCmd.AddCommand(flowCmd)

	if err := registry.Default.Register(registry.Descriptor{
		Identifier:  "flow",
		Name:        "Duct flow",
		Description: "Flow velocity, Reynolds number and regime in circular and rectangular ducts",
		Enabled:     true,
	}); err != nil {
		panic(err)
	}
}

func runFlow(cmd *cobra.Command, args []string) error {
	query := flow.Query{
		Shape:        flow.Shape(flowShape),
		VolumeFlow:   flowVolume,
		Unit:         flow.Unit(flowUnit),
		DiameterMM:   flagFloat(cmd, "diameter", &flowDiameter),
		SideAMM:      flagFloat(cmd, "side-a", &flowSideA),
		SideBMM:      flagFloat(cmd, "side-b", &flowSideB),
		TemperatureC: flagFloat(cmd, "temp", &flowTemp),
		Density:      flagFloat(cmd, "density", &flowDensity),
	}

	result, err := flow.Calculate(query)
	if err != nil {
		return err
	}

	table := output.NewTable("Duct flow", precision())
	table.Text("Shape", flowShape)
	table.Value("Cross-section area", result.Area, "m²")
	table.Value("Hydraulic diameter", result.HydraulicDiameter*1000, "mm")
	table.Value("Velocity", result.Velocity, "m/s")
	if result.Reynolds != nil {
		table.Value("Reynolds number", *result.Reynolds, "")
		table.Text("Regime", string(result.Regime))
	}
	return render(table)
}
