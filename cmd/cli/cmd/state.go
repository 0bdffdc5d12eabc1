// Package cmd - state command
package cmd

import (
	"github.com/spf13/cobra"

	"thermo-calc/core/output"
	"thermo-calc/core/registry"
	"thermo-calc/core/state"
	"thermo-calc/internal/config"
)

var (
	stateProcess  string
	stateT1       float64
	stateT2       float64
	statePower    float64
	statePressure float64
	stateDensity  float64
	stateFlow     float64
	stateNormFlow float64
	stateNorm     string
)

// stateCmd resolves an air state change between two temperatures
var stateCmd = &cobra.Command{
	Use:   "state",
	Short: "Resolve an air state change",
	Long: `Resolve both end states of an isobaric or isochoric air heating
process. Fix the inlet with a norm volume flow, or with an operating
volume flow plus pressure or density; fix the outlet with its
temperature or with the heating power.

Temperatures are in °C, pressures in Pa, volume flows in m³/h.

Examples:
  thermo-calc state --process isobaric --t1 20 --t2 200 --norm-flow 100
  thermo-calc state --process isobaric --t1 20 --power 50 --flow 120 --pressure 101325`,
	RunE: runState,
}

func init() {
	stateCmd.Flags().StringVar(&stateProcess, "process", "isobaric", "process (isobaric, isochoric)")
	stateCmd.Flags().Float64Var(&stateT1, "t1", 0, "inlet temperature, °C")
	stateCmd.Flags().Float64Var(&stateT2, "t2", 0, "outlet temperature, °C")
	stateCmd.Flags().Float64VarP(&statePower, "power", "p", 0, "heating power, kW")
	stateCmd.Flags().Float64Var(&statePressure, "pressure", 0, "inlet pressure, Pa")
	stateCmd.Flags().Float64Var(&stateDensity, "density", 0, "inlet density, kg/m³")
	stateCmd.Flags().Float64Var(&stateFlow, "flow", 0, "operating volume flow, m³/h")
	stateCmd.Flags().Float64Var(&stateNormFlow, "norm-flow", 0, "norm volume flow, Nm³/h")
	stateCmd.Flags().StringVar(&stateNorm, "norm", string(state.NormDIN), "norm condition (din, heatrix)")
	stateCmd.MarkFlagRequired("t1")

	rootCmd.AddCommand(stateCmd)

	if err := registry.Default.Register(registry.Descriptor{
		Identifier:  "state",
		Name:        "Air state change",
		Description: "Isobaric and isochoric air state changes with norm flow handling",
		Enabled:     true,
	}); err != nil {
		panic(err)
	}
}

// flagFloat returns a pointer to the flag value when the flag was set.
func flagFloat(cmd *cobra.Command, name string, value *float64) *float64 {
	if cmd.Flags().Changed(name) {
		return value
	}
	return nil
}

func runState(cmd *cobra.Command, args []string) error {
	query := state.Query{
		Process:            state.Process(stateProcess),
		InletTemperatureC:  stateT1,
		OutletTemperatureC: flagFloat(cmd, "t2", &stateT2),
		PowerKW:            flagFloat(cmd, "power", &statePower),
		PressurePa:         flagFloat(cmd, "pressure", &statePressure),
		Density:            flagFloat(cmd, "density", &stateDensity),
		VolumeFlow:         flagFloat(cmd, "flow", &stateFlow),
		NormVolumeFlow:     flagFloat(cmd, "norm-flow", &stateNormFlow),
		Norm:               state.Norm(stateNorm),
		SolverMaxSteps:     config.Get().Solver.OutletMaxSteps,
	}

	result, err := state.Calculate(query)
	if err != nil {
		return err
	}

	table := output.NewTable("Air state change", precision())
	table.Text("Process", stateProcess)
	table.Section("Inlet")
	table.Value("Temperature 1", stateT1, "°C")
	table.Value("Pressure 1", result.P1, "Pa")
	table.Value("Density 1", result.Rho1, "kg/m³")
	table.Value("Volume flow 1", result.V1, "m³/h")
	table.Value("Mass flow", result.MassFlow, "kg/s")
	table.Value("Speed of sound 1", result.C1, "m/s")
	table.Section("Outlet")
	table.Value("Temperature 2", result.OutletTemperatureC, "°C")
	table.Value("Pressure 2", result.P2, "Pa")
	table.Value("Density 2", result.Rho2, "kg/m³")
	table.Value("Volume flow 2", result.V2, "m³/h")
	table.Value("Speed of sound 2", result.C2, "m/s")
	table.Section("Energy")
	table.Value("Capacity 1", result.Capacity1, "J/(kg*K)")
	table.Value("Capacity 2", result.Capacity2, "J/(kg*K)")
	table.Value("Heating power", result.PowerKW, "kW")
	return render(table)
}
