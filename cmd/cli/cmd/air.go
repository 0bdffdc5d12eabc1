// Package cmd - air commands
package cmd

import (
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"thermo-calc/core/air"
	"thermo-calc/core/output"
	"thermo-calc/core/registry"
	"thermo-calc/internal/config"
	"thermo-calc/internal/errors"
	"thermo-calc/internal/logging"
)

var (
	airT1       float64
	airT2       float64
	airMassFlow float64
	airTarget   float64
	airUseCv    bool
)

// airCmd groups the dry-air property and power calculations
var airCmd = &cobra.Command{
	Use:   "air",
	Short: "Dry air properties and heating power",
	Long: `Evaluate dry air properties from the NASA 7-coefficient polynomials
and solve heating power and outlet temperature problems.

All temperatures are absolute, in Kelvin.`,
}

// airPropsCmd evaluates properties at a single temperature
var airPropsCmd = &cobra.Command{
	Use:   "props <temperature-K>",
	Short: "Evaluate air properties at a temperature",
	Args:  cobra.ExactArgs(1),
	RunE:  runAirProps,
}

// airPowerCmd computes the heating power for a temperature interval
var airPowerCmd = &cobra.Command{
	Use:   "power",
	Short: "Compute the heating power for a temperature rise",
	RunE:  runAirPower,
}

// airOutletCmd solves the outlet temperature for a given power
var airOutletCmd = &cobra.Command{
	Use:   "outlet",
	Short: "Solve the outlet temperature for a heating power",
	RunE:  runAirOutlet,
}

func init() {
	airPowerCmd.Flags().Float64Var(&airT1, "t1", 0, "inlet temperature, K")
	airPowerCmd.Flags().Float64Var(&airT2, "t2", 0, "outlet temperature, K")
	airPowerCmd.Flags().Float64VarP(&airMassFlow, "mass-flow", "m", 0, "mass flow, kg/s")
	airPowerCmd.Flags().BoolVar(&airUseCv, "isochoric", false, "use cv instead of cp")
	airPowerCmd.MarkFlagRequired("t1")
	airPowerCmd.MarkFlagRequired("t2")
	airPowerCmd.MarkFlagRequired("mass-flow")

	airOutletCmd.Flags().Float64Var(&airT1, "t1", 0, "inlet temperature, K")
	airOutletCmd.Flags().Float64VarP(&airMassFlow, "mass-flow", "m", 0, "mass flow, kg/s")
	airOutletCmd.Flags().Float64VarP(&airTarget, "power", "p", 0, "heating power, kW")
	airOutletCmd.Flags().BoolVar(&airUseCv, "isochoric", false, "use cv instead of cp")
	airOutletCmd.MarkFlagRequired("t1")
	airOutletCmd.MarkFlagRequired("mass-flow")
	airOutletCmd.MarkFlagRequired("power")

	airCmd.AddCommand(airPropsCmd)
	airCmd.AddCommand(airPowerCmd)
	airCmd.AddCommand(airOutletCmd)
	rootCmd.AddCommand(airCmd)

	if err := registry.Default.Register(registry.Descriptor{
		Identifier:  "air",
		Name:        "Air properties",
		Description: "NASA polynomial air properties, heating power and outlet temperature",
		Enabled:     true,
	}); err != nil {
		panic(err)
	}
}

func runAirProps(cmd *cobra.Command, args []string) error {
	t, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return errors.Wrapf(errors.TypeInput, err, "temperature %q is not a number", args[0])
	}

	cp, err := air.SpecificCp(t)
	if err != nil {
		return err
	}
	cv, err := air.SpecificCv(t)
	if err != nil {
		return err
	}
	molar, err := air.MolarCp(t)
	if err != nil {
		return err
	}
	mu, err := air.DynamicViscosity(t)
	if err != nil {
		return err
	}

	table := output.NewTable("Air properties", precision())
	table.Value("Temperature", t, "K")
	table.Value("Molar cp", molar, "J/(mol*K)")
	table.Value("Specific cp", cp, "J/(kg*K)")
	table.Value("Specific cv", cv, "J/(kg*K)")
	table.Text("Dynamic viscosity", strconv.FormatFloat(mu, 'e', 4, 64)+" Pa*s")
	return render(table)
}

func runAirPower(cmd *cobra.Command, args []string) error {
	logging.Debug("computing heating power",
		zap.Float64("t1", airT1), zap.Float64("t2", airT2), zap.Float64("mass_flow", airMassFlow))

	power, err := air.RequiredPower(airT1, airT2, airMassFlow, airUseCv)
	if err != nil {
		return err
	}

	table := output.NewTable("Heating power", precision())
	table.Value("Inlet temperature", airT1, "K")
	table.Value("Outlet temperature", airT2, "K")
	table.Value("Mass flow", airMassFlow, "kg/s")
	table.Value("Heating power", power, "kW")
	return render(table)
}

func runAirOutlet(cmd *cobra.Command, args []string) error {
	maxSteps := config.Get().Solver.OutletMaxSteps

	t2, err := air.SolveOutletTemperature(airT1, airMassFlow, airTarget, airUseCv, maxSteps)
	if err != nil {
		return err
	}

	table := output.NewTable("Outlet temperature", precision())
	table.Value("Inlet temperature", airT1, "K")
	table.Value("Mass flow", airMassFlow, "kg/s")
	table.Value("Heating power", airTarget, "kW")
	table.Value("Outlet temperature", t2, "K")
	return render(table)
}
