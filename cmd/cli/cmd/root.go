// Package cmd provides the CLI commands for thermo-calc.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"thermo-calc/core/output"
	"thermo-calc/internal/config"
	"thermo-calc/internal/logging"
)

var (
	cfgFile      string
	verbose      bool
	outputFormat string
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "thermo-calc",
	Short: "Thermodynamic calculations for air heating processes",
	Long: `thermo-calc computes thermodynamic properties of air and solves
common sizing problems around electric process heaters.

It covers NASA polynomial air properties, heating power and outlet
temperature, air state changes, duct flow, heater efficiency, electrical
supply power and multi-layer insulation.

Examples:
  thermo-calc air props 293.15
  thermo-calc air power --t1 300 --t2 400 --mass-flow 2
  thermo-calc state --process isobaric --t1 20 --power 50 --norm-flow 100
  thermo-calc insulation calc --hot 600 --ambient 25 --layer rockwool:100`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.thermo-calc.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "", "output format (text, json)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(modulesCmd)
}

func initConfig() {
	if cfgFile != "" {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(cfg)
	}

	// Initialize logging
	cfg := config.Get()
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// resolveFormat picks the output format from the flag or the config default.
func resolveFormat() (output.Format, error) {
	name := outputFormat
	if name == "" {
		name = config.Get().Output.DefaultFormat
	}
	return output.ParseFormat(name)
}

// precision returns the configured number of decimal places.
func precision() int {
	return config.Get().Output.Precision
}

// render writes a result table in the selected format.
func render(table *output.Table) error {
	format, err := resolveFormat()
	if err != nil {
		return err
	}
	return table.Render(os.Stdout, format)
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("thermo-calc version 0.1.0")
	},
}
