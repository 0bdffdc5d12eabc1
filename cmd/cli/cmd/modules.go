// Package cmd - modules command
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"thermo-calc/core/output"
	"thermo-calc/core/registry"
)

// modulesCmd lists the registered calculation modules
var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List the available calculation modules",
	RunE:  runModules,
}

func runModules(cmd *cobra.Command, args []string) error {
	format, err := resolveFormat()
	if err != nil {
		return err
	}

	descriptors := registry.Default.List()
	if format == output.FormatJSON {
		return output.JSON(os.Stdout, descriptors)
	}

	table := output.NewTable("Calculation modules", precision())
	for _, d := range descriptors {
		table.Text(d.Identifier, d.Description)
	}
	return table.Render(os.Stdout, format)
}
