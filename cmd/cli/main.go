// thermo-calc is a command-line calculator for air heating processes.
package main

import (
	"os"

	"thermo-calc/cmd/cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
