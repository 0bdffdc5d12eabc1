// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"thermo-calc/internal/logging"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Solver contains iterative solver settings
	Solver SolverConfig `json:"solver"`

	// Catalog contains insulation material catalog settings
	Catalog CatalogConfig `json:"catalog"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// SolverConfig contains iterative solver settings
type SolverConfig struct {
	// OutletMaxSteps bounds the 1 K forward search for an outlet temperature
	OutletMaxSteps int `json:"outlet_max_steps"`

	// InsulationMaxIterations bounds the multi-layer conduction iteration
	InsulationMaxIterations int `json:"insulation_max_iterations"`

	// InsulationToleranceK is the layer-temperature convergence tolerance in K
	InsulationToleranceK float64 `json:"insulation_tolerance_k"`
}

// CatalogConfig contains insulation material catalog settings
type CatalogConfig struct {
	// Directory holds the material definition files (*.hcl)
	Directory string `json:"directory"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format (text, json)
	DefaultFormat string `json:"default_format"`

	// Precision is the number of decimal places in rendered values
	Precision int `json:"precision"`
}

// Default returns the default configuration
func Default() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}

	return &Config{
		Version: "1",
		Solver: SolverConfig{
			OutletMaxSteps:          100000,
			InsulationMaxIterations: 100,
			InsulationToleranceK:    0.5,
		},
		Catalog: CatalogConfig{
			Directory: filepath.Join(home, ".thermo-calc", "materials"),
		},
		Output: OutputConfig{
			DefaultFormat: "text",
			Precision:     3,
		},
		Logging: logging.DefaultConfig(),
	}
}

// Load reads a configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes the configuration to a file
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

var (
	mu      sync.RWMutex
	current = Default()
)

// Get returns the current configuration
func Get() *Config {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Set replaces the current configuration
func Set(config *Config) {
	mu.Lock()
	defer mu.Unlock()
	current = config
}
