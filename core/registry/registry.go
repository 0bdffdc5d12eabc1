// Package registry tracks the calculation modules available to the
// application front ends.
package registry

import (
	"sort"
	"sync"

	"thermo-calc/internal/errors"
)

// Descriptor is the contract a calculation module registers under.
type Descriptor struct {
	// Identifier is the stable, machine-friendly module key
	Identifier string `json:"identifier"`

	// Name is the human-readable module name
	Name string `json:"name"`

	// Description summarises what the module computes
	Description string `json:"description"`

	// Enabled modules are offered by the front ends
	Enabled bool `json:"enabled"`
}

// Validate checks the descriptor contract.
func (d Descriptor) Validate() error {
	if d.Identifier == "" {
		return errors.Input("module identifier must not be empty")
	}
	if d.Name == "" {
		return errors.Newf(errors.TypeInput, "module %s: name must not be empty", d.Identifier)
	}
	return nil
}

// Registry holds the registered calculation modules.
type Registry struct {
	mu      sync.RWMutex
	modules map[string]Descriptor
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		modules: make(map[string]Descriptor),
	}
}

// Register adds a module descriptor, validating the contract and rejecting
// duplicate identifiers.
func (r *Registry) Register(d Descriptor) error {
	if err := d.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.modules[d.Identifier]; exists {
		return errors.Newf(errors.TypeInput, "module already registered: %s", d.Identifier)
	}

	r.modules[d.Identifier] = d
	return nil
}

// Get returns a module descriptor by identifier.
func (r *Registry) Get(identifier string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.modules[identifier]
	return d, ok
}

// List returns all descriptors sorted by identifier.
func (r *Registry) List() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Descriptor, 0, len(r.modules))
	for _, d := range r.modules {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Identifier < out[j].Identifier })
	return out
}

// Default is the process-wide registry the CLI registers its modules in.
var Default = New()
