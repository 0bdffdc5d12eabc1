// Package catalog maintains the insulation material catalog, loaded from
// HCL definition files and exchangeable as CSV.
package catalog

import (
	"sort"
	"strings"
	"sync"

	"thermo-calc/core/insulation"
	"thermo-calc/internal/errors"
)

// Catalog is an in-memory material collection keyed by name.
type Catalog struct {
	mu        sync.RWMutex
	materials map[string]*insulation.Material
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		materials: make(map[string]*insulation.Material),
	}
}

// Add inserts a material, rejecting duplicates by name.
func (c *Catalog) Add(m *insulation.Material) error {
	if m.Name == "" {
		return errors.Input("material name must not be empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	key := strings.ToLower(m.Name)
	if _, exists := c.materials[key]; exists {
		return errors.Newf(errors.TypeInput, "material already registered: %s", m.Name)
	}

	c.materials[key] = m
	return nil
}

// Put inserts or replaces a material.
func (c *Catalog) Put(m *insulation.Material) error {
	if m.Name == "" {
		return errors.Input("material name must not be empty")
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.materials[strings.ToLower(m.Name)] = m
	return nil
}

// Get returns a material by name, case-insensitively.
func (c *Catalog) Get(name string) (*insulation.Material, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	m, ok := c.materials[strings.ToLower(name)]
	if !ok {
		return nil, errors.NotFound("material", name)
	}
	return m, nil
}

// List returns all materials sorted by name.
func (c *Catalog) List() []*insulation.Material {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*insulation.Material, 0, len(c.materials))
	for _, m := range c.materials {
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len returns the number of materials.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.materials)
}
