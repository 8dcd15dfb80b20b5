// Package adapter holds the registry of DaggerML adapters. An adapter is
// identified by its entrypoint name.
package adapter

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Adapter is a named extension point.
type Adapter interface {
	// Name is the entrypoint name the adapter is registered under.
	Name() string
	// Banner is the line printed when the adapter binary starts without
	// arguments.
	Banner() string
}

// ErrNotFound is returned by Lookup for unknown names.
var ErrNotFound = errors.New("adapter not found")

// Registry maps entrypoint names to adapters. The zero value is ready to use.
type Registry struct {
	mu       sync.RWMutex
	adapters map[string]Adapter
}

// Register adds a. Empty and duplicate names are rejected.
func (r *Registry) Register(a Adapter) error {
	name := a.Name()
	if name == "" {
		return errors.New("adapter name must not be empty")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.adapters == nil {
		r.adapters = map[string]Adapter{}
	}
	if _, ok := r.adapters[name]; ok {
		return fmt.Errorf("adapter already registered: %s", name)
	}
	r.adapters[name] = a
	return nil
}

// Lookup returns the adapter registered under name.
func (r *Registry) Lookup(name string) (Adapter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.adapters[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return a, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.adapters))
	for n := range r.adapters {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Default is the process-wide registry. Built-in adapters register here.
var Default = &Registry{}

func init() {
	if err := Default.Register(Example{}); err != nil {
		panic(err)
	}
}
