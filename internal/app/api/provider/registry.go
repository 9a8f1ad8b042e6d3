package provider

import (
	"fmt"
	"sort"
	"sync"
)

// Factory builds a provider from configuration.
type Factory func(cfg Config) (Provider, error)

var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
)

// Register installs a factory under a unique name. Providers call
// this from init(), so importing a provider package is enough to make
// it available.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := factories[name]; exists {
		panic(fmt.Sprintf("provider %q registered twice", name))
	}
	factories[name] = factory
}

// New constructs the named provider, wrapped with metrics.
func New(name string, cfg Config) (Provider, error) {
	registryMu.RLock()
	factory, ok := factories[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown transcription provider %q (available: %v)", name, Available())
	}

	p, err := factory(cfg)
	if err != nil {
		return nil, err
	}
	return Instrument(p), nil
}

// Available lists registered provider names, sorted.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
