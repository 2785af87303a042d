package provider

import (
	"sort"
	"sync"
)

var (
	mu        sync.RWMutex
	providers = make(map[string]Provider)
)

// Register adds a provider to the registry. A later registration under
// the same name replaces the earlier one.
func Register(p Provider) {
	mu.Lock()
	defer mu.Unlock()
	providers[p.Name()] = p
}

// Get returns a registered provider by name, or nil if not found.
func Get(name string) Provider {
	mu.RLock()
	defer mu.RUnlock()
	return providers[name]
}

// Names returns the names of all registered providers, sorted.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Clear removes all registered providers. For testing only.
func Clear() {
	mu.Lock()
	defer mu.Unlock()
	providers = make(map[string]Provider)
}

// RegistrySource returns a Source backed by the global registry.
func RegistrySource() Source {
	return registrySource{}
}

type registrySource struct{}

func (registrySource) Lookup(name string) (Provider, bool) {
	p := Get(name)
	return p, p != nil
}
