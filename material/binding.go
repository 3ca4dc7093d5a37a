package material

import (
	"fmt"
	"sort"
	"sync"
)

// Provider produces the current uniform payload for a semantic. It is
// called at Apply time, once per pass that binds the semantic.
type Provider func() []float32

// BindingRegistry maps semantic names ("WorldViewProjection", "Time")
// to value providers. A registry is owned by whoever drives rendering
// and handed to Material.Apply explicitly; there is no package-global
// registry.
type BindingRegistry struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

// NewBindingRegistry returns an empty registry.
func NewBindingRegistry() *BindingRegistry {
	return &BindingRegistry{providers: make(map[string]Provider)}
}

// Register installs a provider for a semantic. Registering a nil
// provider or a semantic that already has one is an error.
func (r *BindingRegistry) Register(semantic string, p Provider) error {
	if semantic == "" {
		return fmt.Errorf("material: empty binding semantic")
	}
	if p == nil {
		return fmt.Errorf("material: nil provider for semantic %q", semantic)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.providers[semantic]; ok {
		return fmt.Errorf("material: semantic %q already registered", semantic)
	}
	r.providers[semantic] = p
	return nil
}

// Resolve returns the provider for a semantic.
func (r *BindingRegistry) Resolve(semantic string) (Provider, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[semantic]
	return p, ok
}

// Semantics returns the registered semantic names, sorted.
func (r *BindingRegistry) Semantics() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.providers))
	for s := range r.providers {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}
