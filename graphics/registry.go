package graphics

import (
	"sort"
	"sync"
)

// BackendFactory creates a new Backend instance.
// Implementations should validate the environment and return descriptive
// errors.
type BackendFactory func() (Backend, error)

// Backend is a complete rendering backend: a capability report, one
// factory per supported resource kind, and a source of device contexts.
type Backend interface {
	// Name is the registry identifier the backend was opened under.
	Name() string

	// Capabilities reports the backend's limits and feature booleans.
	Capabilities() Capabilities

	// Factories returns one factory per supported resource kind.
	// Kinds must not repeat.
	Factories() []Factory

	// NewContext creates a device context. Backends that only create
	// resources return NotSupportedError.
	NewContext() (ContextImplementation, error)

	// Close tears the backend down. Resources disposed afterwards no-op.
	Close() error
}

// BackendEntry represents a registered rendering backend.
type BackendEntry struct {
	// Name is the unique identifier for this backend.
	Name string

	// Priority determines selection order (higher = preferred).
	// Standard priorities:
	//   - 100: native device backends (OpenGL)
	//   - 50: resource-only backends (WebGPU)
	Priority int

	// Factory creates backend instances.
	Factory BackendFactory

	// Available reports if the backend can run on this system.
	Available func() bool
}

// defaultBackendRegistry is the registry package-level functions operate
// on.
var defaultBackendRegistry = NewBackendRegistry()

// BackendRegistry manages registered rendering backends.
//
// Backends register themselves from init functions in their own
// packages; importing a backend package is what makes it selectable:
//
//	import _ "github.com/Mattiemus/Kynto2-sub008/graphics/gl"
//
// Render systems resolve a backend from a registry at construction.
// Most code uses the default registry through RegisterBackend and
// NewRenderSystem; tests and embedders can build private registries with
// NewBackendRegistry and pass them to NewRenderSystemWithRegistry.
type BackendRegistry struct {
	mu      sync.RWMutex
	entries map[string]*BackendEntry
}

// NewBackendRegistry creates a new empty registry.
func NewBackendRegistry() *BackendRegistry {
	return &BackendRegistry{
		entries: make(map[string]*BackendEntry),
	}
}

// RegisterBackend adds a backend to the default registry.
//
// If available is nil, the backend is assumed always available.
// Registering a name that already exists replaces the previous entry.
func RegisterBackend(name string, priority int, factory BackendFactory, available func() bool) {
	defaultBackendRegistry.Register(name, priority, factory, available)
}

// UnregisterBackend removes a backend from the default registry.
func UnregisterBackend(name string) {
	defaultBackendRegistry.Unregister(name)
}

// Backends returns all registered backend names sorted by priority
// (highest first).
func Backends() []string {
	return defaultBackendRegistry.List()
}

// AvailableBackends returns names of all available backends sorted by
// priority.
func AvailableBackends() []string {
	return defaultBackendRegistry.Available()
}

// Register adds a backend to this registry.
func (r *BackendRegistry) Register(name string, priority int, factory BackendFactory, available func() bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.entries == nil {
		r.entries = make(map[string]*BackendEntry)
	}

	if available == nil {
		available = func() bool { return true }
	}

	r.entries[name] = &BackendEntry{
		Name:      name,
		Priority:  priority,
		Factory:   factory,
		Available: available,
	}
}

// Unregister removes a backend from this registry.
func (r *BackendRegistry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.entries, name)
}

// List returns all registered backend names sorted by priority.
func (r *BackendRegistry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(false)
}

// Available returns names of all available backends sorted by priority.
func (r *BackendRegistry) Available() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.sortedNames(true)
}

// Get returns information about a specific backend.
func (r *BackendRegistry) Get(name string) (*BackendEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.entries[name]
	if !ok {
		return nil, false
	}

	// Return a copy to prevent modification
	entryCopy := *entry
	return &entryCopy, true
}

// OpenBest opens the best available backend: the registered, available
// entry with the highest priority. When that backend's factory fails,
// the next one is tried.
func (r *BackendRegistry) OpenBest() (Backend, error) {
	r.mu.RLock()
	available := r.sortedNames(true)
	r.mu.RUnlock()

	if len(available) == 0 {
		return nil, ErrNoBackendAvailable
	}

	var lastErr error
	for _, name := range available {
		b, err := r.Open(name)
		if err == nil {
			return b, nil
		}
		lastErr = err
	}

	if lastErr != nil {
		return nil, lastErr
	}
	return nil, ErrNoBackendAvailable
}

// Open opens a specific named backend.
func (r *BackendRegistry) Open(name string) (Backend, error) {
	r.mu.RLock()
	entry, ok := r.entries[name]
	r.mu.RUnlock()

	if !ok {
		return nil, &BackendNotFoundError{Name: name}
	}

	if !entry.Available() {
		return nil, &BackendUnavailableError{Name: name}
	}

	return entry.Factory()
}

// sortedNames returns backend names sorted by priority (highest first),
// ties broken by name. If onlyAvailable is true, filters to available
// backends only. Must be called with lock held.
func (r *BackendRegistry) sortedNames(onlyAvailable bool) []string {
	if len(r.entries) == 0 {
		return nil
	}

	type entry struct {
		name     string
		priority int
	}

	entries := make([]entry, 0, len(r.entries))
	for name, e := range r.entries {
		if onlyAvailable && !e.Available() {
			continue
		}
		entries = append(entries, entry{name: name, priority: e.Priority})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].priority != entries[j].priority {
			return entries[i].priority > entries[j].priority
		}
		return entries[i].name < entries[j].name
	})

	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.name
	}
	return names
}
