package gl

import (
	"hash/fnv"
	"sync"
	"sync/atomic"
)

// programCache shares compiled GL programs between shader resources with
// identical source, keyed by an FNV-1a hash of the source pair. Entries
// are reference counted: each acquire pairs with one release, and the GL
// program is deleted when the last reference drops while the device is
// still live.
//
// Safe for concurrent acquire because resource creation is; the actual
// compile happens under the lock, so two goroutines compiling the same
// source do the work once.
type programCache struct {
	device Device

	mu      sync.Mutex
	entries map[uint64]*programEntry

	hits   atomic.Uint64
	misses atomic.Uint64
}

type programEntry struct {
	program Program
	refs    int
}

func newProgramCache(device Device) *programCache {
	return &programCache{
		device:  device,
		entries: make(map[uint64]*programEntry),
	}
}

func programKey(vertex, fragment string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(vertex))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(fragment))
	return h.Sum64()
}

// acquire returns the compiled program for the source pair, compiling on
// first use, and takes a reference.
func (c *programCache) acquire(vertex, fragment string) (Program, uint64, error) {
	key := programKey(vertex, fragment)

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, ok := c.entries[key]; ok {
		e.refs++
		c.hits.Add(1)
		return e.program, key, nil
	}

	p, err := c.device.CompileProgram(vertex, fragment)
	if err != nil {
		return 0, 0, err
	}
	c.entries[key] = &programEntry{program: p, refs: 1}
	c.misses.Add(1)
	return p, key, nil
}

// release drops one reference, deleting the GL program when the count
// reaches zero. Safe after device teardown: the delete is skipped when
// the context is gone.
func (c *programCache) release(key uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		return
	}
	e.refs--
	if e.refs > 0 {
		return
	}
	delete(c.entries, key)
	if c.device.Live() {
		c.device.DeleteProgram(e.program)
	}
}

// close deletes every cached program regardless of reference count; the
// backend calls it during teardown while the context is still live.
func (c *programCache) close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.device.Live() {
		for _, e := range c.entries {
			c.device.DeleteProgram(e.program)
		}
	}
	c.entries = make(map[uint64]*programEntry)
}

// stats reports cache hit and miss counts.
func (c *programCache) stats() (hits, misses uint64) {
	return c.hits.Load(), c.misses.Load()
}
