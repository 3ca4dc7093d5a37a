package gl

import "github.com/Mattiemus/Kynto2-sub008/graphics"

// indexedCap keys the per-render-target capability shadow.
type indexedCap struct {
	cap   Capability
	index int
}

// StateCache is a shadow copy of the device pipeline state the backend
// mutates. Every mutator compares the desired value against the shadowed
// one and only reaches the device on a transition, reporting whether a
// device call was issued.
//
// The invariant: as long as all mutation goes through the cache, every
// shadowed slot equals the device's actual value. Construction seeds each
// slot by querying the device, so the invariant holds even when a prior
// context user left nonstandard state behind.
//
// Indexed capabilities have no seed query in core GL, so they start
// unknown; an unknown slot compares unequal to any value and the first
// set always issues a device call.
//
// One cache exists per device context, owned by that context's goroutine.
// No internal locking.
type StateCache struct {
	device Device

	caps    [capCount]bool
	indexed map[indexedCap]bool

	clearColor   [4]float32
	clearDepth   float64
	clearStencil int

	blendColor    [4]float32
	blendColorSet bool

	frontFace graphics.Winding
	// cullMode remembers the driver's cull-face mode slot, which persists
	// while the cull capability is toggled off. Queries go through
	// CullFace, which reports CullNone while culling is disabled.
	cullMode graphics.CullMode

	program Program

	maxVertexAttributes int
}

// NewStateCache builds a cache seeded from the device's actual state.
func NewStateCache(device Device) *StateCache {
	c := &StateCache{
		device:  device,
		indexed: make(map[indexedCap]bool),
	}
	for _, cap := range trackedCapabilities {
		c.caps[cap] = device.QueryCapability(cap)
	}
	c.clearColor = device.QueryClearColor()
	c.clearDepth = device.QueryClearDepth()
	c.clearStencil = device.QueryClearStencil()
	c.frontFace = device.QueryFrontFace()
	c.cullMode = device.QueryCullFace()
	c.program = device.QueryProgram()
	c.maxVertexAttributes = device.Limits().MaxVertexAttributes
	return c
}

// Enabled reports the shadowed value of a capability.
func (c *StateCache) Enabled(cap Capability) bool {
	return c.caps[cap]
}

// Enable turns a capability on, reporting whether a device call was
// issued.
func (c *StateCache) Enable(cap Capability) bool {
	if c.caps[cap] {
		return false
	}
	c.device.Enable(cap)
	c.caps[cap] = true
	return true
}

// Disable turns a capability off. The device call is issued only when the
// capability is currently enabled.
func (c *StateCache) Disable(cap Capability) bool {
	if !c.caps[cap] {
		return false
	}
	c.device.Disable(cap)
	c.caps[cap] = false
	return true
}

// SetCapability dispatches to Enable or Disable.
func (c *StateCache) SetCapability(cap Capability, enabled bool) bool {
	if enabled {
		return c.Enable(cap)
	}
	return c.Disable(cap)
}

// EnableIndexed turns a capability on for one render target index. A slot
// never touched before is unknown and always issues the device call.
func (c *StateCache) EnableIndexed(cap Capability, index int) bool {
	key := indexedCap{cap: cap, index: index}
	if v, known := c.indexed[key]; known && v {
		return false
	}
	c.device.EnableIndexed(cap, index)
	c.indexed[key] = true
	return true
}

// DisableIndexed turns a capability off for one render target index.
func (c *StateCache) DisableIndexed(cap Capability, index int) bool {
	key := indexedCap{cap: cap, index: index}
	if v, known := c.indexed[key]; known && !v {
		return false
	}
	c.device.DisableIndexed(cap, index)
	c.indexed[key] = false
	return true
}

// SetClearColor updates the clear color slot.
func (c *StateCache) SetClearColor(rgba [4]float32) bool {
	if c.clearColor == rgba {
		return false
	}
	c.device.SetClearColor(rgba)
	c.clearColor = rgba
	return true
}

// SetClearDepth updates the clear depth slot.
func (c *StateCache) SetClearDepth(depth float64) bool {
	if c.clearDepth == depth {
		return false
	}
	c.device.SetClearDepth(depth)
	c.clearDepth = depth
	return true
}

// SetClearStencil updates the clear stencil slot.
func (c *StateCache) SetClearStencil(stencil int) bool {
	if c.clearStencil == stencil {
		return false
	}
	c.device.SetClearStencil(stencil)
	c.clearStencil = stencil
	return true
}

// SetBlendColor updates the constant blend color. The slot has no GL
// query in the tracked set, so it starts unknown and the first set always
// issues the call.
func (c *StateCache) SetBlendColor(rgba [4]float32) bool {
	if c.blendColorSet && c.blendColor == rgba {
		return false
	}
	c.device.BlendColor(rgba)
	c.blendColor = rgba
	c.blendColorSet = true
	return true
}

// SetFrontFace updates the front-face winding slot.
func (c *StateCache) SetFrontFace(winding graphics.Winding) bool {
	if c.frontFace == winding {
		return false
	}
	c.device.FrontFace(winding)
	c.frontFace = winding
	return true
}

// FrontFace reports the shadowed winding.
func (c *StateCache) FrontFace() graphics.Winding {
	return c.frontFace
}

// CullFace reports the effective cull mode: CullNone while the cull
// capability is disabled, regardless of the mode slot the driver
// remembers.
func (c *StateCache) CullFace() graphics.CullMode {
	if !c.caps[CapCullFace] {
		return graphics.CullNone
	}
	return c.cullMode
}

// SetCullFace sets the effective cull mode. CullNone disables the cull
// capability and leaves the mode slot untouched. Any other mode enables
// the capability and updates the mode slot when it differs, keeping both
// shadow entries consistent.
func (c *StateCache) SetCullFace(mode graphics.CullMode) bool {
	if mode == graphics.CullNone {
		return c.Disable(CapCullFace)
	}
	changed := c.Enable(CapCullFace)
	if c.cullMode != mode {
		c.device.CullFace(mode)
		c.cullMode = mode
		changed = true
	}
	return changed
}

// UseProgram binds a program.
func (c *StateCache) UseProgram(p Program) bool {
	if c.program == p {
		return false
	}
	c.device.UseProgram(p)
	c.program = p
	return true
}

// Program reports the shadowed bound program.
func (c *StateCache) Program() Program {
	return c.program
}

// MaxVertexAttributes reports the attribute count captured at seed time.
func (c *StateCache) MaxVertexAttributes() int {
	return c.maxVertexAttributes
}
