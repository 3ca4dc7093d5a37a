package graphics

// ClearOptions selects which buffers Clear touches and the values written
// into them.
type ClearOptions struct {
	ClearColor   bool
	ClearDepth   bool
	ClearStencil bool

	Color   Color
	Depth   float64
	Stencil int
}

// ClearAll clears color, depth, and stencil with the given color, depth 1,
// and stencil 0.
func ClearAll(color Color) ClearOptions {
	return ClearOptions{
		ClearColor:   true,
		ClearDepth:   true,
		ClearStencil: true,
		Color:        color,
		Depth:        1,
	}
}

// ContextImplementation is the backend side of a render context: it applies
// state descriptions, binds resources, and issues draw and present calls
// against the device. Backends deduplicate individual device slots behind
// this interface (see graphics/gl); the RenderContext above it deduplicates
// whole descriptions.
type ContextImplementation interface {
	ApplyBlend(desc BlendDescription) error
	ApplyDepthStencil(desc DepthStencilDescription) error
	ApplyRasterizer(desc RasterizerDescription) error
	ApplySampler(unit int, impl SamplerStateImplementation) error

	Clear(options ClearOptions) error
	SetViewport(x, y, width, height int)
	Draw(topology PrimitiveTopology, first, count int) error
	DrawIndexed(topology PrimitiveTopology, format IndexFormat, first, count int) error

	Dispose()
}

// RenderContext records state changes and draws against one device
// context.
//
// A context is single-writer: exactly one goroutine may use it at a time,
// and all state application and resource disposal tied to it belong to that
// goroutine. The context performs no internal locking.
//
// Each Apply method skips the backend entirely when the incoming
// description equals the one currently applied, so per-draw state
// application is cheap for scenes sorted by state.
type RenderContext struct {
	impl ContextImplementation

	blend         BlendDescription
	blendSet      bool
	depthStencil  DepthStencilDescription
	depthSet      bool
	rasterizer    RasterizerDescription
	rasterizerSet bool

	samplers    map[int]SamplerDescription
	boundVertex *VertexBuffer
	boundIndex  *IndexBuffer
	disposed    bool
}

func newRenderContext(impl ContextImplementation) *RenderContext {
	return &RenderContext{
		impl:     impl,
		samplers: make(map[int]SamplerDescription),
	}
}

// checkState validates the context and a resource argument before a call
// that touches device state. Callers reject a nil resource pointer before
// taking its embedded Resource.
func (c *RenderContext) checkState(r *Resource) error {
	if c.disposed {
		return ErrSystemClosed
	}
	if r.Disposed() {
		return &DisposedError{Kind: r.Kind(), ID: r.ID()}
	}
	return nil
}

// ApplyBlendState applies a blend state, skipping the backend when the
// description is already current.
func (c *RenderContext) ApplyBlendState(s *BlendState) error {
	if s == nil {
		return ErrNilResource
	}
	if err := c.checkState(&s.Resource); err != nil {
		return err
	}
	desc := s.Description()
	if c.blendSet && c.blend == desc {
		return nil
	}
	if err := c.impl.ApplyBlend(desc); err != nil {
		return err
	}
	c.blend = desc
	c.blendSet = true
	return nil
}

// ApplyDepthStencilState applies a depth-stencil state, skipping the
// backend when the description is already current.
func (c *RenderContext) ApplyDepthStencilState(s *DepthStencilState) error {
	if s == nil {
		return ErrNilResource
	}
	if err := c.checkState(&s.Resource); err != nil {
		return err
	}
	desc := s.Description()
	if c.depthSet && c.depthStencil == desc {
		return nil
	}
	if err := c.impl.ApplyDepthStencil(desc); err != nil {
		return err
	}
	c.depthStencil = desc
	c.depthSet = true
	return nil
}

// ApplyRasterizerState applies a rasterizer state, skipping the backend
// when the description is already current.
func (c *RenderContext) ApplyRasterizerState(s *RasterizerState) error {
	if s == nil {
		return ErrNilResource
	}
	if err := c.checkState(&s.Resource); err != nil {
		return err
	}
	desc := s.Description()
	if c.rasterizerSet && c.rasterizer == desc {
		return nil
	}
	if err := c.impl.ApplyRasterizer(desc); err != nil {
		return err
	}
	c.rasterizer = desc
	c.rasterizerSet = true
	return nil
}

// ApplySamplerState applies a sampler state on a texture unit, skipping
// the backend when that unit already carries the description.
func (c *RenderContext) ApplySamplerState(unit int, s *SamplerState) error {
	if s == nil {
		return ErrNilResource
	}
	if err := c.checkState(&s.Resource); err != nil {
		return err
	}
	if unit < 0 {
		return ErrInvalidArgument
	}
	desc := s.Description()
	if applied, ok := c.samplers[unit]; ok && applied == desc {
		return nil
	}
	if err := c.impl.ApplySampler(unit, s.impl.(SamplerStateImplementation)); err != nil {
		return err
	}
	c.samplers[unit] = desc
	return nil
}

// AppliedBlend returns the currently-applied blend description, if any.
// Diagnostic; tests use it to observe the dedup record.
func (c *RenderContext) AppliedBlend() (BlendDescription, bool) {
	return c.blend, c.blendSet
}

// AppliedDepthStencil returns the currently-applied depth-stencil
// description, if any.
func (c *RenderContext) AppliedDepthStencil() (DepthStencilDescription, bool) {
	return c.depthStencil, c.depthSet
}

// AppliedRasterizer returns the currently-applied rasterizer description,
// if any.
func (c *RenderContext) AppliedRasterizer() (RasterizerDescription, bool) {
	return c.rasterizer, c.rasterizerSet
}

// AppliedSampler returns the description applied on the given unit, if
// any.
func (c *RenderContext) AppliedSampler(unit int) (SamplerDescription, bool) {
	d, ok := c.samplers[unit]
	return d, ok
}

// BindProgram makes a compiled program current.
func (c *RenderContext) BindProgram(p *ShaderProgram) error {
	if p == nil {
		return ErrNilResource
	}
	if err := c.checkState(&p.Resource); err != nil {
		return err
	}
	return p.impl.(ShaderProgramImplementation).Bind()
}

// BindTexture makes a texture current on the given unit.
func (c *RenderContext) BindTexture(unit int, t *Texture2D) error {
	if t == nil {
		return ErrNilResource
	}
	if err := c.checkState(&t.Resource); err != nil {
		return err
	}
	if unit < 0 {
		return ErrInvalidArgument
	}
	return t.impl.(Texture2DImplementation).Bind(unit)
}

// BindVertexBuffer makes a vertex buffer current.
func (c *RenderContext) BindVertexBuffer(b *VertexBuffer) error {
	if b == nil {
		return ErrNilResource
	}
	if err := c.checkState(&b.Resource); err != nil {
		return err
	}
	if err := b.impl.(BufferImplementation).Bind(); err != nil {
		return err
	}
	c.boundVertex = b
	return nil
}

// BindIndexBuffer makes an index buffer current.
func (c *RenderContext) BindIndexBuffer(b *IndexBuffer) error {
	if b == nil {
		return ErrNilResource
	}
	if err := c.checkState(&b.Resource); err != nil {
		return err
	}
	if err := b.impl.(BufferImplementation).Bind(); err != nil {
		return err
	}
	c.boundIndex = b
	return nil
}

// SetViewport sets the device viewport in pixels.
func (c *RenderContext) SetViewport(x, y, width, height int) {
	if c.disposed {
		return
	}
	c.impl.SetViewport(x, y, width, height)
}

// Clear clears the selected buffers of the current render target.
func (c *RenderContext) Clear(options ClearOptions) error {
	if c.disposed {
		return ErrSystemClosed
	}
	return c.impl.Clear(options)
}

// Draw issues a non-indexed draw of count vertices starting at first.
func (c *RenderContext) Draw(topology PrimitiveTopology, first, count int) error {
	if c.disposed {
		return ErrSystemClosed
	}
	if first < 0 || count < 0 {
		return ErrInvalidArgument
	}
	return c.impl.Draw(topology, first, count)
}

// DrawIndexed issues an indexed draw of count indices starting at first,
// using the bound index buffer.
func (c *RenderContext) DrawIndexed(topology PrimitiveTopology, first, count int) error {
	if c.disposed {
		return ErrSystemClosed
	}
	if first < 0 || count < 0 {
		return ErrInvalidArgument
	}
	if c.boundIndex == nil {
		return ErrNilResource
	}
	return c.impl.DrawIndexed(topology, c.boundIndex.Format(), first, count)
}

// Present commits a swap chain's backbuffer to its surface.
func (c *RenderContext) Present(s *SwapChain) error {
	if s == nil {
		return ErrNilResource
	}
	if err := c.checkState(&s.Resource); err != nil {
		return err
	}
	return s.impl.(SwapChainImplementation).Present()
}

// Dispose releases the context. Idempotent; the backing device context is
// torn down once.
func (c *RenderContext) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.impl.Dispose()
}
