package gl

import "github.com/Mattiemus/Kynto2-sub008/graphics"

// glContext implements graphics.ContextImplementation: it owns the three
// state applicators and routes clears through the state cache's clear-value
// slots.
type glContext struct {
	backend *Backend
	cache   *StateCache

	blend        *blendApplicator
	depthStencil *depthStencilApplicator
	rasterizer   *rasterizerApplicator
}

func newGLContext(b *Backend) *glContext {
	cache := b.stateCache()
	return &glContext{
		backend:      b,
		cache:        cache,
		blend:        newBlendApplicator(b.device, cache, b.caps),
		depthStencil: newDepthStencilApplicator(b.device, cache),
		rasterizer:   newRasterizerApplicator(b.device, cache),
	}
}

func (c *glContext) ApplyBlend(desc graphics.BlendDescription) error {
	return c.blend.Apply(desc)
}

func (c *glContext) ApplyDepthStencil(desc graphics.DepthStencilDescription) error {
	return c.depthStencil.Apply(desc)
}

func (c *glContext) ApplyRasterizer(desc graphics.RasterizerDescription) error {
	return c.rasterizer.Apply(desc)
}

func (c *glContext) ApplySampler(unit int, impl graphics.SamplerStateImplementation) error {
	return impl.Bind(unit)
}

func (c *glContext) Clear(options graphics.ClearOptions) error {
	if options.ClearColor {
		c.cache.SetClearColor(options.Color.Components())
	}
	if options.ClearDepth {
		c.cache.SetClearDepth(options.Depth)
	}
	if options.ClearStencil {
		c.cache.SetClearStencil(options.Stencil)
	}
	c.backend.device.Clear(options.ClearColor, options.ClearDepth, options.ClearStencil)
	return nil
}

func (c *glContext) SetViewport(x, y, width, height int) {
	c.backend.device.SetViewport(x, y, width, height)
}

func (c *glContext) Draw(topology graphics.PrimitiveTopology, first, count int) error {
	c.backend.device.Draw(topology, first, count)
	return nil
}

func (c *glContext) DrawIndexed(topology graphics.PrimitiveTopology, format graphics.IndexFormat, first, count int) error {
	c.backend.device.DrawIndexed(topology, format, first, count)
	return nil
}

func (c *glContext) Dispose() {}
