// Package graphics provides the backend-independent rendering layer: logical
// GPU resources, the render system that creates them, immutable render-state
// descriptions, and the render context that applies state and issues draws.
//
// # Overview
//
// A RenderSystem is the single entry point for resource creation. It is
// bound to one Backend (resolved through the backend registry, best
// available by priority or by name) and owns one factory per resource kind.
// Logical resources (Buffer, Texture2D, the four pipeline states,
// ShaderProgram, SwapChain) pair a system-issued unique id with a
// backend-specific Implementation that owns the native handle.
//
//	rs, err := graphics.NewRenderSystem()
//	if err != nil { ... }
//	defer rs.Close()
//
//	vb, err := rs.CreateVertexBufferWithData(graphics.UsageStatic, verts)
//	blend, err := rs.CreateBlendState(graphics.BlendAlpha())
//
//	ctx, err := rs.CreateContext()
//	ctx.ApplyBlendState(blend)
//
// # Architecture
//
// Resource creation (id allocation, factory dispatch) is safe for concurrent
// use. Everything that touches device state — the RenderContext, state
// application, disposal — is single-writer: one goroutine owns a context and
// all mutation on it. State descriptions are immutable values and may be
// shared freely.
//
// State application deduplicates on two levels: the RenderContext skips a
// description that equals the one currently applied, and GL-style backends
// additionally shadow individual device slots so repeated values never reach
// the driver (see graphics/gl).
//
// Unsupported features are reported through Capabilities and the
// Supports/IsSupported queries, never as errors; using an unsupported
// feature without checking is a caller error.
package graphics
