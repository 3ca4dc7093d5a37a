package graphics

import "hash/fnv"

// RasterizerDescription is an immutable description of the rasterizer
// stage: face culling, fill mode, depth bias, and the scissor and
// multisample toggles.
type RasterizerDescription struct {
	Cull CullMode
	// FrontWinding selects which vertex winding counts as front-facing.
	FrontWinding Winding
	Fill         FillMode

	// DepthBias is the constant bias added to each fragment's depth.
	DepthBias float32
	// SlopeScaledDepthBias scales with the polygon's depth slope.
	SlopeScaledDepthBias float32
	// DepthClipEnable clamps fragments to the near and far planes when
	// false instead of clipping the primitive.
	DepthClipEnable bool

	ScissorEnable     bool
	MultisampleEnable bool
	// AntialiasedLineEnable smooths line primitives; ignored when
	// MultisampleEnable is set.
	AntialiasedLineEnable bool
}

// RasterizerCullBack returns the default rasterizer state: solid fill,
// back faces culled, counter-clockwise front winding.
func RasterizerCullBack() RasterizerDescription {
	return RasterizerDescription{
		Cull:            CullBack,
		FrontWinding:    WindingCounterClockwise,
		Fill:            FillSolid,
		DepthClipEnable: true,
	}
}

// RasterizerCullFront returns the default state with front faces culled
// instead of back faces.
func RasterizerCullFront() RasterizerDescription {
	d := RasterizerCullBack()
	d.Cull = CullFront
	return d
}

// RasterizerCullNone returns the default state with culling disabled.
func RasterizerCullNone() RasterizerDescription {
	d := RasterizerCullBack()
	d.Cull = CullNone
	return d
}

// RasterizerWireframe returns the cull-none state with wireframe fill.
func RasterizerWireframe() RasterizerDescription {
	d := RasterizerCullNone()
	d.Fill = FillWireframe
	return d
}

// Hash returns the FNV-1a hash of the description.
func (d RasterizerDescription) Hash() uint64 {
	h := fnv.New64a()
	hashWriteUint32(h, uint32(d.Cull))
	hashWriteUint32(h, uint32(d.FrontWinding))
	hashWriteUint32(h, uint32(d.Fill))
	hashWriteFloat32(h, d.DepthBias)
	hashWriteFloat32(h, d.SlopeScaledDepthBias)
	hashWriteBool(h, d.DepthClipEnable)
	hashWriteBool(h, d.ScissorEnable)
	hashWriteBool(h, d.MultisampleEnable)
	hashWriteBool(h, d.AntialiasedLineEnable)
	return h.Sum64()
}

// RasterizerState is the logical resource wrapping a
// RasterizerDescription.
type RasterizerState struct {
	Resource
	desc RasterizerDescription
}

// Description returns the immutable description value.
func (s *RasterizerState) Description() RasterizerDescription { return s.desc }
