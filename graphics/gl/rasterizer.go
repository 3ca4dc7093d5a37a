package gl

import "github.com/Mattiemus/Kynto2-sub008/graphics"

// rasterizerApplicator translates a RasterizerDescription into device
// calls. Culling, winding, and the feature toggles are shadowed by the
// state cache; fill mode and polygon offset parameters go straight to the
// device.
type rasterizerApplicator struct {
	device Device
	cache  *StateCache
}

func newRasterizerApplicator(device Device, cache *StateCache) *rasterizerApplicator {
	return &rasterizerApplicator{device: device, cache: cache}
}

// Apply issues the device calls for desc.
func (a *rasterizerApplicator) Apply(desc graphics.RasterizerDescription) error {
	a.cache.SetCullFace(desc.Cull)
	a.cache.SetFrontFace(desc.FrontWinding)
	a.device.PolygonMode(desc.Fill)

	biased := desc.DepthBias != 0 || desc.SlopeScaledDepthBias != 0
	if a.cache.SetCapability(CapPolygonOffsetFill, biased); biased {
		a.device.PolygonOffset(desc.SlopeScaledDepthBias, desc.DepthBias)
	}

	a.cache.SetCapability(CapScissorTest, desc.ScissorEnable)
	a.cache.SetCapability(CapMultisample, desc.MultisampleEnable)
	// Line smoothing under multisampling is redundant and forces slow
	// paths on some drivers.
	a.cache.SetCapability(CapLineSmooth, desc.AntialiasedLineEnable && !desc.MultisampleEnable)
	return nil
}
