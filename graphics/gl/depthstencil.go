package gl

import "github.com/Mattiemus/Kynto2-sub008/graphics"

// depthStencilApplicator translates a DepthStencilDescription into device
// calls, routing the capability toggles through the state cache.
type depthStencilApplicator struct {
	device Device
	cache  *StateCache
}

func newDepthStencilApplicator(device Device, cache *StateCache) *depthStencilApplicator {
	return &depthStencilApplicator{device: device, cache: cache}
}

// Apply issues the device calls for desc: depth enable, write mask, and
// compare function, then the stencil stage with the front and back faces
// configured separately.
func (a *depthStencilApplicator) Apply(desc graphics.DepthStencilDescription) error {
	if a.cache.SetCapability(CapDepthTest, desc.DepthEnable); desc.DepthEnable {
		a.device.DepthFunc(desc.DepthFunction)
	}
	a.device.DepthMask(desc.DepthWriteEnable)

	if a.cache.SetCapability(CapStencilTest, desc.StencilEnable); !desc.StencilEnable {
		return nil
	}

	faces := [2]struct {
		face Face
		desc graphics.StencilFace
	}{
		{FaceFront, desc.FrontFace},
		{FaceBack, desc.BackFace},
	}
	for _, f := range faces {
		a.device.StencilFuncSeparate(f.face, f.desc.Function, desc.StencilReference, desc.StencilReadMask)
		a.device.StencilOpSeparate(f.face, f.desc.FailOp, f.desc.DepthFailOp, f.desc.PassOp)
		a.device.StencilMaskSeparate(f.face, desc.StencilWriteMask)
	}
	return nil
}
