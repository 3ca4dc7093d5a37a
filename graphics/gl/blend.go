package gl

import "github.com/Mattiemus/Kynto2-sub008/graphics"

// blendApplicator translates a BlendDescription into device calls, routing
// the cached slots (capability toggles, blend constant) through the state
// cache.
type blendApplicator struct {
	device Device
	cache  *StateCache

	// targetCount is the driver-reported number of simultaneously
	// blendable render targets, at least 1.
	targetCount int
	// alphaToCoverage gates the global alpha-to-coverage toggle; without
	// device support the field in the description is ignored.
	alphaToCoverage bool
}

func newBlendApplicator(device Device, cache *StateCache, caps graphics.Capabilities) *blendApplicator {
	count := caps.MaxRenderTargets
	if count < 1 {
		count = 1
	}
	return &blendApplicator{
		device:          device,
		cache:           cache,
		targetCount:     count,
		alphaToCoverage: caps.AlphaToCoverage,
	}
}

// Apply issues the device calls for desc.
//
// Alpha-to-coverage and the blend constant color are global, applied once
// per call. Everything else is per render target: desc.Target resolves
// each index, so with IndependentBlendEnable off every index receives
// target 0's description and the loop behaves identically at each index.
// The color and alpha destination factors are separate arguments end to
// end; they never alias.
func (a *blendApplicator) Apply(desc graphics.BlendDescription) error {
	if a.alphaToCoverage {
		a.cache.SetCapability(CapAlphaToCoverage, desc.AlphaToCoverageEnable)
	}
	a.cache.SetBlendColor(desc.BlendFactor.Components())

	for i := 0; i < a.targetCount; i++ {
		target := desc.Target(i)
		if !target.Enabled {
			// A disabled target gets only the disable toggle; masks,
			// equations, and factors keep their previous values.
			a.cache.DisableIndexed(CapBlend, i)
			continue
		}
		a.cache.EnableIndexed(CapBlend, i)
		a.device.BlendEquationSeparate(i, target.ColorOperation, target.AlphaOperation)
		a.device.BlendFuncSeparate(i,
			target.ColorSource, target.ColorDestination,
			target.AlphaSource, target.AlphaDestination)
		a.device.ColorMask(i,
			target.WriteChannels.Has(graphics.ColorWriteRed),
			target.WriteChannels.Has(graphics.ColorWriteGreen),
			target.WriteChannels.Has(graphics.ColorWriteBlue),
			target.WriteChannels.Has(graphics.ColorWriteAlpha))
	}
	return nil
}
