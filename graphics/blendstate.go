package graphics

import (
	"fmt"
	"hash/fnv"
)

// Blend is a blending factor applied to source or destination color.
type Blend uint8

const (
	BlendZero Blend = iota
	BlendOne
	BlendSourceColor
	BlendInverseSourceColor
	BlendSourceAlpha
	BlendInverseSourceAlpha
	BlendDestinationColor
	BlendInverseDestinationColor
	BlendDestinationAlpha
	BlendInverseDestinationAlpha
	BlendFactorColor
	BlendInverseFactorColor
	BlendSourceAlphaSaturation
)

func (b Blend) String() string {
	switch b {
	case BlendZero:
		return "Zero"
	case BlendOne:
		return "One"
	case BlendSourceColor:
		return "SourceColor"
	case BlendInverseSourceColor:
		return "InverseSourceColor"
	case BlendSourceAlpha:
		return "SourceAlpha"
	case BlendInverseSourceAlpha:
		return "InverseSourceAlpha"
	case BlendDestinationColor:
		return "DestinationColor"
	case BlendInverseDestinationColor:
		return "InverseDestinationColor"
	case BlendDestinationAlpha:
		return "DestinationAlpha"
	case BlendInverseDestinationAlpha:
		return "InverseDestinationAlpha"
	case BlendFactorColor:
		return "FactorColor"
	case BlendInverseFactorColor:
		return "InverseFactorColor"
	case BlendSourceAlphaSaturation:
		return "SourceAlphaSaturation"
	default:
		return fmt.Sprintf("Blend(%d)", uint8(b))
	}
}

// BlendOperation combines the weighted source and destination terms.
type BlendOperation uint8

const (
	BlendOpAdd BlendOperation = iota
	BlendOpSubtract
	BlendOpReverseSubtract
	BlendOpMin
	BlendOpMax
)

func (o BlendOperation) String() string {
	switch o {
	case BlendOpAdd:
		return "Add"
	case BlendOpSubtract:
		return "Subtract"
	case BlendOpReverseSubtract:
		return "ReverseSubtract"
	case BlendOpMin:
		return "Min"
	case BlendOpMax:
		return "Max"
	default:
		return fmt.Sprintf("BlendOperation(%d)", uint8(o))
	}
}

// ColorWriteChannels is a bit set of framebuffer channels a draw may write.
type ColorWriteChannels uint8

const (
	ColorWriteRed ColorWriteChannels = 1 << iota
	ColorWriteGreen
	ColorWriteBlue
	ColorWriteAlpha

	ColorWriteNone ColorWriteChannels = 0
	ColorWriteAll                     = ColorWriteRed | ColorWriteGreen | ColorWriteBlue | ColorWriteAlpha
)

// Has reports whether every channel in mask is enabled.
func (c ColorWriteChannels) Has(mask ColorWriteChannels) bool {
	return c&mask == mask
}

// TargetBlend describes blending for one render target. The color and
// alpha pipelines are fully independent: each has its own source factor,
// destination factor, and operation.
type TargetBlend struct {
	// Enabled turns blending on for this target. When false the target's
	// factors and operations are not applied and color writes pass through
	// unblended.
	Enabled bool

	ColorSource      Blend
	ColorDestination Blend
	ColorOperation   BlendOperation

	AlphaSource      Blend
	AlphaDestination Blend
	AlphaOperation   BlendOperation

	WriteChannels ColorWriteChannels
}

// BlendDescription is an immutable description of the blend stage across
// all render targets. Descriptions are values: compare with ==, share
// freely across goroutines, and key caches with Hash.
type BlendDescription struct {
	// IndependentBlendEnable allows Targets[1..] to differ from
	// Targets[0]. When false, target 0's description applies to every
	// bound render target and the remaining entries are ignored.
	IndependentBlendEnable bool

	// AlphaToCoverageEnable toggles the global alpha-to-coverage
	// multisample capability; it is not a per-target setting.
	AlphaToCoverageEnable bool

	// BlendFactor is the constant color used by the FactorColor and
	// InverseFactorColor blend factors. Applied once per state apply.
	BlendFactor Color

	Targets [MaxRenderTargets]TargetBlend
}

// defaultTargetBlend is disabled passthrough: One/Zero additive with all
// channels writable.
func defaultTargetBlend() TargetBlend {
	return TargetBlend{
		Enabled:          false,
		ColorSource:      BlendOne,
		ColorDestination: BlendZero,
		ColorOperation:   BlendOpAdd,
		AlphaSource:      BlendOne,
		AlphaDestination: BlendZero,
		AlphaOperation:   BlendOpAdd,
		WriteChannels:    ColorWriteAll,
	}
}

func uniformBlend(target TargetBlend) BlendDescription {
	d := BlendDescription{BlendFactor: White}
	for i := range d.Targets {
		d.Targets[i] = target
	}
	return d
}

// BlendOpaque returns the default state: blending disabled on every target.
func BlendOpaque() BlendDescription {
	return uniformBlend(defaultTargetBlend())
}

// BlendAlpha returns premultiplied-alpha blending
// (source + (1 - source alpha) * destination).
func BlendAlpha() BlendDescription {
	t := defaultTargetBlend()
	t.Enabled = true
	t.ColorSource = BlendOne
	t.ColorDestination = BlendInverseSourceAlpha
	t.AlphaSource = BlendOne
	t.AlphaDestination = BlendInverseSourceAlpha
	return uniformBlend(t)
}

// BlendNonPremultiplied returns straight-alpha blending
// (source alpha * source + (1 - source alpha) * destination).
func BlendNonPremultiplied() BlendDescription {
	t := defaultTargetBlend()
	t.Enabled = true
	t.ColorSource = BlendSourceAlpha
	t.ColorDestination = BlendInverseSourceAlpha
	t.AlphaSource = BlendSourceAlpha
	t.AlphaDestination = BlendInverseSourceAlpha
	return uniformBlend(t)
}

// BlendAdditive returns additive blending
// (source alpha * source + destination).
func BlendAdditive() BlendDescription {
	t := defaultTargetBlend()
	t.Enabled = true
	t.ColorSource = BlendSourceAlpha
	t.ColorDestination = BlendOne
	t.AlphaSource = BlendSourceAlpha
	t.AlphaDestination = BlendOne
	return uniformBlend(t)
}

// Hash returns the FNV-1a hash of the description.
func (d BlendDescription) Hash() uint64 {
	h := fnv.New64a()
	hashWriteBool(h, d.IndependentBlendEnable)
	hashWriteBool(h, d.AlphaToCoverageEnable)
	d.BlendFactor.hash(h)
	for i := range d.Targets {
		t := &d.Targets[i]
		hashWriteBool(h, t.Enabled)
		hashWriteUint32(h, uint32(t.ColorSource))
		hashWriteUint32(h, uint32(t.ColorDestination))
		hashWriteUint32(h, uint32(t.ColorOperation))
		hashWriteUint32(h, uint32(t.AlphaSource))
		hashWriteUint32(h, uint32(t.AlphaDestination))
		hashWriteUint32(h, uint32(t.AlphaOperation))
		hashWriteUint32(h, uint32(t.WriteChannels))
	}
	return h.Sum64()
}

// Target returns the description for render target i, honoring
// IndependentBlendEnable: with independent blending off, every index
// resolves to target 0.
func (d *BlendDescription) Target(i int) TargetBlend {
	if !d.IndependentBlendEnable || i < 0 || i >= MaxRenderTargets {
		return d.Targets[0]
	}
	return d.Targets[i]
}

// BlendState is the logical resource wrapping a BlendDescription.
type BlendState struct {
	Resource
	desc BlendDescription
}

// Description returns the immutable description value.
func (s *BlendState) Description() BlendDescription { return s.desc }
