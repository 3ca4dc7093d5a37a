package graphics

import "fmt"

// MaxRenderTargets is the upper bound on simultaneously bound render
// targets a BlendDescription can describe. The device's actual count is
// reported by Capabilities.MaxRenderTargets and is always in
// [1, MaxRenderTargets].
const MaxRenderTargets = 8

// BufferUsage hints how often buffer contents change.
type BufferUsage uint8

const (
	// UsageStatic marks data uploaded once and drawn many times.
	UsageStatic BufferUsage = iota
	// UsageDynamic marks data rewritten frequently.
	UsageDynamic
)

func (u BufferUsage) String() string {
	switch u {
	case UsageStatic:
		return "Static"
	case UsageDynamic:
		return "Dynamic"
	default:
		return fmt.Sprintf("BufferUsage(%d)", uint8(u))
	}
}

// IndexFormat is the element width of an index buffer.
type IndexFormat uint8

const (
	IndexUint16 IndexFormat = iota
	IndexUint32
)

// Bytes returns the size of one index element.
func (f IndexFormat) Bytes() int {
	if f == IndexUint32 {
		return 4
	}
	return 2
}

func (f IndexFormat) String() string {
	switch f {
	case IndexUint16:
		return "Uint16"
	case IndexUint32:
		return "Uint32"
	default:
		return fmt.Sprintf("IndexFormat(%d)", uint8(f))
	}
}

// TextureFormat is the pixel layout of a texture or swap chain.
type TextureFormat uint8

const (
	FormatRGBA8 TextureFormat = iota
	FormatBGRA8
	FormatR8
	FormatDepth24Stencil8
)

// BytesPerPixel returns the per-texel byte size, used to validate initial
// data lengths at creation time.
func (f TextureFormat) BytesPerPixel() int {
	switch f {
	case FormatR8:
		return 1
	default:
		return 4
	}
}

func (f TextureFormat) String() string {
	switch f {
	case FormatRGBA8:
		return "RGBA8"
	case FormatBGRA8:
		return "BGRA8"
	case FormatR8:
		return "R8"
	case FormatDepth24Stencil8:
		return "Depth24Stencil8"
	default:
		return fmt.Sprintf("TextureFormat(%d)", uint8(f))
	}
}

// CompareFunction is a depth or stencil comparison.
type CompareFunction uint8

const (
	CompareNever CompareFunction = iota
	CompareLess
	CompareEqual
	CompareLessEqual
	CompareGreater
	CompareNotEqual
	CompareGreaterEqual
	CompareAlways
)

func (c CompareFunction) String() string {
	switch c {
	case CompareNever:
		return "Never"
	case CompareLess:
		return "Less"
	case CompareEqual:
		return "Equal"
	case CompareLessEqual:
		return "LessEqual"
	case CompareGreater:
		return "Greater"
	case CompareNotEqual:
		return "NotEqual"
	case CompareGreaterEqual:
		return "GreaterEqual"
	case CompareAlways:
		return "Always"
	default:
		return fmt.Sprintf("CompareFunction(%d)", uint8(c))
	}
}

// CullMode selects which triangle faces are discarded.
type CullMode uint8

const (
	CullNone CullMode = iota
	CullFront
	CullBack
)

func (c CullMode) String() string {
	switch c {
	case CullNone:
		return "None"
	case CullFront:
		return "Front"
	case CullBack:
		return "Back"
	default:
		return fmt.Sprintf("CullMode(%d)", uint8(c))
	}
}

// Winding declares which vertex order is front-facing.
type Winding uint8

const (
	WindingCounterClockwise Winding = iota
	WindingClockwise
)

func (w Winding) String() string {
	if w == WindingClockwise {
		return "Clockwise"
	}
	return "CounterClockwise"
}

// FillMode selects solid or wireframe rasterization.
type FillMode uint8

const (
	FillSolid FillMode = iota
	FillWireframe
)

func (f FillMode) String() string {
	if f == FillWireframe {
		return "Wireframe"
	}
	return "Solid"
}

// TextureAddressMode controls sampling outside [0, 1] texture coordinates.
type TextureAddressMode uint8

const (
	AddressWrap TextureAddressMode = iota
	AddressMirror
	AddressClamp
	AddressBorder
)

func (m TextureAddressMode) String() string {
	switch m {
	case AddressWrap:
		return "Wrap"
	case AddressMirror:
		return "Mirror"
	case AddressClamp:
		return "Clamp"
	case AddressBorder:
		return "Border"
	default:
		return fmt.Sprintf("TextureAddressMode(%d)", uint8(m))
	}
}

// TextureFilter selects the sampling filter family.
type TextureFilter uint8

const (
	FilterPoint TextureFilter = iota
	FilterLinear
	FilterAnisotropic
)

func (f TextureFilter) String() string {
	switch f {
	case FilterPoint:
		return "Point"
	case FilterLinear:
		return "Linear"
	case FilterAnisotropic:
		return "Anisotropic"
	default:
		return fmt.Sprintf("TextureFilter(%d)", uint8(f))
	}
}

// PrimitiveTopology is the draw-call primitive interpretation.
type PrimitiveTopology uint8

const (
	TopologyTriangleList PrimitiveTopology = iota
	TopologyTriangleStrip
	TopologyLineList
	TopologyLineStrip
	TopologyPointList
)

func (t PrimitiveTopology) String() string {
	switch t {
	case TopologyTriangleList:
		return "TriangleList"
	case TopologyTriangleStrip:
		return "TriangleStrip"
	case TopologyLineList:
		return "LineList"
	case TopologyLineStrip:
		return "LineStrip"
	case TopologyPointList:
		return "PointList"
	default:
		return fmt.Sprintf("PrimitiveTopology(%d)", uint8(t))
	}
}
