package gl

import (
	"fmt"

	"github.com/Mattiemus/Kynto2-sub008/graphics"
)

// Capability is a toggleable device feature, the argument to Enable and
// Disable. The set is the explicit table below, not a reflection walk over
// driver enums; adding a slot means adding it here and to the seeding
// query in NewStateCache.
type Capability uint8

const (
	CapBlend Capability = iota
	CapCullFace
	CapDepthTest
	CapStencilTest
	CapScissorTest
	CapMultisample
	CapLineSmooth
	CapPolygonOffsetFill
	CapAlphaToCoverage
	capCount
)

// trackedCapabilities is the compile-time table of capabilities the state
// cache shadows. NewStateCache seeds every entry from the device.
var trackedCapabilities = [...]Capability{
	CapBlend,
	CapCullFace,
	CapDepthTest,
	CapStencilTest,
	CapScissorTest,
	CapMultisample,
	CapLineSmooth,
	CapPolygonOffsetFill,
	CapAlphaToCoverage,
}

func (c Capability) String() string {
	switch c {
	case CapBlend:
		return "Blend"
	case CapCullFace:
		return "CullFace"
	case CapDepthTest:
		return "DepthTest"
	case CapStencilTest:
		return "StencilTest"
	case CapScissorTest:
		return "ScissorTest"
	case CapMultisample:
		return "Multisample"
	case CapLineSmooth:
		return "LineSmooth"
	case CapPolygonOffsetFill:
		return "PolygonOffsetFill"
	case CapAlphaToCoverage:
		return "AlphaToCoverage"
	default:
		return fmt.Sprintf("Capability(%d)", uint8(c))
	}
}

// Face selects which triangle facing a stencil call configures.
type Face uint8

const (
	FaceFront Face = iota
	FaceBack
	FaceFrontAndBack
)

// BufferTarget is the binding point a buffer attaches to.
type BufferTarget uint8

const (
	TargetArrayBuffer BufferTarget = iota
	TargetElementArrayBuffer
)

// Native handle types. Zero is "no object" for all of them.
type (
	Buffer  uint32
	Texture uint32
	Sampler uint32
	Program uint32
)

// Limits is the driver-reported capability report the backend converts
// into graphics.Capabilities.
type Limits struct {
	MaxDrawBuffers      int
	MaxVertexAttributes int
	MaxTextureSize      int
	MaxAnisotropy       int
	MaxSamples          int
}

// Device is the command and query surface the backend drives. The
// package's job is sequencing and deduplicating calls into this surface;
// the surface itself is an external dependency (the driver, or a
// recording fake in tests).
//
// All methods are single-threaded: the goroutine owning the GL context.
type Device interface {
	// Live reports whether the underlying GL context still exists.
	// Dispose paths check it so teardown-ordering mistakes degrade to
	// silent no-ops instead of faults.
	Live() bool

	// Queries, used to seed the state cache with the driver's actual
	// state rather than assumed defaults.
	QueryCapability(cap Capability) bool
	QueryClearColor() [4]float32
	QueryClearDepth() float64
	QueryClearStencil() int
	QueryFrontFace() graphics.Winding
	QueryCullFace() graphics.CullMode
	QueryProgram() Program
	Limits() Limits

	// Capability toggles, global and per render target index.
	Enable(cap Capability)
	Disable(cap Capability)
	EnableIndexed(cap Capability, index int)
	DisableIndexed(cap Capability, index int)

	// Clear values and clears.
	SetClearColor(rgba [4]float32)
	SetClearDepth(depth float64)
	SetClearStencil(stencil int)
	Clear(color, depth, stencil bool)

	// Blend stage, per render target index.
	BlendFuncSeparate(index int, srcRGB, dstRGB, srcAlpha, dstAlpha graphics.Blend)
	BlendEquationSeparate(index int, rgb, alpha graphics.BlendOperation)
	BlendColor(rgba [4]float32)
	ColorMask(index int, r, g, b, a bool)

	// Depth and stencil stages.
	DepthFunc(fn graphics.CompareFunction)
	DepthMask(write bool)
	StencilFuncSeparate(face Face, fn graphics.CompareFunction, ref int32, readMask uint8)
	StencilOpSeparate(face Face, fail, depthFail, pass graphics.StencilOperation)
	StencilMaskSeparate(face Face, writeMask uint8)

	// Rasterizer stage.
	CullFace(mode graphics.CullMode)
	FrontFace(winding graphics.Winding)
	PolygonMode(fill graphics.FillMode)
	PolygonOffset(factor, units float32)

	// Programs.
	CompileProgram(vertex, fragment string) (Program, error)
	DeleteProgram(p Program)
	UseProgram(p Program)
	SetUniform(p Program, name string, values []float32) error

	// Buffers.
	CreateBuffer(target BufferTarget, sizeBytes int, data []byte, usage graphics.BufferUsage) (Buffer, error)
	DeleteBuffer(b Buffer)
	BindBuffer(target BufferTarget, b Buffer)
	BufferSubData(target BufferTarget, b Buffer, offset int, data []byte)

	// Textures.
	CreateTexture2D(width, height, mipLevels int, format graphics.TextureFormat, data []byte) (Texture, error)
	DeleteTexture(t Texture)
	BindTexture(unit int, t Texture)
	TexSubImage2D(t Texture, level, width, height int, format graphics.TextureFormat, data []byte)
	GenerateMipmaps(t Texture)

	// Samplers.
	CreateSampler(desc graphics.SamplerDescription) (Sampler, error)
	DeleteSampler(s Sampler)
	BindSampler(unit int, s Sampler)

	// Rasterization output.
	SetViewport(x, y, width, height int)
	SetScissor(x, y, width, height int)
	Draw(topology graphics.PrimitiveTopology, first, count int)
	DrawIndexed(topology graphics.PrimitiveTopology, format graphics.IndexFormat, first, count int)

	// Presentation.
	SwapInterval(interval int)
	SwapBuffers()
}
