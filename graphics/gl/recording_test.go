package gl

import (
	"fmt"

	"github.com/Mattiemus/Kynto2-sub008/graphics"
)

// recordingDevice implements Device in memory, counting every call so
// tests can assert on exactly which driver traffic the cache and the
// applicators produce.
type recordingDevice struct {
	counts map[string]int

	alive  bool
	limits Limits

	caps         map[Capability]bool
	clearColor   [4]float32
	clearDepth   float64
	clearStencil int
	frontFace    graphics.Winding
	cullMode     graphics.CullMode
	program      Program

	lastBlendFunc  map[int][4]graphics.Blend
	lastBlendEq    map[int][2]graphics.BlendOperation
	lastColorMask  map[int][4]bool
	lastStencilOps map[Face][3]graphics.StencilOperation
	lastPolygonOff [2]float32
	lastSampler    graphics.SamplerDescription

	nextHandle  uint32
	failCompile bool
}

func newRecordingDevice() *recordingDevice {
	return &recordingDevice{
		counts: make(map[string]int),
		alive:  true,
		limits: Limits{
			MaxDrawBuffers:      8,
			MaxVertexAttributes: 16,
			MaxTextureSize:      4096,
			MaxAnisotropy:       16,
			MaxSamples:          8,
		},
		caps:           make(map[Capability]bool),
		clearDepth:     1,
		frontFace:      graphics.WindingCounterClockwise,
		cullMode:       graphics.CullBack,
		lastBlendFunc:  make(map[int][4]graphics.Blend),
		lastBlendEq:    make(map[int][2]graphics.BlendOperation),
		lastColorMask:  make(map[int][4]bool),
		lastStencilOps: make(map[Face][3]graphics.StencilOperation),
	}
}

func (d *recordingDevice) record(name string) { d.counts[name]++ }

func (d *recordingDevice) count(name string) int { return d.counts[name] }

func (d *recordingDevice) reset() { d.counts = make(map[string]int) }

// total sums every recorded call.
func (d *recordingDevice) total() int {
	n := 0
	for _, c := range d.counts {
		n += c
	}
	return n
}

func (d *recordingDevice) newHandle() uint32 {
	d.nextHandle++
	return d.nextHandle
}

func (d *recordingDevice) Live() bool { return d.alive }

func (d *recordingDevice) QueryCapability(cap Capability) bool { return d.caps[cap] }
func (d *recordingDevice) QueryClearColor() [4]float32 { return d.clearColor }
func (d *recordingDevice) QueryClearDepth() float64 { return d.clearDepth }
func (d *recordingDevice) QueryClearStencil() int { return d.clearStencil }
func (d *recordingDevice) QueryFrontFace() graphics.Winding { return d.frontFace }
func (d *recordingDevice) QueryCullFace() graphics.CullMode { return d.cullMode }
func (d *recordingDevice) QueryProgram() Program { return d.program }
func (d *recordingDevice) Limits() Limits { return d.limits }

func (d *recordingDevice) Enable(cap Capability) {
	d.record("Enable")
	d.caps[cap] = true
}

func (d *recordingDevice) Disable(cap Capability) {
	d.record("Disable")
	d.caps[cap] = false
}

func (d *recordingDevice) EnableIndexed(cap Capability, index int) {
	d.record("EnableIndexed")
}

func (d *recordingDevice) DisableIndexed(cap Capability, index int) {
	d.record("DisableIndexed")
}

func (d *recordingDevice) SetClearColor(rgba [4]float32) {
	d.record("SetClearColor")
	d.clearColor = rgba
}

func (d *recordingDevice) SetClearDepth(depth float64) {
	d.record("SetClearDepth")
	d.clearDepth = depth
}

func (d *recordingDevice) SetClearStencil(stencil int) {
	d.record("SetClearStencil")
	d.clearStencil = stencil
}

func (d *recordingDevice) Clear(color, depth, stencil bool) { d.record("Clear") }

func (d *recordingDevice) BlendFuncSeparate(index int, srcRGB, dstRGB, srcAlpha, dstAlpha graphics.Blend) {
	d.record("BlendFuncSeparate")
	d.lastBlendFunc[index] = [4]graphics.Blend{srcRGB, dstRGB, srcAlpha, dstAlpha}
}

func (d *recordingDevice) BlendEquationSeparate(index int, rgb, alpha graphics.BlendOperation) {
	d.record("BlendEquationSeparate")
	d.lastBlendEq[index] = [2]graphics.BlendOperation{rgb, alpha}
}

func (d *recordingDevice) BlendColor(rgba [4]float32) { d.record("BlendColor") }

func (d *recordingDevice) ColorMask(index int, r, g, b, a bool) {
	d.record("ColorMask")
	d.lastColorMask[index] = [4]bool{r, g, b, a}
}

func (d *recordingDevice) DepthFunc(fn graphics.CompareFunction) { d.record("DepthFunc") }
func (d *recordingDevice) DepthMask(write bool) { d.record("DepthMask") }

func (d *recordingDevice) StencilFuncSeparate(face Face, fn graphics.CompareFunction, ref int32, readMask uint8) {
	d.record("StencilFuncSeparate")
}

func (d *recordingDevice) StencilOpSeparate(face Face, fail, depthFail, pass graphics.StencilOperation) {
	d.record("StencilOpSeparate")
	d.lastStencilOps[face] = [3]graphics.StencilOperation{fail, depthFail, pass}
}

func (d *recordingDevice) StencilMaskSeparate(face Face, writeMask uint8) {
	d.record("StencilMaskSeparate")
}

func (d *recordingDevice) CullFace(mode graphics.CullMode) {
	d.record("CullFace")
	d.cullMode = mode
}

func (d *recordingDevice) FrontFace(winding graphics.Winding) {
	d.record("FrontFace")
	d.frontFace = winding
}

func (d *recordingDevice) PolygonMode(fill graphics.FillMode) { d.record("PolygonMode") }

func (d *recordingDevice) PolygonOffset(factor, units float32) {
	d.record("PolygonOffset")
	d.lastPolygonOff = [2]float32{factor, units}
}

func (d *recordingDevice) CompileProgram(vertex, fragment string) (Program, error) {
	d.record("CompileProgram")
	if d.failCompile {
		return 0, &graphics.CompileError{Stage: "vertex", Log: "0:1: error: syntax error"}
	}
	return Program(d.newHandle()), nil
}

func (d *recordingDevice) DeleteProgram(p Program) { d.record("DeleteProgram") }

func (d *recordingDevice) UseProgram(p Program) {
	d.record("UseProgram")
	d.program = p
}

func (d *recordingDevice) SetUniform(p Program, name string, values []float32) error {
	d.record("SetUniform")
	if n := len(values); n != 1 && n != 2 && n != 3 && n != 4 && n != 16 {
		return fmt.Errorf("uniform %q length %d: %w", name, n, graphics.ErrInvalidArgument)
	}
	return nil
}

func (d *recordingDevice) CreateBuffer(target BufferTarget, sizeBytes int, data []byte, usage graphics.BufferUsage) (Buffer, error) {
	d.record("CreateBuffer")
	return Buffer(d.newHandle()), nil
}

func (d *recordingDevice) DeleteBuffer(b Buffer) { d.record("DeleteBuffer") }
func (d *recordingDevice) BindBuffer(target BufferTarget, b Buffer) { d.record("BindBuffer") }

func (d *recordingDevice) BufferSubData(target BufferTarget, b Buffer, offset int, data []byte) {
	d.record("BufferSubData")
}

func (d *recordingDevice) CreateTexture2D(width, height, mipLevels int, format graphics.TextureFormat, data []byte) (Texture, error) {
	d.record("CreateTexture2D")
	return Texture(d.newHandle()), nil
}

func (d *recordingDevice) DeleteTexture(t Texture) { d.record("DeleteTexture") }
func (d *recordingDevice) BindTexture(unit int, t Texture) { d.record("BindTexture") }

func (d *recordingDevice) TexSubImage2D(t Texture, level, width, height int, format graphics.TextureFormat, data []byte) {
	d.record("TexSubImage2D")
}

func (d *recordingDevice) GenerateMipmaps(t Texture) { d.record("GenerateMipmaps") }

func (d *recordingDevice) CreateSampler(desc graphics.SamplerDescription) (Sampler, error) {
	d.record("CreateSampler")
	d.lastSampler = desc
	return Sampler(d.newHandle()), nil
}

func (d *recordingDevice) DeleteSampler(s Sampler) { d.record("DeleteSampler") }
func (d *recordingDevice) BindSampler(unit int, s Sampler) { d.record("BindSampler") }

func (d *recordingDevice) SetViewport(x, y, width, height int) { d.record("SetViewport") }
func (d *recordingDevice) SetScissor(x, y, width, height int) { d.record("SetScissor") }

func (d *recordingDevice) Draw(topology graphics.PrimitiveTopology, first, count int) {
	d.record("Draw")
}

func (d *recordingDevice) DrawIndexed(topology graphics.PrimitiveTopology, format graphics.IndexFormat, first, count int) {
	d.record("DrawIndexed")
}

func (d *recordingDevice) SwapInterval(interval int) { d.record("SwapInterval") }
func (d *recordingDevice) SwapBuffers() { d.record("SwapBuffers") }
