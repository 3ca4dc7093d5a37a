package gl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Mattiemus/Kynto2-sub008/graphics"
)

// Anisotropic filtering is EXT_texture_filter_anisotropic, universally
// present but outside the core enum set go-gl generates.
const (
	glTextureMaxAnisotropy    = 0x84FE
	glMaxTextureMaxAnisotropy = 0x84FF
)

// GLDevice implements Device over go-gl. The GL context must be current
// on the calling goroutine for every method, including construction.
type GLDevice struct {
	limits  Limits
	live    func() bool
	present func()
}

// NewGLDevice initializes go-gl against the current context and captures
// the driver limits. Fails when no GL context is current.
func NewGLDevice() (*GLDevice, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl: init failed (no current context?): %w", err)
	}

	d := &GLDevice{
		live:    func() bool { return true },
		present: func() {},
	}
	d.limits = Limits{
		MaxDrawBuffers:      int(getInteger(gl.MAX_DRAW_BUFFERS)),
		MaxVertexAttributes: int(getInteger(gl.MAX_VERTEX_ATTRIBS)),
		MaxTextureSize:      int(getInteger(gl.MAX_TEXTURE_SIZE)),
		MaxAnisotropy:       int(getInteger(glMaxTextureMaxAnisotropy)),
		MaxSamples:          int(getInteger(gl.MAX_SAMPLES)),
	}
	if d.limits.MaxAnisotropy < 1 {
		d.limits.MaxAnisotropy = 1
	}
	return d, nil
}

// SetLiveFunc installs the context-liveness probe, normally wired to the
// owning window's lifetime. Defaults to always live.
func (d *GLDevice) SetLiveFunc(f func() bool) {
	if f != nil {
		d.live = f
	}
}

// SetPresentFunc installs the buffer-swap hook, normally the window's
// SwapBuffers. Defaults to a no-op for offscreen use.
func (d *GLDevice) SetPresentFunc(f func()) {
	if f != nil {
		d.present = f
	}
}

func getInteger(pname uint32) int32 {
	var v int32
	gl.GetIntegerv(pname, &v)
	return v
}

func (d *GLDevice) Live() bool { return d.live() }

func (d *GLDevice) QueryCapability(cap Capability) bool {
	return gl.IsEnabled(capabilityEnum(cap))
}

func (d *GLDevice) QueryClearColor() [4]float32 {
	var v [4]float32
	gl.GetFloatv(gl.COLOR_CLEAR_VALUE, &v[0])
	return v
}

func (d *GLDevice) QueryClearDepth() float64 {
	var v float64
	gl.GetDoublev(gl.DEPTH_CLEAR_VALUE, &v)
	return v
}

func (d *GLDevice) QueryClearStencil() int {
	return int(getInteger(gl.STENCIL_CLEAR_VALUE))
}

func (d *GLDevice) QueryFrontFace() graphics.Winding {
	if getInteger(gl.FRONT_FACE) == gl.CW {
		return graphics.WindingClockwise
	}
	return graphics.WindingCounterClockwise
}

func (d *GLDevice) QueryCullFace() graphics.CullMode {
	switch getInteger(gl.CULL_FACE_MODE) {
	case gl.FRONT:
		return graphics.CullFront
	default:
		return graphics.CullBack
	}
}

func (d *GLDevice) QueryProgram() Program {
	return Program(getInteger(gl.CURRENT_PROGRAM))
}

func (d *GLDevice) Limits() Limits { return d.limits }

func (d *GLDevice) Enable(cap Capability)  { gl.Enable(capabilityEnum(cap)) }
func (d *GLDevice) Disable(cap Capability) { gl.Disable(capabilityEnum(cap)) }

func (d *GLDevice) EnableIndexed(cap Capability, index int) {
	gl.Enablei(capabilityEnum(cap), uint32(index))
}

func (d *GLDevice) DisableIndexed(cap Capability, index int) {
	gl.Disablei(capabilityEnum(cap), uint32(index))
}

func (d *GLDevice) SetClearColor(rgba [4]float32) {
	gl.ClearColor(rgba[0], rgba[1], rgba[2], rgba[3])
}

func (d *GLDevice) SetClearDepth(depth float64) { gl.ClearDepth(depth) }
func (d *GLDevice) SetClearStencil(stencil int) { gl.ClearStencil(int32(stencil)) }

func (d *GLDevice) Clear(color, depth, stencil bool) {
	var mask uint32
	if color {
		mask |= gl.COLOR_BUFFER_BIT
	}
	if depth {
		mask |= gl.DEPTH_BUFFER_BIT
	}
	if stencil {
		mask |= gl.STENCIL_BUFFER_BIT
	}
	if mask != 0 {
		gl.Clear(mask)
	}
}

func (d *GLDevice) BlendFuncSeparate(index int, srcRGB, dstRGB, srcAlpha, dstAlpha graphics.Blend) {
	gl.BlendFuncSeparatei(uint32(index),
		blendEnum(srcRGB), blendEnum(dstRGB),
		blendEnum(srcAlpha), blendEnum(dstAlpha))
}

func (d *GLDevice) BlendEquationSeparate(index int, rgb, alpha graphics.BlendOperation) {
	gl.BlendEquationSeparatei(uint32(index), blendOpEnum(rgb), blendOpEnum(alpha))
}

func (d *GLDevice) BlendColor(rgba [4]float32) {
	gl.BlendColor(rgba[0], rgba[1], rgba[2], rgba[3])
}

func (d *GLDevice) ColorMask(index int, r, g, b, a bool) {
	gl.ColorMaski(uint32(index), r, g, b, a)
}

func (d *GLDevice) DepthFunc(fn graphics.CompareFunction) { gl.DepthFunc(compareEnum(fn)) }
func (d *GLDevice) DepthMask(write bool)                  { gl.DepthMask(write) }

func (d *GLDevice) StencilFuncSeparate(face Face, fn graphics.CompareFunction, ref int32, readMask uint8) {
	gl.StencilFuncSeparate(faceEnum(face), compareEnum(fn), ref, uint32(readMask))
}

func (d *GLDevice) StencilOpSeparate(face Face, fail, depthFail, pass graphics.StencilOperation) {
	gl.StencilOpSeparate(faceEnum(face), stencilOpEnum(fail), stencilOpEnum(depthFail), stencilOpEnum(pass))
}

func (d *GLDevice) StencilMaskSeparate(face Face, writeMask uint8) {
	gl.StencilMaskSeparate(faceEnum(face), uint32(writeMask))
}

func (d *GLDevice) CullFace(mode graphics.CullMode) {
	if mode == graphics.CullFront {
		gl.CullFace(gl.FRONT)
	} else {
		gl.CullFace(gl.BACK)
	}
}

func (d *GLDevice) FrontFace(winding graphics.Winding) {
	if winding == graphics.WindingClockwise {
		gl.FrontFace(gl.CW)
	} else {
		gl.FrontFace(gl.CCW)
	}
}

func (d *GLDevice) PolygonMode(fill graphics.FillMode) {
	if fill == graphics.FillWireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}
}

func (d *GLDevice) PolygonOffset(factor, units float32) {
	gl.PolygonOffset(factor, units)
}

func (d *GLDevice) CompileProgram(vertex, fragment string) (Program, error) {
	vs, err := compileStage(gl.VERTEX_SHADER, "vertex", vertex)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vs)

	fs, err := compileStage(gl.FRAGMENT_SHADER, "fragment", fragment)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fs)

	p := gl.CreateProgram()
	gl.AttachShader(p, vs)
	gl.AttachShader(p, fs)
	gl.LinkProgram(p)

	var status int32
	gl.GetProgramiv(p, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		log := programLog(p)
		gl.DeleteProgram(p)
		return 0, &graphics.CompileError{Stage: "link", Log: log}
	}
	return Program(p), nil
}

func compileStage(kind uint32, stage, source string) (uint32, error) {
	s := gl.CreateShader(kind)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(s, 1, csources, nil)
	free()
	gl.CompileShader(s)

	var status int32
	gl.GetShaderiv(s, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(s, gl.INFO_LOG_LENGTH, &logLen)
		log := strings.Repeat("\x00", int(logLen)+1)
		gl.GetShaderInfoLog(s, logLen, nil, gl.Str(log))
		gl.DeleteShader(s)
		return 0, &graphics.CompileError{Stage: stage, Log: strings.TrimRight(log, "\x00")}
	}
	return s, nil
}

func programLog(p uint32) string {
	var logLen int32
	gl.GetProgramiv(p, gl.INFO_LOG_LENGTH, &logLen)
	log := strings.Repeat("\x00", int(logLen)+1)
	gl.GetProgramInfoLog(p, logLen, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (d *GLDevice) DeleteProgram(p Program) { gl.DeleteProgram(uint32(p)) }
func (d *GLDevice) UseProgram(p Program)    { gl.UseProgram(uint32(p)) }

func (d *GLDevice) SetUniform(p Program, name string, values []float32) error {
	loc := gl.GetUniformLocation(uint32(p), gl.Str(name+"\x00"))
	if loc < 0 {
		// Unknown names are tolerated so materials can carry supersets
		// of a program's parameters.
		return nil
	}
	switch len(values) {
	case 1:
		gl.Uniform1fv(loc, 1, &values[0])
	case 2:
		gl.Uniform2fv(loc, 1, &values[0])
	case 3:
		gl.Uniform3fv(loc, 1, &values[0])
	case 4:
		gl.Uniform4fv(loc, 1, &values[0])
	case 16:
		gl.UniformMatrix4fv(loc, 1, false, &values[0])
	default:
		return fmt.Errorf("uniform %q length %d: %w", name, len(values), graphics.ErrInvalidArgument)
	}
	return nil
}

func (d *GLDevice) CreateBuffer(target BufferTarget, sizeBytes int, data []byte, usage graphics.BufferUsage) (Buffer, error) {
	var id uint32
	gl.GenBuffers(1, &id)
	gl.BindBuffer(bufferTargetEnum(target), id)

	glUsage := uint32(gl.STATIC_DRAW)
	if usage == graphics.UsageDynamic {
		glUsage = gl.DYNAMIC_DRAW
	}
	if len(data) > 0 {
		gl.BufferData(bufferTargetEnum(target), sizeBytes, gl.Ptr(data), glUsage)
	} else {
		gl.BufferData(bufferTargetEnum(target), sizeBytes, nil, glUsage)
	}
	return Buffer(id), nil
}

func (d *GLDevice) DeleteBuffer(b Buffer) {
	id := uint32(b)
	gl.DeleteBuffers(1, &id)
}

func (d *GLDevice) BindBuffer(target BufferTarget, b Buffer) {
	gl.BindBuffer(bufferTargetEnum(target), uint32(b))
}

func (d *GLDevice) BufferSubData(target BufferTarget, b Buffer, offset int, data []byte) {
	gl.BufferSubData(bufferTargetEnum(target), offset, len(data), gl.Ptr(data))
}

func (d *GLDevice) CreateTexture2D(width, height, mipLevels int, format graphics.TextureFormat, data []byte) (Texture, error) {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAX_LEVEL, int32(mipLevels-1))

	internal, pixFormat, pixType := textureFormatEnums(format)
	w, h := int32(width), int32(height)
	for level := 0; level < mipLevels; level++ {
		if level == 0 && len(data) > 0 {
			gl.TexImage2D(gl.TEXTURE_2D, int32(level), internal, w, h, 0, pixFormat, pixType, gl.Ptr(data))
		} else {
			gl.TexImage2D(gl.TEXTURE_2D, int32(level), internal, w, h, 0, pixFormat, pixType, nil)
		}
		if w > 1 {
			w /= 2
		}
		if h > 1 {
			h /= 2
		}
	}
	return Texture(id), nil
}

func (d *GLDevice) DeleteTexture(t Texture) {
	id := uint32(t)
	gl.DeleteTextures(1, &id)
}

func (d *GLDevice) BindTexture(unit int, t Texture) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, uint32(t))
}

func (d *GLDevice) TexSubImage2D(t Texture, level, width, height int, format graphics.TextureFormat, data []byte) {
	gl.BindTexture(gl.TEXTURE_2D, uint32(t))
	_, pixFormat, pixType := textureFormatEnums(format)
	gl.TexSubImage2D(gl.TEXTURE_2D, int32(level), 0, 0, int32(width), int32(height), pixFormat, pixType, gl.Ptr(data))
}

func (d *GLDevice) GenerateMipmaps(t Texture) {
	gl.BindTexture(gl.TEXTURE_2D, uint32(t))
	gl.GenerateMipmap(gl.TEXTURE_2D)
}

func (d *GLDevice) CreateSampler(desc graphics.SamplerDescription) (Sampler, error) {
	var id uint32
	gl.GenSamplers(1, &id)

	gl.SamplerParameteri(id, gl.TEXTURE_WRAP_S, addressEnum(desc.AddressU))
	gl.SamplerParameteri(id, gl.TEXTURE_WRAP_T, addressEnum(desc.AddressV))
	gl.SamplerParameteri(id, gl.TEXTURE_WRAP_R, addressEnum(desc.AddressW))

	switch desc.Filter {
	case graphics.FilterPoint:
		gl.SamplerParameteri(id, gl.TEXTURE_MIN_FILTER, gl.NEAREST_MIPMAP_NEAREST)
		gl.SamplerParameteri(id, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	default:
		gl.SamplerParameteri(id, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
		gl.SamplerParameteri(id, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	}
	if desc.Filter == graphics.FilterAnisotropic && desc.MaxAnisotropy > 1 {
		gl.SamplerParameterf(id, glTextureMaxAnisotropy, float32(desc.MaxAnisotropy))
	}

	gl.SamplerParameterf(id, gl.TEXTURE_MIN_LOD, desc.MinLOD)
	gl.SamplerParameterf(id, gl.TEXTURE_MAX_LOD, desc.MaxLOD)
	gl.SamplerParameterf(id, gl.TEXTURE_LOD_BIAS, desc.LODBias)

	border := desc.BorderColor.Components()
	gl.SamplerParameterfv(id, gl.TEXTURE_BORDER_COLOR, &border[0])
	return Sampler(id), nil
}

func (d *GLDevice) DeleteSampler(s Sampler) {
	id := uint32(s)
	gl.DeleteSamplers(1, &id)
}

func (d *GLDevice) BindSampler(unit int, s Sampler) {
	gl.BindSampler(uint32(unit), uint32(s))
}

func (d *GLDevice) SetViewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (d *GLDevice) SetScissor(x, y, width, height int) {
	gl.Scissor(int32(x), int32(y), int32(width), int32(height))
}

func (d *GLDevice) Draw(topology graphics.PrimitiveTopology, first, count int) {
	gl.DrawArrays(topologyEnum(topology), int32(first), int32(count))
}

func (d *GLDevice) DrawIndexed(topology graphics.PrimitiveTopology, format graphics.IndexFormat, first, count int) {
	glType := uint32(gl.UNSIGNED_SHORT)
	if format == graphics.IndexUint32 {
		glType = gl.UNSIGNED_INT
	}
	gl.DrawElements(topologyEnum(topology), int32(count), glType, gl.PtrOffset(first*format.Bytes()))
}

func (d *GLDevice) SwapInterval(interval int) {
	// Swap interval lives on the windowing layer (WGL/GLX/EGL), not core
	// GL; the present hook's owner configures it.
}

func (d *GLDevice) SwapBuffers() { d.present() }

// Enum translation tables.

func capabilityEnum(cap Capability) uint32 {
	switch cap {
	case CapBlend:
		return gl.BLEND
	case CapCullFace:
		return gl.CULL_FACE
	case CapDepthTest:
		return gl.DEPTH_TEST
	case CapStencilTest:
		return gl.STENCIL_TEST
	case CapScissorTest:
		return gl.SCISSOR_TEST
	case CapMultisample:
		return gl.MULTISAMPLE
	case CapLineSmooth:
		return gl.LINE_SMOOTH
	case CapPolygonOffsetFill:
		return gl.POLYGON_OFFSET_FILL
	case CapAlphaToCoverage:
		return gl.SAMPLE_ALPHA_TO_COVERAGE
	default:
		return gl.BLEND
	}
}

func faceEnum(face Face) uint32 {
	switch face {
	case FaceFront:
		return gl.FRONT
	case FaceBack:
		return gl.BACK
	default:
		return gl.FRONT_AND_BACK
	}
}

func bufferTargetEnum(target BufferTarget) uint32 {
	if target == TargetElementArrayBuffer {
		return gl.ELEMENT_ARRAY_BUFFER
	}
	return gl.ARRAY_BUFFER
}

func blendEnum(b graphics.Blend) uint32 {
	switch b {
	case graphics.BlendZero:
		return gl.ZERO
	case graphics.BlendOne:
		return gl.ONE
	case graphics.BlendSourceColor:
		return gl.SRC_COLOR
	case graphics.BlendInverseSourceColor:
		return gl.ONE_MINUS_SRC_COLOR
	case graphics.BlendSourceAlpha:
		return gl.SRC_ALPHA
	case graphics.BlendInverseSourceAlpha:
		return gl.ONE_MINUS_SRC_ALPHA
	case graphics.BlendDestinationColor:
		return gl.DST_COLOR
	case graphics.BlendInverseDestinationColor:
		return gl.ONE_MINUS_DST_COLOR
	case graphics.BlendDestinationAlpha:
		return gl.DST_ALPHA
	case graphics.BlendInverseDestinationAlpha:
		return gl.ONE_MINUS_DST_ALPHA
	case graphics.BlendFactorColor:
		return gl.CONSTANT_COLOR
	case graphics.BlendInverseFactorColor:
		return gl.ONE_MINUS_CONSTANT_COLOR
	case graphics.BlendSourceAlphaSaturation:
		return gl.SRC_ALPHA_SATURATE
	default:
		return gl.ONE
	}
}

func blendOpEnum(op graphics.BlendOperation) uint32 {
	switch op {
	case graphics.BlendOpSubtract:
		return gl.FUNC_SUBTRACT
	case graphics.BlendOpReverseSubtract:
		return gl.FUNC_REVERSE_SUBTRACT
	case graphics.BlendOpMin:
		return gl.MIN
	case graphics.BlendOpMax:
		return gl.MAX
	default:
		return gl.FUNC_ADD
	}
}

func compareEnum(fn graphics.CompareFunction) uint32 {
	switch fn {
	case graphics.CompareNever:
		return gl.NEVER
	case graphics.CompareLess:
		return gl.LESS
	case graphics.CompareEqual:
		return gl.EQUAL
	case graphics.CompareLessEqual:
		return gl.LEQUAL
	case graphics.CompareGreater:
		return gl.GREATER
	case graphics.CompareNotEqual:
		return gl.NOTEQUAL
	case graphics.CompareGreaterEqual:
		return gl.GEQUAL
	default:
		return gl.ALWAYS
	}
}

func stencilOpEnum(op graphics.StencilOperation) uint32 {
	switch op {
	case graphics.StencilZero:
		return gl.ZERO
	case graphics.StencilReplace:
		return gl.REPLACE
	case graphics.StencilIncrementClamp:
		return gl.INCR
	case graphics.StencilDecrementClamp:
		return gl.DECR
	case graphics.StencilInvert:
		return gl.INVERT
	case graphics.StencilIncrementWrap:
		return gl.INCR_WRAP
	case graphics.StencilDecrementWrap:
		return gl.DECR_WRAP
	default:
		return gl.KEEP
	}
}

func addressEnum(mode graphics.TextureAddressMode) int32 {
	switch mode {
	case graphics.AddressMirror:
		return gl.MIRRORED_REPEAT
	case graphics.AddressClamp:
		return gl.CLAMP_TO_EDGE
	case graphics.AddressBorder:
		return gl.CLAMP_TO_BORDER
	default:
		return gl.REPEAT
	}
}

func textureFormatEnums(format graphics.TextureFormat) (internal int32, pixFormat, pixType uint32) {
	switch format {
	case graphics.FormatBGRA8:
		return gl.RGBA8, gl.BGRA, gl.UNSIGNED_BYTE
	case graphics.FormatR8:
		return gl.R8, gl.RED, gl.UNSIGNED_BYTE
	case graphics.FormatDepth24Stencil8:
		return gl.DEPTH24_STENCIL8, gl.DEPTH_STENCIL, gl.UNSIGNED_INT_24_8
	default:
		return gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE
	}
}

func topologyEnum(topology graphics.PrimitiveTopology) uint32 {
	switch topology {
	case graphics.TopologyTriangleStrip:
		return gl.TRIANGLE_STRIP
	case graphics.TopologyLineList:
		return gl.LINES
	case graphics.TopologyLineStrip:
		return gl.LINE_STRIP
	case graphics.TopologyPointList:
		return gl.POINTS
	default:
		return gl.TRIANGLES
	}
}
