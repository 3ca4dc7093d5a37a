package gl

import (
	"errors"
	"testing"

	"github.com/Mattiemus/Kynto2-sub008/graphics"
)

func newTestBackend(t *testing.T) (*recordingDevice, *Backend) {
	t.Helper()
	device := newRecordingDevice()
	b, err := NewBackend(device)
	if err != nil {
		t.Fatalf("NewBackend: %v", err)
	}
	device.reset()
	return device, b
}

func factoryOf[T any](t *testing.T, b *Backend) T {
	t.Helper()
	for _, f := range b.Factories() {
		if typed, ok := f.(T); ok {
			return typed
		}
	}
	var zero T
	t.Fatalf("backend has no %T factory", zero)
	return zero
}

func TestBackendCapabilitiesFromLimits(t *testing.T) {
	device := newRecordingDevice()
	device.limits = Limits{
		MaxDrawBuffers:      16,
		MaxVertexAttributes: 16,
		MaxTextureSize:      8192,
		MaxAnisotropy:       8,
		MaxSamples:          4,
	}
	b, err := NewBackend(device)
	if err != nil {
		t.Fatalf("NewBackend: %v", err)
	}

	caps := b.Capabilities()
	if caps.MaxRenderTargets != graphics.MaxRenderTargets {
		t.Errorf("MaxRenderTargets = %d, want clamped to %d", caps.MaxRenderTargets, graphics.MaxRenderTargets)
	}
	if !caps.IndependentBlend {
		t.Error("IndependentBlend = false with multiple draw buffers")
	}
	if !caps.AlphaToCoverage {
		t.Error("AlphaToCoverage = false with multisampling available")
	}
	if !caps.SeparateStateObjects {
		t.Error("SeparateStateObjects = false for the GL backend")
	}
}

func TestBackendFactoriesCoverAllKinds(t *testing.T) {
	_, b := newTestBackend(t)

	got := make(map[graphics.ResourceKind]bool)
	for _, f := range b.Factories() {
		if got[f.Kind()] {
			t.Errorf("duplicate factory for kind %v", f.Kind())
		}
		got[f.Kind()] = true
	}
	want := []graphics.ResourceKind{
		graphics.KindVertexBuffer, graphics.KindIndexBuffer, graphics.KindTexture2D,
		graphics.KindBlendState, graphics.KindDepthStencilState, graphics.KindRasterizerState,
		graphics.KindSamplerState, graphics.KindShaderProgram, graphics.KindSwapChain,
	}
	for _, kind := range want {
		if !got[kind] {
			t.Errorf("no factory for kind %v", kind)
		}
	}
}

func TestProgramCacheSharesIdenticalSource(t *testing.T) {
	device, b := newTestBackend(t)
	shaders := factoryOf[graphics.ShaderProgramFactory](t, b)

	src := graphics.ShaderSource{VertexGLSL: "void main() {}", FragmentGLSL: "void main() {}"}
	first, err := shaders.CreateShaderProgram(src)
	if err != nil {
		t.Fatalf("CreateShaderProgram: %v", err)
	}
	second, err := shaders.CreateShaderProgram(src)
	if err != nil {
		t.Fatalf("CreateShaderProgram: %v", err)
	}

	if got := device.count("CompileProgram"); got != 1 {
		t.Errorf("CompileProgram calls = %d for identical source, want 1", got)
	}
	if hits, misses := b.ProgramCacheStats(); hits != 1 || misses != 1 {
		t.Errorf("cache stats = %d hits %d misses, want 1 and 1", hits, misses)
	}

	// The program survives until the last reference drops.
	first.Dispose()
	if got := device.count("DeleteProgram"); got != 0 {
		t.Errorf("DeleteProgram calls = %d with a live reference, want 0", got)
	}
	second.Dispose()
	if got := device.count("DeleteProgram"); got != 1 {
		t.Errorf("DeleteProgram calls = %d after last release, want 1", got)
	}

	// Double dispose releases only one reference.
	second.Dispose()
	if got := device.count("DeleteProgram"); got != 1 {
		t.Errorf("DeleteProgram calls = %d after double dispose, want 1", got)
	}
}

func TestShaderProgramCompileError(t *testing.T) {
	device, b := newTestBackend(t)
	device.failCompile = true
	shaders := factoryOf[graphics.ShaderProgramFactory](t, b)

	_, err := shaders.CreateShaderProgram(graphics.ShaderSource{VertexGLSL: "x", FragmentGLSL: "y"})
	var compileErr *graphics.CompileError
	if !errors.As(err, &compileErr) {
		t.Fatalf("err = %v, want *CompileError", err)
	}
	if compileErr.Stage != "vertex" || compileErr.Log == "" {
		t.Errorf("CompileError = %+v, want vertex stage with a log", compileErr)
	}
}

func TestShaderProgramRejectsMissingGLSL(t *testing.T) {
	_, b := newTestBackend(t)
	shaders := factoryOf[graphics.ShaderProgramFactory](t, b)

	_, err := shaders.CreateShaderProgram(graphics.ShaderSource{WGSL: "fn main() {}"})
	if !errors.Is(err, graphics.ErrInvalidArgument) {
		t.Errorf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestSamplerStateLazyCreation(t *testing.T) {
	device, b := newTestBackend(t)
	samplers := factoryOf[graphics.SamplerStateFactory](t, b)

	desc := graphics.SamplerAnisotropicWrap(64)

	impl, err := samplers.CreateSamplerState(desc)
	if err != nil {
		t.Fatalf("CreateSamplerState: %v", err)
	}
	if got := device.count("CreateSampler"); got != 0 {
		t.Errorf("CreateSampler calls = %d before first bind, want 0", got)
	}

	if err := impl.Bind(0); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if err := impl.Bind(1); err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if got := device.count("CreateSampler"); got != 1 {
		t.Errorf("CreateSampler calls = %d, want 1", got)
	}
	if got := device.count("BindSampler"); got != 2 {
		t.Errorf("BindSampler calls = %d, want 2", got)
	}
	// Requested anisotropy exceeds the device limit and clamps.
	if got := device.lastSampler.MaxAnisotropy; got != device.limits.MaxAnisotropy {
		t.Errorf("sampler anisotropy = %d, want clamped to %d", got, device.limits.MaxAnisotropy)
	}

	impl.Dispose()
	if got := device.count("DeleteSampler"); got != 1 {
		t.Errorf("DeleteSampler calls = %d, want 1", got)
	}
}

func TestDisposeAfterCloseSkipsDevice(t *testing.T) {
	device, b := newTestBackend(t)
	buffers := factoryOf[graphics.VertexBufferFactory](t, b)

	impl, err := buffers.CreateVertexBuffer(graphics.UsageStatic, 64, nil)
	if err != nil {
		t.Fatalf("CreateVertexBuffer: %v", err)
	}

	if err := b.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	device.reset()

	impl.Dispose()
	if got := device.count("DeleteBuffer"); got != 0 {
		t.Errorf("DeleteBuffer calls = %d after backend close, want 0", got)
	}
}

func TestCloseIdempotentAndBlocksContexts(t *testing.T) {
	_, b := newTestBackend(t)

	if err := b.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := b.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	if _, err := b.NewContext(); !errors.Is(err, graphics.ErrSystemClosed) {
		t.Errorf("NewContext after close: err = %v, want ErrSystemClosed", err)
	}
}

func TestContextClearRoutesThroughCache(t *testing.T) {
	device, b := newTestBackend(t)
	ctx, err := b.NewContext()
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}

	opts := graphics.ClearAll(graphics.Color{R: 0.1, G: 0.2, B: 0.3, A: 1})
	if err := ctx.Clear(opts); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if err := ctx.Clear(opts); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	if got := device.count("Clear"); got != 2 {
		t.Errorf("Clear calls = %d, want 2", got)
	}
	// The clear values only travel on change.
	if got := device.count("SetClearColor"); got != 1 {
		t.Errorf("SetClearColor calls = %d, want 1", got)
	}
}

func TestBufferSetDataBindsFirst(t *testing.T) {
	device, b := newTestBackend(t)
	buffers := factoryOf[graphics.VertexBufferFactory](t, b)

	impl, err := buffers.CreateVertexBuffer(graphics.UsageDynamic, 16, nil)
	if err != nil {
		t.Fatalf("CreateVertexBuffer: %v", err)
	}
	device.reset()

	if err := impl.SetData([]byte{1, 2, 3, 4}, 4); err != nil {
		t.Fatalf("SetData: %v", err)
	}
	if device.count("BindBuffer") != 1 || device.count("BufferSubData") != 1 {
		t.Errorf("SetData issued BindBuffer=%d BufferSubData=%d, want 1 and 1",
			device.count("BindBuffer"), device.count("BufferSubData"))
	}
}
