package gl

import (
	"fmt"
	"sync/atomic"

	"github.com/Mattiemus/Kynto2-sub008/graphics"
)

// BackendName is the registry name this package registers under.
const BackendName = "opengl"

func init() {
	graphics.RegisterBackend(BackendName, 100, func() (graphics.Backend, error) {
		device, err := NewGLDevice()
		if err != nil {
			return nil, err
		}
		return NewBackend(device)
	}, nil)
}

// Backend is the OpenGL backend: one device, one state cache, a shared
// program cache, and a factory per resource kind.
type Backend struct {
	device   Device
	caps     graphics.Capabilities
	cache    *StateCache
	programs *programCache
	closed   atomic.Bool
}

// NewBackend wraps an already-initialized device. The device's GL context
// must be current; construction seeds the state cache with the driver's
// actual state.
func NewBackend(device Device) (*Backend, error) {
	if device == nil {
		return nil, fmt.Errorf("nil device: %w", graphics.ErrInvalidArgument)
	}

	limits := device.Limits()
	caps := graphics.Capabilities{
		MaxRenderTargets:     limits.MaxDrawBuffers,
		MaxVertexAttributes:  limits.MaxVertexAttributes,
		MaxTextureSize:       limits.MaxTextureSize,
		MaxAnisotropy:        limits.MaxAnisotropy,
		MaxSamples:           limits.MaxSamples,
		IndependentBlend:     limits.MaxDrawBuffers > 1,
		AlphaToCoverage:      limits.MaxSamples > 1,
		SeparateStateObjects: true,
	}
	if caps.MaxRenderTargets < 1 {
		caps.MaxRenderTargets = 1
	}
	if caps.MaxRenderTargets > graphics.MaxRenderTargets {
		caps.MaxRenderTargets = graphics.MaxRenderTargets
	}

	b := &Backend{
		device:   device,
		caps:     caps,
		programs: newProgramCache(device),
	}
	b.cache = NewStateCache(device)

	graphics.Logger().Info("opengl backend opened",
		"draw buffers", caps.MaxRenderTargets,
		"max texture", caps.MaxTextureSize,
		"samples", caps.MaxSamples)
	return b, nil
}

// Name implements graphics.Backend.
func (b *Backend) Name() string { return BackendName }

// Capabilities implements graphics.Backend.
func (b *Backend) Capabilities() graphics.Capabilities { return b.caps }

// Device returns the device the backend drives. Diagnostic; tests use it
// to reach the recording fake.
func (b *Backend) Device() Device { return b.device }

// ProgramCacheStats reports compiled-program cache hits and misses.
func (b *Backend) ProgramCacheStats() (hits, misses uint64) {
	return b.programs.stats()
}

// live reports whether dispose paths may still touch the device. False
// once the backend closed or the GL context died.
func (b *Backend) live() bool {
	return !b.closed.Load() && b.device.Live()
}

// stateCache returns the backend's state cache. GL has one device context
// per backend, so contexts share the cache.
func (b *Backend) stateCache() *StateCache { return b.cache }

// Factories implements graphics.Backend.
func (b *Backend) Factories() []graphics.Factory {
	return []graphics.Factory{
		&vertexBufferFactory{backend: b},
		&indexBufferFactory{backend: b},
		&textureFactory{backend: b},
		&blendStateFactory{},
		&depthStencilStateFactory{},
		&rasterizerStateFactory{},
		&samplerStateFactory{backend: b},
		&shaderProgramFactory{backend: b},
		&swapChainFactory{backend: b},
	}
}

// NewContext implements graphics.Backend. The returned context shares the
// backend's state cache; GL exposes a single device context.
func (b *Backend) NewContext() (graphics.ContextImplementation, error) {
	if b.closed.Load() {
		return nil, graphics.ErrSystemClosed
	}
	return newGLContext(b), nil
}

// Close implements graphics.Backend. Idempotent. Resources disposed after
// Close degrade to silent no-ops.
func (b *Backend) Close() error {
	if b.closed.Swap(true) {
		return nil
	}
	if b.device.Live() {
		b.programs.close()
	}
	return nil
}

type vertexBufferFactory struct{ backend *Backend }

func (f *vertexBufferFactory) Kind() graphics.ResourceKind { return graphics.KindVertexBuffer }

func (f *vertexBufferFactory) CreateVertexBuffer(usage graphics.BufferUsage, sizeBytes int, data []byte) (graphics.BufferImplementation, error) {
	h, err := f.backend.device.CreateBuffer(TargetArrayBuffer, sizeBytes, data, usage)
	if err != nil {
		return nil, err
	}
	return &glBuffer{backend: f.backend, kind: graphics.KindVertexBuffer, target: TargetArrayBuffer, handle: h}, nil
}

type indexBufferFactory struct{ backend *Backend }

func (f *indexBufferFactory) Kind() graphics.ResourceKind { return graphics.KindIndexBuffer }

func (f *indexBufferFactory) CreateIndexBuffer(usage graphics.BufferUsage, format graphics.IndexFormat, sizeBytes int, data []byte) (graphics.BufferImplementation, error) {
	h, err := f.backend.device.CreateBuffer(TargetElementArrayBuffer, sizeBytes, data, usage)
	if err != nil {
		return nil, err
	}
	return &glBuffer{backend: f.backend, kind: graphics.KindIndexBuffer, target: TargetElementArrayBuffer, handle: h}, nil
}

type textureFactory struct{ backend *Backend }

func (f *textureFactory) Kind() graphics.ResourceKind { return graphics.KindTexture2D }

func (f *textureFactory) CreateTexture2D(width, height, mipLevels int, format graphics.TextureFormat, data []byte) (graphics.Texture2DImplementation, error) {
	h, err := f.backend.device.CreateTexture2D(width, height, mipLevels, format, data)
	if err != nil {
		return nil, err
	}
	return &glTexture2D{backend: f.backend, handle: h, width: width, height: height, format: format}, nil
}

type blendStateFactory struct{}

func (blendStateFactory) Kind() graphics.ResourceKind { return graphics.KindBlendState }

func (blendStateFactory) CreateBlendState(desc graphics.BlendDescription) (graphics.Implementation, error) {
	return &glStateObject{kind: graphics.KindBlendState}, nil
}

type depthStencilStateFactory struct{}

func (depthStencilStateFactory) Kind() graphics.ResourceKind { return graphics.KindDepthStencilState }

func (depthStencilStateFactory) CreateDepthStencilState(desc graphics.DepthStencilDescription) (graphics.Implementation, error) {
	return &glStateObject{kind: graphics.KindDepthStencilState}, nil
}

type rasterizerStateFactory struct{}

func (rasterizerStateFactory) Kind() graphics.ResourceKind { return graphics.KindRasterizerState }

func (rasterizerStateFactory) CreateRasterizerState(desc graphics.RasterizerDescription) (graphics.Implementation, error) {
	return &glStateObject{kind: graphics.KindRasterizerState}, nil
}

type samplerStateFactory struct{ backend *Backend }

func (f *samplerStateFactory) Kind() graphics.ResourceKind { return graphics.KindSamplerState }

func (f *samplerStateFactory) CreateSamplerState(desc graphics.SamplerDescription) (graphics.SamplerStateImplementation, error) {
	// Lazy: the GL sampler object is created on first Bind.
	return &glSamplerState{backend: f.backend, desc: desc}, nil
}

type shaderProgramFactory struct{ backend *Backend }

func (f *shaderProgramFactory) Kind() graphics.ResourceKind { return graphics.KindShaderProgram }

func (f *shaderProgramFactory) CreateShaderProgram(src graphics.ShaderSource) (graphics.ShaderProgramImplementation, error) {
	if !src.HasGLSL() {
		return nil, fmt.Errorf("opengl backend needs GLSL source: %w", graphics.ErrInvalidArgument)
	}
	p, key, err := f.backend.programs.acquire(src.VertexGLSL, src.FragmentGLSL)
	if err != nil {
		return nil, err
	}
	return &glShaderProgram{backend: f.backend, handle: p, cacheKey: key}, nil
}

type swapChainFactory struct{ backend *Backend }

func (f *swapChainFactory) Kind() graphics.ResourceKind { return graphics.KindSwapChain }

func (f *swapChainFactory) CreateSwapChain(width, height int, format graphics.TextureFormat) (graphics.SwapChainImplementation, error) {
	return &glSwapChain{backend: f.backend, width: width, height: height}, nil
}
