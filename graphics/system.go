package graphics

import (
	"fmt"
	"math/bits"
	"sync"
	"sync/atomic"
)

// RenderSystem owns one backend. It allocates resource ids, routes the
// creator methods to the backend's factories, and hands out device
// contexts.
//
// Creation is safe for concurrent use: id allocation is atomic and the
// factory table is read-locked. Contexts themselves are single-writer;
// see RenderContext.
type RenderSystem struct {
	backend Backend
	caps    Capabilities

	mu        sync.RWMutex
	factories map[ResourceKind]Factory
	closed    bool

	nextID atomic.Uint64
}

// NewRenderSystem opens the best available backend from the default
// registry.
func NewRenderSystem() (*RenderSystem, error) {
	return NewRenderSystemWithRegistry(defaultBackendRegistry, "")
}

// NewRenderSystemByName opens a specific named backend from the default
// registry.
func NewRenderSystemByName(name string) (*RenderSystem, error) {
	return NewRenderSystemWithRegistry(defaultBackendRegistry, name)
}

// NewRenderSystemWithRegistry resolves a backend from an explicit
// registry. An empty name selects the best available backend.
func NewRenderSystemWithRegistry(reg *BackendRegistry, name string) (*RenderSystem, error) {
	if reg == nil {
		return nil, fmt.Errorf("nil registry: %w", ErrInvalidArgument)
	}

	var (
		b   Backend
		err error
	)
	if name == "" {
		b, err = reg.OpenBest()
	} else {
		b, err = reg.Open(name)
	}
	if err != nil {
		return nil, err
	}
	return NewRenderSystemWithBackend(b)
}

// NewRenderSystemWithBackend wraps an already-open backend. The system
// takes ownership: Close closes the backend.
func NewRenderSystemWithBackend(b Backend) (*RenderSystem, error) {
	if b == nil {
		return nil, fmt.Errorf("nil backend: %w", ErrInvalidArgument)
	}

	rs := &RenderSystem{
		backend:   b,
		caps:      b.Capabilities(),
		factories: make(map[ResourceKind]Factory),
	}
	for _, f := range b.Factories() {
		if err := rs.RegisterFactory(f); err != nil {
			return nil, err
		}
	}

	Logger().Info("render system created",
		"backend", b.Name(),
		"factories", len(rs.factories))
	return rs, nil
}

// Backend returns the backend this system wraps.
func (rs *RenderSystem) Backend() Backend { return rs.backend }

// Capabilities returns the backend's capability report.
func (rs *RenderSystem) Capabilities() Capabilities { return rs.caps }

// NextResourceID allocates a fresh resource id. Ids are monotonic,
// never reused, and safe to allocate from any goroutine.
func (rs *RenderSystem) NextResourceID() uint64 {
	return rs.nextID.Add(1)
}

// RegisterFactory adds a factory for its kind. Registration fails fast
// with DuplicateFactoryError when the kind already has a factory;
// replacing a live factory would strand resources it created.
func (rs *RenderSystem) RegisterFactory(f Factory) error {
	if f == nil {
		return fmt.Errorf("nil factory: %w", ErrInvalidArgument)
	}

	rs.mu.Lock()
	defer rs.mu.Unlock()

	if rs.closed {
		return ErrSystemClosed
	}
	kind := f.Kind()
	if _, dup := rs.factories[kind]; dup {
		return &DuplicateFactoryError{Kind: kind}
	}
	rs.factories[kind] = f
	return nil
}

// IsSupported reports whether the backend registered a factory for kind.
// Unsupported kinds are a capability fact, not an error.
func (rs *RenderSystem) IsSupported(kind ResourceKind) bool {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	_, ok := rs.factories[kind]
	return ok
}

// FactoryOf returns the registered factory implementing F.
func FactoryOf[F Factory](rs *RenderSystem) (F, error) {
	var zero F

	rs.mu.RLock()
	defer rs.mu.RUnlock()

	if rs.closed {
		return zero, ErrSystemClosed
	}
	for _, f := range rs.factories {
		if typed, ok := f.(F); ok {
			return typed, nil
		}
	}
	return zero, ErrFactoryNotFound
}

// Supports reports whether a registered factory implements F.
func Supports[F Factory](rs *RenderSystem) bool {
	_, err := FactoryOf[F](rs)
	return err == nil
}

// factoryFor resolves the factory for kind, failing when the system is
// closed or the backend does not support the kind.
func (rs *RenderSystem) factoryFor(kind ResourceKind) (Factory, error) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	if rs.closed {
		return nil, ErrSystemClosed
	}
	f, ok := rs.factories[kind]
	if !ok {
		return nil, &NotSupportedError{Kind: kind}
	}
	return f, nil
}

// fullMipCount returns the number of levels in a complete mip chain for
// the given level-0 dimensions.
func fullMipCount(width, height int) int {
	m := width
	if height > m {
		m = height
	}
	return bits.Len(uint(m))
}

// CreateVertexBuffer allocates an uninitialized vertex buffer.
func (rs *RenderSystem) CreateVertexBuffer(usage BufferUsage, sizeBytes int) (*VertexBuffer, error) {
	if sizeBytes <= 0 {
		return nil, fmt.Errorf("vertex buffer size %d: %w", sizeBytes, ErrInvalidArgument)
	}
	return rs.createVertexBuffer(usage, sizeBytes, nil)
}

// CreateVertexBufferWithData allocates a vertex buffer filled with data.
func (rs *RenderSystem) CreateVertexBufferWithData(usage BufferUsage, data []byte) (*VertexBuffer, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty vertex data: %w", ErrInvalidArgument)
	}
	return rs.createVertexBuffer(usage, len(data), data)
}

func (rs *RenderSystem) createVertexBuffer(usage BufferUsage, sizeBytes int, data []byte) (*VertexBuffer, error) {
	f, err := rs.factoryFor(KindVertexBuffer)
	if err != nil {
		return nil, err
	}
	impl, err := f.(VertexBufferFactory).CreateVertexBuffer(usage, sizeBytes, data)
	if err != nil {
		return nil, err
	}
	b := &VertexBuffer{
		Resource:  newResource(rs.NextResourceID(), KindVertexBuffer, impl),
		usage:     usage,
		sizeBytes: sizeBytes,
	}
	Logger().Debug("vertex buffer created", "id", b.ID(), "size", sizeBytes, "usage", usage.String())
	return b, nil
}

// CreateIndexBuffer allocates an uninitialized index buffer. The size
// must be a whole number of indices.
func (rs *RenderSystem) CreateIndexBuffer(usage BufferUsage, format IndexFormat, sizeBytes int) (*IndexBuffer, error) {
	if sizeBytes <= 0 || sizeBytes%format.Bytes() != 0 {
		return nil, fmt.Errorf("index buffer size %d for format %s: %w", sizeBytes, format, ErrInvalidArgument)
	}
	return rs.createIndexBuffer(usage, format, sizeBytes, nil)
}

// CreateIndexBufferWithData allocates an index buffer filled with data.
func (rs *RenderSystem) CreateIndexBufferWithData(usage BufferUsage, format IndexFormat, data []byte) (*IndexBuffer, error) {
	if len(data) == 0 || len(data)%format.Bytes() != 0 {
		return nil, fmt.Errorf("index data length %d for format %s: %w", len(data), format, ErrInvalidArgument)
	}
	return rs.createIndexBuffer(usage, format, len(data), data)
}

func (rs *RenderSystem) createIndexBuffer(usage BufferUsage, format IndexFormat, sizeBytes int, data []byte) (*IndexBuffer, error) {
	f, err := rs.factoryFor(KindIndexBuffer)
	if err != nil {
		return nil, err
	}
	impl, err := f.(IndexBufferFactory).CreateIndexBuffer(usage, format, sizeBytes, data)
	if err != nil {
		return nil, err
	}
	b := &IndexBuffer{
		Resource:  newResource(rs.NextResourceID(), KindIndexBuffer, impl),
		usage:     usage,
		format:    format,
		sizeBytes: sizeBytes,
	}
	Logger().Debug("index buffer created", "id", b.ID(), "size", sizeBytes, "format", format.String())
	return b, nil
}

// CreateTexture2D allocates a 2D texture with the given mip chain and no
// initial contents.
func (rs *RenderSystem) CreateTexture2D(width, height, mipLevels int, format TextureFormat) (*Texture2D, error) {
	return rs.createTexture2D(width, height, mipLevels, format, nil)
}

// CreateTexture2DWithData allocates a 2D texture and fills mip level 0.
func (rs *RenderSystem) CreateTexture2DWithData(width, height, mipLevels int, format TextureFormat, data []byte) (*Texture2D, error) {
	if len(data) != width*height*format.BytesPerPixel() {
		return nil, fmt.Errorf("texture data length %d for %dx%d %s: %w",
			len(data), width, height, format, ErrInvalidArgument)
	}
	return rs.createTexture2D(width, height, mipLevels, format, data)
}

func (rs *RenderSystem) createTexture2D(width, height, mipLevels int, format TextureFormat, data []byte) (*Texture2D, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("texture size %dx%d: %w", width, height, ErrInvalidArgument)
	}
	if max := rs.caps.MaxTextureSize; max > 0 && (width > max || height > max) {
		return nil, fmt.Errorf("texture size %dx%d exceeds device maximum %d: %w",
			width, height, max, ErrInvalidArgument)
	}
	if mipLevels < 1 || mipLevels > fullMipCount(width, height) {
		return nil, fmt.Errorf("mip levels %d for %dx%d: %w", mipLevels, width, height, ErrInvalidArgument)
	}
	f, err := rs.factoryFor(KindTexture2D)
	if err != nil {
		return nil, err
	}
	impl, err := f.(Texture2DFactory).CreateTexture2D(width, height, mipLevels, format, data)
	if err != nil {
		return nil, err
	}
	t := &Texture2D{
		Resource:  newResource(rs.NextResourceID(), KindTexture2D, impl),
		width:     width,
		height:    height,
		mipLevels: mipLevels,
		format:    format,
	}
	Logger().Debug("texture created", "id", t.ID(), "width", width, "height", height,
		"mips", mipLevels, "format", format.String())
	return t, nil
}

// CreateBlendState wraps a blend description in a disposable resource.
func (rs *RenderSystem) CreateBlendState(desc BlendDescription) (*BlendState, error) {
	f, err := rs.factoryFor(KindBlendState)
	if err != nil {
		return nil, err
	}
	impl, err := f.(BlendStateFactory).CreateBlendState(desc)
	if err != nil {
		return nil, err
	}
	return &BlendState{
		Resource: newResource(rs.NextResourceID(), KindBlendState, impl),
		desc:     desc,
	}, nil
}

// CreateDepthStencilState wraps a depth-stencil description in a
// disposable resource.
func (rs *RenderSystem) CreateDepthStencilState(desc DepthStencilDescription) (*DepthStencilState, error) {
	f, err := rs.factoryFor(KindDepthStencilState)
	if err != nil {
		return nil, err
	}
	impl, err := f.(DepthStencilStateFactory).CreateDepthStencilState(desc)
	if err != nil {
		return nil, err
	}
	return &DepthStencilState{
		Resource: newResource(rs.NextResourceID(), KindDepthStencilState, impl),
		desc:     desc,
	}, nil
}

// CreateRasterizerState wraps a rasterizer description in a disposable
// resource.
func (rs *RenderSystem) CreateRasterizerState(desc RasterizerDescription) (*RasterizerState, error) {
	f, err := rs.factoryFor(KindRasterizerState)
	if err != nil {
		return nil, err
	}
	impl, err := f.(RasterizerStateFactory).CreateRasterizerState(desc)
	if err != nil {
		return nil, err
	}
	return &RasterizerState{
		Resource: newResource(rs.NextResourceID(), KindRasterizerState, impl),
		desc:     desc,
	}, nil
}

// CreateSamplerState wraps a sampler description in a disposable
// resource. Backends may defer native sampler allocation to first bind.
func (rs *RenderSystem) CreateSamplerState(desc SamplerDescription) (*SamplerState, error) {
	if desc.MaxAnisotropy < 1 {
		return nil, fmt.Errorf("max anisotropy %d: %w", desc.MaxAnisotropy, ErrInvalidArgument)
	}
	f, err := rs.factoryFor(KindSamplerState)
	if err != nil {
		return nil, err
	}
	impl, err := f.(SamplerStateFactory).CreateSamplerState(desc)
	if err != nil {
		return nil, err
	}
	return &SamplerState{
		Resource: newResource(rs.NextResourceID(), KindSamplerState, impl),
		desc:     desc,
	}, nil
}

// CreateShaderProgram compiles a shader program from source. Compilation
// failures return CompileError with the driver or compiler log.
func (rs *RenderSystem) CreateShaderProgram(src ShaderSource) (*ShaderProgram, error) {
	if !src.HasGLSL() && !src.HasWGSL() {
		return nil, fmt.Errorf("shader source is empty: %w", ErrInvalidArgument)
	}
	f, err := rs.factoryFor(KindShaderProgram)
	if err != nil {
		return nil, err
	}
	impl, err := f.(ShaderProgramFactory).CreateShaderProgram(src)
	if err != nil {
		return nil, err
	}
	p := &ShaderProgram{
		Resource: newResource(rs.NextResourceID(), KindShaderProgram, impl),
		source:   src,
	}
	Logger().Debug("shader program created", "id", p.ID())
	return p, nil
}

// CreateSwapChain allocates a presentation target.
func (rs *RenderSystem) CreateSwapChain(width, height int, format TextureFormat) (*SwapChain, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("swap chain size %dx%d: %w", width, height, ErrInvalidArgument)
	}
	f, err := rs.factoryFor(KindSwapChain)
	if err != nil {
		return nil, err
	}
	impl, err := f.(SwapChainFactory).CreateSwapChain(width, height, format)
	if err != nil {
		return nil, err
	}
	return &SwapChain{
		Resource: newResource(rs.NextResourceID(), KindSwapChain, impl),
		width:    width,
		height:   height,
		format:   format,
	}, nil
}

// CreateContext creates a device context for recording state changes and
// draws. Each context is owned by a single goroutine at a time.
func (rs *RenderSystem) CreateContext() (*RenderContext, error) {
	rs.mu.RLock()
	closed := rs.closed
	rs.mu.RUnlock()

	if closed {
		return nil, ErrSystemClosed
	}
	impl, err := rs.backend.NewContext()
	if err != nil {
		return nil, err
	}
	return newRenderContext(impl), nil
}

// Close tears down the backend. Close is idempotent. Resources disposed
// after Close silently no-op; creating resources or contexts after Close
// returns ErrSystemClosed.
func (rs *RenderSystem) Close() error {
	rs.mu.Lock()
	if rs.closed {
		rs.mu.Unlock()
		return nil
	}
	rs.closed = true
	rs.mu.Unlock()

	Logger().Info("render system closed", "backend", rs.backend.Name())
	return rs.backend.Close()
}
