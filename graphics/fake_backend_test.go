package graphics

// A fully in-memory backend used by the package tests. Every factory
// records what it created; the context implementation counts calls so the
// dedup tests can observe how many reached the backend.

type fakeImpl struct {
	kind     ResourceKind
	disposed int
}

func (f *fakeImpl) Kind() ResourceKind { return f.kind }
func (f *fakeImpl) Dispose()           { f.disposed++ }

type fakeBufferImpl struct {
	fakeImpl
	data  []byte
	binds int
}

func (f *fakeBufferImpl) SetData(data []byte, offset int) error {
	copy(f.data[offset:], data)
	return nil
}

func (f *fakeBufferImpl) Bind() error {
	f.binds++
	return nil
}

type fakeTextureImpl struct {
	fakeImpl
	uploads int
	mipGens int
	binds   int
}

func (f *fakeTextureImpl) SetData(level int, data []byte) error {
	f.uploads++
	return nil
}

func (f *fakeTextureImpl) GenerateMipmaps() error {
	f.mipGens++
	return nil
}

func (f *fakeTextureImpl) Bind(unit int) error {
	f.binds++
	return nil
}

type fakeSamplerImpl struct {
	fakeImpl
	binds int
}

func (f *fakeSamplerImpl) Bind(unit int) error {
	f.binds++
	return nil
}

type fakeProgramImpl struct {
	fakeImpl
	binds    int
	uniforms map[string][]float32
}

func (f *fakeProgramImpl) Bind() error {
	f.binds++
	return nil
}

func (f *fakeProgramImpl) SetUniform(name string, values []float32) error {
	if f.uniforms == nil {
		f.uniforms = make(map[string][]float32)
	}
	f.uniforms[name] = values
	return nil
}

type fakeSwapChainImpl struct {
	fakeImpl
	width    int
	height   int
	presents int
}

func (f *fakeSwapChainImpl) Resize(width, height int) error {
	f.width, f.height = width, height
	return nil
}

func (f *fakeSwapChainImpl) Present() error {
	f.presents++
	return nil
}

type fakeFactory struct {
	kind    ResourceKind
	created int
}

func (f *fakeFactory) Kind() ResourceKind { return f.kind }

type fakeVertexBufferFactory struct{ fakeFactory }

func (f *fakeVertexBufferFactory) CreateVertexBuffer(usage BufferUsage, sizeBytes int, data []byte) (BufferImplementation, error) {
	f.created++
	impl := &fakeBufferImpl{fakeImpl: fakeImpl{kind: KindVertexBuffer}, data: make([]byte, sizeBytes)}
	copy(impl.data, data)
	return impl, nil
}

type fakeIndexBufferFactory struct{ fakeFactory }

func (f *fakeIndexBufferFactory) CreateIndexBuffer(usage BufferUsage, format IndexFormat, sizeBytes int, data []byte) (BufferImplementation, error) {
	f.created++
	impl := &fakeBufferImpl{fakeImpl: fakeImpl{kind: KindIndexBuffer}, data: make([]byte, sizeBytes)}
	copy(impl.data, data)
	return impl, nil
}

type fakeTextureFactory struct{ fakeFactory }

func (f *fakeTextureFactory) CreateTexture2D(width, height, mipLevels int, format TextureFormat, data []byte) (Texture2DImplementation, error) {
	f.created++
	return &fakeTextureImpl{fakeImpl: fakeImpl{kind: KindTexture2D}}, nil
}

type fakeBlendFactory struct{ fakeFactory }

func (f *fakeBlendFactory) CreateBlendState(desc BlendDescription) (Implementation, error) {
	f.created++
	return &fakeImpl{kind: KindBlendState}, nil
}

type fakeDepthStencilFactory struct{ fakeFactory }

func (f *fakeDepthStencilFactory) CreateDepthStencilState(desc DepthStencilDescription) (Implementation, error) {
	f.created++
	return &fakeImpl{kind: KindDepthStencilState}, nil
}

type fakeRasterizerFactory struct{ fakeFactory }

func (f *fakeRasterizerFactory) CreateRasterizerState(desc RasterizerDescription) (Implementation, error) {
	f.created++
	return &fakeImpl{kind: KindRasterizerState}, nil
}

type fakeSamplerFactory struct{ fakeFactory }

func (f *fakeSamplerFactory) CreateSamplerState(desc SamplerDescription) (SamplerStateImplementation, error) {
	f.created++
	return &fakeSamplerImpl{fakeImpl: fakeImpl{kind: KindSamplerState}}, nil
}

type fakeProgramFactory struct{ fakeFactory }

func (f *fakeProgramFactory) CreateShaderProgram(src ShaderSource) (ShaderProgramImplementation, error) {
	f.created++
	return &fakeProgramImpl{fakeImpl: fakeImpl{kind: KindShaderProgram}}, nil
}

type fakeSwapChainFactory struct{ fakeFactory }

func (f *fakeSwapChainFactory) CreateSwapChain(width, height int, format TextureFormat) (SwapChainImplementation, error) {
	f.created++
	return &fakeSwapChainImpl{fakeImpl: fakeImpl{kind: KindSwapChain}, width: width, height: height}, nil
}

// fakeContextImpl counts every call that reached the backend.
type fakeContextImpl struct {
	blendApplies     int
	depthApplies     int
	rasterApplies    int
	samplerApplies   int
	clears           int
	draws            int
	indexedDraws     int
	viewports        int
	disposed         int
	lastBlend        BlendDescription
	lastDepthStencil DepthStencilDescription
	lastRasterizer   RasterizerDescription
}

func (f *fakeContextImpl) ApplyBlend(desc BlendDescription) error {
	f.blendApplies++
	f.lastBlend = desc
	return nil
}

func (f *fakeContextImpl) ApplyDepthStencil(desc DepthStencilDescription) error {
	f.depthApplies++
	f.lastDepthStencil = desc
	return nil
}

func (f *fakeContextImpl) ApplyRasterizer(desc RasterizerDescription) error {
	f.rasterApplies++
	f.lastRasterizer = desc
	return nil
}

func (f *fakeContextImpl) ApplySampler(unit int, impl SamplerStateImplementation) error {
	f.samplerApplies++
	return impl.Bind(unit)
}

func (f *fakeContextImpl) Clear(options ClearOptions) error {
	f.clears++
	return nil
}

func (f *fakeContextImpl) SetViewport(x, y, width, height int) { f.viewports++ }

func (f *fakeContextImpl) Draw(topology PrimitiveTopology, first, count int) error {
	f.draws++
	return nil
}

func (f *fakeContextImpl) DrawIndexed(topology PrimitiveTopology, format IndexFormat, first, count int) error {
	f.indexedDraws++
	return nil
}

func (f *fakeContextImpl) Dispose() { f.disposed++ }

type fakeBackend struct {
	name      string
	caps      Capabilities
	factories []Factory
	context   *fakeContextImpl
	closed    bool
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		name: "fake",
		caps: Capabilities{
			MaxRenderTargets:     4,
			MaxVertexAttributes:  16,
			MaxTextureSize:       4096,
			MaxAnisotropy:        16,
			MaxSamples:           4,
			IndependentBlend:     true,
			AlphaToCoverage:      true,
			SeparateStateObjects: true,
		},
		factories: []Factory{
			&fakeVertexBufferFactory{fakeFactory{kind: KindVertexBuffer}},
			&fakeIndexBufferFactory{fakeFactory{kind: KindIndexBuffer}},
			&fakeTextureFactory{fakeFactory{kind: KindTexture2D}},
			&fakeBlendFactory{fakeFactory{kind: KindBlendState}},
			&fakeDepthStencilFactory{fakeFactory{kind: KindDepthStencilState}},
			&fakeRasterizerFactory{fakeFactory{kind: KindRasterizerState}},
			&fakeSamplerFactory{fakeFactory{kind: KindSamplerState}},
			&fakeProgramFactory{fakeFactory{kind: KindShaderProgram}},
			&fakeSwapChainFactory{fakeFactory{kind: KindSwapChain}},
		},
	}
}

func (b *fakeBackend) Name() string               { return b.name }
func (b *fakeBackend) Capabilities() Capabilities { return b.caps }
func (b *fakeBackend) Factories() []Factory       { return b.factories }

func (b *fakeBackend) NewContext() (ContextImplementation, error) {
	b.context = &fakeContextImpl{}
	return b.context, nil
}

func (b *fakeBackend) Close() error {
	b.closed = true
	return nil
}

func newFakeSystem(t interface{ Fatalf(string, ...any) }) (*RenderSystem, *fakeBackend) {
	b := newFakeBackend()
	rs, err := NewRenderSystemWithBackend(b)
	if err != nil {
		t.Fatalf("NewRenderSystemWithBackend failed: %v", err)
	}
	return rs, b
}
