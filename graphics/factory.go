package graphics

// Factory creates backend implementations for exactly one resource kind.
// Backends hand their factories to the render system, which routes each
// creator method to the factory registered for the kind.
type Factory interface {
	Kind() ResourceKind
}

// VertexBufferFactory creates vertex buffer implementations. When data
// is non-nil the buffer is allocated and filled in one step.
type VertexBufferFactory interface {
	Factory
	CreateVertexBuffer(usage BufferUsage, sizeBytes int, data []byte) (BufferImplementation, error)
}

// IndexBufferFactory creates index buffer implementations.
type IndexBufferFactory interface {
	Factory
	CreateIndexBuffer(usage BufferUsage, format IndexFormat, sizeBytes int, data []byte) (BufferImplementation, error)
}

// Texture2DFactory creates 2D texture implementations. When data is
// non-nil it fills mip level 0.
type Texture2DFactory interface {
	Factory
	CreateTexture2D(width, height, mipLevels int, format TextureFormat, data []byte) (Texture2DImplementation, error)
}

// BlendStateFactory creates blend state implementations.
type BlendStateFactory interface {
	Factory
	CreateBlendState(desc BlendDescription) (Implementation, error)
}

// DepthStencilStateFactory creates depth-stencil state implementations.
type DepthStencilStateFactory interface {
	Factory
	CreateDepthStencilState(desc DepthStencilDescription) (Implementation, error)
}

// RasterizerStateFactory creates rasterizer state implementations.
type RasterizerStateFactory interface {
	Factory
	CreateRasterizerState(desc RasterizerDescription) (Implementation, error)
}

// SamplerStateFactory creates sampler state implementations.
type SamplerStateFactory interface {
	Factory
	CreateSamplerState(desc SamplerDescription) (SamplerStateImplementation, error)
}

// ShaderProgramFactory compiles shader programs.
type ShaderProgramFactory interface {
	Factory
	CreateShaderProgram(src ShaderSource) (ShaderProgramImplementation, error)
}

// SwapChainFactory creates swap chain implementations.
type SwapChainFactory interface {
	Factory
	CreateSwapChain(width, height int, format TextureFormat) (SwapChainImplementation, error)
}
