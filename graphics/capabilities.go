package graphics

// Capabilities reports what a backend can do. Unsupported features are
// reported here as false or zero values; they are never surfaced as
// errors from creation or apply paths.
type Capabilities struct {
	MaxRenderTargets    int
	MaxVertexAttributes int
	MaxTextureSize      int
	MaxAnisotropy       int
	MaxSamples          int

	// IndependentBlend reports per-render-target blend descriptions.
	IndependentBlend bool
	// AlphaToCoverage reports multisample alpha-to-coverage.
	AlphaToCoverage bool
	// SeparateStateObjects reports whether the backend consumes the four
	// state-description categories as individually applicable objects.
	// Backends without it (pipeline-state APIs) register resource
	// factories only.
	SeparateStateObjects bool
}
