package graphics

// ShaderSource carries shader text for whichever language the backend
// consumes. GL backends read the GLSL pair; WebGPU backends read WGSL.
// A source may carry both so one asset drives either backend.
type ShaderSource struct {
	VertexGLSL   string
	FragmentGLSL string
	WGSL         string
}

// HasGLSL reports whether both GLSL stages are present.
func (s ShaderSource) HasGLSL() bool {
	return s.VertexGLSL != "" && s.FragmentGLSL != ""
}

// HasWGSL reports whether WGSL source is present.
func (s ShaderSource) HasWGSL() bool { return s.WGSL != "" }

// ShaderProgramImplementation is the backend payload for compiled
// programs.
type ShaderProgramImplementation interface {
	Implementation

	// Bind makes the program current.
	Bind() error
	// SetUniform uploads a named float vector uniform. Unknown names are
	// ignored so materials can carry supersets of a program's parameters.
	SetUniform(name string, values []float32) error
}

// ShaderProgram is a logical compiled shader program.
type ShaderProgram struct {
	Resource
	source ShaderSource
}

// Source returns the source the program was compiled from.
func (p *ShaderProgram) Source() ShaderSource { return p.source }

// SetUniform uploads a named float vector uniform on the compiled
// program.
func (p *ShaderProgram) SetUniform(name string, values []float32) error {
	if err := p.guardMutate(); err != nil {
		return err
	}
	return p.impl.(ShaderProgramImplementation).SetUniform(name, values)
}
