package material

import (
	"fmt"

	"github.com/Mattiemus/Kynto2-sub008/graphics"
)

// Effect is a compiled shader program together with default values for
// its named parameters. Materials built on the same Effect share the
// program; defaults are uploaded before any per-pass bindings so a pass
// only has to override what it changes.
type Effect struct {
	program  *graphics.ShaderProgram
	defaults map[string][]float32
}

// NewEffect compiles src through the render system and records the
// parameter defaults. The defaults map is copied.
func NewEffect(rs *graphics.RenderSystem, src graphics.ShaderSource, defaults map[string][]float32) (*Effect, error) {
	program, err := rs.CreateShaderProgram(src)
	if err != nil {
		return nil, fmt.Errorf("material: compile effect: %w", err)
	}
	e := &Effect{
		program:  program,
		defaults: make(map[string][]float32, len(defaults)),
	}
	for name, values := range defaults {
		e.defaults[name] = append([]float32(nil), values...)
	}
	return e, nil
}

// Program returns the compiled shader program.
func (e *Effect) Program() *graphics.ShaderProgram { return e.program }

// Default returns the default payload for a parameter.
func (e *Effect) Default(name string) ([]float32, bool) {
	v, ok := e.defaults[name]
	return v, ok
}

// Parameters returns the names of all parameters with defaults.
func (e *Effect) Parameters() []string {
	out := make([]string, 0, len(e.defaults))
	for name := range e.defaults {
		out = append(out, name)
	}
	return out
}

// Dispose releases the compiled program.
func (e *Effect) Dispose() {
	e.program.Dispose()
}
