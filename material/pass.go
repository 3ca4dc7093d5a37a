package material

import "github.com/Mattiemus/Kynto2-sub008/graphics"

// Binding ties a shader parameter to a value: a semantic resolved
// through the BindingRegistry at Apply time, or a literal payload.
// When both are set the semantic wins.
type Binding struct {
	Param    string
	Semantic string
	Value    []float32
}

// Pass describes one rendering pass of a material: an ordering key,
// optional render-state descriptions, sampler assignments per texture
// unit, and parameter bindings. Nil state descriptions leave the
// context's current state untouched.
type Pass struct {
	Name  string
	Order int

	Blend        *graphics.BlendDescription
	DepthStencil *graphics.DepthStencilDescription
	Rasterizer   *graphics.RasterizerDescription
	Samplers     map[int]graphics.SamplerDescription

	Bindings []Binding
}
