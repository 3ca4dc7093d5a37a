package material

import (
	"fmt"
	"sort"

	"github.com/Mattiemus/Kynto2-sub008/graphics"
)

// Material combines an Effect with ordered passes. State objects for
// each pass are created once, when the pass is added; Apply then routes
// them through the context, which skips re-application of identical
// descriptions.
type Material struct {
	rs     *graphics.RenderSystem
	effect *Effect
	passes []*compiledPass
}

type compiledPass struct {
	desc Pass
	seq  int

	blend    *graphics.BlendState
	depth    *graphics.DepthStencilState
	raster   *graphics.RasterizerState
	samplers map[int]*graphics.SamplerState
}

// NewMaterial returns a material over the given effect with no passes.
func NewMaterial(rs *graphics.RenderSystem, effect *Effect) *Material {
	return &Material{rs: rs, effect: effect}
}

// Effect returns the material's effect.
func (m *Material) Effect() *Effect { return m.effect }

// AddPass compiles the pass's state descriptions into backend state
// objects and inserts the pass, keeping passes sorted by Order with
// insertion order breaking ties.
func (m *Material) AddPass(desc Pass) error {
	if desc.Name == "" {
		return fmt.Errorf("material: pass needs a name")
	}
	if _, ok := m.pass(desc.Name); ok {
		return fmt.Errorf("material: duplicate pass %q", desc.Name)
	}

	cp := &compiledPass{desc: desc, seq: len(m.passes)}
	var err error
	if desc.Blend != nil {
		if cp.blend, err = m.rs.CreateBlendState(*desc.Blend); err != nil {
			return fmt.Errorf("material: pass %q blend state: %w", desc.Name, err)
		}
	}
	if desc.DepthStencil != nil {
		if cp.depth, err = m.rs.CreateDepthStencilState(*desc.DepthStencil); err != nil {
			cp.dispose()
			return fmt.Errorf("material: pass %q depth-stencil state: %w", desc.Name, err)
		}
	}
	if desc.Rasterizer != nil {
		if cp.raster, err = m.rs.CreateRasterizerState(*desc.Rasterizer); err != nil {
			cp.dispose()
			return fmt.Errorf("material: pass %q rasterizer state: %w", desc.Name, err)
		}
	}
	if len(desc.Samplers) > 0 {
		cp.samplers = make(map[int]*graphics.SamplerState, len(desc.Samplers))
		for unit, sd := range desc.Samplers {
			s, err := m.rs.CreateSamplerState(sd)
			if err != nil {
				cp.dispose()
				return fmt.Errorf("material: pass %q sampler unit %d: %w", desc.Name, unit, err)
			}
			cp.samplers[unit] = s
		}
	}

	m.passes = append(m.passes, cp)
	sort.SliceStable(m.passes, func(i, j int) bool {
		if m.passes[i].desc.Order != m.passes[j].desc.Order {
			return m.passes[i].desc.Order < m.passes[j].desc.Order
		}
		return m.passes[i].seq < m.passes[j].seq
	})
	return nil
}

// PassNames returns the pass names in application order.
func (m *Material) PassNames() []string {
	out := make([]string, len(m.passes))
	for i, p := range m.passes {
		out[i] = p.desc.Name
	}
	return out
}

func (m *Material) pass(name string) (*compiledPass, bool) {
	for _, p := range m.passes {
		if p.desc.Name == name {
			return p, true
		}
	}
	return nil, false
}

// Apply makes the named pass current on the context: render states,
// the effect's program, sampler states, then uniforms — effect defaults
// first, pass bindings over them, with semantics resolved through the
// registry.
func (m *Material) Apply(ctx *graphics.RenderContext, name string, bindings *BindingRegistry) error {
	p, ok := m.pass(name)
	if !ok {
		return fmt.Errorf("material: unknown pass %q", name)
	}

	if p.blend != nil {
		if err := ctx.ApplyBlendState(p.blend); err != nil {
			return err
		}
	}
	if p.depth != nil {
		if err := ctx.ApplyDepthStencilState(p.depth); err != nil {
			return err
		}
	}
	if p.raster != nil {
		if err := ctx.ApplyRasterizerState(p.raster); err != nil {
			return err
		}
	}

	if err := ctx.BindProgram(m.effect.Program()); err != nil {
		return err
	}

	units := make([]int, 0, len(p.samplers))
	for unit := range p.samplers {
		units = append(units, unit)
	}
	sort.Ints(units)
	for _, unit := range units {
		if err := ctx.ApplySamplerState(unit, p.samplers[unit]); err != nil {
			return err
		}
	}

	return m.uploadParameters(p, bindings)
}

func (m *Material) uploadParameters(p *compiledPass, bindings *BindingRegistry) error {
	program := m.effect.Program()

	names := m.effect.Parameters()
	sort.Strings(names)
	for _, name := range names {
		values, _ := m.effect.Default(name)
		if err := program.SetUniform(name, values); err != nil {
			return fmt.Errorf("material: default %q: %w", name, err)
		}
	}

	for _, b := range p.desc.Bindings {
		values := b.Value
		if b.Semantic != "" {
			if bindings == nil {
				return fmt.Errorf("material: pass %q binds semantic %q but no registry was given", p.desc.Name, b.Semantic)
			}
			provider, ok := bindings.Resolve(b.Semantic)
			if !ok {
				return fmt.Errorf("material: pass %q: unresolved semantic %q", p.desc.Name, b.Semantic)
			}
			values = provider()
		}
		if err := program.SetUniform(b.Param, values); err != nil {
			return fmt.Errorf("material: parameter %q: %w", b.Param, err)
		}
	}
	return nil
}

// Dispose releases the state objects owned by the material's passes.
// The effect is shared and is not disposed.
func (m *Material) Dispose() {
	for _, p := range m.passes {
		p.dispose()
	}
	m.passes = nil
}

func (p *compiledPass) dispose() {
	if p.blend != nil {
		p.blend.Dispose()
	}
	if p.depth != nil {
		p.depth.Dispose()
	}
	if p.raster != nil {
		p.raster.Dispose()
	}
	for _, s := range p.samplers {
		s.Dispose()
	}
}
