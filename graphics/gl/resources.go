package gl

import (
	"github.com/Mattiemus/Kynto2-sub008/graphics"
)

// glBuffer backs vertex and index buffers. The native buffer is allocated
// immediately at creation.
type glBuffer struct {
	backend *Backend
	kind    graphics.ResourceKind
	target  BufferTarget
	handle  Buffer
}

func (b *glBuffer) Kind() graphics.ResourceKind { return b.kind }

func (b *glBuffer) SetData(data []byte, offset int) error {
	b.backend.device.BindBuffer(b.target, b.handle)
	b.backend.device.BufferSubData(b.target, b.handle, offset, data)
	return nil
}

func (b *glBuffer) Bind() error {
	b.backend.device.BindBuffer(b.target, b.handle)
	return nil
}

func (b *glBuffer) Dispose() {
	if !b.backend.live() {
		return
	}
	b.backend.device.DeleteBuffer(b.handle)
}

// glTexture2D allocates its full mip chain immediately at creation.
type glTexture2D struct {
	backend *Backend
	handle  Texture
	width   int
	height  int
	format  graphics.TextureFormat
}

func (t *glTexture2D) Kind() graphics.ResourceKind { return graphics.KindTexture2D }

func (t *glTexture2D) SetData(level int, data []byte) error {
	w, h := t.width>>level, t.height>>level
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	t.backend.device.TexSubImage2D(t.handle, level, w, h, t.format, data)
	return nil
}

func (t *glTexture2D) GenerateMipmaps() error {
	t.backend.device.GenerateMipmaps(t.handle)
	return nil
}

func (t *glTexture2D) Bind(unit int) error {
	t.backend.device.BindTexture(unit, t.handle)
	return nil
}

func (t *glTexture2D) Dispose() {
	if !t.backend.live() {
		return
	}
	t.backend.device.DeleteTexture(t.handle)
}

// glSamplerState defers native sampler-object allocation to the first
// Bind; many sampler states are created up front from material
// definitions and never used on the active quality settings.
type glSamplerState struct {
	backend *Backend
	desc    graphics.SamplerDescription
	handle  Sampler
	created bool
}

func (s *glSamplerState) Kind() graphics.ResourceKind { return graphics.KindSamplerState }

func (s *glSamplerState) Bind(unit int) error {
	if !s.created {
		desc := s.desc
		if max := s.backend.caps.MaxAnisotropy; desc.MaxAnisotropy > max {
			desc.MaxAnisotropy = max
		}
		h, err := s.backend.device.CreateSampler(desc)
		if err != nil {
			return err
		}
		s.handle = h
		s.created = true
	}
	s.backend.device.BindSampler(unit, s.handle)
	return nil
}

func (s *glSamplerState) Dispose() {
	if !s.created || !s.backend.live() {
		return
	}
	s.backend.device.DeleteSampler(s.handle)
	s.created = false
}

// glShaderProgram holds a reference into the backend's program cache;
// identical source pairs share one GL program.
type glShaderProgram struct {
	backend  *Backend
	handle   Program
	cacheKey uint64
	released bool
}

func (p *glShaderProgram) Kind() graphics.ResourceKind { return graphics.KindShaderProgram }

func (p *glShaderProgram) Bind() error {
	p.backend.stateCache().UseProgram(p.handle)
	return nil
}

func (p *glShaderProgram) SetUniform(name string, values []float32) error {
	return p.backend.device.SetUniform(p.handle, name, values)
}

func (p *glShaderProgram) Dispose() {
	if p.released {
		return
	}
	p.released = true
	p.backend.programs.release(p.cacheKey)
}

// glSwapChain presents through the device's buffer swap; GL backbuffers
// resize with their window, so Resize only records the size for viewport
// defaulting.
type glSwapChain struct {
	backend *Backend
	width   int
	height  int
}

func (s *glSwapChain) Kind() graphics.ResourceKind { return graphics.KindSwapChain }

func (s *glSwapChain) Resize(width, height int) error {
	s.width, s.height = width, height
	return nil
}

func (s *glSwapChain) Present() error {
	s.backend.device.SwapBuffers()
	return nil
}

func (s *glSwapChain) Dispose() {}

// glStateObject is the implementation behind the four pipeline-state
// resources: the description itself is the state, applied later through
// the context's applicators, so the implementation carries nothing but
// its kind.
type glStateObject struct {
	kind graphics.ResourceKind
}

func (s *glStateObject) Kind() graphics.ResourceKind { return s.kind }
func (s *glStateObject) Dispose()                    {}
