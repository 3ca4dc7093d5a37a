package wgpu

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/Mattiemus/Kynto2-sub008/graphics"
)

// wgpuBuffer backs vertex and index buffers. Uploads go through the
// queue; the HAL requires 4-byte-aligned write sizes, so trailing bytes
// are padded into a copy when needed.
type wgpuBuffer struct {
	backend *Backend
	kind    graphics.ResourceKind
	handle  hal.Buffer
}

func (b *wgpuBuffer) Kind() graphics.ResourceKind { return b.kind }

func (b *wgpuBuffer) SetData(data []byte, offset int) error {
	if len(data) == 0 {
		return nil
	}
	if rem := len(data) % 4; rem != 0 {
		padded := make([]byte, alignSize(len(data)))
		copy(padded, data)
		data = padded
	}
	b.backend.queue.WriteBuffer(b.handle, uint64(offset), data)
	return nil
}

// Bind is a no-op: WebGPU buffers bind inside render passes this backend
// does not record.
func (b *wgpuBuffer) Bind() error { return nil }

func (b *wgpuBuffer) Dispose() {
	if !b.backend.live() {
		return
	}
	b.backend.device.DestroyBuffer(b.handle)
}

type wgpuTexture2D struct {
	backend *Backend
	handle  hal.Texture
	width   int
	height  int
	format  graphics.TextureFormat
}

func (t *wgpuTexture2D) Kind() graphics.ResourceKind { return graphics.KindTexture2D }

func (t *wgpuTexture2D) SetData(level int, data []byte) error {
	w, h := t.width>>level, t.height>>level
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	bytesPerRow := uint32(w * t.format.BytesPerPixel())
	t.backend.queue.WriteTexture(
		&hal.ImageCopyTexture{
			Texture:  t.handle,
			MipLevel: uint32(level),
			Origin:   hal.Origin3D{X: 0, Y: 0, Z: 0},
			Aspect:   gputypes.TextureAspectAll,
		},
		data,
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  bytesPerRow,
			RowsPerImage: uint32(h),
		},
		&hal.Extent3D{
			Width:              uint32(w),
			Height:             uint32(h),
			DepthOrArrayLayers: 1,
		},
	)
	return nil
}

// GenerateMipmaps is unsupported: mip generation on WebGPU is a compute
// or render-pass operation, not a device service.
func (t *wgpuTexture2D) GenerateMipmaps() error {
	return fmt.Errorf("wgpu: mipmap generation: %w", graphics.ErrInvalidArgument)
}

// Bind is a no-op: textures bind through bind groups inside passes.
func (t *wgpuTexture2D) Bind(unit int) error { return nil }

func (t *wgpuTexture2D) Dispose() {
	if !t.backend.live() {
		return
	}
	t.backend.device.DestroyTexture(t.handle)
}

type wgpuShaderProgram struct {
	backend *Backend
	handle  hal.ShaderModule
}

func (p *wgpuShaderProgram) Kind() graphics.ResourceKind { return graphics.KindShaderProgram }

// Bind is a no-op: modules attach to pipelines, not a bind point.
func (p *wgpuShaderProgram) Bind() error { return nil }

// SetUniform is unsupported: uniforms travel through bind groups.
func (p *wgpuShaderProgram) SetUniform(name string, values []float32) error {
	return fmt.Errorf("wgpu: uniform %q: uniforms require bind groups: %w", name, graphics.ErrInvalidArgument)
}

func (p *wgpuShaderProgram) Dispose() {
	if !p.backend.live() {
		return
	}
	p.backend.device.DestroyShaderModule(p.handle)
}
