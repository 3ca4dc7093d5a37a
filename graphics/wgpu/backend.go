package wgpu

import (
	"fmt"
	"sync/atomic"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/Mattiemus/Kynto2-sub008/graphics"
)

// BackendName is the registry name this package registers under.
const BackendName = "wgpu"

func init() {
	graphics.RegisterBackend(BackendName, 50, func() (graphics.Backend, error) {
		return NewBackend()
	}, func() bool {
		_, ok := hal.GetBackend(gputypes.BackendVulkan)
		return ok
	})
}

// Backend creates buffers, textures, and shader programs over a HAL
// device. It reports SeparateStateObjects false: pipeline-state APIs have
// no standalone blend or depth-stencil objects, so the four state kinds
// and device contexts are unsupported here.
type Backend struct {
	device   hal.Device
	queue    hal.Queue
	instance hal.Instance

	// owned marks a device this backend opened itself; borrowed devices
	// outlive Close.
	owned bool

	caps   graphics.Capabilities
	closed atomic.Bool
}

// NewBackend opens its own device through the HAL's Vulkan entry point,
// preferring discrete then integrated adapters.
func NewBackend() (*Backend, error) {
	halBackend, ok := hal.GetBackend(gputypes.BackendVulkan)
	if !ok {
		return nil, fmt.Errorf("wgpu: vulkan backend not compiled in: %w", graphics.ErrNoBackendAvailable)
	}
	instance, err := halBackend.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create instance: %w", err)
	}

	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, fmt.Errorf("wgpu: no adapters found: %w", graphics.ErrNoBackendAvailable)
	}

	var selected *hal.ExposedAdapter
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}
	if selected == nil {
		selected = &adapters[0]
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), gputypes.DefaultLimits())
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("wgpu: open device: %w", err)
	}

	b := newBackend(openDev.Device, openDev.Queue)
	b.instance = instance
	b.owned = true
	graphics.Logger().Info("wgpu backend opened", "adapter", selected.Info.Name)
	return b, nil
}

// NewBackendFromDevice wraps an existing device and queue. The caller
// keeps ownership; Close never destroys them.
func NewBackendFromDevice(device hal.Device, queue hal.Queue) (*Backend, error) {
	if device == nil || queue == nil {
		return nil, fmt.Errorf("wgpu: nil device or queue: %w", graphics.ErrInvalidArgument)
	}
	return newBackend(device, queue), nil
}

// NewSharedBackend wraps a device borrowed from a host application. The
// provider is anything exposing HalDevice() any and HalQueue() any
// returning hal.Device and hal.Queue, matching the gpucontext
// device-provider convention.
func NewSharedBackend(provider any) (*Backend, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, fmt.Errorf("wgpu: provider does not expose HAL types: %w", graphics.ErrInvalidArgument)
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("wgpu: provider HalDevice is not hal.Device: %w", graphics.ErrInvalidArgument)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("wgpu: provider HalQueue is not hal.Queue: %w", graphics.ErrInvalidArgument)
	}
	return newBackend(device, queue), nil
}

func newBackend(device hal.Device, queue hal.Queue) *Backend {
	lim := gputypes.DefaultLimits()
	return &Backend{
		device: device,
		queue:  queue,
		caps: graphics.Capabilities{
			// WebGPU baseline guarantees; the HAL does not expose
			// per-adapter values for all of them.
			MaxRenderTargets:    graphics.MaxRenderTargets,
			MaxVertexAttributes: 16,
			MaxTextureSize:      int(lim.MaxTextureDimension2D),
			MaxAnisotropy:       16,
			MaxSamples:          4,

			IndependentBlend:     true,
			AlphaToCoverage:      true,
			SeparateStateObjects: false,
		},
	}
}

// Name implements graphics.Backend.
func (b *Backend) Name() string { return BackendName }

// Capabilities implements graphics.Backend.
func (b *Backend) Capabilities() graphics.Capabilities { return b.caps }

// live reports whether dispose paths may still reach the device.
func (b *Backend) live() bool { return !b.closed.Load() }

// Factories implements graphics.Backend. State-object kinds and swap
// chains are absent; RenderSystem reports them unsupported.
func (b *Backend) Factories() []graphics.Factory {
	return []graphics.Factory{
		&vertexBufferFactory{backend: b},
		&indexBufferFactory{backend: b},
		&textureFactory{backend: b},
		&shaderProgramFactory{backend: b},
	}
}

// NewContext implements graphics.Backend. This backend creates resources
// only.
func (b *Backend) NewContext() (graphics.ContextImplementation, error) {
	return nil, &graphics.NotSupportedError{Op: "device contexts"}
}

// Close implements graphics.Backend. Idempotent. An owned device and
// instance are destroyed; borrowed ones are left to their owner.
func (b *Backend) Close() error {
	if b.closed.Swap(true) {
		return nil
	}
	if b.owned {
		b.device.Destroy()
		if b.instance != nil {
			b.instance.Destroy()
		}
	}
	return nil
}

// alignSize rounds a buffer size up to the HAL's 4-byte granularity.
func alignSize(n int) int {
	return (n + 3) &^ 3
}

type vertexBufferFactory struct{ backend *Backend }

func (f *vertexBufferFactory) Kind() graphics.ResourceKind { return graphics.KindVertexBuffer }

func (f *vertexBufferFactory) CreateVertexBuffer(usage graphics.BufferUsage, sizeBytes int, data []byte) (graphics.BufferImplementation, error) {
	return f.backend.createBuffer(graphics.KindVertexBuffer, sizeBytes, data,
		gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
}

type indexBufferFactory struct{ backend *Backend }

func (f *indexBufferFactory) Kind() graphics.ResourceKind { return graphics.KindIndexBuffer }

func (f *indexBufferFactory) CreateIndexBuffer(usage graphics.BufferUsage, format graphics.IndexFormat, sizeBytes int, data []byte) (graphics.BufferImplementation, error) {
	return f.backend.createBuffer(graphics.KindIndexBuffer, sizeBytes, data,
		gputypes.BufferUsageIndex|gputypes.BufferUsageCopyDst)
}

func (b *Backend) createBuffer(kind graphics.ResourceKind, sizeBytes int, data []byte, usage gputypes.BufferUsage) (graphics.BufferImplementation, error) {
	buf, err := b.device.CreateBuffer(&hal.BufferDescriptor{
		Label: kind.String(),
		Size:  uint64(alignSize(sizeBytes)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create buffer: %w", err)
	}
	impl := &wgpuBuffer{backend: b, kind: kind, handle: buf}
	if len(data) > 0 {
		if err := impl.SetData(data, 0); err != nil {
			impl.Dispose()
			return nil, err
		}
	}
	return impl, nil
}

type textureFactory struct{ backend *Backend }

func (f *textureFactory) Kind() graphics.ResourceKind { return graphics.KindTexture2D }

func (f *textureFactory) CreateTexture2D(width, height, mipLevels int, format graphics.TextureFormat, data []byte) (graphics.Texture2DImplementation, error) {
	halFormat, err := textureFormat(format)
	if err != nil {
		return nil, err
	}
	tex, err := f.backend.device.CreateTexture(&hal.TextureDescriptor{
		Label: "Texture2D",
		Size: hal.Extent3D{
			Width:              uint32(width),
			Height:             uint32(height),
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: uint32(mipLevels),
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        halFormat,
		Usage:         gputypes.TextureUsageCopySrc | gputypes.TextureUsageCopyDst | gputypes.TextureUsageStorageBinding,
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create texture: %w", err)
	}
	impl := &wgpuTexture2D{backend: f.backend, handle: tex, width: width, height: height, format: format}
	if len(data) > 0 {
		if err := impl.SetData(0, data); err != nil {
			impl.Dispose()
			return nil, err
		}
	}
	return impl, nil
}

func textureFormat(format graphics.TextureFormat) (gputypes.TextureFormat, error) {
	switch format {
	case graphics.FormatRGBA8:
		return gputypes.TextureFormatRGBA8Unorm, nil
	case graphics.FormatBGRA8:
		return gputypes.TextureFormatBGRA8Unorm, nil
	case graphics.FormatR8:
		return gputypes.TextureFormatR8Unorm, nil
	default:
		// Depth attachments belong to render pipelines, which this
		// resource-only backend does not build.
		return 0, fmt.Errorf("wgpu: texture format %s not supported: %w", format, graphics.ErrInvalidArgument)
	}
}

type shaderProgramFactory struct{ backend *Backend }

func (f *shaderProgramFactory) Kind() graphics.ResourceKind { return graphics.KindShaderProgram }

func (f *shaderProgramFactory) CreateShaderProgram(src graphics.ShaderSource) (graphics.ShaderProgramImplementation, error) {
	if !src.HasWGSL() {
		return nil, fmt.Errorf("wgpu backend needs WGSL source: %w", graphics.ErrInvalidArgument)
	}
	words, err := compileWGSL(src.WGSL)
	if err != nil {
		return nil, err
	}
	module, err := f.backend.device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: "ShaderProgram",
		Source: hal.ShaderSource{
			SPIRV: words,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("wgpu: create shader module: %w", err)
	}
	return &wgpuShaderProgram{backend: f.backend, handle: module}, nil
}
