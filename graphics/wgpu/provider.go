package wgpu

import "github.com/gogpu/gpucontext"

// DeviceProvider is the host-integration handle for sharing a GPU device
// with another gogpu-based renderer. Concrete providers additionally
// expose HalDevice() any and HalQueue() any, which is how the backend
// reaches the underlying HAL objects.
type DeviceProvider = gpucontext.DeviceProvider

// NewBackendFromProvider wraps the device behind a gpucontext provider.
// Equivalent to NewSharedBackend with a typed handle.
func NewBackendFromProvider(provider DeviceProvider) (*Backend, error) {
	return NewSharedBackend(provider)
}
