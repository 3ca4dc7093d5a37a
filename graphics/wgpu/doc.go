// Package wgpu is a resource-creation backend over the gogpu/wgpu
// hardware abstraction layer.
//
// WebGPU-style APIs bake blend, depth-stencil, and rasterizer state into
// monolithic pipeline objects, so this backend reports
// SeparateStateObjects false and registers factories only for buffers,
// textures, and shader programs. Device contexts are not provided;
// NewContext returns NotSupportedError.
//
// The backend can own its device (opened through the HAL's Vulkan entry
// point) or borrow one from a host application through any provider
// exposing HalDevice() and HalQueue(). Borrowed devices are never
// destroyed on Close.
//
// Importing the package registers it under the name "wgpu":
//
//	import _ "github.com/Mattiemus/Kynto2-sub008/graphics/wgpu"
package wgpu
