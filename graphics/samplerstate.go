package graphics

import "hash/fnv"

// SamplerDescription is an immutable description of texture sampling:
// addressing per axis, filtering, anisotropy, LOD range, and the border
// color used by AddressBorder.
type SamplerDescription struct {
	AddressU TextureAddressMode
	AddressV TextureAddressMode
	AddressW TextureAddressMode

	Filter        TextureFilter
	MaxAnisotropy int

	MinLOD float32
	MaxLOD float32
	// LODBias is added to the computed level of detail before clamping.
	LODBias float32

	BorderColor Color
}

// SamplerLinearWrap returns trilinear filtering with wrap addressing on
// all axes.
func SamplerLinearWrap() SamplerDescription {
	return SamplerDescription{
		AddressU:      AddressWrap,
		AddressV:      AddressWrap,
		AddressW:      AddressWrap,
		Filter:        FilterLinear,
		MaxAnisotropy: 1,
		MinLOD:        -1000,
		MaxLOD:        1000,
		BorderColor:   Transparent,
	}
}

// SamplerLinearClamp returns trilinear filtering with clamp-to-edge
// addressing on all axes.
func SamplerLinearClamp() SamplerDescription {
	d := SamplerLinearWrap()
	d.AddressU = AddressClamp
	d.AddressV = AddressClamp
	d.AddressW = AddressClamp
	return d
}

// SamplerPointWrap returns nearest-neighbor filtering with wrap
// addressing on all axes.
func SamplerPointWrap() SamplerDescription {
	d := SamplerLinearWrap()
	d.Filter = FilterPoint
	return d
}

// SamplerPointClamp returns nearest-neighbor filtering with clamp-to-edge
// addressing on all axes.
func SamplerPointClamp() SamplerDescription {
	d := SamplerLinearClamp()
	d.Filter = FilterPoint
	return d
}

// SamplerAnisotropicWrap returns anisotropic filtering with wrap
// addressing, at the given maximum anisotropy.
func SamplerAnisotropicWrap(maxAnisotropy int) SamplerDescription {
	d := SamplerLinearWrap()
	d.Filter = FilterAnisotropic
	d.MaxAnisotropy = maxAnisotropy
	return d
}

// Hash returns the FNV-1a hash of the description.
func (d SamplerDescription) Hash() uint64 {
	h := fnv.New64a()
	hashWriteUint32(h, uint32(d.AddressU))
	hashWriteUint32(h, uint32(d.AddressV))
	hashWriteUint32(h, uint32(d.AddressW))
	hashWriteUint32(h, uint32(d.Filter))
	hashWriteUint32(h, uint32(d.MaxAnisotropy))
	hashWriteFloat32(h, d.MinLOD)
	hashWriteFloat32(h, d.MaxLOD)
	hashWriteFloat32(h, d.LODBias)
	d.BorderColor.hash(h)
	return h.Sum64()
}

// SamplerStateImplementation is the backend payload for sampler states.
// Backends may defer native allocation to the first Bind.
type SamplerStateImplementation interface {
	Implementation

	// Bind makes the sampler current on the given texture unit.
	Bind(unit int) error
}

// SamplerState is the logical resource wrapping a SamplerDescription.
type SamplerState struct {
	Resource
	desc SamplerDescription
}

// Description returns the immutable description value.
func (s *SamplerState) Description() SamplerDescription { return s.desc }
