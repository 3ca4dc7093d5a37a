package graphics

import (
	"fmt"
	"hash/fnv"
)

// StencilOperation is the action taken on a stencil buffer entry when a
// stencil or depth test passes or fails.
type StencilOperation uint8

const (
	StencilKeep StencilOperation = iota
	StencilZero
	StencilReplace
	StencilIncrementClamp
	StencilDecrementClamp
	StencilInvert
	StencilIncrementWrap
	StencilDecrementWrap
)

func (o StencilOperation) String() string {
	switch o {
	case StencilKeep:
		return "Keep"
	case StencilZero:
		return "Zero"
	case StencilReplace:
		return "Replace"
	case StencilIncrementClamp:
		return "IncrementClamp"
	case StencilDecrementClamp:
		return "DecrementClamp"
	case StencilInvert:
		return "Invert"
	case StencilIncrementWrap:
		return "IncrementWrap"
	case StencilDecrementWrap:
		return "DecrementWrap"
	default:
		return fmt.Sprintf("StencilOperation(%d)", uint8(o))
	}
}

// StencilFace describes the stencil pipeline for one triangle facing.
type StencilFace struct {
	// Function compares the reference value against the stored stencil
	// value; the fragment is discarded when the comparison fails.
	Function CompareFunction

	// FailOp applies when the stencil test fails.
	FailOp StencilOperation
	// DepthFailOp applies when the stencil test passes but the depth
	// test fails.
	DepthFailOp StencilOperation
	// PassOp applies when both tests pass.
	PassOp StencilOperation
}

func defaultStencilFace() StencilFace {
	return StencilFace{
		Function:    CompareAlways,
		FailOp:      StencilKeep,
		DepthFailOp: StencilKeep,
		PassOp:      StencilKeep,
	}
}

// DepthStencilDescription is an immutable description of the depth and
// stencil stages.
type DepthStencilDescription struct {
	DepthEnable      bool
	DepthWriteEnable bool
	DepthFunction    CompareFunction

	StencilEnable   bool
	StencilReadMask uint8
	// StencilWriteMask gates which bits of the stencil buffer a stencil
	// operation may modify.
	StencilWriteMask uint8
	// StencilReference is the comparison reference value, applied to both
	// faces.
	StencilReference int32

	FrontFace StencilFace
	BackFace  StencilFace
}

// DepthDefault returns read-write depth testing with LessEqual and no
// stenciling.
func DepthDefault() DepthStencilDescription {
	return DepthStencilDescription{
		DepthEnable:      true,
		DepthWriteEnable: true,
		DepthFunction:    CompareLessEqual,
		StencilReadMask:  0xff,
		StencilWriteMask: 0xff,
		FrontFace:        defaultStencilFace(),
		BackFace:         defaultStencilFace(),
	}
}

// DepthRead returns depth testing without depth writes, for transparents
// drawn after opaque geometry.
func DepthRead() DepthStencilDescription {
	d := DepthDefault()
	d.DepthWriteEnable = false
	return d
}

// DepthNone returns the depth and stencil stages fully disabled.
func DepthNone() DepthStencilDescription {
	d := DepthDefault()
	d.DepthEnable = false
	d.DepthWriteEnable = false
	return d
}

// Hash returns the FNV-1a hash of the description.
func (d DepthStencilDescription) Hash() uint64 {
	h := fnv.New64a()
	hashWriteBool(h, d.DepthEnable)
	hashWriteBool(h, d.DepthWriteEnable)
	hashWriteUint32(h, uint32(d.DepthFunction))
	hashWriteBool(h, d.StencilEnable)
	hashWriteUint32(h, uint32(d.StencilReadMask))
	hashWriteUint32(h, uint32(d.StencilWriteMask))
	hashWriteUint32(h, uint32(d.StencilReference))
	for _, f := range [2]StencilFace{d.FrontFace, d.BackFace} {
		hashWriteUint32(h, uint32(f.Function))
		hashWriteUint32(h, uint32(f.FailOp))
		hashWriteUint32(h, uint32(f.DepthFailOp))
		hashWriteUint32(h, uint32(f.PassOp))
	}
	return h.Sum64()
}

// DepthStencilState is the logical resource wrapping a
// DepthStencilDescription.
type DepthStencilState struct {
	Resource
	desc DepthStencilDescription
}

// Description returns the immutable description value.
func (s *DepthStencilState) Description() DepthStencilDescription { return s.desc }
