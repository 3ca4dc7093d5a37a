package graphics

import (
	"fmt"
	"sync/atomic"
)

// ResourceKind identifies the logical type of a GPU resource. Factories
// register per kind; the kind also appears in errors and debug logging.
type ResourceKind uint8

const (
	KindVertexBuffer ResourceKind = iota
	KindIndexBuffer
	KindTexture2D
	KindBlendState
	KindDepthStencilState
	KindRasterizerState
	KindSamplerState
	KindShaderProgram
	KindSwapChain
	kindCount
)

// String returns the kind name for errors and logs.
func (k ResourceKind) String() string {
	switch k {
	case KindVertexBuffer:
		return "VertexBuffer"
	case KindIndexBuffer:
		return "IndexBuffer"
	case KindTexture2D:
		return "Texture2D"
	case KindBlendState:
		return "BlendState"
	case KindDepthStencilState:
		return "DepthStencilState"
	case KindRasterizerState:
		return "RasterizerState"
	case KindSamplerState:
		return "SamplerState"
	case KindShaderProgram:
		return "ShaderProgram"
	case KindSwapChain:
		return "SwapChain"
	default:
		return fmt.Sprintf("ResourceKind(%d)", uint8(k))
	}
}

// Implementation is the backend-specific payload behind a logical resource.
// An implementation is exclusively owned by its logical resource: it is
// created by a factory during resource creation and disposed exactly once
// when the resource disposes.
//
// Dispose must tolerate device-context teardown: when the owning backend
// has already been closed, the native handle is gone and Dispose must be a
// silent no-op, never a fault.
type Implementation interface {
	Kind() ResourceKind
	Dispose()
}

// Resource is the common state embedded in every logical resource: the
// system-issued id, the kind, an optional debug label, and the disposed
// flag. The id is unique for the lifetime of the issuing RenderSystem and
// is never reused, so state caches and debug tooling can key on it safely
// even after disposal.
type Resource struct {
	id       uint64
	kind     ResourceKind
	label    string
	disposed atomic.Bool
	impl     Implementation
}

func newResource(id uint64, kind ResourceKind, impl Implementation) Resource {
	return Resource{id: id, kind: kind, impl: impl}
}

// ID returns the unique resource id.
func (r *Resource) ID() uint64 { return r.id }

// Kind returns the logical resource kind.
func (r *Resource) Kind() ResourceKind { return r.kind }

// Label returns the debug label, if any.
func (r *Resource) Label() string { return r.label }

// SetLabel attaches a debug label used in logging.
func (r *Resource) SetLabel(label string) { r.label = label }

// Disposed reports whether Dispose has been called.
func (r *Resource) Disposed() bool { return r.disposed.Load() }

// Dispose releases the native resources behind this handle. It is
// idempotent: the first call disposes the implementation, every later call
// is a no-op. Disposing after the owning render system closed is silently
// tolerated; the backend checks context liveness before touching handles.
//
// Disposing a resource that a draw on the same context still references is
// a caller error; the core performs no cross-call lifetime tracking.
func (r *Resource) Dispose() {
	if r.disposed.Swap(true) {
		return
	}
	if r.impl != nil {
		r.impl.Dispose()
	}
	Logger().Debug("graphics: resource disposed", "kind", r.kind.String(), "id", r.id)
}

// guardMutate returns a DisposedError when the resource can no longer be
// mutated. Shared by the SetData-style methods of concrete resources.
func (r *Resource) guardMutate() error {
	if r.disposed.Load() {
		return &DisposedError{Kind: r.kind, ID: r.id}
	}
	return nil
}
