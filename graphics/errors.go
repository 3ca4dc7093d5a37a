package graphics

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	// ErrNoBackendAvailable is returned when no registered backend reports
	// itself available on the current system.
	ErrNoBackendAvailable = errors.New("graphics: no backend available")

	// ErrSystemClosed is returned when creating resources or contexts on a
	// closed render system.
	ErrSystemClosed = errors.New("graphics: render system is closed")

	// ErrInvalidArgument is wrapped by creation methods when the caller
	// passes malformed parameters (non-positive dimensions, empty data,
	// mismatched buffer lengths).
	ErrInvalidArgument = errors.New("graphics: invalid argument")

	// ErrNilResource is returned when a context operation receives nil.
	ErrNilResource = errors.New("graphics: resource is nil")

	// ErrFactoryNotFound is returned by FactoryOf when no registered
	// factory implements the requested interface.
	ErrFactoryNotFound = errors.New("graphics: no factory implements the requested interface")
)

// NotSupportedError reports that the active backend registers no factory
// for the requested resource kind. Callers that branch on optional
// capabilities should use IsSupported or Supports instead of provoking
// this error.
type NotSupportedError struct {
	Kind ResourceKind

	// Op names a non-resource operation the backend lacks, such as
	// device contexts on a resource-only backend. When set it replaces
	// the kind in the message.
	Op string
}

func (e *NotSupportedError) Error() string {
	if e.Op != "" {
		return "graphics: operation not supported by backend: " + e.Op
	}
	return "graphics: resource kind not supported by backend: " + e.Kind.String()
}

// DuplicateFactoryError reports a second factory registration for a kind
// that already has one. Double registration indicates a backend bug, so
// registration fails fast instead of overwriting.
type DuplicateFactoryError struct {
	Kind ResourceKind
}

func (e *DuplicateFactoryError) Error() string {
	return "graphics: factory already registered for kind: " + e.Kind.String()
}

// BackendNotFoundError reports a backend name with no registry entry.
type BackendNotFoundError struct {
	Name string
}

func (e *BackendNotFoundError) Error() string {
	return "graphics: backend not found: " + e.Name
}

// BackendUnavailableError reports a registered backend whose availability
// probe returned false on this system.
type BackendUnavailableError struct {
	Name string
}

func (e *BackendUnavailableError) Error() string {
	return "graphics: backend unavailable: " + e.Name
}

// DisposedError reports a mutating operation on a disposed resource.
// Dispose itself never returns this; repeated disposal is a no-op.
type DisposedError struct {
	Kind ResourceKind
	ID   uint64
}

func (e *DisposedError) Error() string {
	return fmt.Sprintf("graphics: %s resource %d is disposed", e.Kind, e.ID)
}

// CompileError carries the driver or compiler diagnostic log for a shader
// that failed to compile or link. It occurs only at creation time, never
// during state application.
type CompileError struct {
	// Stage identifies the failing unit: "vertex", "fragment", "link",
	// or "wgsl" for front-end translation failures.
	Stage string

	// Log is the diagnostic text reported by the driver or compiler.
	Log string
}

func (e *CompileError) Error() string {
	return "graphics: " + e.Stage + " compilation failed: " + e.Log
}
