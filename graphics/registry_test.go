package graphics

import (
	"errors"
	"testing"
)

func registerFake(reg *BackendRegistry, name string, priority int, available bool) *fakeBackend {
	b := newFakeBackend()
	b.name = name
	reg.Register(name, priority, func() (Backend, error) { return b, nil }, func() bool { return available })
	return b
}

func TestRegistryPriorityOrder(t *testing.T) {
	reg := NewBackendRegistry()
	registerFake(reg, "low", 10, true)
	registerFake(reg, "high", 100, true)
	registerFake(reg, "mid", 50, false)

	list := reg.List()
	want := []string{"high", "mid", "low"}
	if len(list) != len(want) {
		t.Fatalf("List len = %d, want %d", len(list), len(want))
	}
	for i := range want {
		if list[i] != want[i] {
			t.Errorf("List[%d] = %q, want %q", i, list[i], want[i])
		}
	}

	avail := reg.Available()
	if len(avail) != 2 || avail[0] != "high" || avail[1] != "low" {
		t.Errorf("Available = %v, want [high low]", avail)
	}
}

func TestRegistryPriorityTieBrokenByName(t *testing.T) {
	reg := NewBackendRegistry()
	registerFake(reg, "bravo", 50, true)
	registerFake(reg, "alpha", 50, true)

	list := reg.List()
	if list[0] != "alpha" || list[1] != "bravo" {
		t.Errorf("List = %v, want [alpha bravo]", list)
	}
}

func TestRegistryOpenBest(t *testing.T) {
	reg := NewBackendRegistry()
	registerFake(reg, "low", 10, true)
	registerFake(reg, "high", 100, true)

	b, err := reg.OpenBest()
	if err != nil {
		t.Fatalf("OpenBest failed: %v", err)
	}
	if b.Name() != "high" {
		t.Errorf("OpenBest = %q, want high", b.Name())
	}
}

func TestRegistryOpenBestFallsThroughFailedFactory(t *testing.T) {
	reg := NewBackendRegistry()
	reg.Register("broken", 100, func() (Backend, error) {
		return nil, errors.New("device init failed")
	}, nil)
	registerFake(reg, "working", 10, true)

	b, err := reg.OpenBest()
	if err != nil {
		t.Fatalf("OpenBest failed: %v", err)
	}
	if b.Name() != "working" {
		t.Errorf("OpenBest = %q, want working", b.Name())
	}
}

func TestRegistryOpenErrors(t *testing.T) {
	reg := NewBackendRegistry()
	registerFake(reg, "offline", 10, false)

	_, err := reg.Open("missing")
	var nf *BackendNotFoundError
	if !errors.As(err, &nf) {
		t.Errorf("Open(missing) error = %v, want BackendNotFoundError", err)
	}

	_, err = reg.Open("offline")
	var ua *BackendUnavailableError
	if !errors.As(err, &ua) {
		t.Errorf("Open(offline) error = %v, want BackendUnavailableError", err)
	}

	empty := NewBackendRegistry()
	if _, err := empty.OpenBest(); !errors.Is(err, ErrNoBackendAvailable) {
		t.Errorf("OpenBest on empty registry: error = %v, want ErrNoBackendAvailable", err)
	}
}

func TestRegistryUnregister(t *testing.T) {
	reg := NewBackendRegistry()
	registerFake(reg, "temp", 10, true)
	reg.Unregister("temp")

	if _, ok := reg.Get("temp"); ok {
		t.Error("entry still present after Unregister")
	}
}

func TestNewRenderSystemWithRegistry(t *testing.T) {
	reg := NewBackendRegistry()
	registerFake(reg, "fake", 10, true)

	rs, err := NewRenderSystemWithRegistry(reg, "")
	if err != nil {
		t.Fatalf("NewRenderSystemWithRegistry failed: %v", err)
	}
	defer rs.Close()

	if rs.Backend().Name() != "fake" {
		t.Errorf("backend = %q, want fake", rs.Backend().Name())
	}

	if _, err := NewRenderSystemWithRegistry(nil, ""); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("nil registry: error = %v, want ErrInvalidArgument", err)
	}
}
