package graphics

import (
	"errors"
	"sync"
	"testing"
)

func TestNextResourceIDMonotonic(t *testing.T) {
	rs, _ := newFakeSystem(t)
	defer rs.Close()

	prev := rs.NextResourceID()
	for i := 0; i < 100; i++ {
		id := rs.NextResourceID()
		if id <= prev {
			t.Fatalf("id %d not greater than previous %d", id, prev)
		}
		prev = id
	}
}

func TestNextResourceIDConcurrentUnique(t *testing.T) {
	rs, _ := newFakeSystem(t)
	defer rs.Close()

	const goroutines = 16
	const perGoroutine = 1000

	ids := make([][]uint64, goroutines)
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			ids[g] = make([]uint64, 0, perGoroutine)
			for i := 0; i < perGoroutine; i++ {
				ids[g] = append(ids[g], rs.NextResourceID())
			}
		}(g)
	}
	wg.Wait()

	seen := make(map[uint64]bool, goroutines*perGoroutine)
	for _, batch := range ids {
		for _, id := range batch {
			if seen[id] {
				t.Fatalf("id %d issued twice", id)
			}
			seen[id] = true
		}
	}
	if got, want := len(seen), goroutines*perGoroutine; got != want {
		t.Errorf("unique ids = %d, want %d", got, want)
	}
}

func TestDuplicateFactoryRegistration(t *testing.T) {
	rs, _ := newFakeSystem(t)
	defer rs.Close()

	err := rs.RegisterFactory(&fakeBlendFactory{fakeFactory{kind: KindBlendState}})
	var dup *DuplicateFactoryError
	if !errors.As(err, &dup) {
		t.Fatalf("RegisterFactory error = %v, want DuplicateFactoryError", err)
	}
	if dup.Kind != KindBlendState {
		t.Errorf("duplicate kind = %v, want %v", dup.Kind, KindBlendState)
	}
}

func TestIsSupported(t *testing.T) {
	b := newFakeBackend()
	b.factories = b.factories[:3] // buffers and textures only
	rs, err := NewRenderSystemWithBackend(b)
	if err != nil {
		t.Fatalf("NewRenderSystemWithBackend failed: %v", err)
	}
	defer rs.Close()

	if !rs.IsSupported(KindVertexBuffer) {
		t.Error("VertexBuffer should be supported")
	}
	if rs.IsSupported(KindBlendState) {
		t.Error("BlendState should not be supported")
	}

	_, err = rs.CreateBlendState(BlendOpaque())
	var ns *NotSupportedError
	if !errors.As(err, &ns) {
		t.Fatalf("CreateBlendState error = %v, want NotSupportedError", err)
	}
	if ns.Kind != KindBlendState {
		t.Errorf("unsupported kind = %v, want %v", ns.Kind, KindBlendState)
	}
}

func TestFactoryOf(t *testing.T) {
	rs, _ := newFakeSystem(t)
	defer rs.Close()

	f, err := FactoryOf[VertexBufferFactory](rs)
	if err != nil {
		t.Fatalf("FactoryOf[VertexBufferFactory] failed: %v", err)
	}
	if f.Kind() != KindVertexBuffer {
		t.Errorf("factory kind = %v, want %v", f.Kind(), KindVertexBuffer)
	}

	if !Supports[SwapChainFactory](rs) {
		t.Error("Supports[SwapChainFactory] = false, want true")
	}

	type unregistered interface {
		Factory
		CreateNothing()
	}
	if _, err := FactoryOf[unregistered](rs); !errors.Is(err, ErrFactoryNotFound) {
		t.Errorf("FactoryOf[unregistered] error = %v, want ErrFactoryNotFound", err)
	}
}

func TestCreateVertexBufferValidation(t *testing.T) {
	rs, _ := newFakeSystem(t)
	defer rs.Close()

	if _, err := rs.CreateVertexBuffer(UsageStatic, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("size 0: error = %v, want ErrInvalidArgument", err)
	}
	if _, err := rs.CreateVertexBuffer(UsageStatic, -8); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("negative size: error = %v, want ErrInvalidArgument", err)
	}
	if _, err := rs.CreateVertexBufferWithData(UsageStatic, nil); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("nil data: error = %v, want ErrInvalidArgument", err)
	}

	vb, err := rs.CreateVertexBufferWithData(UsageDynamic, make([]byte, 64))
	if err != nil {
		t.Fatalf("CreateVertexBufferWithData failed: %v", err)
	}
	if vb.SizeBytes() != 64 {
		t.Errorf("SizeBytes = %d, want 64", vb.SizeBytes())
	}
	if vb.ID() == 0 {
		t.Error("resource id not assigned")
	}
}

func TestCreateIndexBufferValidation(t *testing.T) {
	rs, _ := newFakeSystem(t)
	defer rs.Close()

	// 10 bytes is not a whole number of 32-bit indices.
	if _, err := rs.CreateIndexBuffer(UsageStatic, IndexUint32, 10); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("misaligned size: error = %v, want ErrInvalidArgument", err)
	}

	ib, err := rs.CreateIndexBuffer(UsageStatic, IndexUint16, 12)
	if err != nil {
		t.Fatalf("CreateIndexBuffer failed: %v", err)
	}
	if got, want := ib.IndexCount(), 6; got != want {
		t.Errorf("IndexCount = %d, want %d", got, want)
	}
}

func TestCreateTexture2DValidation(t *testing.T) {
	rs, _ := newFakeSystem(t)
	defer rs.Close()

	cases := []struct {
		name                     string
		width, height, mipLevels int
		dataLen                  int
	}{
		{"zero width", 0, 16, 1, -1},
		{"negative height", 16, -1, 1, -1},
		{"zero mips", 16, 16, 0, -1},
		{"too many mips", 16, 16, 6, -1},
		{"oversized", 8192, 8192, 1, -1},
		{"short data", 4, 4, 1, 15},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var err error
			if tc.dataLen >= 0 {
				_, err = rs.CreateTexture2DWithData(tc.width, tc.height, tc.mipLevels, FormatRGBA8, make([]byte, tc.dataLen))
			} else {
				_, err = rs.CreateTexture2D(tc.width, tc.height, tc.mipLevels, FormatRGBA8)
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("error = %v, want ErrInvalidArgument", err)
			}
		})
	}

	// A full mip chain for 16x16 is 5 levels.
	tex, err := rs.CreateTexture2D(16, 16, 5, FormatRGBA8)
	if err != nil {
		t.Fatalf("CreateTexture2D failed: %v", err)
	}
	if w, h := tex.LevelSize(4); w != 1 || h != 1 {
		t.Errorf("LevelSize(4) = %dx%d, want 1x1", w, h)
	}
}

func TestDisposeIdempotent(t *testing.T) {
	rs, _ := newFakeSystem(t)
	defer rs.Close()

	vb, err := rs.CreateVertexBuffer(UsageStatic, 16)
	if err != nil {
		t.Fatalf("CreateVertexBuffer failed: %v", err)
	}
	impl := vb.impl.(*fakeBufferImpl)

	vb.Dispose()
	vb.Dispose()
	vb.Dispose()

	if impl.disposed != 1 {
		t.Errorf("implementation disposed %d times, want exactly 1", impl.disposed)
	}
	if !vb.Disposed() {
		t.Error("Disposed() = false after Dispose")
	}
}

func TestMutateAfterDispose(t *testing.T) {
	rs, _ := newFakeSystem(t)
	defer rs.Close()

	vb, err := rs.CreateVertexBuffer(UsageStatic, 16)
	if err != nil {
		t.Fatalf("CreateVertexBuffer failed: %v", err)
	}
	vb.Dispose()

	err = vb.SetData(make([]byte, 4), 0)
	var de *DisposedError
	if !errors.As(err, &de) {
		t.Fatalf("SetData after dispose: error = %v, want DisposedError", err)
	}
	if de.Kind != KindVertexBuffer || de.ID != vb.ID() {
		t.Errorf("DisposedError = %+v, want kind %v id %d", de, KindVertexBuffer, vb.ID())
	}
}

func TestBufferSetDataBounds(t *testing.T) {
	rs, _ := newFakeSystem(t)
	defer rs.Close()

	vb, err := rs.CreateVertexBuffer(UsageDynamic, 16)
	if err != nil {
		t.Fatalf("CreateVertexBuffer failed: %v", err)
	}
	if err := vb.SetData(make([]byte, 8), 12); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("overrun write: error = %v, want ErrInvalidArgument", err)
	}
	if err := vb.SetData(make([]byte, 8), -1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("negative offset: error = %v, want ErrInvalidArgument", err)
	}
	if err := vb.SetData(make([]byte, 8), 8); err != nil {
		t.Errorf("in-bounds write failed: %v", err)
	}
}

func TestCloseSemantics(t *testing.T) {
	rs, b := newFakeSystem(t)

	vb, err := rs.CreateVertexBuffer(UsageStatic, 16)
	if err != nil {
		t.Fatalf("CreateVertexBuffer failed: %v", err)
	}

	if err := rs.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if !b.closed {
		t.Error("backend not closed")
	}
	if err := rs.Close(); err != nil {
		t.Errorf("second Close failed: %v", err)
	}

	if _, err := rs.CreateVertexBuffer(UsageStatic, 16); !errors.Is(err, ErrSystemClosed) {
		t.Errorf("create after close: error = %v, want ErrSystemClosed", err)
	}
	if _, err := rs.CreateContext(); !errors.Is(err, ErrSystemClosed) {
		t.Errorf("context after close: error = %v, want ErrSystemClosed", err)
	}

	// Disposal after teardown must be silent.
	vb.Dispose()
}

func TestSwapChainResize(t *testing.T) {
	rs, _ := newFakeSystem(t)
	defer rs.Close()

	sc, err := rs.CreateSwapChain(640, 480, FormatBGRA8)
	if err != nil {
		t.Fatalf("CreateSwapChain failed: %v", err)
	}
	if err := sc.Resize(800, 600); err != nil {
		t.Fatalf("Resize failed: %v", err)
	}
	if sc.Width() != 800 || sc.Height() != 600 {
		t.Errorf("size after resize = %dx%d, want 800x600", sc.Width(), sc.Height())
	}
	if err := sc.Resize(0, 600); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("zero resize: error = %v, want ErrInvalidArgument", err)
	}
}

func TestCreateSamplerStateValidation(t *testing.T) {
	rs, _ := newFakeSystem(t)
	defer rs.Close()

	desc := SamplerLinearWrap()
	desc.MaxAnisotropy = 0
	if _, err := rs.CreateSamplerState(desc); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("anisotropy 0: error = %v, want ErrInvalidArgument", err)
	}
}

func TestCreateShaderProgramValidation(t *testing.T) {
	rs, _ := newFakeSystem(t)
	defer rs.Close()

	if _, err := rs.CreateShaderProgram(ShaderSource{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("empty source: error = %v, want ErrInvalidArgument", err)
	}
	// A vertex stage alone is not a usable GLSL pair.
	if _, err := rs.CreateShaderProgram(ShaderSource{VertexGLSL: "void main() {}"}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("vertex-only source: error = %v, want ErrInvalidArgument", err)
	}
}
