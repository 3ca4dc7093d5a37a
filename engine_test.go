package kynto

import (
	"errors"
	"testing"

	"github.com/Mattiemus/Kynto2-sub008/graphics"
	"github.com/Mattiemus/Kynto2-sub008/material"
	"github.com/Mattiemus/Kynto2-sub008/window"
)

// Test double backend: a context that counts calls and a swap chain
// that records resizes, enough surface for the engine's frame loop.

type testContextImpl struct {
	clears    int
	viewports [][4]int
	presents  int
	disposed  int
}

func (c *testContextImpl) ApplyBlend(graphics.BlendDescription) error               { return nil }
func (c *testContextImpl) ApplyDepthStencil(graphics.DepthStencilDescription) error { return nil }
func (c *testContextImpl) ApplyRasterizer(graphics.RasterizerDescription) error     { return nil }
func (c *testContextImpl) ApplySampler(int, graphics.SamplerStateImplementation) error {
	return nil
}

func (c *testContextImpl) Clear(graphics.ClearOptions) error { c.clears++; return nil }

func (c *testContextImpl) SetViewport(x, y, width, height int) {
	c.viewports = append(c.viewports, [4]int{x, y, width, height})
}

func (c *testContextImpl) Draw(graphics.PrimitiveTopology, int, int) error { return nil }

func (c *testContextImpl) DrawIndexed(graphics.PrimitiveTopology, graphics.IndexFormat, int, int) error {
	return nil
}

func (c *testContextImpl) Dispose() { c.disposed++ }

type testSwapImpl struct {
	resizes  [][2]int
	presents int
	disposed int
}

func (s *testSwapImpl) Kind() graphics.ResourceKind { return graphics.KindSwapChain }
func (s *testSwapImpl) Dispose()                    { s.disposed++ }

func (s *testSwapImpl) Resize(width, height int) error {
	s.resizes = append(s.resizes, [2]int{width, height})
	return nil
}

func (s *testSwapImpl) Present() error {
	s.presents++
	return nil
}

type testSwapFactory struct{ last *testSwapImpl }

func (f *testSwapFactory) Kind() graphics.ResourceKind { return graphics.KindSwapChain }
func (f *testSwapFactory) CreateSwapChain(width, height int, format graphics.TextureFormat) (graphics.SwapChainImplementation, error) {
	f.last = &testSwapImpl{}
	return f.last, nil
}

type testBackend struct {
	swaps    *testSwapFactory
	context  *testContextImpl
	teardown *[]string
}

func newTestBackend(teardown *[]string) *testBackend {
	return &testBackend{swaps: &testSwapFactory{}, teardown: teardown}
}

func (b *testBackend) Name() string { return "enginetest" }

func (b *testBackend) Capabilities() graphics.Capabilities {
	return graphics.Capabilities{
		MaxRenderTargets:     graphics.MaxRenderTargets,
		MaxVertexAttributes:  16,
		MaxTextureSize:       4096,
		MaxAnisotropy:        16,
		MaxSamples:           4,
		SeparateStateObjects: true,
	}
}

func (b *testBackend) Factories() []graphics.Factory {
	return []graphics.Factory{b.swaps}
}

func (b *testBackend) NewContext() (graphics.ContextImplementation, error) {
	b.context = &testContextImpl{}
	return b.context, nil
}

func (b *testBackend) Close() error {
	if b.teardown != nil {
		*b.teardown = append(*b.teardown, "backend")
	}
	return nil
}

// testWindow drives the engine without a display.
type testWindow struct {
	events   chan window.Event
	width    int
	height   int
	swaps    int
	teardown *[]string
}

func newTestWindow(width, height int) *testWindow {
	return &testWindow{
		events: make(chan window.Event, window.EventBuffer),
		width:  width,
		height: height,
	}
}

func (w *testWindow) push(e window.Event) {
	select {
	case w.events <- e:
	default:
	}
}

func (w *testWindow) Size() (int, int)            { return w.width, w.height }
func (w *testWindow) Focused() bool               { return true }
func (w *testWindow) Minimized() bool             { return false }
func (w *testWindow) ShouldClose() bool           { return false }
func (w *testWindow) Events() <-chan window.Event { return w.events }
func (w *testWindow) Poll()                       {}
func (w *testWindow) SwapBuffers()                { w.swaps++ }

func (w *testWindow) Destroy() {
	if w.teardown != nil {
		*w.teardown = append(*w.teardown, "window")
	}
}

func registerTestBackend(t *testing.T, b *testBackend) {
	t.Helper()
	graphics.RegisterBackend(b.Name(), 1, func() (graphics.Backend, error) {
		return b, nil
	}, func() bool { return true })
	t.Cleanup(func() { graphics.UnregisterBackend(b.Name()) })
}

func TestEngineHeadless(t *testing.T) {
	b := newTestBackend(nil)
	registerTestBackend(t, b)

	eng, err := New(WithBackend(b.Name()), Headless())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if eng.Window() != nil {
		t.Fatal("headless engine opened a window")
	}
	if eng.Context() == nil {
		t.Fatal("no device context")
	}

	ran := 0
	err = eng.RunFrame(func(ctx *graphics.RenderContext) error {
		ran++
		return ctx.Clear(graphics.ClearAll(graphics.Color{A: 1}))
	})
	if err != nil {
		t.Fatalf("RunFrame: %v", err)
	}
	if ran != 1 || b.context.clears != 1 {
		t.Fatalf("ran=%d clears=%d, want 1/1", ran, b.context.clears)
	}

	if err := eng.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := eng.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
	if err := eng.RunFrame(nil); !errors.Is(err, graphics.ErrSystemClosed) {
		t.Fatalf("RunFrame after Close = %v, want ErrSystemClosed", err)
	}
}

func TestEngineFrameLoopWithWindow(t *testing.T) {
	b := newTestBackend(nil)
	registerTestBackend(t, b)
	win := newTestWindow(640, 480)

	eng, err := New(WithBackend(b.Name()), WithWindow(win))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer eng.Close()

	swap := b.swaps.last
	if swap == nil {
		t.Fatal("no swap chain created for the window")
	}

	// A frame presents and swaps.
	if err := eng.RunFrame(nil); err != nil {
		t.Fatalf("RunFrame: %v", err)
	}
	if swap.presents != 1 || win.swaps != 1 {
		t.Fatalf("presents=%d swaps=%d, want 1/1", swap.presents, win.swaps)
	}

	// Resize events reach the swap chain and viewport.
	win.push(window.ResizeEvent{Width: 800, Height: 600})
	if err := eng.RunFrame(nil); err != nil {
		t.Fatalf("RunFrame after resize: %v", err)
	}
	if len(swap.resizes) != 1 || swap.resizes[0] != [2]int{800, 600} {
		t.Fatalf("swap resizes = %v", swap.resizes)
	}
	last := b.context.viewports[len(b.context.viewports)-1]
	if last != [4]int{0, 0, 800, 600} {
		t.Fatalf("viewport = %v", last)
	}

	// Minimized frames are suspended until restore.
	ran := 0
	frame := func(*graphics.RenderContext) error { ran++; return nil }
	win.push(window.MinimizeEvent{Minimized: true})
	if err := eng.RunFrame(frame); err != nil {
		t.Fatalf("RunFrame minimized: %v", err)
	}
	if ran != 0 {
		t.Fatal("frame ran while minimized")
	}
	win.push(window.MinimizeEvent{Minimized: false})
	if err := eng.RunFrame(frame); err != nil {
		t.Fatalf("RunFrame restored: %v", err)
	}
	if ran != 1 {
		t.Fatalf("ran = %d after restore, want 1", ran)
	}
}

func TestEngineBuiltinSemantics(t *testing.T) {
	b := newTestBackend(nil)
	registerTestBackend(t, b)

	reg := material.NewBindingRegistry()
	marker := []float32{123}
	if err := reg.Register("Time", func() []float32 { return marker }); err != nil {
		t.Fatalf("Register: %v", err)
	}

	eng, err := New(WithBackend(b.Name()), Headless(), WithBindings(reg))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer eng.Close()

	// Caller-registered semantics win over built-ins.
	p, ok := eng.Bindings().Resolve("Time")
	if !ok {
		t.Fatal("Time semantic missing")
	}
	if got := p(); got[0] != 123 {
		t.Fatalf("Time payload = %v, want caller's provider", got)
	}

	vp, ok := eng.Bindings().Resolve("ViewportSize")
	if !ok {
		t.Fatal("ViewportSize semantic missing")
	}
	if got := vp(); len(got) != 2 {
		t.Fatalf("ViewportSize payload = %v", got)
	}
}

func TestEngineTeardownOrder(t *testing.T) {
	var order []string
	b := newTestBackend(&order)
	registerTestBackend(t, b)
	win := newTestWindow(320, 240)
	win.teardown = &order

	eng, err := New(WithBackend(b.Name()), WithWindow(win))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := eng.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if len(order) != 2 || order[0] != "backend" || order[1] != "window" {
		t.Fatalf("teardown order = %v, want backend before window", order)
	}
	if b.context.disposed != 1 {
		t.Fatalf("context disposed = %d, want 1", b.context.disposed)
	}
	if b.swaps.last.disposed != 1 {
		t.Fatalf("swap chain disposed = %d, want 1", b.swaps.last.disposed)
	}
}

func TestEngineUnknownBackend(t *testing.T) {
	_, err := New(WithBackend("definitely-not-registered"), Headless())
	if err == nil {
		t.Fatal("unknown backend accepted")
	}
	var nf *graphics.BackendNotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("err = %v, want BackendNotFoundError", err)
	}
}
