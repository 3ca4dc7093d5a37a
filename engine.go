package kynto

import (
	"errors"
	"time"

	"github.com/Mattiemus/Kynto2-sub008/graphics"
	"github.com/Mattiemus/Kynto2-sub008/material"
	"github.com/Mattiemus/Kynto2-sub008/window"

	// Register the built-in backends.
	_ "github.com/Mattiemus/Kynto2-sub008/graphics/gl"
	_ "github.com/Mattiemus/Kynto2-sub008/graphics/wgpu"
)

// Engine owns the render system, the optional window, the device
// context and swap chain, and the semantic binding registry. It is
// single-threaded: New, RunFrame, and Close are called from the thread
// driving the frame loop (for glfw windows, the locked main thread).
type Engine struct {
	cfg      Config
	rs       *graphics.RenderSystem
	win      window.Window
	ctx      *graphics.RenderContext
	swap     *graphics.SwapChain
	bindings *material.BindingRegistry

	start     time.Time
	suspended bool
	closed    bool
}

// New creates an engine: resolve configuration, select the backend,
// open the window unless one was injected or Headless was requested,
// then create the device context and swap chain where the backend
// supports them.
func New(opts ...Option) (*Engine, error) {
	o := defaultEngineOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.cfgFile != "" {
		cfg, err := LoadConfig(o.cfgFile)
		if err != nil {
			return nil, err
		}
		o.cfg = cfg
	} else if err := o.cfg.validate(); err != nil {
		return nil, err
	}
	if o.loggerSet {
		SetLogger(o.logger)
	}

	backendName := o.backend
	if backendName == "" {
		backendName = o.cfg.Graphics.Backend
	}
	var (
		rs  *graphics.RenderSystem
		err error
	)
	if backendName != "" {
		rs, err = graphics.NewRenderSystemByName(backendName)
	} else {
		rs, err = graphics.NewRenderSystem()
	}
	if err != nil {
		return nil, err
	}

	e := &Engine{cfg: o.cfg, rs: rs, start: time.Now()}

	e.win = o.win
	if e.win == nil && !o.headless {
		w, err := window.NewGLFW(window.Options{
			Title:     o.cfg.Window.Title,
			Width:     o.cfg.Window.Width,
			Height:    o.cfg.Window.Height,
			Resizable: o.cfg.Window.Resizable,
			VSync:     o.cfg.Graphics.VSync,
		})
		if err != nil {
			rs.Close()
			return nil, err
		}
		e.win = w
	}

	ctx, err := rs.CreateContext()
	if err != nil {
		var nse *graphics.NotSupportedError
		if !errors.As(err, &nse) {
			e.Close()
			return nil, err
		}
		Logger().Info("backend has no device context, rendering disabled",
			"backend", rs.Backend().Name())
	} else {
		e.ctx = ctx
	}

	if e.win != nil && e.ctx != nil && rs.IsSupported(graphics.KindSwapChain) {
		w, h := e.win.Size()
		swap, err := rs.CreateSwapChain(w, h, graphics.FormatBGRA8)
		if err != nil {
			e.Close()
			return nil, err
		}
		e.swap = swap
		e.ctx.SetViewport(0, 0, w, h)
	}

	e.bindings = o.bindings
	if e.bindings == nil {
		e.bindings = material.NewBindingRegistry()
	}
	e.registerBuiltinSemantics()

	Logger().Info("engine ready", "backend", rs.Backend().Name(),
		"window", e.win != nil, "context", e.ctx != nil)
	return e, nil
}

// registerBuiltinSemantics installs the engine-provided semantics.
// Semantics the caller registered already are left alone.
func (e *Engine) registerBuiltinSemantics() {
	_ = e.bindings.Register("Time", func() []float32 {
		return []float32{float32(time.Since(e.start).Seconds())}
	})
	_ = e.bindings.Register("ViewportSize", func() []float32 {
		var w, h int
		switch {
		case e.win != nil:
			w, h = e.win.Size()
		case e.swap != nil:
			w, h = e.swap.Width(), e.swap.Height()
		}
		return []float32{float32(w), float32(h)}
	})
}

// Graphics returns the engine's render system.
func (e *Engine) Graphics() *graphics.RenderSystem { return e.rs }

// Window returns the engine's window, nil when headless.
func (e *Engine) Window() window.Window { return e.win }

// Context returns the device context, nil when the backend is
// resource-only.
func (e *Engine) Context() *graphics.RenderContext { return e.ctx }

// Bindings returns the semantic binding registry handed to
// material.Apply.
func (e *Engine) Bindings() *material.BindingRegistry { return e.bindings }

// Config returns the resolved configuration.
func (e *Engine) Config() Config { return e.cfg }

// RunFrame executes one frame: pump and drain window events, react to
// resize and minimize, invoke fn with the device context, present.
// While the window is minimized fn is skipped and the frame is a no-op.
func (e *Engine) RunFrame(fn func(*graphics.RenderContext) error) error {
	if e.closed {
		return graphics.ErrSystemClosed
	}

	if e.win != nil {
		e.win.Poll()
		for _, ev := range window.Drain(e.win) {
			switch ev := ev.(type) {
			case window.ResizeEvent:
				if ev.Width <= 0 || ev.Height <= 0 {
					continue
				}
				if e.swap != nil {
					if err := e.swap.Resize(ev.Width, ev.Height); err != nil {
						Logger().Warn("swap chain resize failed",
							"width", ev.Width, "height", ev.Height, "error", err)
					}
				}
				if e.ctx != nil {
					e.ctx.SetViewport(0, 0, ev.Width, ev.Height)
				}
			case window.MinimizeEvent:
				e.suspended = ev.Minimized
			}
		}
		if e.suspended {
			return nil
		}
	}

	if fn != nil {
		if e.ctx == nil {
			return &graphics.NotSupportedError{Op: "device contexts"}
		}
		if err := fn(e.ctx); err != nil {
			return err
		}
	}

	if e.ctx != nil && e.swap != nil {
		if err := e.ctx.Present(e.swap); err != nil {
			return err
		}
	}
	if e.win != nil {
		e.win.SwapBuffers()
	}
	return nil
}

// Close tears the engine down: swap chain and context first, then the
// render system, and the window last so resource disposal still runs
// against a live native context. Close is idempotent.
func (e *Engine) Close() error {
	if e.closed {
		return nil
	}
	e.closed = true

	if e.swap != nil {
		e.swap.Dispose()
		e.swap = nil
	}
	if e.ctx != nil {
		e.ctx.Dispose()
		e.ctx = nil
	}
	err := e.rs.Close()
	if e.win != nil {
		e.win.Destroy()
		e.win = nil
	}
	return err
}
