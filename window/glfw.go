package window

import (
	"fmt"
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Options configures a glfw window.
type Options struct {
	Title     string
	Width     int
	Height    int
	Resizable bool
	VSync     bool
}

var glfwInit struct {
	once sync.Once
	err  error
}

// glfwWindow implements Window over go-gl/glfw with an OpenGL 4.1 core
// forward-compatible context. All methods must run on the thread that
// created the window.
type glfwWindow struct {
	win    *glfw.Window
	events chan Event

	width     int
	height    int
	focused   bool
	minimized bool
	destroyed bool
}

// NewGLFW opens a native window and makes its GL context current on the
// calling thread. The caller must have locked the OS thread.
func NewGLFW(opts Options) (Window, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("window: size %dx%d", opts.Width, opts.Height)
	}
	glfwInit.once.Do(func() {
		glfwInit.err = glfw.Init()
	})
	if glfwInit.err != nil {
		return nil, fmt.Errorf("window: init glfw: %w", glfwInit.err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	if opts.Resizable {
		glfw.WindowHint(glfw.Resizable, glfw.True)
	} else {
		glfw.WindowHint(glfw.Resizable, glfw.False)
	}

	win, err := glfw.CreateWindow(opts.Width, opts.Height, opts.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("window: create: %w", err)
	}

	w := &glfwWindow{
		win:     win,
		events:  make(chan Event, EventBuffer),
		focused: true,
	}
	// Track the framebuffer, not the logical window: high-DPI displays
	// scale the two differently and the renderer needs pixels.
	w.width, w.height = win.GetFramebufferSize()

	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		w.width, w.height = width, height
		offer(w.events, ResizeEvent{Width: width, Height: height})
	})
	win.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		w.focused = focused
		offer(w.events, FocusEvent{Focused: focused})
	})
	win.SetIconifyCallback(func(_ *glfw.Window, iconified bool) {
		w.minimized = iconified
		offer(w.events, MinimizeEvent{Minimized: iconified})
	})
	win.SetCloseCallback(func(_ *glfw.Window) {
		offer(w.events, CloseEvent{})
	})

	win.MakeContextCurrent()
	if opts.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	return w, nil
}

func (w *glfwWindow) Size() (int, int) { return w.width, w.height }

func (w *glfwWindow) Focused() bool { return w.focused }

func (w *glfwWindow) Minimized() bool { return w.minimized }

func (w *glfwWindow) ShouldClose() bool {
	if w.destroyed {
		return true
	}
	return w.win.ShouldClose()
}

func (w *glfwWindow) Events() <-chan Event { return w.events }

func (w *glfwWindow) Poll() {
	if w.destroyed {
		return
	}
	glfw.PollEvents()
}

func (w *glfwWindow) SwapBuffers() {
	if w.destroyed {
		return
	}
	w.win.SwapBuffers()
}

func (w *glfwWindow) Destroy() {
	if w.destroyed {
		return
	}
	w.destroyed = true
	w.win.Destroy()
}
