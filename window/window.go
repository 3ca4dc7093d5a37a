package window

// Window is the surface the engine renders into. State accessors
// reflect the most recent Poll; Events carries the edge notifications
// produced by that Poll.
type Window interface {
	// Size returns the framebuffer size in pixels.
	Size() (width, height int)
	// Focused reports whether the window has input focus.
	Focused() bool
	// Minimized reports whether the window is iconified.
	Minimized() bool
	// ShouldClose reports whether a close was requested.
	ShouldClose() bool
	// Events returns the bounded event channel.
	Events() <-chan Event
	// Poll pumps the native event loop once.
	Poll()
	// SwapBuffers presents the back buffer.
	SwapBuffers()
	// Destroy releases the native window. Destroy is idempotent.
	Destroy()
}
