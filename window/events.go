package window

// EventBuffer is the capacity of a window's event channel.
const EventBuffer = 64

// Event is a window state-change notification.
type Event interface {
	isEvent()
}

// ResizeEvent reports a new framebuffer size in pixels.
type ResizeEvent struct {
	Width  int
	Height int
}

// FocusEvent reports a focus gain or loss.
type FocusEvent struct {
	Focused bool
}

// MinimizeEvent reports iconification or restoration.
type MinimizeEvent struct {
	Minimized bool
}

// CloseEvent reports that the user asked the window to close.
type CloseEvent struct{}

func (ResizeEvent) isEvent()   {}
func (FocusEvent) isEvent()    {}
func (MinimizeEvent) isEvent() {}
func (CloseEvent) isEvent()    {}

// offer enqueues an event, dropping the oldest pending event when the
// channel is full.
func offer(ch chan Event, e Event) {
	for {
		select {
		case ch <- e:
			return
		default:
		}
		select {
		case <-ch:
		default:
		}
	}
}

// Drain returns every pending event without blocking.
func Drain(w Window) []Event {
	var out []Event
	for {
		select {
		case e := <-w.Events():
			out = append(out, e)
		default:
			return out
		}
	}
}
