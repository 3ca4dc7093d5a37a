package window

import (
	"reflect"
	"testing"
)

type stubWindow struct {
	events chan Event
}

func (s *stubWindow) Size() (int, int)     { return 640, 480 }
func (s *stubWindow) Focused() bool        { return true }
func (s *stubWindow) Minimized() bool      { return false }
func (s *stubWindow) ShouldClose() bool    { return false }
func (s *stubWindow) Events() <-chan Event { return s.events }
func (s *stubWindow) Poll()                {}
func (s *stubWindow) SwapBuffers()         {}
func (s *stubWindow) Destroy()             {}

func TestOfferDropsOldestWhenFull(t *testing.T) {
	ch := make(chan Event, 2)
	offer(ch, ResizeEvent{Width: 1, Height: 1})
	offer(ch, ResizeEvent{Width: 2, Height: 2})
	offer(ch, ResizeEvent{Width: 3, Height: 3})

	got := []Event{<-ch, <-ch}
	want := []Event{
		ResizeEvent{Width: 2, Height: 2},
		ResizeEvent{Width: 3, Height: 3},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("events after overflow = %v, want %v", got, want)
	}
	select {
	case e := <-ch:
		t.Fatalf("unexpected extra event %v", e)
	default:
	}
}

func TestDrainReturnsPendingInOrder(t *testing.T) {
	w := &stubWindow{events: make(chan Event, EventBuffer)}
	offer(w.events, FocusEvent{Focused: false})
	offer(w.events, MinimizeEvent{Minimized: true})
	offer(w.events, CloseEvent{})

	got := Drain(w)
	want := []Event{
		FocusEvent{Focused: false},
		MinimizeEvent{Minimized: true},
		CloseEvent{},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Drain() = %v, want %v", got, want)
	}

	if got := Drain(w); len(got) != 0 {
		t.Fatalf("second Drain() = %v, want empty", got)
	}
}

func TestResizeStormCollapses(t *testing.T) {
	w := &stubWindow{events: make(chan Event, EventBuffer)}
	for i := 0; i < EventBuffer*3; i++ {
		offer(w.events, ResizeEvent{Width: i, Height: i})
	}

	got := Drain(w)
	if len(got) != EventBuffer {
		t.Fatalf("len = %d, want %d", len(got), EventBuffer)
	}
	last := got[len(got)-1].(ResizeEvent)
	if last.Width != EventBuffer*3-1 {
		t.Fatalf("newest event lost: %+v", last)
	}
}
