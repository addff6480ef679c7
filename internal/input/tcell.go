package input

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// KeyForEvent maps a tcell key event onto a logical key.
func KeyForEvent(ev *tcell.EventKey) Key {
	switch ev.Key() {
	case tcell.KeyLeft:
		return KeyTurnLeft
	case tcell.KeyRight:
		return KeyTurnRight
	case tcell.KeyUp:
		return KeyThrust
	case tcell.KeyEnter:
		return KeyRestart
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return KeyQuit
	case tcell.KeyRune:
		r := ev.Rune()
		if r < 0x80 {
			return KeyForByte(byte(r))
		}
	}
	return KeyNone
}

// EventSource collects tcell events from a screen's event loop.
type EventSource struct {
	events  chan tcell.Event
	tracker *Tracker
	resized bool
}

// NewEventSource creates an event source with room for buffered events.
func NewEventSource() *EventSource {
	return &EventSource{
		events:  make(chan tcell.Event, 128),
		tracker: NewTracker(keyHoldDuration),
	}
}

// Listen forwards events from screen until it is finalised. Run it in its
// own goroutine.
func (s *EventSource) Listen(screen tcell.Screen) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			close(s.events)
			return
		}
		s.Push(ev)
	}
}

// Push queues ev without blocking; events beyond the buffer are dropped.
func (s *EventSource) Push(ev tcell.Event) {
	select {
	case s.events <- ev:
	default:
	}
}

// Resized reports whether a resize arrived during the last Poll.
func (s *EventSource) Resized() bool {
	return s.resized
}

// Poll drains queued events (non-blocking) and returns the frame input.
func (s *EventSource) Poll(now time.Time) Input {
	s.resized = false
	closed := false

drain:
	for {
		select {
		case ev, ok := <-s.events:
			if !ok {
				closed = true
				break drain
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				s.tracker.Press(KeyForEvent(ev), now)
			case *tcell.EventResize:
				s.resized = true
			}
		default:
			break drain
		}
	}

	in := s.tracker.Poll(now)
	if closed {
		in.Quit = true
	}
	return in
}
