package input

import (
	"bufio"
	"sync"
	"time"
)

// Stream delivers input bytes via a channel and feeds them to a Tracker.
type Stream struct {
	ch      chan byte
	stop    chan struct{}
	done    chan struct{}
	once    sync.Once
	tracker *Tracker
	closed  bool
	partial []byte // escape prefix cut off at the end of the last drain
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
// The goroutine exits on a read error or once Stop is called.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch:      make(chan byte, 128),
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
		tracker: NewTracker(keyHoldDuration),
	}
	go func() {
		defer close(s.done)
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			select {
			case s.ch <- b:
			case <-s.stop:
				return
			}
		}
	}()
	return s
}

// Stop releases the reader goroutine. Bytes read afterwards are dropped.
// A read already blocked on the underlying reader returns when that reader does.
func (s *Stream) Stop() {
	s.once.Do(func() { close(s.stop) })
}

// Done is closed once the reader goroutine has exited.
func (s *Stream) Done() <-chan struct{} {
	return s.done
}

// Closed reports whether the underlying reader has ended.
func (s *Stream) Closed() bool {
	return s.closed
}

// Poll drains all available bytes (non-blocking) and returns the frame input.
// A closed reader reports Quit.
func (s *Stream) Poll(now time.Time) Input {
	buf := s.partial
	s.partial = nil

drain:
	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	rest := ParseBytes(buf, s.tracker, now)
	if !s.closed && len(rest) > 0 {
		s.partial = append([]byte(nil), rest...)
	}

	in := s.tracker.Poll(now)
	if s.closed {
		in.Quit = true
	}
	return in
}

// ParseBytes feeds a chunk of terminal input to the tracker, decoding arrow
// key escape sequences. An escape prefix at the very end of buf is returned
// unparsed so the caller can prepend it to the next chunk.
func ParseBytes(buf []byte, t *Tracker, now time.Time) (rest []byte) {
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		if b == '\x1b' && (i == len(buf)-1 || (i == len(buf)-2 && buf[i+1] == '[')) {
			return buf[i:]
		}

		// CSI sequence: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A': // Up arrow
				t.Press(KeyThrust, now)
				i += 2
				continue
			case 'C': // Right arrow
				t.Press(KeyTurnRight, now)
				i += 2
				continue
			case 'D': // Left arrow
				t.Press(KeyTurnLeft, now)
				i += 2
				continue
			case 'B': // Down arrow is unbound
				i += 2
				continue
			}
		}

		t.Press(KeyForByte(b), now)
	}
	return nil
}
