// Package input turns raw key presses into the per-frame signals the game
// polls: held movement keys and press edges for firing and restarting.
package input

import (
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
// Terminals report presses and auto-repeats but never releases.
const keyHoldDuration = 30 * time.Millisecond

// Input represents the current frame's input state.
type Input struct {
	TurnLeft  bool // held
	TurnRight bool // held
	Thrust    bool // held
	Fire      bool // press edge
	Restart   bool // press edge
	Quit      bool // press edge
}

// Key is a logical game key. Every physical binding maps onto one of these.
type Key int

const (
	KeyNone Key = iota
	KeyTurnLeft
	KeyTurnRight
	KeyThrust
	KeyFire
	KeyRestart
	KeyQuit
	keyCount
)

// KeyForByte maps a single byte of terminal input onto a logical key.
// Arrow keys arrive as escape sequences and are handled by the Stream parser.
func KeyForByte(b byte) Key {
	switch b {
	case 'a', 'A':
		return KeyTurnLeft
	case 'd', 'D':
		return KeyTurnRight
	case 'w', 'W':
		return KeyThrust
	case ' ', 'z', 'Z':
		return KeyFire
	case 'r', 'R', '\r', '\n':
		return KeyRestart
	case 'q', 'Q', 0x03: // 0x03 = Ctrl-C in raw mode
		return KeyQuit
	}
	return KeyNone
}

// Tracker turns key presses into held state and press edges.
type Tracker struct {
	hold    time.Duration
	last    [keyCount]time.Time // Last press of each key
	pending [keyCount]bool      // Pressed since the previous Poll
	held    [keyCount]bool      // Held as of the previous Poll
}

// NewTracker creates a tracker that keeps a key held for hold after each
// press. A non-positive hold uses the default.
func NewTracker(hold time.Duration) *Tracker {
	if hold <= 0 {
		hold = keyHoldDuration
	}
	return &Tracker{hold: hold}
}

// Press records a press (or auto-repeat) of k at now.
func (t *Tracker) Press(k Key, now time.Time) {
	if k <= KeyNone || k >= keyCount {
		return
	}
	t.last[k] = now
	t.pending[k] = true
}

// Poll returns the input for the frame starting at now. A key is held if it
// was pressed since the last poll or within the hold window; an edge is a key
// held now that was not held at the previous poll.
func (t *Tracker) Poll(now time.Time) Input {
	var down [keyCount]bool
	var edge [keyCount]bool
	for k := KeyNone + 1; k < keyCount; k++ {
		down[k] = t.pending[k] || now.Sub(t.last[k]) < t.hold
		edge[k] = down[k] && !t.held[k]
	}
	t.held = down
	clear(t.pending[:])

	return Input{
		TurnLeft:  down[KeyTurnLeft],
		TurnRight: down[KeyTurnRight],
		Thrust:    down[KeyThrust],
		Fire:      edge[KeyFire],
		Restart:   edge[KeyRestart],
		Quit:      edge[KeyQuit],
	}
}

// Reset forgets all presses, e.g. after a state change where a lingering
// key must not count as a fresh press.
func (t *Tracker) Reset() {
	*t = Tracker{hold: t.hold}
}
