package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyForByte(t *testing.T) {
	tests := []struct {
		in   byte
		want Key
	}{
		{'a', KeyTurnLeft},
		{'d', KeyTurnRight},
		{'w', KeyThrust},
		{' ', KeyFire},
		{'z', KeyFire},
		{'r', KeyRestart},
		{'\r', KeyRestart},
		{'q', KeyQuit},
		{0x03, KeyQuit},
		{'x', KeyNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, KeyForByte(tt.in), "byte %q", tt.in)
	}
}

func TestTrackerHeldKeys(t *testing.T) {
	start := time.Unix(0, 0)
	tr := NewTracker(30 * time.Millisecond)

	tr.Press(KeyTurnLeft, start)
	tr.Press(KeyThrust, start)
	in := tr.Poll(start.Add(16 * time.Millisecond))
	assert.True(t, in.TurnLeft)
	assert.True(t, in.Thrust)
	assert.False(t, in.TurnRight)

	// Still inside the hold window.
	in = tr.Poll(start.Add(25 * time.Millisecond))
	assert.True(t, in.TurnLeft)

	in = tr.Poll(start.Add(50 * time.Millisecond))
	assert.False(t, in.TurnLeft)
	assert.False(t, in.Thrust)
}

func TestTrackerPressSeenAfterLongFrame(t *testing.T) {
	start := time.Unix(0, 0)
	tr := NewTracker(30 * time.Millisecond)

	tr.Press(KeyFire, start)
	in := tr.Poll(start.Add(time.Second))
	assert.True(t, in.Fire, "press since the last poll must not be lost")
}

func TestTrackerFireIsEdge(t *testing.T) {
	start := time.Unix(0, 0)
	tr := NewTracker(30 * time.Millisecond)

	tr.Press(KeyFire, start)
	in := tr.Poll(start)
	require.True(t, in.Fire)

	// Auto-repeat keeps the key held: no new edge.
	tr.Press(KeyFire, start.Add(10*time.Millisecond))
	in = tr.Poll(start.Add(16 * time.Millisecond))
	assert.False(t, in.Fire)

	// Released, then pressed again.
	in = tr.Poll(start.Add(100 * time.Millisecond))
	assert.False(t, in.Fire)
	tr.Press(KeyFire, start.Add(110*time.Millisecond))
	in = tr.Poll(start.Add(116 * time.Millisecond))
	assert.True(t, in.Fire)
}

func TestTrackerReset(t *testing.T) {
	start := time.Unix(0, 0)
	tr := NewTracker(0)
	tr.Press(KeyRestart, start)
	tr.Reset()
	in := tr.Poll(start)
	assert.False(t, in.Restart)
}

func TestParseBytesArrows(t *testing.T) {
	now := time.Unix(0, 0)
	tr := NewTracker(0)
	ParseBytes([]byte("\x1b[A\x1b[D\x1b[C\x1b[B "), tr, now)

	in := tr.Poll(now)
	assert.True(t, in.Thrust)
	assert.True(t, in.TurnLeft)
	assert.True(t, in.TurnRight)
	assert.True(t, in.Fire)
	assert.False(t, in.Quit)
}

func TestStreamQuitOnEOF(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader("w")))

	require.Eventually(t, func() bool {
		return s.Poll(time.Now()).Quit
	}, time.Second, time.Millisecond)
	assert.True(t, s.Closed())
}

func TestParseBytesCarriesSplitEscape(t *testing.T) {
	now := time.Unix(0, 0)
	tests := []struct {
		first, second string
	}{
		{"\x1b[", "A"},
		{"\x1b", "[A"},
		{"a\x1b[", "A"},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q+%q", tt.first, tt.second), func(t *testing.T) {
			tr := NewTracker(0)
			rest := ParseBytes([]byte(tt.first), tr, now)
			require.NotEmpty(t, rest)

			ParseBytes(append(rest, tt.second...), tr, now)
			in := tr.Poll(now)
			assert.True(t, in.Thrust)
			assert.False(t, in.Fire)
			assert.Equal(t, tt.first[0] == 'a', in.TurnLeft)
		})
	}
}

func TestStreamJoinsEscapeAcrossReads(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()
	s := StartStream(bufio.NewReader(pr))

	_, err := pw.Write([]byte("\x1b["))
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		s.Poll(time.Now())
		return len(s.partial) == 2
	}, time.Second, time.Millisecond)

	_, err = pw.Write([]byte("D"))
	require.NoError(t, err)
	var right bool
	require.Eventually(t, func() bool {
		in := s.Poll(time.Now())
		right = right || in.TurnRight
		return in.TurnLeft
	}, time.Second, time.Millisecond)
	assert.False(t, right)
	assert.Empty(t, s.partial)
}

func TestStreamStopReleasesReader(t *testing.T) {
	s := StartStream(bufio.NewReader(strings.NewReader(strings.Repeat("x", 1024))))
	s.Stop()
	s.Stop()

	select {
	case <-s.Done():
	case <-time.After(time.Second):
		t.Fatal("reader goroutine still blocked after Stop")
	}
}

func TestKeyForEvent(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want Key
	}{
		{tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), KeyTurnLeft},
		{tcell.NewEventKey(tcell.KeyRight, 0, tcell.ModNone), KeyTurnRight},
		{tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), KeyThrust},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), KeyRestart},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), KeyQuit},
		{tcell.NewEventKey(tcell.KeyRune, ' ', tcell.ModNone), KeyFire},
		{tcell.NewEventKey(tcell.KeyRune, 'a', tcell.ModNone), KeyTurnLeft},
		{tcell.NewEventKey(tcell.KeyRune, 'é', tcell.ModNone), KeyNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, KeyForEvent(tt.ev), "event %s", tt.ev.Name())
	}
}

func TestEventSourcePoll(t *testing.T) {
	now := time.Unix(0, 0)
	s := NewEventSource()
	s.Push(tcell.NewEventKey(tcell.KeyRune, 'z', tcell.ModNone))
	s.Push(tcell.NewEventResize(80, 24))

	in := s.Poll(now)
	assert.True(t, in.Fire)
	assert.True(t, s.Resized())

	s.Poll(now.Add(time.Second))
	assert.False(t, s.Resized())
}
