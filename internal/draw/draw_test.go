package draw

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countCells(c *Canvas) int {
	n := 0
	c.Cells(func(_, _ int, _ rune) { n++ })
	return n
}

func TestArenaCanvasLogicalSize(t *testing.T) {
	c := NewArenaCanvas(160, 45)
	assert.Equal(t, 1280.0, c.LogicalWidth())
	assert.Equal(t, 720.0, c.LogicalHeight())

	c.Resize(80, 20)
	assert.Equal(t, 640.0, c.LogicalWidth())
	assert.Equal(t, 320.0, c.LogicalHeight())
}

func TestCanvasHalfBlocks(t *testing.T) {
	c := NewArenaCanvas(4, 2)

	c.SetFloat(0, 0) // top half of cell (0,0)
	c.SetFloat(9, 8) // bottom half of cell (1,0)
	c.SetFloat(9, 0) // top half of cell (1,0)

	got := map[[2]int]rune{}
	c.Cells(func(col, row int, ch rune) { got[[2]int{col, row}] = ch })

	assert.Equal(t, map[[2]int]rune{
		{0, 0}: BlockUpperHalf,
		{1, 0}: BlockFull,
	}, got)

	c.Clear()
	assert.Zero(t, countCells(c))
}

func TestDrawSpriteKinds(t *testing.T) {
	tests := []struct {
		name   string
		sprite Sprite
	}{
		{"ship", Sprite{Kind: SpriteShip, X: 320, Y: 160, Size: 64}},
		{"bullet", Sprite{Kind: SpriteBullet, X: 320, Y: 160, Size: 8}},
		{"big asteroid", Sprite{Kind: SpriteAsteroidBig, X: 320, Y: 160, Size: 128, Rotation: 1}},
		{"small asteroid", Sprite{Kind: SpriteAsteroidSmall, X: 320, Y: 160, Size: 32}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewArenaCanvas(80, 20)
			c.DrawSprite(tt.sprite)
			assert.Positive(t, countCells(c))
		})
	}
}

func TestBiggerAsteroidsCoverMoreCells(t *testing.T) {
	big := NewArenaCanvas(80, 20)
	big.DrawSprite(Sprite{Kind: SpriteAsteroidBig, X: 320, Y: 160, Size: 128})
	small := NewArenaCanvas(80, 20)
	small.DrawSprite(Sprite{Kind: SpriteAsteroidSmall, X: 320, Y: 160, Size: 32})

	assert.Greater(t, countCells(big), countCells(small))
}

func TestClampTermSize(t *testing.T) {
	w, h, col, row := ClampTermSize(200, 60, 160, 45)
	assert.Equal(t, []int{160, 45, 20, 7}, []int{w, h, col, row})

	w, h, col, row = ClampTermSize(100, 30, 0, 0)
	assert.Equal(t, []int{100, 30, 0, 0}, []int{w, h, col, row})
}

func newTestTerminal(out *bytes.Buffer, cols, rows int) *Terminal {
	return NewTerminal(out, TerminalOptions{
		SizeFunc: func() (int, int, error) { return cols, rows, nil },
		Renderer: lipgloss.NewRenderer(out, termenv.WithProfile(termenv.Ascii)),
	})
}

func TestTerminalFrame(t *testing.T) {
	var out bytes.Buffer
	term := newTestTerminal(&out, 80, 20)
	require.NoError(t, term.Begin())

	w, h := term.Viewport()
	assert.Equal(t, 640.0, w)
	assert.Equal(t, 320.0, h)

	term.Background(w, h)
	term.Sprite(Sprite{Kind: SpriteShip, X: 320, Y: 160, Size: 64})
	term.Panel(Panel{X: 16, Y: 16, Text: "SCORE: 42"})
	require.NoError(t, term.Flush())

	frame := out.String()
	assert.True(t, strings.HasPrefix(frame, "\033[H\033[2J"))
	assert.Contains(t, frame, "SCORE: 42")
	assert.NotContains(t, frame, "\033[2m")
}

func TestTerminalOverlayDimsFrame(t *testing.T) {
	var out bytes.Buffer
	term := newTestTerminal(&out, 80, 20)
	require.NoError(t, term.Begin())

	term.Background(term.Viewport())
	term.Overlay("GAME OVER", "Press R to restart")
	require.NoError(t, term.Flush())

	frame := out.String()
	assert.Contains(t, frame, "\033[2m")
	assert.Contains(t, frame, "GAME OVER")
	assert.Contains(t, frame, "Press R to restart")

	// Overlay state does not leak into the next frame.
	out.Reset()
	require.NoError(t, term.Begin())
	term.Background(term.Viewport())
	require.NoError(t, term.Flush())
	assert.NotContains(t, out.String(), "GAME OVER")
}

func TestTerminalTracksResize(t *testing.T) {
	var out bytes.Buffer
	cols, rows := 80, 20
	term := NewTerminal(&out, TerminalOptions{
		SizeFunc: func() (int, int, error) { return cols, rows, nil },
		MaxCols:  100,
		MaxRows:  30,
	})

	cols, rows = 200, 60
	require.NoError(t, term.Begin())
	w, h := term.Viewport()
	assert.Equal(t, 800.0, w)
	assert.Equal(t, 480.0, h)
	assert.Equal(t, 50, term.Canvas().OffsetCol())
	assert.Equal(t, 15, term.Canvas().OffsetRow())
}

// fakeScreen records the cells a TcellSink writes.
type fakeScreen struct {
	tcell.Screen
	width, height int
	cells         map[[2]int]rune
	styles        map[[2]int]tcell.Style
	shown         int
}

func newFakeScreen(width, height int) *fakeScreen {
	return &fakeScreen{
		width:  width,
		height: height,
		cells:  map[[2]int]rune{},
		styles: map[[2]int]tcell.Style{},
	}
}

func (f *fakeScreen) Size() (int, int) { return f.width, f.height }

func (f *fakeScreen) Clear() {
	clear(f.cells)
	clear(f.styles)
}

func (f *fakeScreen) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	f.cells[[2]int{x, y}] = primary
	f.styles[[2]int{x, y}] = style
}

func (f *fakeScreen) Show() { f.shown++ }

func (f *fakeScreen) row(y int) string {
	var b strings.Builder
	for x := 0; x < f.width; x++ {
		if r, ok := f.cells[[2]int{x, y}]; ok {
			b.WriteRune(r)
		} else {
			b.WriteRune(' ')
		}
	}
	return b.String()
}

func TestTcellSinkFrame(t *testing.T) {
	screen := newFakeScreen(80, 20)
	sink := NewTcellSink(screen, 0, 0)
	sink.Begin()

	sink.Background(sink.Viewport())
	sink.Sprite(Sprite{Kind: SpriteAsteroidBig, X: 320, Y: 160, Size: 128})
	sink.Panel(Panel{X: 16, Y: 16, Text: "SCORE: 7"})
	sink.Flush()

	assert.Equal(t, 1, screen.shown)
	assert.Contains(t, screen.row(1), "SCORE: 7")
}

func TestTcellSinkOverlay(t *testing.T) {
	screen := newFakeScreen(80, 20)
	sink := NewTcellSink(screen, 0, 0)
	sink.Begin()

	sink.Background(sink.Viewport())
	sink.Sprite(Sprite{Kind: SpriteShip, X: 100, Y: 100, Size: 64})
	sink.Overlay("YOU WIN!", "Press R to play again")
	sink.Flush()

	var all strings.Builder
	for y := 0; y < screen.height; y++ {
		all.WriteString(screen.row(y))
		all.WriteByte('\n')
	}
	assert.Contains(t, all.String(), "YOU WIN!")
	assert.Contains(t, all.String(), "Press R to play again")

	for pos, style := range screen.styles {
		if screen.cells[pos] == BlockFull || screen.cells[pos] == BlockUpperHalf || screen.cells[pos] == BlockLowerHalf {
			assert.Equal(t, tcellDimStyle, style)
		}
	}
}
