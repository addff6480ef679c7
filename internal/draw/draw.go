// Package draw renders frames for the terminal frontends.
//
// The simulation only talks to a Sink; the ANSI and tcell sinks both rasterise
// sprites onto a half-block Canvas and differ only in how they present it.
package draw

import (
	"fmt"
	"io"
)

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Block characters for drawing.
const (
	BlockFull      = '█'
	BlockLight     = '░'
	BlockEmpty     = ' '
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// UnitsPerSubPixel is how many logical arena units one half-block sub-pixel
// covers on both axes. A 160x45 terminal shows a 1280x720 arena.
const UnitsPerSubPixel = 8.0

// SpriteKind identifies which image a draw request refers to.
type SpriteKind int

const (
	SpriteShip SpriteKind = iota
	SpriteBullet
	SpriteAsteroidBig
	SpriteAsteroidMedium
	SpriteAsteroidSmall
)

// Sprite is a single draw request. Size is the edge length of the square the
// image is stretched to, in logical units.
type Sprite struct {
	Kind     SpriteKind
	X, Y     float64 // Centre
	Rotation float64 // Radians, 0 = up
	Size     float64
}

// Panel is a line of text over a translucent backing sized to the text.
// X and Y are the top-left corner of the text in logical units.
type Panel struct {
	X, Y float64
	Text string
}

// Sink receives one frame worth of draw requests.
type Sink interface {
	// Viewport returns the current drawable area in logical units.
	Viewport() (width, height float64)
	Background(width, height float64)
	Sprite(s Sprite)
	Panel(p Panel)
	// Overlay dims the whole frame and centres a title and subtitle on it.
	Overlay(title, subtitle string)
}

// ClearScreen clears the terminal and moves cursor to top-left.
func ClearScreen(w io.Writer) {
	fmt.Fprint(w, "\033[H\033[2J")
}

// HideCursor hides the terminal cursor.
func HideCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25l")
}

// ShowCursor shows the terminal cursor.
func ShowCursor(w io.Writer) {
	fmt.Fprint(w, "\033[?25h")
}

// SetTitle sets the terminal window title.
func SetTitle(w io.Writer, title string) {
	fmt.Fprintf(w, "\033]0;%s\007", title)
}

// EnterAltScreen switches to the alternate screen buffer.
func EnterAltScreen(w io.Writer) {
	fmt.Fprint(w, "\033[?1049h")
}

// ExitAltScreen restores the main screen buffer.
func ExitAltScreen(w io.Writer) {
	fmt.Fprint(w, "\033[?1049l")
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
