package draw

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

// TcellSink is a Sink that rasterises onto a half-block Canvas and blits it
// into a tcell screen.
type TcellSink struct {
	screen  tcell.Screen
	canvas  *Canvas
	maxCols int
	maxRows int

	panels   []Panel
	overlay  bool
	title    string
	subtitle string
}

var (
	tcellSpriteStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	tcellDimStyle      = tcellSpriteStyle.Dim(true)
	tcellBorderStyle   = tcell.StyleDefault.Foreground(tcell.PaletteColor(245))
	tcellPanelStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.PaletteColor(236)).Bold(true)
	tcellSubtitleStyle = tcell.StyleDefault.Foreground(tcell.PaletteColor(250)).Background(tcell.PaletteColor(236))
)

// NewTcellSink creates a sink drawing into screen. maxCols and maxRows clamp
// the render area; 0 uses the whole screen.
func NewTcellSink(screen tcell.Screen, maxCols, maxRows int) *TcellSink {
	s := &TcellSink{
		screen:  screen,
		maxCols: maxCols,
		maxRows: maxRows,
	}
	termWidth, termHeight := screen.Size()
	renderWidth, renderHeight, offsetCol, offsetRow := ClampTermSize(termWidth, termHeight, maxCols, maxRows)
	s.canvas = NewArenaCanvas(renderWidth, renderHeight)
	s.canvas.SetOffset(offsetCol, offsetRow)
	return s
}

// Begin starts a frame, picking up any screen resize.
func (s *TcellSink) Begin() {
	termWidth, termHeight := s.screen.Size()
	renderWidth, renderHeight, offsetCol, offsetRow := ClampTermSize(termWidth, termHeight, s.maxCols, s.maxRows)
	s.canvas.Resize(renderWidth, renderHeight)
	s.canvas.SetOffset(offsetCol, offsetRow)

	s.panels = s.panels[:0]
	s.overlay = false
}

// Viewport returns the arena size the screen currently shows.
func (s *TcellSink) Viewport() (float64, float64) {
	return s.canvas.LogicalWidth(), s.canvas.LogicalHeight()
}

// Background clears the screen.
func (s *TcellSink) Background(_, _ float64) {
	s.canvas.Clear()
	s.screen.Clear()
}

// Sprite rasterises sp onto the canvas.
func (s *TcellSink) Sprite(sp Sprite) {
	s.canvas.DrawSprite(sp)
}

// Panel queues a text panel drawn after the canvas.
func (s *TcellSink) Panel(p Panel) {
	s.panels = append(s.panels, p)
}

// Overlay dims the frame and queues a centred title.
func (s *TcellSink) Overlay(title, subtitle string) {
	s.overlay = true
	s.title = title
	s.subtitle = subtitle
}

// Flush presents the frame.
func (s *TcellSink) Flush() {
	offCol, offRow := s.canvas.OffsetCol(), s.canvas.OffsetRow()

	style := tcellSpriteStyle
	if s.overlay {
		style = tcellDimStyle
	}
	s.canvas.Cells(func(col, row int, ch rune) {
		s.screen.SetContent(col+offCol, row+offRow, ch, nil, style)
	})
	s.drawBorder()

	for _, p := range s.panels {
		col, row := s.canvas.LogicalToTerminal(p.X, p.Y)
		s.putText(max(col, 0)+offCol, max(row, 0)+offRow, " "+p.Text+" ", tcellPanelStyle)
	}

	if s.overlay {
		width := max(len(s.title), len(s.subtitle)) + 8
		left := offCol + (s.canvas.TerminalWidth()-width)/2
		top := offRow + s.canvas.TerminalHeight()/2 - 2
		for row := top; row < top+5; row++ {
			s.putText(left, row, strings.Repeat(" ", width), tcellPanelStyle)
		}
		s.putText(left+(width-len(s.title))/2, top+1, s.title, tcellPanelStyle)
		s.putText(left+(width-len(s.subtitle))/2, top+3, s.subtitle, tcellSubtitleStyle)
	}

	s.screen.Show()
}

// drawBorder frames the render area when the screen is larger than it.
func (s *TcellSink) drawBorder() {
	offCol, offRow := s.canvas.OffsetCol(), s.canvas.OffsetRow()
	if offCol < 1 && offRow < 1 {
		return
	}
	left, right := offCol-1, offCol+s.canvas.TerminalWidth()
	top, bottom := offRow-1, offRow+s.canvas.TerminalHeight()

	for col := left + 1; col < right; col++ {
		s.screen.SetContent(col, top, tcell.RuneHLine, nil, tcellBorderStyle)
		s.screen.SetContent(col, bottom, tcell.RuneHLine, nil, tcellBorderStyle)
	}
	for row := top + 1; row < bottom; row++ {
		s.screen.SetContent(left, row, tcell.RuneVLine, nil, tcellBorderStyle)
		s.screen.SetContent(right, row, tcell.RuneVLine, nil, tcellBorderStyle)
	}
	s.screen.SetContent(left, top, tcell.RuneULCorner, nil, tcellBorderStyle)
	s.screen.SetContent(right, top, tcell.RuneURCorner, nil, tcellBorderStyle)
	s.screen.SetContent(left, bottom, tcell.RuneLLCorner, nil, tcellBorderStyle)
	s.screen.SetContent(right, bottom, tcell.RuneLRCorner, nil, tcellBorderStyle)
}

func (s *TcellSink) putText(col, row int, text string, style tcell.Style) {
	for i, r := range []rune(text) {
		s.screen.SetContent(col+i, row, r, nil, style)
	}
}

var _ Sink = (*TcellSink)(nil)
