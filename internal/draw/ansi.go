package draw

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Terminal is a Sink that rasterises onto a half-block Canvas and presents
// the frame as ANSI escape sequences. Used for SSH sessions and raw local
// terminals.
type Terminal struct {
	canvas   *Canvas
	out      *ChunkWriter
	sizeFunc TermSizeFunc
	maxCols  int
	maxRows  int
	styles   hudStyles

	panels   []Panel
	overlay  bool
	title    string
	subtitle string
}

// TerminalOptions configures a Terminal sink.
type TerminalOptions struct {
	SizeFunc TermSizeFunc
	// MaxCols and MaxRows clamp the render area; 0 uses the whole terminal.
	MaxCols int
	MaxRows int
	// Renderer carries the colour profile of the output; nil uses the default.
	Renderer *lipgloss.Renderer
}

// NewTerminal creates a Terminal sink writing to w.
func NewTerminal(w io.Writer, opts TerminalOptions) *Terminal {
	sizeFunc := opts.SizeFunc
	if sizeFunc == nil {
		sizeFunc = DefaultTermSizeFunc
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}

	t := &Terminal{
		out:      NewChunkWriter(w, 0, 0),
		sizeFunc: sizeFunc,
		maxCols:  opts.MaxCols,
		maxRows:  opts.MaxRows,
		styles:   newHUDStyles(renderer),
	}
	termWidth, termHeight, _ := sizeFunc()
	renderWidth, renderHeight, offsetCol, offsetRow := ClampTermSize(termWidth, termHeight, t.maxCols, t.maxRows)
	t.canvas = NewArenaCanvas(renderWidth, renderHeight)
	t.applyOffset(offsetCol, offsetRow)
	return t
}

// Begin starts a frame, picking up any terminal resize.
func (t *Terminal) Begin() error {
	termWidth, termHeight, err := t.sizeFunc()
	if err != nil {
		return err
	}
	renderWidth, renderHeight, offsetCol, offsetRow := ClampTermSize(termWidth, termHeight, t.maxCols, t.maxRows)
	t.canvas.Resize(renderWidth, renderHeight)
	t.applyOffset(offsetCol, offsetRow)

	t.panels = t.panels[:0]
	t.overlay = false
	return nil
}

func (t *Terminal) applyOffset(col, row int) {
	t.canvas.SetOffset(col, row)
	t.out.SetOffset(col, row)
}

// Canvas exposes the frame buffer.
func (t *Terminal) Canvas() *Canvas {
	return t.canvas
}

// Viewport returns the arena size the terminal currently shows.
func (t *Terminal) Viewport() (float64, float64) {
	return t.canvas.LogicalWidth(), t.canvas.LogicalHeight()
}

// Background clears the screen; the terminal background is the backdrop.
func (t *Terminal) Background(_, _ float64) {
	t.canvas.Clear()
	t.out.WriteString("\033[H\033[2J")
}

// Sprite rasterises s onto the canvas.
func (t *Terminal) Sprite(s Sprite) {
	t.canvas.DrawSprite(s)
}

// Panel queues a text panel drawn after the canvas.
func (t *Terminal) Panel(p Panel) {
	t.panels = append(t.panels, p)
}

// Overlay dims the frame and queues a centred title box.
func (t *Terminal) Overlay(title, subtitle string) {
	t.overlay = true
	t.title = title
	t.subtitle = subtitle
}

// Flush writes the frame to the terminal.
func (t *Terminal) Flush() error {
	t.canvas.Render(t.out, t.overlay)
	t.canvas.RenderBorder(t.out)

	for _, p := range t.panels {
		col, row := t.canvas.LogicalToTerminal(p.X, p.Y)
		t.writeBlock(max(col, 0), max(row, 0), t.styles.panel.Render(p.Text))
	}

	if t.overlay {
		box := t.styles.box.Render(lipgloss.JoinVertical(lipgloss.Center,
			t.styles.title.Render(t.title),
			"",
			t.styles.subtitle.Render(t.subtitle),
		))
		col := (t.canvas.TerminalWidth() - lipgloss.Width(box)) / 2
		row := (t.canvas.TerminalHeight() - lipgloss.Height(box)) / 2
		t.writeBlock(max(col, 0), max(row, 0), box)
	}

	return t.out.Flush()
}

// writeBlock places a multi-line string with its top-left cell at the 0-based
// canvas cell (col, row).
func (t *Terminal) writeBlock(col, row int, block string) {
	for i, line := range strings.Split(block, "\n") {
		t.out.WriteAt(col+1, row+i+1, line)
	}
}

// hudStyles are the lipgloss styles for text drawn over the arena.
type hudStyles struct {
	panel    lipgloss.Style
	title    lipgloss.Style
	subtitle lipgloss.Style
	box      lipgloss.Style
}

func newHUDStyles(r *lipgloss.Renderer) hudStyles {
	backing := lipgloss.Color("236")
	return hudStyles{
		panel: r.NewStyle().
			Padding(0, 1).
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(backing),
		title: r.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(backing),
		subtitle: r.NewStyle().
			Foreground(lipgloss.Color("250")).
			Background(backing),
		box: r.NewStyle().
			Padding(1, 4).
			Background(backing).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("245")).
			BorderBackground(backing),
	}
}

var _ Sink = (*Terminal)(nil)
