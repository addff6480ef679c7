package loop

import (
	"bufio"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/gdamore/tcell/v2"

	"github.com/fcarvajalbrown/Cacaroids/internal/draw"
	"github.com/fcarvajalbrown/Cacaroids/internal/input"
)

// ANSIOptions configures an ANSI frontend.
type ANSIOptions struct {
	Title        string
	TermSizeFunc draw.TermSizeFunc
	MaxCols      int // Render area limit, 0 = whole terminal
	MaxRows      int
	Renderer     *lipgloss.Renderer
}

// ANSIFrontend plays on a raw byte stream: a local terminal in raw mode or
// an SSH session.
type ANSIFrontend struct {
	writer      io.Writer
	title       string
	inputStream *input.Stream
	term        *draw.Terminal
}

// NewANSIFrontend creates a frontend reading keys from r and drawing to w.
func NewANSIFrontend(r *bufio.Reader, w io.Writer, opts ANSIOptions) *ANSIFrontend {
	return &ANSIFrontend{
		writer:      w,
		title:       opts.Title,
		inputStream: input.StartStream(r),
		term: draw.NewTerminal(w, draw.TerminalOptions{
			SizeFunc: opts.TermSizeFunc,
			MaxCols:  opts.MaxCols,
			MaxRows:  opts.MaxRows,
			Renderer: opts.Renderer,
		}),
	}
}

func (f *ANSIFrontend) Open() error {
	draw.EnterAltScreen(f.writer)
	if f.title != "" {
		draw.SetTitle(f.writer, f.title)
	}
	draw.HideCursor(f.writer)
	draw.ClearScreen(f.writer)
	return nil
}

func (f *ANSIFrontend) Poll(now time.Time) input.Input {
	return f.inputStream.Poll(now)
}

func (f *ANSIFrontend) Begin() (draw.Sink, error) {
	if err := f.term.Begin(); err != nil {
		return nil, err
	}
	return f.term, nil
}

func (f *ANSIFrontend) End() error {
	return f.term.Flush()
}

func (f *ANSIFrontend) Close() error {
	f.inputStream.Stop()
	draw.ClearScreen(f.writer)
	draw.ShowCursor(f.writer)
	draw.ExitAltScreen(f.writer)
	return nil
}

// TcellFrontend plays on a tcell screen.
type TcellFrontend struct {
	screen tcell.Screen
	title  string
	sink   *draw.TcellSink
	events *input.EventSource
}

// NewTcellFrontend wraps screen. The screen is initialised by Open and
// finalised by Close.
func NewTcellFrontend(screen tcell.Screen, title string, maxCols, maxRows int) *TcellFrontend {
	return &TcellFrontend{
		screen: screen,
		title:  title,
		sink:   draw.NewTcellSink(screen, maxCols, maxRows),
		events: input.NewEventSource(),
	}
}

func (f *TcellFrontend) Open() error {
	if err := f.screen.Init(); err != nil {
		return err
	}
	if f.title != "" {
		f.screen.SetTitle(f.title)
	}
	f.screen.HideCursor()
	f.screen.Clear()
	go f.events.Listen(f.screen)
	return nil
}

func (f *TcellFrontend) Poll(now time.Time) input.Input {
	in := f.events.Poll(now)
	if f.events.Resized() {
		f.screen.Sync()
	}
	return in
}

func (f *TcellFrontend) Begin() (draw.Sink, error) {
	f.sink.Begin()
	return f.sink, nil
}

func (f *TcellFrontend) End() error {
	f.sink.Flush()
	return nil
}

func (f *TcellFrontend) Close() error {
	f.screen.Fini()
	return nil
}
