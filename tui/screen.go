package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	"github.com/apxxxxxxe/contrast/apperror"
	mycolor "github.com/apxxxxxxe/contrast/color"
)

type canvasCell struct {
	mainc rune
	combc []rune
	style tcell.Style
	// wide graphemes occupy the following cell too
	cont bool
}

// ScreenSurface is a Surface over a tcell.Screen. Writes go to an off-screen
// canvas that may be larger than the terminal; Refresh shows the visible
// part and ReadKey scrolls it.
type ScreenSurface struct {
	screen tcell.Screen
	limits Limits

	colors map[int]tcell.Color
	pairs  map[int]tcell.Style

	canvas     [][]canvasCell
	rows, cols int
	top, left  int
}

func NewScreenSurface(screen tcell.Screen, limits Limits) *ScreenSurface {
	cols, rows := screen.Size()
	s := &ScreenSurface{
		screen: screen,
		limits: limits,
		colors: make(map[int]tcell.Color),
		pairs:  make(map[int]tcell.Style),
	}
	s.allocate(rows, cols)
	return s
}

func (s *ScreenSurface) allocate(rows, cols int) {
	canvas := make([][]canvasCell, rows)
	for r := range canvas {
		canvas[r] = make([]canvasCell, cols)
		for c := range canvas[r] {
			canvas[r][c] = canvasCell{mainc: ' ', style: tcell.StyleDefault}
		}
		if r < len(s.canvas) {
			copy(canvas[r], s.canvas[r])
		}
	}
	s.canvas = canvas
	s.rows, s.cols = rows, cols
}

func (s *ScreenSurface) RegisterColor(index int, r, g, b uint8) error {
	if index < 0 || index >= s.limits.MaxColors {
		return apperror.NewRender("color %d outside the %d registrable colors", index, s.limits.MaxColors)
	}
	s.colors[index] = mycolor.Tcell(r, g, b)
	return nil
}

func (s *ScreenSurface) RegisterPair(pair, fg, bg int) error {
	if pair < 1 || pair > s.limits.MaxPairs {
		return apperror.NewRender("color pair %d outside [1,%d]", pair, s.limits.MaxPairs)
	}
	fgColor, ok := s.colors[fg]
	if !ok {
		return apperror.NewRender("color pair %d: foreground color %d not registered", pair, fg)
	}
	bgColor, ok := s.colors[bg]
	if !ok {
		return apperror.NewRender("color pair %d: background color %d not registered", pair, bg)
	}
	s.pairs[pair] = tcell.StyleDefault.Foreground(fgColor).Background(bgColor)
	return nil
}

func (s *ScreenSurface) Write(row, col int, text string, pair int) error {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return apperror.NewRender("write at %d,%d outside %dx%d", row, col, s.rows, s.cols)
	}
	style := tcell.StyleDefault
	if pair != 0 {
		st, ok := s.pairs[pair]
		if !ok {
			return apperror.NewRender("color pair %d not registered", pair)
		}
		style = st
	}

	g := uniseg.NewGraphemes(text)
	x := col
	for g.Next() {
		runes := g.Runes()
		w := runewidth.StringWidth(g.Str())
		if w < 1 {
			w = 1
		}
		if x+w > s.cols {
			return apperror.NewRender("text %q at %d,%d overflows width %d", text, row, col, s.cols)
		}
		s.canvas[row][x] = canvasCell{mainc: runes[0], combc: runes[1:], style: style}
		for i := 1; i < w; i++ {
			s.canvas[row][x+i] = canvasCell{style: style, cont: true}
		}
		x += w
	}
	return nil
}

// Resize grows the canvas to at least rows×cols and never below the
// terminal size. Requests beyond the limits are DisplayTooSmallErrors.
func (s *ScreenSurface) Resize(rows, cols int) error {
	if rows < 1 || cols < 1 {
		return apperror.NewDisplayTooSmall("invalid size %dx%d", rows, cols)
	}
	if rows > s.limits.MaxRows || cols > s.limits.MaxCols {
		return apperror.NewDisplayTooSmall("cannot resize to %dx%d, limit is %dx%d",
			rows, cols, s.limits.MaxRows, s.limits.MaxCols)
	}
	screenCols, screenRows := s.screen.Size()
	s.allocate(max(rows, screenRows), max(cols, screenCols))
	return nil
}

func (s *ScreenSurface) Dimensions() (int, int) {
	return s.rows, s.cols
}

func (s *ScreenSurface) Refresh() error {
	width, height := s.screen.Size()
	s.clampViewport(width, height)
	s.screen.Clear()
	for y := 0; y < height && s.top+y < s.rows; y++ {
		line := s.canvas[s.top+y]
		for x := 0; x < width && s.left+x < s.cols; x++ {
			c := line[s.left+x]
			if c.cont {
				continue
			}
			s.screen.SetContent(x, y, c.mainc, c.combc, c.style)
		}
	}
	s.screen.Show()
	return nil
}

func (s *ScreenSurface) clampViewport(width, height int) {
	s.top = min(s.top, max(0, s.rows-height))
	s.left = min(s.left, max(0, s.cols-width))
	s.top = max(s.top, 0)
	s.left = max(s.left, 0)
}

// ReadKey handles scrolling keys itself and returns the first other key.
func (s *ScreenSurface) ReadKey() (string, error) {
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			return "", fmt.Errorf("screen closed while waiting for a key")
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			s.screen.Sync()
			if err := s.Refresh(); err != nil {
				return "", err
			}
		case *tcell.EventKey:
			if !s.scroll(ev) {
				return ev.Name(), nil
			}
			if err := s.Refresh(); err != nil {
				return "", err
			}
		}
	}
}

func (s *ScreenSurface) scroll(ev *tcell.EventKey) bool {
	_, height := s.screen.Size()
	switch ev.Key() {
	case tcell.KeyUp:
		s.top--
	case tcell.KeyDown:
		s.top++
	case tcell.KeyLeft:
		s.left -= ColumnWidth
	case tcell.KeyRight:
		s.left += ColumnWidth
	case tcell.KeyPgUp:
		s.top -= height
	case tcell.KeyPgDn:
		s.top += height
	case tcell.KeyHome:
		s.top, s.left = 0, 0
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			s.top--
		case 'j':
			s.top++
		case 'h':
			s.left -= ColumnWidth
		case 'l':
			s.left += ColumnWidth
		default:
			return false
		}
	default:
		return false
	}
	return true
}

// Viewport returns the top-left canvas coordinate currently shown.
func (s *ScreenSurface) Viewport() (top, left int) {
	return s.top, s.left
}

var newScreen = tcell.NewScreen

// WithScreen acquires the terminal, runs fn and always finalizes the
// screen afterwards, restoring echo and line buffering even on panic.
func WithScreen(fn func(screen tcell.Screen) error) error {
	screen, err := newScreen()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init terminal: %w", err)
	}
	defer screen.Fini()

	return fn(screen)
}
