package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/apxxxxxxe/contrast/apperror"
	"github.com/apxxxxxxe/contrast/matrix"
	"github.com/apxxxxxxe/contrast/palette"
)

type write struct {
	row, col int
	text     string
	pair     int
}

// recordingSurface records every call and can be told to fail.
type recordingSurface struct {
	rows, cols int
	colors     map[int][3]uint8
	pairs      map[int][2]int
	writes     []write
	refreshed  int

	resizeErr error
	writeErr  error
	key       string
}

func newRecordingSurface(rows, cols int) *recordingSurface {
	return &recordingSurface{
		rows:   rows,
		cols:   cols,
		colors: make(map[int][3]uint8),
		pairs:  make(map[int][2]int),
		key:    "Rune[q]",
	}
}

func (s *recordingSurface) RegisterColor(index int, r, g, b uint8) error {
	s.colors[index] = [3]uint8{r, g, b}
	return nil
}

func (s *recordingSurface) RegisterPair(pair, fg, bg int) error {
	s.pairs[pair] = [2]int{fg, bg}
	return nil
}

func (s *recordingSurface) Write(row, col int, text string, pair int) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.writes = append(s.writes, write{row, col, text, pair})
	return nil
}

func (s *recordingSurface) Resize(rows, cols int) error {
	if s.resizeErr != nil {
		return s.resizeErr
	}
	s.rows, s.cols = max(rows, s.rows), max(cols, s.cols)
	return nil
}

func (s *recordingSurface) Dimensions() (int, int) { return s.rows, s.cols }

func (s *recordingSurface) Refresh() error {
	s.refreshed++
	return nil
}

func (s *recordingSurface) ReadKey() (string, error) { return s.key, nil }

func (s *recordingSurface) textAt(row, col int) (string, int, bool) {
	for _, w := range s.writes {
		if w.row == row && w.col == col {
			return w.text, w.pair, true
		}
	}
	return "", 0, false
}

func blackWhite(t *testing.T) ([]palette.Entry, *matrix.Matrix) {
	t.Helper()
	p, err := palette.Parse([]string{"black\t0,0,0", "white\t255,255,255"}, true)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	m, err := matrix.Build(p.Entries)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	return p.Entries, m
}

func TestRenderBlackWhite(t *testing.T) {
	entries, m := blackWhite(t)
	s := newRecordingSurface(24, 80)

	if err := Render(s, entries, m, DefaultLimits()); err != nil {
		t.Fatalf("Render: %v", err)
	}

	if s.colors[0] != [3]uint8{0, 0, 0} || s.colors[1] != [3]uint8{255, 255, 255} {
		t.Fatalf("colors = %v", s.colors)
	}
	// foreground is the column color, background the row color
	wantPairs := map[int][2]int{1: {0, 0}, 2: {1, 0}, 3: {0, 1}, 4: {1, 1}}
	for pair, want := range wantPairs {
		if s.pairs[pair] != want {
			t.Errorf("pair %d = %v, want %v", pair, s.pairs[pair], want)
		}
	}

	cases := []struct {
		row, col int
		text     string
		pair     int
	}{
		{1, 0, "black", 0},
		{2, 0, "(0,0,0)", 0},
		{1, 14, " fail ", 1},
		{1, 21, " PASS ", 2},
		{3, 14, " PASS ", 3},
		{3, 21, " fail ", 4},
		{5, 0, "2 color combinations pass WCAG 2.0 level AA", 0},
		{6, 0, "2 color combinations PASS WCAG 2.0 level AAA", 0},
	}
	for _, tc := range cases {
		text, pair, ok := s.textAt(tc.row, tc.col)
		if !ok {
			t.Errorf("nothing written at %d,%d", tc.row, tc.col)
			continue
		}
		if text != tc.text || pair != tc.pair {
			t.Errorf("at %d,%d got %q/%d, want %q/%d", tc.row, tc.col, text, pair, tc.text, tc.pair)
		}
	}
	if s.refreshed != 1 {
		t.Fatalf("refreshed %d times, want 1", s.refreshed)
	}
}

func TestRenderPairLimit(t *testing.T) {
	entries, m := blackWhite(t)
	s := newRecordingSurface(24, 80)
	limits := DefaultLimits()
	limits.MaxPairs = 3

	err := Render(s, entries, m, limits)
	if !errors.Is(err, apperror.ErrRender) {
		t.Fatalf("err = %v, want RenderError", err)
	}
	if len(s.writes) != 0 {
		t.Fatalf("%d writes before failing the pair limit", len(s.writes))
	}
}

func TestRenderColorLimit(t *testing.T) {
	entries, m := blackWhite(t)
	limits := DefaultLimits()
	limits.MaxColors = 1

	if err := Render(newRecordingSurface(24, 80), entries, m, limits); !errors.Is(err, apperror.ErrRender) {
		t.Fatalf("err = %v, want RenderError", err)
	}
}

func TestRenderResizeRejected(t *testing.T) {
	entries, m := blackWhite(t)
	s := newRecordingSurface(24, 80)
	s.resizeErr = apperror.NewDisplayTooSmall("no")

	if err := Render(s, entries, m, DefaultLimits()); !errors.Is(err, apperror.ErrDisplayTooSmall) {
		t.Fatalf("err = %v, want DisplayTooSmallError", err)
	}
}

func TestRenderWriteFailure(t *testing.T) {
	entries, m := blackWhite(t)
	s := newRecordingSurface(24, 80)
	s.writeErr = errors.New("addstr failed")

	err := Render(s, entries, m, DefaultLimits())
	if !errors.Is(err, apperror.ErrRender) {
		t.Fatalf("err = %v, want RenderError", err)
	}
	if !strings.Contains(err.Error(), "addstr failed") {
		t.Fatalf("cause missing from %q", err.Error())
	}
}

func TestRenderNarrowDisplay(t *testing.T) {
	entries, m := blackWhite(t)
	if err := Render(newRecordingSurface(24, 15), entries, m, DefaultLimits()); !errors.Is(err, apperror.ErrDisplayTooSmall) {
		t.Fatalf("err = %v, want DisplayTooSmallError", err)
	}
}

func TestDisplayWaitsForKey(t *testing.T) {
	entries, m := blackWhite(t)
	s := newRecordingSurface(24, 80)
	if err := Display(s, entries, m, DefaultLimits()); err != nil {
		t.Fatalf("Display: %v", err)
	}
}

func TestSummaryLines(t *testing.T) {
	_, m := blackWhite(t)
	got := SummaryLines(m)
	if got[0] != "2 color combinations pass WCAG 2.0 level AA" {
		t.Fatalf("AA line = %q", got[0])
	}
	if got[1] != "2 color combinations PASS WCAG 2.0 level AAA" {
		t.Fatalf("AAA line = %q", got[1])
	}
}
