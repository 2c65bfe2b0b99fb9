package tui

import (
	"fmt"
	"log/slog"

	"github.com/mattn/go-runewidth"

	"github.com/apxxxxxxe/contrast/apperror"
	"github.com/apxxxxxxe/contrast/matrix"
	"github.com/apxxxxxxe/contrast/palette"
)

// SummaryLines returns the two aggregate lines printed under the grid.
func SummaryLines(m *matrix.Matrix) [2]string {
	return [2]string{
		fmt.Sprintf("%d color combinations pass WCAG 2.0 level AA", m.AAPassCount()),
		fmt.Sprintf("%d color combinations PASS WCAG 2.0 level AAA", m.AAAPassCount()),
	}
}

// Render draws the contrast grid of entries onto s. Each cell shows the
// column color as text on the row color as background.
func Render(s Surface, entries []palette.Entry, m *matrix.Matrix, limits Limits) error {
	n := len(entries)
	if n == 0 || n != m.Size() {
		return apperror.NewInvalidInput("%d entries for a %dx%d matrix", n, m.Size(), m.Size())
	}
	if n > limits.MaxColors {
		return apperror.NewRender("%d colors exceed the %d registrable colors", n, limits.MaxColors)
	}
	if last := PairNumber(n-1, n-1, n); last > limits.MaxPairs {
		return apperror.NewRender("color pair %d exceeds the %d available pairs", last, limits.MaxPairs)
	}

	_, width := s.Dimensions()
	layout, err := Plan(palette.Labels(entries), palette.Captions(entries), width)
	if err != nil {
		return err
	}

	summary := SummaryLines(m)
	cols := layout.Cols
	for _, line := range summary {
		cols = max(cols, runewidth.StringWidth(line))
	}
	if err := s.Resize(layout.Rows, cols); err != nil {
		return wrapRender(err, "resize to %dx%d", layout.Rows, cols)
	}
	slog.Debug("grid planned",
		slog.Int("colors", n),
		slog.Int("display_width", width),
		slog.Int("label_width", layout.LabelWidth),
		slog.Int("rows", layout.Rows),
		slog.Int("cols", cols),
	)

	for i, e := range entries {
		r, g, b := e.RGB()
		if err := s.RegisterColor(i, r, g, b); err != nil {
			return wrapRender(err, "register color %d (%s)", i, e.Label())
		}
	}

	for y, e := range entries {
		header := layout.Header(y)
		if err := s.Write(header, 0, e.Label(), 0); err != nil {
			return wrapRender(err, "write label %q", e.Label())
		}
		if err := s.Write(header+1, 0, e.String(), 0); err != nil {
			return wrapRender(err, "write caption of %q", e.Label())
		}

		for _, c := range layout.RowCells(y) {
			if err := s.RegisterPair(c.Pair, c.X, c.Y); err != nil {
				return wrapRender(err, "register pair %d", c.Pair)
			}
			token := m.Level(c.X, c.Y).Token()
			if err := s.Write(c.Row, c.Col, token, c.Pair); err != nil {
				return wrapRender(err, "write cell %d,%d", c.X, c.Y)
			}
		}
	}

	for i, line := range summary {
		if err := s.Write(layout.SummaryRow()+i, 0, line, 0); err != nil {
			return wrapRender(err, "write summary")
		}
	}

	if err := s.Refresh(); err != nil {
		return wrapRender(err, "refresh")
	}
	return nil
}

// Display renders the grid and waits for the operator to press a key.
func Display(s Surface, entries []palette.Entry, m *matrix.Matrix, limits Limits) error {
	if err := Render(s, entries, m, limits); err != nil {
		return err
	}
	key, err := s.ReadKey()
	if err != nil {
		return fmt.Errorf("wait for key: %w", err)
	}
	slog.Debug("grid dismissed", slog.String("key", key))
	return nil
}

// wrapRender keeps classified errors as they are and turns anything else
// into a RenderError.
func wrapRender(err error, format string, args ...any) error {
	if apperror.KindOf(err) != 0 {
		return fmt.Errorf(format+": %w", append(args, err)...)
	}
	return apperror.NewRender(format, args...).Wrap(err)
}
