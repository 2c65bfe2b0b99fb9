// Package report renders the contrast grid as plain text for pipes and
// logs, using the same layout as the interactive grid.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	mycolor "github.com/apxxxxxxe/contrast/color"
	"github.com/apxxxxxxe/contrast/matrix"
	"github.com/apxxxxxxe/contrast/palette"
	"github.com/apxxxxxxe/contrast/tui"
)

type segment struct {
	col   int
	text  string
	paint *color.Color
}

// Writer renders reports. Tokens are colored per conformance level when
// Colored is set.
type Writer struct {
	Width   int
	Colored bool

	levels map[mycolor.Level]*color.Color
}

func NewWriter(width int, colored bool) *Writer {
	w := &Writer{
		Width:   width,
		Colored: colored,
		levels: map[mycolor.Level]*color.Color{
			mycolor.LevelAAA:  color.New(color.FgGreen, color.Bold),
			mycolor.LevelAA:   color.New(color.FgYellow),
			mycolor.LevelFail: color.New(color.FgRed),
		},
	}
	for _, c := range w.levels {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return w
}

// Write renders the grid of entries to out.
func (w *Writer) Write(out io.Writer, entries []palette.Entry, m *matrix.Matrix) error {
	layout, err := tui.Plan(palette.Labels(entries), palette.Captions(entries), w.Width)
	if err != nil {
		return err
	}

	rows := make(map[int][]segment)
	for y, e := range entries {
		header := layout.Header(y)
		rows[header] = append(rows[header], segment{col: 0, text: e.Label()})
		rows[header+1] = append(rows[header+1], segment{col: 0, text: e.String()})
		for _, c := range layout.RowCells(y) {
			level := m.Level(c.X, c.Y)
			rows[c.Row] = append(rows[c.Row], segment{col: c.Col, text: level.Token(), paint: w.levels[level]})
		}
	}

	for row := 1; row < layout.SummaryRow(); row++ {
		if _, err := fmt.Fprintln(out, renderLine(rows[row])); err != nil {
			return err
		}
	}
	for _, line := range tui.SummaryLines(m) {
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

func renderLine(segs []segment) string {
	sort.SliceStable(segs, func(i, j int) bool { return segs[i].col < segs[j].col })

	var b strings.Builder
	x := 0
	for _, s := range segs {
		if s.col > x {
			b.WriteString(strings.Repeat(" ", s.col-x))
			x = s.col
		}
		if s.paint != nil {
			b.WriteString(s.paint.Sprint(s.text))
		} else {
			b.WriteString(s.text)
		}
		x += runewidth.StringWidth(s.text)
	}
	return strings.TrimRight(b.String(), " ")
}
