package tui

import (
	"math"

	"github.com/mattn/go-runewidth"

	"github.com/apxxxxxxe/contrast/apperror"
)

// ColumnWidth covers a six-character token plus one separator.
const ColumnWidth = 7

// summaryLines is the number of rows reserved below the grid.
const summaryLines = 2

// Cell is one placed contrast cell: column color X measured against row
// color Y, drawn at Row/Col with color pair Pair.
type Cell struct {
	X, Y     int
	Row, Col int
	Pair     int
}

// Layout is the placement of an N-color grid on a display of fixed width.
type Layout struct {
	N            int
	DisplayWidth int
	LabelWidth   int

	// Rows and Cols are the footprint the surface must be resized to.
	Rows, Cols int

	headers    []int
	cells      []Cell
	summaryRow int
}

// PairNumber returns the dense 1-based color pair index of cell (x, y).
func PairNumber(x, y, n int) int {
	return y*n + x + 1
}

// Plan places the grid for the given labels and RGB captions. Rows wrap at
// displayWidth and resume at the label column.
//
// LabelWidth is the widest label or caption, not the widest label alone:
// a wrapped cell lands on the caption row, so a caption wider than its
// label would otherwise be overwritten. Pass nil captions to size the
// column by labels only.
func Plan(labels, captions []string, displayWidth int) (*Layout, error) {
	n := len(labels)
	if n == 0 {
		return nil, apperror.NewInvalidInput("no colors to lay out")
	}

	labelWidth := 0
	for _, s := range labels {
		labelWidth = max(labelWidth, runewidth.StringWidth(s))
	}
	// captions share the label column with wrapped cells
	for _, s := range captions {
		labelWidth = max(labelWidth, runewidth.StringWidth(s))
	}

	if displayWidth <= labelWidth+ColumnWidth {
		return nil, apperror.NewDisplayTooSmall("display width %d cannot fit a %d-column label and one %d-column cell",
			displayWidth, labelWidth, ColumnWidth)
	}

	l := &Layout{
		N:            n,
		DisplayWidth: displayWidth,
		LabelWidth:   labelWidth,
		headers:      make([]int, n),
		cells:        make([]Cell, 0, n*n),
	}

	row := 1
	for y := 0; y < n; y++ {
		l.headers[y] = row
		col := labelWidth + 1
		for x := 0; x < n; x++ {
			if col+ColumnWidth >= displayWidth {
				col = labelWidth
				row++
			}
			l.cells = append(l.cells, Cell{X: x, Y: y, Row: row, Col: col, Pair: PairNumber(x, y, n)})
			col += ColumnWidth
		}
		row += 2
	}
	l.summaryRow = row

	l.Cols = n*ColumnWidth + labelWidth + 1
	l.Rows = n*int(1+math.RoundToEven(float64(l.Cols)/float64(displayWidth)))*2 + 3
	// the estimate above can fall short when labels are wide
	l.Rows = max(l.Rows, l.summaryRow+summaryLines)

	return l, nil
}

// Header returns the label row of color y. Its RGB caption sits one below.
func (l *Layout) Header(y int) int {
	return l.headers[y]
}

// Cells returns all placed cells ordered by row color, then column color.
func (l *Layout) Cells() []Cell {
	return l.cells
}

// RowCells returns the cells of row color y.
func (l *Layout) RowCells(y int) []Cell {
	return l.cells[y*l.N : (y+1)*l.N]
}

// SummaryRow is the first row after the grid.
func (l *Layout) SummaryRow() int {
	return l.summaryRow
}
