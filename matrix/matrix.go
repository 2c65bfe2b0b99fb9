// Package matrix computes the all-pairs WCAG contrast ratios of a palette.
package matrix

import (
	"github.com/apxxxxxxe/contrast/apperror"
	mycolor "github.com/apxxxxxxe/contrast/color"
	"github.com/apxxxxxxe/contrast/palette"
)

// Matrix is a read-only symmetric N×N table of contrast ratios.
type Matrix struct {
	ratios [][]float64

	aaPass  int
	aaaPass int
}

// Build computes the matrix for entries. Luminance is computed once per
// entry. An empty slice is an InvalidInputError.
func Build(entries []palette.Entry) (*Matrix, error) {
	n := len(entries)
	if n == 0 {
		return nil, apperror.NewInvalidInput("no colors to compare")
	}

	m := &Matrix{ratios: make([][]float64, n)}
	luminance := make([]float64, n)
	for i, e := range entries {
		luminance[i] = mycolor.Luminance(e.RGB())
	}

	for i := range m.ratios {
		m.ratios[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		m.ratios[i][i] = 1.0
		for j := i + 1; j < n; j++ {
			r := mycolor.Contrast(luminance[i], luminance[j])
			m.ratios[i][j] = r
			m.ratios[j][i] = r
		}
	}

	// ordered pairs, self-pairs included
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			switch mycolor.LevelOf(m.ratios[i][j]) {
			case mycolor.LevelAAA:
				m.aaaPass++
				m.aaPass++
			case mycolor.LevelAA:
				m.aaPass++
			}
		}
	}
	return m, nil
}

// Size is the number of colors N.
func (m *Matrix) Size() int { return len(m.ratios) }

// Ratio returns the contrast of colors i and j. Ratio(i, i) is exactly 1.
func (m *Matrix) Ratio(i, j int) float64 { return m.ratios[i][j] }

// Level classifies Ratio(i, j) against the AA and AAA thresholds.
func (m *Matrix) Level(i, j int) mycolor.Level { return mycolor.LevelOf(m.ratios[i][j]) }

// AAPassCount is the number of ordered pairs with ratio >= 4.5.
func (m *Matrix) AAPassCount() int { return m.aaPass }

// AAAPassCount is the number of ordered pairs with ratio >= 7.0.
func (m *Matrix) AAAPassCount() int { return m.aaaPass }
