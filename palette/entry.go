package palette

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/apxxxxxxe/contrast/apperror"
)

// Entry is a labeled 8-bit sRGB color. The zero value is not valid; use
// NewEntry.
type Entry struct {
	label   string
	r, g, b uint8
}

// NewEntry validates and builds an Entry. An empty label is an
// InvalidInputError.
func NewEntry(label string, r, g, b uint8) (Entry, error) {
	if label == "" {
		return Entry{}, apperror.NewInvalidInput("empty label")
	}
	return Entry{label: label, r: r, g: g, b: b}, nil
}

func (e Entry) Label() string { return e.label }

// RGB returns the red, green and blue channels.
func (e Entry) RGB() (uint8, uint8, uint8) { return e.r, e.g, e.b }

// String is the RGB caption shown under the label, e.g. "(12,34,56)".
func (e Entry) String() string {
	return fmt.Sprintf("(%d,%d,%d)", e.r, e.g, e.b)
}

func (e Entry) Colorful() colorful.Color {
	return colorful.Color{R: float64(e.r) / 255, G: float64(e.g) / 255, B: float64(e.b) / 255}
}

func (e Entry) Hex() string {
	return e.Colorful().Hex()
}
