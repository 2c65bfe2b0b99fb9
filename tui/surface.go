package tui

// Surface is the display the renderer draws on. Colors and pairs are
// registered by index before use; pair 0 means the default style.
type Surface interface {
	RegisterColor(index int, r, g, b uint8) error
	RegisterPair(pair, fg, bg int) error
	Write(row, col int, text string, pair int) error
	Resize(rows, cols int) error
	Dimensions() (rows, cols int)
	Refresh() error
	// ReadKey blocks until the operator presses a key and returns its name.
	ReadKey() (string, error)
}

// Limits bounds what a Surface may register and how far it may grow.
type Limits struct {
	MaxColors int
	MaxPairs  int
	MaxRows   int
	MaxCols   int
}

// DefaultLimits are the limits used when nothing is configured. The pair
// limit matches the signed 16-bit pair index of curses terminals.
func DefaultLimits() Limits {
	return Limits{
		MaxColors: 256,
		MaxPairs:  32767,
		MaxRows:   10000,
		MaxCols:   4096,
	}
}
