package report

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// DefaultWidth is used when the output is not a terminal.
const DefaultWidth = 80

// ColorEnabled resolves a color mode ("auto", "always", "never") for out.
//
// In auto mode, first match wins:
//  1. TERM=dumb, NO_COLOR or CLICOLOR=0 disable colors.
//  2. CLICOLOR_FORCE / FORCE_COLOR with a non-zero value enable them.
//  3. Otherwise colors follow whether out is a terminal.
func ColorEnabled(mode string, out *os.File, getenv func(string) string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if getenv != nil {
		if strings.EqualFold(strings.TrimSpace(getenv("TERM")), "dumb") {
			return false
		}
		if strings.TrimSpace(getenv("NO_COLOR")) != "" {
			return false
		}
		if strings.TrimSpace(getenv("CLICOLOR")) == "0" {
			return false
		}
		if forced(getenv("CLICOLOR_FORCE")) || forced(getenv("FORCE_COLOR")) {
			return true
		}
	}
	return isTerminal(out)
}

// Width returns the terminal width of out, or DefaultWidth.
func Width(out *os.File) int {
	if !isTerminal(out) {
		return DefaultWidth
	}
	width, _, err := term.GetSize(int(out.Fd()))
	if err != nil || width <= 0 {
		return DefaultWidth
	}
	return width
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func forced(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && v != "0"
}
