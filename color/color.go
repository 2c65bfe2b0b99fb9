package color

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// WCAG 2.0 conformance thresholds. Both comparisons are inclusive.
const (
	AARatio  = 4.5
	AAARatio = 7.0
)

const (
	redWeight   = 0.2126
	greenWeight = 0.7152
	blueWeight  = 0.0722

	linearCutoff = 0.03928
)

// Luminance returns the WCAG relative luminance of an sRGB triple, in [0,1].
func Luminance(r, g, b uint8) float64 {
	return redWeight*linearize(r) + greenWeight*linearize(g) + blueWeight*linearize(b)
}

func linearize(c uint8) float64 {
	v := float64(c) / 255
	if v <= linearCutoff {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// Contrast returns the contrast ratio of two relative luminances, in [1,21].
func Contrast(l1, l2 float64) float64 {
	return (math.Max(l1, l2) + 0.05) / (math.Min(l1, l2) + 0.05)
}

// Level is the conformance level a contrast ratio reaches.
type Level int

const (
	LevelFail Level = iota
	LevelAA
	LevelAAA
)

// LevelOf classifies a ratio against the AA and AAA thresholds.
func LevelOf(ratio float64) Level {
	switch {
	case ratio >= AAARatio:
		return LevelAAA
	case ratio >= AARatio:
		return LevelAA
	default:
		return LevelFail
	}
}

// Token is the fixed six-character grid text for the level.
func (l Level) Token() string {
	switch l {
	case LevelAAA:
		return " PASS "
	case LevelAA:
		return " pass "
	default:
		return " fail "
	}
}

func (l Level) String() string {
	switch l {
	case LevelAAA:
		return "AAA"
	case LevelAA:
		return "AA"
	default:
		return "fail"
	}
}

// Tcell converts an 8-bit triple to a true-color tcell.Color.
func Tcell(r, g, b uint8) tcell.Color {
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
