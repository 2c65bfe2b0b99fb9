package matrix

import (
	"errors"
	"math"
	"testing"

	"github.com/apxxxxxxe/contrast/apperror"
	"github.com/apxxxxxxe/contrast/palette"
)

type labeled struct {
	label   string
	r, g, b uint8
}

func entries(t *testing.T, colors ...labeled) []palette.Entry {
	t.Helper()
	out := make([]palette.Entry, 0, len(colors))
	for _, s := range colors {
		e, err := palette.NewEntry(s.label, s.r, s.g, s.b)
		if err != nil {
			t.Fatalf("NewEntry(%q): %v", s.label, err)
		}
		out = append(out, e)
	}
	return out
}

func TestBlackWhite(t *testing.T) {
	m, err := Build(entries(t, labeled{"black", 0, 0, 0}, labeled{"white", 255, 255, 255}))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := [][]float64{{1, 21}, {21, 1}}
	for i := range want {
		for j := range want[i] {
			if math.Abs(m.Ratio(i, j)-want[i][j]) > 1e-9 {
				t.Errorf("ratio[%d][%d] = %v, want %v", i, j, m.Ratio(i, j), want[i][j])
			}
		}
	}
	if m.AAPassCount() != 2 || m.AAAPassCount() != 2 {
		t.Fatalf("AA=%d AAA=%d, want 2 and 2", m.AAPassCount(), m.AAAPassCount())
	}
}

func TestSingleColor(t *testing.T) {
	m, err := Build(entries(t, labeled{"gray", 128, 128, 128}))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if m.Size() != 1 || m.Ratio(0, 0) != 1.0 {
		t.Fatalf("size=%d ratio=%v, want 1x1 [[1]]", m.Size(), m.Ratio(0, 0))
	}
	if m.AAPassCount() != 0 || m.AAAPassCount() != 0 {
		t.Fatalf("AA=%d AAA=%d, want 0 and 0", m.AAPassCount(), m.AAAPassCount())
	}
}

func TestEmpty(t *testing.T) {
	if _, err := Build(nil); !errors.Is(err, apperror.ErrInvalidInput) {
		t.Fatalf("Build(nil) err = %v, want InvalidInput", err)
	}
}

func TestInvariants(t *testing.T) {
	es := entries(t,
		labeled{"black", 0, 0, 0},
		labeled{"white", 255, 255, 255},
		labeled{"red", 255, 0, 0},
		labeled{"navy", 0, 0, 128},
		labeled{"gray", 118, 118, 118},
		labeled{"yellow", 255, 255, 0},
		labeled{"slate", 112, 128, 144},
	)
	m, err := Build(es)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	aa, aaa := 0, 0
	for i := 0; i < m.Size(); i++ {
		if m.Ratio(i, i) != 1.0 {
			t.Errorf("diagonal %d = %v", i, m.Ratio(i, i))
		}
		for j := 0; j < m.Size(); j++ {
			if m.Ratio(i, j) != m.Ratio(j, i) {
				t.Errorf("asymmetric at %d,%d", i, j)
			}
			if r := m.Ratio(i, j); r < 1 || r > 21+1e-9 {
				t.Errorf("ratio %v out of [1,21]", r)
			}
			if m.Ratio(i, j) >= 4.5 {
				aa++
			}
			if m.Ratio(i, j) >= 7.0 {
				aaa++
			}
		}
	}
	if m.AAPassCount() != aa || m.AAAPassCount() != aaa {
		t.Fatalf("counts AA=%d AAA=%d, recount AA=%d AAA=%d", m.AAPassCount(), m.AAAPassCount(), aa, aaa)
	}
	if m.AAPassCount() < m.AAAPassCount() {
		t.Fatalf("AA count %d below AAA count %d", m.AAPassCount(), m.AAAPassCount())
	}
}
