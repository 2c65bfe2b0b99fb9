package apperror

import (
	"errors"
	"fmt"
	"testing"
)

func TestIsMatchesByKind(t *testing.T) {
	err := NewRender("pair %d exceeds limit %d", 300, 256)
	wrapped := fmt.Errorf("drawing: %w", err)

	if !errors.Is(wrapped, ErrRender) {
		t.Fatalf("errors.Is(%v, ErrRender) = false", wrapped)
	}
	if errors.Is(wrapped, ErrInvalidInput) {
		t.Fatalf("render error should not match ErrInvalidInput")
	}
	if got := KindOf(wrapped); got != KindRender {
		t.Fatalf("KindOf = %v, want %v", got, KindRender)
	}
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("boom")
	err := NewDisplayTooSmall("resize to %dx%d", 10, 20).Wrap(cause)
	if !errors.Is(err, cause) {
		t.Fatalf("cause not reachable through Unwrap")
	}
	want := "display_too_small: resize to 10x20: boom"
	if err.Error() != want {
		t.Fatalf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestKindOfForeignError(t *testing.T) {
	if got := KindOf(errors.New("plain")); got != 0 {
		t.Fatalf("KindOf(plain) = %v, want 0", got)
	}
}
