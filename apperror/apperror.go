// Package apperror provides the error taxonomy shared by the palette reader,
// the contrast matrix and the terminal renderer. Every error carries a Kind
// so callers can branch with errors.Is against the exported sentinels.
package apperror

import (
	"errors"
	"fmt"
)

// Kind classifies an Error.
type Kind int

const (
	// KindInvalidInput covers an empty palette or malformed channel values.
	KindInvalidInput Kind = iota + 1

	// KindDisplayTooSmall means the display cannot hold the required footprint.
	KindDisplayTooSmall

	// KindRender covers failed writes and color/pair registrations.
	KindRender
)

func (k Kind) String() string {
	switch k {
	case KindInvalidInput:
		return "invalid_input"
	case KindDisplayTooSmall:
		return "display_too_small"
	case KindRender:
		return "render"
	default:
		return "unknown"
	}
}

// Sentinels for errors.Is. Any *Error of the same Kind matches.
var (
	ErrInvalidInput    = &Error{Kind: KindInvalidInput, Message: "invalid input"}
	ErrDisplayTooSmall = &Error{Kind: KindDisplayTooSmall, Message: "display too small"}
	ErrRender          = &Error{Kind: KindRender, Message: "render failed"}
)

// Error is the base error type for all domain errors.
type Error struct {
	// Kind is the machine-readable classifier.
	Kind Kind

	// Message is a human-readable description shown to the operator.
	Message string

	// Internal holds the underlying cause, if any.
	Internal error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error {
	return e.Internal
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// --- Constructors ---

// NewInvalidInput creates an InvalidInputError.
func NewInvalidInput(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidInput, Message: fmt.Sprintf(format, args...)}
}

// NewDisplayTooSmall creates a DisplayTooSmallError.
func NewDisplayTooSmall(format string, args ...any) *Error {
	return &Error{Kind: KindDisplayTooSmall, Message: fmt.Sprintf(format, args...)}
}

// NewRender creates a RenderError.
func NewRender(format string, args ...any) *Error {
	return &Error{Kind: KindRender, Message: fmt.Sprintf(format, args...)}
}

// Wrap attaches an underlying cause to an Error and returns it.
func (e *Error) Wrap(err error) *Error {
	e.Internal = err
	return e
}

// KindOf returns the Kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
