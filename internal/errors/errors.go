// Package errors provides sentinel errors and error types for pocketchess.
// It defines common error conditions and structured error types that preserve
// context while allowing error inspection with errors.Is() and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidSquare indicates a square name or coordinate off the board.
	ErrInvalidSquare = errors.New("invalid square")

	// ErrIllegalMove indicates a move that violates chess rules.
	ErrIllegalMove = errors.New("illegal move")

	// ErrNoLegalMove indicates a search was requested for a side that
	// cannot move.
	ErrNoLegalMove = errors.New("no legal move")

	// ErrEmptyHistory indicates an undo was requested with no moves made.
	ErrEmptyHistory = errors.New("move history is empty")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// PositionError wraps errors with position context: the FEN of the
// position, the ply at which it occurred and the move involved.
type PositionError struct {
	Err   error  // The underlying error
	FEN   string // Position in FEN (if known)
	Ply   int    // Ply number where error occurred (0 if not applicable)
	Move  string // Move in UCI notation (if applicable)
	Index int    // 1-based input index for batch work (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *PositionError) Error() string {
	var parts []string

	if e.Index > 0 {
		parts = append(parts, fmt.Sprintf("position %d", e.Index))
	}
	if e.FEN != "" {
		parts = append(parts, fmt.Sprintf("fen %q", e.FEN))
	}
	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}
	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %s", e.Move))
	}

	context := strings.Join(parts, ", ")

	switch {
	case e.Err != nil && context != "":
		return fmt.Sprintf("%s: %v", context, e.Err)
	case e.Err != nil:
		return e.Err.Error()
	case context != "":
		return context
	default:
		return "position error"
	}
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the PositionError wrapper.
func (e *PositionError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	return pkgerrors.Wrap(err, context)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// WithStack annotates err with the caller's stack trace. Use it where a
// sentinel is returned bare so %+v shows where it surfaced.
func WithStack(err error) error {
	return pkgerrors.WithStack(err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
