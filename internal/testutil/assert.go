// Package testutil provides shared test utilities for the pocketchess project.
package testutil

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/pocketchess/internal/chess"
)

// boardDiagram renders boards as text so cmp reports differing ranks
// instead of nested struct paths.
var boardDiagram = cmp.Transformer("Diagram", func(b chess.Board) string {
	return b.String()
})

// AssertBoardEqual compares two boards square by square and rights flag by
// rights flag, printing a rank-level diff on mismatch.
func AssertBoardEqual(t *testing.T, got, want *chess.Board, msgAndArgs ...interface{}) {
	t.Helper()
	if *got == *want {
		return
	}
	if diff := cmp.Diff(*want, *got, boardDiagram); diff != "" {
		report(t, msgAndArgs, "board mismatch (-want +got):\n%s", diff)
		return
	}
	if diff := cmp.Diff(want.Rights, got.Rights); diff != "" {
		report(t, msgAndArgs, "castling rights mismatch (-want +got):\n%s", diff)
	}
}

// report prefixes the failure with the optional caller message.
func report(t *testing.T, msgAndArgs []interface{}, format string, args ...interface{}) {
	t.Helper()
	text := fmt.Sprintf(format, args...)
	if msg := formatMessage(msgAndArgs...); msg != "" {
		text = msg + ": " + text
	}
	t.Error(text)
}

// formatMessage formats optional message arguments into a string.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	if len(msgAndArgs) == 1 {
		if s, ok := msgAndArgs[0].(string); ok {
			return s
		}
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if s, ok := msgAndArgs[0].(string); ok {
		return fmt.Sprintf(s, msgAndArgs[1:]...)
	}
	return fmt.Sprintf("%v", msgAndArgs[0])
}
