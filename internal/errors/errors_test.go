package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSentinelErrors_Are verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrInvalidSquare", ErrInvalidSquare, ErrInvalidSquare},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrNoLegalMove", ErrNoLegalMove, ErrNoLegalMove},
		{"ErrEmptyHistory", ErrEmptyHistory, ErrEmptyHistory},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, errors.Is(tt.err, tt.sentinel))
		})
	}
}

func TestSentinelErrors_Distinct(t *testing.T) {
	assert.False(t, errors.Is(ErrNoLegalMove, ErrEmptyHistory))
	assert.False(t, errors.Is(ErrEmptyHistory, ErrNoLegalMove))
}

func TestPositionError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *PositionError
		contains []string
	}{
		{
			name: "full context",
			err: &PositionError{
				Err:   ErrNoLegalMove,
				FEN:   "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
				Ply:   3,
				Move:  "f7g7",
				Index: 2,
			},
			contains: []string{"position 2", "7k/5Q2", "ply 3", "move f7g7", "no legal move"},
		},
		{
			name:     "error only",
			err:      &PositionError{Err: ErrInvalidFEN},
			contains: []string{"invalid FEN string"},
		},
		{
			name:     "no error",
			err:      &PositionError{Ply: 4},
			contains: []string{"ply 4"},
		},
		{
			name:     "empty",
			err:      &PositionError{},
			contains: []string{"position error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, want := range tt.contains {
				assert.Contains(t, msg, want)
			}
		})
	}
}

func TestPositionError_Unwrap(t *testing.T) {
	err := fmt.Errorf("search: %w", &PositionError{Err: ErrNoLegalMove, Ply: 1})

	assert.True(t, errors.Is(err, ErrNoLegalMove))

	var posErr *PositionError
	require.True(t, errors.As(err, &posErr))
	assert.Equal(t, 1, posErr.Ply)
}

func TestWrap(t *testing.T) {
	assert.NoError(t, Wrap(nil, "context"))
	assert.NoError(t, Wrapf(nil, "context %d", 1))

	wrapped := Wrapf(ErrEmptyHistory, "undo at ply %d", 0)
	assert.True(t, Is(wrapped, ErrEmptyHistory))
	assert.Equal(t, "undo at ply 0: move history is empty", wrapped.Error())

	stacked := WithStack(ErrNoLegalMove)
	assert.True(t, Is(stacked, ErrNoLegalMove), "WithStack lost the sentinel")
	assert.Contains(t, fmt.Sprintf("%+v", stacked), "errors_test.go", "%+v should include the stack trace")
}
