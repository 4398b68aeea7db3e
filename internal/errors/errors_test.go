package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrInvalidMove", ErrInvalidMove, ErrInvalidMove},
		{"ErrInvalidSquare", ErrInvalidSquare, ErrInvalidSquare},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrIllegalState", ErrIllegalState, ErrIllegalState},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Distinct guards against two sentinels sharing identity.
func TestSentinelErrors_Distinct(t *testing.T) {
	if errors.Is(ErrIllegalState, ErrIllegalMove) {
		t.Error("ErrIllegalState must not match ErrIllegalMove")
	}
	if errors.Is(ErrInvalidMove, ErrInvalidSquare) {
		t.Error("ErrInvalidMove must not match ErrInvalidSquare")
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to parse position: %w", ErrInvalidFEN)

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Errorf("errors.Is(wrapped, ErrInvalidFEN) = false, want true")
	}
}

// TestParseError_Error verifies ParseError formatting
func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *ParseError
		contains []string
	}{
		{
			name: "full context",
			err: &ParseError{
				Err:      ErrInvalidFEN,
				Input:    "8/8/8 w - - 0",
				Field:    "field count",
				Expected: "6",
				Got:      "5",
			},
			contains: []string{"invalid FEN", "8/8/8", "field count", "expected 6, got 5"},
		},
		{
			name: "expected only",
			err: &ParseError{
				Err:      ErrInvalidMove,
				Input:    "e2",
				Expected: "4 or 5 characters",
			},
			contains: []string{"invalid move text", "expected 4 or 5 characters"},
		},
		{
			name:     "got only",
			err:      &ParseError{Got: "x"},
			contains: []string{"unexpected x"},
		},
		{
			name:     "empty",
			err:      &ParseError{},
			contains: []string{"parse error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("ParseError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestParseError_Unwrap verifies ParseError implements Unwrap
func TestParseError_Unwrap(t *testing.T) {
	parseErr := &ParseError{
		Err:   ErrInvalidSquare,
		Input: "z9",
	}

	if !errors.Is(parseErr, ErrInvalidSquare) {
		t.Error("errors.Is(parseErr, ErrInvalidSquare) = false, want true")
	}
}

// TestStateError_Error verifies the error message format
func TestStateError_Error(t *testing.T) {
	err := &StateError{
		Err:    ErrIllegalState,
		Move:   "e1g1",
		Reason: "no rook on h1",
	}

	msg := err.Error()
	for _, s := range []string{"illegal board state", "e1g1", "no rook on h1"} {
		if !containsIgnoreCase(msg, s) {
			t.Errorf("StateError.Error() = %q, should contain %q", msg, s)
		}
	}
}

// TestStateError_As verifies that errors.As works with StateError
func TestStateError_As(t *testing.T) {
	stateErr := &StateError{
		Err:    ErrIllegalState,
		Move:   "e8c8",
		Reason: "no rook on a8",
	}

	// Wrap it further
	wrapped := fmt.Errorf("searching: %w", stateErr)

	var extractedErr *StateError
	if !errors.As(wrapped, &extractedErr) {
		t.Fatal("errors.As() could not extract StateError")
	}
	if extractedErr.Move != "e8c8" {
		t.Errorf("extractedErr.Move = %q, want %q", extractedErr.Move, "e8c8")
	}
	if !errors.Is(wrapped, ErrIllegalState) {
		t.Error("errors.Is(wrapped, ErrIllegalState) = false, want true")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	original := ErrInvalidFEN
	wrapped := Wrap(original, "parsing FEN string")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "parsing FEN string") {
		t.Errorf("Wrap should include context, got %q", msg)
	}

	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	original := ErrIllegalMove
	wrapped := Wrapf(original, "move %d of %s", 3, "position")

	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}

	msg := wrapped.Error()
	if !containsIgnoreCase(msg, "move 3 of position") {
		t.Errorf("Wrapf should include formatted context, got %q", msg)
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
