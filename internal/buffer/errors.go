package buffer

import "errors"

// Errors returned by buffer operations.
var (
	// ErrOffsetOutOfRange indicates an offset is outside the valid buffer range.
	ErrOffsetOutOfRange = errors.New("offset out of range")

	// ErrRangeInvalid indicates an invalid range (e.g., end < start).
	ErrRangeInvalid = errors.New("invalid range")

	// ErrProtectedRegion indicates a destructive edit touched a guarded span.
	// This is an interactive refusal, not a fault: the edit is aborted and
	// the buffer is unchanged.
	ErrProtectedRegion = errors.New("protected region")
)
