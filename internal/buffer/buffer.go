// Package buffer provides the text buffer the tidying engine decorates.
//
// The buffer stores document text and applies offset-based edits. Before
// any destructive edit it consults an optional guard; a guarded span
// refuses the edit with ErrProtectedRegion, leaving the text untouched.
// Insertions are never guarded because they touch no existing character.
package buffer

import (
	"strings"
	"sync"
)

// GuardFunc reports whether the byte span [start, end) is protected
// against destructive edits.
type GuardFunc func(start, end int) bool

// Buffer holds document text and applies byte-offset edits.
// All methods are thread-safe.
type Buffer struct {
	mu      sync.RWMutex
	content []byte
	guard   GuardFunc
}

// Option configures a Buffer.
type Option func(*Buffer)

// WithContent sets the initial buffer content.
func WithContent(s string) Option {
	return func(b *Buffer) {
		b.content = []byte(s)
	}
}

// WithGuard installs the protected-span check consulted by destructive edits.
func WithGuard(g GuardFunc) Option {
	return func(b *Buffer) {
		b.guard = g
	}
}

// New creates a buffer.
func New(opts ...Option) *Buffer {
	b := &Buffer{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Len returns the buffer length in bytes.
func (b *Buffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.content)
}

// Text returns the full buffer content.
func (b *Buffer) Text() string {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return string(b.content)
}

// Slice returns the content of [start, end).
func (b *Buffer) Slice(start, end int) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if err := b.checkRange(start, end); err != nil {
		return "", err
	}
	return string(b.content[start:end]), nil
}

// Insert adds text at the given offset.
func (b *Buffer) Insert(offset int, text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if offset < 0 || offset > len(b.content) {
		return ErrOffsetOutOfRange
	}
	b.splice(offset, offset, text)
	return nil
}

// Delete removes the bytes in [start, end).
// Returns ErrProtectedRegion when the span overlaps a guarded region.
func (b *Buffer) Delete(start, end int) error {
	return b.Replace(start, end, "")
}

// Replace substitutes the bytes in [start, end) with text.
// A non-empty removed span is a destructive edit and is checked against
// the guard before anything changes.
func (b *Buffer) Replace(start, end int, text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.checkRange(start, end); err != nil {
		return err
	}
	if start < end && b.guard != nil && b.guard(start, end) {
		return ErrProtectedRegion
	}
	b.splice(start, end, text)
	return nil
}

// DeleteBackward removes the byte before offset (a backspace at offset).
// A backspace at the start of the buffer is a no-op.
func (b *Buffer) DeleteBackward(offset int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if offset < 0 || offset > len(b.content) {
		return ErrOffsetOutOfRange
	}
	if offset == 0 {
		return nil
	}
	if b.guard != nil && b.guard(offset-1, offset) {
		return ErrProtectedRegion
	}
	b.splice(offset-1, offset, "")
	return nil
}

// DeleteForward removes the byte at offset (a forward delete at offset).
// A forward delete at the end of the buffer is a no-op.
func (b *Buffer) DeleteForward(offset int) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if offset < 0 || offset > len(b.content) {
		return ErrOffsetOutOfRange
	}
	if offset == len(b.content) {
		return nil
	}
	if b.guard != nil && b.guard(offset, offset+1) {
		return ErrProtectedRegion
	}
	b.splice(offset, offset+1, "")
	return nil
}

// checkRange validates [start, end) against the current content.
func (b *Buffer) checkRange(start, end int) error {
	if start < 0 || end > len(b.content) {
		return ErrOffsetOutOfRange
	}
	if end < start {
		return ErrRangeInvalid
	}
	return nil
}

// splice replaces [start, end) with text. Caller holds the write lock and
// has validated the range.
func (b *Buffer) splice(start, end int, text string) {
	var sb strings.Builder
	sb.Grow(len(b.content) - (end - start) + len(text))
	sb.Write(b.content[:start])
	sb.WriteString(text)
	sb.Write(b.content[end:])
	b.content = []byte(sb.String())
}
