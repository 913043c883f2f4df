package log

import (
	"fmt"
	"io"
	"sync"
)

// CircularBuffer is a thread-safe ring of recent log entries implementing
// [io.Writer]. Once full, the oldest entry is overwritten. It lets the CLI
// capture logs while the TUI has the terminal, then replay them afterwards.
type CircularBuffer struct {
	entries  [][]byte
	capacity int
	size     int
	head     int
	full     bool
	mu       sync.RWMutex
}

// NewCircularBuffer creates a buffer holding at most capacity entries.
// Non-positive capacities fall back to 100.
func NewCircularBuffer(capacity int) *CircularBuffer {
	if capacity <= 0 {
		capacity = 100
	}

	return &CircularBuffer{
		entries:  make([][]byte, capacity),
		capacity: capacity,
	}
}

// Write stores p as one entry, copying it so the handler can reuse its
// buffer. Empty writes are ignored.
func (cb *CircularBuffer) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}

	cb.mu.Lock()
	defer cb.mu.Unlock()

	entry := make([]byte, len(p))
	copy(entry, p)

	cb.entries[cb.head] = entry
	cb.head = (cb.head + 1) % cb.capacity

	if !cb.full {
		cb.size++
		if cb.size == cb.capacity {
			cb.full = true
		}
	}

	return len(p), nil
}

// Entries returns a copy of the stored entries, oldest first.
func (cb *CircularBuffer) Entries() [][]byte {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	if cb.size == 0 {
		return nil
	}

	start := 0
	if cb.full {
		start = cb.head
	}

	result := make([][]byte, 0, cb.size)
	for i := range cb.size {
		src := cb.entries[(start+i)%cb.capacity]

		entry := make([]byte, len(src))
		copy(entry, src)

		result = append(result, entry)
	}

	return result
}

// Size returns the current number of entries.
func (cb *CircularBuffer) Size() int {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	return cb.size
}

// Capacity returns the maximum number of entries.
func (cb *CircularBuffer) Capacity() int {
	return cb.capacity
}

// IsFull reports whether the buffer has wrapped.
func (cb *CircularBuffer) IsFull() bool {
	cb.mu.RLock()
	defer cb.mu.RUnlock()

	return cb.full
}

// WriteTo replays all stored entries to w, oldest first.
func (cb *CircularBuffer) WriteTo(w io.Writer) (int64, error) {
	var total int64

	for _, entry := range cb.Entries() {
		written, err := w.Write(entry)
		total += int64(written)

		if err != nil {
			return total, fmt.Errorf("writing entry: %w", err)
		}
	}

	return total, nil
}
