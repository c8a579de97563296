package history

import "sync"

const defaultCapacity = 50

// Log is a fixed-capacity, concurrency-safe record of recent values. Once the
// capacity is reached, each append evicts the oldest entry.
type Log[T any] struct {
	mu   sync.RWMutex
	buf  []T
	next int
	size int
}

// NewLog creates a log holding at most capacity entries. Non-positive
// capacities fall back to the default.
func NewLog[T any](capacity int) *Log[T] {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	return &Log[T]{buf: make([]T, capacity)}
}

// Append records a value, evicting the oldest entry when full.
func (l *Log[T]) Append(v T) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.buf[l.next] = v
	l.next = (l.next + 1) % len(l.buf)
	if l.size < len(l.buf) {
		l.size++
	}
}

// Recent returns up to n entries, newest first.
func (l *Log[T]) Recent(n int) []T {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if n <= 0 || l.size == 0 {
		return nil
	}
	if n > l.size {
		n = l.size
	}

	out := make([]T, 0, n)
	idx := l.next
	for i := 0; i < n; i++ {
		idx--
		if idx < 0 {
			idx = len(l.buf) - 1
		}
		out = append(out, l.buf[idx])
	}
	return out
}

// Len reports how many entries the log currently holds.
func (l *Log[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.size
}
