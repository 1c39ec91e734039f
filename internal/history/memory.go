package history

import (
	"context"
	"sync"
)

// Memory keeps the last size entries in process memory; a size of 0 keeps all of them.
type Memory struct {
	mu      sync.Mutex
	size    int
	entries []Entry
}

func NewMemory(size int) *Memory {
	return &Memory{size: size}
}

func (m *Memory) Append(_ context.Context, e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = append(m.entries, e)
	if m.size > 0 && len(m.entries) > m.size {
		m.entries = append([]Entry(nil), m.entries[len(m.entries)-m.size:]...)
	}
	return nil
}

func (m *Memory) Recent(_ context.Context, n int) ([]Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	start := 0
	if n >= 0 && len(m.entries) > n {
		start = len(m.entries) - n
	}
	return append([]Entry(nil), m.entries[start:]...), nil
}

func (m *Memory) Close() error { return nil }
