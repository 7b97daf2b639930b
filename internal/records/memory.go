package records

import (
	"context"
	"sync"
)

// MemoryStore keeps records in per-kind slices for the life of the process.
type MemoryStore struct {
	mu   sync.Mutex
	data map[Kind][]Record
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[Kind][]Record)}
}

// NextID implements Store.
func (m *MemoryStore) NextID(_ context.Context, kind Kind) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	next := 1
	for _, r := range m.data[kind] {
		if id := r.RecordID(); id >= next {
			next = id + 1
		}
	}
	return next, nil
}

// Append implements Store.
func (m *MemoryStore) Append(_ context.Context, rec Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.data[rec.RecordKind()] = append(m.data[rec.RecordKind()], rec)
	return nil
}

// All implements Store. The returned slice is a copy.
func (m *MemoryStore) All(_ context.Context, kind Kind) ([]Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]Record, len(m.data[kind]))
	copy(out, m.data[kind])
	return out, nil
}

// Close implements Store. It is a no-op.
func (m *MemoryStore) Close() error { return nil }
