package work

import (
	"context"
	"slices"
	"sync"
)

type Repository interface {
	Create(ctx context.Context, e Entry) error
	Get(ctx context.Context, id string) (Entry, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f Filter) ([]Entry, error)
}

// Memory is an in-process Repository that lists entries in the order
// they were recorded.
type Memory struct {
	mu      sync.RWMutex
	entries []Entry
}

func NewMemory(initial ...Entry) *Memory {
	return &Memory{entries: slices.Clone(initial)}
}

func (m *Memory) Create(_ context.Context, e Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = append(m.entries, e)
	return nil
}

func (m *Memory) Get(_ context.Context, id string) (Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, e := range m.entries {
		if e.ID == id {
			return e, nil
		}
	}
	return Entry{}, ErrNotFound
}

func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := slices.IndexFunc(m.entries, func(e Entry) bool { return e.ID == id })
	if i < 0 {
		return ErrNotFound
	}
	m.entries = slices.Delete(m.entries, i, i+1)
	return nil
}

func (m *Memory) List(_ context.Context, f Filter) ([]Entry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []Entry{}
	for _, e := range m.entries {
		if f.Match(e) {
			out = append(out, e)
		}
	}
	return out, nil
}

var _ Repository = (*Memory)(nil)
