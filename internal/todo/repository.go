package todo

import (
	"context"
	"slices"
	"sync"
)

// Repository persists todo items. Implementations return ErrNotFound
// for unknown ids.
type Repository interface {
	Create(ctx context.Context, item Item) error
	Get(ctx context.Context, id string) (Item, error)
	Update(ctx context.Context, item Item) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Item, error)
	ListByDate(ctx context.Context, date string) ([]Item, error)
}

// Memory keeps items in insertion order for the lifetime of the process.
type Memory struct {
	mu    sync.RWMutex
	order []string
	items map[string]Item
}

// NewMemory returns a repository seeded with initial.
func NewMemory(initial ...Item) *Memory {
	m := &Memory{items: make(map[string]Item, len(initial))}
	for _, item := range initial {
		m.order = append(m.order, item.ID)
		m.items[item.ID] = clone(item)
	}
	return m
}

func clone(item Item) Item {
	if item.Completion != nil {
		c := *item.Completion
		item.Completion = &c
	}
	return item
}

func (m *Memory) Create(_ context.Context, item Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[item.ID]; !ok {
		m.order = append(m.order, item.ID)
	}
	m.items[item.ID] = clone(item)
	return nil
}

func (m *Memory) Get(_ context.Context, id string) (Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	item, ok := m.items[id]
	if !ok {
		return Item{}, ErrNotFound
	}
	return clone(item), nil
}

func (m *Memory) Update(_ context.Context, item Item) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[item.ID]; !ok {
		return ErrNotFound
	}
	m.items[item.ID] = clone(item)
	return nil
}

func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[id]; !ok {
		return ErrNotFound
	}
	delete(m.items, id)
	m.order = slices.DeleteFunc(m.order, func(s string) bool { return s == id })
	return nil
}

func (m *Memory) List(_ context.Context) ([]Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Item, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, clone(m.items[id]))
	}
	return out, nil
}

// ListByDate matches on exact date string equality.
func (m *Memory) ListByDate(_ context.Context, date string) ([]Item, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []Item{}
	for _, id := range m.order {
		if item := m.items[id]; item.Date == date {
			out = append(out, clone(item))
		}
	}
	return out, nil
}

var _ Repository = (*Memory)(nil)
