package category

import (
	"context"
	"slices"
	"sync"
)

type Repository interface {
	Create(ctx context.Context, c Category) error
	Get(ctx context.Context, id string) (Category, error)
	// FindByName matches names case-insensitively.
	FindByName(ctx context.Context, name string) (Category, error)
	Update(ctx context.Context, c Category) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Category, error)
}

type Memory struct {
	mu         sync.RWMutex
	categories []Category
}

func NewMemory(initial ...Category) *Memory {
	return &Memory{categories: slices.Clone(initial)}
}

func (m *Memory) index(id string) int {
	return slices.IndexFunc(m.categories, func(c Category) bool { return c.ID == id })
}

func (m *Memory) Create(_ context.Context, c Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.categories = append(m.categories, c)
	return nil
}

func (m *Memory) Get(_ context.Context, id string) (Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if i := m.index(id); i >= 0 {
		return m.categories[i], nil
	}
	return Category{}, ErrNotFound
}

func (m *Memory) FindByName(_ context.Context, name string) (Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, c := range m.categories {
		if SameName(c.Name, name) {
			return c, nil
		}
	}
	return Category{}, ErrNotFound
}

func (m *Memory) Update(_ context.Context, c Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.index(c.ID)
	if i < 0 {
		return ErrNotFound
	}
	m.categories[i] = c
	return nil
}

func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	i := m.index(id)
	if i < 0 {
		return ErrNotFound
	}
	m.categories = slices.Delete(m.categories, i, i+1)
	return nil
}

func (m *Memory) List(_ context.Context) ([]Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return slices.Clone(m.categories), nil
}

var _ Repository = (*Memory)(nil)
