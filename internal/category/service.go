package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/angelofallars/dpm/internal/clock"
	"github.com/angelofallars/dpm/internal/validate"
	"github.com/google/uuid"
)

// Service enforces unique names and keeps the work entry counters. Writes
// are serialized so that the uniqueness check and the write that follows
// it cannot interleave.
type Service struct {
	mu    sync.Mutex
	log   *slog.Logger
	repo  Repository
	now   func() time.Time
	newID func() string

	// formerNames maps a lowercased name a category was renamed away from
	// to its id. Entries logged before the rename still carry that name.
	formerNames map[string]string
}

func NewService(log *slog.Logger, repo Repository) *Service {
	return &Service{
		log:         log,
		repo:        repo,
		now:         time.Now,
		newID:       uuid.NewString,
		formerNames: map[string]string{},
	}
}

// Input holds the user-editable fields.
type Input struct {
	Name        string
	Description string
	Color       string
}

func (in Input) normalize() (Input, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	in.Color = strings.TrimSpace(in.Color)
	if in.Color == "" {
		in.Color = Palette[0]
	}

	errs := validate.Errors{}
	errs.Required("name", in.Name, "Category name is required")
	errs.Check(validate.HexColor(in.Color), "color", "Color must be a hex value like #3B82F6")
	return in, errs.Err()
}

// unique returns ErrDuplicateName if another category than self is
// already called name.
func (s *Service) unique(ctx context.Context, name, self string) error {
	existing, err := s.repo.FindByName(ctx, name)
	switch {
	case errors.Is(err, ErrNotFound):
		return nil
	case err != nil:
		return err
	case existing.ID != self:
		return ErrDuplicateName
	}
	return nil
}

func (s *Service) Create(ctx context.Context, in Input) (Category, error) {
	in, err := in.normalize()
	if err != nil {
		return Category{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.unique(ctx, in.Name, ""); err != nil {
		return Category{}, err
	}

	today := clock.Today(s.now())
	c := Category{
		ID:          s.newID(),
		Name:        in.Name,
		Description: in.Description,
		Color:       in.Color,
		CreatedAt:   today,
		UpdatedAt:   today,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return Category{}, fmt.Errorf("create category: %w", err)
	}
	s.log.Debug("category created", "id", c.ID, "name", c.Name)
	return c, nil
}

func (s *Service) Update(ctx context.Context, id string, in Input) (Category, error) {
	in, err := in.normalize()
	if err != nil {
		return Category{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return Category{}, err
	}
	if err := s.unique(ctx, in.Name, id); err != nil {
		return Category{}, err
	}

	former := c.Name
	c.Name = in.Name
	c.Description = in.Description
	c.Color = in.Color
	c.UpdatedAt = clock.Today(s.now())
	if err := s.repo.Update(ctx, c); err != nil {
		return Category{}, fmt.Errorf("update category: %w", err)
	}
	if !strings.EqualFold(former, c.Name) {
		s.formerNames[strings.ToLower(former)] = c.ID
		delete(s.formerNames, strings.ToLower(c.Name))
		s.log.Debug("category renamed", "id", c.ID, "from", former, "to", c.Name)
	}
	return c, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Debug("category deleted", "id", id)
	return nil
}

func (s *Service) Get(ctx context.Context, id string) (Category, error) {
	return s.repo.Get(ctx, id)
}

// Search lists the categories matching term in name or description.
func (s *Service) Search(ctx context.Context, term string) ([]Category, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Category, 0, len(all))
	for _, c := range all {
		if c.Matches(term) {
			out = append(out, c)
		}
	}
	return out, nil
}

// Increment bumps the work entry count of the named category. A name the
// category was renamed away from still resolves to it. Unknown names are
// ignored.
func (s *Service) Increment(ctx context.Context, name string) error {
	return s.adjust(ctx, name, 1)
}

// Decrement lowers the count, never below zero.
func (s *Service) Decrement(ctx context.Context, name string) error {
	return s.adjust(ctx, name, -1)
}

func (s *Service) adjust(ctx context.Context, name string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.repo.FindByName(ctx, name)
	if errors.Is(err, ErrNotFound) {
		id, ok := s.formerNames[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			return nil
		}
		if c, err = s.repo.Get(ctx, id); errors.Is(err, ErrNotFound) {
			return nil
		}
	}
	if err != nil {
		return err
	}
	c.WorkEntriesCount = max(0, c.WorkEntriesCount+delta)
	return s.repo.Update(ctx, c)
}

// Seed creates the default categories that do not exist yet.
func (s *Service) Seed(ctx context.Context) error {
	for _, c := range Defaults() {
		_, err := s.Create(ctx, Input{Name: c.Name, Description: c.Description, Color: c.Color})
		if err != nil && !errors.Is(err, ErrDuplicateName) {
			return err
		}
	}
	return nil
}
