package todo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/angelofallars/dpm/internal/clock"
	"github.com/angelofallars/dpm/internal/validate"
	"github.com/google/uuid"
)

// ErrEmptyPatch is returned by Update when no field is set.
var ErrEmptyPatch = fmt.Errorf("%w: no fields to update", validate.ErrInvalid)

// CompletionSink consumes todo completions, e.g. to record a work entry.
//
//go:generate mockgen -source=service.go -destination=mock_sink_test.go -package=todo
type CompletionSink interface {
	TodoCompleted(ctx context.Context, c Completed) error
}

type Service struct {
	// mu serializes the read-modify-write mutations so a todo is completed,
	// and its sinks notified, at most once.
	mu sync.Mutex

	log   *slog.Logger
	repo  Repository
	sinks []CompletionSink
	newID func() string
}

func NewService(log *slog.Logger, repo Repository) *Service {
	return &Service{
		log:   log,
		repo:  repo,
		newID: uuid.NewString,
	}
}

// Subscribe registers a sink notified after every successful completion.
func (s *Service) Subscribe(sink CompletionSink) *Service {
	s.sinks = append(s.sinks, sink)
	return s
}

func validateFields(description string, expected int, date string) error {
	errs := validate.Errors{}
	errs.Required("description", description, "Description is required")
	errs.Check(expected >= MinExpectedMinutes && expected <= MaxExpectedMinutes, "expectedTime",
		fmt.Sprintf("Expected time must be between %d and %d minutes", MinExpectedMinutes, MaxExpectedMinutes))
	errs.Check(clock.ValidDate(date) == nil, "date", "Date must be in YYYY-MM-DD format")
	return errs.Err()
}

// Add creates an incomplete todo.
func (s *Service) Add(ctx context.Context, description string, expectedMinutes int, date string) (Item, error) {
	description = strings.TrimSpace(description)
	if err := validateFields(description, expectedMinutes, date); err != nil {
		return Item{}, err
	}

	item := Item{
		ID:              s.newID(),
		Description:     description,
		ExpectedMinutes: expectedMinutes,
		Date:            date,
	}
	if err := s.repo.Create(ctx, item); err != nil {
		return Item{}, fmt.Errorf("create todo: %w", err)
	}

	s.log.Debug("todo added", "id", item.ID, "date", item.Date)
	return item, nil
}

// Patch holds the editable fields. Nil fields are left unchanged.
type Patch struct {
	Description     *string
	ExpectedMinutes *int
	Date            *string
}

func (p Patch) empty() bool {
	return p.Description == nil && p.ExpectedMinutes == nil && p.Date == nil
}

// Update merges p into the stored item.
func (s *Service) Update(ctx context.Context, id string, p Patch) (Item, error) {
	if p.empty() {
		return Item{}, ErrEmptyPatch
	}
	s.mu.Lock()
	defer s.mu.Unlock()


	item, err := s.repo.Get(ctx, id)
	if err != nil {
		return Item{}, err
	}

	if p.Description != nil {
		item.Description = strings.TrimSpace(*p.Description)
	}
	if p.ExpectedMinutes != nil {
		item.ExpectedMinutes = *p.ExpectedMinutes
	}
	if p.Date != nil {
		item.Date = *p.Date
	}
	if err := validateFields(item.Description, item.ExpectedMinutes, item.Date); err != nil {
		return Item{}, err
	}

	if err := s.repo.Update(ctx, item); err != nil {
		return Item{}, fmt.Errorf("update todo: %w", err)
	}
	return item, nil
}

// Delete removes an incomplete todo. Completed todos are kept.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if item.IsCompleted() {
		return ErrCompletedImmutable
	}
	return s.repo.Delete(ctx, id)
}

// CompleteInput is the time range logged when finishing a todo.
type CompleteInput struct {
	StartTime string
	EndTime   string
	Category  string
	Notes     string
}

// Complete logs the time range and marks the todo completed. A range
// whose end is not after its start is rejected and the todo is left
// untouched.
func (s *Service) Complete(ctx context.Context, id string, in CompleteInput) (Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.repo.Get(ctx, id)
	if err != nil {
		return Item{}, err
	}
	if item.IsCompleted() {
		return Item{}, ErrAlreadyCompleted
	}

	start, end, minutes, err := clock.Span(in.StartTime, in.EndTime)
	if err != nil {
		return Item{}, err
	}

	item.Completion = &Completion{Start: start, End: end, ActualMinutes: minutes}
	if err := s.repo.Update(ctx, item); err != nil {
		return Item{}, fmt.Errorf("complete todo: %w", err)
	}
	s.log.Debug("todo completed", "id", item.ID, "minutes", minutes)

	event := Completed{
		Item:     item,
		Category: strings.TrimSpace(in.Category),
		Notes:    strings.TrimSpace(in.Notes),
	}
	var errs []error
	for _, sink := range s.sinks {
		if err := sink.TodoCompleted(ctx, event); err != nil {
			s.log.Warn("completion sink failed", "id", item.ID, "error", err)
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return item, fmt.Errorf("todo completed but not recorded: %w", errors.Join(errs...))
	}

	return item, nil
}

// Reopen clears the time log and marks the todo incomplete again.
func (s *Service) Reopen(ctx context.Context, id string) (Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.repo.Get(ctx, id)
	if err != nil {
		return Item{}, err
	}

	item.Completion = nil
	if err := s.repo.Update(ctx, item); err != nil {
		return Item{}, fmt.Errorf("reopen todo: %w", err)
	}
	return item, nil
}

func (s *Service) Get(ctx context.Context, id string) (Item, error) {
	return s.repo.Get(ctx, id)
}

// ForDate lists the todos whose date string equals date.
func (s *Service) ForDate(ctx context.Context, date string) ([]Item, error) {
	if err := clock.ValidDate(date); err != nil {
		return nil, err
	}
	return s.repo.ListByDate(ctx, date)
}
