package work

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/angelofallars/dpm/internal/clock"
	"github.com/angelofallars/dpm/internal/todo"
	"github.com/angelofallars/dpm/internal/validate"
	"github.com/google/uuid"
)

// CategoryCounter keeps the per-category entry counts in step with the
// recorded entries.
type CategoryCounter interface {
	Increment(ctx context.Context, name string) error
	Decrement(ctx context.Context, name string) error
}

type Service struct {
	log     *slog.Logger
	repo    Repository
	counter CategoryCounter
	now     func() time.Time
	newID   func() string
}

// NewService returns a work service. counter may be nil.
func NewService(log *slog.Logger, repo Repository, counter CategoryCounter) *Service {
	return &Service{
		log:     log,
		repo:    repo,
		counter: counter,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Input is a directly entered work record.
type Input struct {
	Description     string
	Category        string
	Date            string
	StartTime       string
	EndTime         string
	ExpectedMinutes int
	Notes           string
}

// Record validates in and stores it as a new entry.
func (s *Service) Record(ctx context.Context, in Input) (Entry, error) {
	errs := validate.Errors{}
	description := strings.TrimSpace(in.Description)
	errs.Required("description", description, "Description is required")
	errs.Check(clock.ValidDate(in.Date) == nil, "date", "Date must be in YYYY-MM-DD format")
	errs.Check(in.ExpectedMinutes >= 0 && in.ExpectedMinutes <= todo.MaxExpectedMinutes, "expectedTime",
		fmt.Sprintf("Expected time must be at most %d minutes", todo.MaxExpectedMinutes))
	if err := errs.Err(); err != nil {
		return Entry{}, err
	}

	start, end, minutes, err := clock.Span(in.StartTime, in.EndTime)
	if err != nil {
		return Entry{}, err
	}

	return s.store(ctx, Entry{
		Description:     description,
		Category:        categoryOrDefault(in.Category),
		Start:           start,
		End:             end,
		ActualMinutes:   minutes,
		ExpectedMinutes: in.ExpectedMinutes,
		Date:            in.Date,
		Notes:           strings.TrimSpace(in.Notes),
	})
}

// TodoCompleted records the work entry produced by completing a todo.
func (s *Service) TodoCompleted(ctx context.Context, c todo.Completed) error {
	if c.Item.Completion == nil {
		return fmt.Errorf("todo %s has no time log", c.Item.ID)
	}

	_, err := s.store(ctx, Entry{
		Description:     c.Item.Description,
		Category:        categoryOrDefault(c.Category),
		Start:           c.Item.Completion.Start,
		End:             c.Item.Completion.End,
		ActualMinutes:   c.Item.Completion.ActualMinutes,
		ExpectedMinutes: c.Item.ExpectedMinutes,
		Date:            c.Item.Date,
		Notes:           c.Notes,
	})
	return err
}

func (s *Service) store(ctx context.Context, e Entry) (Entry, error) {
	e.ID = s.newID()
	e.Timestamp = s.now().UnixMilli()

	if err := s.repo.Create(ctx, e); err != nil {
		return Entry{}, fmt.Errorf("create work entry: %w", err)
	}
	if s.counter != nil {
		if err := s.counter.Increment(ctx, e.Category); err != nil {
			s.log.Warn("could not update category count", "category", e.Category, "error", err)
		}
	}

	s.log.Debug("work entry recorded", "id", e.ID, "category", e.Category, "minutes", e.ActualMinutes)
	return e, nil
}

func (s *Service) Get(ctx context.Context, id string) (Entry, error) {
	return s.repo.Get(ctx, id)
}

func (s *Service) List(ctx context.Context, f Filter) ([]Entry, error) {
	return s.repo.List(ctx, f)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	e, err := s.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	if s.counter != nil {
		if err := s.counter.Decrement(ctx, e.Category); err != nil {
			s.log.Warn("could not update category count", "category", e.Category, "error", err)
		}
	}
	return nil
}

var _ todo.CompletionSink = (*Service)(nil)
