package employee

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/angelofallars/dpm/internal/listing"
	"github.com/google/uuid"
)

// Directory stores employees in memory in creation order.
type Directory struct {
	mu        sync.RWMutex
	log       *slog.Logger
	employees []Employee
	newID     func() string
}

func NewDirectory(log *slog.Logger, initial ...Employee) *Directory {
	return &Directory{
		log:       log,
		employees: slices.Clone(initial),
		newID:     uuid.NewString,
	}
}

func (d *Directory) index(id string) int {
	return slices.IndexFunc(d.employees, func(e Employee) bool { return e.ID == id })
}

func (d *Directory) Create(_ context.Context, e Employee) (Employee, error) {
	e = e.Normalize()
	if err := e.Validate(); err != nil {
		return Employee{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	e.ID = d.newID()
	d.employees = append(d.employees, e)
	d.log.Debug("employee added", "id", e.ID, "department", e.Department)
	return e, nil
}

func (d *Directory) Update(_ context.Context, id string, e Employee) (Employee, error) {
	e = e.Normalize()
	if err := e.Validate(); err != nil {
		return Employee{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	i := d.index(id)
	if i < 0 {
		return Employee{}, ErrNotFound
	}
	e.ID = id
	d.employees[i] = e
	return e, nil
}

func (d *Directory) Delete(_ context.Context, id string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	i := d.index(id)
	if i < 0 {
		return ErrNotFound
	}
	d.employees = slices.Delete(d.employees, i, i+1)
	d.log.Debug("employee removed", "id", id)
	return nil
}

func (d *Directory) Get(_ context.Context, id string) (Employee, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if i := d.index(id); i >= 0 {
		return d.employees[i], nil
	}
	return Employee{}, ErrNotFound
}

func (d *Directory) All(_ context.Context) []Employee {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return slices.Clone(d.employees)
}

// View is one rendered page of the directory.
type View struct {
	State       listing.State          `json:"state"`
	Page        listing.Page[Employee] `json:"page"`
	Stats       Stats                  `json:"stats"`
	Departments []string               `json:"departments"`
}

// List filters, sorts and paginates the directory. Stats and Departments
// cover the whole directory, not just the matching employees.
func (d *Directory) List(ctx context.Context, state listing.State, size int) View {
	all := d.All(ctx)
	return View{
		State:       state,
		Page:        listing.Apply(all, state, size, Keep, Compare),
		Stats:       Summarize(all),
		Departments: DepartmentsOf(all),
	}
}
