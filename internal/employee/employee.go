// Package employee is the organization's employee directory.
package employee

import (
	"cmp"
	"errors"
	"slices"
	"strings"

	"github.com/angelofallars/dpm/internal/clock"
	"github.com/angelofallars/dpm/internal/listing"
	"github.com/angelofallars/dpm/internal/validate"
)

var ErrNotFound = errors.New("employee not found")

type Status string

const (
	StatusActive     Status = "active"
	StatusInactive   Status = "inactive"
	StatusTerminated Status = "terminated"
)

var Statuses = []Status{StatusActive, StatusInactive, StatusTerminated}

func (s Status) Valid() bool { return slices.Contains(Statuses, s) }

// Departments offered by the employee form.
var Departments = []string{
	"Engineering",
	"Human Resources",
	"Marketing",
	"Sales",
	"Design",
	"Finance",
	"Operations",
	"Customer Success",
	"Legal",
	"IT",
}

type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

type Employee struct {
	ID               string           `json:"id"`
	FirstName        string           `json:"firstName"`
	LastName         string           `json:"lastName"`
	Email            string           `json:"email"`
	Phone            string           `json:"phone"`
	Position         string           `json:"position"`
	Department       string           `json:"department"`
	Salary           float64          `json:"salary"`
	HireDate         string           `json:"hireDate"`
	Status           Status           `json:"status"`
	Address          string           `json:"address"`
	EmergencyContact EmergencyContact `json:"emergencyContact"`
	Manager          string           `json:"manager,omitempty"`
	Skills           []string         `json:"skills"`
	Notes            string           `json:"notes"`
}

func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// Normalize trims every text field and drops blank or repeated skills.
func (e Employee) Normalize() Employee {
	for _, f := range []*string{
		&e.FirstName, &e.LastName, &e.Email, &e.Phone, &e.Position, &e.Department,
		&e.HireDate, &e.Address, &e.Manager, &e.Notes,
		&e.EmergencyContact.Name, &e.EmergencyContact.Phone, &e.EmergencyContact.Relationship,
	} {
		*f = strings.TrimSpace(*f)
	}
	if e.Status == "" {
		e.Status = StatusActive
	}

	skills := make([]string, 0, len(e.Skills))
	for _, s := range e.Skills {
		if s = strings.TrimSpace(s); s != "" && !slices.Contains(skills, s) {
			skills = append(skills, s)
		}
	}
	e.Skills = skills
	return e
}

// Validate reports every invalid field of the form at once.
func (e Employee) Validate() error {
	errs := validate.Errors{}
	errs.Required("firstName", e.FirstName, "First name is required")
	errs.Required("lastName", e.LastName, "Last name is required")
	errs.Required("email", e.Email, "Email is required")
	if e.Email != "" {
		errs.Check(validate.Email(e.Email), "email", "Email is invalid")
	}
	errs.Required("phone", e.Phone, "Phone is required")
	errs.Required("position", e.Position, "Position is required")
	errs.Required("department", e.Department, "Department is required")
	errs.Check(e.Salary > 0, "salary", "Salary must be greater than 0")
	errs.Required("hireDate", e.HireDate, "Hire date is required")
	if e.HireDate != "" {
		errs.Check(clock.ValidDate(e.HireDate) == nil, "hireDate", "Hire date must be in YYYY-MM-DD format")
	}
	errs.Check(e.Status.Valid(), "status", "Status must be active, inactive or terminated")
	errs.Required("address", e.Address, "Address is required")
	errs.Required("emergencyContactName", e.EmergencyContact.Name, "Emergency contact name is required")
	errs.Required("emergencyContactPhone", e.EmergencyContact.Phone, "Emergency contact phone is required")
	errs.Required("emergencyContactRelationship", e.EmergencyContact.Relationship, "Emergency contact relationship is required")
	return errs.Err()
}

// Filter keys understood by Keep.
const (
	FilterSearch     = "q"
	FilterDepartment = "department"
	FilterStatus     = "status"
)

// Keep reports whether e passes the directory filters. The search term
// matches name, email, position and department case-insensitively; "all"
// or an empty value disables the department and status filters.
func Keep(e Employee, filter map[string]string) bool {
	if term := strings.ToLower(strings.TrimSpace(filter[FilterSearch])); term != "" {
		found := false
		for _, field := range []string{e.FirstName, e.LastName, e.Email, e.Position, e.Department} {
			if strings.Contains(strings.ToLower(field), term) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if d := filter[FilterDepartment]; d != "" && d != "all" && e.Department != d {
		return false
	}
	if s := filter[FilterStatus]; s != "" && s != "all" && string(e.Status) != s {
		return false
	}
	return true
}

// Compare returns the ordering for a sortable column, or nil.
func Compare(column string) func(a, b Employee) int {
	switch column {
	case "name":
		return func(a, b Employee) int {
			return cmp.Or(cmp.Compare(strings.ToLower(a.LastName), strings.ToLower(b.LastName)),
				cmp.Compare(strings.ToLower(a.FirstName), strings.ToLower(b.FirstName)))
		}
	case "position":
		return listing.By(func(e Employee) string { return strings.ToLower(e.Position) })
	case "department":
		return listing.By(func(e Employee) string { return e.Department })
	case "salary":
		return listing.By(func(e Employee) float64 { return e.Salary })
	case "hireDate":
		return listing.By(func(e Employee) string { return e.HireDate })
	case "status":
		return listing.By(func(e Employee) Status { return e.Status })
	}
	return nil
}

type Stats struct {
	Total       int `json:"total"`
	Active      int `json:"active"`
	Inactive    int `json:"inactive"`
	Terminated  int `json:"terminated"`
	Departments int `json:"departments"`
}

// Summarize counts employees by status and distinct departments.
func Summarize(employees []Employee) Stats {
	s := Stats{Total: len(employees)}
	departments := map[string]struct{}{}
	for _, e := range employees {
		switch e.Status {
		case StatusActive:
			s.Active++
		case StatusInactive:
			s.Inactive++
		case StatusTerminated:
			s.Terminated++
		}
		departments[e.Department] = struct{}{}
	}
	s.Departments = len(departments)
	return s
}

// DepartmentsOf lists the distinct departments in use, sorted.
func DepartmentsOf(employees []Employee) []string {
	var out []string
	for _, e := range employees {
		if !slices.Contains(out, e.Department) {
			out = append(out, e.Department)
		}
	}
	slices.Sort(out)
	return out
}
