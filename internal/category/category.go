// Package category manages the labels work entries are grouped by.
package category

import (
	"errors"
	"strings"
)

var (
	ErrNotFound      = errors.New("category not found")
	ErrDuplicateName = errors.New("a category with this name already exists")
)

// Palette is the set of colors offered by the category form. The first
// one is the default.
var Palette = []string{
	"#3B82F6",
	"#10B981",
	"#F59E0B",
	"#EF4444",
	"#8B5CF6",
	"#06B6D4",
	"#F97316",
	"#84CC16",
	"#EC4899",
	"#6366F1",
}

type Category struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	Color            string `json:"color"`
	CreatedAt        string `json:"createdAt"`
	UpdatedAt        string `json:"updatedAt"`
	WorkEntriesCount int    `json:"workEntriesCount"`
}

// Matches reports whether term is a case-insensitive substring of the
// name or the description. An empty term matches everything.
func (c Category) Matches(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(c.Name), term) ||
		strings.Contains(strings.ToLower(c.Description), term)
}

// SameName compares category names the way uniqueness is enforced.
func SameName(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// Defaults is the starter set offered to a new workspace.
func Defaults() []Category {
	return []Category{
		{Name: "Development", Description: "Software development and coding tasks", Color: Palette[0]},
		{Name: "Meetings", Description: "Team meetings and client calls", Color: Palette[1]},
		{Name: "Documentation", Description: "Writing and updating documentation", Color: Palette[2]},
		{Name: "Testing", Description: "Quality assurance and testing activities", Color: Palette[3]},
		{Name: "Design", Description: "UI/UX design and prototyping", Color: Palette[4]},
	}
}

type Stats struct {
	Categories  int    `json:"categories"`
	WorkEntries int    `json:"workEntries"`
	MostUsed    string `json:"mostUsed"`
}

// Summarize totals the entry counts. MostUsed is the first category with
// the highest count, or "None" when there are no categories.
func Summarize(categories []Category) Stats {
	s := Stats{Categories: len(categories), MostUsed: "None"}
	best := -1
	for _, c := range categories {
		s.WorkEntries += c.WorkEntriesCount
		if c.WorkEntriesCount > best {
			best = c.WorkEntriesCount
			s.MostUsed = c.Name
		}
	}
	return s
}
