// Package listing implements the filter, sort and paginate pipeline
// shared by every tabular view.
//
// Each view recomputes its page from scratch on every request:
// filter the full collection, sort the result, then cut one page.
package listing

import (
	"cmp"
	"net/url"
	"slices"
	"strconv"
	"strings"
)

// Order is a sort direction.
type Order string

const (
	Asc  Order = "asc"
	Desc Order = "desc"
)

// ParseOrder falls back to Desc for anything other than "asc".
func ParseOrder(s string) Order {
	if strings.EqualFold(strings.TrimSpace(s), string(Asc)) {
		return Asc
	}
	return Desc
}

// Flip returns the opposite direction.
func (o Order) Flip() Order {
	if o == Asc {
		return Desc
	}
	return Asc
}

// Sort is the active column and direction of a table.
type Sort struct {
	Column string `json:"column"`
	Order  Order  `json:"order"`
}

// Toggle handles a click on a column header. The same column flips
// direction; a different column starts out descending.
func (s Sort) Toggle(column string) Sort {
	if s.Column == column {
		return Sort{Column: column, Order: s.Order.Flip()}
	}
	return Sort{Column: column, Order: Desc}
}

// Less builds a comparison for slices.SortStableFunc from a key
// comparison, honoring the direction.
func Less[T any](order Order, compare func(a, b T) int) func(a, b T) int {
	if order == Asc {
		return compare
	}
	return func(a, b T) int { return compare(b, a) }
}

// By compares a single ordered key.
func By[T any, K cmp.Ordered](key func(T) K) func(a, b T) int {
	return func(a, b T) int { return cmp.Compare(key(a), key(b)) }
}

// Sorted returns a sorted copy of items. The input is left untouched.
func Sorted[T any](items []T, order Order, compare func(a, b T) int) []T {
	out := slices.Clone(items)
	slices.SortStableFunc(out, Less(order, compare))
	return out
}

// Page is one window over a sorted collection.
type Page[T any] struct {
	Items      []T `json:"items"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}

// HasPrev is false on the first page, which disables the back button.
func (p Page[T]) HasPrev() bool { return p.Page > 1 }

// HasNext is false on the last page, which disables the forward button.
func (p Page[T]) HasNext() bool { return p.Page < p.TotalPages }

// From is the 1-based index of the first item on the page, 0 when empty.
func (p Page[T]) From() int {
	if len(p.Items) == 0 {
		return 0
	}
	return (p.Page-1)*p.PageSize + 1
}

// To is the 1-based index of the last item on the page.
func (p Page[T]) To() int {
	if len(p.Items) == 0 {
		return 0
	}
	return p.From() + len(p.Items) - 1
}

// TotalPages is ceil(count / size).
func TotalPages(count, size int) int {
	if size <= 0 || count <= 0 {
		return 0
	}
	return (count + size - 1) / size
}

// Paginate cuts page number page out of items. Out of range page numbers
// are clamped into [1, TotalPages].
func Paginate[T any](items []T, page, size int) Page[T] {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := TotalPages(len(items), size)

	page = max(page, 1)
	if total > 0 {
		page = min(page, total)
	}

	start := min((page-1)*size, len(items))
	end := min(start+size, len(items))

	return Page[T]{
		Items:      items[start:end],
		Page:       page,
		PageSize:   size,
		TotalItems: len(items),
		TotalPages: total,
	}
}

const DefaultPageSize = 10

// State is the user-controlled part of a list view.
type State struct {
	Filter map[string]string `json:"filter,omitempty"`
	Sort   Sort              `json:"sort"`
	Page   int               `json:"page"`
}

// WithFilter sets a filter value and returns to the first page.
func (s State) WithFilter(key, value string) State {
	filter := make(map[string]string, len(s.Filter)+1)
	for k, v := range s.Filter {
		filter[k] = v
	}
	filter[key] = value
	return State{Filter: filter, Sort: s.Sort, Page: 1}
}

// WithSort toggles a column and returns to the first page.
func (s State) WithSort(column string) State {
	return State{Filter: s.Filter, Sort: s.Sort.Toggle(column), Page: 1}
}

// WithPage moves to another page keeping filter and sort.
func (s State) WithPage(page int) State {
	return State{Filter: s.Filter, Sort: s.Sort, Page: page}
}

// Apply runs the full pipeline over items.
func Apply[T any](items []T, s State, size int, keep func(T, map[string]string) bool, compare func(column string) func(a, b T) int) Page[T] {
	filtered := items
	if keep != nil {
		filtered = make([]T, 0, len(items))
		for _, item := range items {
			if keep(item, s.Filter) {
				filtered = append(filtered, item)
			}
		}
	}

	sorted := filtered
	if compare != nil {
		if fn := compare(s.Sort.Column); fn != nil {
			sorted = Sorted(filtered, s.Sort.Order, fn)
		}
	}

	return Paginate(sorted, s.Page, size)
}

// ParseState reads page, sort and order from a query string, plus the
// named filter keys. An absent or malformed page means the first page.
func ParseState(q url.Values, filterKeys ...string) State {
	s := State{
		Sort: Sort{Column: q.Get("sort"), Order: ParseOrder(q.Get("order"))},
		Page: 1,
	}
	if p, err := strconv.Atoi(q.Get("page")); err == nil {
		s.Page = p
	}
	if len(filterKeys) > 0 {
		s.Filter = make(map[string]string, len(filterKeys))
		for _, k := range filterKeys {
			if v := strings.TrimSpace(q.Get(k)); v != "" {
				s.Filter[k] = v
			}
		}
	}
	return s
}

// Query encodes s back into query parameters, the inverse of ParseState.
func (s State) Query() url.Values {
	q := url.Values{}
	for k, v := range s.Filter {
		q.Set(k, v)
	}
	if s.Sort.Column != "" {
		q.Set("sort", s.Sort.Column)
		q.Set("order", string(s.Sort.Order))
	}
	if s.Page > 1 {
		q.Set("page", strconv.Itoa(s.Page))
	}
	return q
}
