// Package validate collects per-field form errors so handlers can render
// them next to the offending input.
package validate

import (
	"errors"
	"regexp"
	"slices"
	"strings"
)

// ErrInvalid is matched by every [Errors] value through errors.Is.
var ErrInvalid = errors.New("invalid input")

// Errors maps a form field name to its message.
type Errors map[string]string

// Add records msg for field unless the field already has a message.
func (e Errors) Add(field, msg string) {
	if _, ok := e[field]; !ok {
		e[field] = msg
	}
}

// Required records msg when value is blank.
func (e Errors) Required(field, value, msg string) {
	if strings.TrimSpace(value) == "" {
		e.Add(field, msg)
	}
}

// Check records msg when ok is false.
func (e Errors) Check(ok bool, field, msg string) {
	if !ok {
		e.Add(field, msg)
	}
}

// Err returns nil when no field failed.
func (e Errors) Err() error {
	if len(e) == 0 {
		return nil
	}
	return e
}

// Errors satisfies [error]. Fields are listed in a stable order.
func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	slices.Sort(fields)

	var b strings.Builder
	for i, field := range fields {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(field)
		b.WriteString(": ")
		b.WriteString(e[field])
	}
	return b.String()
}

func (e Errors) Is(target error) bool { return target == ErrInvalid }

// Fields extracts the field errors from err, if any.
func Fields(err error) (Errors, bool) {
	var fe Errors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// Email reports whether s looks like an email address.
func Email(s string) bool { return emailPattern.MatchString(s) }

var colorPattern = regexp.MustCompile("^#[0-9a-fA-F]{6}$")

// HexColor reports whether s is a #RRGGBB color.
func HexColor(s string) bool { return colorPattern.MatchString(s) }
