// Package component holds the templ components shared by every page.
package component

import (
	"context"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/a-h/templ"
)

// Writer writes HTML and keeps the first error, so a component can be
// written top to bottom and checked once at the end.
type Writer struct {
	w   io.Writer
	err error
}

func (w *Writer) Raw(s string) {
	if w.err == nil {
		_, w.err = io.WriteString(w.w, s)
	}
}

// Text writes s escaped.
func (w *Writer) Text(s string) { w.Raw(templ.EscapeString(s)) }

// Textf formats and escapes the result.
func (w *Writer) Textf(format string, args ...any) { w.Text(fmt.Sprintf(format, args...)) }

// Open writes a start tag with escaped attributes in key order.
func (w *Writer) Open(tag string, attrs ...templ.Attributes) {
	w.Raw("<" + tag)
	for _, a := range attrs {
		for _, k := range slices.Sorted(maps.Keys(a)) {
			switch v := a[k].(type) {
			case bool:
				if v {
					w.Raw(" " + k)
				}
			default:
				w.Raw(" " + k + `="` + templ.EscapeString(fmt.Sprint(v)) + `"`)
			}
		}
	}
	w.Raw(">")
}

func (w *Writer) Close(tag string) { w.Raw("</" + tag + ">") }

// Elem writes a whole element with escaped text content.
func (w *Writer) Elem(tag, text string, attrs ...templ.Attributes) {
	w.Open(tag, attrs...)
	w.Text(text)
	w.Close(tag)
}

// Render writes a child component.
func (w *Writer) Render(ctx context.Context, c templ.Component) {
	if w.err == nil && c != nil {
		w.err = c.Render(ctx, w.w)
	}
}

// Func adapts a writing function into a component.
func Func(fn func(ctx context.Context, w *Writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, out io.Writer) error {
		w := &Writer{w: out}
		fn(ctx, w)
		return w.err
	})
}

// Attr is shorthand for a single attribute set.
func Attr(kv ...any) templ.Attributes {
	a := templ.Attributes{}
	for i := 0; i+1 < len(kv); i += 2 {
		a[fmt.Sprint(kv[i])] = kv[i+1]
	}
	return a
}

// Empty renders nothing.
var Empty = templ.ComponentFunc(func(context.Context, io.Writer) error { return nil })
