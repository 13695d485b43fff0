package render

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Text returns a component that writes s with HTML escaping applied.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}

// Textf is Text over a fmt format string.
func Textf(format string, args ...any) templ.Component {
	return Text(fmt.Sprintf(format, args...))
}
