// Package render converts ordered row collections into HTML tables through
// declarative column descriptors, so pages never hand-write per-column markup.
package render

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Column describes one table column: a header component plus a function that
// produces the cell content for a given row. Slice order is column order.
type Column[T any] struct {
	Header      templ.Component
	Cell        func(T) templ.Component
	HeaderClass string
	CellClass   string
}

// Table builds a <table> component from rows and column descriptors. One
// <tr> is emitted per row in input order, keyed by rowID through a data-key
// attribute; one <td> per column via that column's Cell function. The header
// row is emitted once regardless of rows, and an empty row collection yields
// a header-only table.
//
// Neither rows nor cols is mutated, and the component re-renders from scratch
// on every Render call, so rendering twice with unchanged inputs produces
// identical markup. Row identities are expected to be unique per call;
// duplicates are emitted as-is (one output row per input row, no merging).
// An error from a cell component aborts the render and propagates to the
// caller.
func Table[T any](rows []T, cols []Column[T], rowID func(T) string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<table class="data-table"><thead><tr>`); err != nil {
			return err
		}
		for _, col := range cols {
			if err := openCell(w, "th", col.HeaderClass); err != nil {
				return err
			}
			if col.Header != nil {
				if err := col.Header.Render(ctx, w); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "</th>"); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</tr></thead><tbody>"); err != nil {
			return err
		}

		for _, row := range rows {
			if _, err := fmt.Fprintf(w, `<tr data-key="%s">`, templ.EscapeString(rowID(row))); err != nil {
				return err
			}
			for _, col := range cols {
				if err := openCell(w, "td", col.CellClass); err != nil {
					return err
				}
				if cell := col.Cell(row); cell != nil {
					if err := cell.Render(ctx, w); err != nil {
						return err
					}
				}
				if _, err := io.WriteString(w, "</td>"); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "</tr>"); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, "</tbody></table>")
		return err
	})
}

func openCell(w io.Writer, tag, class string) error {
	if class == "" {
		_, err := fmt.Fprintf(w, "<%s>", tag)
		return err
	}
	_, err := fmt.Fprintf(w, `<%s class="%s">`, tag, templ.EscapeString(class))
	return err
}
