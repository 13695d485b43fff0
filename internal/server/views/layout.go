package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/RavinduUni/coinpulse/internal/render"
)

// Page wraps body sections in the shared HTML shell.
func Page(title string, sections ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>%s · coinpulse</title><link rel="stylesheet" href="/static/app.css"></head><body>`, templ.EscapeString(title)); err != nil {
			return err
		}
		if err := nav().Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<main class="container">`); err != nil {
			return err
		}
		for _, section := range sections {
			if err := section.Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</main></body></html>")
		return err
	})
}

func nav() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<nav class="topnav"><a class="brand" href="/">coinpulse</a><a href="/trending">Trending</a><form action="/search" method="get"><input type="search" name="q" placeholder="Search coins"></form></nav>`)
		return err
	})
}

// Section frames one data-backed block of a page.
func Section(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section class="panel"><h2>%s</h2>`, templ.EscapeString(title)); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</section>")
		return err
	})
}

// SectionError is the inline failure state for a single section. Rendering it
// instead of the section body keeps one failed fetch from taking down the
// rest of the page.
func SectionError(title string, err error) templ.Component {
	body := render.Textf("Could not load %s: %v", title, err)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section class="panel panel-error"><h2>%s</h2><p class="error">`, templ.EscapeString(title)); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</p></section>")
		return err
	})
}
