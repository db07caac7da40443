// Package templates contains the HTML components for the explorer UI.
//
// Components are built directly on templ.Component so handlers can render
// full pages or HTMX partials with the same Render(ctx, w) call.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// page wraps body content in the shared HTML shell.
func page(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<link rel="stylesheet" href="/static/app.css">
<script src="https://unpkg.com/htmx.org@1.9.12" defer></script>
<script src="/static/charts.js" defer></script>
</head>
<body>
<header class="site-header">
<h1><a href="/">Microbiome Explorer</a></h1>
</header>
<main class="content">
`, templ.EscapeString(title)); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n</main>\n</body>\n</html>\n")
		return err
	})
}

// ErrorAlert renders a dismissible error banner with the user message,
// suggested action and error code.
func ErrorAlert(message, action, code string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<div class="alert alert-error" role="alert">
<p class="alert-message">%s</p>
`, templ.EscapeString(message)); err != nil {
			return err
		}
		if action != "" {
			if _, err := fmt.Fprintf(w, `<p class="alert-action">%s</p>
`, templ.EscapeString(action)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w, `<span class="alert-code">%s</span>
</div>
`, templ.EscapeString(code))
		return err
	})
}
