package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

func Layout(title string, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &htmlWriter{w: w}
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		h.raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		h.raw(`<title>`)
		h.text(title)
		h.raw(`</title>`)
		h.raw(`<script src="https://unpkg.com/htmx.org@1.9.12"></script>`)
		h.raw(`<link rel="stylesheet" href="/static/styles.css">`)
		h.raw(`</head><body>`)
		h.raw(`<nav><a class="brand" href="/">Padel League</a><div class="nav-right">`)
		if user := GetUser(ctx); user != nil {
			h.raw(`<span class="nav-user">`)
			h.text(user.Username)
			h.raw(`</span>`)
			h.raw(`<form method="post" action="/logout" hx-post="/logout"><button type="submit">Log out</button></form>`)
		} else {
			h.raw(`<a href="/login">Log in</a>`)
		}
		h.raw(`</div></nav><main>`)
		h.component(ctx, content)
		h.raw(`</main></body></html>`)
		return h.err
	})
}
