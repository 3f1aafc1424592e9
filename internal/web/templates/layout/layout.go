// Package layout holds the page shell shared by every web page.
package layout

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/mcoot/rpsgame/internal/model"
)

// FlashMessage is a one-shot notice carried across a redirect
type FlashMessage struct {
	Type    string // "success", "error" or "info"
	Message string
}

// PageData is common to all pages
type PageData struct {
	Title  string
	Player *model.Player
	Flash  *FlashMessage
}

// Base wraps page content in the document shell
func Base(data PageData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := NewPrinter(w)
		p.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		p.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		p.Raw(`<title>`)
		p.Text(data.Title)
		p.Raw(` | Rock Paper Scissors</title></head><body>`)

		p.Raw(`<nav class="nav"><a href="/" class="nav-home">Rock Paper Scissors</a>`)
		if data.Player != nil {
			p.Raw(`<span class="nav-player">`)
			p.Text(data.Player.DisplayName)
			p.Raw(`</span><form method="post" action="/auth/logout" class="nav-logout"><button type="submit">Leave</button></form>`)
		}
		p.Raw(`</nav>`)

		if data.Flash != nil {
			p.Raw(`<div class="flash flash-`)
			p.Text(data.Flash.Type)
			p.Raw(`" role="alert">`)
			p.Text(data.Flash.Message)
			p.Raw(`</div>`)
		}

		p.Raw(`<main>`)
		if err := p.Err(); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		p.Raw(`</main></body></html>`)
		return p.Err()
	})
}
