package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/mcoot/rpsgame/internal/model"
	"github.com/mcoot/rpsgame/internal/web/templates/layout"
)

// PlayerHand renders the player's face-up cards, each one a form that submits its move
func PlayerHand(matchID model.MatchID, moves []model.Move) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := layout.NewPrinter(w)
		p.Raw(`<div class="hand hand-player">`)
		for _, m := range moves {
			p.Raw(`<form method="post" class="card-form"`)
			p.Attr("action", "/match/"+string(matchID)+"/move")
			p.Raw(`><input type="hidden" name="move"`)
			p.Attr("value", string(m))
			p.Raw(`><button type="submit" class="card card-player"`)
			p.Attr("data-move", string(m))
			p.Raw(`>`)
			writeFace(p, m)
			p.Raw(`</button></form>`)
		}
		p.Raw(`</div>`)
		return p.Err()
	})
}

// HiddenHand renders the computer's face-down cards
func HiddenHand() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := layout.NewPrinter(w)
		p.Raw(`<div class="hand hand-computer">`)
		for range model.AllMoves() {
			p.Raw(`<div class="card card-back">?</div>`)
		}
		p.Raw(`</div>`)
		return p.Err()
	})
}

// RevealedCard renders a single flipped card for one side of the table
func RevealedCard(side string, m model.Move) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := layout.NewPrinter(w)
		p.Raw(`<div`)
		p.Attr("class", "card card-revealed card-"+side)
		p.Attr("data-move", string(m))
		p.Raw(`>`)
		writeFace(p, m)
		p.Raw(`</div>`)
		return p.Err()
	})
}

func writeFace(p *layout.Printer, m model.Move) {
	p.Raw(`<span class="card-icon">`)
	p.Text(m.Icon())
	p.Raw(`</span><span class="card-label">`)
	p.Text(m.DisplayName())
	p.Raw(`</span>`)
}
