package pages

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/mcoot/rpsgame/internal/model"
	"github.com/mcoot/rpsgame/internal/web/templates/layout"
)

// HomeData holds data for the home page
type HomeData struct {
	layout.PageData
	Next    string // where to go after picking a guest name
	Presets []model.MatchPreset
	Rounds  int // value pre-filled in the custom rounds input
	Policy  model.RoundsPolicy
}

// Home renders the intro, rules and mode selection
func Home(data HomeData) templ.Component {
	return layout.Base(data.PageData, homeBody(data))
}

func homeBody(data HomeData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := layout.NewPrinter(w)

		p.Raw(`<section id="intro"><h1>Rock Paper Scissors</h1>`)
		p.Raw(`<p>Embark on a timeless contest of intellect and chance against the computer.</p>`)
		p.Raw(`<p>Your cards stay hidden until the moment of revelation.</p></section>`)

		if data.Player == nil {
			p.Raw(`<form method="post" action="/auth/guest" class="guest-form"><label for="display_name">Your name</label>`)
			p.Raw(`<input type="text" id="display_name" name="display_name" maxlength="32" placeholder="Player">`)
			if data.Next != "" {
				p.Raw(`<input type="hidden" name="next"`)
				p.Attr("value", data.Next)
				p.Raw(`>`)
			}
			p.Raw(`<button type="submit">Continue</button></form>`)
		}

		p.Raw(`<section id="rules"><h2>Game Rules</h2><ul class="rules">`)
		for _, m := range model.AllMoves() {
			loser := beatenBy(m)
			p.Raw(`<li><span class="rule-icon">`)
			p.Text(m.Icon())
			p.Raw(`</span>`)
			p.Text(m.DisplayName() + " beats " + loser.DisplayName())
			p.Raw(`</li>`)
		}
		p.Raw(`<li><span class="rule-icon">🏆</span>First to win the majority of rounds wins the game!</li></ul></section>`)

		p.Raw(`<section id="mode"><h2>Select Game Mode</h2><div class="presets">`)
		for _, preset := range data.Presets {
			p.Raw(`<form method="post" action="/play" class="preset"`)
			p.Attr("data-preset", preset.Name)
			p.Raw(`><input type="hidden" name="rounds"`)
			p.Attr("value", strconv.Itoa(preset.TotalRounds))
			p.Raw(`><button type="submit"><h3>`)
			p.Text(preset.Label)
			p.Raw(`</h3><p>`)
			p.Text(preset.Description)
			p.Raw(`</p><span class="preset-rounds">`)
			p.Int(preset.TotalRounds)
			p.Raw(` rounds</span></button></form>`)
		}
		p.Raw(`</div>`)

		p.Raw(`<form method="post" action="/play" class="custom-rounds"><label for="rounds">Rounds</label>`)
		p.Raw(`<input type="number" id="rounds" name="rounds" min="1"`)
		if data.Policy.Max > 0 {
			p.Attr("max", strconv.Itoa(data.Policy.Max))
		}
		p.Attr("value", strconv.Itoa(data.Rounds))
		p.Raw(`><button type="submit">Start Game</button></form></section>`)

		return p.Err()
	})
}

// beatenBy returns the move that m defeats
func beatenBy(m model.Move) model.Move {
	for _, other := range model.AllMoves() {
		if m.Beats(other) {
			return other
		}
	}
	return m
}
