package components

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/mcoot/rpsgame/internal/model"
	"github.com/mcoot/rpsgame/internal/web/templates/layout"
)

// Scoreboard renders the running score
func Scoreboard(score model.Score) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := layout.NewPrinter(w)
		p.Raw(`<div class="scoreboard">`)
		p.Raw(`<div class="score score-player"><span class="score-label">You</span><span class="score-value" id="score-player">`)
		p.Int(score.PlayerWins)
		p.Raw(`</span></div>`)
		p.Raw(`<div class="score score-computer"><span class="score-label">Computer</span><span class="score-value" id="score-computer">`)
		p.Int(score.ComputerWins)
		p.Raw(`</span></div></div>`)
		return p.Err()
	})
}

// RoundHistory renders the rounds played so far, oldest first
func RoundHistory(rounds []model.Round) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if len(rounds) == 0 {
			return nil
		}
		p := layout.NewPrinter(w)
		p.Raw(`<table class="round-history"><thead><tr><th>Round</th><th>You</th><th>Computer</th><th>Result</th></tr></thead><tbody>`)
		for _, r := range rounds {
			p.Raw(`<tr`)
			p.Attr("class", "outcome-"+string(r.Outcome))
			p.Raw(`><td>`)
			p.Int(r.Number)
			p.Raw(`</td><td>`)
			p.Text(r.PlayerMove.DisplayName())
			p.Raw(`</td><td>`)
			p.Text(r.ComputerMove.DisplayName())
			p.Raw(`</td><td>`)
			p.Text(r.Outcome.Message())
			p.Raw(`</td></tr>`)
		}
		p.Raw(`</tbody></table>`)
		return p.Err()
	})
}
