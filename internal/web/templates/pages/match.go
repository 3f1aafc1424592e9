package pages

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/mcoot/rpsgame/internal/model"
	"github.com/mcoot/rpsgame/internal/web/templates/components"
	"github.com/mcoot/rpsgame/internal/web/templates/layout"
)

// MatchData holds data for the gameplay page
type MatchData struct {
	layout.PageData
	Match *model.Match
	// PlayerCards is the order the three moves are laid out this round
	PlayerCards []model.Move
	// MatchOver is true in RoundComplete when advancing will end the match
	MatchOver bool
	Policy    model.RoundsPolicy
}

// Match renders the gameplay screen
func Match(data MatchData) templ.Component {
	return layout.Base(data.PageData, matchBody(data))
}

func matchBody(data MatchData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := data.Match
		base := "/match/" + string(m.ID)
		p := layout.NewPrinter(w)

		p.Raw(`<section class="match"`)
		p.Attr("data-match-id", string(m.ID))
		p.Attr("data-phase", string(m.Phase))
		p.Raw(`><header class="match-header">`)
		if !m.IsComplete() {
			p.Raw(`<div class="round-banner">`)
			p.Text(fmt.Sprintf("Round %d of %d", m.CurrentRound(), m.Config.TotalRounds))
			p.Raw(`</div>`)
		}
		if err := p.Err(); err != nil {
			return err
		}
		if m.CanChangeRounds() {
			if err := components.RoundStepper(base+"/rounds", m.Config.TotalRounds, data.Policy).Render(ctx, w); err != nil {
				return err
			}
		}
		p.Raw(`</header>`)
		if err := p.Err(); err != nil {
			return err
		}

		if err := components.Scoreboard(m.Score).Render(ctx, w); err != nil {
			return err
		}

		switch m.Phase {
		case model.PhaseMatchComplete:
			p.Raw(`<div class="game-over"><div`)
			p.Attr("class", "match-result result-"+string(m.Result))
			p.Raw(`>`)
			p.Text(m.Result.Message())
			p.Raw(`</div><div class="final-score">`)
			p.Text(fmt.Sprintf("Final Score: %d - %d", m.Score.PlayerWins, m.Score.ComputerWins))
			p.Raw(`</div><form method="post" class="play-again"`)
			p.Attr("action", base+"/reset")
			p.Raw(`><button type="submit">Play Again</button></form><a href="/" class="back-home">Back to Home</a></div>`)

		case model.PhaseRoundComplete:
			last := m.LastRound()
			p.Raw(`<div class="arena">`)
			if err := p.Err(); err != nil {
				return err
			}
			if last != nil {
				if err := components.RevealedCard("player", last.PlayerMove).Render(ctx, w); err != nil {
					return err
				}
				if err := components.RevealedCard("computer", last.ComputerMove).Render(ctx, w); err != nil {
					return err
				}
				p.Raw(`<div`)
				p.Attr("class", "round-result outcome-"+string(last.Outcome))
				p.Raw(`>`)
				p.Text(last.Outcome.Message())
				p.Raw(`</div>`)
			}
			p.Raw(`</div><form method="post" class="advance"`)
			p.Attr("action", base+"/advance")
			p.Raw(`><button type="submit">`)
			if data.MatchOver {
				p.Text("See Result")
			} else {
				p.Text("Next Round")
			}
			p.Raw(`</button></form>`)

		default:
			p.Raw(`<div class="arena">`)
			if err := p.Err(); err != nil {
				return err
			}
			if err := components.PlayerHand(m.ID, data.PlayerCards).Render(ctx, w); err != nil {
				return err
			}
			if err := components.HiddenHand().Render(ctx, w); err != nil {
				return err
			}
			p.Raw(`</div><p class="game-status">Select one of your cards to play</p>`)
		}
		if err := p.Err(); err != nil {
			return err
		}

		if err := components.RoundHistory(m.Rounds).Render(ctx, w); err != nil {
			return err
		}

		p.Raw(`</section>`)
		p.Raw(`<script>`)
		p.Raw(liveUpdateScript)
		p.Raw(`</script>`)
		return p.Err()
	})
}

// liveUpdateScript reloads the page when another tab moves the match forward
const liveUpdateScript = `(function(){
var el=document.querySelector(".match");if(!el||!window.EventSource)return;
var src=new EventSource("/match/"+el.dataset.matchId+"/events");
["match-advanced","match-complete","match-reset"].forEach(function(n){src.addEventListener(n,function(){src.close();location.reload();});});
src.addEventListener("round-resolved",function(){if(el.dataset.phase==="idle"){src.close();location.reload();}});
})();`
