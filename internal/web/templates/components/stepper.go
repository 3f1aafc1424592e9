package components

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/mcoot/rpsgame/internal/model"
	"github.com/mcoot/rpsgame/internal/web/templates/layout"
)

// stepperDeltas are the adjustments offered by the round stepper
var stepperDeltas = []int{-2, -1, 1, 2}

// RoundStepper renders -2/-/+/+2 buttons that post a new round count to action.
// Buttons whose target falls outside the policy are disabled.
func RoundStepper(action string, total int, policy model.RoundsPolicy) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := layout.NewPrinter(w)
		p.Raw(`<form method="post" class="round-stepper"`)
		p.Attr("action", action)
		p.Raw(`><span class="stepper-label">Rounds:</span>`)
		for _, d := range stepperDeltas {
			if d == 1 {
				p.Raw(`<span class="rounds-value">`)
				p.Int(total)
				p.Raw(`</span>`)
			}
			target := total + d
			p.Raw(`<button type="submit" name="rounds"`)
			p.Attr("value", strconv.Itoa(target))
			p.Attr("class", "stepper-button stepper-"+deltaLabel(d))
			if policy.Validate(target) != nil {
				p.Raw(` disabled`)
			}
			p.Raw(`>`)
			p.Text(deltaText(d))
			p.Raw(`</button>`)
		}
		p.Raw(`</form>`)
		return p.Err()
	})
}

func deltaLabel(d int) string {
	if d < 0 {
		return "minus" + strconv.Itoa(-d)
	}
	return "plus" + strconv.Itoa(d)
}

func deltaText(d int) string {
	switch d {
	case -1:
		return "-"
	case 1:
		return "+"
	case 2:
		return "+2"
	default:
		return strconv.Itoa(d)
	}
}
