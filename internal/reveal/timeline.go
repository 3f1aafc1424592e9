// Package reveal sequences the staged reveal of a resolved round for
// presentation. It never changes match state.
package reveal

import (
	"context"
	"time"

	"github.com/mcoot/rpsgame/internal/dependencies/clock"
	"github.com/mcoot/rpsgame/internal/model"
)

// Step names one stage of the reveal
type Step string

const (
	StepPlayerCard   Step = "player-card"
	StepComputerCard Step = "computer-card"
	StepResult       Step = "result"
)

// Timing holds the pauses between reveal steps
type Timing struct {
	ComputerDelay time.Duration // after the player's card flips
	ResultDelay   time.Duration // after the computer's card flips
}

// DefaultTiming matches the pacing of the browser game
func DefaultTiming() Timing {
	return Timing{
		ComputerDelay: 500 * time.Millisecond,
		ResultDelay:   1000 * time.Millisecond,
	}
}

// Frame is one step of the reveal, shown after Delay has elapsed
type Frame struct {
	Step    Step
	Delay   time.Duration
	Round   int
	Move    model.Move
	Message string
}

// Payload converts the frame into its event payload
func (f Frame) Payload() model.RevealPayload {
	return model.RevealPayload{
		Step:    string(f.Step),
		Round:   f.Round,
		Move:    f.Move,
		Message: f.Message,
	}
}

// Timeline builds the frames for a resolved round
func Timeline(round model.Round, timing Timing) []Frame {
	return []Frame{
		{Step: StepPlayerCard, Round: round.Number, Move: round.PlayerMove},
		{Step: StepComputerCard, Delay: timing.ComputerDelay, Round: round.Number, Move: round.ComputerMove},
		{Step: StepResult, Delay: timing.ResultDelay, Round: round.Number, Message: round.Outcome.Message()},
	}
}

// Total returns the time the full reveal takes
func Total(frames []Frame) time.Duration {
	var d time.Duration
	for _, f := range frames {
		d += f.Delay
	}
	return d
}

// Play waits out each frame's delay and hands it to show. It stops early if
// ctx is cancelled or show returns an error.
func Play(ctx context.Context, clk clock.Clock, frames []Frame, show func(Frame) error) error {
	for _, f := range frames {
		if err := clk.Sleep(ctx, f.Delay); err != nil {
			return err
		}
		if err := show(f); err != nil {
			return err
		}
	}
	return nil
}
