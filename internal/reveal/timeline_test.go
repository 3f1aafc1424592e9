package reveal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/rpsgame/internal/dependencies/mocks"
	"github.com/mcoot/rpsgame/internal/model"
)

var testRound = model.Round{
	Number:       2,
	PlayerMove:   model.MoveRock,
	ComputerMove: model.MovePaper,
	Outcome:      model.OutcomeComputerWin,
}

func TestTimeline(t *testing.T) {
	frames := Timeline(testRound, DefaultTiming())

	require.Len(t, frames, 3)
	assert.Equal(t, Frame{Step: StepPlayerCard, Round: 2, Move: model.MoveRock}, frames[0])
	assert.Equal(t, Frame{Step: StepComputerCard, Delay: 500 * time.Millisecond, Round: 2, Move: model.MovePaper}, frames[1])
	assert.Equal(t, Frame{Step: StepResult, Delay: time.Second, Round: 2, Message: "You lose!"}, frames[2])
	assert.Equal(t, 1500*time.Millisecond, Total(frames))
}

func TestPlay_SleepsBetweenFrames(t *testing.T) {
	clk := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	start := clk.Now()

	var shown []Step
	var at []time.Duration
	err := Play(context.Background(), clk, Timeline(testRound, DefaultTiming()), func(f Frame) error {
		shown = append(shown, f.Step)
		at = append(at, clk.Now().Sub(start))
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []Step{StepPlayerCard, StepComputerCard, StepResult}, shown)
	assert.Equal(t, []time.Duration{0, 500 * time.Millisecond, 1500 * time.Millisecond}, at)
}

func TestPlay_StopsOnShowError(t *testing.T) {
	clk := mocks.NewMockClock(time.Now())
	boom := errors.New("boom")

	calls := 0
	err := Play(context.Background(), clk, Timeline(testRound, DefaultTiming()), func(f Frame) error {
		calls++
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, calls)
}

func TestPlay_StopsOnCancel(t *testing.T) {
	clk := mocks.NewMockClock(time.Now())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Play(ctx, clk, Timeline(testRound, DefaultTiming()), func(f Frame) error {
		t.Fatal("nothing should be shown")
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFramePayload(t *testing.T) {
	p := Timeline(testRound, Timing{})[2].Payload()
	assert.Equal(t, model.RevealPayload{Step: "result", Round: 2, Message: "You lose!"}, p)
}
