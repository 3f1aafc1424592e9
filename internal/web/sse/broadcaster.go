package sse

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/mcoot/rpsgame/internal/dependencies/clock"
	"github.com/mcoot/rpsgame/internal/model"
	"github.com/mcoot/rpsgame/internal/reveal"
)

// revealSlack is added to the reveal's own length before it is abandoned
const revealSlack = 5 * time.Second

// Broadcaster publishes match events to SSE clients
type Broadcaster struct {
	hubManager *HubManager
	clock      clock.Clock
	timing     reveal.Timing
	logger     *slog.Logger
}

// NewBroadcaster creates a new Broadcaster
func NewBroadcaster(hubManager *HubManager, clk clock.Clock, timing reveal.Timing, logger *slog.Logger) *Broadcaster {
	return &Broadcaster{
		hubManager: hubManager,
		clock:      clk,
		timing:     timing,
		logger:     logger.With(slog.String("component", "sse-broadcaster")),
	}
}

// publish encodes an event as JSON and sends it to the match's hub, if anyone is watching
func (b *Broadcaster) publish(matchID model.MatchID, eventType model.EventType, payload any) {
	hub := b.hubManager.GetHub(matchID)
	if hub == nil {
		return
	}

	data, err := json.Marshal(model.Event{
		Type:      eventType,
		Timestamp: b.clock.Now(),
		MatchID:   matchID,
		Payload:   payload,
	})
	if err != nil {
		b.logger.Error("sse failed to encode event",
			slog.String("match_id", string(matchID)),
			slog.String("event", string(eventType)),
			slog.Any("error", err))
		return
	}

	hub.BroadcastEvent(string(eventType), string(data))
}

// BroadcastRoundResolved announces a resolved round and starts its paced reveal
func (b *Broadcaster) BroadcastRoundResolved(match *model.Match, round model.Round) {
	b.publish(match.ID, model.EventRoundResolved, model.RoundResolvedPayload{
		Round:        round.Number,
		PlayerMove:   round.PlayerMove,
		ComputerMove: round.ComputerMove,
		Outcome:      round.Outcome,
		PlayerWins:   match.Score.PlayerWins,
		ComputerWins: match.Score.ComputerWins,
	})

	if b.hubManager.GetHub(match.ID) == nil {
		return
	}
	go b.playReveal(match.ID, round)
}

// playReveal sends each reveal frame as its own event, paced by the reveal timing
func (b *Broadcaster) playReveal(matchID model.MatchID, round model.Round) {
	frames := reveal.Timeline(round, b.timing)
	ctx, cancel := context.WithTimeout(context.Background(), reveal.Total(frames)+revealSlack)
	defer cancel()

	err := reveal.Play(ctx, b.clock, frames, func(f reveal.Frame) error {
		b.publish(matchID, model.EventReveal, f.Payload())
		return nil
	})
	if err != nil {
		b.logger.Warn("sse reveal interrupted",
			slog.String("match_id", string(matchID)),
			slog.Any("error", err))
	}
}

// BroadcastAdvance announces the outcome of Advance: either the next round or the match result
func (b *Broadcaster) BroadcastAdvance(match *model.Match) {
	if match.IsComplete() {
		b.publish(match.ID, model.EventMatchComplete, model.MatchCompletePayload{
			Result:       match.Result,
			PlayerWins:   match.Score.PlayerWins,
			ComputerWins: match.Score.ComputerWins,
			RoundsPlayed: match.RoundsPlayed,
		})
		return
	}

	b.publish(match.ID, model.EventMatchAdvanced, model.MatchAdvancedPayload{
		NextRound:   match.CurrentRound(),
		TotalRounds: match.Config.TotalRounds,
	})
}

// BroadcastMatchReset announces a reset or a change of round count
func (b *Broadcaster) BroadcastMatchReset(match *model.Match) {
	b.publish(match.ID, model.EventMatchReset, model.MatchResetPayload{
		TotalRounds: match.Config.TotalRounds,
	})
}

// CloseMatch disconnects everyone watching a deleted match
func (b *Broadcaster) CloseMatch(matchID model.MatchID) {
	b.hubManager.RemoveHub(matchID)
}
