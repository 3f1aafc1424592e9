package match

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/rpsgame/internal/dependencies/clock"
	"github.com/mcoot/rpsgame/internal/dependencies/random"
	"github.com/mcoot/rpsgame/internal/model"
	"github.com/mcoot/rpsgame/internal/services/resolver"
	"github.com/mcoot/rpsgame/internal/storage"
)

const (
	// MatchIDAlphabet is the character set for generated match IDs
	MatchIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// MatchIDLength is the length of generated match IDs
	MatchIDLength = 12
)

// MoveResult is returned from SubmitMove
type MoveResult struct {
	Round model.Round
	Match *model.Match

	// MatchOver reports whether Advance will end the match. The match itself
	// stays in RoundComplete until Advance is called.
	MatchOver bool
}

// Controller manages the match state machine
type Controller struct {
	storage  storage.Storage
	resolver resolver.ResolverInterface
	policy   model.RoundsPolicy
	clock    clock.Clock
	random   random.Random
	logger   *slog.Logger

	locks *matchLocks
}

// NewController creates a new match Controller
func NewController(
	storage storage.Storage,
	resolver resolver.ResolverInterface,
	policy model.RoundsPolicy,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:  storage,
		resolver: resolver,
		policy:   policy,
		clock:    clock,
		random:   random,
		logger:   logger.With(slog.String("component", "match-controller")),
		locks:    newMatchLocks(),
	}
}

// Policy returns the rounds policy matches are validated against
func (c *Controller) Policy() model.RoundsPolicy {
	return c.policy
}

// StartMatch creates a new match for the player with the given round count
func (c *Controller) StartMatch(ctx context.Context, ownerID model.PlayerID, totalRounds int) (*model.Match, error) {
	if err := c.policy.Validate(totalRounds); err != nil {
		return nil, err
	}

	now := c.clock.Now()
	match := &model.Match{
		ID:        model.MatchID(c.random.String(MatchIDLength, MatchIDAlphabet)),
		OwnerID:   ownerID,
		Config:    model.MatchConfig{TotalRounds: totalRounds},
		Phase:     model.PhaseIdle,
		Result:    model.ResultUndetermined,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := c.storage.SaveMatch(ctx, match); err != nil {
		c.logger.Error("failed to save match",
			slog.String("match_id", string(match.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("match started",
		slog.String("match_id", string(match.ID)),
		slog.String("player_id", string(ownerID)),
		slog.Int("total_rounds", totalRounds),
	)

	return match, nil
}

// GetMatch retrieves a match owned by the player
func (c *Controller) GetMatch(ctx context.Context, matchID model.MatchID, playerID model.PlayerID) (*model.Match, error) {
	return c.loadOwned(ctx, matchID, playerID)
}

// ListMatches returns every match owned by the player, oldest first
func (c *Controller) ListMatches(ctx context.Context, playerID model.PlayerID) ([]*model.Match, error) {
	return c.storage.ListMatchesForPlayer(ctx, playerID)
}

// SubmitMove plays one round. Only valid while the match is idle; a second
// submission for the same round is rejected and leaves the match untouched.
func (c *Controller) SubmitMove(ctx context.Context, matchID model.MatchID, playerID model.PlayerID, move model.Move) (*MoveResult, error) {
	if !move.IsValid() {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidMove, move)
	}

	unlock := c.locks.lock(matchID)
	defer unlock()

	match, err := c.loadOwned(ctx, matchID, playerID)
	if err != nil {
		return nil, err
	}

	if match.Phase != model.PhaseIdle {
		return nil, fmt.Errorf("%w: cannot submit a move while match is %s", model.ErrInvalidTransition, match.Phase)
	}

	match.Phase = model.PhaseResolving

	result, err := c.resolver.ResolveRound(move)
	if err != nil {
		return nil, err
	}

	round := model.Round{
		Number:       match.RoundsPlayed + 1,
		PlayerMove:   result.PlayerMove,
		ComputerMove: result.ComputerMove,
		Outcome:      result.Outcome,
		PlayedAt:     c.clock.Now(),
	}

	match.Score = match.Score.Add(result.ScoreDelta())
	match.RoundsPlayed++
	match.Rounds = append(match.Rounds, round)
	match.Phase = model.PhaseRoundComplete
	match.UpdatedAt = round.PlayedAt

	if err := c.storage.SaveMatch(ctx, match); err != nil {
		return nil, err
	}

	c.logger.Debug("round resolved",
		slog.String("match_id", string(match.ID)),
		slog.Int("round", round.Number),
		slog.String("player_move", string(round.PlayerMove)),
		slog.String("computer_move", string(round.ComputerMove)),
		slog.String("outcome", string(round.Outcome)),
	)

	_, over := EvaluateEnd(match.Config, match.Score, match.RoundsPlayed)
	return &MoveResult{Round: round, Match: match, MatchOver: over}, nil
}

// Advance evaluates the end of the match after a round. The match either
// completes with a result or returns to idle for the next round.
func (c *Controller) Advance(ctx context.Context, matchID model.MatchID, playerID model.PlayerID) (*model.Match, error) {
	unlock := c.locks.lock(matchID)
	defer unlock()

	match, err := c.loadOwned(ctx, matchID, playerID)
	if err != nil {
		return nil, err
	}

	if match.Phase != model.PhaseRoundComplete {
		return nil, fmt.Errorf("%w: cannot advance while match is %s", model.ErrInvalidTransition, match.Phase)
	}

	result, over := EvaluateEnd(match.Config, match.Score, match.RoundsPlayed)
	if over {
		match.Result = result
		match.Phase = model.PhaseMatchComplete
	} else {
		match.Phase = model.PhaseIdle
	}
	match.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveMatch(ctx, match); err != nil {
		return nil, err
	}

	if over {
		c.logger.Info("match completed",
			slog.String("match_id", string(match.ID)),
			slog.String("result", string(match.Result)),
			slog.Int("rounds_played", match.RoundsPlayed),
			slog.Int("total_rounds", match.Config.TotalRounds),
		)
	}

	return match, nil
}

// ResetMatch reinitialises the match from any phase. The round count is kept
// unless totalRounds is given, in which case it is validated first.
func (c *Controller) ResetMatch(ctx context.Context, matchID model.MatchID, playerID model.PlayerID, totalRounds *int) (*model.Match, error) {
	unlock := c.locks.lock(matchID)
	defer unlock()

	match, err := c.loadOwned(ctx, matchID, playerID)
	if err != nil {
		return nil, err
	}

	return c.reset(ctx, match, totalRounds)
}

// ChangeRounds sets a new round count. Allowed before the first move or once
// the match is complete; the match is reset to its initial state either way.
func (c *Controller) ChangeRounds(ctx context.Context, matchID model.MatchID, playerID model.PlayerID, totalRounds int) (*model.Match, error) {
	unlock := c.locks.lock(matchID)
	defer unlock()

	match, err := c.loadOwned(ctx, matchID, playerID)
	if err != nil {
		return nil, err
	}

	if !match.CanChangeRounds() {
		return nil, fmt.Errorf("%w: rounds can only change before the first move or after the match ends", model.ErrInvalidTransition)
	}

	return c.reset(ctx, match, &totalRounds)
}

// DeleteMatch removes a match owned by the player
func (c *Controller) DeleteMatch(ctx context.Context, matchID model.MatchID, playerID model.PlayerID) error {
	unlock := c.locks.lock(matchID)
	defer unlock()

	if _, err := c.loadOwned(ctx, matchID, playerID); err != nil {
		return err
	}

	if err := c.storage.DeleteMatch(ctx, matchID); err != nil {
		return err
	}

	c.logger.Info("match deleted", slog.String("match_id", string(matchID)))
	return nil
}

func (c *Controller) reset(ctx context.Context, match *model.Match, totalRounds *int) (*model.Match, error) {
	if totalRounds != nil {
		if err := c.policy.Validate(*totalRounds); err != nil {
			return nil, err
		}
		match.Config.TotalRounds = *totalRounds
	}

	match.Phase = model.PhaseIdle
	match.RoundsPlayed = 0
	match.Score = model.Score{}
	match.Result = model.ResultUndetermined
	match.Rounds = nil
	match.UpdatedAt = c.clock.Now()

	if err := c.storage.SaveMatch(ctx, match); err != nil {
		return nil, err
	}

	c.logger.Info("match reset",
		slog.String("match_id", string(match.ID)),
		slog.Int("total_rounds", match.Config.TotalRounds),
	)

	return match, nil
}

// loadOwned fetches a match and checks it belongs to the player
func (c *Controller) loadOwned(ctx context.Context, matchID model.MatchID, playerID model.PlayerID) (*model.Match, error) {
	match, err := c.storage.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match.OwnerID != playerID {
		return nil, model.ErrNotMatchOwner
	}
	return match, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	Policy() model.RoundsPolicy
	StartMatch(ctx context.Context, ownerID model.PlayerID, totalRounds int) (*model.Match, error)
	GetMatch(ctx context.Context, matchID model.MatchID, playerID model.PlayerID) (*model.Match, error)
	ListMatches(ctx context.Context, playerID model.PlayerID) ([]*model.Match, error)
	SubmitMove(ctx context.Context, matchID model.MatchID, playerID model.PlayerID, move model.Move) (*MoveResult, error)
	Advance(ctx context.Context, matchID model.MatchID, playerID model.PlayerID) (*model.Match, error)
	ResetMatch(ctx context.Context, matchID model.MatchID, playerID model.PlayerID, totalRounds *int) (*model.Match, error)
	ChangeRounds(ctx context.Context, matchID model.MatchID, playerID model.PlayerID, totalRounds int) (*model.Match, error)
	DeleteMatch(ctx context.Context, matchID model.MatchID, playerID model.PlayerID) error
}

var _ ControllerInterface = (*Controller)(nil)
