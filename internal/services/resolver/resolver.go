package resolver

import (
	"fmt"

	"github.com/mcoot/rpsgame/internal/model"
	"github.com/mcoot/rpsgame/internal/services/opponent"
)

// Result is the outcome of a single resolved round
type Result struct {
	PlayerMove   model.Move
	ComputerMove model.Move
	Outcome      model.RoundOutcome
}

// ScoreDelta returns the wins added to each side by this round
func (r Result) ScoreDelta() model.Score {
	return model.Score{}.Apply(r.Outcome)
}

// Outcome decides a round from the player's point of view.
// Both moves must be valid.
func Outcome(player, computer model.Move) model.RoundOutcome {
	switch {
	case player == computer:
		return model.OutcomeTie
	case player.Beats(computer):
		return model.OutcomePlayerWin
	default:
		return model.OutcomeComputerWin
	}
}

// Resolver samples the computer's move and decides rounds
type Resolver struct {
	opponent opponent.Strategy
}

// New creates a Resolver drawing computer moves from the given strategy
func New(strategy opponent.Strategy) *Resolver {
	return &Resolver{opponent: strategy}
}

// ResolveRound samples a computer move and resolves it against the player's move
func (r *Resolver) ResolveRound(playerMove model.Move) (Result, error) {
	if !playerMove.IsValid() {
		return Result{}, fmt.Errorf("%w: %q", model.ErrInvalidMove, playerMove)
	}
	return ResolveAgainst(playerMove, r.opponent.ChooseMove())
}

// ResolveAgainst resolves a round with a pre-supplied computer move
func ResolveAgainst(playerMove, computerMove model.Move) (Result, error) {
	if !playerMove.IsValid() {
		return Result{}, fmt.Errorf("%w: player move %q", model.ErrInvalidMove, playerMove)
	}
	if !computerMove.IsValid() {
		return Result{}, fmt.Errorf("%w: computer move %q", model.ErrInvalidMove, computerMove)
	}
	return Result{
		PlayerMove:   playerMove,
		ComputerMove: computerMove,
		Outcome:      Outcome(playerMove, computerMove),
	}, nil
}

// Interface for dependency injection
type ResolverInterface interface {
	ResolveRound(playerMove model.Move) (Result, error)
}

var _ ResolverInterface = (*Resolver)(nil)
