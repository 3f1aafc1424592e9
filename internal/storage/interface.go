package storage

import (
	"context"
	"time"

	"github.com/mcoot/rpsgame/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, id model.PlayerID) (*model.Player, error)
	DeletePlayer(ctx context.Context, id model.PlayerID) error

	// Match operations
	SaveMatch(ctx context.Context, match *model.Match) error
	GetMatch(ctx context.Context, id model.MatchID) (*model.Match, error)
	DeleteMatch(ctx context.Context, id model.MatchID) error
	ListMatchesForPlayer(ctx context.Context, playerID model.PlayerID) ([]*model.Match, error)

	// PruneMatches removes matches last updated before cutoff and returns how many were removed
	PruneMatches(ctx context.Context, cutoff time.Time) (int, error)
}
