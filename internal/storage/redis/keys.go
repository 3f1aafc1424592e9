package redis

import (
	"fmt"

	"github.com/mcoot/rpsgame/internal/model"
)

// Key prefix for all game-related data
const keyPrefix = "rpsgame"

// playerKey returns the Redis key for a Player
func playerKey(id model.PlayerID) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// matchKey returns the Redis key for a Match
func matchKey(id model.MatchID) string {
	return fmt.Sprintf("%s:match:%s", keyPrefix, id)
}

// matchesForPlayerIndexKey returns the Redis key for the SET of match IDs owned by a player
func matchesForPlayerIndexKey(playerID model.PlayerID) string {
	return fmt.Sprintf("%s:idx:matches_for_player:%s", keyPrefix, playerID)
}

// matchesForPlayerIndexPattern matches every per-player match index
func matchesForPlayerIndexPattern() string {
	return fmt.Sprintf("%s:idx:matches_for_player:*", keyPrefix)
}
