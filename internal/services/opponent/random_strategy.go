package opponent

import (
	"github.com/mcoot/rpsgame/internal/dependencies/random"
	"github.com/mcoot/rpsgame/internal/model"
)

// RandomStrategy picks uniformly from the three moves
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// ChooseMove returns a uniformly random move
func (s *RandomStrategy) ChooseMove() model.Move {
	moves := model.AllMoves()
	return moves[s.random.Intn(len(moves))]
}
