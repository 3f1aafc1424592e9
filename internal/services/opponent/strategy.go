package opponent

import "github.com/mcoot/rpsgame/internal/model"

// Strategy defines how the computer chooses its move for a round
type Strategy interface {
	// ChooseMove selects the computer's move. Implementations must not
	// look at the player's move for the same round.
	ChooseMove() model.Move
}
