package opponent

import (
	"sync"

	"github.com/mcoot/rpsgame/internal/model"
)

// ScriptedStrategy plays a fixed sequence of moves, then repeats the last one.
// Used where the computer's replies must be known in advance.
type ScriptedStrategy struct {
	mu    sync.Mutex
	moves []model.Move
	next  int
}

// NewScriptedStrategy creates a ScriptedStrategy playing moves in order
func NewScriptedStrategy(moves ...model.Move) *ScriptedStrategy {
	return &ScriptedStrategy{moves: moves}
}

// ChooseMove returns the next scripted move. With an empty script it plays rock.
func (s *ScriptedStrategy) ChooseMove() model.Move {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.moves) == 0 {
		return model.MoveRock
	}
	if s.next >= len(s.moves) {
		return s.moves[len(s.moves)-1]
	}
	m := s.moves[s.next]
	s.next++
	return m
}
