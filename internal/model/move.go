package model

import (
	"strings"
	"time"
)

// Move is one of the three hand shapes a player can throw
type Move string

const (
	MoveRock     Move = "rock"
	MovePaper    Move = "paper"
	MoveScissors Move = "scissors"
)

// AllMoves returns the three moves in their canonical order
func AllMoves() []Move {
	return []Move{MoveRock, MovePaper, MoveScissors}
}

// beats maps each move to the move it defeats
var beats = map[Move]Move{
	MoveRock:     MoveScissors,
	MovePaper:    MoveRock,
	MoveScissors: MovePaper,
}

// IsValid returns true if m is one of the three moves
func (m Move) IsValid() bool {
	_, ok := beats[m]
	return ok
}

// Beats returns true if m defeats other
func (m Move) Beats(other Move) bool {
	return beats[m] == other
}

// DisplayName returns the capitalised name shown to players
func (m Move) DisplayName() string {
	switch m {
	case MoveRock:
		return "Rock"
	case MovePaper:
		return "Paper"
	case MoveScissors:
		return "Scissors"
	default:
		return string(m)
	}
}

// Icon returns the hand emoji for the move
func (m Move) Icon() string {
	switch m {
	case MoveRock:
		return "✊"
	case MovePaper:
		return "✋"
	case MoveScissors:
		return "✌️"
	default:
		return "?"
	}
}

// ParseMove converts user input into a Move, ignoring case and surrounding space
func ParseMove(s string) (Move, error) {
	m := Move(strings.ToLower(strings.TrimSpace(s)))
	if !m.IsValid() {
		return "", ErrInvalidMove
	}
	return m, nil
}

// RoundOutcome is the result of a single round from the player's point of view
type RoundOutcome string

const (
	OutcomePlayerWin   RoundOutcome = "player_win"
	OutcomeComputerWin RoundOutcome = "computer_win"
	OutcomeTie         RoundOutcome = "tie"
)

// Message returns the banner shown after a round
func (o RoundOutcome) Message() string {
	switch o {
	case OutcomePlayerWin:
		return "You win!"
	case OutcomeComputerWin:
		return "You lose!"
	default:
		return "It's a tie!"
	}
}

// Round records one resolved exchange of moves
type Round struct {
	Number       int // 1-indexed
	PlayerMove   Move
	ComputerMove Move
	Outcome      RoundOutcome
	PlayedAt     time.Time
}
