package model

import "time"

// MatchID uniquely identifies a match
type MatchID string

// MatchPhase is the position of a match in its round loop
type MatchPhase string

const (
	PhaseIdle          MatchPhase = "idle"           // Waiting for the player's move
	PhaseResolving     MatchPhase = "resolving"      // Round outcome being computed
	PhaseRoundComplete MatchPhase = "round_complete" // Outcome available, match not yet evaluated
	PhaseMatchComplete MatchPhase = "match_complete" // Terminal until reset
)

// MatchStatus is the coarse lifecycle of a match
type MatchStatus string

const (
	StatusInProgress MatchStatus = "in_progress"
	StatusComplete   MatchStatus = "complete"
)

// MatchResult is the overall result of a match
type MatchResult string

const (
	ResultUndetermined MatchResult = "undetermined"
	ResultPlayerWin    MatchResult = "player_win"
	ResultComputerWin  MatchResult = "computer_win"
	ResultTie          MatchResult = "tie"
)

// Message returns the headline shown when the match ends
func (r MatchResult) Message() string {
	switch r {
	case ResultPlayerWin:
		return "You Won The Game!"
	case ResultComputerWin:
		return "You Lost The Game!"
	case ResultTie:
		return "Game Ended In A Tie!"
	default:
		return ""
	}
}

// Score counts rounds won by each side
type Score struct {
	PlayerWins   int
	ComputerWins int
}

// Apply adds a round outcome to the score
func (s Score) Apply(outcome RoundOutcome) Score {
	switch outcome {
	case OutcomePlayerWin:
		s.PlayerWins++
	case OutcomeComputerWin:
		s.ComputerWins++
	}
	return s
}

// Add returns the sum of two scores
func (s Score) Add(delta Score) Score {
	return Score{
		PlayerWins:   s.PlayerWins + delta.PlayerWins,
		ComputerWins: s.ComputerWins + delta.ComputerWins,
	}
}

// MatchConfig holds the settings fixed for the duration of a match
type MatchConfig struct {
	TotalRounds int
}

// MajorityThreshold returns the wins needed to clinch the match: ceil(TotalRounds/2)
func (c MatchConfig) MajorityThreshold() int {
	return (c.TotalRounds + 1) / 2
}

// MatchState is the read-only snapshot of match progress
type MatchState struct {
	RoundsPlayed int
	Score        Score
	Status       MatchStatus
	Result       MatchResult
}

// Match is a best-of-N sequence of rounds against the computer
type Match struct {
	ID      MatchID
	OwnerID PlayerID
	Config  MatchConfig
	Phase   MatchPhase

	RoundsPlayed int
	Score        Score
	Result       MatchResult

	// Rounds played so far, oldest first
	Rounds []Round

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Status derives the coarse status from the phase
func (m *Match) Status() MatchStatus {
	if m.Phase == PhaseMatchComplete {
		return StatusComplete
	}
	return StatusInProgress
}

// IsComplete returns true once the match has a result
func (m *Match) IsComplete() bool {
	return m.Phase == PhaseMatchComplete
}

// State returns a snapshot of the match progress
func (m *Match) State() MatchState {
	return MatchState{
		RoundsPlayed: m.RoundsPlayed,
		Score:        m.Score,
		Status:       m.Status(),
		Result:       m.Result,
	}
}

// LastRound returns the most recent round, or nil before the first move
func (m *Match) LastRound() *Round {
	if len(m.Rounds) == 0 {
		return nil
	}
	r := m.Rounds[len(m.Rounds)-1]
	return &r
}

// CurrentRound returns the 1-indexed number of the round being played
func (m *Match) CurrentRound() int {
	if m.Phase == PhaseIdle {
		return m.RoundsPlayed + 1
	}
	return m.RoundsPlayed
}

// CanChangeRounds returns true when the round target may be edited:
// before the first move or after the match has ended
func (m *Match) CanChangeRounds() bool {
	return m.IsComplete() || (m.Phase == PhaseIdle && m.RoundsPlayed == 0)
}

// Clone returns a deep copy of the match
func (m *Match) Clone() *Match {
	c := *m
	c.Rounds = append([]Round(nil), m.Rounds...)
	return &c
}
