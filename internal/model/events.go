package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventMatchStarted  EventType = "match-started"
	EventRoundResolved EventType = "round-resolved"
	EventReveal        EventType = "reveal"
	EventMatchAdvanced EventType = "match-advanced"
	EventMatchComplete EventType = "match-complete"
	EventMatchReset    EventType = "match-reset"
)

// Event is the base structure for all events
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	MatchID   MatchID   `json:"match_id"`
	Payload   any       `json:"payload,omitempty"`
}

// RoundResolvedPayload contains data for round resolved events
type RoundResolvedPayload struct {
	Round        int          `json:"round"`
	PlayerMove   Move         `json:"player_move"`
	ComputerMove Move         `json:"computer_move"`
	Outcome      RoundOutcome `json:"outcome"`
	PlayerWins   int          `json:"player_wins"`
	ComputerWins int          `json:"computer_wins"`
}

// RevealPayload contains one step of the staged round reveal
type RevealPayload struct {
	Step    string `json:"step"`
	Round   int    `json:"round"`
	Move    Move   `json:"move,omitempty"`
	Message string `json:"message,omitempty"`
}

// MatchAdvancedPayload contains data for match advanced events
type MatchAdvancedPayload struct {
	NextRound   int `json:"next_round"`
	TotalRounds int `json:"total_rounds"`
}

// MatchCompletePayload contains data for match complete events
type MatchCompletePayload struct {
	Result       MatchResult `json:"result"`
	PlayerWins   int         `json:"player_wins"`
	ComputerWins int         `json:"computer_wins"`
	RoundsPlayed int         `json:"rounds_played"`
}

// MatchResetPayload contains data for match reset events
type MatchResetPayload struct {
	TotalRounds int `json:"total_rounds"`
}
