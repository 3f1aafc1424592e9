package model

import "time"

// PlayerID uniquely identifies a player across the system
type PlayerID string

// Player is a guest who owns matches for the length of a session
type Player struct {
	ID          PlayerID
	DisplayName string
	CreatedAt   time.Time
}
