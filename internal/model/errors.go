package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Match errors
	ErrMatchNotFound     = errors.New("match not found")
	ErrNotMatchOwner     = errors.New("match belongs to another player")
	ErrInvalidConfig     = errors.New("invalid match configuration")
	ErrInvalidTransition = errors.New("invalid match state transition")

	// Round errors
	ErrInvalidMove = errors.New("invalid move")
)
