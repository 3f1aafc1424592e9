package request

import (
	"bytes"
	"fmt"

	"github.com/mcoot/rpsgame/internal/model"
)

// CreateGuestRequest is the request body for creating a guest player
type CreateGuestRequest struct {
	DisplayName string `json:"display_name"`
}

// RoundCount is a round count read from a request body.
// Anything other than a JSON integer is rejected with model.ErrInvalidConfig.
type RoundCount int

// UnmarshalJSON implements json.Unmarshaler
func (c *RoundCount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || data[0] == '"' || data[0] == '{' || data[0] == '[' || data[0] == 't' || data[0] == 'f' {
		return fmt.Errorf("%w: total rounds %s is not an integer", model.ErrInvalidConfig, data)
	}
	n, err := model.ParseTotalRounds(string(data))
	if err != nil {
		return err
	}
	*c = RoundCount(n)
	return nil
}

// Int returns the count as a *int, nil when c is nil
func (c *RoundCount) Int() *int {
	if c == nil {
		return nil
	}
	n := int(*c)
	return &n
}

// StartMatchRequest is the request body for starting a match.
// Set at most one of TotalRounds and Mode; neither means the default round count.
type StartMatchRequest struct {
	TotalRounds *RoundCount `json:"total_rounds,omitempty"`
	Mode        string      `json:"mode,omitempty"`
}

// SubmitMoveRequest is the request body for playing a round
type SubmitMoveRequest struct {
	Move string `json:"move"`
}

// ResetMatchRequest is the request body for resetting a match
type ResetMatchRequest struct {
	TotalRounds *RoundCount `json:"total_rounds,omitempty"`
}

// ChangeRoundsRequest is the request body for changing a match's round count
type ChangeRoundsRequest struct {
	TotalRounds *RoundCount `json:"total_rounds"`
}
