package response

import (
	"time"

	"github.com/mcoot/rpsgame/internal/model"
	"github.com/mcoot/rpsgame/internal/services/auth"
	"github.com/mcoot/rpsgame/internal/services/match"
)

// Player represents a player in API responses
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:          string(p.ID),
		DisplayName: p.DisplayName,
	}
}

// AuthResponse is the response for authentication endpoints
type AuthResponse struct {
	Player       Player `json:"player"`
	SessionToken string `json:"session_token"`
}

// AuthResponseFromSession creates an AuthResponse from a session
func AuthResponseFromSession(s *auth.Session) AuthResponse {
	return AuthResponse{
		Player:       PlayerFromModel(&s.Player),
		SessionToken: s.Token,
	}
}

// Preset represents a match preset
type Preset struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Description string `json:"description"`
	TotalRounds int    `json:"total_rounds"`
}

// PresetsFromModel converts model presets
func PresetsFromModel(presets []model.MatchPreset) []Preset {
	result := make([]Preset, len(presets))
	for i, p := range presets {
		result[i] = Preset{
			Name:        p.Name,
			Label:       p.Label,
			Description: p.Description,
			TotalRounds: p.TotalRounds,
		}
	}
	return result
}

// PresetsResponse lists presets along with the allowed round range
type PresetsResponse struct {
	Presets       []Preset `json:"presets"`
	DefaultRounds int      `json:"default_rounds"`
	MaxRounds     int      `json:"max_rounds"` // 0 means unbounded
}

// Score represents the running score
type Score struct {
	Player   int `json:"player"`
	Computer int `json:"computer"`
}

// Round represents a played round
type Round struct {
	Number       int       `json:"number"`
	PlayerMove   string    `json:"player_move"`
	ComputerMove string    `json:"computer_move"`
	Outcome      string    `json:"outcome"`
	Message      string    `json:"message"`
	PlayedAt     time.Time `json:"played_at"`
}

// RoundFromModel converts a model.Round
func RoundFromModel(r model.Round) Round {
	return Round{
		Number:       r.Number,
		PlayerMove:   string(r.PlayerMove),
		ComputerMove: string(r.ComputerMove),
		Outcome:      string(r.Outcome),
		Message:      r.Outcome.Message(),
		PlayedAt:     r.PlayedAt,
	}
}

// Match represents a match in API responses
type Match struct {
	ID            string    `json:"id"`
	TotalRounds   int       `json:"total_rounds"`
	RoundsToWin   int       `json:"rounds_to_win"`
	Phase         string    `json:"phase"`
	Status        string    `json:"status"`
	RoundsPlayed  int       `json:"rounds_played"`
	CurrentRound  int       `json:"current_round"`
	Score         Score     `json:"score"`
	Result        string    `json:"result"`
	ResultMessage string    `json:"result_message,omitempty"`
	Rounds        []Round   `json:"rounds"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// MatchFromModel converts a model.Match
func MatchFromModel(m *model.Match) Match {
	rounds := make([]Round, len(m.Rounds))
	for i, r := range m.Rounds {
		rounds[i] = RoundFromModel(r)
	}

	return Match{
		ID:            string(m.ID),
		TotalRounds:   m.Config.TotalRounds,
		RoundsToWin:   m.Config.MajorityThreshold(),
		Phase:         string(m.Phase),
		Status:        string(m.Status()),
		RoundsPlayed:  m.RoundsPlayed,
		CurrentRound:  m.CurrentRound(),
		Score:         Score{Player: m.Score.PlayerWins, Computer: m.Score.ComputerWins},
		Result:        string(m.Result),
		ResultMessage: m.Result.Message(),
		Rounds:        rounds,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// MatchList wraps a list of matches
type MatchList struct {
	Matches []Match `json:"matches"`
}

// MatchListFromModel converts a slice of matches
func MatchListFromModel(matches []*model.Match) MatchList {
	result := MatchList{Matches: make([]Match, len(matches))}
	for i, m := range matches {
		result.Matches[i] = MatchFromModel(m)
	}
	return result
}

// MoveResponse is the response for playing a round
type MoveResponse struct {
	ComputerMove string `json:"computer_move"`
	Outcome      string `json:"outcome"`
	Message      string `json:"message"`
	MatchOver    bool   `json:"match_over"`
	Match        Match  `json:"match"`
}

// MoveResponseFromResult converts a match.MoveResult
func MoveResponseFromResult(r *match.MoveResult) MoveResponse {
	return MoveResponse{
		ComputerMove: string(r.Round.ComputerMove),
		Outcome:      string(r.Round.Outcome),
		Message:      r.Round.Outcome.Message(),
		MatchOver:    r.MatchOver,
		Match:        MatchFromModel(r.Match),
	}
}
