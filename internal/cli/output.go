package cli

import (
	"encoding/json"
	"fmt"
	"os"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
}

// NewOutput creates a new Output formatter
func NewOutput(format string) *Output {
	return &Output{format: format}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(os.Stderr, string(data))
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Println(string(data))
	} else {
		fmt.Println(msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Player:
		o.printPlayer(v)
	case AuthResult:
		o.printAuthResult(v)
	case PresetList:
		o.printPresets(v)
	case Match:
		o.printMatch(v)
	case MatchList:
		o.printMatchList(v)
	case MoveResult:
		o.printMoveResult(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Player response type (matches API)
type Player struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
}

// AuthResult combines player and token
type AuthResult struct {
	Player       Player `json:"player"`
	SessionToken string `json:"session_token"`
}

// Preset response type
type Preset struct {
	Name        string `json:"name"`
	Label       string `json:"label"`
	Description string `json:"description"`
	TotalRounds int    `json:"total_rounds"`
}

// PresetList response type
type PresetList struct {
	Presets       []Preset `json:"presets"`
	DefaultRounds int      `json:"default_rounds"`
	MaxRounds     int      `json:"max_rounds"`
}

// Score response type
type Score struct {
	Player   int `json:"player"`
	Computer int `json:"computer"`
}

// Round response type
type Round struct {
	Number       int    `json:"number"`
	PlayerMove   string `json:"player_move"`
	ComputerMove string `json:"computer_move"`
	Outcome      string `json:"outcome"`
	Message      string `json:"message"`
}

// Match response type
type Match struct {
	ID            string  `json:"id"`
	TotalRounds   int     `json:"total_rounds"`
	RoundsToWin   int     `json:"rounds_to_win"`
	Phase         string  `json:"phase"`
	Status        string  `json:"status"`
	RoundsPlayed  int     `json:"rounds_played"`
	CurrentRound  int     `json:"current_round"`
	Score         Score   `json:"score"`
	Result        string  `json:"result"`
	ResultMessage string  `json:"result_message,omitempty"`
	Rounds        []Round `json:"rounds"`
}

// MatchList response type
type MatchList struct {
	Matches []Match `json:"matches"`
}

// MoveResult response type
type MoveResult struct {
	ComputerMove string `json:"computer_move"`
	Outcome      string `json:"outcome"`
	Message      string `json:"message"`
	MatchOver    bool   `json:"match_over"`
	Match        Match  `json:"match"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func (o *Output) printPlayer(p Player) {
	fmt.Printf("Player: %s (%s)\n", p.DisplayName, p.ID)
}

func (o *Output) printAuthResult(a AuthResult) {
	o.printPlayer(a.Player)
	fmt.Printf("Token: %s\n", a.SessionToken)
}

func (o *Output) printPresets(l PresetList) {
	for _, p := range l.Presets {
		fmt.Printf("%-10s %-12s %s\n", p.Name, p.Label, p.Description)
	}
	fmt.Printf("Default rounds: %d\n", l.DefaultRounds)
	if l.MaxRounds > 0 {
		fmt.Printf("Rounds allowed: 1-%d\n", l.MaxRounds)
	} else {
		fmt.Println("Rounds allowed: 1 or more")
	}
}

func (o *Output) printMatch(m Match) {
	fmt.Printf("Match: %s\n", m.ID)
	fmt.Printf("Best of %d (first to %d)\n", m.TotalRounds, m.RoundsToWin)
	fmt.Printf("Phase: %s\n", m.Phase)
	fmt.Printf("Score: you %d - %d computer\n", m.Score.Player, m.Score.Computer)

	if m.Phase == "match_complete" {
		fmt.Println(m.ResultMessage)
	} else {
		fmt.Printf("Round %d of %d\n", m.CurrentRound, m.TotalRounds)
	}

	if len(m.Rounds) > 0 {
		fmt.Println("\nRounds:")
		for _, r := range m.Rounds {
			fmt.Printf("  %d. %s vs %s - %s\n", r.Number, r.PlayerMove, r.ComputerMove, r.Message)
		}
	}
}

func (o *Output) printMatchList(l MatchList) {
	if len(l.Matches) == 0 {
		fmt.Println("No matches")
		return
	}
	for _, m := range l.Matches {
		fmt.Printf("%s  best of %d  %d-%d  %s\n", m.ID, m.TotalRounds, m.Score.Player, m.Score.Computer, m.Status)
	}
}

func (o *Output) printMoveResult(r MoveResult) {
	fmt.Printf("Computer played: %s\n", r.ComputerMove)
	fmt.Println(r.Message)
	fmt.Printf("Score: you %d - %d computer\n", r.Match.Score.Player, r.Match.Score.Computer)
	if r.MatchOver {
		fmt.Println("Match decided. Run \"rps match advance\" to see the result.")
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	fmt.Printf("Status: %s\n", h.Status)
}
