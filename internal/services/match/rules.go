package match

import "github.com/mcoot/rpsgame/internal/model"

// EvaluateEnd decides whether a match is over given its config and progress.
// A majority clinch ends the match before every round is played; otherwise
// the match ends once all rounds are played and the raw win counts decide it.
func EvaluateEnd(cfg model.MatchConfig, score model.Score, roundsPlayed int) (model.MatchResult, bool) {
	majority := cfg.MajorityThreshold()

	switch {
	case score.PlayerWins >= majority:
		return model.ResultPlayerWin, true
	case score.ComputerWins >= majority:
		return model.ResultComputerWin, true
	case roundsPlayed >= cfg.TotalRounds:
		switch {
		case score.PlayerWins > score.ComputerWins:
			return model.ResultPlayerWin, true
		case score.ComputerWins > score.PlayerWins:
			return model.ResultComputerWin, true
		default:
			return model.ResultTie, true
		}
	default:
		return model.ResultUndetermined, false
	}
}
