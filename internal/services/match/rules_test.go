package match

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mcoot/rpsgame/internal/model"
)

func TestEvaluateEnd(t *testing.T) {
	tests := []struct {
		name         string
		totalRounds  int
		score        model.Score
		roundsPlayed int
		expected     model.MatchResult
		over         bool
	}{
		{"fresh match", 3, model.Score{}, 0, model.ResultUndetermined, false},
		{"player clinches best of 5 early", 5, model.Score{PlayerWins: 3}, 3, model.ResultPlayerWin, true},
		{"computer clinches best of 3 early", 3, model.Score{ComputerWins: 2}, 2, model.ResultComputerWin, true},
		{"one all after two of three", 3, model.Score{PlayerWins: 1, ComputerWins: 1}, 2, model.ResultUndetermined, false},
		{"one all with ties on exhaustion", 4, model.Score{PlayerWins: 1, ComputerWins: 1}, 4, model.ResultTie, true},
		{"majority checked before exhaustion", 4, model.Score{PlayerWins: 2, ComputerWins: 2}, 4, model.ResultPlayerWin, true},
		{"one all mid match", 4, model.Score{PlayerWins: 1, ComputerWins: 1}, 3, model.ResultUndetermined, false},
		{"ties then one win", 3, model.Score{ComputerWins: 1}, 3, model.ResultComputerWin, true},
		{"all ties", 2, model.Score{}, 2, model.ResultTie, true},
		{"single round win", 1, model.Score{PlayerWins: 1}, 1, model.ResultPlayerWin, true},
		{"single round tie", 1, model.Score{}, 1, model.ResultTie, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, over := EvaluateEnd(model.MatchConfig{TotalRounds: tt.totalRounds}, tt.score, tt.roundsPlayed)
			assert.Equal(t, tt.expected, result)
			assert.Equal(t, tt.over, over)
		})
	}
}

func TestMajorityThreshold(t *testing.T) {
	assert.Equal(t, 1, model.MatchConfig{TotalRounds: 1}.MajorityThreshold())
	assert.Equal(t, 1, model.MatchConfig{TotalRounds: 2}.MajorityThreshold())
	assert.Equal(t, 2, model.MatchConfig{TotalRounds: 3}.MajorityThreshold())
	assert.Equal(t, 2, model.MatchConfig{TotalRounds: 4}.MajorityThreshold())
	assert.Equal(t, 3, model.MatchConfig{TotalRounds: 5}.MajorityThreshold())
}
