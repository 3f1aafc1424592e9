package opponent_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/rpsgame/internal/dependencies/mocks"
	"github.com/mcoot/rpsgame/internal/dependencies/random"
	"github.com/mcoot/rpsgame/internal/model"
	"github.com/mcoot/rpsgame/internal/services/opponent"
)

type StrategySuite struct {
	suite.Suite
	mockRandom *mocks.MockRandom
	strategy   *opponent.RandomStrategy
}

func TestStrategySuite(t *testing.T) {
	suite.Run(t, new(StrategySuite))
}

func (s *StrategySuite) SetupTest() {
	s.mockRandom = mocks.NewMockRandom()
	s.strategy = opponent.NewRandomStrategy(s.mockRandom)
}

func (s *StrategySuite) TestChooseMove_MapsIndexToMove() {
	s.mockRandom.QueueIntn(0, 1, 2)

	s.Equal(model.MoveRock, s.strategy.ChooseMove())
	s.Equal(model.MovePaper, s.strategy.ChooseMove())
	s.Equal(model.MoveScissors, s.strategy.ChooseMove())
}

func (s *StrategySuite) TestChooseMove_EmptyQueueFallsBackToRock() {
	// Mock returns 0 when nothing is queued
	s.Equal(model.MoveRock, s.strategy.ChooseMove())
}

func (s *StrategySuite) TestChooseMove_RealRandomIsAlwaysValid() {
	strategy := opponent.NewRandomStrategy(random.New())
	for i := 0; i < 50; i++ {
		s.True(strategy.ChooseMove().IsValid())
	}
}

func (s *StrategySuite) TestScriptedStrategy_PlaysInOrderThenRepeatsLast() {
	scripted := opponent.NewScriptedStrategy(model.MoveScissors, model.MovePaper)

	s.Equal(model.MoveScissors, scripted.ChooseMove())
	s.Equal(model.MovePaper, scripted.ChooseMove())
	s.Equal(model.MovePaper, scripted.ChooseMove())
}

func (s *StrategySuite) TestScriptedStrategy_EmptyPlaysRock() {
	s.Equal(model.MoveRock, opponent.NewScriptedStrategy().ChooseMove())
}
