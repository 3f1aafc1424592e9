package memory

import (
	"context"
	"testing"
	"time"

	"github.com/mcoot/rpsgame/internal/model"
	"github.com/stretchr/testify/suite"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// Player tests

func (s *StorageSuite) TestSaveAndGetPlayer() {
	player := &model.Player{
		ID:          "player-1",
		DisplayName: "Alice",
		CreatedAt:   time.Now(),
	}

	err := s.storage.SavePlayer(s.ctx, player)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Equal(player.ID, retrieved.ID)
	s.Equal(player.DisplayName, retrieved.DisplayName)
}

func (s *StorageSuite) TestGetPlayerNotFound() {
	_, err := s.storage.GetPlayer(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *StorageSuite) TestDeletePlayer() {
	player := &model.Player{ID: "player-1", DisplayName: "Alice"}
	_ = s.storage.SavePlayer(s.ctx, player)

	err := s.storage.DeletePlayer(s.ctx, "player-1")
	s.Require().NoError(err)

	_, err = s.storage.GetPlayer(s.ctx, "player-1")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

// Match tests

func (s *StorageSuite) newMatch(id model.MatchID, owner model.PlayerID, createdAt time.Time) *model.Match {
	return &model.Match{
		ID:        id,
		OwnerID:   owner,
		Config:    model.MatchConfig{TotalRounds: 3},
		Phase:     model.PhaseIdle,
		Result:    model.ResultUndetermined,
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	}
}

func (s *StorageSuite) TestSaveAndGetMatch() {
	match := s.newMatch("match-1", "player-1", time.Now())

	s.Require().NoError(s.storage.SaveMatch(s.ctx, match))

	retrieved, err := s.storage.GetMatch(s.ctx, "match-1")
	s.Require().NoError(err)
	s.Equal(match.ID, retrieved.ID)
	s.Equal(3, retrieved.Config.TotalRounds)
	s.Equal(model.PhaseIdle, retrieved.Phase)
}

func (s *StorageSuite) TestGetMatchNotFound() {
	_, err := s.storage.GetMatch(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrMatchNotFound)
}

func (s *StorageSuite) TestGetMatchReturnsCopy() {
	match := s.newMatch("match-1", "player-1", time.Now())
	_ = s.storage.SaveMatch(s.ctx, match)

	retrieved, _ := s.storage.GetMatch(s.ctx, "match-1")
	retrieved.RoundsPlayed = 2
	retrieved.Rounds = append(retrieved.Rounds, model.Round{Number: 1})

	again, _ := s.storage.GetMatch(s.ctx, "match-1")
	s.Equal(0, again.RoundsPlayed)
	s.Empty(again.Rounds)
}

func (s *StorageSuite) TestDeleteMatch() {
	_ = s.storage.SaveMatch(s.ctx, s.newMatch("match-1", "player-1", time.Now()))

	s.Require().NoError(s.storage.DeleteMatch(s.ctx, "match-1"))

	_, err := s.storage.GetMatch(s.ctx, "match-1")
	s.ErrorIs(err, model.ErrMatchNotFound)
}

func (s *StorageSuite) TestListMatchesForPlayer() {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	_ = s.storage.SaveMatch(s.ctx, s.newMatch("match-2", "player-1", base.Add(time.Minute)))
	_ = s.storage.SaveMatch(s.ctx, s.newMatch("match-1", "player-1", base))
	_ = s.storage.SaveMatch(s.ctx, s.newMatch("match-3", "player-2", base))

	matches, err := s.storage.ListMatchesForPlayer(s.ctx, "player-1")
	s.Require().NoError(err)
	s.Require().Len(matches, 2)
	s.Equal(model.MatchID("match-1"), matches[0].ID)
	s.Equal(model.MatchID("match-2"), matches[1].ID)
}

func (s *StorageSuite) TestListMatchesForPlayerEmpty() {
	matches, err := s.storage.ListMatchesForPlayer(s.ctx, "nobody")
	s.Require().NoError(err)
	s.Empty(matches)
}

func (s *StorageSuite) TestPruneMatches() {
	base := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	_ = s.storage.SaveMatch(s.ctx, s.newMatch("old", "player-1", base))
	_ = s.storage.SaveMatch(s.ctx, s.newMatch("new", "player-1", base.Add(2*time.Hour)))

	removed, err := s.storage.PruneMatches(s.ctx, base.Add(time.Hour))
	s.Require().NoError(err)
	s.Equal(1, removed)

	_, err = s.storage.GetMatch(s.ctx, "old")
	s.ErrorIs(err, model.ErrMatchNotFound)
	_, err = s.storage.GetMatch(s.ctx, "new")
	s.NoError(err)
}
