package memory

import (
	"context"
	"testing"
	"time"

	"github.com/mcoot/hangman-go/internal/model"
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

func (s *StorageSuite) newGame(id model.GameID) *model.Game {
	return model.NewGame(id, model.DefaultMaxGuesses, time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
}

// Game tests

func (s *StorageSuite) TestSaveAndGetGame() {
	game := s.newGame("game-1")
	game.State = model.GameStateInProgress
	game.Board = model.NewBoard(3)

	err := s.storage.SaveGame(s.ctx, game)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal(game.ID, retrieved.ID)
	s.Equal(game.State, retrieved.State)
	s.Equal(3, retrieved.Board.Len())
}

func (s *StorageSuite) TestGetGameNotFound() {
	_, err := s.storage.GetGame(s.ctx, "nonexistent")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *StorageSuite) TestSavedGameIsIsolatedFromCaller() {
	game := s.newGame("game-1")
	game.Board = model.NewBoard(3)
	s.Require().NoError(s.storage.SaveGame(s.ctx, game))

	// Mutating the caller's copy must not leak into storage
	s.Require().NoError(game.Board.Reveal('a', []int{1}))
	game.Turns = append(game.Turns, model.Turn{Number: 1, Letter: 'a', Positions: []int{1}})

	retrieved, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal("___", retrieved.Board.Pattern())
	s.Empty(retrieved.Turns)

	// Mutating a retrieved copy must not leak either
	retrieved.Board.Slots[0] = 'z'
	again, err := s.storage.GetGame(s.ctx, "game-1")
	s.Require().NoError(err)
	s.Equal("___", again.Board.Pattern())
}

func (s *StorageSuite) TestListGamesPreservesInsertionOrder() {
	for _, id := range []model.GameID{"b", "a", "c"} {
		s.Require().NoError(s.storage.SaveGame(s.ctx, s.newGame(id)))
	}
	// Re-saving does not move a game
	s.Require().NoError(s.storage.SaveGame(s.ctx, s.newGame("b")))

	games, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(games, 3)
	s.Equal(model.GameID("b"), games[0].ID)
	s.Equal(model.GameID("a"), games[1].ID)
	s.Equal(model.GameID("c"), games[2].ID)
}

func (s *StorageSuite) TestListGamesEmpty() {
	games, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Empty(games)
}

func (s *StorageSuite) TestDeleteGame() {
	s.Require().NoError(s.storage.SaveGame(s.ctx, s.newGame("game-1")))
	s.Require().NoError(s.storage.SaveGame(s.ctx, s.newGame("game-2")))

	err := s.storage.DeleteGame(s.ctx, "game-1")
	s.Require().NoError(err)

	_, err = s.storage.GetGame(s.ctx, "game-1")
	s.ErrorIs(err, model.ErrGameNotFound)

	games, err := s.storage.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(games, 1)
	s.Equal(model.GameID("game-2"), games[0].ID)

	// Deleting a missing game is a no-op
	s.NoError(s.storage.DeleteGame(s.ctx, "game-1"))
}

// Dictionary tests

func (s *StorageSuite) TestSaveAndGetDictionaryWords() {
	words := []string{"apple", "banana", "cherry"}

	err := s.storage.SaveDictionaryWords(s.ctx, words)
	s.Require().NoError(err)

	retrieved, err := s.storage.GetDictionaryWords(s.ctx)
	s.Require().NoError(err)
	s.Equal(words, retrieved)
}

func (s *StorageSuite) TestGetDictionaryWordsNotLoaded() {
	_, err := s.storage.GetDictionaryWords(s.ctx)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}
