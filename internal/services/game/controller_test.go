package game_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/hangman-go/internal/dependencies/mocks"
	"github.com/mcoot/hangman-go/internal/model"
	"github.com/mcoot/hangman-go/internal/services/bot"
	"github.com/mcoot/hangman-go/internal/services/game"
	"github.com/mcoot/hangman-go/internal/storage/memory"
	"github.com/mcoot/hangman-go/internal/testutil"
)

// scriptedGuesser guesses a fixed sequence of letters, repeating the last one
type scriptedGuesser struct {
	letters    []rune
	next       int
	length     int
	responses  [][]int
	guessErr   error
	handleErr  error
	seenBoards []string
}

func (g *scriptedGuesser) RegisterSecretLength(ctx context.Context, length int) error {
	g.length = length
	return nil
}

func (g *scriptedGuesser) Guess(ctx context.Context, board *model.Board, remaining int) (rune, error) {
	if g.guessErr != nil {
		return 0, g.guessErr
	}
	g.seenBoards = append(g.seenBoards, board.Pattern())
	letter := g.letters[min(g.next, len(g.letters)-1)]
	g.next++
	return letter, nil
}

func (g *scriptedGuesser) HandleResponse(ctx context.Context, letter rune, positions []int) error {
	g.responses = append(g.responses, positions)
	return g.handleErr
}

// stubReferee answers every guess with the same positions
type stubReferee struct {
	length    int
	positions []int
	pickErr   error
}

func (r *stubReferee) PickSecretWord(ctx context.Context) (int, error) {
	return r.length, r.pickErr
}

func (r *stubReferee) CheckGuess(ctx context.Context, letter rune) ([]int, error) {
	return r.positions, nil
}

func (r *stubReferee) RevealSecret(ctx context.Context) (string, error) {
	return "stub", nil
}

type ControllerSuite struct {
	suite.Suite
	storage    *memory.Storage
	clock      *mocks.MockClock
	random     *mocks.MockRandom
	controller *game.Controller
	ctx        context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	s.storage = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.controller = game.NewController(s.storage, s.clock, s.random, model.DefaultMaxGuesses, testutil.NopLogger())
	s.ctx = context.Background()
}

func (s *ControllerSuite) referee(secret string) *bot.ComputerPlayer {
	return bot.NewComputerPlayer(nil, s.random, bot.WithSecretWord(secret))
}

// Play tests

func (s *ControllerSuite) TestPlayWinsWhenEveryLetterIsGuessed() {
	s.random.QueueString("GAME00000001")
	guesser := &scriptedGuesser{letters: []rune{'c', 'a', 't'}}

	g, err := s.controller.Play(s.ctx, guesser, s.referee("cat"))
	s.Require().NoError(err)

	s.Equal(model.GameID("GAME00000001"), g.ID)
	s.Equal(model.GameStateWon, g.State)
	s.Equal("cat", g.Board.Pattern())
	s.Equal("cat", g.Secret)
	s.Len(g.Turns, 3)
	s.Equal(0, g.Misses())
	s.Equal(model.DefaultMaxGuesses, g.RemainingGuesses)
	s.Equal(3, guesser.length)
	s.Equal([]string{"___", "c__", "ca_"}, guesser.seenBoards)
}

func (s *ControllerSuite) TestPlayLosesAfterEightMisses() {
	guesser := &scriptedGuesser{letters: []rune{'q'}}
	referee := s.referee("zebra")

	g, err := s.controller.Play(s.ctx, guesser, referee)
	s.Require().NoError(err)

	s.Equal(model.GameStateLost, g.State)
	s.Len(g.Turns, 8)
	s.Equal(8, g.Misses())
	s.Equal(0, g.RemainingGuesses)
	s.Equal("zebra", g.Secret)
	s.Equal("_____", g.Board.Pattern())

	secret, err := referee.RevealSecret(s.ctx)
	s.Require().NoError(err)
	s.Equal("zebra", secret)
}

func (s *ControllerSuite) TestPlayHonoursConfiguredBudget() {
	controller := game.NewController(s.storage, s.clock, s.random, 3, testutil.NopLogger())
	g, err := controller.Play(s.ctx, &scriptedGuesser{letters: []rune{'q'}}, s.referee("zebra"))
	s.Require().NoError(err)

	s.Equal(model.GameStateLost, g.State)
	s.Len(g.Turns, 3)
	s.Equal(3, controller.MaxGuesses())
}

func (s *ControllerSuite) TestRepeatedHitCostsNothing() {
	guesser := &scriptedGuesser{letters: []rune{'c', 'c', 'a', 't'}}

	g, err := s.controller.Play(s.ctx, guesser, s.referee("cat"))
	s.Require().NoError(err)

	s.Equal(model.GameStateWon, g.State)
	s.Require().Len(g.Turns, 4)
	s.False(g.Turns[0].Miss)
	s.False(g.Turns[1].Miss)
	s.Equal([]int{0}, g.Turns[1].Positions)
	s.Equal(model.DefaultMaxGuesses, g.Turns[1].RemainingGuesses)
	s.Equal(model.DefaultMaxGuesses, g.RemainingGuesses)
}

func (s *ControllerSuite) TestRepeatedMissCostsAgain() {
	guesser := &scriptedGuesser{letters: []rune{'q', 'q', 'c', 'a', 't'}}

	g, err := s.controller.Play(s.ctx, guesser, s.referee("cat"))
	s.Require().NoError(err)

	s.Equal(model.GameStateWon, g.State)
	s.True(g.Turns[0].Miss)
	s.True(g.Turns[1].Miss)
	s.Equal(model.DefaultMaxGuesses-2, g.RemainingGuesses)
}

func (s *ControllerSuite) TestSameLetterReturnsSamePositions() {
	guesser := &scriptedGuesser{letters: []rune{'e', 'e', 'q'}}

	g, err := s.controller.Play(s.ctx, guesser, s.referee("zebra"))
	s.Require().NoError(err)

	s.Equal(g.Turns[0].Positions, g.Turns[1].Positions)
	s.Equal([][]int{{1}, {1}}, guesser.responses[:2])
}

func (s *ControllerSuite) TestUppercaseGuessIsNormalised() {
	guesser := &scriptedGuesser{letters: []rune{'C', 'A', 'T'}}

	g, err := s.controller.Play(s.ctx, guesser, s.referee("cat"))
	s.Require().NoError(err)
	s.Equal(model.GameStateWon, g.State)
}

func (s *ControllerSuite) TestComputerGuesserAgainstComputerReferee() {
	dict := []string{"cat", "car", "cab", "dog"}
	guesser := bot.NewComputerPlayer(dict, s.random)
	referee := bot.NewComputerPlayer(dict, s.random, bot.WithSecretWord("cab"))

	g, err := s.controller.Play(s.ctx, guesser, referee)
	s.Require().NoError(err)

	s.Equal(model.GameStateWon, g.State)
	s.Equal(0, g.Misses())
	s.Equal([]rune{'a', 'c', 'b'}, g.GuessedLetters())
	s.Equal([]string{"cab"}, guesser.Candidates())
}

func (s *ControllerSuite) TestComputerGuesserWithoutCandidatesStillTerminates() {
	// The secret is not in the guesser's dictionary
	guesser := bot.NewComputerPlayer([]string{"dog"}, s.random)
	referee := bot.NewComputerPlayer(nil, s.random, bot.WithSecretWord("zzz"))

	g, err := s.controller.Play(s.ctx, guesser, referee)
	s.Require().NoError(err)
	s.True(g.IsFinished())
	s.LessOrEqual(len(g.Turns), 26)

	letters := g.GuessedLetters()
	s.Len(letters, len(g.Turns), "a letter is never guessed twice")
}

// Observer tests

func (s *ControllerSuite) TestObserverReceivesLifecycleEvents() {
	var events []model.Event
	observer := func(e model.Event) { events = append(events, e) }

	_, err := s.controller.Play(s.ctx, &scriptedGuesser{letters: []rune{'x', 'o', 'n'}}, s.referee("on"), observer)
	s.Require().NoError(err)

	s.Require().Len(events, 5)
	s.Equal(model.EventGameStarted, events[0].Type)
	s.Equal(model.GameStartedPayload{SecretLength: 2, MaxGuesses: 8}, events[0].Payload)
	s.Equal(model.EventTurnComplete, events[1].Type)
	turn := events[1].Payload.(model.TurnCompletePayload)
	s.True(turn.Turn.Miss)
	s.Equal("__", turn.Board)
	s.Equal(model.EventGameWon, events[4].Type)
	s.Equal(model.GameFinishedPayload{State: model.GameStateWon, Secret: "on", Turns: 3, Misses: 1}, events[4].Payload)
}

func (s *ControllerSuite) TestObserverSeesLoss() {
	var last model.Event
	observer := func(e model.Event) { last = e }

	_, err := s.controller.Play(s.ctx, &scriptedGuesser{letters: []rune{'q'}}, s.referee("zebra"), observer)
	s.Require().NoError(err)
	s.Equal(model.EventGameLost, last.Type)
	s.Equal("zebra", last.Payload.(model.GameFinishedPayload).Secret)
}

// Error handling tests

func (s *ControllerSuite) TestInconsistentFeedbackIsRejected() {
	referee := &stubReferee{length: 3, positions: []int{7}}
	session, err := s.controller.StartGame(s.ctx, &scriptedGuesser{letters: []rune{'a'}}, referee)
	s.Require().NoError(err)

	_, err = session.TakeTurn(s.ctx)
	s.ErrorIs(err, model.ErrInconsistentFeedback)

	g := session.Game()
	s.Equal(model.GameStateInProgress, g.State)
	s.Empty(g.Turns)
	s.Equal("___", g.Board.Pattern())
}

func (s *ControllerSuite) TestConflictingLetterAtRevealedSlotIsRejected() {
	// The stub reports position 0 for every letter
	referee := &stubReferee{length: 2, positions: []int{0}}
	session, err := s.controller.StartGame(s.ctx, &scriptedGuesser{letters: []rune{'a', 'b'}}, referee)
	s.Require().NoError(err)

	_, err = session.TakeTurn(s.ctx)
	s.Require().NoError(err)

	_, err = session.TakeTurn(s.ctx)
	s.ErrorIs(err, model.ErrInconsistentFeedback)
	s.Equal("a_", session.Game().Board.Pattern())
}

func (s *ControllerSuite) TestInvalidLetterIsRejected() {
	session, err := s.controller.StartGame(s.ctx, &scriptedGuesser{letters: []rune{'7'}}, s.referee("cat"))
	s.Require().NoError(err)

	_, err = session.TakeTurn(s.ctx)
	s.ErrorIs(err, model.ErrInvalidLetter)
	s.Empty(session.Game().Turns)
}

func (s *ControllerSuite) TestGuesserErrorAbortsPlay() {
	guesserErr := errors.New("keyboard on fire")
	g, err := s.controller.Play(s.ctx, &scriptedGuesser{guessErr: guesserErr}, s.referee("cat"))

	s.ErrorIs(err, guesserErr)
	s.Require().NotNil(g)
	s.Equal(model.GameStateInProgress, g.State)
}

func (s *ControllerSuite) TestHandleResponseErrorStillFinishesGame() {
	handleErr := errors.New("display went away")
	guesser := &scriptedGuesser{letters: []rune{'a'}, handleErr: handleErr}
	s.random.QueueString("GAME00000001")

	g, err := s.controller.Play(s.ctx, guesser, s.referee("a"))
	s.ErrorIs(err, handleErr)
	s.Require().NotNil(g)
	s.Equal(model.GameStateWon, g.State)
	s.Len(g.Turns, 1)

	stored, err := s.controller.GetGame(s.ctx, "GAME00000001")
	s.Require().NoError(err)
	s.Equal(model.GameStateWon, stored.State)
	s.Equal("a", stored.Secret)
}

func (s *ControllerSuite) TestHandleResponseErrorSavesTurn() {
	handleErr := errors.New("display went away")
	guesser := &scriptedGuesser{letters: []rune{'c'}, handleErr: handleErr}
	s.random.QueueString("GAME00000001")

	session, err := s.controller.StartGame(s.ctx, guesser, s.referee("cat"))
	s.Require().NoError(err)

	turn, err := session.TakeTurn(s.ctx)
	s.ErrorIs(err, handleErr)
	s.Require().NotNil(turn)

	stored, err := s.controller.GetGame(s.ctx, "GAME00000001")
	s.Require().NoError(err)
	s.Equal(model.GameStateInProgress, stored.State)
	s.Len(stored.Turns, 1)
	s.Equal("c__", stored.Board.Pattern())
}

func (s *ControllerSuite) TestPickSecretErrorFailsStart() {
	_, err := s.controller.Play(s.ctx, &scriptedGuesser{letters: []rune{'a'}}, &stubReferee{pickErr: model.ErrEmptyDictionary})
	s.ErrorIs(err, model.ErrEmptyDictionary)
}

func (s *ControllerSuite) TestCancelledContextStopsPlay() {
	ctx, cancel := context.WithCancel(s.ctx)
	cancel()

	g, err := s.controller.Play(ctx, &scriptedGuesser{letters: []rune{'q'}}, s.referee("zebra"))
	s.ErrorIs(err, context.Canceled)
	s.Empty(g.Turns)
}

func (s *ControllerSuite) TestTakeTurnAfterFinishFails() {
	session, err := s.controller.StartGame(s.ctx, &scriptedGuesser{letters: []rune{'a'}}, s.referee("a"))
	s.Require().NoError(err)

	_, err = session.TakeTurn(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.GameStateWon, session.Game().State)

	_, err = session.TakeTurn(s.ctx)
	s.ErrorIs(err, model.ErrGameComplete)
}

func (s *ControllerSuite) TestZeroLengthWordIsWonImmediately() {
	g, err := s.controller.Play(s.ctx, &scriptedGuesser{letters: []rune{'a'}}, &stubReferee{length: 0})
	s.Require().NoError(err)
	s.Equal(model.GameStateWon, g.State)
	s.Empty(g.Turns)
}

// Storage tests

func (s *ControllerSuite) TestFinishedGameIsStored() {
	s.random.QueueString("GAME00000001", "GAME00000002")

	_, err := s.controller.Play(s.ctx, &scriptedGuesser{letters: []rune{'c', 'a', 't'}}, s.referee("cat"))
	s.Require().NoError(err)
	_, err = s.controller.Play(s.ctx, &scriptedGuesser{letters: []rune{'q'}}, s.referee("dog"))
	s.Require().NoError(err)

	stored, err := s.controller.GetGame(s.ctx, "GAME00000001")
	s.Require().NoError(err)
	s.Equal(model.GameStateWon, stored.State)
	s.False(stored.FinishedAt.IsZero())

	games, err := s.controller.ListGames(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(games, 2)
	s.Equal(model.GameStateLost, games[1].State)
	s.Equal("dog", games[1].Secret)
}

func (s *ControllerSuite) TestGetGameNotFound() {
	_, err := s.controller.GetGame(s.ctx, "missing")
	s.ErrorIs(err, model.ErrGameNotFound)
}
