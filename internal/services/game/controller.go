package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"unicode"

	"github.com/mcoot/hangman-go/internal/dependencies/clock"
	"github.com/mcoot/hangman-go/internal/dependencies/random"
	"github.com/mcoot/hangman-go/internal/model"
	"github.com/mcoot/hangman-go/internal/storage"
)

const (
	// GameIDAlphabet is the character set for generating game IDs
	GameIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// GameIDLength is the length of generated game IDs
	GameIDLength = 12
)

// Controller runs the hangman state machine between a guesser and a referee
type Controller struct {
	storage    storage.Storage
	clock      clock.Clock
	random     random.Random
	maxGuesses int
	logger     *slog.Logger
}

// NewController creates a new GameController. maxGuesses <= 0 uses
// model.DefaultMaxGuesses.
func NewController(
	storage storage.Storage,
	clock clock.Clock,
	random random.Random,
	maxGuesses int,
	logger *slog.Logger,
) *Controller {
	if maxGuesses <= 0 {
		maxGuesses = model.DefaultMaxGuesses
	}
	return &Controller{
		storage:    storage,
		clock:      clock,
		random:     random,
		maxGuesses: maxGuesses,
		logger:     logger.With(slog.String("component", "game-controller")),
	}
}

// MaxGuesses returns the miss budget each game starts with
func (c *Controller) MaxGuesses() int {
	return c.maxGuesses
}

// Session is a game in progress between one guesser and one referee
type Session struct {
	controller *Controller
	game       *model.Game
	guesser    Guesser
	referee    Referee
	observers  []Observer
}

// Play runs a full game and returns the finished record. On error the
// partially played game is returned alongside it.
func (c *Controller) Play(ctx context.Context, guesser Guesser, referee Referee, observers ...Observer) (*model.Game, error) {
	session, err := c.StartGame(ctx, guesser, referee, observers...)
	if err != nil {
		if session != nil {
			return session.Game(), err
		}
		return nil, err
	}

	for !session.game.IsFinished() {
		if err := ctx.Err(); err != nil {
			return session.Game(), err
		}
		if _, err := session.TakeTurn(ctx); err != nil {
			return session.Game(), err
		}
	}
	return session.Game(), nil
}

// StartGame asks the referee for a secret word and moves the game from
// AwaitingSecret to InProgress
func (c *Controller) StartGame(ctx context.Context, guesser Guesser, referee Referee, observers ...Observer) (*Session, error) {
	game := model.NewGame(
		model.GameID(c.random.String(GameIDLength, GameIDAlphabet)),
		c.maxGuesses,
		c.clock.Now(),
	)
	session := &Session{
		controller: c,
		game:       game,
		guesser:    guesser,
		referee:    referee,
		observers:  observers,
	}

	length, err := referee.PickSecretWord(ctx)
	if err != nil {
		return nil, fmt.Errorf("pick secret word: %w", err)
	}
	if length < 0 {
		return nil, fmt.Errorf("%w: referee picked length %d", model.ErrInvalidLength, length)
	}
	if err := guesser.RegisterSecretLength(ctx, length); err != nil {
		return nil, fmt.Errorf("register secret length: %w", err)
	}

	game.Board = model.NewBoard(length)
	game.State = model.GameStateInProgress
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	c.logger.Info("game started",
		slog.String("game_id", string(game.ID)),
		slog.Int("secret_length", length),
		slog.Int("max_guesses", game.MaxGuesses),
	)
	session.emit(model.EventGameStarted, model.GameStartedPayload{
		SecretLength: length,
		MaxGuesses:   game.MaxGuesses,
	})

	// A zero-length word has nothing to reveal
	if game.Board.IsComplete() {
		if err := session.finish(ctx, model.GameStateWon); err != nil {
			return session, err
		}
	}

	return session, nil
}

// Game returns a copy of the session's game record
func (s *Session) Game() *model.Game {
	return s.game.Clone()
}

// TakeTurn plays one guess: the guesser proposes a letter, the referee
// answers, the board is updated and the budget drops by one if the letter
// is not in the word. A guess or answer rejected with an error leaves the game
// unchanged.
func (s *Session) TakeTurn(ctx context.Context) (*model.Turn, error) {
	game := s.game
	if game.IsFinished() {
		return nil, model.ErrGameComplete
	}
	if game.RemainingGuesses <= 0 {
		return nil, s.finish(ctx, model.GameStateLost)
	}

	letter, err := s.guesser.Guess(ctx, game.Board.Clone(), game.RemainingGuesses)
	if err != nil {
		return nil, fmt.Errorf("guess: %w", err)
	}
	letter = unicode.ToLower(letter)
	if letter < 'a' || letter > 'z' {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidLetter, letter)
	}

	positions, err := s.referee.CheckGuess(ctx, letter)
	if err != nil {
		return nil, fmt.Errorf("check guess: %w", err)
	}
	positions = normalisePositions(positions)

	if err := game.Board.Reveal(letter, positions); err != nil {
		s.controller.logger.Warn("referee gave inconsistent feedback",
			slog.String("game_id", string(game.ID)),
			slog.String("letter", string(letter)),
			slog.Any("positions", positions),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	miss := len(positions) == 0
	if miss {
		game.RemainingGuesses--
	}
	turn := model.Turn{
		Number:           len(game.Turns) + 1,
		Letter:           letter,
		Positions:        positions,
		Miss:             miss,
		RemainingGuesses: game.RemainingGuesses,
	}
	game.Turns = append(game.Turns, turn)

	if err := s.guesser.HandleResponse(ctx, letter, slices.Clone(positions)); err != nil {
		return &turn, errors.Join(fmt.Errorf("handle response: %w", err), s.settle(ctx))
	}

	s.controller.logger.Debug("turn complete",
		slog.String("game_id", string(game.ID)),
		slog.Int("turn", turn.Number),
		slog.String("letter", string(letter)),
		slog.Bool("miss", miss),
		slog.String("board", game.Board.Pattern()),
		slog.Int("remaining_guesses", game.RemainingGuesses),
	)
	s.emit(model.EventTurnComplete, model.TurnCompletePayload{
		Turn:  turn,
		Board: game.Board.Pattern(),
	})

	return &turn, s.settle(ctx)
}

// settle finishes the game if the last turn decided it and saves it otherwise
func (s *Session) settle(ctx context.Context) error {
	switch {
	case s.game.Board.IsComplete():
		return s.finish(ctx, model.GameStateWon)
	case s.game.RemainingGuesses <= 0:
		return s.finish(ctx, model.GameStateLost)
	default:
		return s.controller.storage.SaveGame(ctx, s.game)
	}
}

// finish moves the game into a terminal state, records the secret and
// saves the final record
func (s *Session) finish(ctx context.Context, state model.GameState) error {
	game := s.game
	game.State = state
	game.FinishedAt = s.controller.clock.Now()

	if state == model.GameStateWon {
		game.Secret = game.Board.Pattern()
	} else {
		secret, err := s.referee.RevealSecret(ctx)
		if err != nil {
			return fmt.Errorf("reveal secret: %w", err)
		}
		game.Secret = secret
	}

	if err := s.controller.storage.SaveGame(ctx, game); err != nil {
		return err
	}

	eventType := model.EventGameWon
	if state == model.GameStateLost {
		eventType = model.EventGameLost
	}
	s.controller.logger.Info("game finished",
		slog.String("game_id", string(game.ID)),
		slog.String("state", string(state)),
		slog.String("secret", game.Secret),
		slog.Int("turns", len(game.Turns)),
		slog.Int("misses", game.Misses()),
	)
	s.emit(eventType, model.GameFinishedPayload{
		State:  state,
		Secret: game.Secret,
		Turns:  len(game.Turns),
		Misses: game.Misses(),
	})
	return nil
}

func (s *Session) emit(eventType model.EventType, payload any) {
	if len(s.observers) == 0 {
		return
	}
	event := model.Event{
		Type:      eventType,
		Timestamp: s.controller.clock.Now(),
		GameID:    s.game.ID,
		Payload:   payload,
	}
	for _, obs := range s.observers {
		obs(event)
	}
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// ListGames returns all recorded games
func (c *Controller) ListGames(ctx context.Context) ([]*model.Game, error) {
	return c.storage.ListGames(ctx)
}

// normalisePositions sorts positions and drops duplicates
func normalisePositions(positions []int) []int {
	out := slices.Clone(positions)
	if out == nil {
		out = []int{}
	}
	slices.Sort(out)
	return slices.Compact(out)
}
