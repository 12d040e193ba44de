package game

import (
	"context"

	"github.com/mcoot/hangman-go/internal/model"
)

// Referee holds the secret word and answers guesses
type Referee interface {
	// PickSecretWord selects a secret word and returns only its length
	PickSecretWord(ctx context.Context) (int, error)
	// CheckGuess returns every 0-based position of letter in the secret word.
	// It must return the same positions every time for the same letter.
	CheckGuess(ctx context.Context, letter rune) ([]int, error)
	// RevealSecret returns the full secret word once the game has ended
	RevealSecret(ctx context.Context) (string, error)
}

// Guesser proposes letters and learns from the referee's answers
type Guesser interface {
	// RegisterSecretLength tells the guesser the board size before play begins
	RegisterSecretLength(ctx context.Context, length int) error
	// Guess proposes the next letter. The board is a copy.
	Guess(ctx context.Context, board *model.Board, remainingGuesses int) (rune, error)
	// HandleResponse reports the positions revealed by letter
	HandleResponse(ctx context.Context, letter rune, positions []int) error
}

// Observer receives events as a game progresses
type Observer func(event model.Event)
