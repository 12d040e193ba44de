package console

import (
	"context"
	"fmt"
	"io"

	"github.com/mcoot/hangman-go/internal/model"
)

// Guesser lets a person guess letters at a terminal
type Guesser struct {
	*prompter
	length int
	tried  map[rune]bool
}

// NewGuesser creates a console guesser reading from in and writing to out
func NewGuesser(in *Input, out io.Writer, opts ...Option) *Guesser {
	return &Guesser{
		prompter: newPrompter(in, out, "console-guesser", opts),
		tried:    make(map[rune]bool),
	}
}

// RegisterSecretLength announces the word length and forgets earlier guesses
func (g *Guesser) RegisterSecretLength(ctx context.Context, length int) error {
	if length < 0 {
		return fmt.Errorf("%w: %d", model.ErrInvalidLength, length)
	}
	g.length = length
	g.tried = make(map[rune]bool)
	g.printf("The secret word is %d letters long.\n", length)
	return nil
}

// Guess shows the board and reads a letter that has not been tried yet
func (g *Guesser) Guess(ctx context.Context, board *model.Board, remainingGuesses int) (rune, error) {
	g.printf("\nGuesses left: %d\n%s\n", remainingGuesses, board)

	var letter rune
	err := g.ask(ctx, "Guess a letter: ", func(line string) error {
		l, err := ParseLetter(line)
		if err != nil {
			return err
		}
		if g.tried[l] {
			return fmt.Errorf("you already guessed %q", l)
		}
		letter = l
		return nil
	})
	if err != nil {
		return 0, err
	}

	g.tried[letter] = true
	return letter, nil
}

// HandleResponse reports where the letter was found
func (g *Guesser) HandleResponse(ctx context.Context, letter rune, positions []int) error {
	if len(positions) == 0 {
		g.printf("No %q in the word.\n", letter)
		return nil
	}
	g.printf("Found %q at positions %s.\n", letter, formatPositions(positions))
	return nil
}
