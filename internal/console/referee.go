package console

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mcoot/hangman-go/internal/model"
)

// Referee lets a person keep the secret word and answer guesses
type Referee struct {
	*prompter
	length    int
	picked    bool
	confirmed map[int]rune
}

// NewReferee creates a console referee reading from in and writing to out
func NewReferee(in *Input, out io.Writer, opts ...Option) *Referee {
	return &Referee{
		prompter: newPrompter(in, out, "console-referee", opts),
	}
}

// PickSecretWord asks the person how long their word is
func (r *Referee) PickSecretWord(ctx context.Context) (int, error) {
	var result LengthResult
	err := r.ask(ctx, "Think of a secret word. How long is it? ", func(line string) error {
		result = ParseLength(line)
		return result.Err
	})
	if err != nil {
		return 0, err
	}

	r.length = result.Length
	r.picked = true
	r.confirmed = make(map[int]rune)
	return r.length, nil
}

// CheckGuess asks which positions hold the guessed letter. Positions already
// confirmed for a different letter are refused and the question is asked again.
func (r *Referee) CheckGuess(ctx context.Context, letter rune) ([]int, error) {
	if !r.picked {
		return nil, model.ErrNoSecretWord
	}

	r.printf("The guesser guessed %q.\n", letter)
	var positions []int
	prompt := fmt.Sprintf("Which positions (0-%d, comma separated, empty for none)? ", r.length-1)
	err := r.ask(ctx, prompt, func(line string) error {
		p, err := ParsePositions(line, r.length)
		if err != nil {
			return err
		}
		for _, i := range p {
			if held, ok := r.confirmed[i]; ok && held != letter {
				return fmt.Errorf("position %d already holds %q", i, held)
			}
		}
		positions = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, i := range positions {
		r.confirmed[i] = letter
	}
	return positions, nil
}

// RevealSecret asks the person for the word they were thinking of
func (r *Referee) RevealSecret(ctx context.Context) (string, error) {
	if !r.picked {
		return "", model.ErrNoSecretWord
	}

	var word string
	err := r.ask(ctx, "What word were you thinking of? ", func(line string) error {
		line = strings.ToLower(line)
		if len(line) != r.length {
			return fmt.Errorf("that word has %d letters, you said %d", len(line), r.length)
		}
		for i := 0; i < len(line); i++ {
			if line[i] < 'a' || line[i] > 'z' {
				return errors.New("use letters a-z only")
			}
		}
		word = line
		return nil
	})
	if err != nil {
		return "", err
	}
	return word, nil
}
