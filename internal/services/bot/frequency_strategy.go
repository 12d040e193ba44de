package bot

import (
	"github.com/mcoot/hangman-go/internal/dependencies/random"
	"github.com/mcoot/hangman-go/internal/model"
)

// FrequencyStrategy guesses the letter that would reveal the most
// (candidate, position) pairs, falling back to a random untried letter
// when the candidate set gives no information
type FrequencyStrategy struct {
	random random.Random
}

// NewFrequencyStrategy creates a new FrequencyStrategy
func NewFrequencyStrategy(rnd random.Random) *FrequencyStrategy {
	return &FrequencyStrategy{random: rnd}
}

func (s *FrequencyStrategy) ChooseLetter(board *model.Board, candidates []string, tried map[rune]bool) rune {
	return SelectBestLetter(board, candidates, tried, s.random)
}
