package bot

import (
	"github.com/mcoot/hangman-go/internal/dependencies/random"
	"github.com/mcoot/hangman-go/internal/model"
)

// RandomStrategy picks a random letter that has not been tried yet
type RandomStrategy struct {
	random random.Random
}

// NewRandomStrategy creates a new RandomStrategy
func NewRandomStrategy(rnd random.Random) *RandomStrategy {
	return &RandomStrategy{random: rnd}
}

// ChooseLetter ignores the board and candidates
func (s *RandomStrategy) ChooseLetter(board *model.Board, candidates []string, tried map[rune]bool) rune {
	return FallbackLetter(tried, s.random)
}
