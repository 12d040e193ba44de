package bot

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/mcoot/hangman-go/internal/dependencies/random"
	"github.com/mcoot/hangman-go/internal/model"
)

// WordSource supplies the dictionary computer players draw from
type WordSource interface {
	Words() []string
}

// Hint describes the candidate words and letter scores for a board
type Hint struct {
	Pattern    string
	Candidates []string
	Scores     []LetterScore // Best first, untried letters only
	Best       rune          // Letter SelectBestLetter would guess
}

// Service creates computer players and answers hint queries
type Service struct {
	words      WordSource
	strategies map[string]Strategy
	random     random.Random
	logger     *slog.Logger
}

// NewService creates a new bot Service with the built-in strategies
func NewService(words WordSource, rnd random.Random, logger *slog.Logger) *Service {
	return &Service{
		words: words,
		strategies: map[string]Strategy{
			model.BotStrategyFrequency: NewFrequencyStrategy(rnd),
			model.BotStrategyRandom:    NewRandomStrategy(rnd),
		},
		random: rnd,
		logger: logger.With(slog.String("component", "bot-service")),
	}
}

// Strategy returns the named strategy
func (s *Service) Strategy(name string) (Strategy, error) {
	if name == "" {
		name = model.DefaultBotStrategy
	}
	st, ok := s.strategies[name]
	if !ok {
		return nil, fmt.Errorf("unknown bot strategy: %s", name)
	}
	return st, nil
}

// NewComputerPlayer creates a computer player using the named strategy.
// Extra options are applied after the strategy and logger.
func (s *Service) NewComputerPlayer(strategy string, opts ...Option) (*ComputerPlayer, error) {
	st, err := s.Strategy(strategy)
	if err != nil {
		return nil, err
	}

	all := append([]Option{
		WithStrategy(st),
		WithLogger(s.logger.With(slog.String("strategy", strategy))),
	}, opts...)
	return NewComputerPlayer(s.words.Words(), s.random, all...), nil
}

// Hint filters the dictionary down to words matching board and avoiding
// the tried letters that are not on the board, then ranks letters
func (s *Service) Hint(board *model.Board, tried []rune) *Hint {
	triedSet := make(map[rune]bool, len(tried))
	for _, r := range tried {
		triedSet[r] = true
	}

	candidates := FilterByBoard(s.words.Words(), board, tried)

	var scores []LetterScore
	for _, ls := range RankLetters(ScoreLetters(board, candidates)) {
		if !triedSet[ls.Letter] && !slices.Contains(board.Slots, ls.Letter) {
			scores = append(scores, ls)
		}
	}

	for _, r := range board.Slots {
		if r != model.Unrevealed {
			triedSet[r] = true
		}
	}

	s.logger.Debug("hint computed",
		slog.String("pattern", board.Pattern()),
		slog.Int("candidates", len(candidates)),
	)

	return &Hint{
		Pattern:    board.Pattern(),
		Candidates: candidates,
		Scores:     scores,
		Best:       SelectBestLetter(board, candidates, triedSet, s.random),
	}
}
