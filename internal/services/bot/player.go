package bot

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/mcoot/hangman-go/internal/dependencies/random"
	"github.com/mcoot/hangman-go/internal/model"
)

// ComputerPlayer is an automated player that can act as both referee and
// guesser. The two roles keep separate state: the referee side only holds
// the secret word, the guesser side only holds its candidate set.
type ComputerPlayer struct {
	dictionary []string
	strategy   Strategy
	random     random.Random
	logger     *slog.Logger

	// Referee state
	secretLength int // requested length for PickSecretWord, 0 means any
	secret       string

	// Guesser state
	candidates []string
	tried      map[rune]bool
}

// Option configures a ComputerPlayer
type Option func(*ComputerPlayer)

// WithStrategy sets the guessing strategy (default FrequencyStrategy)
func WithStrategy(strategy Strategy) Option {
	return func(p *ComputerPlayer) {
		p.strategy = strategy
	}
}

// WithSecretWord fixes the word PickSecretWord will choose
func WithSecretWord(word string) Option {
	return func(p *ComputerPlayer) {
		p.secret = strings.ToLower(strings.TrimSpace(word))
	}
}

// WithSecretLength restricts PickSecretWord to words of the given length
func WithSecretLength(length int) Option {
	return func(p *ComputerPlayer) {
		p.secretLength = length
	}
}

// WithLogger sets the player's logger
func WithLogger(logger *slog.Logger) Option {
	return func(p *ComputerPlayer) {
		p.logger = logger
	}
}

// NewComputerPlayer creates a computer player over the given dictionary.
// The dictionary is treated as read-only and may be shared between players.
func NewComputerPlayer(dictionary []string, rnd random.Random, opts ...Option) *ComputerPlayer {
	p := &ComputerPlayer{
		dictionary: dictionary,
		random:     rnd,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		tried:      make(map[rune]bool),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.strategy == nil {
		p.strategy = NewFrequencyStrategy(rnd)
	}
	return p
}

// Referee role

// PickSecretWord chooses the secret word and returns only its length
func (p *ComputerPlayer) PickSecretWord(ctx context.Context) (int, error) {
	if p.secret != "" {
		return len(p.secret), nil
	}

	pool := p.dictionary
	if p.secretLength > 0 {
		pool = RestrictToLength(p.dictionary, p.secretLength)
	}
	if len(pool) == 0 {
		if p.secretLength > 0 {
			return 0, fmt.Errorf("%w: no words of length %d", model.ErrEmptyDictionary, p.secretLength)
		}
		return 0, model.ErrEmptyDictionary
	}

	p.secret = pool[p.random.Intn(len(pool))]
	p.logger.Debug("secret word picked", slog.Int("length", len(p.secret)))
	return len(p.secret), nil
}

// CheckGuess returns every 0-based index of letter in the secret word.
// An empty result is a miss.
func (p *ComputerPlayer) CheckGuess(ctx context.Context, letter rune) ([]int, error) {
	if p.secret == "" {
		return nil, model.ErrNoSecretWord
	}
	positions := []int{}
	for i := 0; i < len(p.secret); i++ {
		if rune(p.secret[i]) == letter {
			positions = append(positions, i)
		}
	}
	return positions, nil
}

// RevealSecret returns the full secret word
func (p *ComputerPlayer) RevealSecret(ctx context.Context) (string, error) {
	if p.secret == "" {
		return "", model.ErrNoSecretWord
	}
	return p.secret, nil
}

// Guesser role

// RegisterSecretLength seeds the candidate set with the dictionary words of
// the given length
func (p *ComputerPlayer) RegisterSecretLength(ctx context.Context, length int) error {
	if length < 0 {
		return fmt.Errorf("%w: %d", model.ErrInvalidLength, length)
	}
	p.candidates = RestrictToLength(p.dictionary, length)
	p.tried = make(map[rune]bool)
	p.logger.Debug("candidates seeded",
		slog.Int("length", length),
		slog.Int("candidates", len(p.candidates)),
	)
	return nil
}

// Guess proposes the next letter using the configured strategy
func (p *ComputerPlayer) Guess(ctx context.Context, board *model.Board, remainingGuesses int) (rune, error) {
	letter := p.strategy.ChooseLetter(board, p.candidates, p.tried)
	p.logger.Debug("guess chosen",
		slog.String("letter", string(letter)),
		slog.String("board", board.Pattern()),
		slog.Int("candidates", len(p.candidates)),
		slog.Int("remaining_guesses", remainingGuesses),
	)
	return letter, nil
}

// HandleResponse narrows the candidate set with the referee's answer
func (p *ComputerPlayer) HandleResponse(ctx context.Context, letter rune, positions []int) error {
	p.tried[letter] = true
	before := len(p.candidates)
	p.candidates = FilterCandidates(p.candidates, letter, positions)
	if len(p.candidates) == 0 && before > 0 {
		p.logger.Debug("candidate set exhausted", slog.String("letter", string(letter)))
	}
	return nil
}

// Candidates returns a copy of the current candidate set
func (p *ComputerPlayer) Candidates() []string {
	result := make([]string, len(p.candidates))
	copy(result, p.candidates)
	return result
}
