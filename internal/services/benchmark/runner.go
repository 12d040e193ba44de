package benchmark

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mcoot/hangman-go/internal/dependencies/clock"
	"github.com/mcoot/hangman-go/internal/model"
	"github.com/mcoot/hangman-go/internal/services/bot"
	"github.com/mcoot/hangman-go/internal/services/game"
	"github.com/mcoot/hangman-go/internal/services/stats"
)

// DefaultParallelism is how many games run at once when a request does not say
const DefaultParallelism = 4

// Request selects the secret words to benchmark the computer guesser on
type Request struct {
	// Words are used as secret words when set; otherwise the dictionary is
	// used, restricted to Length when Length > 0
	Words  []string
	Length int
	// Limit caps the number of games; 0 plays every selected word
	Limit       int
	Strategy    string
	Parallelism int
}

// Result is the outcome of one computer-vs-computer game
type Result struct {
	Word    string
	GameID  model.GameID
	State   model.GameState
	Turns   int
	Misses  int
	Guesses string // Letters in the order they were guessed
}

// Report holds every game's result in request order plus the totals
type Report struct {
	Strategy string
	Results  []Result
	Summary  model.Summary
	Elapsed  time.Duration
}

// Runner plays the computer guesser against a computer referee for many
// secret words in parallel. Each game gets its own pair of players.
type Runner struct {
	controller *game.Controller
	bots       *bot.Service
	words      bot.WordSource
	stats      *stats.Service
	clock      clock.Clock
	logger     *slog.Logger
}

// NewRunner creates a new benchmark Runner
func NewRunner(
	controller *game.Controller,
	bots *bot.Service,
	words bot.WordSource,
	stats *stats.Service,
	clock clock.Clock,
	logger *slog.Logger,
) *Runner {
	return &Runner{
		controller: controller,
		bots:       bots,
		words:      words,
		stats:      stats,
		clock:      clock,
		logger:     logger.With(slog.String("component", "benchmark-runner")),
	}
}

// SecretWords returns the words a request would play, in order
func (r *Runner) SecretWords(req Request) []string {
	words := req.Words
	if len(words) == 0 {
		words = r.words.Words()
		if req.Length > 0 {
			words = bot.RestrictToLength(words, req.Length)
		}
	}
	if req.Limit > 0 && len(words) > req.Limit {
		words = words[:req.Limit]
	}
	return words
}

// Run plays one game per secret word. The first failing game cancels the
// rest and its error is returned.
func (r *Runner) Run(ctx context.Context, req Request) (*Report, error) {
	strategy := req.Strategy
	if strategy == "" {
		strategy = model.DefaultBotStrategy
	}
	if _, err := r.bots.Strategy(strategy); err != nil {
		return nil, err
	}
	words := r.SecretWords(req)
	if len(words) == 0 {
		return nil, model.ErrEmptyDictionary
	}

	parallelism := req.Parallelism
	if parallelism <= 0 {
		parallelism = DefaultParallelism
	}

	start := r.clock.Now()
	r.logger.Info("benchmark started",
		slog.Int("games", len(words)),
		slog.String("strategy", strategy),
		slog.Int("parallelism", parallelism),
	)

	results := make([]Result, len(words))
	games := make([]*model.Game, len(words))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(parallelism)
	for i, word := range words {
		eg.Go(func() error {
			g, err := r.playOne(egCtx, strategy, word)
			if err != nil {
				return fmt.Errorf("benchmark %q: %w", word, err)
			}
			games[i] = g
			results[i] = Result{
				Word:    word,
				GameID:  g.ID,
				State:   g.State,
				Turns:   len(g.Turns),
				Misses:  g.Misses(),
				Guesses: string(g.GuessedLetters()),
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	report := &Report{
		Strategy: strategy,
		Results:  results,
		Summary:  r.stats.Summarize(games),
		Elapsed:  r.clock.Now().Sub(start),
	}
	r.logger.Info("benchmark finished",
		slog.Int("played", report.Summary.Played),
		slog.Int("won", report.Summary.Won),
		slog.Float64("win_rate", report.Summary.WinRate),
	)
	return report, nil
}

func (r *Runner) playOne(ctx context.Context, strategy, word string) (*model.Game, error) {
	guesser, err := r.bots.NewComputerPlayer(strategy)
	if err != nil {
		return nil, err
	}
	referee, err := r.bots.NewComputerPlayer(strategy, bot.WithSecretWord(word))
	if err != nil {
		return nil, err
	}
	return r.controller.Play(ctx, guesser, referee)
}
