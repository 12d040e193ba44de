package factory

import (
	"context"
	"io"
	"log/slog"

	"github.com/mcoot/hangman-go/internal/dependencies/clock"
	"github.com/mcoot/hangman-go/internal/dependencies/random"
	"github.com/mcoot/hangman-go/internal/services/benchmark"
	"github.com/mcoot/hangman-go/internal/services/bot"
	"github.com/mcoot/hangman-go/internal/services/dictionary"
	"github.com/mcoot/hangman-go/internal/services/game"
	"github.com/mcoot/hangman-go/internal/services/stats"
	"github.com/mcoot/hangman-go/internal/storage"
	"github.com/mcoot/hangman-go/internal/storage/memory"
)

// App contains all wired application components
type App struct {
	// Storage
	Storage storage.Storage

	// External dependencies
	Clock  clock.Clock
	Random random.Random
	Logger *slog.Logger

	// Services
	DictionaryService *dictionary.Service
	BotService        *bot.Service
	GameController    *game.Controller
	StatsService      *stats.Service
	BenchmarkRunner   *benchmark.Runner
}

// Config holds configuration for the application factory
type Config struct {
	// DictionaryPath is the path to the word list (optional)
	// If empty, the built-in list is loaded
	DictionaryPath string
	// MaxGuesses is the miss budget per game
	// If zero, defaults to model.DefaultMaxGuesses
	MaxGuesses int
	// Seed makes random choices reproducible
	// If zero, crypto randomness is used
	Seed uint64
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired and the
// dictionary loaded
func New(ctx context.Context, cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create external dependencies
	clk := clock.New()
	var rnd random.Random
	if cfg.Seed != 0 {
		rnd = random.NewSeeded(cfg.Seed)
	} else {
		rnd = random.New()
	}

	app := newWithDependencies(memory.New(), clk, rnd, cfg.MaxGuesses, logger)

	if err := app.LoadDictionary(ctx, cfg.DictionaryPath); err != nil {
		return nil, err
	}
	return app, nil
}

// LoadDictionary loads the word list at path, or the built-in list when
// path is empty
func (a *App) LoadDictionary(ctx context.Context, path string) error {
	if path == "" {
		return a.DictionaryService.LoadDefault(ctx)
	}
	return a.DictionaryService.LoadFromFile(ctx, path)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, rnd random.Random, maxGuesses int, logger *slog.Logger) *App {
	// Create services
	dictService := dictionary.New(store, logger)
	botService := bot.NewService(dictService, rnd, logger)
	gameController := game.NewController(store, clk, rnd, maxGuesses, logger)
	statsService := stats.New(store, logger)
	benchmarkRunner := benchmark.NewRunner(gameController, botService, dictService, statsService, clk, logger)

	return &App{
		Storage:           store,
		Clock:             clk,
		Random:            rnd,
		Logger:            logger,
		DictionaryService: dictService,
		BotService:        botService,
		GameController:    gameController,
		StatsService:      statsService,
		BenchmarkRunner:   benchmarkRunner,
	}
}
