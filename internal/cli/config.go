package cli

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mcoot/hangman-go/internal/config"
	"github.com/mcoot/hangman-go/internal/factory"
)

// globalFlags holds the persistent flag values. They only override the
// loaded config when set on the command line.
type globalFlags struct {
	configPath string
	dictionary string
	maxGuesses int
	seed       uint64
	output     string
	logLevel   string
	logFormat  string
	verbose    bool
}

// apply copies every flag the user set over cfg
func (f *globalFlags) apply(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("dictionary") {
		cfg.Dictionary = f.dictionary
	}
	if flags.Changed("max-guesses") {
		cfg.MaxGuesses = f.maxGuesses
	}
	if flags.Changed("seed") {
		cfg.Seed = f.seed
	}
	if flags.Changed("output") {
		cfg.Output = f.output
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = f.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = f.logFormat
	}
	if f.verbose {
		cfg.Log.Level = "debug"
	}
}

// setup loads configuration, builds the logger and wires the app
func (e *env) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(e.flags.configPath)
	if err != nil {
		return err
	}
	e.flags.apply(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	app, err := factory.New(cmd.Context(), factory.Config{
		DictionaryPath: cfg.Dictionary,
		MaxGuesses:     cfg.MaxGuesses,
		Seed:           cfg.Seed,
		Logger:         logger,
	})
	if err != nil {
		return err
	}

	e.cfg = cfg
	e.app = app
	e.output = NewOutput(cfg.Output, cmd.OutOrStdout())
	return nil
}

// newLogger builds the slog logger described by cfg, writing to w
func newLogger(cfg *config.Config, w io.Writer) (*slog.Logger, error) {
	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Log.Format == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler), nil
}
