package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/hangman-go/internal/config"
	"github.com/mcoot/hangman-go/internal/factory"
)

// Version is set at build time
var Version = "dev"

// env holds what every subcommand needs once the root has been set up
type env struct {
	flags  *globalFlags
	cfg    *config.Config
	app    *factory.App
	output *Output
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	e := &env{flags: &globalFlags{}}

	rootCmd := &cobra.Command{
		Use:   "hangman",
		Short: "Play hangman against the computer, or let it play itself",
		Long: `hangman plays the word guessing game in the terminal.

Either role can be taken by a person or by the computer. The computer
referee picks a random word from the dictionary; the computer guesser
narrows down the dictionary after every answer and guesses the letter
that appears most often among the remaining words.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return e.setup(cmd)
		},
		SilenceUsage: true,
	}

	// Global flags
	f := e.flags
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "YAML config file")
	pf.StringVar(&f.dictionary, "dictionary", "", "Word list, one word per line (env: HANGMAN_DICTIONARY)")
	pf.IntVar(&f.maxGuesses, "max-guesses", 0, "Wrong guesses allowed per game (env: HANGMAN_MAX_GUESSES)")
	pf.Uint64Var(&f.seed, "seed", 0, "Seed for reproducible games, 0 for random (env: HANGMAN_SEED)")
	pf.StringVarP(&f.output, "output", "o", "", "Output format: text, json (env: HANGMAN_OUTPUT)")
	pf.StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error (env: HANGMAN_LOG_LEVEL)")
	pf.StringVar(&f.logFormat, "log-format", "", "Log format: text, json (env: HANGMAN_LOG_FORMAT)")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "Verbose output (same as --log-level debug)")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd(e))
	rootCmd.AddCommand(newHintCmd(e))
	rootCmd.AddCommand(newBenchCmd(e))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		// No config or dictionary needed
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.Printf("hangman %s\n", Version)
			return nil
		},
	}
}
