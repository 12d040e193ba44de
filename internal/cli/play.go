package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/hangman-go/internal/console"
	"github.com/mcoot/hangman-go/internal/model"
	"github.com/mcoot/hangman-go/internal/services/bot"
	"github.com/mcoot/hangman-go/internal/services/game"
)

type playFlags struct {
	guesser  string
	referee  string
	length   int
	secret   string
	rounds   int
	strategy string
}

func newPlayCmd(e *env) *cobra.Command {
	f := &playFlags{}

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one or more games",
		Long: `Play hangman. By default you guess and the computer picks the word.

Use --referee human to think of a word yourself and answer the computer's
guesses with the 0-based positions of each letter, comma separated.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, e, f)
		},
	}

	cmd.Flags().StringVar(&f.guesser, "guesser", string(model.PlayerKindHuman), "Who guesses: human, computer")
	cmd.Flags().StringVar(&f.referee, "referee", string(model.PlayerKindComputer), "Who picks the word: human, computer")
	cmd.Flags().IntVar(&f.length, "length", 0, "Length of the computer's secret word, 0 for any")
	cmd.Flags().StringVar(&f.secret, "secret", "", "Secret word for the computer referee")
	cmd.Flags().IntVar(&f.rounds, "rounds", 1, "Number of games to play")
	cmd.Flags().StringVar(&f.strategy, "strategy", "", "Computer guesser strategy: frequency, random (default from config)")

	return cmd
}

func runPlay(cmd *cobra.Command, e *env, f *playFlags) error {
	guesserKind, err := model.ParsePlayerKind(f.guesser)
	if err != nil {
		return err
	}
	refereeKind, err := model.ParsePlayerKind(f.referee)
	if err != nil {
		return err
	}
	if f.rounds < 1 {
		return fmt.Errorf("rounds must be at least 1, got %d", f.rounds)
	}
	if f.secret != "" {
		if _, err := model.ParsePattern(f.secret); err != nil || strings.ContainsAny(f.secret, "_.") {
			return fmt.Errorf("%w: secret must be letters a-z only", model.ErrInvalidLetter)
		}
	}
	strategy := f.strategy
	if strategy == "" {
		strategy = e.cfg.Strategy
	}

	// Prompts go to stderr when stdout carries JSON
	prompts := cmd.OutOrStdout()
	if e.output.IsJSON() {
		prompts = cmd.ErrOrStderr()
	}
	consoleOpts := []console.Option{
		console.WithMaxAttempts(e.cfg.Console.MaxAttempts),
		console.WithLogger(e.app.Logger),
	}
	stdin := console.NewInput(cmd.InOrStdin())

	result := PlayResult{}
	var games []*model.Game
	for round := 1; round <= f.rounds; round++ {
		var guesser game.Guesser
		var referee game.Referee

		switch guesserKind {
		case model.PlayerKindHuman:
			guesser = console.NewGuesser(stdin, prompts, consoleOpts...)
		default:
			guesser, err = e.app.BotService.NewComputerPlayer(strategy)
			if err != nil {
				return err
			}
		}

		switch refereeKind {
		case model.PlayerKindHuman:
			referee = console.NewReferee(stdin, prompts, consoleOpts...)
		default:
			var opts []bot.Option
			if f.secret != "" {
				opts = append(opts, bot.WithSecretWord(f.secret))
			}
			if f.length > 0 {
				opts = append(opts, bot.WithSecretLength(f.length))
			}
			referee, err = e.app.BotService.NewComputerPlayer(strategy, opts...)
			if err != nil {
				return err
			}
		}

		var observers []game.Observer
		if guesserKind == model.PlayerKindComputer && !e.output.IsJSON() {
			observers = append(observers, progressObserver(prompts))
		}

		g, err := e.app.GameController.Play(cmd.Context(), guesser, referee, observers...)
		if err != nil {
			return err
		}
		games = append(games, g)
		result.Games = append(result.Games, newGameResult(g))
	}

	if len(games) > 1 {
		summary := newSummaryResult(e.app.StatsService.Summarize(games))
		result.Summary = &summary
	}
	if e.output.IsJSON() || len(result.Games) > 1 {
		e.output.Print(result)
	} else {
		e.output.Print(result.Games[0])
	}
	return nil
}

// progressObserver prints each computer guess as it happens
func progressObserver(w io.Writer) game.Observer {
	return func(event model.Event) {
		switch p := event.Payload.(type) {
		case model.GameStartedPayload:
			fmt.Fprintf(w, "The secret word is %d letters long. %d wrong guesses allowed.\n", p.SecretLength, p.MaxGuesses)
		case model.TurnCompletePayload:
			verdict := "hit"
			if p.Turn.Miss {
				verdict = "miss"
			}
			fmt.Fprintf(w, "Guess %d: %c (%s)  %s  [%d left]\n",
				p.Turn.Number, p.Turn.Letter, verdict, strings.Join(strings.Split(p.Board, ""), " "), p.Turn.RemainingGuesses)
		}
	}
}
