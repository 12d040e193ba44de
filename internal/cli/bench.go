package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/hangman-go/internal/services/benchmark"
)

func newBenchCmd(e *env) *cobra.Command {
	var (
		length   int
		limit    int
		parallel int
		strategy string
		words    string
		details  bool
	)

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Measure how well the computer guesser does",
		Long: `Play the computer guesser against every dictionary word (or the
given words) as secret word and report how many games it wins.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := benchmark.Request{
				Length:      length,
				Limit:       limit,
				Strategy:    strategy,
				Parallelism: parallel,
			}
			if req.Strategy == "" {
				req.Strategy = e.cfg.Strategy
			}
			if req.Parallelism <= 0 {
				req.Parallelism = e.cfg.Bench.Parallelism
			}
			for _, w := range strings.Split(words, ",") {
				if w = strings.ToLower(strings.TrimSpace(w)); w != "" {
					req.Words = append(req.Words, w)
				}
			}

			report, err := e.app.BenchmarkRunner.Run(cmd.Context(), req)
			if err != nil {
				return err
			}
			e.output.Print(newBenchResult(report, details))
			return nil
		},
	}

	cmd.Flags().IntVar(&length, "length", 0, "Only use dictionary words of this length")
	cmd.Flags().IntVar(&limit, "limit", 0, "Play at most this many words, 0 for all")
	cmd.Flags().IntVar(&parallel, "parallel", 0, "Games to run at once (default from config)")
	cmd.Flags().StringVar(&strategy, "strategy", "", "Guesser strategy: frequency, random (default from config)")
	cmd.Flags().StringVar(&words, "words", "", "Comma separated secret words instead of the dictionary")
	cmd.Flags().BoolVar(&details, "details", false, "List every game")

	return cmd
}
