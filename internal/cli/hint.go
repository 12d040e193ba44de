package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/hangman-go/internal/model"
)

func newHintCmd(e *env) *cobra.Command {
	var tried string
	var limit int

	cmd := &cobra.Command{
		Use:   "hint <pattern>",
		Short: "Suggest the next guess for a board",
		Long: `Show the dictionary words that fit a board and the letter the computer
would guess next.

The pattern uses _ (or .) for unknown letters, e.g. "_a__a_". Letters
already guessed that are not on the board go in --tried.`,
		Example: `  hangman hint _a__a_ --tried e,t`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := model.ParsePattern(strings.ToLower(args[0]))
			if err != nil {
				return fmt.Errorf("invalid pattern %q: %w", args[0], err)
			}
			letters, err := parseTried(tried)
			if err != nil {
				return err
			}

			hint := e.app.BotService.Hint(board, letters)
			e.output.Print(newHintResult(hint, limit))
			return nil
		},
	}

	cmd.Flags().StringVar(&tried, "tried", "", "Letters already guessed, e.g. e,t or et")
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum candidates to list, 0 for all")

	return cmd
}

// parseTried reads letters separated by commas, spaces or nothing
func parseTried(s string) ([]rune, error) {
	var letters []rune
	for _, r := range strings.ToLower(s) {
		switch {
		case r == ',' || r == ' ':
			continue
		case r >= 'a' && r <= 'z':
			letters = append(letters, r)
		default:
			return nil, fmt.Errorf("%w: %q in --tried", model.ErrInvalidLetter, r)
		}
	}
	return letters, nil
}
