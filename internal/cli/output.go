package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/mcoot/hangman-go/internal/model"
	"github.com/mcoot/hangman-go/internal/services/benchmark"
	"github.com/mcoot/hangman-go/internal/services/bot"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// IsJSON reports whether output is machine readable
func (o *Output) IsJSON() bool {
	return o.format == "json"
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.IsJSON() {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.IsJSON() {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case GameResult:
		o.printGameResult(v)
	case PlayResult:
		o.printPlayResult(v)
	case SummaryResult:
		o.printSummary(v)
	case HintResult:
		o.printHintResult(v)
	case BenchResult:
		o.printBenchResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// TurnResult is one guess in a finished game
type TurnResult struct {
	Number           int    `json:"number"`
	Letter           string `json:"letter"`
	Positions        []int  `json:"positions"`
	Miss             bool   `json:"miss"`
	RemainingGuesses int    `json:"remaining_guesses"`
}

// GameResult is a finished game
type GameResult struct {
	ID               string       `json:"id"`
	State            string       `json:"state"`
	Secret           string       `json:"secret"`
	Board            string       `json:"board"`
	MaxGuesses       int          `json:"max_guesses"`
	RemainingGuesses int          `json:"remaining_guesses"`
	Misses           int          `json:"misses"`
	Turns            []TurnResult `json:"turns"`
}

// PlayResult is every game from one play command
type PlayResult struct {
	Games   []GameResult   `json:"games"`
	Summary *SummaryResult `json:"summary,omitempty"`
}

// SummaryResult aggregates several games
type SummaryResult struct {
	Played        int     `json:"played"`
	Won           int     `json:"won"`
	Lost          int     `json:"lost"`
	WinRate       float64 `json:"win_rate"`
	AverageMisses float64 `json:"average_misses"`
	AverageTurns  float64 `json:"average_turns"`
}

// LetterScoreResult is a letter and how many open slots it could fill
type LetterScoreResult struct {
	Letter string `json:"letter"`
	Score  int    `json:"score"`
}

// HintResult describes the best next guess for a board
type HintResult struct {
	Pattern        string              `json:"pattern"`
	Best           string              `json:"best"`
	CandidateCount int                 `json:"candidate_count"`
	Candidates     []string            `json:"candidates"`
	Scores         []LetterScoreResult `json:"scores"`
}

// BenchGameResult is one benchmarked word
type BenchGameResult struct {
	Word    string `json:"word"`
	State   string `json:"state"`
	Turns   int    `json:"turns"`
	Misses  int    `json:"misses"`
	Guesses string `json:"guesses"`
}

// BenchResult is a benchmark report
type BenchResult struct {
	Strategy  string            `json:"strategy"`
	Summary   SummaryResult     `json:"summary"`
	ElapsedMS int64             `json:"elapsed_ms"`
	Results   []BenchGameResult `json:"results,omitempty"`
}

func newGameResult(g *model.Game) GameResult {
	turns := make([]TurnResult, len(g.Turns))
	for i, t := range g.Turns {
		turns[i] = TurnResult{
			Number:           t.Number,
			Letter:           string(t.Letter),
			Positions:        t.Positions,
			Miss:             t.Miss,
			RemainingGuesses: t.RemainingGuesses,
		}
	}
	return GameResult{
		ID:               string(g.ID),
		State:            string(g.State),
		Secret:           g.Secret,
		Board:            g.Board.Pattern(),
		MaxGuesses:       g.MaxGuesses,
		RemainingGuesses: g.RemainingGuesses,
		Misses:           g.Misses(),
		Turns:            turns,
	}
}

func newSummaryResult(s model.Summary) SummaryResult {
	return SummaryResult{
		Played:        s.Played,
		Won:           s.Won,
		Lost:          s.Lost,
		WinRate:       s.WinRate,
		AverageMisses: s.AverageMisses,
		AverageTurns:  s.AverageTurns,
	}
}

func newHintResult(h *bot.Hint, limit int) HintResult {
	candidates := h.Candidates
	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}
	scores := make([]LetterScoreResult, len(h.Scores))
	for i, ls := range h.Scores {
		scores[i] = LetterScoreResult{Letter: string(ls.Letter), Score: ls.Score}
	}
	return HintResult{
		Pattern:        h.Pattern,
		Best:           string(h.Best),
		CandidateCount: len(h.Candidates),
		Candidates:     candidates,
		Scores:         scores,
	}
}

func newBenchResult(r *benchmark.Report, details bool) BenchResult {
	result := BenchResult{
		Strategy:  r.Strategy,
		Summary:   newSummaryResult(r.Summary),
		ElapsedMS: r.Elapsed.Milliseconds(),
	}
	if details {
		for _, g := range r.Results {
			result.Results = append(result.Results, BenchGameResult{
				Word:    g.Word,
				State:   string(g.State),
				Turns:   g.Turns,
				Misses:  g.Misses,
				Guesses: g.Guesses,
			})
		}
	}
	return result
}

func (o *Output) printGameResult(g GameResult) {
	switch model.GameState(g.State) {
	case model.GameStateWon:
		fmt.Fprintf(o.w, "Guesser wins! The word was %q.\n", g.Secret)
	case model.GameStateLost:
		fmt.Fprintf(o.w, "Guesser loses! The word was %q.\n", g.Secret)
	default:
		fmt.Fprintf(o.w, "Game %s stopped: %s\n", g.ID, g.State)
	}
	fmt.Fprintf(o.w, "Turns: %d, misses: %d of %d\n", len(g.Turns), g.Misses, g.MaxGuesses)
}

func (o *Output) printPlayResult(p PlayResult) {
	for i, g := range p.Games {
		if len(p.Games) > 1 {
			fmt.Fprintf(o.w, "Round %d: ", i+1)
		}
		o.printGameResult(g)
	}
	if p.Summary != nil {
		fmt.Fprintln(o.w)
		o.printSummary(*p.Summary)
	}
}

func (o *Output) printSummary(s SummaryResult) {
	table := tablewriter.NewWriter(o.w)
	table.SetHeader([]string{"Played", "Won", "Lost", "Win rate", "Avg misses", "Avg turns"})
	table.Append([]string{
		strconv.Itoa(s.Played),
		strconv.Itoa(s.Won),
		strconv.Itoa(s.Lost),
		fmt.Sprintf("%.1f%%", s.WinRate*100),
		fmt.Sprintf("%.2f", s.AverageMisses),
		fmt.Sprintf("%.2f", s.AverageTurns),
	})
	table.Render()
}

func (o *Output) printHintResult(h HintResult) {
	fmt.Fprintf(o.w, "Pattern: %s\n", h.Pattern)
	fmt.Fprintf(o.w, "Candidates (%d): %s\n", h.CandidateCount, strings.Join(h.Candidates, ", "))
	if h.CandidateCount > len(h.Candidates) {
		fmt.Fprintf(o.w, "  ... and %d more\n", h.CandidateCount-len(h.Candidates))
	}
	fmt.Fprintf(o.w, "Best guess: %s\n", h.Best)

	if len(h.Scores) == 0 {
		return
	}
	table := tablewriter.NewWriter(o.w)
	table.SetHeader([]string{"Letter", "Score"})
	for _, s := range h.Scores {
		table.Append([]string{s.Letter, strconv.Itoa(s.Score)})
	}
	table.Render()
}

func (o *Output) printBenchResult(b BenchResult) {
	fmt.Fprintf(o.w, "Strategy: %s\n", model.BotStrategyDisplayName(b.Strategy))
	o.printSummary(b.Summary)

	if len(b.Results) > 0 {
		table := tablewriter.NewWriter(o.w)
		table.SetHeader([]string{"Word", "Result", "Turns", "Misses", "Guesses"})
		for _, r := range b.Results {
			table.Append([]string{r.Word, r.State, strconv.Itoa(r.Turns), strconv.Itoa(r.Misses), r.Guesses})
		}
		table.Render()
	}
	fmt.Fprintf(o.w, "Elapsed: %dms\n", b.ElapsedMS)
}
