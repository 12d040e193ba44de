package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mcoot/hangman-go/internal/model"
)

// Option configures a console player
type Option func(*prompter)

// WithMaxAttempts bounds how many invalid answers are accepted for a single
// question before giving up. Zero means no bound.
func WithMaxAttempts(n int) Option {
	return func(p *prompter) {
		p.maxAttempts = n
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(p *prompter) {
		p.logger = logger
	}
}

// Input reads answers line by line. Players sharing a terminal must share
// one Input, since it buffers ahead of the line it returns.
type Input struct {
	scanner *bufio.Scanner
}

// NewInput creates an Input reading from r
func NewInput(r io.Reader) *Input {
	return &Input{scanner: bufio.NewScanner(r)}
}

// prompter reads answers and re-asks until one parses
type prompter struct {
	in          *Input
	out         io.Writer
	maxAttempts int
	logger      *slog.Logger
}

func newPrompter(in *Input, out io.Writer, component string, opts []Option) *prompter {
	p := &prompter{
		in:     in,
		out:    out,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.logger = p.logger.With(slog.String("component", component))
	return p
}

func (p *prompter) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}

func (p *prompter) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	scanner := p.in.scanner
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", model.ErrInputClosed
	}
	return strings.TrimSpace(scanner.Text()), nil
}

// ask prints prompt and reads lines until parse accepts one
func (p *prompter) ask(ctx context.Context, prompt string, parse func(line string) error) error {
	for attempt := 1; ; attempt++ {
		p.printf("%s", prompt)
		line, err := p.readLine(ctx)
		if err != nil {
			return err
		}

		err = parse(line)
		if err == nil {
			return nil
		}
		p.printf("%s\n", err)
		p.logger.Debug("rejected input", slog.String("input", line), slog.String("error", err.Error()))

		if p.maxAttempts > 0 && attempt >= p.maxAttempts {
			return fmt.Errorf("%w: no valid answer after %d attempts", model.ErrInputClosed, attempt)
		}
	}
}

// LengthResult is the outcome of parsing a secret word length
type LengthResult struct {
	Length int
	Err    error
}

// ParseLength parses a positive word length
func ParseLength(s string) LengthResult {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return LengthResult{Err: fmt.Errorf("enter a valid length: %q is not a number", s)}
	}
	if n < 1 {
		return LengthResult{Err: fmt.Errorf("enter a valid length: must be at least 1, got %d", n)}
	}
	return LengthResult{Length: n}
}

// ParsePositions parses comma separated 0-based indices into a word of the
// given length. An empty line means the letter does not occur.
func ParsePositions(s string, length int) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []int{}, nil
	}

	seen := make(map[int]bool)
	positions := []int{}
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%q is not a position", field)
		}
		if n < 0 || n >= length {
			return nil, fmt.Errorf("position %d is outside the word (0-%d)", n, length-1)
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		positions = append(positions, n)
	}
	return positions, nil
}

// ParseLetter parses a single letter a-z, case-insensitively
func ParseLetter(s string) (rune, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 1 || s[0] < 'a' || s[0] > 'z' {
		return 0, fmt.Errorf("enter a single letter a-z")
	}
	return rune(s[0]), nil
}

func formatPositions(positions []int) string {
	parts := make([]string, len(positions))
	for i, p := range positions {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ", ")
}
