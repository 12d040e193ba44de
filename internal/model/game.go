package model

import (
	"slices"
	"time"
)

// DefaultMaxGuesses is the number of misses a guesser may make before losing
const DefaultMaxGuesses = 8

// GameID uniquely identifies a game
type GameID string

// GameState represents the current phase of a game
type GameState string

const (
	GameStateAwaitingSecret GameState = "awaiting_secret" // Referee has not picked a word
	GameStateInProgress     GameState = "in_progress"     // Turns are being played
	GameStateWon            GameState = "won"             // Board fully revealed
	GameStateLost           GameState = "lost"            // Guess budget exhausted
)

// IsTerminal returns true for Won and Lost
func (s GameState) IsTerminal() bool {
	return s == GameStateWon || s == GameStateLost
}

// Turn records a single guess and the referee's answer
type Turn struct {
	Number           int   // 1-indexed
	Letter           rune  // The guessed letter
	Positions        []int // 0-based positions reported by the referee
	Miss             bool  // true if no new position was revealed
	RemainingGuesses int   // Budget after this turn
}

// Game represents a single hangman session
type Game struct {
	ID    GameID
	State GameState

	Board            *Board
	MaxGuesses       int
	RemainingGuesses int
	Turns            []Turn

	// Secret is only set once the game has ended
	Secret string

	StartedAt  time.Time
	FinishedAt time.Time
}

// NewGame creates a game waiting for the referee to pick a word
func NewGame(id GameID, maxGuesses int, now time.Time) *Game {
	if maxGuesses <= 0 {
		maxGuesses = DefaultMaxGuesses
	}
	return &Game{
		ID:               id,
		State:            GameStateAwaitingSecret,
		Board:            NewBoard(0),
		MaxGuesses:       maxGuesses,
		RemainingGuesses: maxGuesses,
		StartedAt:        now,
	}
}

// IsFinished returns true if the game is won or lost
func (g *Game) IsFinished() bool {
	return g.State.IsTerminal()
}

// Misses returns the number of turns that revealed nothing
func (g *Game) Misses() int {
	return g.MaxGuesses - g.RemainingGuesses
}

// GuessedLetters returns the letters guessed so far in the order they were tried
func (g *Game) GuessedLetters() []rune {
	seen := make(map[rune]bool, len(g.Turns))
	var letters []rune
	for _, t := range g.Turns {
		if !seen[t.Letter] {
			seen[t.Letter] = true
			letters = append(letters, t.Letter)
		}
	}
	return letters
}

// Clone returns a deep copy of the game
func (g *Game) Clone() *Game {
	c := *g
	if g.Board != nil {
		c.Board = g.Board.Clone()
	}
	c.Turns = make([]Turn, len(g.Turns))
	for i, t := range g.Turns {
		t.Positions = slices.Clone(t.Positions)
		c.Turns[i] = t
	}
	return &c
}
