package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePattern(t *testing.T) {
	b, err := ParsePattern(" _A.e ")
	require.NoError(t, err)
	assert.Equal(t, []rune{Unrevealed, 'a', Unrevealed, 'e'}, b.Slots)
	assert.Equal(t, "_a_e", b.Pattern())
	assert.Equal(t, "_ a _ e", b.String())

	_, err = ParsePattern("a-b")
	assert.ErrorIs(t, err, ErrInvalidLetter)
}

func TestBoardReveal(t *testing.T) {
	tests := []struct {
		name      string
		pattern   string
		letter    rune
		positions []int
		want      string
		wantErr   bool
	}{
		{"reveals positions", "_____", 'e', []int{1, 4}, "_e__e", false},
		{"miss changes nothing", "_a_", 'q', nil, "_a_", false},
		{"same letter again is allowed", "_a_", 'a', []int{1}, "_a_", false},
		{"out of range", "___", 'a', []int{3}, "___", true},
		{"negative", "___", 'a', []int{-1}, "___", true},
		{"conflicting letter", "_a_", 'b', []int{1}, "_a_", true},
		{"rejected call writes nothing", "___", 'a', []int{0, 5}, "___", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := ParsePattern(tt.pattern)
			require.NoError(t, err)

			err = b.Reveal(tt.letter, tt.positions)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInconsistentFeedback)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, b.Pattern())
		})
	}
}

func TestBoardCompletion(t *testing.T) {
	b := NewBoard(3)
	assert.False(t, b.IsComplete())
	assert.Equal(t, 3, b.UnrevealedCount())

	require.NoError(t, b.Reveal('a', []int{0, 2}))
	assert.Equal(t, 1, b.UnrevealedCount())
	assert.True(t, b.IsRevealed(0))
	assert.False(t, b.IsRevealed(1))
	assert.False(t, b.IsRevealed(7))

	require.NoError(t, b.Reveal('h', []int{1}))
	assert.True(t, b.IsComplete())

	assert.True(t, NewBoard(0).IsComplete(), "an empty board has nothing left to reveal")
}

func TestBoardCloneIsIndependent(t *testing.T) {
	b := NewBoard(2)
	c := b.Clone()
	require.NoError(t, c.Reveal('x', []int{0}))

	assert.Equal(t, "__", b.Pattern())
	assert.Equal(t, "x_", c.Pattern())
}

func TestGameCloneIsIndependent(t *testing.T) {
	g := NewGame("g1", 0, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, DefaultMaxGuesses, g.MaxGuesses)
	assert.Equal(t, GameStateAwaitingSecret, g.State)

	g.Board = NewBoard(3)
	g.Turns = append(g.Turns, Turn{Number: 1, Letter: 'a', Positions: []int{1}})
	g.Turns = append(g.Turns, Turn{Number: 2, Letter: 'q', Positions: []int{}, Miss: true})
	g.RemainingGuesses--

	c := g.Clone()
	c.Turns[0].Positions[0] = 2
	c.Board.Slots[0] = 'z'

	assert.Equal(t, []int{1}, g.Turns[0].Positions)
	assert.Equal(t, "___", g.Board.Pattern())
	assert.NotNil(t, c.Turns[1].Positions)
	assert.Equal(t, 1, c.Misses())
	assert.Equal(t, []rune{'a', 'q'}, c.GuessedLetters())
}

func TestGameStateIsTerminal(t *testing.T) {
	assert.False(t, GameStateAwaitingSecret.IsTerminal())
	assert.False(t, GameStateInProgress.IsTerminal())
	assert.True(t, GameStateWon.IsTerminal())
	assert.True(t, GameStateLost.IsTerminal())
}
