package model

import (
	"fmt"
	"strings"
)

// Unrevealed marks a board slot whose letter has not been found yet
const Unrevealed rune = 0

// PatternBlank is the character used for unrevealed slots in patterns
const PatternBlank = '_'

// Board represents the guesser's current knowledge of the secret word
type Board struct {
	Slots []rune // Slots[i] is Unrevealed or the letter at position i
}

// NewBoard creates an all-unrevealed board of the given length
func NewBoard(length int) *Board {
	if length < 0 {
		length = 0
	}
	return &Board{Slots: make([]rune, length)}
}

// ParsePattern builds a board from a pattern such as "_a_", where
// PatternBlank (or '.') marks an unrevealed slot
func ParsePattern(pattern string) (*Board, error) {
	b := NewBoard(0)
	for _, r := range strings.ToLower(strings.TrimSpace(pattern)) {
		switch {
		case r == PatternBlank || r == '.':
			b.Slots = append(b.Slots, Unrevealed)
		case r >= 'a' && r <= 'z':
			b.Slots = append(b.Slots, r)
		default:
			return nil, fmt.Errorf("%w: %q in pattern %q", ErrInvalidLetter, r, pattern)
		}
	}
	return b, nil
}

// Len returns the number of slots
func (b *Board) Len() int {
	return len(b.Slots)
}

// Get returns the letter at position i, or Unrevealed if hidden or out of range
func (b *Board) Get(i int) rune {
	if i < 0 || i >= len(b.Slots) {
		return Unrevealed
	}
	return b.Slots[i]
}

// IsRevealed returns true if the slot at position i holds a letter
func (b *Board) IsRevealed(i int) bool {
	return b.Get(i) != Unrevealed
}

// Reveal writes letter at every given position. Positions are checked
// before anything is written, so a rejected call leaves the board unchanged.
func (b *Board) Reveal(letter rune, positions []int) error {
	for _, pos := range positions {
		if pos < 0 || pos >= len(b.Slots) {
			return fmt.Errorf("%w: position %d on board of length %d", ErrInconsistentFeedback, pos, len(b.Slots))
		}
		if cur := b.Slots[pos]; cur != Unrevealed && cur != letter {
			return fmt.Errorf("%w: position %d already holds %q, got %q", ErrInconsistentFeedback, pos, cur, letter)
		}
	}
	for _, pos := range positions {
		b.Slots[pos] = letter
	}
	return nil
}

// IsComplete returns true if every slot is revealed
func (b *Board) IsComplete() bool {
	for _, r := range b.Slots {
		if r == Unrevealed {
			return false
		}
	}
	return true
}

// UnrevealedCount returns the number of hidden slots
func (b *Board) UnrevealedCount() int {
	count := 0
	for _, r := range b.Slots {
		if r == Unrevealed {
			count++
		}
	}
	return count
}

// Pattern renders the board with PatternBlank for hidden slots, e.g. "_a_"
func (b *Board) Pattern() string {
	var sb strings.Builder
	for _, r := range b.Slots {
		if r == Unrevealed {
			sb.WriteRune(PatternBlank)
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

// String renders the board with spaces between slots
func (b *Board) String() string {
	parts := make([]string, len(b.Slots))
	for i, r := range b.Slots {
		if r == Unrevealed {
			r = PatternBlank
		}
		parts[i] = string(r)
	}
	return strings.Join(parts, " ")
}

// Clone returns a deep copy of the board
func (b *Board) Clone() *Board {
	slots := make([]rune, len(b.Slots))
	copy(slots, b.Slots)
	return &Board{Slots: slots}
}
