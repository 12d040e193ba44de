package bot

import (
	"slices"

	"github.com/mcoot/hangman-go/internal/dependencies/random"
	"github.com/mcoot/hangman-go/internal/model"
)

// Alphabet is the set of letters a guesser may propose
const Alphabet = "abcdefghijklmnopqrstuvwxyz"

// Strategy defines how a bot chooses its next guess
type Strategy interface {
	// ChooseLetter selects a letter to guess. It must always return a letter,
	// even when candidates is empty.
	ChooseLetter(board *model.Board, candidates []string, tried map[rune]bool) rune
}

// LetterScore pairs a letter with its frequency score
type LetterScore struct {
	Letter rune
	Score  int
}

// RestrictToLength returns the words of dictionary whose length equals
// length, preserving order. The result never aliases dictionary.
func RestrictToLength(dictionary []string, length int) []string {
	result := []string{}
	if length < 0 {
		return result
	}
	for _, word := range dictionary {
		if len(word) == length {
			result = append(result, word)
		}
	}
	return result
}

// ScoreLetters counts, for every unrevealed board position i and every
// candidate w, one point for the letter w[i]. Candidates shorter than the
// board only contribute the positions they have.
func ScoreLetters(board *model.Board, candidates []string) map[rune]int {
	scores := make(map[rune]int)
	for i := 0; i < board.Len(); i++ {
		if board.IsRevealed(i) {
			continue
		}
		for _, word := range candidates {
			if i < len(word) {
				scores[rune(word[i])]++
			}
		}
	}
	return scores
}

// RankLetters orders scores by descending score, breaking ties with the
// lexicographically smallest letter first
func RankLetters(scores map[rune]int) []LetterScore {
	ranked := make([]LetterScore, 0, len(scores))
	for letter, score := range scores {
		ranked = append(ranked, LetterScore{Letter: letter, Score: score})
	}
	slices.SortFunc(ranked, func(a, b LetterScore) int {
		if a.Score != b.Score {
			return b.Score - a.Score
		}
		return int(a.Letter) - int(b.Letter)
	})
	return ranked
}

// SelectBestLetter returns the untried letter with the highest score,
// smallest letter first on ties. When nothing scores it falls back to
// FallbackLetter.
func SelectBestLetter(board *model.Board, candidates []string, tried map[rune]bool, rnd random.Random) rune {
	for _, ls := range RankLetters(ScoreLetters(board, candidates)) {
		if ls.Score > 0 && !tried[ls.Letter] {
			return ls.Letter
		}
	}
	return FallbackLetter(tried, rnd)
}

// FallbackLetter picks uniformly among the untried letters of Alphabet.
// If every letter was tried it returns 'a'.
func FallbackLetter(tried map[rune]bool, rnd random.Random) rune {
	untried := make([]rune, 0, len(Alphabet))
	for _, r := range Alphabet {
		if !tried[r] {
			untried = append(untried, r)
		}
	}
	if len(untried) == 0 {
		return 'a'
	}
	return untried[rnd.Intn(len(untried))]
}

// FilterCandidates keeps the words consistent with guessing letter and
// being told it occurs exactly at positions. A word is dropped if it has
// letter anywhere outside positions or lacks it at any of positions.
func FilterCandidates(candidates []string, letter rune, positions []int) []string {
	matched := make(map[int]bool, len(positions))
	for _, p := range positions {
		matched[p] = true
	}

	result := []string{}
	for _, word := range candidates {
		if consistent(word, letter, positions, matched) {
			result = append(result, word)
		}
	}
	return result
}

func consistent(word string, letter rune, positions []int, matched map[int]bool) bool {
	for _, p := range positions {
		if p < 0 || p >= len(word) || rune(word[p]) != letter {
			return false
		}
	}
	for i := 0; i < len(word); i++ {
		if rune(word[i]) == letter && !matched[i] {
			return false
		}
	}
	return true
}

// FilterByBoard narrows candidates to words that fit a board pattern and
// contain none of the missed letters
func FilterByBoard(candidates []string, board *model.Board, missed []rune) []string {
	result := RestrictToLength(candidates, board.Len())
	positions := make(map[rune][]int)
	for i, r := range board.Slots {
		if r != model.Unrevealed {
			positions[r] = append(positions[r], i)
		}
	}
	for letter, pos := range positions {
		result = FilterCandidates(result, letter, pos)
	}
	for _, letter := range missed {
		if _, revealed := positions[letter]; revealed {
			continue
		}
		result = FilterCandidates(result, letter, nil)
	}
	return result
}
