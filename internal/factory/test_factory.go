package factory

import (
	"context"
	"time"

	"github.com/mcoot/hangman-go/internal/dependencies/mocks"
	"github.com/mcoot/hangman-go/internal/model"
	"github.com/mcoot/hangman-go/internal/storage/memory"
	"github.com/mcoot/hangman-go/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, model.DefaultMaxGuesses, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// TestWords is the dictionary LoadTestDictionary loads
var TestWords = []string{
	// 3-letter words
	"bat", "cab", "can", "cap", "car", "cat", "cot", "cut", "dog", "dot",
	"hat", "hot", "mat", "rat", "sat", "zap",
	// 4-letter words
	"bear", "cart", "lion", "noon", "moon", "soon", "wolf", "word",
	// 5-letter words
	"apple", "cable", "fable", "gable", "sable", "table", "zebra",
	// longer words
	"hangman", "letters", "puzzle", "secret",
}

// LoadTestDictionary loads a small dictionary for testing
func (t *TestApp) LoadTestDictionary() error {
	return t.DictionaryService.LoadWords(TestWords)
}

// LoadTestDictionaryIntoStorage saves TestWords to storage and restores the
// dictionary from there
func (t *TestApp) LoadTestDictionaryIntoStorage(ctx context.Context) error {
	if err := t.Storage.SaveDictionaryWords(ctx, TestWords); err != nil {
		return err
	}
	return t.DictionaryService.LoadFromStorage(ctx)
}
