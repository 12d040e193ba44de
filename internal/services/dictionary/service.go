package dictionary

import (
	"bufio"
	"context"
	_ "embed"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"github.com/mcoot/hangman-go/internal/model"
	"github.com/mcoot/hangman-go/internal/services/bot"
	"github.com/mcoot/hangman-go/internal/storage"
)

//go:embed words.txt
var defaultWords string

// Service holds the ordered word list games draw secret words and
// candidates from. The list is immutable once loaded; reloading swaps it.
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	mu     sync.RWMutex
	words  []string
	index  map[string]struct{}
	loaded bool
}

// New creates a new DictionaryService
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger.With(slog.String("component", "dictionary-service")),
		index:   make(map[string]struct{}),
	}
}

// ParseResult is the outcome of reading a word list
type ParseResult struct {
	Words   []string
	Skipped int // Lines that were empty, duplicated or not a-z only
}

// Parse reads one word per line. Lines are trimmed and lower-cased; empty
// lines, duplicates and lines with anything other than a-z are skipped.
func Parse(r io.Reader) (*ParseResult, error) {
	result := &ParseResult{}
	seen := make(map[string]struct{})

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if !isWord(word) {
			result.Skipped++
			continue
		}
		if _, dup := seen[word]; dup {
			result.Skipped++
			continue
		}
		seen[word] = struct{}{}
		result.Words = append(result.Words, word)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func isWord(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'a' || s[i] > 'z' {
			return false
		}
	}
	return true
}

// LoadFromStorage loads dictionary words from storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetDictionaryWords(ctx)
	if err != nil {
		return err
	}
	return s.LoadWords(words)
}

// LoadFromFile loads dictionary words from a file (one word per line)
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open dictionary: %w", err)
	}
	defer file.Close()

	if err := s.LoadFromReader(ctx, file); err != nil {
		return fmt.Errorf("load dictionary %s: %w", path, err)
	}
	return nil
}

// LoadFromReader loads dictionary words from r and saves them to storage
func (s *Service) LoadFromReader(ctx context.Context, r io.Reader) error {
	parsed, err := Parse(r)
	if err != nil {
		return err
	}
	if len(parsed.Words) == 0 {
		return model.ErrEmptyDictionary
	}

	if err := s.storage.SaveDictionaryWords(ctx, parsed.Words); err != nil {
		return err
	}
	if err := s.LoadWords(parsed.Words); err != nil {
		return err
	}

	s.logger.Info("dictionary loaded",
		slog.Int("words", len(parsed.Words)),
		slog.Int("skipped", parsed.Skipped),
	)
	return nil
}

// LoadDefault loads the built-in word list
func (s *Service) LoadDefault(ctx context.Context) error {
	return s.LoadFromReader(ctx, strings.NewReader(defaultWords))
}

// LoadWords directly loads a slice of words (useful for testing).
// Words are used as given apart from trimming; empty entries are dropped.
func (s *Service) LoadWords(words []string) error {
	list := make([]string, 0, len(words))
	index := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.TrimSpace(w)
		if w == "" {
			continue
		}
		if _, dup := index[w]; dup {
			continue
		}
		index[w] = struct{}{}
		list = append(list, w)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.words = list
	s.index = index
	s.loaded = true
	return nil
}

// IsLoaded returns whether the dictionary has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// WordCount returns the number of words in the dictionary
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// Contains reports whether word is in the dictionary
func (s *Service) Contains(word string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[strings.TrimSpace(word)]
	return ok
}

// Words returns a copy of the word list in load order
func (s *Service) Words() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]string, len(s.words))
	copy(result, s.words)
	return result
}

// WordsOfLength returns the words of the given length in load order
func (s *Service) WordsOfLength(length int) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return bot.RestrictToLength(s.words, length)
}

// Lengths returns how many words there are of each length
func (s *Service) Lengths() map[int]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := make(map[int]int)
	for _, w := range s.words {
		counts[len(w)]++
	}
	return counts
}

// Interface check
type ServiceInterface interface {
	IsLoaded() bool
	WordCount() int
	Contains(word string) bool
	Words() []string
	WordsOfLength(length int) []string
	LoadFromStorage(ctx context.Context) error
	LoadFromFile(ctx context.Context, path string) error
	LoadFromReader(ctx context.Context, r io.Reader) error
	LoadDefault(ctx context.Context) error
	LoadWords(words []string) error
}

var _ ServiceInterface = (*Service)(nil)
var _ bot.WordSource = (*Service)(nil)
