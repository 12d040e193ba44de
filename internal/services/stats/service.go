package stats

import (
	"context"
	"log/slog"

	"github.com/mcoot/hangman-go/internal/model"
	"github.com/mcoot/hangman-go/internal/storage"
)

// Service aggregates the results of finished games
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new StatsService
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger.With(slog.String("component", "stats-service")),
	}
}

// Summarize totals the finished games in games. Games still in progress
// are ignored.
func (s *Service) Summarize(games []*model.Game) model.Summary {
	var summary model.Summary
	misses, turns := 0, 0

	for _, g := range games {
		if g == nil || !g.IsFinished() {
			continue
		}
		summary.Played++
		if g.State == model.GameStateWon {
			summary.Won++
		} else {
			summary.Lost++
		}
		misses += g.Misses()
		turns += len(g.Turns)
	}

	if summary.Played > 0 {
		played := float64(summary.Played)
		summary.WinRate = float64(summary.Won) / played
		summary.AverageMisses = float64(misses) / played
		summary.AverageTurns = float64(turns) / played
	}
	return summary
}

// SummarizeStored totals every finished game in storage
func (s *Service) SummarizeStored(ctx context.Context) (model.Summary, error) {
	games, err := s.storage.ListGames(ctx)
	if err != nil {
		return model.Summary{}, err
	}

	summary := s.Summarize(games)
	s.logger.Debug("summarized stored games",
		slog.Int("played", summary.Played),
		slog.Int("won", summary.Won),
	)
	return summary, nil
}
