package model

// Summary aggregates the results of a set of finished games
type Summary struct {
	Played        int
	Won           int
	Lost          int
	WinRate       float64 // Won / Played, 0 when nothing was played
	AverageMisses float64
	AverageTurns  float64
}
