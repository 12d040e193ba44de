package model

import "fmt"

// PlayerKind selects who fills a role in a game
type PlayerKind string

const (
	PlayerKindComputer PlayerKind = "computer"
	PlayerKindHuman    PlayerKind = "human"
)

// ParsePlayerKind validates a player kind name
func ParsePlayerKind(s string) (PlayerKind, error) {
	switch PlayerKind(s) {
	case PlayerKindComputer, PlayerKindHuman:
		return PlayerKind(s), nil
	default:
		return "", fmt.Errorf("unknown player kind %q: must be %q or %q", s, PlayerKindComputer, PlayerKindHuman)
	}
}
