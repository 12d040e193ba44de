package model

import "time"

// EventType identifies the type of event
type EventType string

const (
	EventGameStarted  EventType = "game_started"
	EventTurnComplete EventType = "turn_complete"
	EventGameWon      EventType = "game_won"
	EventGameLost     EventType = "game_lost"
)

// Event is emitted by the game loop as a session progresses
type Event struct {
	Type      EventType
	Timestamp time.Time
	GameID    GameID
	Payload   any // Type-specific data
}

// GameStartedPayload contains data for game started events
type GameStartedPayload struct {
	SecretLength int
	MaxGuesses   int
}

// TurnCompletePayload contains data for turn complete events
type TurnCompletePayload struct {
	Turn  Turn
	Board string // Pattern after the turn
}

// GameFinishedPayload contains data for game won and lost events
type GameFinishedPayload struct {
	State  GameState
	Secret string
	Turns  int
	Misses int
}
