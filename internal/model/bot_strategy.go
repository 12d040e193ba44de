package model

// Bot strategy constants
const (
	BotStrategyFrequency = "frequency"
	BotStrategyRandom    = "random"
)

// DefaultBotStrategy is used when no strategy is configured
const DefaultBotStrategy = BotStrategyFrequency

// BotStrategyDisplayName returns a human-readable label for a strategy
func BotStrategyDisplayName(strategy string) string {
	switch strategy {
	case BotStrategyFrequency:
		return "Letter frequency"
	case BotStrategyRandom:
		return "Random"
	default:
		return strategy
	}
}

// ValidBotStrategies returns all valid bot strategy names
func ValidBotStrategies() []string {
	return []string{BotStrategyFrequency, BotStrategyRandom}
}

// IsValidBotStrategy reports whether name is a known strategy
func IsValidBotStrategy(name string) bool {
	for _, s := range ValidBotStrategies() {
		if s == name {
			return true
		}
	}
	return false
}
