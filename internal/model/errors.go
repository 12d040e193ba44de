package model

import "errors"

// Common errors used across the application
var (
	// Game errors
	ErrGameNotFound         = errors.New("game not found")
	ErrGameComplete         = errors.New("game is already complete")
	ErrInvalidLetter        = errors.New("invalid letter")
	ErrInvalidLength        = errors.New("invalid word length")
	ErrInconsistentFeedback = errors.New("inconsistent feedback from referee")
	ErrNoSecretWord         = errors.New("no secret word has been picked")

	// Dictionary errors
	ErrDictionaryNotLoaded = errors.New("dictionary not loaded")
	ErrEmptyDictionary     = errors.New("dictionary has no usable words")

	// Interactive input errors
	ErrInputClosed = errors.New("input closed")
)
