package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Game errors
	ErrMsgGameNotFound    = "game not found"
	ErrMsgDuplicateGameID = "duplicate game id"
	ErrMsgInvalidGameID   = "invalid game id"

	// Store errors
	ErrMsgDecodeFailure = "stored value does not match expected schema"
	ErrMsgEncodeFailure = "failed to encode value"
	ErrMsgWriteFailure  = "store rejected write"
	ErrMsgReadFailure   = "store read failed"

	// Catalog errors
	ErrMsgInvalidCatalog = "invalid card catalog"

	// Generator errors
	ErrMsgInvalidPlayerCount = "player count must be a positive number"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// Game errors
	ErrGameNotFound    = errors.New(ErrMsgGameNotFound)
	ErrDuplicateGameID = errors.New(ErrMsgDuplicateGameID)
	ErrInvalidGameID   = errors.New(ErrMsgInvalidGameID)

	// Store errors
	ErrDecodeFailure = errors.New(ErrMsgDecodeFailure)
	ErrEncodeFailure = errors.New(ErrMsgEncodeFailure)
	ErrWriteFailure  = errors.New(ErrMsgWriteFailure)
	ErrReadFailure   = errors.New(ErrMsgReadFailure)

	// Catalog errors
	ErrInvalidCatalog = errors.New(ErrMsgInvalidCatalog)

	// Generator errors
	ErrInvalidPlayerCount = errors.New(ErrMsgInvalidPlayerCount)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)
