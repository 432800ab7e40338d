package game

// Operation names used in logs and the not-found metric
const (
	OpUpdate = "update"
	OpDelete = "delete"
)

// Log Messages
const (
	LogMsgGameNotFound      = "Game not found, nothing changed"
	LogMsgGameSaved         = "Game saved"
	LogMsgGameUpdated       = "Game updated"
	LogMsgGameDeleted       = "Game deleted"
	LogMsgGamesReplaced     = "Game collection replaced"
	LogMsgGamesCleared      = "All games deleted"
	LogMsgDuplicatesRemoved = "Removed duplicate game records"
	LogMsgSelectionSaved    = "Card selection saved"
	LogMsgSelectionDropped  = "Dropped non-numeric card selection tokens"
)

// Log field keys
const (
	LogFieldGameID    = "game_id"
	LogFieldOperation = "operation"
	LogFieldCount     = "count"
	LogFieldDropped   = "dropped"
)
