package catalog

// Embedded file layout
const (
	DataDir       = "data"
	DataPathCards = "data/cards.json"
	SchemaName    = "cards.schema.json"
)

// Error Messages
const (
	ErrMsgDuplicateIndex = "duplicate card index"
)
