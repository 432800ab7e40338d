package postgres

// Error Messages - KV Operations
const (
	ErrMsgFailedToSelectEntry = "failed to select kv entry"
	ErrMsgFailedToUpsertEntry = "failed to upsert kv entry"
	ErrMsgFailedToDeleteEntry = "failed to delete kv entry"
)
