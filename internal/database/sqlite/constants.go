package sqlite

// DriverName is the database/sql driver registered by modernc.org/sqlite
const DriverName = "sqlite"

// DSNPragmas is appended to the file path when opening the database
const DSNPragmas = "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"

// Error Messages
const (
	ErrMsgPathRequired   = "sqlite path is required"
	ErrMsgFailedToOpen   = "failed to open sqlite db"
	ErrMsgFailedToPing   = "failed to ping sqlite db"
	ErrMsgFailedToSelect = "failed to select kv entry"
	ErrMsgFailedToUpsert = "failed to upsert kv entry"
	ErrMsgFailedToDelete = "failed to delete kv entry"
)

// Log Messages
const (
	LogMsgOpened = "Opened sqlite record store"
)
