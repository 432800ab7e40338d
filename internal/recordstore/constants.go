package recordstore

// TracerName identifies spans emitted by the store
const TracerName = "github.com/osse101/CardBuilder_Go/internal/recordstore"

// Span names
const (
	SpanRead  = "recordstore.Read"
	SpanWrite = "recordstore.Write"
	SpanErase = "recordstore.Erase"
)

// Span attribute keys
const (
	AttrStoreKey  = "store.key"
	AttrStoreHit  = "store.hit"
	AttrValueSize = "store.value_size"
)

// Log messages
const (
	LogMsgDecodeFailed = "Stored value failed to decode, treating as absent"
	LogMsgReadFailed   = "Record store read failed"
	LogMsgWriteFailed  = "Record store write failed"
	LogMsgEraseFailed  = "Record store erase failed"
	LogMsgEncodeFailed = "Failed to encode value for record store"
)

// Log field keys
const (
	LogFieldKey   = "key"
	LogFieldError = "error"
)
