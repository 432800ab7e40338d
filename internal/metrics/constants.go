package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Namespace prefixes every metric exported by the application
const Namespace = "cardbuilder"

// Store metric names
const (
	MetricNameStoreOperationsTotal   = "store_operations_total"
	MetricNameStoreOperationDuration = "store_operation_duration_seconds"
	MetricNameStoreDecodeFailures    = "store_decode_failures_total"
)

// Repository metric names
const (
	MetricNameGameNotFound     = "game_not_found_total"
	MetricNameGamesPersisted   = "games_persisted"
	MetricNamePlayersGenerated = "players_generated_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextStoreOperationsTotal   = "Total number of record store operations"
	HelpTextStoreOperationDuration = "Record store operation latency in seconds"
	HelpTextStoreDecodeFailures    = "Stored values that failed to decode and were treated as absent"
	HelpTextGameNotFound           = "Update or delete calls whose game id was not stored"
	HelpTextGamesPersisted         = "Number of games in the collection after the last write"
	HelpTextPlayersGenerated       = "Random player selections performed"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelOperation = "operation"
	LabelKey       = "key"
	LabelStatus    = "status"
)

// Label values
const (
	OperationRead  = "read"
	OperationWrite = "write"
	OperationErase = "erase"

	StatusOK       = "ok"
	StatusAbsent   = "absent"
	StatusError    = "error"
	StatusDecode   = "decode_failure"
	StatusEncode   = "encode_failure"
	StatusNotFound = "not_found"
)

// StoreLatencyBuckets are tuned for local disk and LAN database round trips
var StoreLatencyBuckets = []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1}
