package statistics

// Log Messages
const (
	LogMsgStatisticSaved   = "Statistics saved"
	LogMsgStatisticDeleted = "Statistics deleted"
)

// Log field keys
const (
	LogFieldStatisticID = "statistic_id"
)
