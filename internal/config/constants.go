package config

// Store backends
const (
	BackendMemory   = "memory"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Environments
const (
	EnvironmentDev     = "dev"
	EnvironmentStaging = "staging"
	EnvironmentProd    = "prod"
	EnvironmentTest    = "test"
)

// defaultServerDatabase always exists on a PostgreSQL server
const defaultServerDatabase = "postgres"

// DefaultDBPassword is the envDefault of DB_PASSWORD
const DefaultDBPassword = "postgres"

// ValidLogLevels are the accepted LOG_LEVEL values, case-insensitive
var ValidLogLevels = []string{"debug", "info", "warn", "warning", "error"}

// Error Messages
const (
	ErrMsgParseEnv      = "failed to parse environment"
	ErrMsgInvalidConfig = "invalid configuration"
)
