package database

// Driver settings
const (
	// DriverName is the database/sql name registered by modernc.org/sqlite
	DriverName = "sqlite"

	// DSNOptions enables WAL, foreign keys and a busy timeout on every connection
	DSNOptions = "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"

	// DefaultMaxOpenConns bounds concurrent connections to the database file
	DefaultMaxOpenConns = 4
)

// Error Messages - Database Operations
const (
	ErrMsgPathRequired              = "database path is required"
	ErrMsgFailedToCreateDir         = "failed to create database directory"
	ErrMsgFailedToOpenDatabase      = "failed to open database"
	ErrMsgFailedToPingDatabase      = "failed to ping database"
	ErrMsgFailedToCreateMigrator    = "failed to create migrator"
	ErrMsgFailedToApplyMigrations   = "failed to apply migrations"
	ErrMsgFailedToRollbackMigration = "failed to roll back migration"
	ErrMsgFailedToReadStatus        = "failed to read migration status"
)

// Log Messages
const (
	LogMsgSuccessfullyOpenedDatabase = "Successfully opened the database"
	LogMsgMigrationApplied           = "Migration applied"
	LogMsgMigrationRolledBack        = "Migration rolled back"
	LogMsgSchemaUpToDate             = "Database schema is up to date"
)
