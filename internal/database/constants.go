package database

// MinIdleConns is kept warm so the first care action after a quiet spell skips the handshake
const MinIdleConns = 2

const (
	migrationDialect = "postgres"
	migrationsDir    = "migrations"
)

const (
	ErrMsgParseConnString = "parse connection string"
	ErrMsgCreatePool      = "create connection pool"
	ErrMsgPing            = "ping database"
	ErrMsgMigrate         = "apply migrations"
)

const (
	LogMsgConnected         = "Connected to postgres"
	LogMsgMigrationsApplied = "Database migrations applied"
)
