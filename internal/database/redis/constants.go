package redis

import "time"

// Key layout
const (
	DefaultKeyPrefix = "garden:"
	plantKeyPart     = "plant:"
	groupKeyPart     = "group:"
	allPlantsKeyPart = "plants"
)

// Optimistic transaction limits
const (
	// MaxTxRetries bounds how often a WATCH transaction is re-run after a concurrent write to the same key
	MaxTxRetries = 10
	// txRetryBackoff is the base delay between WATCH retries
	txRetryBackoff = 2 * time.Millisecond
)

// zeroTime skips the future-timestamp check at the store boundary
var zeroTime time.Time

// Error Messages
const (
	ErrMsgFailedToConnect     = "failed to connect to redis"
	ErrMsgFailedToGetPlant    = "failed to get plant"
	ErrMsgFailedToCreatePlant = "failed to create plant"
	ErrMsgFailedToPatchPlant  = "failed to patch plant"
	ErrMsgFailedToListPlants  = "failed to list plants"
	ErrMsgFailedToDecodePlant = "failed to decode plant"
	ErrMsgFailedToEncodePlant = "failed to encode plant"
	ErrMsgTooManyRetries      = "too many concurrent writers"
	ErrMsgFailedToPing        = "failed to ping redis"
)

// Log Messages
const (
	LogMsgConnected           = "Successfully connected to redis"
	LogMsgSkippedCorruptPlant = "Skipping undecodable plant record"
)
