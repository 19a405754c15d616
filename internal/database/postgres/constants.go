package postgres

import "time"

// zeroTime skips the future-timestamp check at the store boundary; callers validate against their clock
var zeroTime time.Time

// Error Messages - Plant Operations
const (
	ErrMsgFailedToGetPlant    = "failed to get plant"
	ErrMsgFailedToCreatePlant = "failed to create plant"
	ErrMsgFailedToPatchPlant  = "failed to patch plant"
	ErrMsgFailedToListPlants  = "failed to list plants"
	ErrMsgFailedToScanPlant   = "failed to scan plant"
	ErrMsgRowIteration        = "row iteration error"
	ErrMsgFailedToPing        = "failed to ping database"
)
