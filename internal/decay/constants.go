package decay

import "time"

// Defaults
const (
	DefaultConcurrency  = 8
	DefaultStoreTimeout = 5 * time.Second
	JobName             = "decay_sweep"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgSweepStarted   = "Decay sweep started"
	LogMsgSweepCompleted = "Decay sweep completed"
	LogMsgSweepListFail  = "Decay sweep could not list plants"
	LogMsgPlantDecayed   = "Plant health decayed"
	LogMsgPlantFailed    = "Decay failed for plant"
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgListPlants  = "failed to list plants"
	ErrMsgDecayPlant  = "failed to decay plant"
	ErrMsgSweepFailed = "decay sweep finished with errors"
)
