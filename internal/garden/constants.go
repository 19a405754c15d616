package garden

import "time"

// Stage names
const (
	StageSeed     = "Seed"
	StageSprout   = "Sprout"
	StageYoung    = "Young"
	StageMature   = "Mature"
	StageBlooming = "Blooming"
)

// CatalogSchemaName is the name the variety schema is registered under
const CatalogSchemaName = "varieties.schema.json"

// DefaultStoreTimeout bounds a single store round-trip
const DefaultStoreTimeout = 5 * time.Second

// hoursPerDay converts plant age to whole days
const hoursPerDay = 24

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgPlantCreated       = "Plant created"
	LogMsgCreateRaceResolved = "Concurrent creation detected, using existing plant"
	LogMsgCareApplied        = "Care action applied"
	LogMsgCareOnCooldown     = "Care action on cooldown"
	LogMsgCareConflict       = "Care action lost a concurrent update"
	LogMsgStoreFailed        = "Plant store operation failed"
	LogMsgShuttingDown       = "Garden service shutting down, waiting for in-flight requests..."
	LogMsgShutdownComplete   = "Garden service shutdown complete"
)

// ============================================================================
// Error Messages
// ============================================================================

const (
	ErrMsgGetPlant      = "failed to get plant"
	ErrMsgCreatePlant   = "failed to create plant"
	ErrMsgPatchPlant    = "failed to update plant"
	ErrMsgListPlants    = "failed to list plants"
	ErrMsgShutdownTimed = "shutdown timed out"
)

// Store operation labels for metrics
const (
	opGet    = "get"
	opCreate = "create"
	opPatch  = "patch"
	opList   = "list"
)
