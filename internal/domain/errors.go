package domain

import "errors"

// Store outcomes. Backends wrap these with %w so callers can branch with errors.Is.
var (
	// ErrUserNotFound means the user has no plant yet
	ErrUserNotFound       = errors.New("user not found")
	ErrPlantAlreadyExists = errors.New("plant already exists")
	ErrInvalidPlant       = errors.New("invalid plant record")
	// ErrPatchConflict means a patch precondition no longer held
	ErrPatchConflict    = errors.New("plant was modified concurrently")
	ErrStoreUnavailable = errors.New("plant store unavailable")
)

// Care outcomes surfaced to clients
var (
	ErrOnCooldown        = errors.New("action on cooldown")
	ErrConcurrentUpdate  = errors.New("concurrent update, please retry")
	ErrUnknownCareAction = errors.New("unknown care action")
	ErrInvalidInput      = errors.New("invalid input")
)

var ErrInvalidCatalog = errors.New("invalid variety catalog")
