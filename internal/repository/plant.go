package repository

import (
	"context"

	"github.com/osse101/GardenBot_Go/internal/domain"
)

// PlantStore persists plant records keyed by user ID.
// Implementations must give read-your-writes consistency for a single user.
type PlantStore interface {
	// GetPlant returns the user's record or domain.ErrUserNotFound
	GetPlant(ctx context.Context, userID string) (*domain.PlantRecord, error)

	// CreatePlant inserts a new record; domain.ErrPlantAlreadyExists if the user already has one.
	// Must be safe against concurrent creation for the same user.
	CreatePlant(ctx context.Context, plant *domain.PlantRecord) error

	// PatchPlant atomically applies field-level deltas and returns the updated record.
	// Returns domain.ErrPatchConflict when a precondition does not hold.
	PatchPlant(ctx context.Context, userID string, patch domain.PlantPatch) (*domain.PlantRecord, error)

	// ListPlantsByGroup returns every record in a group, in no particular order
	ListPlantsByGroup(ctx context.Context, groupID string) ([]domain.PlantRecord, error)

	// ListAllPlants returns every record in the store
	ListAllPlants(ctx context.Context) ([]domain.PlantRecord, error)

	// Ping checks store connectivity
	Ping(ctx context.Context) error
}
