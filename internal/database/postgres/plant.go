package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/GardenBot_Go/internal/domain"
)

const plantColumns = `user_id, display_name, group_id, variety, height, health,
	last_watered, last_fed, planted_at, water_count, feed_count, total_growth, achievements`

// PlantRepository implements repository.PlantStore for PostgreSQL
type PlantRepository struct {
	db *pgxpool.Pool
}

// NewPlantRepository creates a new PlantRepository
func NewPlantRepository(db *pgxpool.Pool) *PlantRepository {
	return &PlantRepository{db: db}
}

// GetPlant retrieves a user's plant
func (r *PlantRepository) GetPlant(ctx context.Context, userID string) (*domain.PlantRecord, error) {
	query := `SELECT ` + plantColumns + ` FROM plants WHERE user_id = $1`

	plant, err := scanPlant(r.db.QueryRow(ctx, query, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, storeError(ErrMsgFailedToGetPlant, err)
	}
	return plant, nil
}

// CreatePlant inserts a new plant; the primary key makes concurrent creation safe
func (r *PlantRepository) CreatePlant(ctx context.Context, plant *domain.PlantRecord) error {
	if err := domain.ValidatePlant(plant, zeroTime); err != nil {
		return err
	}

	achievements := plant.Achievements
	if achievements == nil {
		achievements = []string{}
	}

	query := `
		INSERT INTO plants (` + plantColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (user_id) DO NOTHING
	`
	tag, err := r.db.Exec(ctx, query,
		plant.UserID,
		plant.DisplayName,
		plant.GroupID,
		plant.Variety,
		plant.Height,
		plant.Health,
		plant.LastWatered,
		plant.LastFed,
		plant.PlantedAt,
		plant.WaterCount,
		plant.FeedCount,
		plant.TotalGrowth,
		achievements,
	)
	if err != nil {
		return storeError(ErrMsgFailedToCreatePlant, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPlantAlreadyExists
	}
	return nil
}

// PatchPlant applies the patch in a single conditional UPDATE.
// When no row matches, a follow-up existence check tells a missing user from a failed precondition.
func (r *PlantRepository) PatchPlant(ctx context.Context, userID string, patch domain.PlantPatch) (*domain.PlantRecord, error) {
	floor, ceil := healthBounds(patch)

	query := `
		UPDATE plants SET
			height = height + $2,
			total_growth = total_growth + $3,
			water_count = water_count + $4,
			feed_count = feed_count + $5,
			health = CASE WHEN $6::int = 0 THEN health
				ELSE LEAST(GREATEST(health + $6::int, $7::int), $8::int) END,
			last_watered = COALESCE($9::timestamptz, last_watered),
			last_fed = COALESCE($10::timestamptz, last_fed)
		WHERE user_id = $1
			AND ($11::timestamptz IS NULL OR last_watered = $11::timestamptz)
			AND ($12::timestamptz IS NULL OR last_fed = $12::timestamptz)
			AND ($13::int IS NULL OR health > $13::int)
		RETURNING ` + plantColumns

	plant, err := scanPlant(r.db.QueryRow(ctx, query,
		userID,
		patch.HeightDelta,
		patch.TotalGrowthDelta,
		patch.WaterCountDelta,
		patch.FeedCountDelta,
		patch.HealthDelta,
		floor,
		ceil,
		patch.LastWatered,
		patch.LastFed,
		patch.ExpectLastWatered,
		patch.ExpectLastFed,
		patch.ExpectHealthAbove,
	))
	if err == nil {
		return plant, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, storeError(ErrMsgFailedToPatchPlant, err)
	}

	var exists bool
	if err := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM plants WHERE user_id = $1)`, userID).Scan(&exists); err != nil {
		return nil, storeError(ErrMsgFailedToPatchPlant, err)
	}
	if !exists {
		return nil, domain.ErrUserNotFound
	}
	return nil, domain.ErrPatchConflict
}

// ListPlantsByGroup retrieves every plant in a group
func (r *PlantRepository) ListPlantsByGroup(ctx context.Context, groupID string) ([]domain.PlantRecord, error) {
	query := `SELECT ` + plantColumns + ` FROM plants WHERE group_id = $1`
	return r.list(ctx, query, groupID)
}

// ListAllPlants retrieves every plant
func (r *PlantRepository) ListAllPlants(ctx context.Context) ([]domain.PlantRecord, error) {
	query := `SELECT ` + plantColumns + ` FROM plants`
	return r.list(ctx, query)
}

// Ping checks database connectivity
func (r *PlantRepository) Ping(ctx context.Context) error {
	if err := r.db.Ping(ctx); err != nil {
		return storeError(ErrMsgFailedToPing, err)
	}
	return nil
}

func (r *PlantRepository) list(ctx context.Context, query string, args ...any) ([]domain.PlantRecord, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, storeError(ErrMsgFailedToListPlants, err)
	}
	defer rows.Close()

	plants := make([]domain.PlantRecord, 0)
	for rows.Next() {
		plant, err := scanPlant(rows)
		if err != nil {
			return nil, storeError(ErrMsgFailedToScanPlant, err)
		}
		plants = append(plants, *plant)
	}

	if err := rows.Err(); err != nil {
		return nil, storeError(ErrMsgRowIteration, err)
	}
	return plants, nil
}

func scanPlant(row pgx.Row) (*domain.PlantRecord, error) {
	var p domain.PlantRecord
	err := row.Scan(
		&p.UserID,
		&p.DisplayName,
		&p.GroupID,
		&p.Variety,
		&p.Height,
		&p.Health,
		&p.LastWatered,
		&p.LastFed,
		&p.PlantedAt,
		&p.WaterCount,
		&p.FeedCount,
		&p.TotalGrowth,
		&p.Achievements,
	)
	if err != nil {
		return nil, err
	}

	p.LastWatered = p.LastWatered.UTC()
	p.LastFed = p.LastFed.UTC()
	p.PlantedAt = p.PlantedAt.UTC()
	return &p, nil
}

// healthBounds mirrors domain.ClampHealth so SQL and in-process stores clamp identically
func healthBounds(patch domain.PlantPatch) (floor, ceil int) {
	floor, ceil = patch.HealthFloor, patch.HealthCeil
	if ceil <= 0 || ceil > domain.MaxHealth {
		ceil = domain.MaxHealth
	}
	if floor < domain.MinHealth {
		floor = domain.MinHealth
	}
	return floor, ceil
}

func storeError(msg string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrStoreUnavailable, msg, err)
}
