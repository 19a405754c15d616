package garden

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GardenBot_Go/internal/cooldown"
	"github.com/osse101/GardenBot_Go/internal/domain"
)

func TestGetOrCreate_NewPlant(t *testing.T) {
	env := newTestEnv(t, fixedRand{v: 2})
	ctx := context.Background()

	plant, created, err := env.svc.GetOrCreate(ctx, "42", "", "chat-1")
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "Gardener42", plant.DisplayName)
	assert.Equal(t, "Green Dragon", plant.Variety)
	assert.Equal(t, domain.InitialHeight, plant.Height)
	assert.Equal(t, domain.InitialHealth, plant.Health)
	assert.Zero(t, plant.WaterCount)
	assert.Zero(t, plant.TotalGrowth)
	assert.True(t, plant.PlantedAt.Equal(testStart))
	assert.False(t, plant.LastWatered.After(testStart))
	assert.False(t, plant.LastFed.After(testStart))
}

func TestGetOrCreate_Idempotent(t *testing.T) {
	env := newTestEnv(t, &seqRand{draws: []int{0, 5}})
	ctx := context.Background()

	first, created, err := env.svc.GetOrCreate(ctx, "42", "Ann", "chat-1")
	require.NoError(t, err)
	require.True(t, created)

	env.clock.Advance(time.Hour)
	second, created, err := env.svc.GetOrCreate(ctx, "42", "Someone Else", "chat-2")
	require.NoError(t, err)
	assert.False(t, created)

	assert.Equal(t, first.Variety, second.Variety)
	assert.True(t, first.PlantedAt.Equal(second.PlantedAt))
	assert.Equal(t, "Ann", second.DisplayName)
	assert.Equal(t, "chat-1", second.GroupID)
}

func TestGetOrCreate_ConcurrentCreatesOnce(t *testing.T) {
	env := newTestEnv(t, NewRandomSource())
	ctx := context.Background()

	var wg sync.WaitGroup
	results := make([]*domain.PlantRecord, 10)
	created := make([]bool, 10)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			p, c, err := env.svc.GetOrCreate(ctx, "42", "Ann", "chat-1")
			assert.NoError(t, err)
			results[i], created[i] = p, c
		}(i)
	}
	wg.Wait()

	creators := 0
	for i, p := range results {
		require.NotNil(t, p)
		assert.Equal(t, results[0].Variety, p.Variety)
		if created[i] {
			creators++
		}
	}
	assert.Equal(t, 1, creators)
}

func TestGetOrCreate_InvalidInput(t *testing.T) {
	env := newTestEnv(t, fixedRand{})

	_, _, err := env.svc.GetOrCreate(context.Background(), "", "Ann", "chat-1")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, _, err = env.svc.GetOrCreate(context.Background(), "42", "Ann", "  ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetOrCreate_TruncatesLongDisplayName(t *testing.T) {
	env := newTestEnv(t, fixedRand{})

	plant, _, err := env.svc.GetOrCreate(context.Background(), "42", strings.Repeat("é", 150), "chat-1")
	require.NoError(t, err)
	assert.Equal(t, 100, len([]rune(plant.DisplayName)))
}

func TestWater_FirstActionAvailableImmediately(t *testing.T) {
	env := newTestEnv(t, fixedRand{v: 1})
	ctx := context.Background()
	_, _, err := env.svc.GetOrCreate(ctx, "42", "Ann", "chat-1")
	require.NoError(t, err)

	res, err := env.svc.Water(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, domain.ActionWater, res.Action)
	assert.Equal(t, 2, res.Growth)
	assert.Equal(t, 3, res.NewHeight)
	assert.Equal(t, domain.MaxHealth, res.NewHealth)

	fed, err := env.svc.Feed(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, 3, fed.Growth)
	assert.Equal(t, 6, fed.NewHeight)
	assert.Equal(t, StageSprout, fed.Stage.Name)
}

func TestWater_CooldownWindow(t *testing.T) {
	env := newTestEnv(t, fixedRand{})
	ctx := context.Background()
	_, _, err := env.svc.GetOrCreate(ctx, "42", "Ann", "chat-1")
	require.NoError(t, err)

	_, err = env.svc.Water(ctx, "42")
	require.NoError(t, err)
	before, err := env.store.GetPlant(ctx, "42")
	require.NoError(t, err)

	_, err = env.svc.Water(ctx, "42")
	require.ErrorIs(t, err, domain.ErrOnCooldown)
	var cdErr cooldown.ErrOnCooldown
	require.True(t, errors.As(err, &cdErr))
	assert.Equal(t, 4, cdErr.HoursLeft())
	assert.Equal(t, domain.ActionWater, cdErr.Action)

	after, err := env.store.GetPlant(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, before, after, "a rejected action must not mutate state")

	env.clock.Advance(3*time.Hour + 30*time.Minute)
	_, err = env.svc.Water(ctx, "42")
	require.True(t, errors.As(err, &cdErr))
	assert.Equal(t, 1, cdErr.HoursLeft())

	env.clock.Advance(30 * time.Minute)
	_, err = env.svc.Water(ctx, "42")
	assert.NoError(t, err, "exactly one window later the action succeeds")
}

func TestFeed_CooldownIndependentOfWater(t *testing.T) {
	env := newTestEnv(t, fixedRand{})
	ctx := context.Background()
	_, _, err := env.svc.GetOrCreate(ctx, "42", "Ann", "chat-1")
	require.NoError(t, err)

	_, err = env.svc.Feed(ctx, "42")
	require.NoError(t, err)

	_, err = env.svc.Water(ctx, "42")
	assert.NoError(t, err)

	env.clock.Advance(5 * time.Hour)
	_, err = env.svc.Feed(ctx, "42")
	var cdErr cooldown.ErrOnCooldown
	require.True(t, errors.As(err, &cdErr))
	assert.Equal(t, domain.ActionFeed, cdErr.Action)
	assert.Equal(t, 1, cdErr.HoursLeft())
}

func TestCare_TotalGrowthIsSumOfDraws(t *testing.T) {
	rng := &seqRand{draws: []int{0, 2, 1, 3, 0, 1, 2}}
	env := newTestEnv(t, rng)
	ctx := context.Background()
	_, _, err := env.svc.GetOrCreate(ctx, "42", "Ann", "chat-1")
	require.NoError(t, err)

	sum := 0
	lastHeight := domain.InitialHeight
	for i := 0; i < 6; i++ {
		var res *domain.CareResult
		if i%2 == 0 {
			res, err = env.svc.Water(ctx, "42")
		} else {
			res, err = env.svc.Feed(ctx, "42")
		}
		require.NoError(t, err)
		assert.GreaterOrEqual(t, res.NewHeight, lastHeight)
		lastHeight = res.NewHeight
		sum += res.Growth
		env.clock.Advance(domain.FeedCooldown)
	}

	plant, err := env.store.GetPlant(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, sum, plant.TotalGrowth)
	assert.Equal(t, domain.InitialHeight+sum, plant.Height)
	assert.Equal(t, 3, plant.WaterCount)
	assert.Equal(t, 3, plant.FeedCount)
}

func TestCare_GrowthWithinRange(t *testing.T) {
	env := newTestEnv(t, NewRandomSource())
	ctx := context.Background()

	for i := 0; i < 50; i++ {
		_, _, err := env.svc.GetOrCreate(ctx, "42", "Ann", "chat-1")
		require.NoError(t, err)

		w, err := env.svc.Water(ctx, "42")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, w.Growth, domain.WaterGrowthMin)
		assert.LessOrEqual(t, w.Growth, domain.WaterGrowthMax)

		f, err := env.svc.Feed(ctx, "42")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, f.Growth, domain.FeedGrowthMin)
		assert.LessOrEqual(t, f.Growth, domain.FeedGrowthMax)

		env.clock.Advance(domain.FeedCooldown)
	}
}

func TestCare_HealthCapped(t *testing.T) {
	env := newTestEnv(t, fixedRand{})
	ctx := context.Background()
	_, _, err := env.svc.GetOrCreate(ctx, "42", "Ann", "chat-1")
	require.NoError(t, err)

	low := -60
	_, err = env.store.PatchPlant(ctx, "42", domain.PlantPatch{HealthDelta: low})
	require.NoError(t, err)

	w, err := env.svc.Water(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, 50, w.NewHealth)

	f, err := env.svc.Feed(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, 70, f.NewHealth)

	env.clock.Advance(domain.FeedCooldown)
	_, err = env.svc.Feed(ctx, "42")
	require.NoError(t, err)
	env.clock.Advance(domain.FeedCooldown)
	f, err = env.svc.Feed(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, domain.MaxHealth, f.NewHealth)
}

func TestCare_UserNotFound(t *testing.T) {
	env := newTestEnv(t, fixedRand{})

	_, err := env.svc.Water(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = env.svc.Feed(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = env.svc.GetPlant(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestCare_UnknownAction(t *testing.T) {
	env := newTestEnv(t, fixedRand{})
	_, err := env.svc.Care(context.Background(), "42", domain.CareAction("prune"))
	assert.ErrorIs(t, err, domain.ErrUnknownCareAction)
}

func TestWater_ConcurrentSameUserExactlyOneSucceeds(t *testing.T) {
	for run := 0; run < 20; run++ {
		env := newTestEnv(t, NewRandomSource())
		ctx := context.Background()
		_, _, err := env.svc.GetOrCreate(ctx, "42", "Ann", "chat-1")
		require.NoError(t, err)

		var wg sync.WaitGroup
		errs := make([]error, 2)
		start := make(chan struct{})
		for i := range errs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				<-start
				_, errs[i] = env.svc.Water(ctx, "42")
			}(i)
		}
		close(start)
		wg.Wait()

		successes, cooldowns := 0, 0
		for _, err := range errs {
			switch {
			case err == nil:
				successes++
			case errors.Is(err, domain.ErrOnCooldown):
				cooldowns++
			default:
				t.Fatalf("unexpected error: %v", err)
			}
		}
		assert.Equal(t, 1, successes)
		assert.Equal(t, 1, cooldowns)

		plant, err := env.store.GetPlant(ctx, "42")
		require.NoError(t, err)
		assert.Equal(t, 1, plant.WaterCount)
	}
}

func TestDevMode_BypassesCooldown(t *testing.T) {
	catalog, err := DefaultCatalog()
	require.NoError(t, err)
	env := newTestEnv(t, fixedRand{})
	env.svc = NewService(env.store, env.clock, fixedRand{}, catalog, Config{Cooldown: cooldown.Config{DevMode: true}})
	ctx := context.Background()

	_, _, err = env.svc.GetOrCreate(ctx, "42", "Ann", "chat-1")
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		env.clock.Advance(time.Second)
		_, err = env.svc.Water(ctx, "42")
		require.NoError(t, err)
	}
}

func TestGetPlant_Status(t *testing.T) {
	env := newTestEnv(t, fixedRand{})
	ctx := context.Background()
	_, _, err := env.svc.GetOrCreate(ctx, "42", "Ann", "chat-1")
	require.NoError(t, err)

	_, err = env.svc.Water(ctx, "42")
	require.NoError(t, err)
	env.clock.Advance(49 * time.Hour)

	status, err := env.svc.GetPlant(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, 2, status.DaysSincePlanted)
	assert.Equal(t, StageSeed, status.Stage.Name)
	assert.True(t, status.NextWaterAt.Equal(testStart.Add(domain.WaterCooldown)))
	assert.True(t, status.NextFeedAt.Equal(testStart))
}

func TestLeaderboard_Service(t *testing.T) {
	env := newTestEnv(t, fixedRand{})
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		_, _, err := env.svc.GetOrCreate(ctx, id, "", "chat-1")
		require.NoError(t, err)
	}
	_, _, err := env.svc.GetOrCreate(ctx, "z", "", "chat-2")
	require.NoError(t, err)

	_, err = env.store.PatchPlant(ctx, "b", domain.PlantPatch{HeightDelta: 10})
	require.NoError(t, err)

	board, err := env.svc.Leaderboard(ctx, "chat-1", 0)
	require.NoError(t, err)
	require.Len(t, board, 3)
	assert.Equal(t, "b", board[0].UserID)
	assert.Equal(t, "a", board[1].UserID)
	assert.Equal(t, "c", board[2].UserID)

	empty, err := env.svc.Leaderboard(ctx, "nobody", 10)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestInfo(t *testing.T) {
	env := newTestEnv(t, fixedRand{})
	info := env.svc.Info()

	assert.Len(t, info.Stages, 5)
	assert.Equal(t, domain.WaterCooldown, info.WaterCooldown)
	assert.Equal(t, domain.FeedCooldown, info.FeedCooldown)
	assert.Len(t, info.Varieties, 12)
	assert.NotEmpty(t, info.Achievements)
}

func TestShutdown(t *testing.T) {
	env := newTestEnv(t, fixedRand{})
	assert.NoError(t, env.svc.Shutdown(context.Background()))
}
