package garden

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/osse101/GardenBot_Go/internal/clock"
	"github.com/osse101/GardenBot_Go/internal/cooldown"
	"github.com/osse101/GardenBot_Go/internal/database/memory"
	"github.com/osse101/GardenBot_Go/internal/repository"
)

var testStart = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

// fixedRand always draws v modulo n
type fixedRand struct{ v int }

func (f fixedRand) IntN(n int) int { return f.v % n }

// seqRand replays a sequence of draws, each taken modulo n
type seqRand struct {
	mu    sync.Mutex
	draws []int
	i     int
}

func (s *seqRand) IntN(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := s.draws[s.i%len(s.draws)]
	s.i++
	return v % n
}

type testEnv struct {
	svc   Service
	store repository.PlantStore
	clock *clock.SimulatedClock
}

func newTestEnv(t *testing.T, rng RandomSource) *testEnv {
	t.Helper()
	catalog, err := DefaultCatalog()
	require.NoError(t, err)

	store := memory.NewPlantStore()
	clk := clock.NewSimulatedClock(testStart)
	svc := NewService(store, clk, rng, catalog, Config{Cooldown: cooldown.Config{}})
	return &testEnv{svc: svc, store: store, clock: clk}
}
