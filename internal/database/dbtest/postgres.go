// Package dbtest starts throwaway Postgres containers for integration tests.
package dbtest

import (
	"context"
	"fmt"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	image          = "postgres:15-alpine"
	startupTimeout = 60 * time.Second
)

// StartPostgres runs a container and returns its DSN and a terminate func.
// An error usually means Docker is not available; callers skip in that case.
func StartPostgres(ctx context.Context) (dsn string, terminate func(), err error) {
	// testcontainers panics when no docker provider can be found
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("start postgres container: %v", r)
		}
	}()

	c, err := postgres.Run(ctx, image,
		postgres.WithDatabase("garden"),
		postgres.WithUsername("garden"),
		postgres.WithPassword("garden"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(startupTimeout)),
	)
	if err != nil {
		return "", nil, fmt.Errorf("start postgres container: %w", err)
	}
	terminate = func() {
		_ = c.Terminate(context.Background())
	}

	dsn, err = c.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		terminate()
		return "", nil, fmt.Errorf("postgres connection string: %w", err)
	}
	return dsn, terminate, nil
}
