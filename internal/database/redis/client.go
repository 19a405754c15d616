package redis

import (
	"context"
	"fmt"
	"log/slog"

	goredis "github.com/redis/go-redis/v9"
)

// Options configures the redis client
type Options struct {
	Addr     string
	Password string
	DB       int
}

// NewClient creates a redis client and verifies connectivity
func NewClient(ctx context.Context, opts Options) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToConnect, err)
	}

	slog.Default().Info(LogMsgConnected, "addr", opts.Addr)
	return rdb, nil
}
