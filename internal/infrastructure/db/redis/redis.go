// Package redis holds the Redis client setup and the dashboard
// snapshot cache. Redis is optional-ish infrastructure here: only the
// dashboard reads through it, and the readiness probe pings it.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// opTimeout bounds every cache operation, including the connect ping.
// Dashboard reads degrade to a Mongo rebuild on error, so a short
// ceiling is preferable to a hung request.
const opTimeout = 5 * time.Second

// Connect dials Redis at addr, selects the given logical database and
// verifies the connection with a ping before handing the client out.
func Connect(ctx context.Context, addr string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})

	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", addr, err)
	}

	return client, nil
}
