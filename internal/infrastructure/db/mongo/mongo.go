// Package mongo implements the repositories behind the admin API. All
// admin data (users, properties, contacts, brokers, import logs,
// favorites, notifications) lives in a single MongoDB database shared
// with the public site and the XML import job.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// defaultTimeout bounds every repository operation. Admin queries are
// small index-backed reads; anything slower than this is a problem
// worth surfacing, not waiting for.
const defaultTimeout = 10 * time.Second

// Connect dials MongoDB, pings it to fail fast on bad credentials or
// an unreachable host, and returns the client together with the
// database all repositories operate on.
func Connect(ctx context.Context, uri, database string) (*mongo.Client, *mongo.Database, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, nil, fmt.Errorf("mongo ping: %w", err)
	}

	return client, client.Database(database), nil
}
