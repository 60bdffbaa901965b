package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/saluimoveis/admin-api/internal/core/domain"
	"github.com/saluimoveis/admin-api/internal/core/ports"
)

const collectionBrokers = "brokers"

type BrokerRepository struct {
	col *mongo.Collection
}

func NewBrokerRepository(db *mongo.Database) *BrokerRepository {
	return &BrokerRepository{col: db.Collection(collectionBrokers)}
}

func (r *BrokerRepository) FindByID(ctx context.Context, id string) (*domain.Broker, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var b domain.Broker
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrBrokerNotFound
		}
		return nil, fmt.Errorf("find broker: %w", err)
	}
	return &b, nil
}

func (r *BrokerRepository) List(ctx context.Context, filter ports.BrokerFilter) ([]domain.Broker, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("count brokers: %w", err)
	}

	opts := options.Find().
		SetSkip(filter.Skip).
		SetLimit(filter.Limit).
		SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list brokers: %w", err)
	}
	defer cursor.Close(ctx)

	brokers := []domain.Broker{}
	if err := cursor.All(ctx, &brokers); err != nil {
		return nil, 0, fmt.Errorf("decode brokers: %w", err)
	}
	return brokers, total, nil
}

func (r *BrokerRepository) SetActive(ctx context.Context, id string, active bool) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{"is_active": active, "updated_at": time.Now().UTC()}}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("update broker: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrBrokerNotFound
	}
	return nil
}

func (r *BrokerRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()
	return r.col.CountDocuments(ctx, bson.M{})
}
