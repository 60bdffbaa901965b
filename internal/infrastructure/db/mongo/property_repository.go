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

const collectionProperties = "properties"

type PropertyRepository struct {
	col *mongo.Collection
}

func NewPropertyRepository(db *mongo.Database) *PropertyRepository {
	return &PropertyRepository{col: db.Collection(collectionProperties)}
}

func (r *PropertyRepository) FindByID(ctx context.Context, id string) (*domain.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Property
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPropertyNotFound
		}
		return nil, fmt.Errorf("find property: %w", err)
	}
	return &p, nil
}

func (r *PropertyRepository) List(ctx context.Context, filter ports.PropertyFilter) ([]domain.Property, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if filter.IsActive != nil {
		query["is_active"] = *filter.IsActive
	}

	total, err := r.col.CountDocuments(ctx, query)
	if err != nil {
		return nil, 0, fmt.Errorf("count properties: %w", err)
	}

	opts := options.Find().
		SetSkip(filter.Skip).
		SetLimit(filter.Limit).
		SetSort(bson.D{{Key: "created_at", Value: -1}})

	cursor, err := r.col.Find(ctx, query, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("list properties: %w", err)
	}
	defer cursor.Close(ctx)

	properties := []domain.Property{}
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, 0, fmt.Errorf("decode properties: %w", err)
	}
	return properties, total, nil
}

func (r *PropertyRepository) SetActive(ctx context.Context, id string, active bool) error {
	return r.setFlag(ctx, id, "is_active", active)
}

func (r *PropertyRepository) SetFeatured(ctx context.Context, id string, featured bool) error {
	return r.setFlag(ctx, id, "is_featured", featured)
}

func (r *PropertyRepository) setFlag(ctx context.Context, id, field string, value bool) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{field: value, "updated_at": time.Now().UTC()}}
	res, err := r.col.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("update property %s: %w", field, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPropertyNotFound
	}
	return nil
}

func (r *PropertyRepository) Count(ctx context.Context, onlyActive bool) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{}
	if onlyActive {
		query["is_active"] = true
	}
	return r.col.CountDocuments(ctx, query)
}

func (r *PropertyRepository) CountByType(ctx context.Context) ([]ports.GroupCount, error) {
	return r.groupCount(ctx, "$property_type")
}

func (r *PropertyRepository) CountByPurpose(ctx context.Context) ([]ports.GroupCount, error) {
	return r.groupCount(ctx, "$purpose")
}

func (r *PropertyRepository) groupCount(ctx context.Context, field string) ([]ports.GroupCount, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: field},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("group properties by %s: %w", field, err)
	}
	defer cursor.Close(ctx)

	counts := []ports.GroupCount{}
	if err := cursor.All(ctx, &counts); err != nil {
		return nil, fmt.Errorf("decode group counts: %w", err)
	}
	return counts, nil
}

// TopViewed returns the most viewed active properties.
func (r *PropertyRepository) TopViewed(ctx context.Context, limit int64) ([]domain.Property, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetLimit(limit).
		SetSort(bson.D{{Key: "view_count", Value: -1}})

	cursor, err := r.col.Find(ctx, bson.M{"is_active": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("top properties: %w", err)
	}
	defer cursor.Close(ctx)

	properties := []domain.Property{}
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, fmt.Errorf("decode top properties: %w", err)
	}
	return properties, nil
}

// EnsureIndexes creates the indexes backing admin filters and the feed importer.
func (r *PropertyRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "external_code", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "is_active", Value: 1}}},
		{Keys: bson.D{{Key: "is_featured", Value: 1}}},
		{Keys: bson.D{{Key: "property_type", Value: 1}}},
		{Keys: bson.D{{Key: "purpose", Value: 1}}},
		{Keys: bson.D{{Key: "view_count", Value: -1}}},
	})
	return err
}
