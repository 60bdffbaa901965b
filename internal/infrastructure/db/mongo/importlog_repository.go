package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/saluimoveis/admin-api/internal/core/domain"
)

const collectionImportLogs = "import_logs"

// ImportLogRepository reads the trail written by the XML import job.
type ImportLogRepository struct {
	col *mongo.Collection
}

func NewImportLogRepository(db *mongo.Database) *ImportLogRepository {
	return &ImportLogRepository{col: db.Collection(collectionImportLogs)}
}

func (r *ImportLogRepository) Recent(ctx context.Context, limit int64) ([]domain.ImportLog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetLimit(limit).
		SetSort(bson.D{{Key: "started_at", Value: -1}})

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("recent import logs: %w", err)
	}
	defer cursor.Close(ctx)

	logs := []domain.ImportLog{}
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, fmt.Errorf("decode import logs: %w", err)
	}
	return logs, nil
}

func (r *ImportLogRepository) Latest(ctx context.Context) (*domain.ImportLog, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "started_at", Value: -1}})

	var log domain.ImportLog
	if err := r.col.FindOne(ctx, bson.M{}, opts).Decode(&log); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("latest import log: %w", err)
	}
	return &log, nil
}
