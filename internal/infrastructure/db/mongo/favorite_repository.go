package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/saluimoveis/admin-api/internal/core/domain"
)

const collectionFavorites = "favorites"

type FavoriteRepository struct {
	col *mongo.Collection
}

func NewFavoriteRepository(db *mongo.Database) *FavoriteRepository {
	return &FavoriteRepository{col: db.Collection(collectionFavorites)}
}

func (r *FavoriteRepository) UserIDsByProperty(ctx context.Context, propertyID string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"property_id": propertyID})
	if err != nil {
		return nil, fmt.Errorf("find favorites: %w", err)
	}
	defer cursor.Close(ctx)

	favorites := []domain.Favorite{}
	if err := cursor.All(ctx, &favorites); err != nil {
		return nil, fmt.Errorf("decode favorites: %w", err)
	}

	userIDs := make([]string, 0, len(favorites))
	for _, f := range favorites {
		userIDs = append(userIDs, f.UserID)
	}
	return userIDs, nil
}
