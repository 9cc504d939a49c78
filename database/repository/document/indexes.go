package documentRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// EnsureIndexes creates ascending single-field indexes for fields used in list filters.
func (r *MongoDocumentRepo) EnsureIndexes(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	ctx, cancel := NewContext(ctx, 10*time.Second)
	defer cancel()

	indexModels := make([]mongo.IndexModel, 0, len(keys))
	for _, key := range keys {
		indexModels = append(indexModels, mongo.IndexModel{Keys: bson.D{{Key: key, Value: 1}}})
	}

	if _, err := r.coll.Indexes().CreateMany(ctx, indexModels); err != nil {
		return fmt.Errorf("failed to create indexes on %s: %w", r.coll.Name(), err)
	}
	return nil
}
