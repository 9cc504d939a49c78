package userRepo

import (
	"context"
	"fmt"
	"time"

	documentRepo "lovelink/database/repository/document"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates a unique index on email. It is partial so that
// documents without a string email do not collide with each other.
func (r *MongoUserRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := documentRepo.NewContext(ctx, 10*time.Second)
	defer cancel()

	indexModel := mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"email": bson.M{"$type": "string"}}),
	}

	if _, err := r.coll.Indexes().CreateOne(ctx, indexModel); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}
