package userRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	documentRepo "lovelink/database/repository/document"
	"lovelink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// userProjection limits lookups to the fields models.User carries.
var userProjection = bson.M{"_id": 1, "email": 1, "role": 1}

// List retrieves all user documents, every field included.
func (r *MongoUserRepo) List(ctx context.Context) ([]bson.M, error) {
	return r.docs.List(ctx, nil)
}

// GetByEmail retrieves a user by its email address.
func (r *MongoUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	ctx, cancel := documentRepo.NewContext(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOne().SetProjection(userProjection)

	var user models.User
	if err := r.coll.FindOne(ctx, bson.M{"email": email}, opts).Decode(&user); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch user with email %s: %w", email, err)
	}
	return &user, nil
}
