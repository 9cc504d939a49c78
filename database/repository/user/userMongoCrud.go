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

// Create inserts a new user document unless its email is already registered.
// A missing email is looked up as null, so at most one email-less user exists.
func (r *MongoUserRepo) Create(ctx context.Context, doc bson.M) (*models.InsertResult, error) {
	taken, err := r.emailTaken(ctx, doc["email"])
	if err != nil {
		return nil, err
	}
	if taken {
		return models.UserExistsResult(), nil
	}

	res, err := r.docs.Insert(ctx, doc)
	if err != nil {
		// Lost a registration race against the unique email index.
		if mongo.IsDuplicateKeyError(err) {
			return models.UserExistsResult(), nil
		}
		return nil, err
	}
	return res, nil
}

func (r *MongoUserRepo) emailTaken(ctx context.Context, email interface{}) (bool, error) {
	ctx, cancel := documentRepo.NewContext(ctx, 5*time.Second)
	defer cancel()

	opts := options.FindOne().SetProjection(bson.M{"_id": 1})
	err := r.coll.FindOne(ctx, bson.M{"email": email}, opts).Err()
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return false, nil
	default:
		return false, fmt.Errorf("failed to check existing user: %w", err)
	}
}

// PromoteToAdmin sets role "admin" on the targeted user. A missing id is not
// an error; the result simply reports zero matches.
func (r *MongoUserRepo) PromoteToAdmin(ctx context.Context, id string) (*models.UpdateResult, error) {
	oid, err := documentRepo.ParseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := documentRepo.NewContext(ctx, 5*time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"role": models.RoleAdmin}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update user with id %s: %w", id, err)
	}
	return &models.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}, nil
}

// DeleteByID removes a user document by its ID.
func (r *MongoUserRepo) DeleteByID(ctx context.Context, id string) (*models.DeleteResult, error) {
	return r.docs.DeleteByID(ctx, id)
}
