package documentRepo

import (
	"context"
	"fmt"
	"time"

	"lovelink/models"
	"lovelink/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repository is the uniform contract over one schema-less collection.
type Repository interface {
	// List returns every document matching filter; a nil filter matches all.
	List(ctx context.Context, filter bson.M) ([]bson.M, error)
	// GetByID returns the document with the given hex ObjectID.
	GetByID(ctx context.Context, id string) (bson.M, error)
	// Insert stores doc under a newly assigned ObjectID.
	Insert(ctx context.Context, doc bson.M) (*models.InsertResult, error)
	// DeleteByID removes at most one document; a missing id yields a zero count.
	DeleteByID(ctx context.Context, id string) (*models.DeleteResult, error)
}

// MongoDocumentRepo implements Repository using MongoDB.
type MongoDocumentRepo struct {
	coll *mongo.Collection
}

// NewMongoDocumentRepo wraps coll.
func NewMongoDocumentRepo(coll *mongo.Collection) *MongoDocumentRepo {
	return &MongoDocumentRepo{coll: coll}
}

// NewContext derives a bounded context for a single database call.
func NewContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return context.WithTimeout(parent, timeout)
}

// ParseID converts a hex string into an ObjectID.
func ParseID(hex string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", utils.ErrInvalidID, hex)
	}
	return oid, nil
}
