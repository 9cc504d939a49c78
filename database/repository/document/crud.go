package documentRepo

import (
	"context"
	"fmt"
	"time"

	"lovelink/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Insert stores doc with a freshly generated ObjectID.
// Any client-supplied _id is replaced so that identifiers stay repository-assigned.
func (r *MongoDocumentRepo) Insert(ctx context.Context, doc bson.M) (*models.InsertResult, error) {
	ctx, cancel := NewContext(ctx, 5*time.Second)
	defer cancel()

	stored := make(bson.M, len(doc)+1)
	for k, v := range doc {
		stored[k] = v
	}
	stored["_id"] = primitive.NewObjectID()

	res, err := r.coll.InsertOne(ctx, stored)
	if err != nil {
		return nil, fmt.Errorf("failed to insert into %s: %w", r.coll.Name(), err)
	}
	return &models.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}, nil
}

// DeleteByID removes the document with the given ObjectID, if any.
func (r *MongoDocumentRepo) DeleteByID(ctx context.Context, id string) (*models.DeleteResult, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := NewContext(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("failed to delete from %s with id %s: %w", r.coll.Name(), id, err)
	}
	return &models.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}, nil
}
