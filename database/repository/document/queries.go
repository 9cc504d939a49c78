package documentRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lovelink/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// List retrieves all documents matching filter, in natural order.
func (r *MongoDocumentRepo) List(ctx context.Context, filter bson.M) ([]bson.M, error) {
	ctx, cancel := NewContext(ctx, 10*time.Second)
	defer cancel()

	if filter == nil {
		filter = bson.M{}
	}
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", r.coll.Name(), err)
	}
	defer cursor.Close(ctx)

	docs := []bson.M{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", r.coll.Name(), err)
	}
	if docs == nil {
		docs = []bson.M{}
	}
	return docs, nil
}

// GetByID retrieves one document by its ObjectID.
func (r *MongoDocumentRepo) GetByID(ctx context.Context, id string) (bson.M, error) {
	oid, err := ParseID(id)
	if err != nil {
		return nil, err
	}

	ctx, cancel := NewContext(ctx, 5*time.Second)
	defer cancel()

	var doc bson.M
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, utils.ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch %s with id %s: %w", r.coll.Name(), id, err)
	}
	return doc, nil
}
