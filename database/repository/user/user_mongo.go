package userRepo

import (
	documentRepo "lovelink/database/repository/document"

	"go.mongodb.org/mongo-driver/mongo"
)

// MongoUserRepo implements UserRepository using MongoDB.
type MongoUserRepo struct {
	coll *mongo.Collection
	docs *documentRepo.MongoDocumentRepo
}

// NewMongoUserRepo creates a new instance of UserRepository over coll.
func NewMongoUserRepo(coll *mongo.Collection) *MongoUserRepo {
	return &MongoUserRepo{
		coll: coll,
		docs: documentRepo.NewMongoDocumentRepo(coll),
	}
}
