package userRepo

import (
	"context"
	"testing"

	"lovelink/models"
	"lovelink/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func namespace(mt *mtest.T) string {
	return mt.Coll.Database().Name() + "." + mt.Coll.Name()
}

func TestMongoUserRepo_GetByEmail(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("admin user", func(mt *mtest.T) {
		repo := NewMongoUserRepo(mt.Coll)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: id}, {Key: "email", Value: "a@x.com"}, {Key: "role", Value: "admin"}},
		))

		u, err := repo.GetByEmail(context.Background(), "a@x.com")
		require.NoError(mt, err)
		require.NotNil(mt, u)
		assert.Equal(mt, id, u.ID)
		assert.True(mt, u.IsAdmin())
	})

	mt.Run("user without role", func(mt *mtest.T) {
		repo := NewMongoUserRepo(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "email", Value: "b@x.com"}},
		))

		u, err := repo.GetByEmail(context.Background(), "b@x.com")
		require.NoError(mt, err)
		require.NotNil(mt, u)
		assert.False(mt, u.IsAdmin())
	})

	mt.Run("non-string role is not admin", func(mt *mtest.T) {
		repo := NewMongoUserRepo(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "email", Value: "a@x.com"}, {Key: "role", Value: int32(1)}},
		))

		u, err := repo.GetByEmail(context.Background(), "a@x.com")
		require.NoError(mt, err)
		require.NotNil(mt, u)
		assert.Equal(mt, int32(1), u.Role)
		assert.False(mt, u.IsAdmin())
	})

	mt.Run("string id", func(mt *mtest.T) {
		repo := NewMongoUserRepo(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "seeded-1"}, {Key: "email", Value: "s@x.com"}, {Key: "role", Value: "admin"}},
		))

		u, err := repo.GetByEmail(context.Background(), "s@x.com")
		require.NoError(mt, err)
		require.NotNil(mt, u)
		assert.Equal(mt, "seeded-1", u.ID)
		assert.True(mt, u.IsAdmin())
	})

	mt.Run("unknown email", func(mt *mtest.T) {
		repo := NewMongoUserRepo(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch))

		u, err := repo.GetByEmail(context.Background(), "nobody@x.com")
		require.NoError(mt, err)
		assert.Nil(mt, u)
	})
}

func TestMongoUserRepo_Create(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("new email is inserted", func(mt *mtest.T) {
		repo := NewMongoUserRepo(mt.Coll)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch),
			mtest.CreateSuccessResponse(),
		)

		res, err := repo.Create(context.Background(), bson.M{"email": "a@x.com", "name": "Asha"})
		require.NoError(mt, err)
		assert.True(mt, res.Acknowledged)
		assert.IsType(mt, primitive.ObjectID{}, res.InsertedID)
		assert.Empty(mt, res.Message)
	})

	mt.Run("existing email returns sentinel", func(mt *mtest.T) {
		repo := NewMongoUserRepo(mt.Coll)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch,
			bson.D{{Key: "_id", Value: primitive.NewObjectID()}},
		))

		res, err := repo.Create(context.Background(), bson.M{"email": "a@x.com"})
		require.NoError(mt, err)
		assert.Equal(mt, models.UserExistsMessage, res.Message)
		assert.Nil(mt, res.InsertedID)
	})

	mt.Run("duplicate key race returns sentinel", func(mt *mtest.T) {
		repo := NewMongoUserRepo(mt.Coll)
		mt.AddMockResponses(
			mtest.CreateCursorResponse(0, namespace(mt), mtest.FirstBatch),
			mtest.CreateWriteErrorsResponse(mtest.WriteError{
				Index:   0,
				Code:    11000,
				Message: "E11000 duplicate key error collection: lovelinkDB.users index: email_1",
			}),
		)

		res, err := repo.Create(context.Background(), bson.M{"email": "a@x.com"})
		require.NoError(mt, err)
		assert.Equal(mt, models.UserExistsMessage, res.Message)
	})

	mt.Run("lookup failure propagates", func(mt *mtest.T) {
		repo := NewMongoUserRepo(mt.Coll)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    2,
			Message: "bad value",
			Name:    "BadValue",
		}))

		_, err := repo.Create(context.Background(), bson.M{"email": "a@x.com"})
		assert.Error(mt, err)
	})
}

func TestMongoUserRepo_PromoteToAdmin(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("existing user", func(mt *mtest.T) {
		repo := NewMongoUserRepo(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 1},
			bson.E{Key: "nModified", Value: 1},
		))

		res, err := repo.PromoteToAdmin(context.Background(), primitive.NewObjectID().Hex())
		require.NoError(mt, err)
		assert.Equal(mt, int64(1), res.MatchedCount)
		assert.Equal(mt, int64(1), res.ModifiedCount)
	})

	mt.Run("missing user is zero counts", func(mt *mtest.T) {
		repo := NewMongoUserRepo(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse(
			bson.E{Key: "n", Value: 0},
			bson.E{Key: "nModified", Value: 0},
		))

		res, err := repo.PromoteToAdmin(context.Background(), primitive.NewObjectID().Hex())
		require.NoError(mt, err)
		assert.True(mt, res.Acknowledged)
		assert.Equal(mt, int64(0), res.MatchedCount)
	})

	mt.Run("malformed id", func(mt *mtest.T) {
		repo := NewMongoUserRepo(mt.Coll)

		_, err := repo.PromoteToAdmin(context.Background(), "nope")
		assert.ErrorIs(mt, err, utils.ErrInvalidID)
	})
}

func TestMongoUserRepo_EnsureIndexes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("unique email index", func(mt *mtest.T) {
		repo := NewMongoUserRepo(mt.Coll)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		require.NoError(mt, repo.EnsureIndexes(context.Background()))
	})

	mt.Run("existing duplicates", func(mt *mtest.T) {
		repo := NewMongoUserRepo(mt.Coll)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11000,
			Message: "E11000 duplicate key error",
			Name:    "DuplicateKey",
		}))

		assert.Error(mt, repo.EnsureIndexes(context.Background()))
	})
}
