package routes

import (
	"context"
	"sync"

	documentRepo "lovelink/database/repository/document"
	"lovelink/models"
	"lovelink/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memoryCollection is an in-memory stand-in for one MongoDB collection.
type memoryCollection struct {
	mu    sync.Mutex
	order []primitive.ObjectID
	docs  map[primitive.ObjectID]bson.M
}

func newMemoryCollection() *memoryCollection {
	return &memoryCollection{docs: map[primitive.ObjectID]bson.M{}}
}

// matches applies equality filters; a nil filter value matches a missing field.
func matches(doc, filter bson.M) bool {
	for k, want := range filter {
		got, present := doc[k]
		if want == nil {
			if present && got != nil {
				return false
			}
			continue
		}
		if !present || got != want {
			return false
		}
	}
	return true
}

func clone(doc bson.M) bson.M {
	out := make(bson.M, len(doc))
	for k, v := range doc {
		out[k] = v
	}
	return out
}

func (m *memoryCollection) List(_ context.Context, filter bson.M) ([]bson.M, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := []bson.M{}
	for _, id := range m.order {
		if doc, ok := m.docs[id]; ok && matches(doc, filter) {
			out = append(out, clone(doc))
		}
	}
	return out, nil
}

func (m *memoryCollection) GetByID(_ context.Context, id string) (bson.M, error) {
	oid, err := documentRepo.ParseID(id)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	doc, ok := m.docs[oid]
	if !ok {
		return nil, utils.ErrNotFound
	}
	return clone(doc), nil
}

func (m *memoryCollection) Insert(_ context.Context, doc bson.M) (*models.InsertResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	oid := primitive.NewObjectID()
	stored := clone(doc)
	stored["_id"] = oid
	m.docs[oid] = stored
	m.order = append(m.order, oid)
	return &models.InsertResult{Acknowledged: true, InsertedID: oid}, nil
}

func (m *memoryCollection) DeleteByID(_ context.Context, id string) (*models.DeleteResult, error) {
	oid, err := documentRepo.ParseID(id)
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.docs[oid]; !ok {
		return &models.DeleteResult{Acknowledged: true}, nil
	}
	delete(m.docs, oid)
	return &models.DeleteResult{Acknowledged: true, DeletedCount: 1}, nil
}

func (m *memoryCollection) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.docs)
}

// memoryUserRepo implements userRepo.UserRepository over a memoryCollection.
type memoryUserRepo struct {
	*memoryCollection
}

func (r *memoryUserRepo) List(ctx context.Context) ([]bson.M, error) {
	return r.memoryCollection.List(ctx, nil)
}

func (r *memoryUserRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	docs, _ := r.memoryCollection.List(ctx, bson.M{"email": email})
	if len(docs) == 0 {
		return nil, nil
	}
	return &models.User{ID: docs[0]["_id"], Email: email, Role: docs[0]["role"]}, nil
}

func (r *memoryUserRepo) Create(ctx context.Context, doc bson.M) (*models.InsertResult, error) {
	existing, _ := r.memoryCollection.List(ctx, bson.M{"email": doc["email"]})
	if len(existing) > 0 {
		return models.UserExistsResult(), nil
	}
	return r.memoryCollection.Insert(ctx, doc)
}

func (r *memoryUserRepo) PromoteToAdmin(_ context.Context, id string) (*models.UpdateResult, error) {
	oid, err := documentRepo.ParseID(id)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.docs[oid]
	if !ok {
		return &models.UpdateResult{Acknowledged: true}, nil
	}
	res := &models.UpdateResult{Acknowledged: true, MatchedCount: 1}
	if doc["role"] != models.RoleAdmin {
		doc["role"] = models.RoleAdmin
		res.ModifiedCount = 1
	}
	return res, nil
}
