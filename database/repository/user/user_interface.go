package userRepo

import (
	"context"

	"lovelink/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// List retrieves all user documents.
	List(ctx context.Context) ([]bson.M, error)
	// GetByEmail retrieves the user with the given email, or nil when none exists.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Create inserts doc unless a user with the same email already exists,
	// in which case the user-exists sentinel is returned.
	Create(ctx context.Context, doc bson.M) (*models.InsertResult, error)
	// PromoteToAdmin sets role "admin" on the user with the given id.
	PromoteToAdmin(ctx context.Context, id string) (*models.UpdateResult, error)
	// DeleteByID removes a user document by its ID.
	DeleteByID(ctx context.Context, id string) (*models.DeleteResult, error)
}
