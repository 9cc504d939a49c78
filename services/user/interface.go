package user

import (
	"context"

	userRepo "lovelink/database/repository/user"
	"lovelink/models"

	"go.mongodb.org/mongo-driver/bson"
)

type UserService interface {
	// Registration
	RegisterUser(ctx context.Context, doc bson.M) (*models.InsertResult, error)

	// Authorization
	IsAdmin(ctx context.Context, email string) (bool, error)

	// Admin / Utility
	GetAllUsers(ctx context.Context) ([]bson.M, error)
	PromoteToAdmin(ctx context.Context, id string) (*models.UpdateResult, error)
	DeleteUser(ctx context.Context, id string) (*models.DeleteResult, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
