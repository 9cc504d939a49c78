package user

import (
	"context"
	"fmt"

	"lovelink/models"
	"lovelink/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// RegisterUser stores a new user document. Registering an email twice is not
// an error: the repository's user-exists sentinel is passed through.
func (s *DefaultUserService) RegisterUser(ctx context.Context, doc bson.M) (*models.InsertResult, error) {
	res, err := s.Repo.Create(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	if res.Message == models.UserExistsMessage {
		utils.GetLogger().Debug("RegisterUser: email already registered", zap.Any("email", doc["email"]))
	}
	return res, nil
}

// DeleteUser removes the user with the given id.
func (s *DefaultUserService) DeleteUser(ctx context.Context, id string) (*models.DeleteResult, error) {
	res, err := s.Repo.DeleteByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete user %s: %w", id, err)
	}
	return res, nil
}
