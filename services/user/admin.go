package user

import (
	"context"
	"fmt"

	"lovelink/models"

	"go.mongodb.org/mongo-driver/bson"
)

// IsAdmin reports whether email belongs to a stored user with role "admin".
// Unknown and empty emails are simply not admins.
func (s *DefaultUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	if email == "" {
		return false, nil
	}
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return false, fmt.Errorf("failed to look up user role: %w", err)
	}
	return u.IsAdmin(), nil
}

// GetAllUsers retrieves every user document for admin access.
func (s *DefaultUserService) GetAllUsers(ctx context.Context) ([]bson.M, error) {
	users, err := s.Repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	return users, nil
}

// PromoteToAdmin grants the admin role to the user with the given id.
func (s *DefaultUserService) PromoteToAdmin(ctx context.Context, id string) (*models.UpdateResult, error) {
	res, err := s.Repo.PromoteToAdmin(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to promote user %s: %w", id, err)
	}
	return res, nil
}
