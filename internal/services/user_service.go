package services

import (
	"context"
	"fmt"

	"github.com/isdelr/users-be/internal/models"
	"github.com/isdelr/users-be/internal/repository"
	"github.com/isdelr/users-be/internal/validation"
)

// UserServiceProvider defines the interface for user services.
type UserServiceProvider interface {
	CreateUser(ctx context.Context, req models.CreateUserRequest) error
	ListUsers(ctx context.Context) ([]models.User, error)
}

// UserService provides business logic for user management.
type UserService struct {
	repo repository.UserRepository
}

// NewUserService creates a new UserService.
func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{repo: repo}
}

// CreateUser validates the request and stores a new user.
// Invalid input never reaches the repository.
func (s *UserService) CreateUser(ctx context.Context, req models.CreateUserRequest) error {
	if err := validation.Validate(req); err != nil {
		return err
	}
	if err := s.repo.Create(ctx, req.ToUser()); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// ListUsers returns all stored users.
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
