package service

import (
	"context"

	"github.com/starsky/backend/internal/core/domain"
	"github.com/starsky/backend/internal/core/ports"
)

// UserService resolves user records for authenticated principals.
type UserService struct {
	users ports.UserRepository
}

func NewUserService(users ports.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}
