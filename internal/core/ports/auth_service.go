package ports

import (
	"context"

	"github.com/starsky/backend/internal/core/domain"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, name, email, password, jobTitle string) (*domain.User, error)
}
