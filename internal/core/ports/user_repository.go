package ports

import (
	"context"

	"github.com/starsky/backend/internal/core/domain"
)

// UserRepository defines the interface for user persistence. Lookups only
// return enabled accounts.
type UserRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}
