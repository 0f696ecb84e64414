package ports

import (
	"context"

	"github.com/starsky/backend/internal/core/domain"
)

type UserService interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
