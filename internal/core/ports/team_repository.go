package ports

import (
	"context"

	"github.com/starsky/backend/internal/core/domain"
)

// TeamRepository defines the interface for team persistence.
type TeamRepository interface {
	FindByOwnerID(ctx context.Context, ownerID int64) ([]domain.Team, error)
	FindByMemberID(ctx context.Context, userID int64) ([]domain.Team, error)
}
