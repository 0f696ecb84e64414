package ports

import (
	"context"

	"github.com/starsky/backend/internal/core/domain"
)

type TeamService interface {
	ListForPrincipal(ctx context.Context, principal domain.Principal) ([]domain.Team, error)
}
