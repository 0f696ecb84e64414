package service

import (
	"context"

	"github.com/starsky/backend/internal/core/domain"
	"github.com/starsky/backend/internal/core/ports"
)

// TeamService lists the teams visible to a principal: managers see the teams
// they own, employees the teams they are a member of.
type TeamService struct {
	teams ports.TeamRepository
}

func NewTeamService(teams ports.TeamRepository) *TeamService {
	return &TeamService{teams: teams}
}

func (s *TeamService) ListForPrincipal(ctx context.Context, principal domain.Principal) ([]domain.Team, error) {
	switch {
	case principal.HasAnyRole(domain.RoleManager):
		return s.teams.FindByOwnerID(ctx, principal.UserID)
	case principal.HasAnyRole(domain.RoleEmployee):
		return s.teams.FindByMemberID(ctx, principal.UserID)
	}
	return nil, domain.ErrForbidden
}
