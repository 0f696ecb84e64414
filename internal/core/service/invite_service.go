package service

import (
	"context"
	"strings"

	"github.com/starsky/backend/internal/core/domain"
)

// InviteService validates employee invites. Persisting the invite and
// queueing the invitation email are not built yet, so a well-formed invite
// still ends in domain.ErrNotImplemented.
type InviteService struct{}

func NewInviteService() *InviteService {
	return &InviteService{}
}

func (s *InviteService) Create(_ context.Context, name, email, jobTitle string) error {
	if strings.TrimSpace(email) == "" || !strings.Contains(email, "@") {
		return domain.NewValidationError("Email in body has invalid format.")
	}
	if strings.TrimSpace(jobTitle) == "" {
		return domain.NewValidationError("Job title in body has invalid format.")
	}
	if strings.TrimSpace(name) == "" {
		return domain.NewValidationError("Employee name in body has invalid format.")
	}

	// TODO: insert the invite and hand it to the starsky-email queue.
	return domain.ErrNotImplemented
}
