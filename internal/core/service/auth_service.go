package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/starsky/backend/internal/core/domain"
	"github.com/starsky/backend/internal/core/ports"
)

// AuthService implements registration and login.
type AuthService struct {
	users  ports.UserRepository
	tokens *TokenIssuer
}

func NewAuthService(users ports.UserRepository, tokens *TokenIssuer) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Login validates the credential shape, verifies the password against the
// stored hash, and issues a bearer token. An unknown email and a wrong
// password produce the same error so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	if err := ValidateCredentials(email, password); err != nil {
		return "", err
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !CheckPassword(password, user.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID, user.Role)
}

// Register creates a new manager account. New accounts default to the
// Manager role, email notifications, and enabled=true.
func (s *AuthService) Register(ctx context.Context, name, email, password, jobTitle string) (*domain.User, error) {
	if err := ValidateCredentials(email, password); err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, domain.NewValidationError("Name in body can't be blank.")
	}
	if strings.TrimSpace(jobTitle) == "" {
		return nil, domain.NewValidationError("Job title in body can't be blank.")
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:             name,
		Email:            email,
		PasswordHash:     hash,
		JobTitle:         jobTitle,
		Enabled:          true,
		NotificationType: domain.NotificationEmail,
		Role:             domain.RoleManager,
		CreatedAt:        time.Now().UTC(),
	}

	return s.users.Create(ctx, user)
}
