package service

import (
	"strings"

	"github.com/starsky/backend/internal/core/domain"
)

// ValidateCredentials enforces the credential shape rules shared by login and
// registration. Rules run in order, first failure wins: email must be
// non-blank and contain "@", password length must be within [8, 72].
func ValidateCredentials(email, password string) error {
	if strings.TrimSpace(email) == "" || !strings.Contains(email, "@") {
		return domain.NewValidationError("Email in body has invalid format.")
	}
	if len(password) < 8 || len(password) > 72 {
		return domain.NewValidationError("Password length must be higher than 8 and lower than 72 characters.")
	}
	return nil
}
