package domain

import (
	"errors"
	"time"
)

var (
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidCredentials = errors.New("user not found / invalid password")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrForbidden          = errors.New("access forbidden")
	ErrNotImplemented     = errors.New("not implemented")
)

// Role is the small-integer role identifier persisted on a user and carried
// in token claims.
type Role int

const (
	RoleManager  Role = 1
	RoleEmployee Role = 2
	RoleAdmin    Role = 3
)

// RoleFromID resolves a raw role integer, e.g. one read from a token claim.
// Unknown values report ok=false and must be treated as deny.
func RoleFromID(id int) (Role, bool) {
	switch Role(id) {
	case RoleManager, RoleEmployee, RoleAdmin:
		return Role(id), true
	}
	return 0, false
}

func (r Role) String() string {
	switch r {
	case RoleManager:
		return "Manager"
	case RoleEmployee:
		return "Employee"
	case RoleAdmin:
		return "Admin"
	}
	return "Unknown"
}

// NotificationType selects how a user is notified about schedule changes.
type NotificationType int

const (
	NotificationEmail       NotificationType = 1
	NotificationTextMessage NotificationType = 2
)

func (n NotificationType) String() string {
	switch n {
	case NotificationEmail:
		return "Email"
	case NotificationTextMessage:
		return "TextMessage"
	}
	return "Unknown"
}

// User is the persisted identity record. PasswordHash never leaves the
// process; API responses are mapped through handler DTOs.
type User struct {
	ID               int64            `gorm:"primaryKey"`
	Name             string           `gorm:"not null"`
	Email            string           `gorm:"uniqueIndex;not null"`
	PasswordHash     string           `gorm:"column:password;not null"`
	JobTitle         string           `gorm:"not null"`
	PhoneNumber      *string
	Enabled          bool             `gorm:"not null"`
	NotificationType NotificationType `gorm:"not null"`
	Role             Role             `gorm:"not null"`
	ParentUserID     *int64
	CreatedAt        time.Time        `gorm:"column:date_created;not null"`
}

// Principal is the authenticated identity extracted from a verified token.
// It lives for a single request and is never persisted. RoleID is kept as the
// raw claim value; resolution against the Role enumeration happens at the
// role gate so that an unknown integer denies instead of erroring earlier.
type Principal struct {
	UserID int64
	RoleID int
}

// HasAnyRole reports whether the principal's role is a member of the allowed
// set. An unresolvable role claim always denies. An empty set means any
// authenticated principal passes.
func (p Principal) HasAnyRole(roles ...Role) bool {
	if len(roles) == 0 {
		return true
	}
	role, ok := RoleFromID(p.RoleID)
	if !ok {
		return false
	}
	for _, r := range roles {
		if role == r {
			return true
		}
	}
	return false
}
