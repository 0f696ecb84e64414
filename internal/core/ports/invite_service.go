package ports

import "context"

type InviteService interface {
	Create(ctx context.Context, name, email, jobTitle string) error
}
