package userRepo

import (
	"context"

	"doctorsportal/models"
)

// UserRepository provides access to registered user accounts.
type UserRepository interface {
	// GetByEmail resolves to (nil, nil) when no user matches.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetAll(ctx context.Context) ([]models.User, error)
	Insert(ctx context.Context, user *models.User) error
	// PromoteToAdmin upserts the admin role onto the given user id and
	// reports whether an existing document was matched.
	PromoteToAdmin(ctx context.Context, id string) (bool, error)
}
