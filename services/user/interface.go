package user

import (
	"context"

	"doctorsportal/models"
)

// UserService manages accounts, role resolution and token issuance.
type UserService interface {
	GetAll(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, u models.User) (*models.User, error)
	// ResolveRole maps an email to exactly one role: no account resolves to
	// Guest, an account without an elevated role to Patient.
	ResolveRole(ctx context.Context, email string) (models.Role, error)
	// IssueToken returns a signed access token for a known email, or an
	// empty token (and no error) for an unknown one.
	IssueToken(ctx context.Context, email string) (string, error)
	PromoteToAdmin(ctx context.Context, id string) (bool, error)
}
