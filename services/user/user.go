package user

import (
	"context"
	"fmt"

	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/models"
	"doctorsportal/utils"

	"github.com/google/uuid"
)

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}

// GetAll returns every registered user.
func (s *DefaultUserService) GetAll(ctx context.Context) ([]models.User, error) {
	return s.Repo.GetAll(ctx)
}

// Create registers a new user account.
func (s *DefaultUserService) Create(ctx context.Context, u models.User) (*models.User, error) {
	if u.Email == "" {
		return nil, fmt.Errorf("user email is required")
	}
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	if err := s.Repo.Insert(ctx, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// ResolveRole maps an email to its role. A missing account is Guest; a stored
// admin marker is Admin; everything else is Patient.
func (s *DefaultUserService) ResolveRole(ctx context.Context, email string) (models.Role, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return models.RoleGuest, err
	}
	if u == nil {
		return models.RoleGuest, nil
	}
	if u.Role == string(models.RoleAdmin) {
		return models.RoleAdmin, nil
	}
	return models.RolePatient, nil
}

// IssueToken signs a time-bounded access token for a registered email. An
// unknown email yields an empty token so the caller can fall through to
// registration.
func (s *DefaultUserService) IssueToken(ctx context.Context, email string) (string, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", nil
	}
	return utils.GenerateToken(email, utils.TokenValidity)
}

// PromoteToAdmin grants the admin role to the given user id.
func (s *DefaultUserService) PromoteToAdmin(ctx context.Context, id string) (bool, error) {
	return s.Repo.PromoteToAdmin(ctx, id)
}
