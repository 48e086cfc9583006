package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/App-Genius/topline-platform/internal/models"
	"github.com/App-Genius/topline-platform/internal/rbac"
	"github.com/App-Genius/topline-platform/internal/repository"
)

// UserService answers user listing and role-management questions under the
// RBAC policy.
type UserService interface {
	List(ctx context.Context, actor Actor) ([]models.User, error)
	AllowedRoutes(actor Actor) []string
	CanDeleteRole(ctx context.Context, role string) (rbac.DeletePermission, error)
}

type userService struct {
	users  repository.UserRepository
	logger zerolog.Logger
}

// NewUserService constructs the user service.
func NewUserService(users repository.UserRepository, logger zerolog.Logger) UserService {
	return &userService{
		users:  users,
		logger: logger.With().Str("component", "user_service").Logger(),
	}
}

func (s *userService) List(ctx context.Context, actor Actor) ([]models.User, error) {
	if !rbac.CanViewAllUsers(rbac.Role(actor.Role)) {
		return nil, &PermissionError{Reason: "listing users requires a manager role"}
	}
	return s.users.List(ctx)
}

func (s *userService) AllowedRoutes(actor Actor) []string {
	return rbac.AllowedRoutes(rbac.Role(actor.Role))
}

func (s *userService) CanDeleteRole(ctx context.Context, role string) (rbac.DeletePermission, error) {
	count, err := s.users.CountByRole(ctx, role)
	if err != nil {
		return rbac.DeletePermission{}, err
	}
	return rbac.CanDeleteRole(int(count)), nil
}
