package services

import (
	"context"

	"github.com/methodhub/backend/apperr"
	"github.com/methodhub/backend/models"
)

type UpdateUserInput struct {
	IsAdmin  *bool
	IsBanned *bool
}

// UsersService is the admin surface over accounts. Every returned user is
// stripped of the password hash.
type UsersService struct {
	users UserStore
}

func NewUsersService(users UserStore) *UsersService {
	return &UsersService{users: users}
}

func (s *UsersService) FindAll(ctx context.Context) ([]models.PublicUser, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.PublicUser, 0, len(users))
	for _, user := range users {
		out = append(out, user.Public())
	}
	return out, nil
}

func (s *UsersService) FindOne(ctx context.Context, id int) (*models.PublicUser, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("user with ID %d not found", id)
	}
	public := user.Public()
	return &public, nil
}

func (s *UsersService) Update(ctx context.Context, id int, in UpdateUserInput) (*models.PublicUser, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("user with ID %d not found", id)
	}
	if in.IsAdmin == nil && in.IsBanned == nil {
		public := user.Public()
		return &public, nil
	}

	updated, err := s.users.Update(ctx, id, models.UserPatch{
		IsAdmin:  in.IsAdmin,
		IsBanned: in.IsBanned,
	})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperr.NotFound("user with ID %d not found", id)
	}
	public := updated.Public()
	return &public, nil
}
