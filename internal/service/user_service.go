package service

import (
	"context"
	"errors"

	"blogapi/internal/models"
	"blogapi/internal/repository"
)

type UserService interface {
	Profile(ctx context.Context, userID string) (*models.User, error)
}

type userService struct {
	userRepo repository.UserRepository
}

func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{userRepo: userRepo}
}

// Profile reloads the user so the response reflects the stored record
// rather than the copy captured when the request was authenticated.
func (s *userService) Profile(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user.Public(), nil
}
