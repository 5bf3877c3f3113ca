package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"blogapi/internal/auth"
	"blogapi/internal/models"
	"blogapi/internal/repository"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// Session is a user together with a freshly issued identity token.
type Session struct {
	User  *models.User
	Token string
}

type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*Session, error)
	Login(ctx context.Context, input LoginInput) (*Session, error)
	Authenticate(ctx context.Context, token string) (*models.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	codec    *auth.TokenCodec
}

func NewAuthService(userRepo repository.UserRepository, codec *auth.TokenCodec) AuthService {
	return &authService{
		userRepo: userRepo,
		codec:    codec,
	}
}

func (s *authService) Register(ctx context.Context, input RegisterInput) (*Session, error) {
	existing, err := s.userRepo.GetUserByEmail(ctx, input.Email)
	if err == nil && existing != nil {
		return nil, ErrUserExists
	}
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(input.Password)
	if errors.Is(err, auth.ErrPasswordTooLong) {
		return nil, ErrPasswordTooLong
	}
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	return s.session(user)
}

func (s *authService) Login(ctx context.Context, input LoginInput) (*Session, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, input.Password) {
		return nil, ErrInvalidCredentials
	}

	return s.session(user)
}

// Authenticate resolves a bearer token to its user. The reason a token was
// rejected is logged, not returned.
func (s *authService) Authenticate(ctx context.Context, token string) (*models.User, error) {
	userID, err := s.codec.Verify(token)
	if err != nil {
		reason := "invalid"
		if errors.Is(err, auth.ErrExpired) {
			reason = "expired"
		}
		slog.WarnContext(ctx, "token rejected", "reason", reason, "error", err)
		return nil, ErrTokenFailed
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			slog.WarnContext(ctx, "token subject does not exist", "user_id", userID)
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user.Public(), nil
}

func (s *authService) session(user *models.User) (*Session, error) {
	token, err := s.codec.Issue(user.UserID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &Session{User: user.Public(), Token: token}, nil
}
