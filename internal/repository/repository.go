package repository

import (
	"context"
	"errors"

	"blogapi/internal/models"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

// NewID returns a time-ordered UUIDv7 string. Sorting by id after
// created_at keeps rows written in the same clock tick in insertion order.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	ListWithAuthors(ctx context.Context) ([]models.PostWithAuthor, error)
	Update(ctx context.Context, post *models.Post) error
	UpdateLikes(ctx context.Context, postID string, likes []string) error
	Delete(ctx context.Context, postID string) error
}

type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, commentID string) (*models.Comment, error)
	ListByPostWithAuthors(ctx context.Context, postID string) ([]models.CommentWithAuthor, error)
	Delete(ctx context.Context, commentID string) error
	DeleteByPostID(ctx context.Context, postID string) (int64, error)
}

// StatusRepository reports whether the backing store is reachable.
type StatusRepository interface {
	Ping(ctx context.Context) error
	CountTables(ctx context.Context) (int, error)
}

// Repository groups the stores one backend provides.
type Repository struct {
	User    UserRepository
	Post    PostRepository
	Comment CommentRepository
	Status  StatusRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:    NewUserRepository(db),
		Post:    NewPostRepository(db),
		Comment: NewCommentRepository(db),
		Status:  NewStatusRepository(db),
	}
}
