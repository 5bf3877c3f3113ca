package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"blogapi/internal/models"

	"github.com/jmoiron/sqlx"
)

type commentRepository struct {
	db *sqlx.DB
}

type commentAuthorRow struct {
	models.Comment
	AuthorFound sql.NullString `db:"author_user_id"`
	AuthorName  sql.NullString `db:"author_name"`
	AuthorEmail sql.NullString `db:"author_email"`
}

func NewCommentRepository(db *sqlx.DB) CommentRepository {
	return &commentRepository{db: db}
}

func (r *commentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (comment_id, content, author_id, post_id, created_at, updated_at)
		VALUES (:comment_id, :content, :author_id, :post_id, :created_at, :updated_at)
	`

	if comment.CommentID == "" {
		comment.CommentID = NewID()
	}

	now := time.Now().UTC()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	if _, err := r.db.NamedExecContext(ctx, query, comment); err != nil {
		return fmt.Errorf("create comment: %w", err)
	}

	return nil
}

func (r *commentRepository) GetByID(ctx context.Context, commentID string) (*models.Comment, error) {
	query := `SELECT * FROM comments WHERE comment_id = $1`

	var comment models.Comment
	err := r.db.GetContext(ctx, &comment, query, commentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("comment %s: %w", commentID, ErrNotFound)
		}
		return nil, fmt.Errorf("get comment: %w", err)
	}

	return &comment, nil
}

// ListByPostWithAuthors returns the comments of a post, newest first.
func (r *commentRepository) ListByPostWithAuthors(ctx context.Context, postID string) ([]models.CommentWithAuthor, error) {
	query := `
		SELECT c.comment_id, c.content, c.author_id, c.post_id, c.created_at, c.updated_at,
		       u.user_id AS author_user_id, u.name AS author_name, u.email AS author_email
		FROM comments c
		LEFT JOIN users u ON u.user_id = c.author_id
		WHERE c.post_id = $1
		ORDER BY c.created_at DESC, c.comment_id DESC
	`

	var rows []commentAuthorRow
	if err := r.db.SelectContext(ctx, &rows, query, postID); err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	comments := make([]models.CommentWithAuthor, 0, len(rows))
	for _, row := range rows {
		comment := models.CommentWithAuthor{
			CommentID: row.CommentID,
			Content:   row.Content,
			PostID:    row.PostID,
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		}
		if row.AuthorFound.Valid {
			comment.Author = &models.Author{
				UserID: row.AuthorFound.String,
				Name:   row.AuthorName.String,
				Email:  row.AuthorEmail.String,
			}
		}
		comments = append(comments, comment)
	}

	return comments, nil
}

func (r *commentRepository) Delete(ctx context.Context, commentID string) error {
	query := `DELETE FROM comments WHERE comment_id = $1`

	result, err := r.db.ExecContext(ctx, query, commentID)
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}

	return expectAffected(result, "comment", commentID)
}

func (r *commentRepository) DeleteByPostID(ctx context.Context, postID string) (int64, error) {
	query := `DELETE FROM comments WHERE post_id = $1`

	result, err := r.db.ExecContext(ctx, query, postID)
	if err != nil {
		return 0, fmt.Errorf("delete comments of post: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}

	return deleted, nil
}
