package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"blogapi/internal/models"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type PostRepositoryImpl struct {
	DB *sqlx.DB
}

// postRow mirrors the posts table; likes is a text[] column.
type postRow struct {
	PostID    string         `db:"post_id"`
	Title     string         `db:"title"`
	Content   string         `db:"content"`
	AuthorID  string         `db:"author_id"`
	Likes     pq.StringArray `db:"likes"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

type postAuthorRow struct {
	postRow
	AuthorName  sql.NullString `db:"author_name"`
	AuthorEmail sql.NullString `db:"author_email"`
	AuthorFound sql.NullString `db:"author_user_id"`
}

func newPostRow(post *models.Post) postRow {
	return postRow{
		PostID:    post.PostID,
		Title:     post.Title,
		Content:   post.Content,
		AuthorID:  post.AuthorID,
		Likes:     pq.StringArray(nonNil(post.Likes)),
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

func (row postRow) toModel() *models.Post {
	return &models.Post{
		PostID:    row.PostID,
		Title:     row.Title,
		Content:   row.Content,
		AuthorID:  row.AuthorID,
		Likes:     nonNil(row.Likes),
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{DB: db}
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *models.Post) error {
	query := `
        INSERT INTO posts
        (post_id, title, content, author_id, likes, created_at, updated_at)
        VALUES
        (:post_id, :title, :content, :author_id, :likes, :created_at, :updated_at)
    `

	if post.PostID == "" {
		post.PostID = NewID()
	}

	now := time.Now().UTC()
	post.CreatedAt = now
	post.UpdatedAt = now
	post.Likes = nonNil(post.Likes)

	_, err := r.DB.NamedExecContext(ctx, query, newPostRow(post))
	if err != nil {
		return fmt.Errorf("create post: %w", err)
	}

	return nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	query := `
        SELECT post_id, title, content, author_id, likes, created_at, updated_at
        FROM posts
        WHERE post_id = $1
    `

	var row postRow
	err := r.DB.GetContext(ctx, &row, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("post %s: %w", postID, ErrNotFound)
		}
		return nil, fmt.Errorf("get post: %w", err)
	}

	return row.toModel(), nil
}

// ListWithAuthors returns every post in creation order with its author resolved.
func (r *PostRepositoryImpl) ListWithAuthors(ctx context.Context) ([]models.PostWithAuthor, error) {
	query := `
        SELECT p.post_id, p.title, p.content, p.author_id, p.likes, p.created_at, p.updated_at,
               u.user_id AS author_user_id, u.name AS author_name, u.email AS author_email
        FROM posts p
        LEFT JOIN users u ON u.user_id = p.author_id
        ORDER BY p.created_at ASC, p.post_id ASC
    `

	var rows []postAuthorRow
	if err := r.DB.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	posts := make([]models.PostWithAuthor, 0, len(rows))
	for _, row := range rows {
		post := models.PostWithAuthor{
			PostID:    row.PostID,
			Title:     row.Title,
			Content:   row.Content,
			Likes:     nonNil(row.Likes),
			CreatedAt: row.CreatedAt,
			UpdatedAt: row.UpdatedAt,
		}
		if row.AuthorFound.Valid {
			post.Author = &models.Author{
				UserID: row.AuthorFound.String,
				Name:   row.AuthorName.String,
				Email:  row.AuthorEmail.String,
			}
		}
		posts = append(posts, post)
	}

	return posts, nil
}

func (r *PostRepositoryImpl) Update(ctx context.Context, post *models.Post) error {
	query := `
		UPDATE posts SET
			title = :title,
			content = :content,
			updated_at = :updated_at
		WHERE post_id = :post_id
	`

	post.UpdatedAt = time.Now().UTC()

	result, err := r.DB.NamedExecContext(ctx, query, newPostRow(post))
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}

	return expectAffected(result, "post", post.PostID)
}

// UpdateLikes overwrites the whole likes set of a post.
func (r *PostRepositoryImpl) UpdateLikes(ctx context.Context, postID string, likes []string) error {
	query := `UPDATE posts SET likes = $1, updated_at = $2 WHERE post_id = $3`

	result, err := r.DB.ExecContext(ctx, query, pq.Array(nonNil(likes)), time.Now().UTC(), postID)
	if err != nil {
		return fmt.Errorf("update likes: %w", err)
	}

	return expectAffected(result, "post", postID)
}

func (r *PostRepositoryImpl) Delete(ctx context.Context, postID string) error {
	query := `DELETE FROM posts WHERE post_id = $1`

	result, err := r.DB.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}

	return expectAffected(result, "post", postID)
}

func expectAffected(result sql.Result, kind, id string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
	}

	return nil
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
