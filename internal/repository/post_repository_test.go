package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"blogapi/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var postColumns = []string{"post_id", "title", "content", "author_id", "likes", "created_at", "updated_at"}

func TestNewPostRepository(t *testing.T) {
	db, _ := setupMockDB(t)

	repo := NewPostRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.DB)
}

func TestPostRepository_Create(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)

	post := &models.Post{Title: "Title", Content: "Content", AuthorID: "author-1"}

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO posts")).
		WithArgs(sqlmock.AnyArg(), "Title", "Content", "author-1", "{}", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), post)

	require.NoError(t, err)
	assert.NotEmpty(t, post.PostID)
	assert.NotNil(t, post.Likes)
	assert.Empty(t, post.Likes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_GetByID(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()
	now := time.Now()

	t.Run("found with likes", func(t *testing.T) {
		rows := sqlmock.NewRows(postColumns).
			AddRow("post-1", "Title", "Content", "author-1", []byte("{user-1,user-2}"), now, now)

		mock.ExpectQuery(regexp.QuoteMeta("FROM posts")).
			WithArgs("post-1").
			WillReturnRows(rows)

		post, err := repo.GetByID(ctx, "post-1")

		require.NoError(t, err)
		assert.Equal(t, "author-1", post.AuthorID)
		assert.Equal(t, []string{"user-1", "user-2"}, post.Likes)
	})

	t.Run("empty likes", func(t *testing.T) {
		rows := sqlmock.NewRows(postColumns).
			AddRow("post-1", "Title", "Content", "author-1", []byte("{}"), now, now)

		mock.ExpectQuery(regexp.QuoteMeta("FROM posts")).
			WithArgs("post-1").
			WillReturnRows(rows)

		post, err := repo.GetByID(ctx, "post-1")

		require.NoError(t, err)
		assert.NotNil(t, post.Likes)
		assert.Empty(t, post.Likes)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta("FROM posts")).
			WithArgs("missing").
			WillReturnError(sql.ErrNoRows)

		post, err := repo.GetByID(ctx, "missing")

		assert.Nil(t, post)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestPostRepository_ListWithAuthors(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	now := time.Now()

	rows := sqlmock.NewRows(append(postColumns, "author_user_id", "author_name", "author_email")).
		AddRow("post-1", "First", "Body", "author-1", []byte("{}"), now, now, "author-1", "Alice", "alice@example.com").
		AddRow("post-2", "Second", "Body", "gone", []byte("{author-1}"), now, now, nil, nil, nil)

	mock.ExpectQuery(regexp.QuoteMeta("ORDER BY p.created_at ASC, p.post_id ASC")).WillReturnRows(rows)

	posts, err := repo.ListWithAuthors(context.Background())

	require.NoError(t, err)
	require.Len(t, posts, 2)
	require.NotNil(t, posts[0].Author)
	assert.Equal(t, "Alice", posts[0].Author.Name)
	assert.Equal(t, "alice@example.com", posts[0].Author.Email)
	assert.Nil(t, posts[1].Author)
	assert.Equal(t, []string{"author-1"}, posts[1].Likes)
}

func TestPostRepository_Update(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	post := &models.Post{PostID: "post-1", Title: "New", Content: "Body", AuthorID: "author-1"}

	t.Run("updated", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE posts SET")).
			WithArgs("New", "Body", sqlmock.AnyArg(), "post-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Update(context.Background(), post))
	})

	t.Run("missing", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("UPDATE posts SET")).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Update(context.Background(), post), ErrNotFound)
	})
}

func TestPostRepository_UpdateLikes(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE posts SET likes = $1, updated_at = $2 WHERE post_id = $3")).
		WithArgs(`{"user-1"}`, sqlmock.AnyArg(), "post-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateLikes(context.Background(), "post-1", []string{"user-1"})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostRepository_Delete(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewPostRepository(db)
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM posts WHERE post_id = $1")).
			WithArgs("post-1").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(ctx, "post-1"))
	})

	t.Run("missing", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM posts WHERE post_id = $1")).
			WithArgs("post-1").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, "post-1"), ErrNotFound)
	})

	t.Run("database error", func(t *testing.T) {
		mock.ExpectExec(regexp.QuoteMeta("DELETE FROM posts WHERE post_id = $1")).
			WithArgs("post-1").
			WillReturnError(errors.New("boom"))

		err := repo.Delete(ctx, "post-1")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}
