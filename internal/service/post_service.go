package service

import (
	"context"
	"errors"
	"log/slog"

	"blogapi/internal/auth"
	"blogapi/internal/models"
	"blogapi/internal/repository"
)

type PostInput struct {
	Title   string
	Content string
}

type PostService interface {
	List(ctx context.Context) ([]models.PostWithAuthor, error)
	Create(ctx context.Context, authorID string, input PostInput) (*models.Post, error)
	Update(ctx context.Context, postID, callerID string, input PostInput) (*models.Post, error)
	Delete(ctx context.Context, postID, callerID string) error
	ToggleLike(ctx context.Context, postID, userID string) (*models.LikeState, error)
}

type postService struct {
	postRepo    repository.PostRepository
	commentRepo repository.CommentRepository
}

func NewPostService(postRepo repository.PostRepository, commentRepo repository.CommentRepository) PostService {
	return &postService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
	}
}

func (p *postService) List(ctx context.Context) ([]models.PostWithAuthor, error) {
	return p.postRepo.ListWithAuthors(ctx)
}

func (p *postService) Create(ctx context.Context, authorID string, input PostInput) (*models.Post, error) {
	post := &models.Post{
		Title:    input.Title,
		Content:  input.Content,
		AuthorID: authorID,
		Likes:    []string{},
	}

	if err := p.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// Update replaces title and content; an empty field keeps its stored value.
func (p *postService) Update(ctx context.Context, postID, callerID string, input PostInput) (*models.Post, error) {
	post, err := p.getPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	if !auth.CanMutate(post.AuthorID, callerID) {
		return nil, ErrForbiddenPostUpdate
	}

	if input.Title != "" {
		post.Title = input.Title
	}
	if input.Content != "" {
		post.Content = input.Content
	}

	if err := p.postRepo.Update(ctx, post); err != nil {
		return nil, notFoundAs(err, ErrPostNotFound)
	}

	return post, nil
}

// Delete removes the post and then its comments.
func (p *postService) Delete(ctx context.Context, postID, callerID string) error {
	post, err := p.getPost(ctx, postID)
	if err != nil {
		return err
	}

	if !auth.CanMutate(post.AuthorID, callerID) {
		return ErrForbiddenPostDelete
	}

	if err := p.postRepo.Delete(ctx, postID); err != nil {
		return notFoundAs(err, ErrPostNotFound)
	}

	deleted, err := p.commentRepo.DeleteByPostID(ctx, postID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to delete comments of removed post", "post_id", postID, "error", err)
		return nil
	}
	if deleted > 0 {
		slog.InfoContext(ctx, "removed comments of deleted post", "post_id", postID, "count", deleted)
	}

	return nil
}

// ToggleLike adds userID to the post's likes, or removes it if present.
// The read and the write are not atomic: concurrent toggles on the same
// post can overwrite each other.
func (p *postService) ToggleLike(ctx context.Context, postID, userID string) (*models.LikeState, error) {
	post, err := p.getPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	likes := toggle(post.Likes, userID)

	if err := p.postRepo.UpdateLikes(ctx, postID, likes); err != nil {
		return nil, notFoundAs(err, ErrPostNotFound)
	}

	return &models.LikeState{
		LikesCount: len(likes),
		LikesBy:    likes,
	}, nil
}

func (p *postService) getPost(ctx context.Context, postID string) (*models.Post, error) {
	post, err := p.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, notFoundAs(err, ErrPostNotFound)
	}
	return post, nil
}

func toggle(likes []string, userID string) []string {
	next := make([]string, 0, len(likes)+1)
	found := false
	for _, id := range likes {
		if id == userID {
			found = true
			continue
		}
		next = append(next, id)
	}
	if !found {
		next = append(next, userID)
	}
	return next
}

// notFoundAs swaps a repository miss for the given client-facing error.
func notFoundAs(err error, notFound *Error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return notFound
	}
	return err
}
