package service

import (
	"context"

	"blogapi/internal/auth"
	"blogapi/internal/models"
	"blogapi/internal/repository"
)

type CommentService interface {
	List(ctx context.Context, postID string) ([]models.CommentWithAuthor, error)
	Create(ctx context.Context, postID, authorID, content string) (*models.Comment, error)
	Delete(ctx context.Context, commentID, callerID string) error
}

type commentService struct {
	commentRepo repository.CommentRepository
	postRepo    repository.PostRepository
}

func NewCommentService(commentRepo repository.CommentRepository, postRepo repository.PostRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
	}
}

// List returns the comments of a post, newest first. A post with no
// comments, or one that does not exist, yields an empty list.
func (c *commentService) List(ctx context.Context, postID string) ([]models.CommentWithAuthor, error) {
	return c.commentRepo.ListByPostWithAuthors(ctx, postID)
}

func (c *commentService) Create(ctx context.Context, postID, authorID, content string) (*models.Comment, error) {
	if _, err := c.postRepo.GetByID(ctx, postID); err != nil {
		return nil, notFoundAs(err, ErrPostNotFound)
	}

	comment := &models.Comment{
		Content:  content,
		AuthorID: authorID,
		PostID:   postID,
	}

	if err := c.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	return comment, nil
}

func (c *commentService) Delete(ctx context.Context, commentID, callerID string) error {
	comment, err := c.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return notFoundAs(err, ErrCommentNotFound)
	}

	if !auth.CanMutate(comment.AuthorID, callerID) {
		return ErrForbiddenCommentDelete
	}

	if err := c.commentRepo.Delete(ctx, commentID); err != nil {
		return notFoundAs(err, ErrCommentNotFound)
	}

	return nil
}
