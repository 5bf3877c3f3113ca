package mongostore

import (
	"context"
	"errors"
	"fmt"

	"blogapi/internal/models"
	"blogapi/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type commentStore struct {
	coll  *mongo.Collection
	users *mongo.Collection
}

func (s *commentStore) Create(ctx context.Context, comment *models.Comment) error {
	if comment.CommentID == "" {
		comment.CommentID = repository.NewID()
	}

	ts := now()
	comment.CreatedAt = ts
	comment.UpdatedAt = ts

	if _, err := s.coll.InsertOne(ctx, comment); err != nil {
		return fmt.Errorf("create comment: %w", err)
	}

	return nil
}

func (s *commentStore) GetByID(ctx context.Context, commentID string) (*models.Comment, error) {
	var comment models.Comment
	if err := s.coll.FindOne(ctx, bson.M{"_id": commentID}).Decode(&comment); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("comment %s: %w", commentID, repository.ErrNotFound)
		}
		return nil, fmt.Errorf("get comment: %w", err)
	}
	return &comment, nil
}

func (s *commentStore) ListByPostWithAuthors(ctx context.Context, postID string) ([]models.CommentWithAuthor, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}})

	cursor, err := s.coll.Find(ctx, bson.M{"post_id": postID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	var docs []models.Comment
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode comments: %w", err)
	}

	authorIDs := make([]string, 0, len(docs))
	for _, doc := range docs {
		authorIDs = append(authorIDs, doc.AuthorID)
	}

	authors, err := lookupAuthors(ctx, s.users, uniqueIDs(authorIDs))
	if err != nil {
		return nil, err
	}

	comments := make([]models.CommentWithAuthor, 0, len(docs))
	for _, doc := range docs {
		comments = append(comments, models.CommentWithAuthor{
			CommentID: doc.CommentID,
			Content:   doc.Content,
			Author:    authors[doc.AuthorID],
			PostID:    doc.PostID,
			CreatedAt: doc.CreatedAt,
			UpdatedAt: doc.UpdatedAt,
		})
	}

	return comments, nil
}

func (s *commentStore) Delete(ctx context.Context, commentID string) error {
	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": commentID})
	if err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("comment %s: %w", commentID, repository.ErrNotFound)
	}
	return nil
}

func (s *commentStore) DeleteByPostID(ctx context.Context, postID string) (int64, error) {
	result, err := s.coll.DeleteMany(ctx, bson.M{"post_id": postID})
	if err != nil {
		return 0, fmt.Errorf("delete comments of post: %w", err)
	}
	return result.DeletedCount, nil
}
