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

type postStore struct {
	coll  *mongo.Collection
	users *mongo.Collection
}

func (s *postStore) Create(ctx context.Context, post *models.Post) error {
	if post.PostID == "" {
		post.PostID = repository.NewID()
	}

	ts := now()
	post.CreatedAt = ts
	post.UpdatedAt = ts
	post.Likes = nonNil(post.Likes)

	if _, err := s.coll.InsertOne(ctx, post); err != nil {
		return fmt.Errorf("create post: %w", err)
	}

	return nil
}

func (s *postStore) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	var post models.Post
	if err := s.coll.FindOne(ctx, bson.M{"_id": postID}).Decode(&post); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, fmt.Errorf("post %s: %w", postID, repository.ErrNotFound)
		}
		return nil, fmt.Errorf("get post: %w", err)
	}

	post.Likes = nonNil(post.Likes)
	return &post, nil
}

func (s *postStore) ListWithAuthors(ctx context.Context) ([]models.PostWithAuthor, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}})

	cursor, err := s.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}

	var docs []models.Post
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}

	authorIDs := make([]string, 0, len(docs))
	for _, doc := range docs {
		authorIDs = append(authorIDs, doc.AuthorID)
	}

	authors, err := lookupAuthors(ctx, s.users, uniqueIDs(authorIDs))
	if err != nil {
		return nil, err
	}

	posts := make([]models.PostWithAuthor, 0, len(docs))
	for _, doc := range docs {
		posts = append(posts, models.PostWithAuthor{
			PostID:    doc.PostID,
			Title:     doc.Title,
			Content:   doc.Content,
			Author:    authors[doc.AuthorID],
			Likes:     nonNil(doc.Likes),
			CreatedAt: doc.CreatedAt,
			UpdatedAt: doc.UpdatedAt,
		})
	}

	return posts, nil
}

func (s *postStore) Update(ctx context.Context, post *models.Post) error {
	post.UpdatedAt = now()

	update := bson.M{"$set": bson.M{
		"title":      post.Title,
		"content":    post.Content,
		"updated_at": post.UpdatedAt,
	}}

	return s.updateOne(ctx, post.PostID, update)
}

func (s *postStore) UpdateLikes(ctx context.Context, postID string, likes []string) error {
	update := bson.M{"$set": bson.M{
		"likes":      nonNil(likes),
		"updated_at": now(),
	}}

	return s.updateOne(ctx, postID, update)
}

func (s *postStore) updateOne(ctx context.Context, postID string, update bson.M) error {
	result, err := s.coll.UpdateOne(ctx, bson.M{"_id": postID}, update)
	if err != nil {
		return fmt.Errorf("update post: %w", err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("post %s: %w", postID, repository.ErrNotFound)
	}
	return nil
}

func (s *postStore) Delete(ctx context.Context, postID string) error {
	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": postID})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if result.DeletedCount == 0 {
		return fmt.Errorf("post %s: %w", postID, repository.ErrNotFound)
	}
	return nil
}
