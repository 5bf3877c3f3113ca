// Package mongostore implements the repository interfaces on a MongoDB
// database. Documents use string uuid ids so both backends hand out the
// same identifiers.
package mongostore

import (
	"context"
	"fmt"
	"time"

	"blogapi/internal/models"
	"blogapi/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	usersCollection    = "users"
	postsCollection    = "posts"
	commentsCollection = "comments"
)

func NewRepository(db *mongo.Database) *repository.Repository {
	users := db.Collection(usersCollection)

	return &repository.Repository{
		User:    &userStore{coll: users},
		Post:    &postStore{coll: db.Collection(postsCollection), users: users},
		Comment: &commentStore{coll: db.Collection(commentsCollection), users: users},
		Status:  &statusStore{db: db},
	}
}

// EnsureIndexes creates the unique email index and the lookup indexes the
// stores rely on. It is idempotent.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(usersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create users email index: %w", err)
	}

	_, err = db.Collection(commentsCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "post_id", Value: 1}, {Key: "created_at", Value: -1}, {Key: "_id", Value: -1}},
	})
	if err != nil {
		return fmt.Errorf("create comments post index: %w", err)
	}

	return nil
}

type statusStore struct {
	db *mongo.Database
}

func (s *statusStore) Ping(ctx context.Context) error {
	return s.db.Client().Ping(ctx, nil)
}

// CountTables counts the collections of the database.
func (s *statusStore) CountTables(ctx context.Context) (int, error) {
	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("list collections: %w", err)
	}
	return len(names), nil
}

// lookupAuthors resolves user ids to author projections in one query.
// Ids with no matching user are absent from the result.
func lookupAuthors(ctx context.Context, users *mongo.Collection, ids []string) (map[string]*models.Author, error) {
	authors := make(map[string]*models.Author, len(ids))
	if len(ids) == 0 {
		return authors, nil
	}

	projection := options.Find().SetProjection(bson.D{
		{Key: "_id", Value: 1},
		{Key: "name", Value: 1},
		{Key: "email", Value: 1},
	})

	cursor, err := users.Find(ctx, bson.M{"_id": bson.M{"$in": ids}}, projection)
	if err != nil {
		return nil, fmt.Errorf("find authors: %w", err)
	}

	var found []models.Author
	if err := cursor.All(ctx, &found); err != nil {
		return nil, fmt.Errorf("decode authors: %w", err)
	}

	for i := range found {
		authors[found[i].UserID] = &found[i]
	}

	return authors, nil
}

// uniqueIDs returns ids without duplicates, in first-seen order.
func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func nonNil(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
