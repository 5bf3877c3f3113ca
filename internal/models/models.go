package models

import (
	"time"
)

type User struct {
	UserID       string    `json:"_id" db:"user_id" bson:"_id"`
	Name         string    `json:"name" db:"name" bson:"name"`
	Email        string    `json:"email" db:"email" bson:"email"`
	PasswordHash string    `json:"-" db:"password_hash" bson:"password_hash"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at" bson:"updated_at"`
}

// Public returns a copy without the password hash.
func (u User) Public() *User {
	u.PasswordHash = ""
	return &u
}

type Post struct {
	PostID    string    `json:"_id" bson:"_id"`
	Title     string    `json:"title" bson:"title"`
	Content   string    `json:"content" bson:"content"`
	AuthorID  string    `json:"author" bson:"author_id"`
	Likes     []string  `json:"likes" bson:"likes"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updated_at"`
}

type Comment struct {
	CommentID string    `json:"_id" db:"comment_id" bson:"_id"`
	Content   string    `json:"content" db:"content" bson:"content"`
	AuthorID  string    `json:"author" db:"author_id" bson:"author_id"`
	PostID    string    `json:"post" db:"post_id" bson:"post_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" bson:"updated_at"`
}

// Author is the user projection embedded in list responses.
type Author struct {
	UserID string `json:"_id" bson:"_id"`
	Name   string `json:"name" bson:"name"`
	Email  string `json:"email" bson:"email"`
}

// PostWithAuthor is a post whose author reference has been resolved.
// Author is nil when the referenced user no longer exists.
type PostWithAuthor struct {
	PostID    string    `json:"_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    *Author   `json:"author"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CommentWithAuthor struct {
	CommentID string    `json:"_id"`
	Content   string    `json:"content"`
	Author    *Author   `json:"author"`
	PostID    string    `json:"post"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// LikeState is the outcome of a like toggle.
type LikeState struct {
	LikesCount int      `json:"likesCount"`
	LikesBy    []string `json:"likesBy"`
}
