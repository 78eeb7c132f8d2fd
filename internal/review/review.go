package review

import (
	"context"
	"errors"
)

// ErrUserNotFound means a review referenced a user id with no persisted row.
var ErrUserNotFound = errors.New("user not found")

type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Review struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	BookID string `json:"bookId"`
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

type Repository interface {
	CreateUser(ctx context.Context, u *User) error
	UserExists(ctx context.Context, id string) (bool, error)
	CreateReview(ctx context.Context, rev *Review) error
	ListByBook(ctx context.Context, bookID string, limit, offset int) ([]Review, error)
}
