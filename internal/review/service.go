package review

import (
	"context"

	"github.com/google/uuid"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) CreateUser(ctx context.Context, name string) (User, error) {
	u := User{
		ID:   uuid.New().String(),
		Name: name,
	}
	if err := s.repo.CreateUser(ctx, &u); err != nil {
		return User{}, err
	}
	return u, nil
}

// CreateReview checks the user exists before inserting. The check and the
// insert are separate statements, so a user removed in between surfaces as a
// late insert failure rather than ErrUserNotFound.
func (s *Service) CreateReview(ctx context.Context, userID, bookID string, rating int, text string) (Review, error) {
	exists, err := s.repo.UserExists(ctx, userID)
	if err != nil {
		return Review{}, err
	}
	if !exists {
		return Review{}, ErrUserNotFound
	}

	rev := Review{
		ID:     uuid.New().String(),
		UserID: userID,
		BookID: bookID,
		Rating: rating,
		Text:   text,
	}
	if err := s.repo.CreateReview(ctx, &rev); err != nil {
		return Review{}, err
	}
	return rev, nil
}

func (s *Service) ListByBook(ctx context.Context, bookID string, limit, offset int) ([]Review, error) {
	return s.repo.ListByBook(ctx, bookID, limit, offset)
}
