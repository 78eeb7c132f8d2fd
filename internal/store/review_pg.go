package store

import (
	"context"
	"errors"
	"time"

	"bookexplorer/internal/review"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const statementTimeout = 3 * time.Second

// ReviewPG implements review.Repository on a shared pgx pool. Every call
// checks a connection out of the pool for its own duration only.
type ReviewPG struct {
	db *pgxpool.Pool
}

func NewReviewPG(db *pgxpool.Pool) *ReviewPG {
	return &ReviewPG{db: db}
}

func (r *ReviewPG) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, statementTimeout)
}

func (r *ReviewPG) CreateUser(ctx context.Context, u *review.User) error {
	const query = `INSERT INTO users (id, name) VALUES ($1, $2)`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err := r.db.Exec(timeoutCtx, query, u.ID, u.Name)
	return err
}

func (r *ReviewPG) UserExists(ctx context.Context, id string) (bool, error) {
	const query = `SELECT 1 FROM users WHERE id = $1 LIMIT 1`
	var one int
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(timeoutCtx, query, id).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *ReviewPG) CreateReview(ctx context.Context, rev *review.Review) error {
	const query = `
	INSERT INTO reviews (id, user_id, book_olid, rating, txt)
	VALUES ($1, $2, $3, $4, $5)
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	_, err := r.db.Exec(timeoutCtx, query, rev.ID, rev.UserID, rev.BookID, rev.Rating, rev.Text)
	return err
}

func (r *ReviewPG) ListByBook(ctx context.Context, bookID string, limit, offset int) ([]review.Review, error) {
	const query = `
	SELECT id, user_id, book_olid, rating, txt
	FROM reviews
	WHERE book_olid = $1
	ORDER BY id
	LIMIT $2 OFFSET $3
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, bookID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []review.Review{}
	for rows.Next() {
		var rev review.Review
		if err := rows.Scan(&rev.ID, &rev.UserID, &rev.BookID, &rev.Rating, &rev.Text); err != nil {
			return nil, err
		}
		out = append(out, rev)
	}
	return out, rows.Err()
}
