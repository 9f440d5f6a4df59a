package rest

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/sentimark/reviews_api/internal/db"
	"github.com/sentimark/reviews_api/internal/model"
	"github.com/sentimark/reviews_api/internal/sentiment"
)

// ReviewStore is the persistence boundary the handlers talk to.
type ReviewStore interface {
	CreateReview(ctx context.Context, text string, s sentiment.Sentiment, createdAt time.Time) (model.Review, error)
	ListReviews(ctx context.Context, sentimentFilter string) ([]model.Review, error)
}

type ReviewRepo struct {
	DB *db.DB
}

func NewReviewRepo(database *db.DB) *ReviewRepo {
	return &ReviewRepo{DB: database}
}

// CreateReview inserts a new review and reads the persisted row back by its
// assigned id. Both statements run in one transaction, so either the full row
// is visible and returned, or nothing is inserted.
func (repo *ReviewRepo) CreateReview(ctx context.Context, text string, s sentiment.Sentiment, createdAt time.Time) (model.Review, error) {
	insertStmt := `
        INSERT INTO reviews (text, sentiment, created_at)
        VALUES ($1, $2, $3)
        RETURNING id
    `
	selectStmt := `
        SELECT id, text, sentiment, created_at
        FROM reviews
        WHERE id = $1
    `

	var review model.Review
	err := repo.DB.RunInTx(ctx, func(tx pgx.Tx) error {
		var id int64
		if err := tx.QueryRow(ctx, insertStmt, text, s, createdAt).Scan(&id); err != nil {
			return fmt.Errorf("inserting review: %w", err)
		}

		if err := tx.QueryRow(ctx, selectStmt, id).Scan(
			&review.ID, &review.Text, &review.Sentiment, &review.CreatedAt,
		); err != nil {
			return fmt.Errorf("reading back review %d: %w", id, err)
		}
		return nil
	})
	if err != nil {
		return model.Review{}, err
	}
	return review, nil
}

// ListReviews returns reviews newest first, optionally filtered by sentiment.
func (repo *ReviewRepo) ListReviews(ctx context.Context, sentimentFilter string) ([]model.Review, error) {
	query := `
        SELECT id, text, sentiment, created_at
        FROM reviews
        ORDER BY created_at DESC
    `
	args := []interface{}{}

	if sentimentFilter != "" {
		query = `
            SELECT id, text, sentiment, created_at
            FROM reviews
            WHERE sentiment = $1
            ORDER BY created_at DESC
        `
		args = append(args, sentimentFilter)
	}

	rows, err := repo.DB.Pool().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying reviews: %w", err)
	}
	defer rows.Close()

	var reviews []model.Review
	for rows.Next() {
		var review model.Review
		if err := rows.Scan(&review.ID, &review.Text, &review.Sentiment, &review.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning review: %w", err)
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}
