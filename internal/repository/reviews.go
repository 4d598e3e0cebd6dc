package repository

import (
	"context"
	"fmt"

	"github.com/xatamovmurodjonuz/telegram-bot/internal/models"
	"github.com/xatamovmurodjonuz/telegram-bot/internal/storage"
)

// ReviewRepository defines data access for movie reviews.
type ReviewRepository interface {
	Add(ctx context.Context, userID int64, movieID int, text string) error
	// Latest returns the newest reviews with reviewer attribution joined in,
	// newest first.
	Latest(ctx context.Context, limit int) ([]*models.Review, error)
	Count(ctx context.Context, userID int64) (int, error)
}

type reviewRepository struct {
	db *storage.DB
}

// NewReviewRepository creates a new review repository.
func NewReviewRepository(db *storage.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Add(ctx context.Context, userID int64, movieID int, text string) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO reviews(user_id, movie_id, text) VALUES($1, $2, $3)`,
		userID, movieID, text)
	if err != nil {
		return fmt.Errorf("failed to add review: %w", err)
	}
	return nil
}

func (r *reviewRepository) Latest(ctx context.Context, limit int) ([]*models.Review, error) {
	query := `
		SELECT r.id, r.user_id, r.movie_id, r.text, r.created_at,
		       COALESCE(u.first_name, ''), COALESCE(u.username, '')
		FROM reviews r
		LEFT JOIN messages u ON r.user_id = u.user_id
		ORDER BY r.created_at DESC
		LIMIT $1`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*models.Review
	for rows.Next() {
		var rev models.Review
		err := rows.Scan(
			&rev.ID,
			&rev.UserID,
			&rev.MovieID,
			&rev.Text,
			&rev.CreatedAt,
			&rev.FirstName,
			&rev.Username,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, &rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reviews: %w", err)
	}
	return reviews, nil
}

func (r *reviewRepository) Count(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM reviews WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count reviews: %w", err)
	}
	return count, nil
}

var _ ReviewRepository = (*reviewRepository)(nil)
