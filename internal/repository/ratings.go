package repository

import (
	"context"
	"fmt"

	"github.com/xatamovmurodjonuz/telegram-bot/internal/storage"
)

// RatingRepository defines data access for 1..5 star movie ratings.
type RatingRepository interface {
	// Upsert records the user's rating, replacing any previous one.
	Upsert(ctx context.Context, userID int64, movieID, stars int) error
	// Average returns the mean rating for a movie and whether any rating
	// exists at all.
	Average(ctx context.Context, movieID int) (float64, bool, error)
	Count(ctx context.Context, userID int64) (int, error)
}

type ratingRepository struct {
	db *storage.DB
}

// NewRatingRepository creates a new rating repository.
func NewRatingRepository(db *storage.DB) RatingRepository {
	return &ratingRepository{db: db}
}

func (r *ratingRepository) Upsert(ctx context.Context, userID int64, movieID, stars int) error {
	if stars < 1 || stars > 5 {
		return fmt.Errorf("stars out of range: %d", stars)
	}

	query := `
		INSERT INTO ratings(user_id, movie_id, stars)
		VALUES($1, $2, $3)
		ON CONFLICT (user_id, movie_id) DO UPDATE SET stars = EXCLUDED.stars`

	if _, err := r.db.Exec(ctx, query, userID, movieID, stars); err != nil {
		return fmt.Errorf("failed to upsert rating: %w", err)
	}
	return nil
}

func (r *ratingRepository) Average(ctx context.Context, movieID int) (float64, bool, error) {
	var avg *float64
	err := r.db.QueryRow(ctx,
		`SELECT AVG(stars) FROM ratings WHERE movie_id = $1`, movieID).Scan(&avg)
	if err != nil {
		return 0, false, fmt.Errorf("failed to average ratings: %w", err)
	}
	if avg == nil {
		return 0, false, nil
	}
	return *avg, true, nil
}

func (r *ratingRepository) Count(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM ratings WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count ratings: %w", err)
	}
	return count, nil
}

var _ RatingRepository = (*ratingRepository)(nil)
