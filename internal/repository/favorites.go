package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/xatamovmurodjonuz/telegram-bot/internal/storage"
)

// FavoriteRepository defines data access for per-user favorite movies.
type FavoriteRepository interface {
	// Toggle adds the movie to the user's favorites, or removes it when
	// already present. Returns true when the movie ended up added.
	Toggle(ctx context.Context, userID int64, movieID int) (bool, error)
	// ListForUser returns the user's favorite movie numbers, restricted to
	// movies still present in the catalog, ordered by number.
	ListForUser(ctx context.Context, userID int64) ([]int, error)
	// ListRaw returns favorite movie IDs without the catalog join, in the
	// order the original /start listing used.
	ListRaw(ctx context.Context, userID int64) ([]int, error)
	Count(ctx context.Context, userID int64) (int, error)
}

type favoriteRepository struct {
	db *storage.DB
}

// NewFavoriteRepository creates a new favorite repository.
func NewFavoriteRepository(db *storage.DB) FavoriteRepository {
	return &favoriteRepository{db: db}
}

func (r *favoriteRepository) Toggle(ctx context.Context, userID int64, movieID int) (bool, error) {
	var existing int
	err := r.db.QueryRow(ctx,
		`SELECT id FROM favorites WHERE user_id = $1 AND movie_id = $2`,
		userID, movieID).Scan(&existing)

	switch {
	case err == nil:
		if _, err := r.db.Exec(ctx,
			`DELETE FROM favorites WHERE user_id = $1 AND movie_id = $2`,
			userID, movieID); err != nil {
			return false, fmt.Errorf("failed to remove favorite: %w", err)
		}
		return false, nil

	case errors.Is(err, pgx.ErrNoRows):
		if _, err := r.db.Exec(ctx,
			`INSERT INTO favorites(user_id, movie_id) VALUES($1, $2) ON CONFLICT DO NOTHING`,
			userID, movieID); err != nil {
			return false, fmt.Errorf("failed to add favorite: %w", err)
		}
		return true, nil

	default:
		return false, fmt.Errorf("failed to check favorite: %w", err)
	}
}

func (r *favoriteRepository) ListForUser(ctx context.Context, userID int64) ([]int, error) {
	query := `
		SELECT m.number
		FROM favorites f
		JOIN movie_files m ON f.movie_id = m.number
		WHERE f.user_id = $1
		ORDER BY m.number`

	return r.scanNumbers(ctx, query, userID)
}

func (r *favoriteRepository) ListRaw(ctx context.Context, userID int64) ([]int, error) {
	query := `SELECT movie_id FROM favorites WHERE user_id = $1 ORDER BY movie_id`
	return r.scanNumbers(ctx, query, userID)
}

func (r *favoriteRepository) Count(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM favorites WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count favorites: %w", err)
	}
	return count, nil
}

func (r *favoriteRepository) scanNumbers(ctx context.Context, query string, userID int64) ([]int, error) {
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list favorites: %w", err)
	}
	defer rows.Close()

	var numbers []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to scan favorite: %w", err)
		}
		numbers = append(numbers, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating favorites: %w", err)
	}
	return numbers, nil
}

var _ FavoriteRepository = (*favoriteRepository)(nil)
