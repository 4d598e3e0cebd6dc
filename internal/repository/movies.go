package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/xatamovmurodjonuz/telegram-bot/internal/apperrors"
	"github.com/xatamovmurodjonuz/telegram-bot/internal/models"
	"github.com/xatamovmurodjonuz/telegram-bot/internal/storage"
)

// MovieRepository defines data access for the movie catalog.
type MovieRepository interface {
	// Upsert stores a movie video under a number, replacing any previous file.
	Upsert(ctx context.Context, number int, fileID string) error
	GetByNumber(ctx context.Context, number int) (*models.Movie, error)
	ListNumbers(ctx context.Context) ([]int, error)
	Exists(ctx context.Context, number int) (bool, error)
}

type movieRepository struct {
	db *storage.DB
}

// NewMovieRepository creates a new movie repository.
func NewMovieRepository(db *storage.DB) MovieRepository {
	return &movieRepository{db: db}
}

func (r *movieRepository) Upsert(ctx context.Context, number int, fileID string) error {
	query := `
		INSERT INTO movie_files(number, file_id)
		VALUES($1, $2)
		ON CONFLICT (number) DO UPDATE SET file_id = EXCLUDED.file_id`

	if _, err := r.db.Exec(ctx, query, number, fileID); err != nil {
		return fmt.Errorf("failed to upsert movie: %w", err)
	}
	return nil
}

func (r *movieRepository) GetByNumber(ctx context.Context, number int) (*models.Movie, error) {
	query := `SELECT id, number, file_id FROM movie_files WHERE number = $1`

	var m models.Movie
	err := r.db.QueryRow(ctx, query, number).Scan(&m.ID, &m.Number, &m.FileID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}
	return &m, nil
}

func (r *movieRepository) ListNumbers(ctx context.Context) ([]int, error) {
	rows, err := r.db.Query(ctx, `SELECT number FROM movie_files ORDER BY number`)
	if err != nil {
		return nil, fmt.Errorf("failed to list movies: %w", err)
	}
	defer rows.Close()

	var numbers []int
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to scan movie number: %w", err)
		}
		numbers = append(numbers, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating movies: %w", err)
	}
	return numbers, nil
}

func (r *movieRepository) Exists(ctx context.Context, number int) (bool, error) {
	var one int
	err := r.db.QueryRow(ctx, `SELECT 1 FROM movie_files WHERE number = $1`, number).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check movie: %w", err)
	}
	return true, nil
}

var _ MovieRepository = (*movieRepository)(nil)
