package repository

import (
	"context"
	"fmt"

	"github.com/xatamovmurodjonuz/telegram-bot/internal/models"
	"github.com/xatamovmurodjonuz/telegram-bot/internal/storage"
)

// ProfileRepository stores reviewer identity in the messages table so the
// admin review listing can attribute reviews.
type ProfileRepository interface {
	Upsert(ctx context.Context, profile *models.UserProfile) error
}

type profileRepository struct {
	db *storage.DB
}

// NewProfileRepository creates a new profile repository.
func NewProfileRepository(db *storage.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) Upsert(ctx context.Context, profile *models.UserProfile) error {
	query := `
		INSERT INTO messages(user_id, first_name, username, text)
		VALUES($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET
		first_name = EXCLUDED.first_name,
		username = EXCLUDED.username,
		text = EXCLUDED.text`

	_, err := r.db.Exec(ctx, query,
		profile.UserID,
		profile.FirstName,
		profile.Username,
		profile.Text,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert profile: %w", err)
	}
	return nil
}

var _ ProfileRepository = (*profileRepository)(nil)
