package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/xatamovmurodjonuz/telegram-bot/internal/models"
	"github.com/xatamovmurodjonuz/telegram-bot/internal/storage"
)

// ReminderRepository defines data access for one-shot watch reminders.
type ReminderRepository interface {
	Add(ctx context.Context, userID int64, movieID int, remindTime time.Time) error
	// DueBefore returns reminders whose remind_time is at or before the given
	// moment, oldest first.
	DueBefore(ctx context.Context, t time.Time) ([]*models.Reminder, error)
	Delete(ctx context.Context, id int) error
	Count(ctx context.Context, userID int64) (int, error)
}

type reminderRepository struct {
	db *storage.DB
}

// NewReminderRepository creates a new reminder repository.
func NewReminderRepository(db *storage.DB) ReminderRepository {
	return &reminderRepository{db: db}
}

func (r *reminderRepository) Add(ctx context.Context, userID int64, movieID int, remindTime time.Time) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO reminders(user_id, movie_id, remind_time) VALUES($1, $2, $3)`,
		userID, movieID, remindTime)
	if err != nil {
		return fmt.Errorf("failed to add reminder: %w", err)
	}
	return nil
}

func (r *reminderRepository) DueBefore(ctx context.Context, t time.Time) ([]*models.Reminder, error) {
	query := `
		SELECT id, user_id, movie_id, remind_time
		FROM reminders
		WHERE remind_time <= $1
		ORDER BY remind_time`

	rows, err := r.db.Query(ctx, query, t)
	if err != nil {
		return nil, fmt.Errorf("failed to list due reminders: %w", err)
	}
	defer rows.Close()

	var reminders []*models.Reminder
	for rows.Next() {
		var rem models.Reminder
		if err := rows.Scan(&rem.ID, &rem.UserID, &rem.MovieID, &rem.RemindTime); err != nil {
			return nil, fmt.Errorf("failed to scan reminder: %w", err)
		}
		reminders = append(reminders, &rem)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reminders: %w", err)
	}
	return reminders, nil
}

func (r *reminderRepository) Delete(ctx context.Context, id int) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM reminders WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete reminder: %w", err)
	}
	return nil
}

func (r *reminderRepository) Count(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM reminders WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count reminders: %w", err)
	}
	return count, nil
}

var _ ReminderRepository = (*reminderRepository)(nil)
