package scheduler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"github.com/xatamovmurodjonuz/telegram-bot/internal/apperrors"
	"github.com/xatamovmurodjonuz/telegram-bot/internal/repository"
)

// Sender is the part of *tele.Bot the dispatcher needs.
type Sender interface {
	Send(to tele.Recipient, what interface{}, opts ...interface{}) (*tele.Message, error)
}

// ReminderDispatcher delivers due watch reminders. Reminders live in the
// database until delivered, so a restart loses nothing; a row is deleted
// only after the messages went out, or when its movie left the catalog.
type ReminderDispatcher struct {
	reminders repository.ReminderRepository
	movies    repository.MovieRepository
	sender    Sender
	logger    *zap.Logger
}

// NewReminderDispatcher creates a dispatcher over the given sender.
func NewReminderDispatcher(
	reminders repository.ReminderRepository,
	movies repository.MovieRepository,
	sender Sender,
	logger *zap.Logger,
) *ReminderDispatcher {
	return &ReminderDispatcher{
		reminders: reminders,
		movies:    movies,
		sender:    sender,
		logger:    logger.Named("reminder-dispatcher"),
	}
}

// Run starts a background goroutine that delivers due reminders on the
// given interval. It runs immediately on startup, then repeats every
// interval. Cancel the context to stop it.
func (d *ReminderDispatcher) Run(ctx context.Context, interval time.Duration) {
	go func() {
		d.logger.Info("Reminder dispatcher started", zap.Duration("interval", interval))

		d.DispatchDue(ctx)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				d.logger.Info("Reminder dispatcher stopped")
				return
			case <-ticker.C:
				d.DispatchDue(ctx)
			}
		}
	}()
}

// DispatchDue delivers every reminder due by now. Failed deliveries keep
// their row and are retried on the next tick.
func (d *ReminderDispatcher) DispatchDue(ctx context.Context) {
	due, err := d.reminders.DueBefore(ctx, time.Now())
	if err != nil {
		d.logger.Error("Failed to list due reminders", zap.Error(err))
		return
	}

	for _, rem := range due {
		if ctx.Err() != nil {
			return
		}

		movie, err := d.movies.GetByNumber(ctx, rem.MovieID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				// Movie left the catalog; the reminder has nothing to deliver.
				d.deleteRow(ctx, rem.ID)
				continue
			}
			d.logger.Error("Failed to load reminded movie",
				zap.Int("movie_id", rem.MovieID),
				zap.Error(err))
			continue
		}

		user := &tele.User{ID: rem.UserID}
		if _, err := d.sender.Send(user, fmt.Sprintf("⏰ Esingizda! Kino #%d vaqti keldi!", rem.MovieID)); err != nil {
			d.logger.Warn("Reminder delivery failed, will retry",
				zap.Int64("user_id", rem.UserID),
				zap.Int("movie_id", rem.MovieID),
				zap.Error(err))
			continue
		}

		video := &tele.Video{
			File:    tele.File{FileID: movie.FileID},
			Caption: fmt.Sprintf("Kino #%d", rem.MovieID),
		}
		if _, err := d.sender.Send(user, video); err != nil {
			d.logger.Warn("Reminder video delivery failed, will retry",
				zap.Int64("user_id", rem.UserID),
				zap.Int("movie_id", rem.MovieID),
				zap.Error(err))
			continue
		}

		d.deleteRow(ctx, rem.ID)
	}
}

func (d *ReminderDispatcher) deleteRow(ctx context.Context, id int) {
	if err := d.reminders.Delete(ctx, id); err != nil {
		d.logger.Error("Failed to delete reminder", zap.Int("id", id), zap.Error(err))
	}
}
