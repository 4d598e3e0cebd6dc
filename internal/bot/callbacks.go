package bot

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"github.com/xatamovmurodjonuz/telegram-bot/internal/models"
)

const reminderTimeLayout = "2006-01-02 15:04"

// callbackFavorite toggles the movie in the user's favorites.
func (b *Bot) callbackFavorite(c tele.Context) error {
	number, err := strconv.Atoi(strings.TrimSpace(c.Data()))
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: msgGenericError})
	}

	exists, err := b.repos.Movies.Exists(b.ctx, number)
	if err != nil {
		b.logger.Error("favorite: movie check failed", zap.Int("number", number), zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: msgGenericError})
	}
	if !exists {
		return c.Respond(&tele.CallbackResponse{Text: msgMovieGone})
	}

	added, err := b.repos.Favorites.Toggle(b.ctx, c.Sender().ID, number)
	if err != nil {
		b.logger.Error("favorite toggle failed", zap.Int("number", number), zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: msgGenericError})
	}

	if added {
		return c.Respond(&tele.CallbackResponse{Text: msgFavAdded})
	}
	return c.Respond(&tele.CallbackResponse{Text: msgFavRemoved})
}

// callbackReview asks for the review text; the next text message lands in
// receiveReview.
func (b *Bot) callbackReview(c tele.Context) error {
	number, err := strconv.Atoi(strings.TrimSpace(c.Data()))
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: msgGenericError})
	}

	b.sessions.Set(c.Sender().ID, Session{Step: StepAwaitReview, MovieID: number})
	if err := c.Send(msgReviewPrompt); err != nil {
		return err
	}
	return c.Respond()
}

func (b *Bot) receiveReview(c tele.Context) error {
	userID := c.Sender().ID
	sess := b.sessions.Get(userID)

	if err := b.repos.Reviews.Add(b.ctx, userID, sess.MovieID, c.Text()); err != nil {
		b.logger.Error("review save failed", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send(msgGenericError)
	}

	profile := &models.UserProfile{
		UserID:    userID,
		FirstName: c.Sender().FirstName,
		Username:  c.Sender().Username,
		Text:      c.Text(),
	}
	if err := b.repos.Profiles.Upsert(b.ctx, profile); err != nil {
		b.logger.Error("profile upsert failed", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send(msgGenericError)
	}

	b.sessions.Clear(userID)
	return c.Send(msgReviewSaved)
}

// callbackRate stores the rating and refreshes the caption with the new
// average.
func (b *Bot) callbackRate(c tele.Context) error {
	parts := strings.Split(c.Data(), "|")
	if len(parts) != 2 {
		return c.Respond(&tele.CallbackResponse{Text: msgGenericError})
	}
	number, err1 := strconv.Atoi(parts[0])
	stars, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return c.Respond(&tele.CallbackResponse{Text: msgGenericError})
	}

	userID := c.Sender().ID
	if err := b.repos.Ratings.Upsert(b.ctx, userID, number, stars); err != nil {
		b.logger.Error("rating upsert failed", zap.Int("number", number), zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: msgGenericError})
	}

	avg, _, err := b.repos.Ratings.Average(b.ctx, number)
	if err != nil {
		b.logger.Error("rating average failed", zap.Int("number", number), zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: msgGenericError})
	}

	// The message may be too old to edit; the rating itself is already saved.
	_ = c.EditCaption(movieCaption(number, avg, true), movieKeyboard(number))

	return c.Respond(&tele.CallbackResponse{
		Text: fmt.Sprintf(msgRated, stars, avg),
	})
}

// callbackRemind asks for the reminder time; the next text message lands
// in receiveReminderTime.
func (b *Bot) callbackRemind(c tele.Context) error {
	number, err := strconv.Atoi(strings.TrimSpace(c.Data()))
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: msgGenericError})
	}

	b.sessions.Set(c.Sender().ID, Session{Step: StepAwaitReminder, MovieID: number})
	if err := c.Send(msgReminderPrompt); err != nil {
		return err
	}
	return c.Respond()
}

func (b *Bot) receiveReminderTime(c tele.Context) error {
	userID := c.Sender().ID

	dt, err := time.ParseInLocation(reminderTimeLayout, strings.TrimSpace(c.Text()), time.Local)
	if err != nil {
		return c.Send(msgReminderFormat)
	}
	if !dt.After(time.Now()) {
		return c.Send(msgReminderPast)
	}

	sess := b.sessions.Get(userID)
	if err := b.repos.Reminders.Add(b.ctx, userID, sess.MovieID, dt); err != nil {
		b.logger.Error("reminder save failed", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send(msgGenericError)
	}

	b.sessions.Clear(userID)
	return c.Send(fmt.Sprintf(msgReminderSet, dt.Format(reminderTimeLayout)))
}
