package bot

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"github.com/xatamovmurodjonuz/telegram-bot/internal/apperrors"
)

var movieNumberRe = regexp.MustCompile(`^\d+$`)

// handleStart greets the user with their favorites (when any) and the
// catalog listing.
func (b *Bot) handleStart(c tele.Context) error {
	userID := c.Sender().ID
	b.sessions.Clear(userID)

	favs, err := b.repos.Favorites.ListRaw(b.ctx, userID)
	if err != nil {
		b.logger.Error("start: failed to list favorites", zap.Error(err))
		return c.Send(msgGenericError)
	}
	if len(favs) > 0 {
		var lines []string
		for _, id := range favs {
			lines = append(lines, fmt.Sprintf("Kino #%d", id))
		}
		if err := c.Send(msgFavoritesHead + strings.Join(lines, "\n")); err != nil {
			return err
		}
	}

	numbers, err := b.repos.Movies.ListNumbers(b.ctx)
	if err != nil {
		b.logger.Error("start: failed to list movies", zap.Error(err))
		return c.Send(msgGenericError)
	}
	if len(numbers) == 0 {
		return c.Send(msgNoMovies)
	}

	var list []string
	for _, n := range numbers {
		list = append(list, fmt.Sprintf("%d: Kino #%d", n, n))
	}
	return c.Send(msgPickMovie + strings.Join(list, "\n"))
}

// handleText routes plain text: first through any pending conversation
// step, then as a movie number, otherwise the unknown-command reply.
func (b *Bot) handleText(c tele.Context) error {
	userID := c.Sender().ID

	switch b.sessions.Get(userID).Step {
	case StepAwaitVideo:
		return c.Send(msgVideoOnly)
	case StepAwaitNumber:
		return b.adminReceiveNumber(c)
	case StepAwaitReview:
		return b.receiveReview(c)
	case StepAwaitReminder:
		return b.receiveReminderTime(c)
	}

	text := strings.TrimSpace(c.Text())
	if movieNumberRe.MatchString(text) {
		number, err := strconv.Atoi(text)
		if err == nil {
			return b.sendMovie(c, number)
		}
	}

	return c.Send(msgUnknown)
}

// handleVideo routes video messages into the admin upload flow; outside of
// it, videos get the unknown-command reply.
func (b *Bot) handleVideo(c tele.Context) error {
	if b.sessions.Get(c.Sender().ID).Step == StepAwaitVideo {
		return b.adminReceiveVideo(c)
	}
	return c.Send(msgUnknown)
}

// sendMovie replies with the stored video, its rating caption and the
// inline keyboard.
func (b *Bot) sendMovie(c tele.Context, number int) error {
	movie, err := b.repos.Movies.GetByNumber(b.ctx, number)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return c.Send(msgMovieNotFound)
		}
		b.logger.Error("failed to load movie", zap.Int("number", number), zap.Error(err))
		return c.Send(msgGenericError)
	}

	avg, rated, err := b.repos.Ratings.Average(b.ctx, number)
	if err != nil {
		b.logger.Error("failed to average ratings", zap.Int("number", number), zap.Error(err))
		return c.Send(msgGenericError)
	}

	video := &tele.Video{
		File:    tele.File{FileID: movie.FileID},
		Caption: movieCaption(number, avg, rated),
	}
	return c.Send(video, movieKeyboard(number))
}

func (b *Bot) handleMyFavorites(c tele.Context) error {
	userID := c.Sender().ID

	favs, err := b.repos.Favorites.ListForUser(b.ctx, userID)
	if err != nil {
		b.logger.Error("myfavorites failed", zap.Int64("user_id", userID), zap.Error(err))
		return c.Send(msgGenericError)
	}
	if len(favs) == 0 {
		return c.Send(msgNoFavorites)
	}

	var lines []string
	for i, n := range favs {
		lines = append(lines, fmt.Sprintf("%d. Kino #%d", i+1, n))
	}
	return c.Send(fmt.Sprintf(msgFavoritesList, strings.Join(lines, "\n")))
}

func (b *Bot) handleMyStats(c tele.Context) error {
	userID := c.Sender().ID

	favCount, err := b.repos.Favorites.Count(b.ctx, userID)
	if err != nil {
		return b.statsError(c, userID, err)
	}
	reviewCount, err := b.repos.Reviews.Count(b.ctx, userID)
	if err != nil {
		return b.statsError(c, userID, err)
	}
	ratingCount, err := b.repos.Ratings.Count(b.ctx, userID)
	if err != nil {
		return b.statsError(c, userID, err)
	}
	reminderCount, err := b.repos.Reminders.Count(b.ctx, userID)
	if err != nil {
		return b.statsError(c, userID, err)
	}

	return c.Send(fmt.Sprintf(msgStats, favCount, reviewCount, ratingCount, reminderCount))
}

func (b *Bot) statsError(c tele.Context, userID int64, err error) error {
	b.logger.Error("mystats failed", zap.Int64("user_id", userID), zap.Error(err))
	return c.Send(msgGenericError)
}
