package bot

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleAdmin opens the upload flow for admins; everyone else gets the
// contact reply.
func (b *Bot) handleAdmin(c tele.Context) error {
	userID := c.Sender().ID
	if !b.cfg.IsAdmin(userID) {
		return c.Send(msgContactAdmin)
	}

	b.sessions.Set(userID, Session{Step: StepAwaitVideo})
	return c.Send(msgAdminWelcome)
}

// adminReceiveVideo stores the uploaded video's file ID and asks for the
// catalog number.
func (b *Bot) adminReceiveVideo(c tele.Context) error {
	video := c.Message().Video
	if video == nil {
		return c.Send(msgVideoOnly)
	}

	b.sessions.Set(c.Sender().ID, Session{
		Step:   StepAwaitNumber,
		FileID: video.FileID,
	})
	return c.Send(msgVideoAccepted)
}

// adminReceiveNumber expects "+N" and saves the pending video under N.
func (b *Bot) adminReceiveNumber(c tele.Context) error {
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	if !strings.HasPrefix(text, "+") {
		return c.Send(msgBadNumber)
	}
	number, err := strconv.Atoi(text[1:])
	if err != nil || number < 0 {
		return c.Send(msgBadNumber)
	}

	sess := b.sessions.Get(userID)
	if sess.FileID == "" {
		b.sessions.Clear(userID)
		return c.Send(msgVideoLost)
	}

	if err := b.repos.Movies.Upsert(b.ctx, number, sess.FileID); err != nil {
		b.logger.Error("movie upsert failed", zap.Int("number", number), zap.Error(err))
		return c.Send(msgGenericError)
	}

	b.sessions.Clear(userID)
	return c.Send(fmt.Sprintf(msgMovieSaved, number))
}

// handleReviews lists the latest reviews with reviewer attribution.
// Admin only.
func (b *Bot) handleReviews(c tele.Context) error {
	if !b.cfg.IsAdmin(c.Sender().ID) {
		return c.Send(msgContactAdmin)
	}

	reviews, err := b.repos.Reviews.Latest(b.ctx, 20)
	if err != nil {
		b.logger.Error("reviews listing failed", zap.Error(err))
		return c.Send(msgGenericError)
	}
	if len(reviews) == 0 {
		return c.Send(msgNoReviews)
	}

	var sb strings.Builder
	sb.WriteString(msgReviewsHead)
	for _, review := range reviews {
		name := review.FirstName
		if name == "" {
			name = "Foydalanuvchi"
		}
		userInfo := name
		if review.Username != "" {
			userInfo += fmt.Sprintf(" (@%s)", review.Username)
		}

		sb.WriteString(fmt.Sprintf("👤 %s\n🎬 Kino #%d\n💬 %s\n⏰ %s\n\n",
			userInfo,
			review.MovieID,
			review.Text,
			review.CreatedAt.Format(reminderTimeLayout),
		))
	}

	return c.Send(sb.String())
}
