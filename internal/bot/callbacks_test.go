package bot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tele "gopkg.in/telebot.v3"
)

func TestCallbackFavorite(t *testing.T) {
	t.Run("adds favorite", func(t *testing.T) {
		b, deps := newTestBot(t, map[int]string{3: "f3"})
		deps.favorites.toggleAdded = true
		ctx := &MockContext{SenderVal: &tele.User{ID: 9}, DataVal: "3"}

		require.NoError(t, b.callbackFavorite(ctx))
		require.Len(t, ctx.Responses, 1)
		assert.Equal(t, msgFavAdded, ctx.Responses[0].Text)
		assert.Equal(t, int64(9), deps.favorites.capturedUserID)
		assert.Equal(t, 3, deps.favorites.capturedMovie)
	})

	t.Run("removes favorite", func(t *testing.T) {
		b, deps := newTestBot(t, map[int]string{3: "f3"})
		deps.favorites.toggleAdded = false
		ctx := &MockContext{DataVal: "3"}

		require.NoError(t, b.callbackFavorite(ctx))
		require.Len(t, ctx.Responses, 1)
		assert.Equal(t, msgFavRemoved, ctx.Responses[0].Text)
	})

	t.Run("movie gone", func(t *testing.T) {
		b, _ := newTestBot(t, nil)
		ctx := &MockContext{DataVal: "3"}

		require.NoError(t, b.callbackFavorite(ctx))
		require.Len(t, ctx.Responses, 1)
		assert.Equal(t, msgMovieGone, ctx.Responses[0].Text)
	})
}

func TestReviewFlow(t *testing.T) {
	b, deps := newTestBot(t, map[int]string{3: "f3"})
	sender := &tele.User{ID: 9, FirstName: "Ali", Username: "ali99"}

	ctx := &MockContext{SenderVal: sender, DataVal: "3"}
	require.NoError(t, b.callbackReview(ctx))
	assert.Equal(t, msgReviewPrompt, ctx.lastText())
	assert.Equal(t, StepAwaitReview, b.sessions.Get(9).Step)

	next := &MockContext{SenderVal: sender, TextVal: "Juda zo'r film"}
	require.NoError(t, b.handleText(next))

	assert.Equal(t, msgReviewSaved, next.lastText())
	assert.Equal(t, int64(9), deps.reviews.capturedUserID)
	assert.Equal(t, 3, deps.reviews.capturedMovie)
	assert.Equal(t, "Juda zo'r film", deps.reviews.capturedText)

	require.NotNil(t, deps.profiles.captured)
	assert.Equal(t, "Ali", deps.profiles.captured.FirstName)
	assert.Equal(t, "ali99", deps.profiles.captured.Username)

	assert.Equal(t, StepNone, b.sessions.Get(9).Step)
}

func TestCallbackRate(t *testing.T) {
	t.Run("stores rating and edits caption", func(t *testing.T) {
		b, deps := newTestBot(t, map[int]string{3: "f3"})
		deps.ratings.avg = 4.0
		ctx := &MockContext{SenderVal: &tele.User{ID: 9}, DataVal: "3|4"}

		require.NoError(t, b.callbackRate(ctx))

		assert.Equal(t, int64(9), deps.ratings.capturedUserID)
		assert.Equal(t, 3, deps.ratings.capturedMovie)
		assert.Equal(t, 4, deps.ratings.capturedStars)

		assert.Contains(t, ctx.Caption, "Kino #3")
		assert.Contains(t, ctx.Caption, "O'rtacha reyting: 4.0")

		require.Len(t, ctx.Responses, 1)
		assert.Contains(t, ctx.Responses[0].Text, "Siz 4 baho berdingiz")
	})

	t.Run("malformed data", func(t *testing.T) {
		b, _ := newTestBot(t, nil)
		ctx := &MockContext{DataVal: "3"}

		require.NoError(t, b.callbackRate(ctx))
		require.Len(t, ctx.Responses, 1)
		assert.Equal(t, msgGenericError, ctx.Responses[0].Text)
	})
}

func TestReminderFlow(t *testing.T) {
	sender := &tele.User{ID: 9}

	t.Run("prompt", func(t *testing.T) {
		b, _ := newTestBot(t, map[int]string{3: "f3"})
		ctx := &MockContext{SenderVal: sender, DataVal: "3"}

		require.NoError(t, b.callbackRemind(ctx))
		assert.Equal(t, msgReminderPrompt, ctx.lastText())
		sess := b.sessions.Get(9)
		assert.Equal(t, StepAwaitReminder, sess.Step)
		assert.Equal(t, 3, sess.MovieID)
	})

	t.Run("bad format", func(t *testing.T) {
		b, _ := newTestBot(t, nil)
		b.sessions.Set(9, Session{Step: StepAwaitReminder, MovieID: 3})

		ctx := &MockContext{SenderVal: sender, TextVal: "ertaga"}
		require.NoError(t, b.handleText(ctx))
		assert.Equal(t, msgReminderFormat, ctx.lastText())
	})

	t.Run("past time rejected", func(t *testing.T) {
		b, _ := newTestBot(t, nil)
		b.sessions.Set(9, Session{Step: StepAwaitReminder, MovieID: 3})

		ctx := &MockContext{SenderVal: sender, TextVal: "2020-01-01 10:00"}
		require.NoError(t, b.handleText(ctx))
		assert.Equal(t, msgReminderPast, ctx.lastText())
	})

	t.Run("future time saved", func(t *testing.T) {
		b, deps := newTestBot(t, nil)
		b.sessions.Set(9, Session{Step: StepAwaitReminder, MovieID: 3})

		future := time.Now().Add(24 * time.Hour).Truncate(time.Minute)
		ctx := &MockContext{SenderVal: sender, TextVal: future.Format(reminderTimeLayout)}
		require.NoError(t, b.handleText(ctx))

		assert.Contains(t, ctx.lastText(), "✅ Eslatma o'rnatildi")
		assert.Equal(t, int64(9), deps.reminders.capturedUserID)
		assert.Equal(t, 3, deps.reminders.capturedMovie)
		assert.True(t, deps.reminders.capturedTime.Equal(future))
		assert.Equal(t, StepNone, b.sessions.Get(9).Step)
	})
}
