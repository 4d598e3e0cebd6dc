package bot

import (
	"context"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"

	"github.com/xatamovmurodjonuz/telegram-bot/internal/config"
	"github.com/xatamovmurodjonuz/telegram-bot/internal/repository"
)

// Repositories bundles the data access the handlers need.
type Repositories struct {
	Movies    repository.MovieRepository
	Favorites repository.FavoriteRepository
	Reviews   repository.ReviewRepository
	Ratings   repository.RatingRepository
	Reminders repository.ReminderRepository
	Profiles  repository.ProfileRepository
}

// Bot wires telebot handlers to the repositories.
type Bot struct {
	api      *tele.Bot
	cfg      *config.Config
	repos    Repositories
	sessions *SessionStore
	logger   *zap.Logger

	// ctx bounds repository calls made from handlers; cancelled on shutdown.
	ctx context.Context
}

// New creates the bot and registers all handlers.
func New(ctx context.Context, cfg *config.Config, repos Repositories, logger *zap.Logger) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.BotToken,
		Poller: &tele.LongPoller{Timeout: cfg.PollTimeout},
	}

	api, err := tele.NewBot(pref)
	if err != nil {
		return nil, err
	}

	b := &Bot{
		api:      api,
		cfg:      cfg,
		repos:    repos,
		sessions: NewSessionStore(),
		logger:   logger.Named("bot"),
		ctx:      ctx,
	}
	b.register()
	return b, nil
}

func (b *Bot) register() {
	b.api.Handle("/start", b.handleStart)
	b.api.Handle("/admin", b.handleAdmin)
	b.api.Handle("/reviews", b.handleReviews)
	b.api.Handle("/myfavorites", b.handleMyFavorites)
	b.api.Handle("/mystats", b.handleMyStats)

	// Conversation steps and movie selection all arrive as plain text.
	b.api.Handle(tele.OnText, b.handleText)
	b.api.Handle(tele.OnVideo, b.handleVideo)

	b.api.Handle(&tele.Btn{Unique: uniqueFav}, b.callbackFavorite)
	b.api.Handle(&tele.Btn{Unique: uniqueReview}, b.callbackReview)
	b.api.Handle(&tele.Btn{Unique: uniqueRemind}, b.callbackRemind)
	b.api.Handle(&tele.Btn{Unique: uniqueRate}, b.callbackRate)
}

// Start begins long polling. Blocks until Stop is called.
func (b *Bot) Start() {
	b.logger.Info("Bot online", zap.String("username", b.api.Me.Username))
	b.api.Start()
}

// Stop terminates the poller.
func (b *Bot) Stop() {
	b.api.Stop()
}

// API exposes the underlying telebot instance, used by the reminder
// dispatcher as its message sender.
func (b *Bot) API() *tele.Bot {
	return b.api
}
