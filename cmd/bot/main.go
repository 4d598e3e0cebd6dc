package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/xatamovmurodjonuz/telegram-bot/internal/bot"
	"github.com/xatamovmurodjonuz/telegram-bot/internal/config"
	"github.com/xatamovmurodjonuz/telegram-bot/internal/repository"
	"github.com/xatamovmurodjonuz/telegram-bot/internal/scheduler"
	"github.com/xatamovmurodjonuz/telegram-bot/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := storage.NewConnection(ctx, &storage.Config{
		URL:            cfg.Database.URL,
		MaxConnections: cfg.Database.MaxConnections,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	if err := storage.RunMigrations(cfg.Database.URL, cfg.Database.MigrationsPath, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	repos := bot.Repositories{
		Movies:    repository.NewMovieRepository(db),
		Favorites: repository.NewFavoriteRepository(db),
		Reviews:   repository.NewReviewRepository(db),
		Ratings:   repository.NewRatingRepository(db),
		Reminders: repository.NewReminderRepository(db),
		Profiles:  repository.NewProfileRepository(db),
	}

	b, err := bot.New(ctx, cfg, repos, logger)
	if err != nil {
		logger.Fatal("Failed to init bot", zap.Error(err))
	}

	dispatcher := scheduler.NewReminderDispatcher(repos.Reminders, repos.Movies, b.API(), logger)
	dispatcher.Run(ctx, cfg.ReminderInterval)

	go func() {
		<-ctx.Done()
		logger.Info("Shutting down")
		b.Stop()
	}()

	b.Start()
}
