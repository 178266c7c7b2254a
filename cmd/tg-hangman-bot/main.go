package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/go-telegram/bot"
	"tg-hangman-bot/pkg/bot/delivery"
	"tg-hangman-bot/pkg/bot/handlers"
	"tg-hangman-bot/pkg/config"
	"tg-hangman-bot/pkg/daily"
	"tg-hangman-bot/pkg/db"
	"tg-hangman-bot/pkg/game"
	"tg-hangman-bot/pkg/logger"
	"tg-hangman-bot/pkg/ui"
)

type botCleaner struct {
	b *bot.Bot
}

func (c botCleaner) DeleteMessages(ctx context.Context, chatID int64, messageIDs []int) error {
	return delivery.Delete(ctx, c.b, chatID, messageIDs)
}

func main() {
	if err := config.LoadConfig("config.json"); err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := logger.Configure(logger.Options{
		Level: config.AppConfig.Logging.Level,
		File:  config.AppConfig.Logging.File,
	}); err != nil {
		logger.Error("failed to configure logger", "error", err)
	}

	if err := db.InitDB(config.AppConfig.Database); err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	opts := []bot.Option{
		bot.WithDefaultHandler(handlers.DefaultHandler),
	}
	b, err := bot.New(config.AppConfig.Telegram.Token, opts...)
	if err != nil {
		logger.Error("failed to create bot", "error", err)
		os.Exit(1)
	}

	b.RegisterHandler(bot.HandlerTypeMessageText, "/hangman", bot.MatchTypeExact, handlers.HandleHangman)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/play", bot.MatchTypeExact, handlers.HandlePlay)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/stats", bot.MatchTypeExact, handlers.HandleStats)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/ranking", bot.MatchTypeExact, handlers.HandleRanking)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/config", bot.MatchTypeExact, handlers.HandleConfig)
	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, ui.GameCallbackPrefix, bot.MatchTypePrefix, handlers.HandleGameCallback)
	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, ui.StatsCallbackPrefix, bot.MatchTypePrefix, handlers.HandleStatsCallback)
	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, ui.BoardCallbackPrefix, bot.MatchTypePrefix, handlers.HandleBoardCallback)
	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, ui.ConfigCallbackPrefix, bot.MatchTypePrefix, handlers.HandleConfigCallback)

	go game.DefaultManager.StartReaper(ctx, botCleaner{b: b})

	scheduler, err := daily.StartRotation(daily.DefaultTracker)
	if err != nil {
		logger.Error("failed to start daily challenge rotation", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := scheduler.Shutdown(); err != nil {
			logger.Error("failed to shut down scheduler", "error", err)
		}
	}()

	logger.Info("Starting bot...")
	b.Start(ctx)
}
