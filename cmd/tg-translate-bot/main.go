package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/go-telegram/bot"
	"tg-hangman-bot/pkg/bot/handlers"
	"tg-hangman-bot/pkg/config"
	"tg-hangman-bot/pkg/logger"
)

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

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	b, err := bot.New(config.AppConfig.Telegram.TranslateToken)
	if err != nil {
		logger.Error("failed to create bot", "error", err)
		os.Exit(1)
	}

	b.RegisterHandler(bot.HandlerTypeMessageText, "/translate", bot.MatchTypePrefix, handlers.HandleTranslate)

	logger.Info("Starting translation bot...")
	b.Start(ctx)
}
