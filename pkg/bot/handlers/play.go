package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"tg-hangman-bot/pkg/bot/delivery"
	"tg-hangman-bot/pkg/game"
	"tg-hangman-bot/pkg/logger"
	"tg-hangman-bot/pkg/ui"
)

// HandlePlay answers /play with the category menu and starts tracking
// the setup so the idle reaper can clean it up.
func HandlePlay(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update == nil || update.Message == nil || update.Message.From == nil || update.Message.Chat.ID == 0 {
		logger.Error("invalid update in HandlePlay")
		return
	}
	userID := update.Message.From.ID

	if err := Profiles.UpdateName(userID, userName(update.Message.From)); err != nil {
		logger.Error("failed to update player name", "user_id", userID, "error", err)
	}

	text, keyboard, err := ui.CategoryMenuView(userID)
	if err != nil {
		logger.Error("failed to render category menu", "user_id", userID, "error", err)
		return
	}

	status, messageID, err := delivery.Send(ctx, b, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        text,
		ParseMode:   models.ParseModeMarkdown,
		ReplyMarkup: keyboard,
	})
	if err != nil {
		logger.Error("failed to send category menu", "user_id", userID, "status", status, "error", err)
		return
	}

	game.DefaultManager.TrackSetup(userID, update.Message.Chat.ID, game.StageSelectingCategory, messageID)
}
