package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"tg-hangman-bot/pkg/logger"
)

// DefaultHandler answers anything that is not a known command with the
// command list.
func DefaultHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update == nil || update.Message == nil {
		logger.Error("received invalid update in defaultHandler")
		return
	}
	if update.Message.Chat.ID == 0 {
		logger.Error("chat ID is zero in defaultHandler")
		return
	}

	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text: "Commands:\n" +
			"* /hangman: how to play.\n" +
			"* /play: start a new game.\n" +
			"* /stats: view your statistics.\n" +
			"* /ranking: view the leaderboards.\n" +
			"* /config: customize your emojis.",
	})
	if err != nil {
		logger.Error("failed to send message in defaultHandler", "error", err)
	}
}
