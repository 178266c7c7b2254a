package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"tg-hangman-bot/pkg/logger"
)

const welcomeText = "🎮 **Welcome to Hangman!** 🎉\n\n" +
	"Guess the word before the man gets hanged! ☠️\n\n" +
	"**Available Commands:**\n" +
	"🔹 /play - Start a new game. 🕹️\n" +
	"🔹 /stats - View your statistics. 📊\n" +
	"🔹 /ranking - Check the leaderboard. 🏆\n" +
	"🔹 /config - Customize your game experience. ⚙️\n\n" +
	"Good luck and have fun! 🍀"

// HandleHangman answers /hangman with the welcome and command list.
func HandleHangman(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update == nil || update.Message == nil || update.Message.Chat.ID == 0 {
		logger.Error("invalid update in HandleHangman")
		return
	}

	if _, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: update.Message.Chat.ID,
		Text:   welcomeText,
	}); err != nil {
		logger.Error("failed to send welcome message", "chat_id", update.Message.Chat.ID, "error", err)
	}
}
