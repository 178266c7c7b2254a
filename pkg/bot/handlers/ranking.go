package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"tg-hangman-bot/pkg/bot/delivery"
	"tg-hangman-bot/pkg/daily"
	"tg-hangman-bot/pkg/leaderboard"
	"tg-hangman-bot/pkg/logger"
	"tg-hangman-bot/pkg/ui"
)

// HandleRanking answers /ranking with the most-wins board.
func HandleRanking(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update == nil || update.Message == nil || update.Message.From == nil || update.Message.Chat.ID == 0 {
		logger.Error("invalid update in HandleRanking")
		return
	}
	userID := update.Message.From.ID

	if err := Profiles.UpdateName(userID, userName(update.Message.From)); err != nil {
		logger.Error("failed to update player name", "user_id", userID, "error", err)
	}

	text, keyboard, err := renderBoard(leaderboard.KindWins)
	if err != nil {
		logger.Error("failed to build leaderboard", "user_id", userID, "error", err)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: update.Message.Chat.ID,
			Text:   "Failed to load the leaderboard. Please try again later.",
		})
		return
	}

	status, _, err := delivery.Send(ctx, b, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        text,
		ParseMode:   models.ParseModeMarkdown,
		ReplyMarkup: keyboard,
	})
	if err != nil {
		logger.Error("failed to send leaderboard", "user_id", userID, "status", status, "error", err)
	}
}

// HandleBoardCallback switches between leaderboard tabs. Boards are
// public, so there is no owner guard here.
func HandleBoardCallback(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update == nil || update.CallbackQuery == nil {
		logger.Error("invalid update in HandleBoardCallback")
		return
	}

	callbackID := update.CallbackQuery.ID
	answered := false
	answer := func(text string) {
		if answered || callbackID == "" {
			return
		}
		if _, err := b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
			CallbackQueryID: callbackID,
			Text:            text,
		}); err != nil {
			logger.Error("failed to answer callback query", "error", err)
		}
		answered = true
	}

	raw, err := ui.ParseBoardCallback(update.CallbackQuery.Data)
	if err != nil {
		logger.Error("failed to parse board callback", "data", update.CallbackQuery.Data, "error", err)
		answer("Unknown command")
		return
	}
	kind, err := leaderboard.ParseKind(raw)
	if err != nil {
		logger.Error("unknown leaderboard kind", "kind", raw, "error", err)
		answer("Invalid leaderboard type")
		return
	}

	msg, ok := callbackMessage(update)
	if !ok {
		logger.Error("board callback message is inaccessible", "user_id", update.CallbackQuery.From.ID)
		answer("Message is not available")
		return
	}

	text, keyboard, err := renderBoard(kind)
	if err != nil {
		logger.Error("failed to build leaderboard", "kind", kind, "error", err)
		answer("Failed to load the leaderboard")
		return
	}

	status, err := delivery.Edit(ctx, b, &bot.EditMessageTextParams{
		ChatID:      msg.Chat.ID,
		MessageID:   msg.ID,
		Text:        text,
		ParseMode:   models.ParseModeMarkdown,
		ReplyMarkup: keyboard,
	})
	if err != nil && status != delivery.StatusUnchanged {
		logger.Error("failed to edit leaderboard", "kind", kind, "status", status, "error", err)
	}
	answer("")
}

func renderBoard(kind leaderboard.Kind) (string, *models.InlineKeyboardMarkup, error) {
	entries, err := leaderboard.Build(Profiles, kind, daily.DefaultTracker.Today())
	if err != nil {
		return "", nil, err
	}
	return ui.LeaderboardView(kind, entries)
}
