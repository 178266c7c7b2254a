package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"tg-hangman-bot/pkg/bot/delivery"
	"tg-hangman-bot/pkg/logger"
	"tg-hangman-bot/pkg/ui"
)

const notYourStatsAlert = "🚫 These are not your stats! Please view your own stats with /stats."

// HandleStats answers /stats with the performance section and the
// section switcher buttons.
func HandleStats(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update == nil || update.Message == nil || update.Message.From == nil || update.Message.Chat.ID == 0 {
		logger.Error("invalid update in HandleStats")
		return
	}
	userID := update.Message.From.ID
	name := userName(update.Message.From)

	if err := Profiles.UpdateName(userID, name); err != nil {
		logger.Error("failed to update player name", "user_id", userID, "error", err)
	}

	p, err := Profiles.Get(userID)
	if err != nil {
		logger.Error("failed to load profile", "user_id", userID, "error", err)
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: update.Message.Chat.ID,
			Text:   "Failed to load your statistics. Please try again later.",
		})
		return
	}
	if p.Name == "" {
		p.Name = name
	}

	text, keyboard, err := ui.StatsView(ui.SectionPerformance, p)
	if err != nil {
		logger.Error("failed to render stats", "user_id", userID, "error", err)
		return
	}

	status, _, err := delivery.Send(ctx, b, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        "📊 **Your Hangman Statistics**\n\n" + text,
		ParseMode:   models.ParseModeMarkdown,
		ReplyMarkup: keyboard,
	})
	if err != nil {
		logger.Error("failed to send stats message", "user_id", userID, "status", status, "error", err)
	}
}

// HandleStatsCallback switches between stats sections.
func HandleStatsCallback(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update == nil || update.CallbackQuery == nil {
		logger.Error("invalid update in HandleStatsCallback")
		return
	}

	callbackID := update.CallbackQuery.ID
	answered := false
	answer := func(text string, alert bool) {
		if answered || callbackID == "" {
			return
		}
		if _, err := b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
			CallbackQueryID: callbackID,
			Text:            text,
			ShowAlert:       alert,
		}); err != nil {
			logger.Error("failed to answer callback query", "error", err)
		}
		answered = true
	}

	action, err := ui.ParseStatsCallback(update.CallbackQuery.Data)
	if err != nil {
		logger.Error("failed to parse stats callback", "data", update.CallbackQuery.Data, "error", err)
		answer("Unknown command", false)
		return
	}

	userID := update.CallbackQuery.From.ID
	if userID != action.OwnerID {
		answer(notYourStatsAlert, true)
		return
	}

	msg, ok := callbackMessage(update)
	if !ok {
		logger.Error("stats callback message is inaccessible", "user_id", userID)
		answer("Message is not available", false)
		return
	}

	p, err := Profiles.Get(userID)
	if err != nil {
		logger.Error("failed to load profile", "user_id", userID, "error", err)
		answer("Failed to load statistics", false)
		return
	}
	if p.Name == "" {
		p.Name = userName(&update.CallbackQuery.From)
	}

	text, keyboard, err := ui.StatsView(action.Section, p)
	if err != nil {
		logger.Error("failed to render stats section", "user_id", userID, "section", action.Section, "error", err)
		answer("Something went wrong", false)
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
		logger.Error("failed to edit stats message", "user_id", userID, "status", status, "error", err)
	}
	answer("", false)
}
