package handlers

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"gorm.io/gorm"

	"tg-hangman-bot/pkg/bot/delivery"
	"tg-hangman-bot/pkg/db"
	"tg-hangman-bot/pkg/logger"
	"tg-hangman-bot/pkg/ui"
)

const notYourConfigAlert = "🚫 This is not your configuration. Open your own with /config."

// HandleConfig answers /config with the configuration menu.
func HandleConfig(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update == nil || update.Message == nil || update.Message.From == nil || update.Message.Chat.ID == 0 {
		logger.Error("invalid update in HandleConfig")
		return
	}
	userID := update.Message.From.ID

	text, keyboard, err := ui.ConfigHomeView(userID)
	if err != nil {
		logger.Error("failed to render config menu", "user_id", userID, "error", err)
		return
	}

	status, _, err := delivery.Send(ctx, b, &bot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        text,
		ParseMode:   models.ParseModeMarkdown,
		ReplyMarkup: keyboard,
	})
	if err != nil {
		logger.Error("failed to send config menu", "user_id", userID, "status", status, "error", err)
	}
}

// HandleConfigCallback drives the emoji customization menus.
func HandleConfigCallback(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update == nil || update.CallbackQuery == nil {
		logger.Error("invalid update in HandleConfigCallback")
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

	action, err := ui.ParseConfigCallback(update.CallbackQuery.Data)
	if err != nil {
		logger.Error("failed to parse config callback", "data", update.CallbackQuery.Data, "error", err)
		answer("Unknown command", false)
		return
	}

	userID := update.CallbackQuery.From.ID
	if userID != action.OwnerID {
		answer(notYourConfigAlert, true)
		return
	}

	msg, ok := callbackMessage(update)
	if !ok {
		logger.Error("config callback message is inaccessible", "user_id", userID)
		answer("Message is not available", false)
		return
	}

	var text string
	var keyboard *models.InlineKeyboardMarkup

	switch action.Op {
	case ui.OpConfigEmoji:
		text, keyboard, err = ui.ConfigEmojiMenuView(userID)
	case ui.OpConfigBack:
		text, keyboard, err = ui.ConfigHomeView(userID)
	case ui.OpConfigReset:
		text, keyboard, err = ui.ConfigResetConfirmView(userID)
	case ui.OpConfigGroup:
		text, keyboard, err = ui.ConfigGroupView(action.Group, loadEmojiSettings(userID), userID)
	case ui.OpConfigSet:
		if err := applyEmojiSelection(userID, action); err != nil {
			logger.Error("failed to save emoji selection", "user_id", userID, "error", err)
			answer("Failed to save your selection", false)
			return
		}
		answer(fmt.Sprintf("Emoji at position %d updated to %s", action.Index+1, action.Emoji), false)
		text, keyboard, err = ui.ConfigGroupView(action.Group, loadEmojiSettings(userID), userID)
	case ui.OpConfigConfirmReset:
		if err := db.DB.Where("user_id = ?", userID).Delete(&db.EmojiSettings{}).Error; err != nil {
			logger.Error("failed to reset emoji settings", "user_id", userID, "error", err)
			answer("Failed to reset configuration", false)
			return
		}
		answer("Configuration reset to default", true)
		text = "Configuration reset to default. Use /play to start a new game!"
		keyboard = &models.InlineKeyboardMarkup{InlineKeyboard: [][]models.InlineKeyboardButton{}}
	case ui.OpConfigClose:
		answer("", false)
		if err := delivery.Delete(ctx, b, msg.Chat.ID, []int{msg.ID}); err != nil {
			logger.Error("failed to close config menu", "user_id", userID, "error", err)
		}
		return
	default:
		answer("Unknown command", false)
		return
	}
	if err != nil {
		logger.Error("failed to render config screen", "user_id", userID, "error", err)
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
		logger.Error("failed to edit config message", "user_id", userID, "status", status, "error", err)
	}
	answer("", false)
}

// applyEmojiSelection persists one picked emoji, creating the settings
// row on first use.
func applyEmojiSelection(userID int64, action ui.ConfigAction) error {
	var settings db.EmojiSettings
	err := db.DB.Where("user_id = ?", userID).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		settings = db.EmojiSettings{UserID: userID}
	} else if err != nil {
		return err
	}

	if err := ui.ApplyEmoji(&settings, action.Group, action.Index, action.Emoji); err != nil {
		return err
	}
	return db.DB.Save(&settings).Error
}
