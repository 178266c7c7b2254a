package handlers

import (
	"errors"

	"github.com/go-telegram/bot/models"
	"gorm.io/gorm"

	"tg-hangman-bot/pkg/db"
	"tg-hangman-bot/pkg/logger"
	"tg-hangman-bot/pkg/profile"
)

const notYourGameAlert = "Oops! 🚫 This is not your game. Start your own with /play!"

// Profiles is the shared profile service used by every handler.
var Profiles = profile.NewService(nil)

// userName extracts the player's display name from a message or
// callback sender.
func userName(from *models.User) string {
	if from == nil {
		return "Unknown Player"
	}
	if from.FirstName != "" {
		return from.FirstName
	}
	if from.Username != "" {
		return from.Username
	}
	return "Unknown Player"
}

// loadEmojiSettings returns the player's overrides, or a zero row that
// resolves to the defaults.
func loadEmojiSettings(userID int64) db.EmojiSettings {
	var settings db.EmojiSettings
	err := db.DB.Where("user_id = ?", userID).First(&settings).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		logger.Error("failed to load emoji settings", "user_id", userID, "error", err)
	}
	settings.UserID = userID
	return settings
}

// callbackMessage unwraps the message a callback was attached to.
func callbackMessage(update *models.Update) (*models.Message, bool) {
	message := update.CallbackQuery.Message
	if message.Type != models.MaybeInaccessibleMessageTypeMessage || message.Message == nil {
		return nil, false
	}
	if message.Message.Chat.ID == 0 {
		return nil, false
	}
	return message.Message, true
}
