package handlers

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"tg-hangman-bot/pkg/bot/delivery"
	"tg-hangman-bot/pkg/logger"
	"tg-hangman-bot/pkg/translate"
)

// Translations is the language backend used by /translate. Tests swap
// in a fake.
var Translations translate.Translator = translate.NewGoogleTranslator()

var languageNames = map[string]string{
	"en": "English",
	"ar": "Arabic",
}

// HandleTranslate answers /translate sent as a reply to a text message.
// English is translated to Arabic and Arabic to English; any other
// detected language is reported as unsupported.
func HandleTranslate(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update == nil || update.Message == nil || update.Message.Chat.ID == 0 {
		logger.Error("invalid update in HandleTranslate")
		return
	}
	chatID := update.Message.Chat.ID

	reply := func(text string) {
		status, _, err := delivery.Send(ctx, b, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   text,
			ReplyParameters: &models.ReplyParameters{
				MessageID: update.Message.ID,
			},
		})
		if err != nil {
			logger.Error("failed to send translation reply", "chat_id", chatID, "status", status, "error", err)
		}
	}

	source := update.Message.ReplyToMessage
	if source == nil || source.Text == "" {
		reply("Please reply to a text message with /translate")
		return
	}

	detected, err := Translations.Detect(ctx, source.Text)
	if err != nil {
		logger.Error("failed to detect language", "chat_id", chatID, "error", err)
		reply("Translation failed. Please try again later.")
		return
	}

	var target string
	switch detected {
	case "en":
		target = "ar"
	case "ar":
		target = "en"
	default:
		reply(fmt.Sprintf("Detected language is %s. This bot only supports English and Arabic translation.", detected))
		return
	}

	translated, err := Translations.Translate(ctx, source.Text, detected, target)
	if err != nil {
		logger.Error("failed to translate message", "chat_id", chatID, "error", err)
		reply("Translation failed. Please try again later.")
		return
	}

	reply(fmt.Sprintf("Translation from %s to %s:\n\n%s", languageNames[detected], languageNames[target], translated))
}
