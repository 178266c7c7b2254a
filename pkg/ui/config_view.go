package ui

import (
	"fmt"

	"github.com/go-telegram/bot/models"

	"tg-hangman-bot/pkg/db"
)

// ConfigHomeView renders the /config entry menu.
func ConfigHomeView(ownerID int64) (string, *models.InlineKeyboardMarkup, error) {
	emojiData, err := BuildConfigCallback(OpConfigEmoji, ownerID)
	if err != nil {
		return "", nil, err
	}
	resetData, err := BuildConfigCallback(OpConfigReset, ownerID)
	if err != nil {
		return "", nil, err
	}
	closeData, err := BuildConfigCallback(OpConfigClose, ownerID)
	if err != nil {
		return "", nil, err
	}

	text := "⚙️ **Hangman Configuration**\n\nCustomize your game experience:"
	markup := &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{{Text: "🎭 Customize Emojis", CallbackData: emojiData}},
			{{Text: "🔄 Reset to Default", CallbackData: resetData}},
			{{Text: "❌ Close Configuration", CallbackData: closeData}},
		},
	}
	return text, markup, nil
}

// ConfigEmojiMenuView renders the emoji group picker.
func ConfigEmojiMenuView(ownerID int64) (string, *models.InlineKeyboardMarkup, error) {
	livesData, err := BuildConfigGroupCallback(GroupLives, ownerID)
	if err != nil {
		return "", nil, err
	}
	keyboardData, err := BuildConfigGroupCallback(GroupKeyboard, ownerID)
	if err != nil {
		return "", nil, err
	}
	difficultyData, err := BuildConfigGroupCallback(GroupDifficulty, ownerID)
	if err != nil {
		return "", nil, err
	}
	backData, err := BuildConfigCallback(OpConfigBack, ownerID)
	if err != nil {
		return "", nil, err
	}

	text := "🎭 **Emoji Customization**\n\nPick a set to change:"
	markup := &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{{Text: "❤️ Lives Emojis", CallbackData: livesData}},
			{{Text: "⌨️ Keyboard Emojis", CallbackData: keyboardData}},
			{{Text: "🔥 Difficulty Emojis", CallbackData: difficultyData}},
			{{Text: "« Back", CallbackData: backData}},
		},
	}
	return text, markup, nil
}

var groupTitles = map[EmojiGroup]string{
	GroupLives:      "❤️ Lives Emojis",
	GroupKeyboard:   "⌨️ Keyboard Emojis",
	GroupDifficulty: "🔥 Difficulty Emojis",
}

// ConfigGroupView renders the option grid for one emoji group. Each
// row is a full option set; the player's currently selected emoji in
// each position is marked with a check.
func ConfigGroupView(group EmojiGroup, settings db.EmojiSettings, ownerID int64) (string, *models.InlineKeyboardMarkup, error) {
	current, options := groupState(group, settings)
	if options == nil {
		return "", nil, errInvalidValue
	}

	var rows [][]models.InlineKeyboardButton
	for _, option := range options {
		var row []models.InlineKeyboardButton
		for i, emoji := range option {
			data, err := BuildConfigSetCallback(group, i, emoji, ownerID)
			if err != nil {
				return "", nil, err
			}
			label := emoji
			if emoji == current[i] {
				label = emoji + " ✓"
			}
			row = append(row, models.InlineKeyboardButton{Text: label, CallbackData: data})
		}
		rows = append(rows, row)
	}

	backData, err := BuildConfigCallback(OpConfigEmoji, ownerID)
	if err != nil {
		return "", nil, err
	}
	rows = append(rows, []models.InlineKeyboardButton{{Text: "« Back", CallbackData: backData}})

	text := fmt.Sprintf("🎨 **%s Customization**\n\nTap an emoji to select it:", groupTitles[group])
	return text, &models.InlineKeyboardMarkup{InlineKeyboard: rows}, nil
}

// groupState returns the player's current emojis and the selectable
// option sets for a group, both as position-indexed slices.
func groupState(group EmojiGroup, settings db.EmojiSettings) ([]string, [][]string) {
	switch group {
	case GroupLives:
		resolved := ResolveLives(settings)
		options := make([][]string, 0, len(LivesOptions))
		for _, option := range LivesOptions {
			options = append(options, option[:])
		}
		return []string{resolved.Healthy, resolved.Lost, resolved.Last}, options
	case GroupKeyboard:
		resolved := ResolveKeyboard(settings)
		options := make([][]string, 0, len(KeyboardOptions))
		for _, option := range KeyboardOptions {
			options = append(options, option[:])
		}
		return []string{resolved.Correct, resolved.Wrong}, options
	case GroupDifficulty:
		resolved := ResolveDifficulty(settings)
		options := make([][]string, 0, len(DifficultyOptions))
		for _, option := range DifficultyOptions {
			options = append(options, option[:])
		}
		return []string{resolved.Easy, resolved.Medium, resolved.Hard}, options
	default:
		return nil, nil
	}
}

// ConfigResetConfirmView asks before wiping the player's overrides.
func ConfigResetConfirmView(ownerID int64) (string, *models.InlineKeyboardMarkup, error) {
	confirmData, err := BuildConfigCallback(OpConfigConfirmReset, ownerID)
	if err != nil {
		return "", nil, err
	}
	cancelData, err := BuildConfigCallback(OpConfigBack, ownerID)
	if err != nil {
		return "", nil, err
	}

	text := "🔄 **Reset Configuration**\n\nThis restores every emoji set to its default. Continue?"
	markup := &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{{Text: "✅ Yes, reset", CallbackData: confirmData}},
			{{Text: "❌ No, cancel", CallbackData: cancelData}},
		},
	}
	return text, markup, nil
}
