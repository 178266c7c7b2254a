package ui

import (
	"tg-hangman-bot/pkg/db"
	"tg-hangman-bot/pkg/words"
)

// EmojiGroup names a customizable emoji set.
type EmojiGroup string

const (
	GroupLives      EmojiGroup = "lives"
	GroupKeyboard   EmojiGroup = "keyboard"
	GroupDifficulty EmojiGroup = "difficulty"
)

func validEmojiGroup(group EmojiGroup) bool {
	return group == GroupLives || group == GroupKeyboard || group == GroupDifficulty
}

// LivesEmojis draw the attempts row: Healthy for remaining attempts,
// Lost for spent ones, Last replaces the whole row on the final
// attempt.
type LivesEmojis struct {
	Healthy string
	Lost    string
	Last    string
}

// KeyboardEmojis replace used letter buttons.
type KeyboardEmojis struct {
	Correct string
	Wrong   string
}

type DifficultyEmojis struct {
	Easy   string
	Medium string
	Hard   string
}

var (
	DefaultLives      = LivesEmojis{Healthy: "💚", Lost: "❤️", Last: "💔"}
	DefaultKeyboard   = KeyboardEmojis{Correct: "🎯", Wrong: "🚫"}
	DefaultDifficulty = DifficultyEmojis{Easy: "😊", Medium: "😐", Hard: "😈"}
)

// Option sets players can pick from in the configuration menu.
var (
	LivesOptions = [][3]string{
		{"💚", "❤️", "💔"},
		{"🧔‍♂️", "💀", "⚰️"},
		{"🌱", "🍃", "🍂"},
		{"🍜", "🥢", "🥣"},
	}

	KeyboardOptions = [][2]string{
		{"🎯", "🚫"}, {"✅", "❌"}, {"🟢", "🔴"},
		{"👍", "👎"}, {"💚", "💔"}, {"😊", "😞"},
		{"🌟", "💨"}, {"✓", "✗"},
	}

	DifficultyOptions = [][3]string{
		{"😊", "😐", "😈"},
		{"😃", "😑", "😠"},
		{"🤡", "😕", "😡"},
		{"😁", "😶", "😤"},
		{"😌", "🤔", "💪"},
		{"😇", "🙄", "😎"},
	}
)

// ResolveLives maps a stored settings row to a usable set, falling back
// to defaults for unset fields.
func ResolveLives(settings db.EmojiSettings) LivesEmojis {
	resolved := DefaultLives
	if settings.LivesHealthy != "" {
		resolved.Healthy = settings.LivesHealthy
	}
	if settings.LivesLost != "" {
		resolved.Lost = settings.LivesLost
	}
	if settings.LivesLast != "" {
		resolved.Last = settings.LivesLast
	}
	return resolved
}

func ResolveKeyboard(settings db.EmojiSettings) KeyboardEmojis {
	resolved := DefaultKeyboard
	if settings.KeyboardCorrect != "" {
		resolved.Correct = settings.KeyboardCorrect
	}
	if settings.KeyboardWrong != "" {
		resolved.Wrong = settings.KeyboardWrong
	}
	return resolved
}

func ResolveDifficulty(settings db.EmojiSettings) DifficultyEmojis {
	resolved := DefaultDifficulty
	if settings.DifficultyEasy != "" {
		resolved.Easy = settings.DifficultyEasy
	}
	if settings.DifficultyMedium != "" {
		resolved.Medium = settings.DifficultyMedium
	}
	if settings.DifficultyHard != "" {
		resolved.Hard = settings.DifficultyHard
	}
	return resolved
}

// For returns the emoji matching the game difficulty.
func (e DifficultyEmojis) For(difficulty words.Difficulty) string {
	switch difficulty {
	case words.DifficultyMedium:
		return e.Medium
	case words.DifficultyHard:
		return e.Hard
	default:
		return e.Easy
	}
}

// ApplyEmoji writes one selected emoji into the settings row. The index
// addresses the position within the group (0 healthy/correct/easy,
// 1 lost/wrong/medium, 2 last/hard).
func ApplyEmoji(settings *db.EmojiSettings, group EmojiGroup, index int, emoji string) error {
	switch group {
	case GroupLives:
		switch index {
		case 0:
			settings.LivesHealthy = emoji
		case 1:
			settings.LivesLost = emoji
		case 2:
			settings.LivesLast = emoji
		default:
			return errInvalidValue
		}
	case GroupKeyboard:
		switch index {
		case 0:
			settings.KeyboardCorrect = emoji
		case 1:
			settings.KeyboardWrong = emoji
		default:
			return errInvalidValue
		}
	case GroupDifficulty:
		switch index {
		case 0:
			settings.DifficultyEasy = emoji
		case 1:
			settings.DifficultyMedium = emoji
		case 2:
			settings.DifficultyHard = emoji
		default:
			return errInvalidValue
		}
	default:
		return errInvalidValue
	}
	return nil
}
