package ui

import (
	"fmt"
	"strings"

	"github.com/go-telegram/bot/models"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"tg-hangman-bot/pkg/game"
	"tg-hangman-bot/pkg/profile"
	"tg-hangman-bot/pkg/words"
)

const keyboardRowWidth = 5

var titleCaser = cases.Title(language.English)

var categoryEmojis = map[words.Category]string{
	words.CategoryAnimals:     "🐾",
	words.CategoryCountries:   "🌎",
	words.CategoryFoods:       "🍔",
	words.CategoryFruits:      "🍎",
	words.CategoryVegetables:  "🥕",
	words.CategoryColors:      "🎨",
	words.CategorySports:      "⚽️",
	words.CategoryOccupations: "🧑‍💼",
	words.CategoryActions:     "🏃",
	words.CategoryAdjectives:  "✨",
}

// MaskWord renders the word with unguessed letters hidden.
func MaskWord(word string, guessed []string) string {
	guessedSet := make(map[string]struct{}, len(guessed))
	for _, letter := range guessed {
		guessedSet[letter] = struct{}{}
	}

	masked := make([]string, 0, len(word))
	for _, r := range word {
		letter := string(r)
		if _, ok := guessedSet[letter]; ok {
			masked = append(masked, letter)
		} else {
			masked = append(masked, "▢")
		}
	}
	return strings.Join(masked, " ")
}

// livesRow draws the attempts indicator. On the final attempt the
// whole row switches to the last-attempt emoji as a warning.
func livesRow(attemptsLeft, maxAttempts int, lives LivesEmojis) string {
	if attemptsLeft == 1 {
		return strings.Repeat(lives.Last, maxAttempts)
	}
	return strings.Repeat(lives.Healthy, attemptsLeft) + strings.Repeat(lives.Lost, maxAttempts-attemptsLeft)
}

// GameView renders the in-progress game message and its letter
// keyboard. Used letters become correct/wrong emoji buttons that map
// to a no-op callback.
func GameView(snapshot game.Snapshot, lives LivesEmojis, difficulty DifficultyEmojis, keys KeyboardEmojis, ownerID int64) (string, *models.InlineKeyboardMarkup, error) {
	guessedSet := make(map[string]struct{}, len(snapshot.GuessedLetters))
	for _, letter := range snapshot.GuessedLetters {
		guessedSet[letter] = struct{}{}
	}

	guessedLabel := "None"
	if len(snapshot.GuessedLetters) > 0 {
		guessedLabel = strings.Join(snapshot.GuessedLetters, ", ")
	}

	text := fmt.Sprintf(
		"🎮 Hangman Game - %s (%s %s)\n"+
			"Word: `%s`\n\n"+
			"Attempts left: %s\n"+
			"Guessed letters: %s\n"+
			"Current Score: `%d`\n\n"+
			"Guess a letter!",
		titleCaser.String(string(snapshot.Category)),
		titleCaser.String(string(snapshot.Difficulty)),
		difficulty.For(snapshot.Difficulty),
		MaskWord(snapshot.Word, snapshot.GuessedLetters),
		livesRow(snapshot.AttemptsLeft, snapshot.MaxAttempts, lives),
		guessedLabel,
		snapshot.Score,
	)

	usedData, err := BuildUsedCallback(ownerID)
	if err != nil {
		return "", nil, err
	}

	var rows [][]models.InlineKeyboardButton
	var row []models.InlineKeyboardButton
	for _, letter := range snapshot.KeyboardLetters {
		button := models.InlineKeyboardButton{Text: letter}
		if _, used := guessedSet[letter]; used {
			if strings.Contains(snapshot.Word, letter) {
				button.Text = keys.Correct
			} else {
				button.Text = keys.Wrong
			}
			button.CallbackData = usedData
		} else {
			guessData, err := BuildGuessCallback(letter, ownerID)
			if err != nil {
				return "", nil, err
			}
			button.CallbackData = guessData
		}
		row = append(row, button)
		if len(row) == keyboardRowWidth {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	hintData, err := BuildHintCallback(ownerID)
	if err != nil {
		return "", nil, err
	}
	rows = append(rows, []models.InlineKeyboardButton{{Text: "💡 Hint", CallbackData: hintData}})

	return text, &models.InlineKeyboardMarkup{InlineKeyboard: rows}, nil
}

// CategoryMenuView renders the category picker shown by /play, with
// the daily challenge at the top.
func CategoryMenuView(ownerID int64) (string, *models.InlineKeyboardMarkup, error) {
	dailyData, err := BuildDailyCallback(ownerID)
	if err != nil {
		return "", nil, err
	}

	rows := [][]models.InlineKeyboardButton{
		{{Text: "Daily Challenge 📅", CallbackData: dailyData}},
	}
	for _, category := range words.Categories() {
		data, err := BuildCategoryCallback(string(category), ownerID)
		if err != nil {
			return "", nil, err
		}
		label := fmt.Sprintf("%s %s", titleCaser.String(string(category)), categoryEmojis[category])
		rows = append(rows, []models.InlineKeyboardButton{{Text: label, CallbackData: data}})
	}

	text := "🎮 **Welcome to Hangman!**\n\nChoose a category to start:"
	return text, &models.InlineKeyboardMarkup{InlineKeyboard: rows}, nil
}

// DifficultyMenuView renders the difficulty picker for a chosen
// category.
func DifficultyMenuView(category words.Category, emojis DifficultyEmojis, ownerID int64) (string, *models.InlineKeyboardMarkup, error) {
	var rows [][]models.InlineKeyboardButton
	labels := []struct {
		difficulty words.Difficulty
		emoji      string
	}{
		{words.DifficultyEasy, emojis.Easy},
		{words.DifficultyMedium, emojis.Medium},
		{words.DifficultyHard, emojis.Hard},
	}
	for _, label := range labels {
		data, err := BuildDifficultyCallback(string(category), string(label.difficulty), ownerID)
		if err != nil {
			return "", nil, err
		}
		text := fmt.Sprintf("%s %s", titleCaser.String(string(label.difficulty)), label.emoji)
		rows = append(rows, []models.InlineKeyboardButton{{Text: text, CallbackData: data}})
	}

	text := fmt.Sprintf("🏷️ Category: **%s**\n\nNow pick a difficulty:", titleCaser.String(string(category)))
	return text, &models.InlineKeyboardMarkup{InlineKeyboard: rows}, nil
}

const wonGraphic = "```\n" +
	"   +---+\n" +
	"   |   |\n" +
	"       |\n" +
	"       |\n" +
	"  \\O/  |\n" +
	"   |   |\n" +
	"  / \\  |\n" +
	"=========\n" +
	"```\n"

const lostGraphic = "```\n" +
	"   +---+\n" +
	"   |   |\n" +
	"   O   |\n" +
	"  /|\\  |\n" +
	"  / \\  |\n" +
	"       |\n" +
	"=========\n" +
	"```\n"

// EndScreen carries everything the terminal message shows.
type EndScreen struct {
	Won            bool
	PlayerName     string
	Word           string
	Category       words.Category
	Difficulty     words.Difficulty
	Score          int
	Streak         int
	DailyChallenge bool
	Earned         []profile.Achievement
	OwnerID        int64
}

// EndScreenView renders the win or loss message with a Play Again
// button.
func EndScreenView(screen EndScreen) (string, *models.InlineKeyboardMarkup, error) {
	var text string
	if screen.Won {
		text = fmt.Sprintf(
			"🎉 **Congratulations, %s!**\n\nYou saved the man by guessing the word: **%s**\n%s",
			screen.PlayerName, screen.Word, wonGraphic,
		)
	} else {
		text = fmt.Sprintf(
			"😔 **Oh no, %s!** The man was hanged.\n\nThe word was: **%s**\n%s",
			screen.PlayerName, screen.Word, lostGraphic,
		)
	}
	text += fmt.Sprintf(
		"🏷️ **Category:** %s\n⚙️ **Difficulty:** %s\n🏆 **Score:** %d\n🔥 **Streak:** %d days\n\n",
		titleCaser.String(string(screen.Category)),
		titleCaser.String(string(screen.Difficulty)),
		screen.Score,
		screen.Streak,
	)

	if len(screen.Earned) > 0 {
		text += "🏅 **New Achievements:**\n"
		for _, achievement := range screen.Earned {
			text += achievement.Title + "\n"
		}
		text += "\n"
	}

	if screen.Won {
		text += "🌟 **Great job! Keep it up!** 🌟"
	} else {
		text += "🌟 **Better luck next time!** 🌟"
	}
	if screen.DailyChallenge {
		text += "\n\n📊 Check /ranking to see your ranking!"
	}

	againData, err := BuildPlayAgainCallback(screen.OwnerID)
	if err != nil {
		return "", nil, err
	}
	markup := &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{{Text: "🔄 Play Again", CallbackData: againData}},
		},
	}
	return text, markup, nil
}
