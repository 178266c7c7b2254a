package handlers

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	"tg-hangman-bot/pkg/bot/delivery"
	"tg-hangman-bot/pkg/daily"
	"tg-hangman-bot/pkg/game"
	"tg-hangman-bot/pkg/logger"
	"tg-hangman-bot/pkg/profile"
	"tg-hangman-bot/pkg/ui"
	"tg-hangman-bot/pkg/words"
)

const noActiveGameAlert = "🚫 No active game found. Please start a new game with /play."

// HandleGameCallback drives the whole game flow: category and
// difficulty selection, the daily challenge, guesses, hints, and the
// play-again loop.
func HandleGameCallback(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update == nil || update.CallbackQuery == nil {
		logger.Error("invalid update in HandleGameCallback")
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

	action, err := ui.ParseGameCallback(update.CallbackQuery.Data)
	if err != nil {
		logger.Error("failed to parse game callback", "data", update.CallbackQuery.Data, "error", err)
		answer("Unknown command", false)
		return
	}

	userID := update.CallbackQuery.From.ID
	if userID != action.OwnerID {
		answer(notYourGameAlert, true)
		return
	}

	msg, ok := callbackMessage(update)
	if !ok {
		logger.Error("game callback message is inaccessible", "user_id", userID)
		answer("Message is not available", false)
		return
	}

	switch action.Op {
	case ui.OpUsed:
		answer("You've already guessed this letter!", true)
	case ui.OpCategory:
		handleCategorySelected(ctx, b, msg, action, answer)
	case ui.OpDifficulty:
		handleDifficultySelected(ctx, b, msg, action, answer)
	case ui.OpDaily:
		handleDailySelected(ctx, b, msg, userID, answer)
	case ui.OpGuess:
		handleGuess(ctx, b, msg, update.CallbackQuery.From, action.Letter, answer)
	case ui.OpHint:
		handleHint(ctx, b, msg, update.CallbackQuery.From, answer)
	case ui.OpPlayAgain:
		handlePlayAgain(ctx, b, msg, userID, answer)
	default:
		answer("Unknown command", false)
	}
}

func handleCategorySelected(ctx context.Context, b *bot.Bot, msg *models.Message, action ui.GameAction, answer func(string, bool)) {
	category, err := words.ParseCategory(action.Category)
	if err != nil {
		logger.Error("invalid category in callback", "category", action.Category, "error", err)
		answer("Unknown category", false)
		return
	}

	emojis := ui.ResolveDifficulty(loadEmojiSettings(action.OwnerID))
	text, keyboard, err := ui.DifficultyMenuView(category, emojis, action.OwnerID)
	if err != nil {
		logger.Error("failed to render difficulty menu", "user_id", action.OwnerID, "error", err)
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
	if err != nil {
		logger.Error("failed to show difficulty menu", "user_id", action.OwnerID, "status", status, "error", err)
	}

	game.DefaultManager.TrackSetup(action.OwnerID, msg.Chat.ID, game.StageSelectingDifficulty, msg.ID)
	answer("", false)
}

func handleDifficultySelected(ctx context.Context, b *bot.Bot, msg *models.Message, action ui.GameAction, answer func(string, bool)) {
	category, err := words.ParseCategory(action.Category)
	if err != nil {
		logger.Error("invalid category in callback", "category", action.Category, "error", err)
		answer("Unknown category", false)
		return
	}
	difficulty, err := words.ParseDifficulty(action.Difficulty)
	if err != nil {
		logger.Error("invalid difficulty in callback", "difficulty", action.Difficulty, "error", err)
		answer("Unknown difficulty", false)
		return
	}

	word, err := words.Random(category, difficulty)
	if err != nil {
		logger.Error("failed to draw a word", "category", category, "difficulty", difficulty, "error", err)
		answer("Something went wrong", false)
		return
	}

	snapshot := game.DefaultManager.StartGame(action.OwnerID, msg.Chat.ID, word, category, difficulty, false, msg.ID)
	if err := renderGame(ctx, b, snapshot, action.OwnerID); err != nil {
		logger.Error("failed to render new game", "user_id", action.OwnerID, "error", err)
		game.DefaultManager.Abandon(action.OwnerID)
		answer("An error occurred. Please try again.", true)
		return
	}
	answer("", false)
}

func handleDailySelected(ctx context.Context, b *bot.Bot, msg *models.Message, userID int64, answer func(string, bool)) {
	ok, err := daily.DefaultTracker.CanPlay(userID)
	if err != nil {
		logger.Error("failed to check daily challenge gate", "user_id", userID, "error", err)
		answer("Something went wrong", false)
		return
	}
	if !ok {
		answer("You've already played today's challenge. Come back tomorrow!", true)
		return
	}

	challenge := daily.DefaultTracker.Current()
	snapshot := game.DefaultManager.StartGame(userID, msg.Chat.ID, challenge.Word, challenge.Category, challenge.Difficulty, true, msg.ID)
	if err := renderGame(ctx, b, snapshot, userID); err != nil {
		logger.Error("failed to render daily challenge", "user_id", userID, "error", err)
		game.DefaultManager.Abandon(userID)
		answer("An error occurred. Please try again.", true)
		return
	}
	answer("Daily challenge started!", false)
}

func handleGuess(ctx context.Context, b *bot.Bot, msg *models.Message, from models.User, letter string, answer func(string, bool)) {
	result := game.DefaultManager.Guess(from.ID, letter)
	if !result.Handled {
		answer(noActiveGameAlert, true)
		return
	}
	if result.Notice != "" {
		answer(result.Notice, true)
		return
	}

	if result.Outcome != game.OutcomeNone {
		finishGame(ctx, b, msg, from, terminalState{
			snapshot:     result.Snapshot,
			outcome:      result.Outcome,
			solved:       result.Solved,
			perfect:      result.Perfect,
			guessedCount: result.GuessedCount,
		})
		answer("", false)
		return
	}

	if err := renderGame(ctx, b, result.Snapshot, from.ID); err != nil {
		logger.Error("failed to render game after guess", "user_id", from.ID, "error", err)
	}
	answer("", false)
}

func handleHint(ctx context.Context, b *bot.Bot, msg *models.Message, from models.User, answer func(string, bool)) {
	result := game.DefaultManager.Hint(from.ID)
	if !result.Handled {
		answer(noActiveGameAlert, true)
		return
	}
	if result.Notice != "" {
		answer(result.Notice, true)
		return
	}

	if result.Outcome != game.OutcomeNone {
		finishGame(ctx, b, msg, from, terminalState{
			snapshot:     result.Snapshot,
			outcome:      result.Outcome,
			solved:       result.Solved,
			perfect:      result.Perfect,
			guessedCount: result.GuessedCount,
		})
		answer(fmt.Sprintf("Hint: The word contains the letter '%s'", result.Letter), false)
		return
	}

	if err := renderGame(ctx, b, result.Snapshot, from.ID); err != nil {
		logger.Error("failed to render game after hint", "user_id", from.ID, "error", err)
	}
	answer(fmt.Sprintf("Hint: The word contains the letter '%s'", result.Letter), false)
}

func handlePlayAgain(ctx context.Context, b *bot.Bot, msg *models.Message, userID int64, answer func(string, bool)) {
	text, keyboard, err := ui.CategoryMenuView(userID)
	if err != nil {
		logger.Error("failed to render category menu", "user_id", userID, "error", err)
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
	if err != nil {
		logger.Error("failed to show category menu", "user_id", userID, "status", status, "error", err)
	}

	game.DefaultManager.TrackSetup(userID, msg.Chat.ID, game.StageSelectingCategory, msg.ID)
	answer("", false)
}

// renderGame edits the tracked game message to the current state.
func renderGame(ctx context.Context, b *bot.Bot, snapshot game.Snapshot, userID int64) error {
	settings := loadEmojiSettings(userID)
	text, keyboard, err := ui.GameView(
		snapshot,
		ui.ResolveLives(settings),
		ui.ResolveDifficulty(settings),
		ui.ResolveKeyboard(settings),
		userID,
	)
	if err != nil {
		return err
	}
	if snapshot.DailyChallenge {
		text = "🌟 Daily Challenge 🌟\n\n" + text
	}

	status, err := delivery.Edit(ctx, b, &bot.EditMessageTextParams{
		ChatID:      snapshot.ChatID,
		MessageID:   snapshot.MessageID,
		Text:        text,
		ParseMode:   models.ParseModeMarkdown,
		ReplyMarkup: keyboard,
	})
	if status == delivery.StatusUnchanged {
		return nil
	}
	return err
}

type terminalState struct {
	snapshot     game.Snapshot
	outcome      game.Outcome
	solved       bool
	perfect      bool
	guessedCount int
}

// finishGame records the finished game on the profile, updates the
// daily board if needed, and replaces the game message with the end
// screen.
func finishGame(ctx context.Context, b *bot.Bot, msg *models.Message, from models.User, state terminalState) {
	won := state.outcome == game.OutcomeWon
	name := userName(&from)

	updated, earned, err := Profiles.RecordGameEnd(from.ID, name, profile.GameEnd{
		Won:            won,
		Solved:         state.solved,
		Perfect:        state.perfect,
		Score:          state.snapshot.Score,
		GuessedLetters: state.guessedCount,
	})
	if err != nil {
		logger.Error("failed to record game end", "user_id", from.ID, "error", err)
	}

	score := state.snapshot.Score
	if state.snapshot.DailyChallenge {
		best, err := daily.DefaultTracker.RecordScore(from.ID, score)
		if err != nil {
			logger.Error("failed to record daily score", "user_id", from.ID, "error", err)
		} else {
			score = best
		}
	}

	text, keyboard, err := ui.EndScreenView(ui.EndScreen{
		Won:            won,
		PlayerName:     name,
		Word:           state.snapshot.Word,
		Category:       state.snapshot.Category,
		Difficulty:     state.snapshot.Difficulty,
		Score:          score,
		Streak:         updated.Streak,
		DailyChallenge: state.snapshot.DailyChallenge,
		Earned:         earned,
		OwnerID:        from.ID,
	})
	if err != nil {
		logger.Error("failed to render end screen", "user_id", from.ID, "error", err)
		return
	}

	status, err := delivery.Edit(ctx, b, &bot.EditMessageTextParams{
		ChatID:      msg.Chat.ID,
		MessageID:   msg.ID,
		Text:        text,
		ParseMode:   models.ParseModeMarkdown,
		ReplyMarkup: keyboard,
	})
	if err != nil {
		logger.Error("failed to show end screen", "user_id", from.ID, "status", status, "error", err)
	}
}
