package handlers

import (
	"context"
	"strings"
	"testing"

	"tg-hangman-bot/pkg/game"
	"tg-hangman-bot/pkg/internal/testutil"
	"tg-hangman-bot/pkg/words"
)

func TestHandleHangmanSendsWelcome(t *testing.T) {
	client := newMockClient()
	b := newTestTelegramBot(t, client)

	HandleHangman(context.Background(), b, newTestUpdate("/hangman", 10))

	text := client.lastMessageText(t)
	if !strings.Contains(text, "Welcome to Hangman") {
		t.Fatalf("expected the welcome text, got %q", text)
	}
	if !strings.Contains(text, "/play") || !strings.Contains(text, "/ranking") {
		t.Fatalf("expected the command list, got %q", text)
	}
}

func TestHandlePlayStartsSetup(t *testing.T) {
	testutil.SetupTestDB(t)
	game.ResetDefaultManager(nil)
	client := newMockClient()
	b := newTestTelegramBot(t, client)

	HandlePlay(context.Background(), b, newTestUpdate("/play", 10))

	text := client.messageTextFor(t, "sendMessage")
	if !strings.Contains(text, "Choose a category") {
		t.Fatalf("expected the category prompt, got %q", text)
	}
	if !game.DefaultManager.HasSession(10) {
		t.Fatal("expected a tracked setup session after /play")
	}
}

func TestGameCallbackOwnerGuard(t *testing.T) {
	testutil.SetupTestDB(t)
	game.ResetDefaultManager(nil)
	client := newMockClient()
	b := newTestTelegramBot(t, client)

	// User 11 presses a button on user 10's game.
	HandleGameCallback(context.Background(), b, newTestCallbackUpdate("h:cat:animals:10", 11, 100, 5))

	body := client.lastRequestBody(t)
	if !strings.Contains(body, "This is not your game") {
		t.Fatalf("expected the owner guard alert, got %q", body)
	}
	if game.DefaultManager.HasSession(11) || game.DefaultManager.HasSession(10) {
		t.Fatal("an owner guard rejection must not touch any session")
	}
}

func TestCategorySelectionShowsDifficultyMenu(t *testing.T) {
	testutil.SetupTestDB(t)
	game.ResetDefaultManager(nil)
	client := newMockClient()
	b := newTestTelegramBot(t, client)

	HandleGameCallback(context.Background(), b, newTestCallbackUpdate("h:cat:animals:10", 10, 100, 5))

	text := client.messageTextFor(t, "editMessageText")
	if !strings.Contains(text, "Animals") || !strings.Contains(text, "difficulty") {
		t.Fatalf("expected the difficulty menu, got %q", text)
	}
	if !game.DefaultManager.HasSession(10) {
		t.Fatal("expected the setup session to be tracked")
	}
}

func TestDifficultySelectionStartsGame(t *testing.T) {
	testutil.SetupTestDB(t)
	game.ResetDefaultManager(nil)
	client := newMockClient()
	b := newTestTelegramBot(t, client)

	HandleGameCallback(context.Background(), b, newTestCallbackUpdate("h:dif:animals:easy:10", 10, 100, 5))

	text := client.messageTextFor(t, "editMessageText")
	if !strings.Contains(text, "Hangman Game - Animals") {
		t.Fatalf("expected the game message, got %q", text)
	}
	if !strings.Contains(text, "▢") {
		t.Fatalf("expected a masked word, got %q", text)
	}
	if !game.DefaultManager.HasSession(10) {
		t.Fatal("expected an in-progress session")
	}
}

func TestGuessCallbackWithoutGame(t *testing.T) {
	testutil.SetupTestDB(t)
	game.ResetDefaultManager(nil)
	client := newMockClient()
	b := newTestTelegramBot(t, client)

	HandleGameCallback(context.Background(), b, newTestCallbackUpdate("h:guess:A:10", 10, 100, 5))

	body := client.lastRequestBody(t)
	if !strings.Contains(body, "No active game") {
		t.Fatalf("expected the no-game alert, got %q", body)
	}
}

func TestWinningGuessShowsEndScreenAndRecordsProfile(t *testing.T) {
	testutil.SetupTestDB(t)
	game.ResetDefaultManager(nil)
	client := newMockClient()
	b := newTestTelegramBot(t, client)

	game.DefaultManager.StartGame(10, 100, "CAT", words.CategoryAnimals, words.DifficultyEasy, false, 5)
	for _, letter := range []string{"C", "A", "T"} {
		HandleGameCallback(context.Background(), b, newTestCallbackUpdate("h:guess:"+letter+":10", 10, 100, 5))
	}

	text := client.messageTextFor(t, "editMessageText")
	if !strings.Contains(text, "Congratulations") || !strings.Contains(text, "CAT") {
		t.Fatalf("expected the win screen, got %q", text)
	}
	if !strings.Contains(text, "First Win") {
		t.Fatalf("expected the first-win achievement on the end screen, got %q", text)
	}
	if game.DefaultManager.HasSession(10) {
		t.Fatal("the finished session must be discarded")
	}

	p, err := Profiles.Get(10)
	if err != nil {
		t.Fatalf("failed to load profile: %v", err)
	}
	if p.GamesPlayed != 1 || p.GamesWon != 1 {
		t.Fatalf("expected the win recorded on the profile, got %+v", p)
	}
}

func TestUsedLetterCallbackAlerts(t *testing.T) {
	client := newMockClient()
	b := newTestTelegramBot(t, client)

	HandleGameCallback(context.Background(), b, newTestCallbackUpdate("h:used:10", 10, 100, 5))

	body := client.lastRequestBody(t)
	if !strings.Contains(body, "already guessed") {
		t.Fatalf("expected the already-guessed alert, got %q", body)
	}
}

func TestPlayAgainShowsCategoryMenu(t *testing.T) {
	testutil.SetupTestDB(t)
	game.ResetDefaultManager(nil)
	client := newMockClient()
	b := newTestTelegramBot(t, client)

	HandleGameCallback(context.Background(), b, newTestCallbackUpdate("h:again:10", 10, 100, 5))

	text := client.messageTextFor(t, "editMessageText")
	if !strings.Contains(text, "Choose a category") {
		t.Fatalf("expected the category menu, got %q", text)
	}
	if !game.DefaultManager.HasSession(10) {
		t.Fatal("expected a fresh setup session")
	}
}
