package handlers

import (
	"context"
	"strings"
	"testing"

	"tg-hangman-bot/pkg/daily"
	"tg-hangman-bot/pkg/internal/testutil"
	"tg-hangman-bot/pkg/profile"
)

func TestHandleRankingSendsWinsBoard(t *testing.T) {
	testutil.SetupTestDB(t)
	daily.ResetDefaultTracker(nil)
	client := newMockClient()
	b := newTestTelegramBot(t, client)

	for i := 0; i < 3; i++ {
		if _, _, err := Profiles.RecordGameEnd(20, "Alice", profile.GameEnd{
			Won: true, Solved: true, Score: 30,
		}); err != nil {
			t.Fatalf("failed to seed profile: %v", err)
		}
	}

	HandleRanking(context.Background(), b, newTestUpdate("/ranking", 10))

	text := client.messageTextFor(t, "sendMessage")
	if !strings.Contains(text, "Most Wins") {
		t.Fatalf("expected the wins board title, got %q", text)
	}
	if !strings.Contains(text, "Alice") {
		t.Fatalf("expected the seeded player on the board, got %q", text)
	}
}

func TestBoardCallbackSwitchesKind(t *testing.T) {
	testutil.SetupTestDB(t)
	daily.ResetDefaultTracker(nil)
	client := newMockClient()
	b := newTestTelegramBot(t, client)

	HandleBoardCallback(context.Background(), b, newTestCallbackUpdate("lb:scores", 10, 100, 5))

	text := client.messageTextFor(t, "editMessageText")
	if !strings.Contains(text, "Highest Scores Leaderboard") {
		t.Fatalf("expected the scores board title, got %q", text)
	}
}

func TestBoardCallbackRejectsUnknownKind(t *testing.T) {
	testutil.SetupTestDB(t)
	client := newMockClient()
	b := newTestTelegramBot(t, client)

	HandleBoardCallback(context.Background(), b, newTestCallbackUpdate("lb:bogus", 10, 100, 5))

	body := client.lastRequestBody(t)
	if !strings.Contains(body, "Invalid leaderboard type") {
		t.Fatalf("expected the invalid kind answer, got %q", body)
	}
}
