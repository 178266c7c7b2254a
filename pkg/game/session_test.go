package game

import (
	"context"
	"strings"
	"testing"
	"time"

	"tg-hangman-bot/pkg/db"
	"tg-hangman-bot/pkg/internal/testutil"
	"tg-hangman-bot/pkg/words"
)

type testClock struct {
	t time.Time
}

func (c *testClock) Now() time.Time {
	return c.t
}

func (c *testClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

type recordingCleaner struct {
	chatIDs    []int64
	messageIDs [][]int
}

func (c *recordingCleaner) DeleteMessages(_ context.Context, chatID int64, messageIDs []int) error {
	c.chatIDs = append(c.chatIDs, chatID)
	c.messageIDs = append(c.messageIDs, messageIDs)
	return nil
}

func startTestGame(t *testing.T, manager *Manager, userID int64, word string) Snapshot {
	t.Helper()
	return manager.StartGame(userID, userID, word, words.CategoryAnimals, words.DifficultyEasy, false, 500)
}

func TestStartGameInitializesSession(t *testing.T) {
	clock := &testClock{t: time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)}
	manager := NewManager(clock.Now)

	snapshot := startTestGame(t, manager, 10, "CAT")
	if snapshot.Stage != StageInProgress {
		t.Fatalf("expected stage in_progress, got %q", snapshot.Stage)
	}
	if snapshot.AttemptsLeft != CalculateAttempts(3) || snapshot.MaxAttempts != snapshot.AttemptsLeft {
		t.Fatalf("unexpected attempts budget: %d/%d", snapshot.AttemptsLeft, snapshot.MaxAttempts)
	}
	if snapshot.Score != 0 {
		t.Fatalf("expected zero initial score, got %d", snapshot.Score)
	}
	if len(snapshot.GuessedLetters) != 0 {
		t.Fatalf("expected no guessed letters, got %v", snapshot.GuessedLetters)
	}
	if len(snapshot.KeyboardLetters) == 0 {
		t.Fatalf("expected keyboard pool to be generated")
	}
	if !manager.HasSession(10) {
		t.Fatalf("expected session to be stored")
	}
}

func TestGuessWinsInAnyOrder(t *testing.T) {
	for _, order := range [][]string{{"C", "A", "T"}, {"T", "C", "A"}, {"A", "T", "C"}} {
		manager := NewManager(time.Now)
		startTestGame(t, manager, 10, "CAT")

		var last GuessResult
		for _, letter := range order {
			last = manager.Guess(10, letter)
			if !last.Handled {
				t.Fatalf("guess %q was not handled", letter)
			}
			if !last.Correct {
				t.Fatalf("guess %q should be correct", letter)
			}
		}
		if last.Outcome != OutcomeWon {
			t.Fatalf("expected win after guessing all letters in order %v", order)
		}
		if !last.Solved {
			t.Fatalf("expected win to count as solved")
		}
		if last.Snapshot.AttemptsLeft != last.Snapshot.MaxAttempts {
			t.Fatalf("correct guesses must not cost attempts: %d/%d", last.Snapshot.AttemptsLeft, last.Snapshot.MaxAttempts)
		}
		if !last.Perfect {
			t.Fatalf("win with a full attempts budget should be perfect")
		}
		if manager.HasSession(10) {
			t.Fatalf("terminal session should be discarded")
		}
	}
}

func TestWrongGuessCostsOneAttempt(t *testing.T) {
	manager := NewManager(time.Now)
	snapshot := startTestGame(t, manager, 10, "CAT")

	result := manager.Guess(10, "Z")
	if !result.Handled || result.Correct {
		t.Fatalf("expected a handled wrong guess, got %+v", result)
	}
	if result.Snapshot.AttemptsLeft != snapshot.AttemptsLeft-1 {
		t.Fatalf("expected one attempt lost, got %d -> %d", snapshot.AttemptsLeft, result.Snapshot.AttemptsLeft)
	}
}

func TestRepeatedGuessIsRejectedWithoutMutation(t *testing.T) {
	manager := NewManager(time.Now)
	startTestGame(t, manager, 10, "CAT")

	first := manager.Guess(10, "Z")
	second := manager.Guess(10, "Z")
	if second.Notice == "" {
		t.Fatalf("expected an already-guessed notice")
	}
	if second.Snapshot.AttemptsLeft != first.Snapshot.AttemptsLeft {
		t.Fatalf("repeated guess must not cost attempts")
	}
	if len(second.Snapshot.GuessedLetters) != len(first.Snapshot.GuessedLetters) {
		t.Fatalf("repeated guess must not grow the guessed set")
	}
}

func TestLossExactlyWhenAttemptsReachZero(t *testing.T) {
	manager := NewManager(time.Now)
	snapshot := startTestGame(t, manager, 10, "CAT")

	wrong := []string{"B", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M", "N"}
	var result GuessResult
	for i := 0; i < snapshot.MaxAttempts; i++ {
		result = manager.Guess(10, wrong[i])
		if i < snapshot.MaxAttempts-1 && result.Outcome != OutcomeNone {
			t.Fatalf("unexpected terminal outcome %q after %d wrong guesses", result.Outcome, i+1)
		}
	}
	if result.Outcome != OutcomeLost {
		t.Fatalf("expected loss when attempts hit zero, got %q", result.Outcome)
	}
	if result.Snapshot.AttemptsLeft != 0 {
		t.Fatalf("expected zero attempts at loss, got %d", result.Snapshot.AttemptsLeft)
	}
	if result.Snapshot.Score != 0 {
		t.Fatalf("expected zero score at loss, got %d", result.Snapshot.Score)
	}
}

func TestHintRevealsWordLetterAndCostsOneAttempt(t *testing.T) {
	manager := NewManager(time.Now)
	snapshot := startTestGame(t, manager, 10, "ZEBRA")

	result := manager.Hint(10)
	if !result.Handled || result.Notice != "" {
		t.Fatalf("expected a handled hint, got %+v", result)
	}
	if !strings.Contains("ZEBRA", result.Letter) {
		t.Fatalf("hint letter %q is not in the word", result.Letter)
	}
	if result.Snapshot.AttemptsLeft != snapshot.AttemptsLeft-1 {
		t.Fatalf("hint must cost exactly one attempt: %d -> %d", snapshot.AttemptsLeft, result.Snapshot.AttemptsLeft)
	}
}

func TestHintUnavailableWhenWordFullyGuessed(t *testing.T) {
	manager := NewManager(time.Now)
	startTestGame(t, manager, 10, "CAT")

	manager.Guess(10, "C")
	manager.Guess(10, "A")
	result := manager.Guess(10, "T")
	if result.Outcome != OutcomeWon {
		t.Fatalf("expected the game to be won")
	}

	// The session is gone; a hint on a finished game is not handled.
	hint := manager.Hint(10)
	if hint.Handled {
		t.Fatalf("expected hint on a missing session to be unhandled")
	}
}

func TestHintCanWinButIsNotPerfect(t *testing.T) {
	manager := NewManager(time.Now)
	startTestGame(t, manager, 10, "AA")

	result := manager.Hint(10)
	if result.Outcome != OutcomeWon {
		t.Fatalf("expected hint to finish the single-letter word, got %q", result.Outcome)
	}
	if result.Perfect {
		t.Fatalf("a game using a hint must not count as perfect")
	}
	if !result.Solved {
		t.Fatalf("a hint win still counts as solved")
	}
}

func TestReaperRemovesIdleSessionsAndDeletesMessages(t *testing.T) {
	clock := &testClock{t: time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)}
	manager := NewManager(clock.Now)
	cleaner := &recordingCleaner{}

	manager.TrackSetup(10, 100, StageSelectingCategory, 41)
	startTestGame(t, manager, 11, "CAT")

	clock.Advance(IdleTimeout + time.Second)
	manager.SweepInactive(context.Background(), cleaner)

	if manager.HasSession(10) || manager.HasSession(11) {
		t.Fatalf("expected idle sessions to be reaped")
	}
	if len(cleaner.chatIDs) != 2 {
		t.Fatalf("expected cleanup for both sessions, got %d", len(cleaner.chatIDs))
	}
}

func TestReaperKeepsActiveSessions(t *testing.T) {
	clock := &testClock{t: time.Date(2024, 2, 1, 8, 0, 0, 0, time.UTC)}
	manager := NewManager(clock.Now)

	startTestGame(t, manager, 10, "CAT")
	clock.Advance(IdleTimeout - time.Second)
	manager.SweepInactive(context.Background(), &recordingCleaner{})

	if !manager.HasSession(10) {
		t.Fatalf("expected a recently active session to survive the sweep")
	}
}

func TestGameRecordsPersisted(t *testing.T) {
	testutil.SetupTestDB(t)
	manager := NewManager(time.Now)

	startTestGame(t, manager, 10, "CAT")
	manager.Guess(10, "C")
	manager.Guess(10, "A")
	result := manager.Guess(10, "T")
	if result.Outcome != OutcomeWon {
		t.Fatalf("expected a win")
	}

	var record db.GameRecord
	if err := db.DB.Where("user_id = ?", int64(10)).First(&record).Error; err != nil {
		t.Fatalf("failed to load game record: %v", err)
	}
	if !record.Won {
		t.Fatalf("expected the record to be marked won")
	}
	if record.Word != "CAT" {
		t.Fatalf("unexpected word in record: %q", record.Word)
	}
	if record.Score != result.Snapshot.Score {
		t.Fatalf("expected score %d in record, got %d", result.Snapshot.Score, record.Score)
	}
}
