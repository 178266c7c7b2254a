package daily

import (
	"testing"
	"time"

	"tg-hangman-bot/pkg/internal/testutil"
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

func TestCurrentRotatesAcrossDays(t *testing.T) {
	clock := &testClock{t: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
	tracker := NewTracker(clock.Now)

	first := tracker.Current()
	if first.Word == "" {
		t.Fatalf("expected a challenge word")
	}
	if !first.Date.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected challenge date: %v", first.Date)
	}

	// Same day: the tuple is stable.
	clock.Advance(6 * time.Hour)
	again := tracker.Current()
	if again != first {
		t.Fatalf("challenge changed within the same day: %+v vs %+v", again, first)
	}

	// Next day: a fresh date.
	clock.Advance(24 * time.Hour)
	next := tracker.Current()
	if next.Date.Equal(first.Date) {
		t.Fatalf("expected the challenge to rotate on the next day")
	}
}

func TestCanPlayOncePerDay(t *testing.T) {
	testutil.SetupTestDB(t)
	clock := &testClock{t: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
	tracker := NewTracker(clock.Now)

	ok, err := tracker.CanPlay(42)
	if err != nil {
		t.Fatalf("CanPlay returned error: %v", err)
	}
	if !ok {
		t.Fatalf("first attempt of the day should be allowed")
	}

	ok, err = tracker.CanPlay(42)
	if err != nil {
		t.Fatalf("CanPlay returned error: %v", err)
	}
	if ok {
		t.Fatalf("second attempt the same day must be rejected")
	}

	clock.Advance(24 * time.Hour)
	ok, err = tracker.CanPlay(42)
	if err != nil {
		t.Fatalf("CanPlay returned error: %v", err)
	}
	if !ok {
		t.Fatalf("a new day should allow a fresh attempt")
	}
}

func TestRecordScoreKeepsStrictlyGreater(t *testing.T) {
	testutil.SetupTestDB(t)
	clock := &testClock{t: time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)}
	tracker := NewTracker(clock.Now)

	if ok, err := tracker.CanPlay(42); err != nil || !ok {
		t.Fatalf("failed to claim the daily attempt: ok=%v err=%v", ok, err)
	}

	best, err := tracker.RecordScore(42, 30)
	if err != nil {
		t.Fatalf("RecordScore returned error: %v", err)
	}
	if best != 30 {
		t.Fatalf("expected stored score 30, got %d", best)
	}

	// An equal score does not overwrite.
	best, err = tracker.RecordScore(42, 30)
	if err != nil {
		t.Fatalf("RecordScore returned error: %v", err)
	}
	if best != 30 {
		t.Fatalf("expected stored score to stay 30, got %d", best)
	}

	// A lower score does not overwrite either.
	best, err = tracker.RecordScore(42, 10)
	if err != nil {
		t.Fatalf("RecordScore returned error: %v", err)
	}
	if best != 30 {
		t.Fatalf("expected stored score to stay 30, got %d", best)
	}

	best, err = tracker.RecordScore(42, 45)
	if err != nil {
		t.Fatalf("RecordScore returned error: %v", err)
	}
	if best != 45 {
		t.Fatalf("expected a strictly greater score to overwrite, got %d", best)
	}
}

func TestRecordScoreWithoutGateReturnsScore(t *testing.T) {
	testutil.SetupTestDB(t)
	tracker := NewTracker(nil)

	best, err := tracker.RecordScore(42, 15)
	if err != nil {
		t.Fatalf("RecordScore returned error: %v", err)
	}
	if best != 15 {
		t.Fatalf("expected the raw score back without a gate row, got %d", best)
	}
}
