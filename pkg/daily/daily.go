package daily

import (
	"errors"
	"sync"
	"time"

	"gorm.io/gorm"

	"tg-hangman-bot/pkg/db"
	"tg-hangman-bot/pkg/logger"
	"tg-hangman-bot/pkg/words"
)

// Challenge is the shared word everyone plays on a given day.
type Challenge struct {
	Word       string
	Category   words.Category
	Difficulty words.Difficulty
	Date       time.Time
}

// Tracker owns the current daily challenge and the per-player gate.
// The challenge regenerates lazily whenever the stored date no longer
// matches today, so a missed rotation job never serves a stale word.
type Tracker struct {
	mu      sync.Mutex
	current Challenge
	now     func() time.Time
}

func NewTracker(now func() time.Time) *Tracker {
	if now == nil {
		now = time.Now
	}
	return &Tracker{now: now}
}

var DefaultTracker = NewTracker(nil)

func ResetDefaultTracker(now func() time.Time) {
	DefaultTracker = NewTracker(now)
}

// Current returns today's challenge, rotating first if the stored one
// is from another day.
func (t *Tracker) Current() Challenge {
	t.mu.Lock()
	defer t.mu.Unlock()

	today := dateOf(t.now())
	if t.current.Word == "" || !t.current.Date.Equal(today) {
		t.rotateLocked(today)
	}
	return t.current
}

// Rotate forces a fresh challenge for today. The midnight job calls
// this so the first player of the day does not pay the generation cost.
func (t *Tracker) Rotate() Challenge {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rotateLocked(dateOf(t.now()))
	return t.current
}

func (t *Tracker) rotateLocked(today time.Time) {
	category := words.RandomCategory()
	difficulty := words.RandomDifficulty()
	word, err := words.Random(category, difficulty)
	if err != nil {
		logger.Error("failed to draw a daily challenge word", "category", category, "difficulty", difficulty, "error", err)
		return
	}
	t.current = Challenge{
		Word:       word,
		Category:   category,
		Difficulty: difficulty,
		Date:       today,
	}
	logger.Info("daily challenge rotated", "category", category, "difficulty", difficulty, "date", today.Format("2006-01-02"))
}

// Today returns the tracker's current calendar date.
func (t *Tracker) Today() time.Time {
	return dateOf(t.now())
}

// CanPlay gates the daily challenge to one attempt per player per day.
// The first call of the day claims the attempt by writing a zero-score
// gate row; later calls the same day are rejected.
func (t *Tracker) CanPlay(userID int64) (bool, error) {
	today := dateOf(t.now())

	var gate db.DailyChallengeGate
	err := db.DB.Where("user_id = ?", userID).First(&gate).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		gate = db.DailyChallengeGate{UserID: userID, LastPlayed: today}
		return true, db.DB.Create(&gate).Error
	case err != nil:
		return false, err
	}

	if sameDate(gate.LastPlayed, today) {
		return false, nil
	}
	gate.LastPlayed = today
	gate.Score = 0
	return true, db.DB.Save(&gate).Error
}

// RecordScore stores a finished daily game's score, overwriting only
// when strictly greater than the day's stored best. It returns the
// score that stands for the player today.
func (t *Tracker) RecordScore(userID int64, score int) (int, error) {
	today := dateOf(t.now())

	var gate db.DailyChallengeGate
	err := db.DB.Where("user_id = ?", userID).First(&gate).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return score, nil
	}
	if err != nil {
		return score, err
	}
	if !sameDate(gate.LastPlayed, today) {
		return score, nil
	}
	if score > gate.Score {
		gate.Score = score
		if err := db.DB.Save(&gate).Error; err != nil {
			return score, err
		}
	}
	return gate.Score, nil
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
