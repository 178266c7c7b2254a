package game

import (
	"context"
	"math/rand"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"tg-hangman-bot/pkg/db"
	"tg-hangman-bot/pkg/logger"
	"tg-hangman-bot/pkg/words"
)

const (
	// IdleTimeout is how long a session may sit without input before the
	// reaper discards it; ReaperInterval is how often the reaper scans.
	IdleTimeout    = 2 * time.Minute
	ReaperInterval = 1 * time.Minute
)

// Stage tracks where a player is in the game flow.
type Stage string

const (
	StageSelectingCategory   Stage = "selecting_category"
	StageSelectingDifficulty Stage = "selecting_difficulty"
	StageInProgress          Stage = "in_progress"
)

// Outcome is the terminal result of a finished game.
type Outcome string

const (
	OutcomeNone Outcome = ""
	OutcomeWon  Outcome = "won"
	OutcomeLost Outcome = "lost"
)

// Session is one player's active game. All mutation goes through the
// Manager, which holds the lock.
type Session struct {
	userID   int64
	chatID   int64
	recordID string
	stage    Stage

	word            string
	category        words.Category
	difficulty      words.Difficulty
	guessedLetters  map[string]struct{}
	attemptsLeft    int
	maxAttempts     int
	score           int
	keyboardLetters []string
	dailyChallenge  bool

	startedAt      time.Time
	lastActivityAt time.Time
	messageIDs     []int
}

// Snapshot is an immutable copy of session state handed to handlers.
type Snapshot struct {
	Stage           Stage
	Word            string
	GuessedLetters  []string
	AttemptsLeft    int
	MaxAttempts     int
	Score           int
	Category        words.Category
	Difficulty      words.Difficulty
	KeyboardLetters []string
	DailyChallenge  bool
	ChatID          int64
	MessageID       int
}

// GuessResult reports the effect of a letter guess.
type GuessResult struct {
	Handled      bool
	Notice       string
	Correct      bool
	Outcome      Outcome
	Solved       bool
	Perfect      bool
	GuessedCount int
	Snapshot     Snapshot
}

// HintResult reports the effect of a hint request. A hint reveals a
// correct letter but still costs one attempt.
type HintResult struct {
	Handled      bool
	Notice       string
	Letter       string
	Outcome      Outcome
	Solved       bool
	Perfect      bool
	GuessedCount int
	Snapshot     Snapshot
}

// MessageCleaner abstracts message deletion for the idle reaper.
type MessageCleaner interface {
	DeleteMessages(ctx context.Context, chatID int64, messageIDs []int) error
}

// Manager owns all active sessions behind one mutex.
type Manager struct {
	mu       sync.Mutex
	sessions map[int64]*Session
	now      func() time.Time
}

// NewManager initializes a manager with an injectable clock.
func NewManager(now func() time.Time) *Manager {
	if now == nil {
		now = time.Now
	}
	return &Manager{
		sessions: make(map[int64]*Session),
		now:      now,
	}
}

var DefaultManager = NewManager(nil)

func ResetDefaultManager(now func() time.Time) {
	DefaultManager = NewManager(now)
}

// TrackSetup records a menu step (category or difficulty selection) and
// the message carrying it, creating the session shell if needed.
func (m *Manager) TrackSetup(userID, chatID int64, stage Stage, messageID int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session := m.sessions[userID]
	if session == nil {
		session = &Session{
			userID:         userID,
			guessedLetters: make(map[string]struct{}),
		}
		m.sessions[userID] = session
	}
	session.chatID = chatID
	session.stage = stage
	if messageID != 0 {
		session.messageIDs = append(session.messageIDs, messageID)
	}
	session.lastActivityAt = m.now()
}

// StartGame arms a session with a word and moves it to IN_PROGRESS.
// Guessed letters reset, the attempts budget and keyboard pool are
// computed from the word, and the score starts at zero.
func (m *Manager) StartGame(userID, chatID int64, word string, category words.Category, difficulty words.Difficulty, dailyChallenge bool, messageID int) Snapshot {
	now := m.now()
	attempts := CalculateAttempts(len(word))

	m.mu.Lock()
	session := m.sessions[userID]
	if session == nil {
		session = &Session{userID: userID}
		m.sessions[userID] = session
	}
	session.chatID = chatID
	session.recordID = uuid.NewString()
	session.stage = StageInProgress
	session.word = strings.ToUpper(word)
	session.category = category
	session.difficulty = difficulty
	session.guessedLetters = make(map[string]struct{})
	session.attemptsLeft = attempts
	session.maxAttempts = attempts
	session.score = 0
	session.keyboardLetters = KeyboardLetters(word)
	session.dailyChallenge = dailyChallenge
	session.startedAt = now
	session.lastActivityAt = now
	if messageID != 0 {
		session.messageIDs = append(session.messageIDs, messageID)
	}
	snapshot := session.snapshot()
	record := db.GameRecord{
		ID:             session.recordID,
		UserID:         session.userID,
		Word:           session.word,
		Category:       string(session.category),
		Difficulty:     string(session.difficulty),
		DailyChallenge: session.dailyChallenge,
		StartedAt:      now.UTC(),
	}
	m.mu.Unlock()

	persistGameStart(record)
	return snapshot
}

// HasSession reports whether the player has any session, in setup or in
// progress.
func (m *Manager) HasSession(userID int64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.sessions[userID] != nil
}

// Abandon drops a player's session without recording anything.
func (m *Manager) Abandon(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, userID)
}

// Guess applies a letter guess. Repeated letters are rejected without
// mutation; a wrong letter costs one attempt; the score is recomputed
// after every accepted guess. Terminal sessions are recorded and
// removed before the result is returned.
func (m *Manager) Guess(userID int64, letter string) GuessResult {
	letter = strings.ToUpper(letter)

	m.mu.Lock()
	session := m.sessions[userID]
	if session == nil || session.stage != StageInProgress {
		m.mu.Unlock()
		return GuessResult{}
	}

	session.lastActivityAt = m.now()

	if _, guessed := session.guessedLetters[letter]; guessed {
		result := GuessResult{
			Handled:  true,
			Notice:   "You've already guessed this letter!",
			Snapshot: session.snapshot(),
		}
		m.mu.Unlock()
		return result
	}

	session.guessedLetters[letter] = struct{}{}
	correct := strings.Contains(session.word, letter)
	if !correct {
		session.attemptsLeft--
	}
	session.recomputeScore()

	result := GuessResult{
		Handled: true,
		Correct: correct,
	}
	m.finishAttemptLocked(session, &result.Outcome, &result.Solved, &result.Perfect, &result.GuessedCount)
	result.Snapshot = session.snapshot()
	m.mu.Unlock()
	return result
}

// Hint reveals one random unguessed word letter and always costs one
// attempt, even though the letter is correct.
func (m *Manager) Hint(userID int64) HintResult {
	m.mu.Lock()
	session := m.sessions[userID]
	if session == nil || session.stage != StageInProgress {
		m.mu.Unlock()
		return HintResult{}
	}

	session.lastActivityAt = m.now()

	var unguessed []string
	for letter := range distinctLetters(session.word) {
		if _, ok := session.guessedLetters[string(letter)]; !ok {
			unguessed = append(unguessed, string(letter))
		}
	}
	if len(unguessed) == 0 {
		result := HintResult{
			Handled:  true,
			Notice:   "No more hints available!",
			Snapshot: session.snapshot(),
		}
		m.mu.Unlock()
		return result
	}
	sort.Strings(unguessed)
	letter := unguessed[rand.Intn(len(unguessed))]

	session.guessedLetters[letter] = struct{}{}
	session.attemptsLeft--
	session.recomputeScore()

	result := HintResult{
		Handled: true,
		Letter:  letter,
	}
	m.finishAttemptLocked(session, &result.Outcome, &result.Solved, &result.Perfect, &result.GuessedCount)
	result.Snapshot = session.snapshot()
	m.mu.Unlock()
	return result
}

// StartReaper runs the idle sweep until ctx is canceled.
func (m *Manager) StartReaper(ctx context.Context, cleaner MessageCleaner) {
	ticker := time.NewTicker(ReaperInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.SweepInactive(ctx, cleaner)
		}
	}
}

// SweepInactive removes sessions idle past IdleTimeout and asks the
// cleaner to delete their outstanding messages. Message deletion runs
// outside the lock.
func (m *Manager) SweepInactive(ctx context.Context, cleaner MessageCleaner) {
	type reaped struct {
		chatID     int64
		messageIDs []int
	}

	now := m.now()
	var expired []reaped

	m.mu.Lock()
	for userID, session := range m.sessions {
		if session == nil {
			delete(m.sessions, userID)
			continue
		}
		if now.Sub(session.lastActivityAt) > IdleTimeout {
			persistGameEnd(session, false, now)
			expired = append(expired, reaped{chatID: session.chatID, messageIDs: session.messageIDs})
			delete(m.sessions, userID)
		}
	}
	m.mu.Unlock()

	for _, session := range expired {
		if cleaner == nil || len(session.messageIDs) == 0 {
			continue
		}
		if err := cleaner.DeleteMessages(ctx, session.chatID, session.messageIDs); err != nil {
			logger.Error("failed to delete reaped game messages", "chat_id", session.chatID, "error", err)
		}
	}
}

// finishAttemptLocked checks for a terminal state after a guess or hint
// and, if reached, records the game and drops the session.
func (m *Manager) finishAttemptLocked(session *Session, outcome *Outcome, solved, perfect *bool, guessedCount *int) {
	*guessedCount = len(session.guessedLetters)
	*solved = session.wordSolved()

	switch {
	case *solved:
		*outcome = OutcomeWon
		*perfect = session.attemptsLeft == session.maxAttempts
	case session.attemptsLeft <= 0:
		*outcome = OutcomeLost
	default:
		return
	}

	persistGameEnd(session, *outcome == OutcomeWon, m.now())
	delete(m.sessions, session.userID)
}

func (s *Session) wordSolved() bool {
	for letter := range distinctLetters(s.word) {
		if _, ok := s.guessedLetters[string(letter)]; !ok {
			return false
		}
	}
	return true
}

func (s *Session) recomputeScore() {
	score, err := CalculateScore(s.word, s.attemptsLeft, s.difficulty)
	if err != nil {
		logger.Error("failed to recompute score", "user_id", s.userID, "error", err)
		return
	}
	s.score = score
}

func (s *Session) snapshot() Snapshot {
	guessed := make([]string, 0, len(s.guessedLetters))
	for letter := range s.guessedLetters {
		guessed = append(guessed, letter)
	}
	sort.Strings(guessed)

	keyboard := make([]string, len(s.keyboardLetters))
	copy(keyboard, s.keyboardLetters)

	messageID := 0
	if len(s.messageIDs) > 0 {
		messageID = s.messageIDs[len(s.messageIDs)-1]
	}

	return Snapshot{
		Stage:           s.stage,
		Word:            s.word,
		GuessedLetters:  guessed,
		AttemptsLeft:    s.attemptsLeft,
		MaxAttempts:     s.maxAttempts,
		Score:           s.score,
		Category:        s.category,
		Difficulty:      s.difficulty,
		KeyboardLetters: keyboard,
		DailyChallenge:  s.dailyChallenge,
		ChatID:          s.chatID,
		MessageID:       messageID,
	}
}

func persistGameStart(record db.GameRecord) {
	if db.DB == nil || record.ID == "" {
		return
	}
	if err := db.DB.Create(&record).Error; err != nil {
		logger.Error("failed to persist game start", "user_id", record.UserID, "error", err)
	}
}

func persistGameEnd(session *Session, won bool, endedAt time.Time) {
	if db.DB == nil || session.recordID == "" {
		return
	}
	if err := db.DB.Model(&db.GameRecord{}).
		Where("id = ?", session.recordID).
		Updates(map[string]interface{}{
			"score":    session.score,
			"won":      won,
			"ended_at": endedAt.UTC(),
		}).Error; err != nil {
		logger.Error("failed to persist game end", "user_id", session.userID, "error", err)
	}
}
