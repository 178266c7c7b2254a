// pkg/db/models.go
package db

import (
	"time"

	"gorm.io/datatypes"
)

// PlayerProfile is a player's durable cross-session statistics record.
// TopScores keeps the five highest scores in descending order;
// Achievements is the set of unlocked achievement identifiers and only
// ever grows.
type PlayerProfile struct {
	ID             uint   `gorm:"primaryKey"`
	UserID         int64  `gorm:"uniqueIndex"`
	Name           string `gorm:"not null;default:''"`
	GamesPlayed    int    `gorm:"not null;default:0"`
	GamesWon       int    `gorm:"not null;default:0"`
	SolvedWords    int    `gorm:"not null;default:0"`
	GuessedLetters int    `gorm:"not null;default:0"`
	TotalScore     int    `gorm:"not null;default:0"`
	Streak         int    `gorm:"not null;default:0"`
	LastPlayed     *time.Time
	TopScores      datatypes.JSON `gorm:"not null"`
	Achievements   datatypes.JSON `gorm:"not null"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// DailyChallengeGate records a player's last daily-challenge day and the
// best score achieved that day. One row per player.
type DailyChallengeGate struct {
	ID         uint      `gorm:"primaryKey"`
	UserID     int64     `gorm:"uniqueIndex"`
	LastPlayed time.Time `gorm:"type:date;not null"`
	Score      int       `gorm:"not null;default:0"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// EmojiSettings stores per-player display overrides. Empty fields fall
// back to the defaults in pkg/ui.
type EmojiSettings struct {
	ID               uint  `gorm:"primaryKey"`
	UserID           int64 `gorm:"uniqueIndex"`
	LivesHealthy     string
	LivesLost        string
	LivesLast        string
	KeyboardCorrect  string
	KeyboardWrong    string
	DifficultyEasy   string
	DifficultyMedium string
	DifficultyHard   string
}

// GameRecord is one finished game, kept for statistics.
type GameRecord struct {
	ID             string `gorm:"primaryKey"`
	UserID         int64  `gorm:"index"`
	Word           string `gorm:"not null"`
	Category       string `gorm:"not null"`
	Difficulty     string `gorm:"not null"`
	Score          int    `gorm:"not null;default:0"`
	Won            bool   `gorm:"not null;default:false"`
	DailyChallenge bool   `gorm:"not null;default:false"`
	StartedAt      time.Time
	EndedAt        time.Time
}
