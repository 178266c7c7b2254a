package profile

import (
	"encoding/json"
	"errors"
	"sort"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"tg-hangman-bot/pkg/db"
	"tg-hangman-bot/pkg/logger"
)

// topScoresKept bounds the per-player score history.
const topScoresKept = 5

// Profile is the decoded view of a player's stored statistics.
type Profile struct {
	UserID         int64
	Name           string
	GamesPlayed    int
	GamesWon       int
	SolvedWords    int
	GuessedLetters int
	TotalScore     int
	Streak         int
	LastPlayed     *time.Time
	TopScores      []int
	Achievements   []string
}

// WinRate is the percentage of played games that were won.
func (p Profile) WinRate() float64 {
	if p.GamesPlayed == 0 {
		return 0
	}
	return float64(p.GamesWon) / float64(p.GamesPlayed) * 100
}

// AverageScore is total score over games played.
func (p Profile) AverageScore() float64 {
	if p.GamesPlayed == 0 {
		return 0
	}
	return float64(p.TotalScore) / float64(p.GamesPlayed)
}

// HasAchievement reports whether the identifier is already unlocked.
func (p Profile) HasAchievement(id string) bool {
	for _, unlocked := range p.Achievements {
		if unlocked == id {
			return true
		}
	}
	return false
}

// GameEnd carries the terminal-session context needed to update a
// profile and evaluate achievements.
type GameEnd struct {
	Won            bool
	Solved         bool
	Perfect        bool
	Score          int
	GuessedLetters int
}

// Service owns all profile reads and writes. Every mutation is written
// through to the database immediately. The clock is injectable so the
// streak date rule can be tested with fixed days.
type Service struct {
	now func() time.Time
}

func NewService(now func() time.Time) *Service {
	if now == nil {
		now = time.Now
	}
	return &Service{now: now}
}

// Get loads a player's profile. A missing row decodes to a zero-value
// profile so callers never need to special-case new players.
func (s *Service) Get(userID int64) (Profile, error) {
	var record db.PlayerProfile
	err := db.DB.Where("user_id = ?", userID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Profile{UserID: userID}, nil
	}
	if err != nil {
		return Profile{}, err
	}
	return decodeProfile(record), nil
}

// All loads every stored profile in primary-key order.
func (s *Service) All() ([]Profile, error) {
	var records []db.PlayerProfile
	if err := db.DB.Order("id").Find(&records).Error; err != nil {
		return nil, err
	}
	profiles := make([]Profile, 0, len(records))
	for _, record := range records {
		profiles = append(profiles, decodeProfile(record))
	}
	return profiles, nil
}

// UpdateName stores the player's current display name, creating the
// profile row if it does not exist yet.
func (s *Service) UpdateName(userID int64, name string) error {
	record, err := s.loadOrCreate(userID)
	if err != nil {
		return err
	}
	if record.Name == name {
		return nil
	}
	record.Name = name
	return db.DB.Save(&record).Error
}

// RecordGameEnd applies a terminal session to the profile: counters,
// top-5 score list, the streak date rule, and achievement evaluation.
// The updated row is saved before newly earned achievements are
// reported, so an achievement can never be reported without its
// supporting state being durable.
func (s *Service) RecordGameEnd(userID int64, name string, end GameEnd) (Profile, []Achievement, error) {
	record, err := s.loadOrCreate(userID)
	if err != nil {
		return Profile{}, nil, err
	}
	if name != "" {
		record.Name = name
	}

	profile := decodeProfile(record)
	profile.GamesPlayed++
	if end.Won {
		profile.GamesWon++
	}
	if end.Solved {
		profile.SolvedWords++
	}
	profile.TotalScore += end.Score
	profile.GuessedLetters += end.GuessedLetters

	profile.TopScores = append(profile.TopScores, end.Score)
	sort.Sort(sort.Reverse(sort.IntSlice(profile.TopScores)))
	if len(profile.TopScores) > topScoresKept {
		profile.TopScores = profile.TopScores[:topScoresKept]
	}

	today := dateOf(s.now())
	switch {
	case profile.LastPlayed == nil:
		profile.Streak = 1
	case sameDate(*profile.LastPlayed, today.AddDate(0, 0, -1)):
		profile.Streak++
	case !sameDate(*profile.LastPlayed, today):
		profile.Streak = 1
	}
	profile.LastPlayed = &today

	earned := evaluate(profile, end)
	for _, achievement := range earned {
		profile.Achievements = append(profile.Achievements, achievement.ID)
	}

	encodeProfile(&record, profile)
	if err := db.DB.Save(&record).Error; err != nil {
		return Profile{}, nil, err
	}
	return profile, earned, nil
}

func (s *Service) loadOrCreate(userID int64) (db.PlayerProfile, error) {
	var record db.PlayerProfile
	err := db.DB.Where("user_id = ?", userID).First(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		record = db.PlayerProfile{
			UserID:       userID,
			TopScores:    datatypes.JSON("[]"),
			Achievements: datatypes.JSON("[]"),
		}
		if err := db.DB.Create(&record).Error; err != nil {
			return db.PlayerProfile{}, err
		}
		return record, nil
	}
	return record, err
}

// decodeProfile tolerates missing or corrupt JSON columns: they decode
// to empty slices instead of failing the whole load.
func decodeProfile(record db.PlayerProfile) Profile {
	profile := Profile{
		UserID:         record.UserID,
		Name:           record.Name,
		GamesPlayed:    record.GamesPlayed,
		GamesWon:       record.GamesWon,
		SolvedWords:    record.SolvedWords,
		GuessedLetters: record.GuessedLetters,
		TotalScore:     record.TotalScore,
		Streak:         record.Streak,
		LastPlayed:     record.LastPlayed,
	}
	if len(record.TopScores) > 0 {
		if err := json.Unmarshal(record.TopScores, &profile.TopScores); err != nil {
			logger.Debug("discarding corrupt top scores column", "user_id", record.UserID, "error", err)
			profile.TopScores = nil
		}
	}
	if len(record.Achievements) > 0 {
		if err := json.Unmarshal(record.Achievements, &profile.Achievements); err != nil {
			logger.Debug("discarding corrupt achievements column", "user_id", record.UserID, "error", err)
			profile.Achievements = nil
		}
	}
	return profile
}

func encodeProfile(record *db.PlayerProfile, profile Profile) {
	record.Name = profile.Name
	record.GamesPlayed = profile.GamesPlayed
	record.GamesWon = profile.GamesWon
	record.SolvedWords = profile.SolvedWords
	record.GuessedLetters = profile.GuessedLetters
	record.TotalScore = profile.TotalScore
	record.Streak = profile.Streak
	record.LastPlayed = profile.LastPlayed

	scores := profile.TopScores
	if scores == nil {
		scores = []int{}
	}
	achievements := profile.Achievements
	if achievements == nil {
		achievements = []string{}
	}
	if encoded, err := json.Marshal(scores); err == nil {
		record.TopScores = encoded
	}
	if encoded, err := json.Marshal(achievements); err == nil {
		record.Achievements = encoded
	}
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
