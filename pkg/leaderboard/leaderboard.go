package leaderboard

import (
	"fmt"
	"sort"
	"time"

	"github.com/samber/lo"

	"tg-hangman-bot/pkg/db"
	"tg-hangman-bot/pkg/profile"
)

// Size is how many entries each board keeps.
const Size = 10

// Kind selects the ranking key.
type Kind string

const (
	KindWins   Kind = "wins"
	KindScores Kind = "scores"
	KindDaily  Kind = "daily"
)

// ParseKind validates a ranking key coming from callback data.
func ParseKind(raw string) (Kind, error) {
	switch Kind(raw) {
	case KindWins, KindScores, KindDaily:
		return Kind(raw), nil
	}
	return "", fmt.Errorf("unknown leaderboard kind %q", raw)
}

// Entry is one ranked player. Value is the ranking key's number: wins,
// best single score, or today's daily-challenge score. Profile carries
// the full stats for the extra info lines under the top three.
type Entry struct {
	Rank    int
	UserID  int64
	Name    string
	Value   int
	Profile profile.Profile
}

// Build derives the top-10 ranking for the requested kind. Sorting is
// stable over the profile store's primary-key order, so rebuilding with
// unchanged inputs yields an identical board, ties included.
func Build(service *profile.Service, kind Kind, today time.Time) ([]Entry, error) {
	profiles, err := service.All()
	if err != nil {
		return nil, err
	}

	var entries []Entry
	switch kind {
	case KindWins:
		entries = lo.Map(profiles, func(p profile.Profile, _ int) Entry {
			return Entry{UserID: p.UserID, Name: p.Name, Value: p.GamesWon, Profile: p}
		})
	case KindScores:
		entries = lo.Map(profiles, func(p profile.Profile, _ int) Entry {
			return Entry{UserID: p.UserID, Name: p.Name, Value: bestScore(p), Profile: p}
		})
	case KindDaily:
		entries, err = dailyEntries(profiles, today)
		if err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unknown leaderboard kind %q", kind)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Value > entries[j].Value
	})
	if len(entries) > Size {
		entries = entries[:Size]
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}

// dailyEntries ranks the players whose daily-challenge gate row is from
// today. Gate rows from earlier days are yesterday's board and are
// skipped.
func dailyEntries(profiles []profile.Profile, today time.Time) ([]Entry, error) {
	var gates []db.DailyChallengeGate
	if err := db.DB.Order("id").Find(&gates).Error; err != nil {
		return nil, err
	}

	byUser := make(map[int64]profile.Profile, len(profiles))
	for _, p := range profiles {
		byUser[p.UserID] = p
	}

	var entries []Entry
	for _, gate := range gates {
		if !sameDate(gate.LastPlayed, today) {
			continue
		}
		p := byUser[gate.UserID]
		name := p.Name
		if name == "" {
			name = "Unknown Player"
		}
		entries = append(entries, Entry{UserID: gate.UserID, Name: name, Value: gate.Score, Profile: p})
	}
	return entries, nil
}

func bestScore(p profile.Profile) int {
	best := 0
	for _, score := range p.TopScores {
		if score > best {
			best = score
		}
	}
	return best
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
