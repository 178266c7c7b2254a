package ui

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/go-telegram/bot/models"

	"tg-hangman-bot/pkg/leaderboard"
	"tg-hangman-bot/pkg/profile"
)

// StatsView renders one section of the /stats panel with the section
// buttons underneath, the active section marked.
func StatsView(section StatsSection, p profile.Profile) (string, *models.InlineKeyboardMarkup, error) {
	var text string
	switch section {
	case SectionGeneral:
		text = fmt.Sprintf("**👤 Name:** %s\n\n**🆔 User ID:** `%d`\n", p.Name, p.UserID)
	case SectionPerformance:
		text = fmt.Sprintf(
			"**👤 Name:** %s\n\n"+
				"**🎮 Games Played:** %d\n"+
				"**🏆 Games Won:** %d\n"+
				"**📊 Win Rate:** %.2f%%\n"+
				"**⭐ Total Score:** %d\n"+
				"**🔢 Average Score:** %.2f\n"+
				"**🔠 Correct Guessed Letters:** %d\n"+
				"**📝 Solved Words:** %d\n",
			p.Name, p.GamesPlayed, p.GamesWon, p.WinRate(), p.TotalScore, p.AverageScore(), p.GuessedLetters, p.SolvedWords,
		)
	case SectionAchievements:
		text = achievementsSection(p)
	default:
		return "", nil, errInvalidAction
	}

	markup, err := statsKeyboard(section, p.UserID)
	if err != nil {
		return "", nil, err
	}
	return text, markup, nil
}

func achievementsSection(p profile.Profile) string {
	unlocked := make([]string, len(p.Achievements))
	copy(unlocked, p.Achievements)
	sort.Strings(unlocked)

	var text string
	if len(unlocked) > 0 {
		text = "**🏅 Your Achievements:**\n\n"
		for _, id := range unlocked {
			if achievement, ok := profile.LookupAchievement(id); ok {
				text += achievement.Title + "\n"
			} else {
				text += id + "\n"
			}
		}
	} else {
		text = "You haven't earned any achievements yet. Keep playing to unlock them!"
	}

	var locked []profile.Achievement
	for _, achievement := range profile.AllAchievements() {
		if !p.HasAchievement(achievement.ID) {
			locked = append(locked, achievement)
		}
	}
	if len(locked) > 0 {
		sort.Slice(locked, func(i, j int) bool { return locked[i].ID < locked[j].ID })
		text += "\n**🔒 Locked Achievements:**\n\n"
		for _, achievement := range locked {
			text += achievement.Title + " (Locked)\n"
		}
	}
	return text
}

func statsKeyboard(active StatsSection, ownerID int64) (*models.InlineKeyboardMarkup, error) {
	sections := []struct {
		section StatsSection
		label   string
	}{
		{SectionGeneral, "🆔 General Info"},
		{SectionPerformance, "📈 Game Performance"},
		{SectionAchievements, "🏅 Achievements"},
	}

	var rows [][]models.InlineKeyboardButton
	for _, entry := range sections {
		data, err := BuildStatsCallback(entry.section, ownerID)
		if err != nil {
			return nil, err
		}
		label := entry.label
		if entry.section == active {
			label = "○ " + label + " ○"
		}
		rows = append(rows, []models.InlineKeyboardButton{{Text: label, CallbackData: data}})
	}
	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}, nil
}

var leaderboardTips = []string{
	"💡 Tip: Keep playing to improve your rank!",
	"🏅 You're on fire! Keep it up to climb even higher!",
	"🚀 Great job! Push further to reach the top!",
	"⭐ Awesome effort! Continue to shine and rise!",
	"📈 You're doing great! Keep playing to boost your rank!",
	"🌟 Fantastic work! Keep going to see your name at the top!",
	"🏆 Excellent performance! Stay persistent and you'll get to the top!",
	"🎯 Impressive score! Keep aiming higher!",
	"👏 Well done! Keep playing to dominate the leaderboard!",
	"🎉 Great progress! Keep the momentum to improve your ranking!",
}

func rankLabel(rank int) string {
	switch rank {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return fmt.Sprintf("%d.", rank)
	}
}

func extraInfo(kind leaderboard.Kind, p profile.Profile) string {
	switch kind {
	case leaderboard.KindDaily:
		return fmt.Sprintf("📊 Win Rate: %.1f%% | 🔥 Streak: %d", p.WinRate(), p.Streak)
	case leaderboard.KindWins:
		return fmt.Sprintf("🎮 Games Played: %d | 📊 Win Rate: %.1f%%", p.GamesPlayed, p.WinRate())
	default:
		return fmt.Sprintf("🚀 Total Score: %d | 📊 Win Rate: %.1f%%", p.TotalScore, p.WinRate())
	}
}

// LeaderboardView renders a ranking tab with medals for the top three,
// extra stat lines under them, and a rotating tip footer.
func LeaderboardView(kind leaderboard.Kind, entries []leaderboard.Entry) (string, *models.InlineKeyboardMarkup, error) {
	var title, unit string
	switch kind {
	case leaderboard.KindDaily:
		title, unit = "📅 **Daily Challenge Leaderboard**", "points"
	case leaderboard.KindWins:
		title, unit = "🏆 **Most Wins Leaderboard**", "wins"
	case leaderboard.KindScores:
		title, unit = "🔥 **Highest Scores Leaderboard**", "points"
	default:
		return "", nil, errInvalidAction
	}

	var b strings.Builder
	b.WriteString(title + "\n\n")
	for _, entry := range entries {
		fmt.Fprintf(&b, "%s **%s**: %d %s\n", rankLabel(entry.Rank), entry.Name, entry.Value, unit)
		if entry.Rank <= 3 {
			fmt.Fprintf(&b, "  %s\n", extraInfo(kind, entry.Profile))
		}
		b.WriteString("\n")
	}
	if len(entries) == 0 {
		b.WriteString("No data available yet. Start playing to climb the leaderboard!\n")
	}
	b.WriteString("\n" + leaderboardTips[rand.Intn(len(leaderboardTips))])

	markup, err := leaderboardKeyboard(kind)
	if err != nil {
		return "", nil, err
	}
	return b.String(), markup, nil
}

func leaderboardKeyboard(active leaderboard.Kind) (*models.InlineKeyboardMarkup, error) {
	tabs := []struct {
		kind  leaderboard.Kind
		label string
	}{
		{leaderboard.KindWins, "🥇 Most Wins"},
		{leaderboard.KindScores, "🔥 Highest Scores"},
		{leaderboard.KindDaily, "📅 Daily Challenge"},
	}

	var rows [][]models.InlineKeyboardButton
	for _, tab := range tabs {
		data, err := BuildBoardCallback(string(tab.kind))
		if err != nil {
			return nil, err
		}
		label := tab.label
		if tab.kind == active {
			label = "○ " + label + " ○"
		}
		rows = append(rows, []models.InlineKeyboardButton{{Text: label, CallbackData: data}})
	}
	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}, nil
}
