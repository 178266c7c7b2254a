package profile

// Achievement pairs a stable identifier with its display title. The
// identifier is what gets persisted; the title is what players see.
type Achievement struct {
	ID    string
	Title string
}

const (
	AchievementFirstWin    = "first_win"
	AchievementStreak7     = "streak_7"
	AchievementGames50     = "games_50"
	AchievementWords20     = "words_20"
	AchievementPerfectGame = "perfect_game"
)

type achievementRule struct {
	Achievement
	earned func(Profile, GameEnd) bool
}

// Achievement rules are evaluated in this order after every profile
// update. Unlocks are monotonic: once an identifier is stored it is
// never re-earned or revoked.
var achievementRules = []achievementRule{
	{
		Achievement: Achievement{ID: AchievementFirstWin, Title: "🏆 First Win"},
		earned:      func(p Profile, _ GameEnd) bool { return p.GamesWon >= 1 },
	},
	{
		Achievement: Achievement{ID: AchievementStreak7, Title: "🔥 7-Day Streak"},
		earned:      func(p Profile, _ GameEnd) bool { return p.Streak >= 7 },
	},
	{
		Achievement: Achievement{ID: AchievementGames50, Title: "🎮 50 Games Played"},
		earned:      func(p Profile, _ GameEnd) bool { return p.GamesPlayed >= 50 },
	},
	{
		Achievement: Achievement{ID: AchievementWords20, Title: "📚 20 Words Solved"},
		earned:      func(p Profile, _ GameEnd) bool { return p.SolvedWords >= 20 },
	},
	{
		Achievement: Achievement{ID: AchievementPerfectGame, Title: "💯 Perfect Game"},
		earned:      func(_ Profile, end GameEnd) bool { return end.Won && end.Perfect },
	},
}

// AllAchievements lists the full catalog in display order.
func AllAchievements() []Achievement {
	catalog := make([]Achievement, 0, len(achievementRules))
	for _, rule := range achievementRules {
		catalog = append(catalog, rule.Achievement)
	}
	return catalog
}

// LookupAchievement resolves a stored identifier to its catalog entry.
func LookupAchievement(id string) (Achievement, bool) {
	for _, rule := range achievementRules {
		if rule.ID == id {
			return rule.Achievement, true
		}
	}
	return Achievement{}, false
}

// evaluate returns the achievements whose predicates newly hold for the
// updated profile and finished game.
func evaluate(profile Profile, end GameEnd) []Achievement {
	var earned []Achievement
	for _, rule := range achievementRules {
		if profile.HasAchievement(rule.ID) {
			continue
		}
		if rule.earned(profile, end) {
			earned = append(earned, rule.Achievement)
		}
	}
	return earned
}
