package ui

import (
	"errors"
	"strconv"
	"strings"
)

const (
	GameCallbackPrefix   = "h:"
	StatsCallbackPrefix  = "st:"
	BoardCallbackPrefix  = "lb:"
	ConfigCallbackPrefix = "c:"

	MaxCallbackDataLen = 64
)

// GameOp is a gameplay button press. Every game callback embeds the
// owner's user id so another chat member cannot drive someone else's
// game.
type GameOp string

const (
	OpDaily      GameOp = "daily"
	OpCategory   GameOp = "cat"
	OpDifficulty GameOp = "dif"
	OpGuess      GameOp = "guess"
	OpUsed       GameOp = "used"
	OpHint       GameOp = "hint"
	OpPlayAgain  GameOp = "again"
)

type GameAction struct {
	Op         GameOp
	Category   string
	Difficulty string
	Letter     string
	OwnerID    int64
}

// StatsSection selects which stats panel to show.
type StatsSection string

const (
	SectionGeneral      StatsSection = "general"
	SectionPerformance  StatsSection = "performance"
	SectionAchievements StatsSection = "achievements"
)

type StatsAction struct {
	Section StatsSection
	OwnerID int64
}

// ConfigOp is a configuration menu action.
type ConfigOp string

const (
	OpConfigEmoji        ConfigOp = "emoji"
	OpConfigReset        ConfigOp = "reset"
	OpConfigConfirmReset ConfigOp = "confirm"
	OpConfigClose        ConfigOp = "close"
	OpConfigBack         ConfigOp = "back"
	OpConfigGroup        ConfigOp = "grp"
	OpConfigSet          ConfigOp = "set"
)

type ConfigAction struct {
	Op      ConfigOp
	Group   EmojiGroup
	Index   int
	Emoji   string
	OwnerID int64
}

var (
	errInvalidPrefix       = errors.New("invalid callback prefix")
	errInvalidAction       = errors.New("invalid callback action")
	errInvalidLetter       = errors.New("invalid callback letter")
	errInvalidOwner        = errors.New("invalid callback owner")
	errInvalidValue        = errors.New("invalid callback value")
	errCallbackDataTooLong = errors.New("callback data too long")
)

func BuildDailyCallback(ownerID int64) (string, error) {
	return buildGameCallback(OpDaily, ownerID)
}

func BuildCategoryCallback(category string, ownerID int64) (string, error) {
	if category == "" || strings.Contains(category, ":") {
		return "", errInvalidValue
	}
	data := GameCallbackPrefix + string(OpCategory) + ":" + category + ":" + formatOwner(ownerID)
	return validateCallbackData(data)
}

func BuildDifficultyCallback(category, difficulty string, ownerID int64) (string, error) {
	if category == "" || difficulty == "" || strings.Contains(category, ":") || strings.Contains(difficulty, ":") {
		return "", errInvalidValue
	}
	data := GameCallbackPrefix + string(OpDifficulty) + ":" + category + ":" + difficulty + ":" + formatOwner(ownerID)
	return validateCallbackData(data)
}

func BuildGuessCallback(letter string, ownerID int64) (string, error) {
	if !isUppercaseLetter(letter) {
		return "", errInvalidLetter
	}
	data := GameCallbackPrefix + string(OpGuess) + ":" + letter + ":" + formatOwner(ownerID)
	return validateCallbackData(data)
}

func BuildUsedCallback(ownerID int64) (string, error) {
	return buildGameCallback(OpUsed, ownerID)
}

func BuildHintCallback(ownerID int64) (string, error) {
	return buildGameCallback(OpHint, ownerID)
}

func BuildPlayAgainCallback(ownerID int64) (string, error) {
	return buildGameCallback(OpPlayAgain, ownerID)
}

func ParseGameCallback(data string) (GameAction, error) {
	parts, err := splitCallback(data, GameCallbackPrefix)
	if err != nil {
		return GameAction{}, err
	}

	switch GameOp(parts[0]) {
	case OpDaily, OpUsed, OpHint, OpPlayAgain:
		if len(parts) != 2 {
			return GameAction{}, errInvalidAction
		}
		owner, err := parseOwner(parts[1])
		if err != nil {
			return GameAction{}, err
		}
		return GameAction{Op: GameOp(parts[0]), OwnerID: owner}, nil
	case OpCategory:
		if len(parts) != 3 || parts[1] == "" {
			return GameAction{}, errInvalidAction
		}
		owner, err := parseOwner(parts[2])
		if err != nil {
			return GameAction{}, err
		}
		return GameAction{Op: OpCategory, Category: parts[1], OwnerID: owner}, nil
	case OpDifficulty:
		if len(parts) != 4 || parts[1] == "" || parts[2] == "" {
			return GameAction{}, errInvalidAction
		}
		owner, err := parseOwner(parts[3])
		if err != nil {
			return GameAction{}, err
		}
		return GameAction{Op: OpDifficulty, Category: parts[1], Difficulty: parts[2], OwnerID: owner}, nil
	case OpGuess:
		if len(parts) != 3 {
			return GameAction{}, errInvalidAction
		}
		if !isUppercaseLetter(parts[1]) {
			return GameAction{}, errInvalidLetter
		}
		owner, err := parseOwner(parts[2])
		if err != nil {
			return GameAction{}, err
		}
		return GameAction{Op: OpGuess, Letter: parts[1], OwnerID: owner}, nil
	default:
		return GameAction{}, errInvalidAction
	}
}

func BuildStatsCallback(section StatsSection, ownerID int64) (string, error) {
	switch section {
	case SectionGeneral, SectionPerformance, SectionAchievements:
	default:
		return "", errInvalidAction
	}
	data := StatsCallbackPrefix + string(section) + ":" + formatOwner(ownerID)
	return validateCallbackData(data)
}

func ParseStatsCallback(data string) (StatsAction, error) {
	parts, err := splitCallback(data, StatsCallbackPrefix)
	if err != nil {
		return StatsAction{}, err
	}
	if len(parts) != 2 {
		return StatsAction{}, errInvalidAction
	}
	switch StatsSection(parts[0]) {
	case SectionGeneral, SectionPerformance, SectionAchievements:
	default:
		return StatsAction{}, errInvalidAction
	}
	owner, err := parseOwner(parts[1])
	if err != nil {
		return StatsAction{}, err
	}
	return StatsAction{Section: StatsSection(parts[0]), OwnerID: owner}, nil
}

// Leaderboards are public, so board callbacks carry no owner id.
func BuildBoardCallback(kind string) (string, error) {
	if kind == "" || strings.Contains(kind, ":") {
		return "", errInvalidValue
	}
	return validateCallbackData(BoardCallbackPrefix + kind)
}

func ParseBoardCallback(data string) (string, error) {
	parts, err := splitCallback(data, BoardCallbackPrefix)
	if err != nil {
		return "", err
	}
	if len(parts) != 1 || parts[0] == "" {
		return "", errInvalidAction
	}
	return parts[0], nil
}

func BuildConfigCallback(op ConfigOp, ownerID int64) (string, error) {
	switch op {
	case OpConfigEmoji, OpConfigReset, OpConfigConfirmReset, OpConfigClose, OpConfigBack:
	default:
		return "", errInvalidAction
	}
	data := ConfigCallbackPrefix + string(op) + ":" + formatOwner(ownerID)
	return validateCallbackData(data)
}

func BuildConfigGroupCallback(group EmojiGroup, ownerID int64) (string, error) {
	if !validEmojiGroup(group) {
		return "", errInvalidValue
	}
	data := ConfigCallbackPrefix + string(OpConfigGroup) + ":" + string(group) + ":" + formatOwner(ownerID)
	return validateCallbackData(data)
}

func BuildConfigSetCallback(group EmojiGroup, index int, emoji string, ownerID int64) (string, error) {
	if !validEmojiGroup(group) || index < 0 || index > 2 {
		return "", errInvalidValue
	}
	if emoji == "" || strings.Contains(emoji, ":") {
		return "", errInvalidValue
	}
	data := ConfigCallbackPrefix + string(OpConfigSet) + ":" + string(group) + ":" + strconv.Itoa(index) + ":" + emoji + ":" + formatOwner(ownerID)
	return validateCallbackData(data)
}

func ParseConfigCallback(data string) (ConfigAction, error) {
	parts, err := splitCallback(data, ConfigCallbackPrefix)
	if err != nil {
		return ConfigAction{}, err
	}

	switch ConfigOp(parts[0]) {
	case OpConfigEmoji, OpConfigReset, OpConfigConfirmReset, OpConfigClose, OpConfigBack:
		if len(parts) != 2 {
			return ConfigAction{}, errInvalidAction
		}
		owner, err := parseOwner(parts[1])
		if err != nil {
			return ConfigAction{}, err
		}
		return ConfigAction{Op: ConfigOp(parts[0]), OwnerID: owner}, nil
	case OpConfigGroup:
		if len(parts) != 3 || !validEmojiGroup(EmojiGroup(parts[1])) {
			return ConfigAction{}, errInvalidAction
		}
		owner, err := parseOwner(parts[2])
		if err != nil {
			return ConfigAction{}, err
		}
		return ConfigAction{Op: OpConfigGroup, Group: EmojiGroup(parts[1]), OwnerID: owner}, nil
	case OpConfigSet:
		if len(parts) != 5 || !validEmojiGroup(EmojiGroup(parts[1])) {
			return ConfigAction{}, errInvalidAction
		}
		if !isASCIIUnsignedInt(parts[2]) {
			return ConfigAction{}, errInvalidValue
		}
		index, err := strconv.Atoi(parts[2])
		if err != nil || index < 0 || index > 2 {
			return ConfigAction{}, errInvalidValue
		}
		if parts[3] == "" {
			return ConfigAction{}, errInvalidValue
		}
		owner, err := parseOwner(parts[4])
		if err != nil {
			return ConfigAction{}, err
		}
		return ConfigAction{Op: OpConfigSet, Group: EmojiGroup(parts[1]), Index: index, Emoji: parts[3], OwnerID: owner}, nil
	default:
		return ConfigAction{}, errInvalidAction
	}
}

func buildGameCallback(op GameOp, ownerID int64) (string, error) {
	data := GameCallbackPrefix + string(op) + ":" + formatOwner(ownerID)
	return validateCallbackData(data)
}

func splitCallback(data, prefix string) ([]string, error) {
	if data == "" {
		return nil, errInvalidAction
	}
	if len(data) > MaxCallbackDataLen {
		return nil, errCallbackDataTooLong
	}
	if !strings.HasPrefix(data, prefix) {
		return nil, errInvalidPrefix
	}
	return strings.Split(data[len(prefix):], ":"), nil
}

func validateCallbackData(data string) (string, error) {
	if data == "" {
		return "", errInvalidAction
	}
	if len(data) > MaxCallbackDataLen {
		return "", errCallbackDataTooLong
	}
	return data, nil
}

func formatOwner(ownerID int64) string {
	return strconv.FormatInt(ownerID, 10)
}

func parseOwner(value string) (int64, error) {
	if !isASCIIUnsignedInt(value) {
		return 0, errInvalidOwner
	}
	owner, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, errInvalidOwner
	}
	return owner, nil
}

func isUppercaseLetter(value string) bool {
	return len(value) == 1 && value[0] >= 'A' && value[0] <= 'Z'
}

func isASCIIUnsignedInt(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < '0' || value[i] > '9' {
			return false
		}
	}
	return true
}
