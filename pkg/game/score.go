package game

import (
	"fmt"

	"tg-hangman-bot/pkg/words"
)

const (
	// BaseAttempts is the attempts floor for the shortest words; every
	// LengthFactor letters grant one more attempt.
	BaseAttempts = 5
	LengthFactor = 2
)

var difficultyMultipliers = map[words.Difficulty]int{
	words.DifficultyEasy:   1,
	words.DifficultyMedium: 2,
	words.DifficultyHard:   3,
}

// CalculateAttempts returns the starting attempts budget for a word of
// the given length. Total for any non-negative length.
func CalculateAttempts(wordLength int) int {
	if wordLength < 0 {
		wordLength = 0
	}
	return BaseAttempts + wordLength/LengthFactor
}

// CalculateScore computes the current score for a session:
// distinct letters in the word times attempts left times the difficulty
// multiplier. Attempts at zero always yield a zero score.
func CalculateScore(word string, attemptsLeft int, difficulty words.Difficulty) (int, error) {
	multiplier, ok := difficultyMultipliers[difficulty]
	if !ok {
		return 0, fmt.Errorf("invalid difficulty %q", difficulty)
	}
	return len(distinctLetters(word)) * attemptsLeft * multiplier, nil
}

func distinctLetters(word string) map[rune]struct{} {
	letters := make(map[rune]struct{}, len(word))
	for _, r := range word {
		letters[r] = struct{}{}
	}
	return letters
}
