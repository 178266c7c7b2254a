package game

import (
	"math/rand"
	"sort"
	"strings"

	"github.com/samber/lo"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// KeyboardLetters builds the letter pool shown to the player: every
// letter of the word plus random decoys from the rest of the alphabet.
// The padding size is max(10, 2*len(word)), capped by how many decoy
// letters remain; the result is sorted and duplicate-free.
func KeyboardLetters(word string) []string {
	wordLetters := lo.Uniq(strings.Split(strings.ToUpper(word), ""))
	inWord := make(map[string]struct{}, len(wordLetters))
	for _, letter := range wordLetters {
		inWord[letter] = struct{}{}
	}

	var decoys []string
	for _, r := range alphabet {
		letter := string(r)
		if _, ok := inWord[letter]; !ok {
			decoys = append(decoys, letter)
		}
	}

	padding := 2 * len(word)
	if padding < 10 {
		padding = 10
	}
	if padding > len(decoys) {
		padding = len(decoys)
	}

	pool := make([]string, 0, len(wordLetters)+padding)
	pool = append(pool, wordLetters...)
	perm := rand.Perm(len(decoys))
	for i := 0; i < padding; i++ {
		pool = append(pool, decoys[perm[i]])
	}

	sort.Strings(pool)
	return pool
}
