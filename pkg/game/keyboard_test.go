package game

import (
	"sort"
	"strings"
	"testing"
)

func TestKeyboardLettersContainWord(t *testing.T) {
	word := "ELEPHANT"
	pool := KeyboardLetters(word)

	inPool := make(map[string]struct{}, len(pool))
	for _, letter := range pool {
		inPool[letter] = struct{}{}
	}
	for _, r := range word {
		if _, ok := inPool[string(r)]; !ok {
			t.Errorf("word letter %q missing from keyboard pool %v", string(r), pool)
		}
	}
}

func TestKeyboardLettersSortedAndUnique(t *testing.T) {
	pool := KeyboardLetters("SQUIRREL")
	if !sort.StringsAreSorted(pool) {
		t.Fatalf("expected sorted pool, got %v", pool)
	}
	seen := make(map[string]struct{})
	for _, letter := range pool {
		if _, dup := seen[letter]; dup {
			t.Fatalf("duplicate letter %q in pool %v", letter, pool)
		}
		seen[letter] = struct{}{}
	}
}

func TestKeyboardLettersPaddingSize(t *testing.T) {
	// Short word: padding floor of 10 decoys applies.
	word := "CAT"
	pool := KeyboardLetters(word)
	if len(pool) != 3+10 {
		t.Errorf("expected %d letters for %q, got %d (%v)", 13, word, len(pool), pool)
	}

	// Long word: padding 2*len capped by the remaining alphabet, so the
	// whole alphabet ends up in the pool.
	long := "CAULIFLOWER" // 10 distinct letters, 16 decoys remain, 2*11 > 16
	pool = KeyboardLetters(long)
	if len(pool) != 26 {
		t.Errorf("expected full alphabet for %q, got %d letters", long, len(pool))
	}
}

func TestKeyboardLettersAreUppercase(t *testing.T) {
	for _, letter := range KeyboardLetters("zebra") {
		if letter != strings.ToUpper(letter) {
			t.Errorf("expected uppercase pool, found %q", letter)
		}
	}
}
