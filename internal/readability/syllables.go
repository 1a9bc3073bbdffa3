package readability

import (
	"strings"
	"unicode"
)

// #region syllables

// countSyllables estimates syllables in a single word by counting
// vowel groups, with a silent trailing-e adjustment. Every word with
// a letter counts as at least one syllable.
func countSyllables(word string) int {
	w := strings.ToLower(word)

	groups := 0
	prevVowel := false
	letters := 0
	for _, r := range w {
		if !unicode.IsLetter(r) {
			prevVowel = false
			continue
		}
		letters++
		v := isVowel(r)
		if v && !prevVowel {
			groups++
		}
		prevVowel = v
	}
	if letters == 0 {
		return 0
	}

	// Silent trailing e: "there", "make" — but not "the" or "be",
	// where the final e is the only vowel group.
	if groups > 1 && strings.HasSuffix(w, "e") && !strings.HasSuffix(w, "le") {
		groups--
	}

	if groups < 1 {
		groups = 1
	}
	return groups
}

// isVowel treats y as a vowel, which is the better default for
// syllable counting ("try", "rhythm").
func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// #endregion syllables
