package poem

import (
	"strings"
	"unicode"
)

// Syllables estimates the syllable count of a word by scanning vowel
// groups. A trailing silent e is discounted; a consonant-le ending adds
// one back. Every non-empty word counts at least one syllable.
func Syllables(word string) int {
	var b strings.Builder
	for _, r := range strings.ToLower(word) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	w := b.String()
	if w == "" {
		return 0
	}

	count := 0
	prevVowel := false
	for _, r := range w {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}

	if strings.HasSuffix(w, "e") {
		count--
	}
	if strings.HasSuffix(w, "le") && len(w) > 2 && !isVowel(rune(w[len(w)-3])) {
		count++
	}
	if count <= 0 {
		count = 1
	}
	return count
}

// SentenceSyllables sums Syllables over whitespace-separated words.
func SentenceSyllables(sentence string) int {
	total := 0
	for _, word := range strings.Fields(sentence) {
		total += Syllables(word)
	}
	return total
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
