package poem

import "testing"

func TestSyllables(t *testing.T) {
	cases := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"flower", 2},
		{"monument", 3},
		{"stone", 1},   // silent e
		{"table", 2},   // consonant-le adds one back
		{"rhythm", 1},  // y as vowel
		{"sky", 1},
		{"eternity", 4},
		{"e", 1},       // floor of one
		{"", 0},
		{"...", 0},
		{"don't", 1},   // punctuation stripped
		{"ICE", 1},     // case-insensitive
	}
	for _, c := range cases {
		if got := Syllables(c.word); got != c.want {
			t.Errorf("Syllables(%q) = %d, want %d", c.word, got, c.want)
		}
	}
}

func TestSentenceSyllables(t *testing.T) {
	if got := SentenceSyllables("pattern logic emerges from chaos"); got != 9 {
		t.Errorf("SentenceSyllables = %d, want 9", got)
	}
	if got := SentenceSyllables(""); got != 0 {
		t.Errorf("SentenceSyllables(empty) = %d, want 0", got)
	}
	if got := SentenceSyllables("   "); got != 0 {
		t.Errorf("SentenceSyllables(blank) = %d, want 0", got)
	}
}
