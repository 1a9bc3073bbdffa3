package readability

import "testing"

func TestFleschEmptyTextIsZero(t *testing.T) {
	if got := FleschReadingEase(""); got != 0 {
		t.Fatalf("expected 0 for empty text, got %.2f", got)
	}
	if got := FleschReadingEase("   \n\t  "); got != 0 {
		t.Fatalf("expected 0 for whitespace text, got %.2f", got)
	}
}

func TestFleschSimpleTextScoresHigh(t *testing.T) {
	got := FleschReadingEase("The cat sat on the mat.")
	if got < 90 {
		t.Fatalf("expected high ease for short monosyllabic text, got %.2f", got)
	}
}

func TestFleschSimpleBeatsComplex(t *testing.T) {
	simple := FleschReadingEase("The dog ran. The dog sat. The dog ate.")
	dense := FleschReadingEase(
		"Notwithstanding considerable organizational heterogeneity, " +
			"institutional prioritization methodologies demonstrate " +
			"extraordinarily unsatisfactory interdepartmental communication characteristics.")
	if simple <= dense {
		t.Fatalf("expected simple (%.2f) > dense (%.2f)", simple, dense)
	}
}

func TestFleschPunctuationOnlyDoesNotPanic(t *testing.T) {
	if got := FleschReadingEase("... !!! ???"); got != 0 {
		t.Fatalf("expected 0 for letterless text, got %.2f", got)
	}
}

func TestCountSyllables(t *testing.T) {
	cases := []struct {
		word string
		want int
	}{
		{"cat", 1},
		{"the", 1},
		{"try", 1},
		{"rhythm", 1},
		{"make", 1},
		{"hello", 2},
		{"apple", 2},
		{"queue", 1},
		{"beautiful", 3},
		{"readability", 5},
		{"a", 1},
		{"", 0},
		{"...", 0},
	}
	for _, c := range cases {
		if got := countSyllables(c.word); got != c.want {
			t.Fatalf("%q: expected %d syllables, got %d", c.word, c.want, got)
		}
	}
}

func TestIsWord(t *testing.T) {
	if isWord("...") {
		t.Fatal("punctuation token should not be a word")
	}
	if !isWord("don't") {
		t.Fatal("token with letters should be a word")
	}
	if isWord("42") {
		t.Fatal("pure number token should not be a word")
	}
}
