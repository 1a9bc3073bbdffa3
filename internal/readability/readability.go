package readability

import (
	"strings"
	"unicode"

	"github.com/jdkato/prose/v2"
)

// #region flesch

// FleschReadingEase computes the Flesch Reading Ease score for a text.
// Higher scores mean easier text, nominally 0-100, but the formula is
// unbounded on both sides; callers clamp as needed. Blank text scores 0.
func FleschReadingEase(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}

	words, sentences := segment(text)
	if len(words) == 0 {
		return 0
	}
	// Degenerate punctuation-free text still counts as one sentence.
	if sentences == 0 {
		sentences = 1
	}

	syllables := 0
	for _, w := range words {
		syllables += countSyllables(w)
	}

	wordCount := float64(len(words))
	return 206.835 - 1.015*(wordCount/float64(sentences)) - 84.6*(float64(syllables)/wordCount)
}

// #endregion flesch

// #region segmentation

// segment splits text into word tokens and counts sentences.
// Tokenization and sentence boundaries come from prose; tagging and
// entity extraction are disabled since only the counts are needed.
func segment(text string) ([]string, int) {
	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false))
	if err != nil {
		// Fall back to whitespace fields so degenerate input still scores.
		return wordFields(text), 1
	}

	var words []string
	for _, tok := range doc.Tokens() {
		if isWord(tok.Text) {
			words = append(words, tok.Text)
		}
	}
	return words, len(doc.Sentences())
}

// wordFields is the whitespace fallback tokenizer.
func wordFields(text string) []string {
	var words []string
	for _, f := range strings.Fields(text) {
		if isWord(f) {
			words = append(words, f)
		}
	}
	return words
}

// isWord reports whether a token carries at least one letter.
func isWord(tok string) bool {
	for _, r := range tok {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// #endregion segmentation
