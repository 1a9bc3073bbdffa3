package analyzer

import (
	"strings"

	"github.com/jonreiter/govader"
)

// #region tone

// Tone holds the sentiment analysis result for a text.
type Tone struct {
	// Polarity is the sentiment positivity in [-1, 1].
	Polarity float64
	// Subjectivity is the opinion-vs-fact degree in [0, 1].
	Subjectivity float64
}

// #endregion tone

// #region interface

// ToneAnalyzer produces a Tone for a text. Implementations must be
// stateless and total over any string input, including empty text.
type ToneAnalyzer interface {
	Analyze(text string) Tone
}

// #endregion interface

// #region vader

// VaderAnalyzer scores tone with the VADER sentiment lexicon.
type VaderAnalyzer struct {
	sia *govader.SentimentIntensityAnalyzer
}

// NewVaderAnalyzer builds an analyzer with the default VADER lexicon.
func NewVaderAnalyzer() *VaderAnalyzer {
	return &VaderAnalyzer{sia: govader.NewSentimentIntensityAnalyzer()}
}

// Analyze returns the VADER compound score as polarity and the
// non-neutral token share as subjectivity.
func (a *VaderAnalyzer) Analyze(text string) Tone {
	if strings.TrimSpace(text) == "" {
		return Tone{}
	}
	s := a.sia.PolarityScores(text)
	return Tone{
		Polarity:     clampRange(s.Compound, -1, 1),
		Subjectivity: clampRange(1-s.Neutral, 0, 1),
	}
}

// #endregion vader

// #region helpers

// clampRange restricts v to [lo, hi].
func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// #endregion helpers
