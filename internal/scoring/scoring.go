package scoring

import (
	"math"
	"strings"

	"jojoeval/internal/analyzer"
	"jojoeval/internal/readability"
)

// #region markers

// opportunityMarkers are the actionable-suggestion phrases counted by
// ScoreOpportunity. Matching is case-insensitive substring containment.
var opportunityMarkers = []string{
	"recommend", "you can", "consider", "try", "suggest",
}

// #endregion markers

// #region evaluator

// Evaluator scores texts against the JOJO metrics.
type Evaluator struct {
	tone analyzer.ToneAnalyzer
	ease func(string) float64
}

// NewEvaluator creates an Evaluator backed by the given tone analyzer
// and the Flesch reading-ease formula.
func NewEvaluator(tone analyzer.ToneAnalyzer) *Evaluator {
	return &Evaluator{tone: tone, ease: readability.FleschReadingEase}
}

// NewEvaluatorWithEase creates an Evaluator with an injected reading-ease
// function. Used for testing without the real readability backend.
func NewEvaluatorWithEase(tone analyzer.ToneAnalyzer, ease func(string) float64) *Evaluator {
	return &Evaluator{tone: tone, ease: ease}
}

// #endregion evaluator

// #region joy

// ScoreJoy maps sentiment polarity [-1, 1] onto [0, 10].
func (e *Evaluator) ScoreJoy(text string) float64 {
	return (e.tone.Analyze(text).Polarity + 1.0) * 5.0
}

// #endregion joy

// #region outcomes

// ScoreOutcomes measures reference keyword coverage on [0, 10].
// An empty reference set scores 0 by definition. Matching is
// case-insensitive substring containment, not whole-word.
func (e *Evaluator) ScoreOutcomes(text string, refs []string) float64 {
	if len(refs) == 0 {
		return 0.0
	}
	lower := strings.ToLower(text)
	matches := 0
	for _, ref := range refs {
		if strings.Contains(lower, strings.ToLower(ref)) {
			matches++
		}
	}
	return float64(matches) / float64(len(refs)) * 10.0
}

// #endregion outcomes

// #region journey

// ScoreJourney maps reading ease, clamped to [0, 100], onto [0, 10].
func (e *Evaluator) ScoreJourney(text string) float64 {
	ease := e.ease(text)
	if ease < 0 {
		ease = 0
	}
	if ease > 100 {
		ease = 100
	}
	return ease / 10.0
}

// #endregion journey

// #region opportunity

// ScoreOpportunity counts actionable-suggestion markers in the text,
// overlapping hits included, and saturates at 10 once five total
// occurrences are reached.
func (e *Evaluator) ScoreOpportunity(text string) float64 {
	lower := strings.ToLower(text)
	total := 0
	for _, m := range opportunityMarkers {
		total += countOccurrences(lower, m)
	}
	score := float64(total) / 5.0 * 10.0
	if score > 10.0 {
		return 10.0
	}
	return score
}

// #endregion opportunity

// #region tone

// AnalyzeTone returns the analyzer's raw polarity and subjectivity.
func (e *Evaluator) AnalyzeTone(text string) analyzer.Tone {
	return e.tone.Analyze(text)
}

// #endregion tone

// #region evaluate

// Evaluate runs all scorers on the text and returns the full report,
// every field rounded to 2 decimals. A single tone analysis feeds Joy,
// Polarity, Subjectivity, and Emotional Resonance.
func (e *Evaluator) Evaluate(text string, refs []string) Report {
	tone := e.tone.Analyze(text)

	return Report{
		Joy:                round2((tone.Polarity + 1.0) * 5.0),
		Outcomes:           round2(e.ScoreOutcomes(text, refs)),
		Journey:            round2(e.ScoreJourney(text)),
		Opportunity:        round2(e.ScoreOpportunity(text)),
		Polarity:           round2(tone.Polarity),
		Subjectivity:       round2(tone.Subjectivity),
		EmotionalResonance: round2(tone.Subjectivity * 10.0),
	}
}

// #endregion evaluate

// #region refs

// ParseRefPoints splits a comma-separated reference list into trimmed,
// non-empty keywords.
func ParseRefPoints(s string) []string {
	var refs []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			refs = append(refs, trimmed)
		}
	}
	return refs
}

// #endregion refs

// #region helpers

// countOccurrences counts substring hits of needle in haystack,
// advancing one byte past each hit so overlapping matches count.
func countOccurrences(haystack, needle string) int {
	if needle == "" {
		return 0
	}
	count := 0
	for i := 0; ; {
		j := strings.Index(haystack[i:], needle)
		if j < 0 {
			return count
		}
		count++
		i += j + 1
	}
}

// round2 rounds to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// #endregion helpers
