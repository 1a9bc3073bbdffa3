package scoring

import (
	"encoding/json"
	"fmt"
	"os"

	"jojoeval/internal/analyzer"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a scoring fixture.
// It pins the analyzer outputs so the expected report is exact.
type Fixture struct {
	Description string        `json:"description"`
	Text        string        `json:"text"`
	RefPoints   string        `json:"ref_points"`
	Tone        FixtureTone   `json:"tone"`
	ReadingEase float64       `json:"reading_ease"`
	Expected    FixtureReport `json:"expected"`
}

// FixtureTone mirrors analyzer.Tone with JSON tags.
type FixtureTone struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

// FixtureReport mirrors Report for expected values.
type FixtureReport struct {
	Joy                float64 `json:"joy"`
	Outcomes           float64 `json:"outcomes"`
	Journey            float64 `json:"journey"`
	Opportunity        float64 `json:"opportunity"`
	Polarity           float64 `json:"polarity"`
	Subjectivity       float64 `json:"subjectivity"`
	EmotionalResonance float64 `json:"emotional_resonance"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON scoring fixture.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// Evaluator builds an Evaluator pinned to the fixture's analyzer outputs.
func (f *Fixture) Evaluator() *Evaluator {
	tone := analyzer.Tone{
		Polarity:     f.Tone.Polarity,
		Subjectivity: f.Tone.Subjectivity,
	}
	ease := f.ReadingEase
	return NewEvaluatorWithEase(
		fixedTone{tone},
		func(string) float64 { return ease },
	)
}

// ToReport converts the expected block to a Report.
func (f *Fixture) ToReport() Report {
	return Report{
		Joy:                f.Expected.Joy,
		Outcomes:           f.Expected.Outcomes,
		Journey:            f.Expected.Journey,
		Opportunity:        f.Expected.Opportunity,
		Polarity:           f.Expected.Polarity,
		Subjectivity:       f.Expected.Subjectivity,
		EmotionalResonance: f.Expected.EmotionalResonance,
	}
}

// fixedTone is a ToneAnalyzer returning one pinned Tone.
type fixedTone struct {
	tone analyzer.Tone
}

func (f fixedTone) Analyze(string) analyzer.Tone { return f.tone }

// #endregion fixture-loader
