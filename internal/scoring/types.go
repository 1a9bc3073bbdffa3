package scoring

// #region report

// Report holds one evaluation's metrics, each rounded to 2 decimals.
// Built once per Evaluate call and never mutated afterwards.
type Report struct {
	Joy                float64 `json:"joy"`
	Outcomes           float64 `json:"outcomes"`
	Journey            float64 `json:"journey"`
	Opportunity        float64 `json:"opportunity"`
	Polarity           float64 `json:"polarity"`
	Subjectivity       float64 `json:"subjectivity"`
	EmotionalResonance float64 `json:"emotional_resonance"`
}

// #endregion report

// #region metric-order

// Metric names in the fixed reporting order.
const (
	MetricJoy                = "Joy"
	MetricOutcomes           = "Outcomes"
	MetricJourney            = "Journey"
	MetricOpportunity        = "Opportunity"
	MetricPolarity           = "Polarity"
	MetricSubjectivity       = "Subjectivity"
	MetricEmotionalResonance = "Emotional Resonance"
)

// MetricOrder is the fixed order metrics are reported in.
var MetricOrder = []string{
	MetricJoy,
	MetricOutcomes,
	MetricJourney,
	MetricOpportunity,
	MetricPolarity,
	MetricSubjectivity,
	MetricEmotionalResonance,
}

// Value returns the metric by its reporting name.
func (r Report) Value(name string) float64 {
	switch name {
	case MetricJoy:
		return r.Joy
	case MetricOutcomes:
		return r.Outcomes
	case MetricJourney:
		return r.Journey
	case MetricOpportunity:
		return r.Opportunity
	case MetricPolarity:
		return r.Polarity
	case MetricSubjectivity:
		return r.Subjectivity
	case MetricEmotionalResonance:
		return r.EmotionalResonance
	}
	return 0
}

// #endregion metric-order
