package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"jojoeval/internal/scoring"
)

func sampleSections() []Section {
	return []Section{
		{
			Heading: "ChatGPT Evaluation",
			Label:   "ChatGPT",
			Report: scoring.Report{
				Joy: 7.5, Outcomes: 6.67, Journey: 8.0, Opportunity: 4.0,
				Polarity: 0.5, Subjectivity: 0.6, EmotionalResonance: 6.0,
			},
		},
		{
			Heading: "Claude Evaluation",
			Label:   "Claude",
			Report: scoring.Report{
				Joy: 6.0, Outcomes: 10.0, Journey: 7.2, Opportunity: 4.0,
				Polarity: 0.2, Subjectivity: 0.3, EmotionalResonance: 3.0,
			},
		},
	}
}

func TestWriteTextFixedOrder(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteText(&buf, sampleSections()); err != nil {
		t.Fatalf("WriteText: %v", err)
	}

	want := "=== ChatGPT Evaluation ===\n" +
		"Joy: 7.50\n" +
		"Outcomes: 6.67\n" +
		"Journey: 8.00\n" +
		"Opportunity: 4.00\n" +
		"Polarity: 0.50\n" +
		"Subjectivity: 0.60\n" +
		"Emotional Resonance: 6.00\n" +
		"\n" +
		"=== Claude Evaluation ===\n" +
		"Joy: 6.00\n" +
		"Outcomes: 10.00\n" +
		"Journey: 7.20\n" +
		"Opportunity: 4.00\n" +
		"Polarity: 0.20\n" +
		"Subjectivity: 0.30\n" +
		"Emotional Resonance: 3.00\n"

	if buf.String() != want {
		t.Fatalf("output mismatch:\n--- got ---\n%s\n--- want ---\n%s", buf.String(), want)
	}
}

func TestWriteJSONRoundTrips(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, sampleSections()); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}

	var out []struct {
		Label  string         `json:"label"`
		Report scoring.Report `json:"report"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal output: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(out))
	}
	if out[0].Label != "ChatGPT" || out[1].Label != "Claude" {
		t.Fatalf("labels mismatch: %s, %s", out[0].Label, out[1].Label)
	}
	if out[1].Report.Outcomes != 10.0 {
		t.Fatalf("expected outcomes 10.0, got %.2f", out[1].Report.Outcomes)
	}
}

func TestCompareLeaders(t *testing.T) {
	secs := sampleSections()
	cmp := Compare(secs[0], secs[1])

	if cmp.LabelA != "ChatGPT" || cmp.LabelB != "Claude" {
		t.Fatalf("labels mismatch: %+v", cmp)
	}
	if len(cmp.Deltas) != len(scoring.MetricOrder) {
		t.Fatalf("expected %d deltas, got %d", len(scoring.MetricOrder), len(cmp.Deltas))
	}

	byName := make(map[string]MetricDelta, len(cmp.Deltas))
	for _, d := range cmp.Deltas {
		byName[d.Name] = d
	}

	if d := byName[scoring.MetricJoy]; d.Leader != "ChatGPT" {
		t.Fatalf("Joy leader: expected ChatGPT, got %s", d.Leader)
	}
	if d := byName[scoring.MetricOutcomes]; d.Leader != "Claude" {
		t.Fatalf("Outcomes leader: expected Claude, got %s", d.Leader)
	}
	if d := byName[scoring.MetricOpportunity]; d.Leader != "tie" {
		t.Fatalf("Opportunity leader: expected tie, got %s", d.Leader)
	}
}

func TestWriteComparisonTextContainsRows(t *testing.T) {
	secs := sampleSections()
	var buf bytes.Buffer
	if err := WriteComparisonText(&buf, Compare(secs[0], secs[1])); err != nil {
		t.Fatalf("WriteComparisonText: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "=== Comparison (ChatGPT vs Claude) ===") {
		t.Fatalf("missing comparison heading:\n%s", out)
	}
	for _, name := range scoring.MetricOrder {
		if !strings.Contains(out, name) {
			t.Fatalf("missing metric row %q:\n%s", name, out)
		}
	}
}
