package report

import (
	"encoding/json"
	"fmt"
	"io"

	"jojoeval/internal/scoring"
)

// #region section

// Section pairs an evaluated text's heading with its report.
type Section struct {
	// Heading is printed between === markers, e.g. "ChatGPT Evaluation".
	Heading string
	// Label is the short name used in JSON output and comparisons.
	Label string
	// Report holds the metrics.
	Report scoring.Report
}

// #endregion section

// #region text

// WriteText prints each section as a heading followed by the metrics
// in fixed order, one "Name: value" line per metric.
func WriteText(w io.Writer, sections []Section) error {
	for i, sec := range sections {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "=== %s ===\n", sec.Heading); err != nil {
			return err
		}
		for _, name := range scoring.MetricOrder {
			if _, err := fmt.Fprintf(w, "%s: %.2f\n", name, sec.Report.Value(name)); err != nil {
				return err
			}
		}
	}
	return nil
}

// #endregion text

// #region json

type jsonSection struct {
	Label  string         `json:"label"`
	Report scoring.Report `json:"report"`
}

// WriteJSON prints all sections as an indented JSON array.
func WriteJSON(w io.Writer, sections []Section) error {
	out := make([]jsonSection, len(sections))
	for i, sec := range sections {
		out[i] = jsonSection{Label: sec.Label, Report: sec.Report}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// #endregion json

// #region comparison

// MetricDelta is one metric's side-by-side comparison.
type MetricDelta struct {
	Name   string  `json:"name"`
	A      float64 `json:"a"`
	B      float64 `json:"b"`
	Delta  float64 `json:"delta"`
	Leader string  `json:"leader"`
}

// Comparison is the per-metric comparison of two sections.
type Comparison struct {
	LabelA string        `json:"label_a"`
	LabelB string        `json:"label_b"`
	Deltas []MetricDelta `json:"deltas"`
}

// Compare builds a per-metric comparison of two sections. Delta is
// B minus A; the leader is the higher-scoring label, or "tie".
func Compare(a, b Section) Comparison {
	cmp := Comparison{LabelA: a.Label, LabelB: b.Label}
	for _, name := range scoring.MetricOrder {
		va := a.Report.Value(name)
		vb := b.Report.Value(name)
		leader := "tie"
		switch {
		case vb-va > 1e-9:
			leader = b.Label
		case va-vb > 1e-9:
			leader = a.Label
		}
		cmp.Deltas = append(cmp.Deltas, MetricDelta{
			Name:   name,
			A:      va,
			B:      vb,
			Delta:  vb - va,
			Leader: leader,
		})
	}
	return cmp
}

// WriteComparisonText prints the comparison as a fixed-width table.
func WriteComparisonText(w io.Writer, cmp Comparison) error {
	if _, err := fmt.Fprintf(w, "=== Comparison (%s vs %s) ===\n", cmp.LabelA, cmp.LabelB); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "%-20s  %8s  %8s  %8s  %s\n",
		"Metric", cmp.LabelA, cmp.LabelB, "Delta", "Leader"); err != nil {
		return err
	}
	for _, d := range cmp.Deltas {
		if _, err := fmt.Fprintf(w, "%-20s  %8.2f  %8.2f  %+8.2f  %s\n",
			d.Name, d.A, d.B, d.Delta, d.Leader); err != nil {
			return err
		}
	}
	return nil
}

// #endregion comparison
