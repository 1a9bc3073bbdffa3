package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"jojoeval/internal/history"
	"jojoeval/internal/scoring"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to the evaluation history database")
	last := flag.Int("last", 20, "show N most recent runs")
	runID := flag.String("run", "", "show single run detail")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: history --db path/to/jojoeval.db [--last N] [--run id] [--json]")
		os.Exit(2)
	}

	store, err := history.NewStore(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *runID != "" {
		err = runDetailMode(store, *runID, *jsonOut)
	} else {
		err = runListMode(store, *last, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region list-mode

type listRow struct {
	RunID     string  `json:"run_id"`
	Label     string  `json:"label"`
	Source    string  `json:"source"`
	Joy         float64 `json:"joy"`
	Outcomes    float64 `json:"outcomes"`
	Journey     float64 `json:"journey"`
	Opportunity float64 `json:"opportunity"`
	CreatedAt   string  `json:"created_at"`
}

func runListMode(store *history.Store, last int, jsonOut bool) error {
	runs, err := store.ListRuns(last)
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Fprintln(os.Stderr, "no runs found")
		return nil
	}

	rows := make([]listRow, len(runs))
	for i, r := range runs {
		rows[i] = listRow{
			RunID:       shortID(r.RunID),
			Label:       r.Label,
			Source:      r.SourcePath,
			Joy:         r.Report.Joy,
			Outcomes:    r.Report.Outcomes,
			Journey:     r.Report.Journey,
			Opportunity: r.Report.Opportunity,
			CreatedAt:   r.CreatedAt.Format("2006-01-02T15:04:05Z"),
		}
	}

	if jsonOut {
		return printJSON(rows)
	}

	fmt.Printf("%-12s  %-10s  %6s  %8s  %7s  %11s  %-20s  %s\n",
		"Run", "Label", "Joy", "Outcomes", "Journey", "Opportunity", "Time", "Source")
	for _, r := range rows {
		fmt.Printf("%-12s  %-10s  %6.2f  %8.2f  %7.2f  %11.2f  %-20s  %s\n",
			r.RunID, r.Label, r.Joy, r.Outcomes, r.Journey, r.Opportunity, r.CreatedAt, r.Source)
	}
	return nil
}

// #endregion list-mode

// #region detail-mode

type detailOutput struct {
	RunID     string         `json:"run_id"`
	Label     string         `json:"label"`
	Source    string         `json:"source"`
	RefPoints string         `json:"ref_points,omitempty"`
	CreatedAt string         `json:"created_at"`
	Report    scoring.Report `json:"report"`
}

func runDetailMode(store *history.Store, runID string, jsonOut bool) error {
	rec, err := store.GetRun(runID)
	if err != nil {
		return err
	}

	out := detailOutput{
		RunID:     rec.RunID,
		Label:     rec.Label,
		Source:    rec.SourcePath,
		RefPoints: rec.RefPoints,
		CreatedAt: rec.CreatedAt.Format("2006-01-02T15:04:05Z"),
		Report:    rec.Report,
	}

	if jsonOut {
		return printJSON(out)
	}

	fmt.Printf("Run:        %s\n", out.RunID)
	fmt.Printf("Label:      %s\n", out.Label)
	fmt.Printf("Source:     %s\n", out.Source)
	fmt.Printf("Refs:       %s\n", out.RefPoints)
	fmt.Printf("Created:    %s\n", out.CreatedAt)

	fmt.Printf("\nMetrics:\n")
	for _, name := range scoring.MetricOrder {
		fmt.Printf("  %-20s %6.2f\n", name+":", out.Report.Value(name))
	}
	return nil
}

// #endregion detail-mode

// #region helpers

func shortID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// #endregion helpers
