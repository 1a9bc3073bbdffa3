package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"jojoeval/internal/analyzer"
	"jojoeval/internal/history"
	"jojoeval/internal/report"
	"jojoeval/internal/scoring"
)

// #region main

func main() {
	chatgptPath := flag.String("chatgpt_path", "", "path to ChatGPT output file")
	claudePath := flag.String("claude_path", "", "path to Claude output file")
	refPoints := flag.String("ref_points", "", "comma-separated list of reference keywords")
	labelA := flag.String("label_a", "ChatGPT", "label for the first text")
	labelB := flag.String("label_b", "Claude", "label for the second text")
	jsonOut := flag.Bool("json", false, "output reports as JSON instead of text")
	compare := flag.Bool("compare", false, "append a per-metric comparison table (text output only)")
	dbPath := flag.String("db", envOr("JOJOEVAL_DB", ""), "record runs to this SQLite history database")
	flag.Parse()

	if *chatgptPath == "" || *claudePath == "" {
		fmt.Fprintln(os.Stderr, "usage: evaluate --chatgpt_path file --claude_path file [--ref_points a,b] [--json] [--compare] [--db path]")
		os.Exit(2)
	}

	refs := scoring.ParseRefPoints(*refPoints)

	chatgptText, err := loadText(*chatgptPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	claudeText, err := loadText(*claudePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	evaluator := scoring.NewEvaluator(analyzer.NewVaderAnalyzer())

	sections := []report.Section{
		{
			Heading: *labelA + " Evaluation",
			Label:   *labelA,
			Report:  evaluator.Evaluate(chatgptText, refs),
		},
		{
			Heading: *labelB + " Evaluation",
			Label:   *labelB,
			Report:  evaluator.Evaluate(claudeText, refs),
		},
	}

	if *jsonOut {
		err = report.WriteJSON(os.Stdout, sections)
	} else {
		err = report.WriteText(os.Stdout, sections)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *compare && !*jsonOut {
		fmt.Println()
		if err := report.WriteComparisonText(os.Stdout, report.Compare(sections[0], sections[1])); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	if *dbPath != "" {
		if err := recordRuns(*dbPath, *refPoints, []string{*chatgptPath, *claudePath}, sections); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}
}

// #endregion main

// #region history

// recordRuns persists one run row per evaluated text.
func recordRuns(dbPath, refPoints string, sourcePaths []string, sections []report.Section) error {
	store, err := history.NewStore(dbPath)
	if err != nil {
		return fmt.Errorf("open history db: %w", err)
	}
	defer store.Close()

	for i, sec := range sections {
		rec, err := store.RecordRun(history.RunRecord{
			Label:      sec.Label,
			SourcePath: sourcePaths[i],
			RefPoints:  refPoints,
			Report:     sec.Report,
		})
		if err != nil {
			return fmt.Errorf("record run: %w", err)
		}
		log.Printf("recorded run %s (%s)", rec.RunID, rec.Label)
	}
	return nil
}

// #endregion history

// #region helpers

// loadText reads a UTF-8 text file into memory.
func loadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion helpers
