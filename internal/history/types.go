package history

import (
	"time"

	"jojoeval/internal/scoring"
)

// #region run-record

// RunRecord is one persisted evaluation run.
type RunRecord struct {
	RunID      string
	Label      string
	SourcePath string
	RefPoints  string
	Report     scoring.Report
	CreatedAt  time.Time
}

// #endregion run-record
