package auditlog

import "time"

const (
	OutcomeSuccess = "success"
	OutcomeDryRun  = "dry-run"
	OutcomeAborted = "aborted"
	OutcomeError   = "error"
)

// RunEntry represents one persisted zonekeeper run.
type RunEntry struct {
	ID        int64     `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Command   string    `json:"command"`
	Zone      string    `json:"zone,omitempty"`

	// Verdict counts from the classifier (cleanup runs only).
	Keep   int `json:"keep"`
	Delete int `json:"delete"`
	Skip   int `json:"skip"`

	// Deleted is the number of records actually removed.
	Deleted int `json:"deleted"`

	Outcome    string `json:"outcome"`
	Detail     string `json:"detail,omitempty"`
	DurationMs int64  `json:"duration_ms"`
}
