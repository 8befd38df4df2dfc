package domain

// Verdict is the classifier's decision for a single zone record.
type Verdict string

const (
	// VerdictKeep marks a record that serves (or may serve) live traffic.
	VerdictKeep Verdict = "KEEP"

	// VerdictDelete marks a record verified to point at a dead target.
	VerdictDelete Verdict = "DELETE"

	// VerdictSkip marks a record type the tool never touches.
	VerdictSkip Verdict = "SKIP"
)

// Disposition pairs a zone record with its verdict and a human-readable
// justification. Every record in the snapshot gets exactly one
// disposition per run.
type Disposition struct {
	Record  Record  `json:"record"`
	Verdict Verdict `json:"verdict"`
	Reason  string  `json:"reason"`
}

// Summary holds per-verdict counts for a disposition list.
type Summary struct {
	Keep   int
	Delete int
	Skip   int
}

// Summarize tallies dispositions by verdict.
func Summarize(ds []Disposition) Summary {
	var s Summary
	for _, d := range ds {
		switch d.Verdict {
		case VerdictKeep:
			s.Keep++
		case VerdictDelete:
			s.Delete++
		case VerdictSkip:
			s.Skip++
		}
	}
	return s
}

// Deletes returns the DELETE-verdict subset in input order.
func Deletes(ds []Disposition) []Disposition {
	var out []Disposition
	for _, d := range ds {
		if d.Verdict == VerdictDelete {
			out = append(out, d)
		}
	}
	return out
}
