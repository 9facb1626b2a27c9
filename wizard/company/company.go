package company

import "time"

// ResearchResult is the raw outcome of one company research call. RawText is
// the unprocessed provider output; the structured record is derived from it
// on demand and never stored separately.
type ResearchResult struct {
	Company     string    `json:"company"`
	RawText     string    `json:"rawText"`
	GeneratedAt time.Time `json:"generatedAt"`
}
