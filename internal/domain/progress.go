package domain

import "time"

// PlanRecord is a persisted generation result. Payload holds the JSON-encoded
// plan response; the remaining columns exist for listing without decoding it.
type PlanRecord struct {
	ID            string
	StudentName   string
	TargetDate    string
	PreferredTime TimeWindow
	Payload       []byte
	Seed          *int64 // placement seed; nil when the stable order was used
	CreatedAt     time.Time
}

// BlockCompletion marks one block of a stored plan as done.
type BlockCompletion struct {
	PlanID      string
	BlockID     string
	CompletedAt time.Time
}

// ConfidenceUpdate records a self-reported confidence change for a subject.
type ConfidenceUpdate struct {
	PlanID     string
	Subject    string
	Confidence int
	UpdatedAt  time.Time
}

// ValidConfidence reports whether v is on the 1-5 self-assessment scale.
func ValidConfidence(v int) bool {
	return v >= 1 && v <= 5
}
