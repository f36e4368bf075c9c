package contract

// ProgressResponse summarizes block completion for a stored plan. Block
// counts include buffer blocks.
type ProgressResponse struct {
	PlanID          string            `json:"planId"`
	CompletedBlocks int               `json:"completedBlocks"`
	TotalBlocks     int               `json:"totalBlocks"`
	CompletionRate  int               `json:"completionRate"`
	CompletedHours  int               `json:"completedHours"`
	TotalHours      int               `json:"totalHours"`
	Subjects        []SubjectProgress `json:"subjects"`
	CompletedIDs    map[string]bool   `json:"completedIds"`
}

// SubjectProgress is the per-subject slice of a ProgressResponse.
type SubjectProgress struct {
	Subject           string `json:"subject"`
	CompletedBlocks   int    `json:"completedBlocks"`
	TotalBlocks       int    `json:"totalBlocks"`
	InitialConfidence int    `json:"initialConfidence"`
	CurrentConfidence int    `json:"currentConfidence"`
}
