package domain

// Subject is one course the student is studying. Callers treat it as immutable.
type Subject struct {
	Name         string
	Credits      int
	StrongTopics []string
	WeakTopics   []string
	Confidence   int
}

// HasWeakTopics reports whether the subject lists any weak topic.
func (s Subject) HasWeakTopics() bool {
	return len(s.WeakTopics) > 0
}

// FirstWeakTopic returns the first weak topic, or "" when there is none.
func (s Subject) FirstWeakTopic() string {
	if len(s.WeakTopics) == 0 {
		return ""
	}
	return s.WeakTopics[0]
}

// Availability is the student's weekly study budget.
type Availability struct {
	WeekdayHours    float64
	WeekendHours    float64
	PreferredWindow TimeWindow
}

// TotalWeeklyHours is five weekdays plus two weekend days.
func (a Availability) TotalWeeklyHours() float64 {
	return a.WeekdayHours*5 + a.WeekendHours*2
}

// HoursForDay returns the budget for a placement day index (0=Monday).
func (a Availability) HoursForDay(dayIndex int) float64 {
	if IsWeekendIndex(dayIndex) {
		return a.WeekendHours
	}
	return a.WeekdayHours
}

// Student identifies who a plan was generated for. All fields are optional.
type Student struct {
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	College string `json:"college,omitempty" yaml:"college,omitempty"`
	Branch  string `json:"branch,omitempty" yaml:"branch,omitempty"`
	Year    string `json:"year,omitempty" yaml:"year,omitempty"`
	Email   string `json:"email,omitempty" yaml:"email,omitempty"`
}
