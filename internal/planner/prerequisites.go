package planner

import (
	"sort"
	"strings"
)

// prerequisiteTable maps known subject names to the subjects they build on.
// It is never mutated; accessors hand out copies.
var prerequisiteTable = map[string][]string{
	"Data Structures":       {"Programming", "Algorithms", "Discrete Mathematics"},
	"Operating Systems":     {"Computer Architecture", "Data Structures"},
	"Database Systems":      {"Data Structures", "Discrete Mathematics"},
	"Machine Learning":      {"Linear Algebra", "Statistics", "Programming", "Data Structures"},
	"Computer Networks":     {"Operating Systems", "Data Structures"},
	"Algorithms":            {"Data Structures", "Discrete Mathematics"},
	"Software Engineering":  {"Programming", "Data Structures"},
	"Computer Architecture": {"Digital Logic", "Mathematics"},
	"Compiler Design":       {"Data Structures", "Algorithms", "Theory of Computation"},
}

// Prerequisites returns the prerequisites registered for an exact subject name.
// Unknown subjects have none.
func Prerequisites(subject string) []string {
	reqs := prerequisiteTable[subject]
	if len(reqs) == 0 {
		return nil
	}
	out := make([]string, len(reqs))
	copy(out, reqs)
	return out
}

// PrerequisiteEntry is one row of the prerequisite table.
type PrerequisiteEntry struct {
	Subject       string
	Prerequisites []string
}

// PrerequisiteTable returns the whole table sorted by subject name.
func PrerequisiteTable() []PrerequisiteEntry {
	entries := make([]PrerequisiteEntry, 0, len(prerequisiteTable))
	for subject := range prerequisiteTable {
		entries = append(entries, PrerequisiteEntry{Subject: subject, Prerequisites: Prerequisites(subject)})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Subject < entries[j].Subject })
	return entries
}

// MissingPrerequisites returns the prerequisites of subject that no name in
// studying covers. A name covers a prerequisite when either string contains
// the other, ignoring case. The match is deliberately fuzzy: "Discrete Math"
// covers "Discrete Mathematics" and "Mathematics" covers "Discrete Mathematics".
func MissingPrerequisites(subject string, studying []string) []string {
	reqs := prerequisiteTable[subject]
	if len(reqs) == 0 {
		return nil
	}
	lowered := make([]string, len(studying))
	for i, n := range studying {
		lowered[i] = strings.ToLower(n)
	}

	var missing []string
	for _, req := range reqs {
		if !coveredBy(strings.ToLower(req), lowered) {
			missing = append(missing, req)
		}
	}
	return missing
}

func coveredBy(prereq string, names []string) bool {
	for _, name := range names {
		if strings.Contains(name, prereq) || strings.Contains(prereq, name) {
			return true
		}
	}
	return false
}
