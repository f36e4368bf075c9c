package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/studyweek/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const requestJSON = `{
  "student": {"name": "Priya", "college": "IIT", "branch": "CSE", "year": "2", "email": "p@example.com"},
  "subjects": [
    {"name": "Data Structures", "credits": 4, "strong": ["Arrays"], "weak": ["Trees", "Graphs"], "confidence": 3},
    {"name": "Calculus", "confidence": 5}
  ],
  "availability": {"weekdays": 3, "weekends": 6, "preferredTime": "Night"},
  "targetDate": "2026-06-01"
}`

const requestYAML = `
student:
  name: Priya
defaults:
  credits: 2
  confidence: 4
subjects:
  - name: Data Structures
    credits: 4
    strong: [Arrays]
    weak: [Trees, Graphs]
    confidence: 3
  - name: " Calculus "
availability:
  weekdays: 2.5
  weekends: 6
  preferredTime: Morning
targetDate: "2026-06-01"
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadRequestFile_JSON(t *testing.T) {
	f, err := LoadRequestFile(writeFile(t, "req.json", requestJSON))
	require.NoError(t, err)
	require.Empty(t, ValidateRequestFile(f))

	req := ToRequest(f)
	assert.Equal(t, "Priya", req.Student.Name)
	assert.Equal(t, "p@example.com", req.Student.Email)
	require.Len(t, req.Subjects, 2)

	ds := req.Subjects[0]
	assert.Equal(t, "Data Structures", ds.Name)
	assert.Equal(t, 4, ds.Credits)
	assert.Equal(t, []string{"Arrays"}, ds.StrongTopics)
	assert.Equal(t, []string{"Trees", "Graphs"}, ds.WeakTopics)
	assert.Equal(t, 3, ds.Confidence)

	calc := req.Subjects[1]
	assert.Equal(t, DefaultCredits, calc.Credits)
	assert.Empty(t, calc.WeakTopics)

	assert.Equal(t, domain.Availability{WeekdayHours: 3, WeekendHours: 6, PreferredWindow: domain.WindowNight}, req.Availability)
	assert.Equal(t, "2026-06-01", req.TargetDate)
	assert.NoError(t, req.Validate())
}

func TestLoadRequestFile_YAMLWithDefaults(t *testing.T) {
	f, err := LoadRequestFile(writeFile(t, "req.yaml", requestYAML))
	require.NoError(t, err)
	require.Empty(t, ValidateRequestFile(f))

	req := ToRequest(f)
	require.Len(t, req.Subjects, 2)
	assert.Equal(t, 4, req.Subjects[0].Credits, "subject value wins over defaults")
	assert.Equal(t, 3, req.Subjects[0].Confidence)

	calc := req.Subjects[1]
	assert.Equal(t, "Calculus", calc.Name)
	assert.Equal(t, 2, calc.Credits)
	assert.Equal(t, 4, calc.Confidence)

	assert.Equal(t, 2.5, req.Availability.WeekdayHours)
	assert.Equal(t, domain.WindowMorning, req.Availability.PreferredWindow)
}

func TestLoadRequestFile_YMLExtension(t *testing.T) {
	f, err := LoadRequestFile(writeFile(t, "req.YML", requestYAML))
	require.NoError(t, err)
	assert.Len(t, f.Subjects, 2)
}

func TestLoadRequestFile_Errors(t *testing.T) {
	_, err := LoadRequestFile(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	_, err = LoadRequestFile(writeFile(t, "bad.json", "{not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing request file")

	_, err = LoadRequestFile(writeFile(t, "bad.yaml", "subjects: [unclosed"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing request file")
}
