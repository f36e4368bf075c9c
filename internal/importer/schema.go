package importer

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// RequestFile is the on-disk shape of a plan request. JSON and YAML share the
// same field names.
type RequestFile struct {
	Student      StudentImport      `json:"student" yaml:"student"`
	Defaults     *DefaultsImport    `json:"defaults,omitempty" yaml:"defaults,omitempty"`
	Subjects     []SubjectImport    `json:"subjects" yaml:"subjects"`
	Availability AvailabilityImport `json:"availability" yaml:"availability"`
	TargetDate   string             `json:"targetDate" yaml:"targetDate"`
}

type StudentImport struct {
	Name    string `json:"name,omitempty" yaml:"name,omitempty"`
	College string `json:"college,omitempty" yaml:"college,omitempty"`
	Branch  string `json:"branch,omitempty" yaml:"branch,omitempty"`
	Year    string `json:"year,omitempty" yaml:"year,omitempty"`
	Email   string `json:"email,omitempty" yaml:"email,omitempty"`
}

// DefaultsImport holds values that cascade to subjects which omit them.
type DefaultsImport struct {
	Credits    *int `json:"credits,omitempty" yaml:"credits,omitempty"`
	Confidence *int `json:"confidence,omitempty" yaml:"confidence,omitempty"`
}

type SubjectImport struct {
	Name       string   `json:"name" yaml:"name"`
	Credits    *int     `json:"credits,omitempty" yaml:"credits,omitempty"`
	Strong     []string `json:"strong,omitempty" yaml:"strong,omitempty"`
	Weak       []string `json:"weak,omitempty" yaml:"weak,omitempty"`
	Confidence *int     `json:"confidence,omitempty" yaml:"confidence,omitempty"`
}

type AvailabilityImport struct {
	Weekdays      float64 `json:"weekdays" yaml:"weekdays"`
	Weekends      float64 `json:"weekends" yaml:"weekends"`
	PreferredTime string  `json:"preferredTime" yaml:"preferredTime"`
}

// LoadRequestFile reads a request file, choosing the decoder by extension.
// .yaml and .yml are YAML; anything else is JSON.
func LoadRequestFile(path string) (*RequestFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseJSON(data)
	}
}

func ParseJSON(data []byte) (*RequestFile, error) {
	var f RequestFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing request file: %w", err)
	}
	return &f, nil
}

func ParseYAML(data []byte) (*RequestFile, error) {
	var f RequestFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing request file: %w", err)
	}
	return &f, nil
}
