// Package report holds the JSON-backed test-report model: saving run results
// under a report directory and loading them back for the dashboard.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pydesktop/pytestgen/internal/utils"
)

// CaseResult is the outcome of a single test case within a run.
type CaseResult struct {
	Name     string  `json:"name"`
	Outcome  string  `json:"outcome"` // passed, failed, skipped, error
	Duration float64 `json:"duration"`
	Message  string  `json:"message,omitempty"`
}

// Report is one persisted test run.
type Report struct {
	ID        string       `json:"id"`
	Project   string       `json:"project"`
	Timestamp time.Time    `json:"timestamp"`
	Total     int          `json:"total"`
	Passed    int          `json:"passed"`
	Failed    int          `json:"failed"`
	Skipped   int          `json:"skipped"`
	Errors    int          `json:"errors"`
	Duration  float64      `json:"duration"`
	Tests     []CaseResult `json:"tests,omitempty"`
}

// New creates a report for a project with a fresh ID and timestamp. Totals
// are derived from the case results.
func New(project string, tests []CaseResult) *Report {
	r := &Report{
		ID:        uuid.NewString(),
		Project:   project,
		Timestamp: time.Now(),
		Tests:     tests,
	}
	for _, test := range tests {
		r.Total++
		switch test.Outcome {
		case "passed":
			r.Passed++
		case "failed":
			r.Failed++
		case "skipped":
			r.Skipped++
		default:
			r.Errors++
		}
		r.Duration += test.Duration
	}
	return r
}

// Summary is the aggregate view served by the dashboard index.
type Summary struct {
	ID                string    `json:"id"`
	Project           string    `json:"project"`
	Timestamp         time.Time `json:"timestamp"`
	Total             int       `json:"total_tests"`
	Passed            int       `json:"passed"`
	Failed            int       `json:"failed"`
	Skipped           int       `json:"skipped"`
	Duration          float64   `json:"duration"`
	SuccessPercentage float64   `json:"success_percentage"`
}

// Summary computes the aggregate view of the report.
func (r *Report) Summary() Summary {
	s := Summary{
		ID:        r.ID,
		Project:   r.Project,
		Timestamp: r.Timestamp,
		Total:     r.Total,
		Passed:    r.Passed,
		Failed:    r.Failed,
		Skipped:   r.Skipped,
		Duration:  r.Duration,
	}
	if r.Total > 0 {
		s.SuccessPercentage = float64(r.Passed) / float64(r.Total) * 100
	}
	return s
}

// Save writes the report as indented JSON under dir, creating the directory
// if needed, and returns the written path. File names carry the run
// timestamp so a directory listing reads chronologically.
func Save(r *Report, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", utils.WrapWriteError(dir, err)
	}
	name := fmt.Sprintf("test_report_%s.json", r.Timestamp.Format("20060102_150405"))
	path := filepath.Join(dir, name)

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", utils.WrapWriteError(path, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", utils.WrapWriteError(path, err)
	}
	return path, nil
}

// Load reads one report file.
func Load(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, utils.WrapLoadError(path, err)
	}
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, utils.WrapParseError(path, err)
	}
	return &r, nil
}

// LoadDir reads every report in a directory, newest first. Files that fail
// to parse are skipped, consistent with the analyzer's per-file tolerance.
func LoadDir(dir string) ([]*Report, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, utils.WrapLoadError(dir, err)
	}

	var reports []*Report
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		r, err := Load(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		reports = append(reports, r)
	}
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Timestamp.After(reports[j].Timestamp)
	})
	return reports, nil
}
