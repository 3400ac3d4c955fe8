package report

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleCases() []CaseResult {
	return []CaseResult{
		{Name: "test_my_app_init", Outcome: "passed", Duration: 0.12},
		{Name: "test_my_app_title", Outcome: "passed", Duration: 0.08},
		{Name: "test_my_app_save_button", Outcome: "failed", Duration: 0.31, Message: "button disabled"},
		{Name: "test_my_app_slow", Outcome: "skipped"},
	}
}

func TestNew_DerivesTotals(t *testing.T) {
	r := New("todo-app", sampleCases())

	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "todo-app", r.Project)
	assert.Equal(t, 4, r.Total)
	assert.Equal(t, 2, r.Passed)
	assert.Equal(t, 1, r.Failed)
	assert.Equal(t, 1, r.Skipped)
	assert.Equal(t, 0, r.Errors)
	assert.InDelta(t, 0.51, r.Duration, 1e-9)
}

func TestNew_UnknownOutcomeCountsAsError(t *testing.T) {
	r := New("p", []CaseResult{{Name: "t", Outcome: "exploded"}})
	assert.Equal(t, 1, r.Errors)
}

func TestSummary(t *testing.T) {
	r := New("todo-app", sampleCases())
	s := r.Summary()

	assert.Equal(t, r.ID, s.ID)
	assert.Equal(t, 4, s.Total)
	assert.InDelta(t, 50.0, s.SuccessPercentage, 1e-9)
}

func TestSummary_EmptyRun(t *testing.T) {
	r := New("empty", nil)
	assert.Zero(t, r.Summary().SuccessPercentage)
}

func TestSaveAndLoad_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	r := New("todo-app", sampleCases())

	path, err := Save(r, dir)
	require.NoError(t, err)
	assert.Contains(t, filepath.Base(path), "test_report_")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, r.ID, loaded.ID)
	assert.Equal(t, r.Total, loaded.Total)
	require.Len(t, loaded.Tests, 4)
	assert.Equal(t, "button disabled", loaded.Tests[2].Message)
}

func TestSave_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports", "nested")
	_, err := Save(New("p", nil), dir)
	require.NoError(t, err)
}

func TestLoadDir_NewestFirst(t *testing.T) {
	dir := t.TempDir()

	old := New("p", nil)
	old.Timestamp = time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	recent := New("p", nil)
	recent.Timestamp = time.Date(2026, 1, 2, 10, 0, 0, 0, time.UTC)

	_, err := Save(old, dir)
	require.NoError(t, err)
	_, err = Save(recent, dir)
	require.NoError(t, err)

	reports, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, recent.ID, reports[0].ID)
	assert.Equal(t, old.ID, reports[1].ID)
}

func TestLoadDir_SkipsMalformedFiles(t *testing.T) {
	dir := t.TempDir()
	_, err := Save(New("p", nil), dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "junk.json"), []byte("{not json"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	reports, err := LoadDir(dir)
	require.NoError(t, err)
	assert.Len(t, reports, 1)
}

func TestLoadDir_MissingDirectory(t *testing.T) {
	reports, err := LoadDir(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Empty(t, reports)
}
