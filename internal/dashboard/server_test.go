package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pydesktop/pytestgen/internal/report"
)

func seedReports(t *testing.T) (string, *report.Report) {
	t.Helper()
	dir := t.TempDir()
	r := report.New("todo-app", []report.CaseResult{
		{Name: "test_my_app_init", Outcome: "passed", Duration: 0.1},
		{Name: "test_my_app_title", Outcome: "failed", Duration: 0.2, Message: "no title"},
	})
	_, err := report.Save(r, dir)
	require.NoError(t, err)
	return dir, r
}

func get(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandleIndex(t *testing.T) {
	server := New(t.TempDir())

	rec := get(t, server.Handler(), "/")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "Test Reports")
}

func TestHandleListReports(t *testing.T) {
	dir, saved := seedReports(t)
	server := New(dir)

	rec := get(t, server.Handler(), "/api/test-reports")
	require.Equal(t, http.StatusOK, rec.Code)

	var summaries []report.Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summaries))
	require.Len(t, summaries, 1)
	assert.Equal(t, saved.ID, summaries[0].ID)
	assert.Equal(t, 2, summaries[0].Total)
	assert.InDelta(t, 50.0, summaries[0].SuccessPercentage, 1e-9)
}

func TestHandleListReports_EmptyDirectory(t *testing.T) {
	server := New(t.TempDir())

	rec := get(t, server.Handler(), "/api/test-reports")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestHandleGetReport(t *testing.T) {
	dir, saved := seedReports(t)
	server := New(dir)

	rec := get(t, server.Handler(), "/api/test-report/"+saved.ID)
	require.Equal(t, http.StatusOK, rec.Code)

	var full report.Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &full))
	assert.Equal(t, saved.ID, full.ID)
	require.Len(t, full.Tests, 2)
	assert.Equal(t, "no title", full.Tests[1].Message)
}

func TestHandleGetReport_NotFound(t *testing.T) {
	dir, _ := seedReports(t)
	server := New(dir)

	rec := get(t, server.Handler(), "/api/test-report/unknown-id")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
