package utils

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func capture(level DiagnosticLevel) (*DiagnosticSystem, *bytes.Buffer) {
	d := NewDiagnosticSystem(level)
	d.useColors = false
	var buf bytes.Buffer
	d.SetOutput(&buf)
	return d, &buf
}

func TestDiagnosticLevels(t *testing.T) {
	d, buf := capture(DiagnosticInfo)

	d.Error("boom")
	d.Warn("careful")
	d.Info("hello")
	d.Success("done")
	d.Verbose("hidden")
	d.Debug("hidden too")

	output := buf.String()
	assert.Contains(t, output, "[ERROR] boom")
	assert.Contains(t, output, "[WARN] careful")
	assert.Contains(t, output, "[INFO] hello")
	assert.Contains(t, output, "[SUCCESS] done")
	assert.NotContains(t, output, "hidden")
}

func TestQuietDiagnostics(t *testing.T) {
	d := NewQuietDiagnostics()
	d.useColors = false
	var buf bytes.Buffer
	d.SetOutput(&buf)

	d.Info("hello")
	d.Warn("careful")
	d.Error("boom")

	assert.Equal(t, "[ERROR] boom\n", buf.String())
}

func TestVerboseDiagnosticsShowsTimestamps(t *testing.T) {
	d := NewVerboseDiagnostics()
	d.useColors = false
	var buf bytes.Buffer
	d.SetOutput(&buf)

	d.Verbose("details")

	line := strings.TrimSuffix(buf.String(), "\n")
	// "15:04:05 [VERBOSE] details"
	assert.Regexp(t, `^\d{2}:\d{2}:\d{2} \[VERBOSE\] details$`, line)
}

func TestSummary(t *testing.T) {
	d, buf := capture(DiagnosticInfo)

	d.Summary("Analysis results", map[string]interface{}{"classes": 3})

	assert.Contains(t, buf.String(), "Analysis results")
	assert.Contains(t, buf.String(), "classes: 3")
}

func TestErrorWrappers(t *testing.T) {
	base := assert.AnError

	assert.EqualError(t, WrapParseError("main.py", base), "failed to parse main.py: "+base.Error())
	assert.EqualError(t, WrapGenerateError("conftest.py", base), "failed to generate conftest.py: "+base.Error())
	assert.EqualError(t, WrapLoadError("cfg", base), "failed to load cfg: "+base.Error())
	assert.EqualError(t, WrapWriteError("out", base), "failed to write out: "+base.Error())
	assert.ErrorIs(t, WrapParseError("x", base), base)
}
