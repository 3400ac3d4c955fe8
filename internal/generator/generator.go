// Package generator turns an analysis inventory into ready-to-run pytest
// source files: a shared conftest.py plus one test file per detected
// app/GUI class.
package generator

import (
	"os"
	"path/filepath"

	"github.com/pydesktop/pytestgen/internal/models"
	"github.com/pydesktop/pytestgen/internal/templates"
	"github.com/pydesktop/pytestgen/internal/utils"
)

// Option configures a TestGenerator.
type Option func(*TestGenerator)

// WithDiagnostics sets the diagnostic sink.
func WithDiagnostics(diag *utils.DiagnosticSystem) Option {
	return func(g *TestGenerator) {
		g.diag = diag
	}
}

// TestGenerator generates test code for an analyzed project. It only reads
// the analysis result; each GenerateTests call produces a fresh set.
type TestGenerator struct {
	analysis *models.AnalysisResult
	diag     *utils.DiagnosticSystem
}

// New creates a generator over an analysis result.
func New(analysis *models.AnalysisResult, opts ...Option) *TestGenerator {
	g := &TestGenerator{
		analysis: analysis,
		diag:     utils.NewQuietDiagnostics(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// GenerateTests synthesizes the test suite. When outputDir is non-empty the
// files are also written to disk (directory created if absent, existing
// files overwritten without backup); an empty outputDir keeps generation
// purely in memory for preview flows.
//
// Classes whose framework has no template for a given sub-test silently get
// fewer tests; every flagged class still gets its construction test.
func (g *TestGenerator) GenerateTests(outputDir string) (models.GeneratedTestSet, error) {
	outputPath := outputDir
	if outputPath == "" {
		outputPath = filepath.Join(g.analysis.ProjectPath, "tests")
	}

	framework := g.analysis.GUIFramework
	classes := g.analysis.AppClasses()

	testFiles := make(models.GeneratedTestSet)
	testFiles[filepath.Join(outputPath, "conftest.py")] = templates.BuildConftest(framework, classes)

	for _, class := range classes {
		content := templates.BuildClassTest(framework, class, g.analysis.ElementsFor(class))
		testFiles[filepath.Join(outputPath, templates.TestFileName(class.Name))] = content
	}

	if outputDir != "" {
		if err := g.writeFiles(outputDir, testFiles); err != nil {
			return nil, err
		}
		g.diag.Info("Generated %d test files in %s", len(testFiles), outputDir)
	}

	return testFiles, nil
}

// writeFiles persists the generated set, one file per entry.
func (g *TestGenerator) writeFiles(outputDir string, testFiles models.GeneratedTestSet) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return utils.WrapWriteError(outputDir, err)
	}
	for path, content := range testFiles {
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return utils.WrapWriteError(path, err)
		}
	}
	return nil
}
