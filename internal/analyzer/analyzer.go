// Package analyzer turns a Python project tree into a structured inventory of
// modules, classes, functions, and UI-element declarations, with a best-guess
// identification of the GUI framework in use.
//
// Analysis is syntax-level only: target code is parsed with tree-sitter but
// never imported or executed. False negatives are acceptable, crashes are not,
// so every per-file failure is contained and logged.
package analyzer

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pydesktop/pytestgen/internal/heuristics"
	"github.com/pydesktop/pytestgen/internal/models"
	"github.com/pydesktop/pytestgen/internal/utils"
)

const sourceExtension = ".py"

// defaultExcludes are path-component fragments skipped during the walk.
var defaultExcludes = []string{"test", "venv", ".env"}

// Option configures a ProjectAnalyzer.
type Option func(*ProjectAnalyzer)

// WithDiagnostics sets the diagnostic sink used for per-file warnings.
func WithDiagnostics(diag *utils.DiagnosticSystem) Option {
	return func(a *ProjectAnalyzer) {
		a.diag = diag
	}
}

// WithExcludes replaces the default excluded path fragments.
func WithExcludes(fragments []string) Option {
	return func(a *ProjectAnalyzer) {
		a.excludes = fragments
	}
}

// ProjectAnalyzer analyzes a Python project structure to identify testable
// components. An analyzer owns its inventory only for the duration of a
// single Analyze call; instances may be reused sequentially.
type ProjectAnalyzer struct {
	projectPath string
	isFile      bool
	excludes    []string
	diag        *utils.DiagnosticSystem
}

// New creates an analyzer for the given project path. The path is resolved to
// absolute form here; an unresolvable root is the only fatal error in the
// analysis pipeline.
func New(projectPath string, opts ...Option) (*ProjectAnalyzer, error) {
	abs, err := filepath.Abs(projectPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project path %s: %w", projectPath, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project path %s: %w", projectPath, err)
	}

	a := &ProjectAnalyzer{
		projectPath: abs,
		isFile:      !info.IsDir(),
		excludes:    defaultExcludes,
		diag:        utils.NewQuietDiagnostics(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Analyze performs a full analysis of the project and returns the inventory.
// Per-file read and parse errors are logged and skipped; the returned result
// is structurally complete even when zero files parsed.
func (a *ProjectAnalyzer) Analyze(ctx context.Context) (*models.AnalysisResult, error) {
	a.diag.Info("Analyzing project at %s", a.projectPath)

	files, err := a.collectSourceFiles()
	if err != nil {
		return nil, err
	}
	a.diag.Info("Found %d Python files", len(files))

	result := models.NewAnalysisResult(a.projectPath)
	detection := &frameworkDetection{}

	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := a.analyzeFile(ctx, file, result, detection); err != nil {
			a.diag.Warn("Error analyzing %s: %v", file, err)
		}
	}

	result.GUIFramework = detection.framework
	a.classifyAppClasses(result)
	return result, nil
}

// collectSourceFiles enumerates candidate source files: the root itself in
// single-file mode, otherwise a recursive walk that skips excluded
// directories.
func (a *ProjectAnalyzer) collectSourceFiles() ([]string, error) {
	if a.isFile {
		if !strings.HasSuffix(a.projectPath, sourceExtension) {
			return nil, fmt.Errorf("not a Python source file: %s", a.projectPath)
		}
		return []string{a.projectPath}, nil
	}

	var files []string
	err := filepath.WalkDir(a.projectPath, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			a.diag.Warn("Skipping %s: %v", path, err)
			if entry != nil && entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if entry.IsDir() {
			if path != a.projectPath && a.isExcluded(entry.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasSuffix(entry.Name(), sourceExtension) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk project %s: %w", a.projectPath, err)
	}
	return files, nil
}

func (a *ProjectAnalyzer) isExcluded(name string) bool {
	lower := strings.ToLower(name)
	for _, fragment := range a.excludes {
		if strings.Contains(lower, fragment) {
			return true
		}
	}
	return false
}

// moduleName derives the dotted module name for a source file: the relative
// path with separators replaced by dots and the extension stripped, or the
// bare filename in single-file mode.
func (a *ProjectAnalyzer) moduleName(file string) string {
	if !a.isFile {
		if rel, err := filepath.Rel(a.projectPath, file); err == nil {
			name := strings.TrimSuffix(rel, sourceExtension)
			name = strings.ReplaceAll(name, string(filepath.Separator), ".")
			return strings.ReplaceAll(name, "/", ".")
		}
	}
	return strings.TrimSuffix(filepath.Base(file), sourceExtension)
}

// classifyAppClasses runs the final classification pass: a GUI class is
// promoted to app class when its name looks application-like or it exposes a
// conventional entry-point method. Classes without a recognized GUI base are
// never promoted, so a plain class with a run() method stays unflagged.
func (a *ProjectAnalyzer) classifyAppClasses(result *models.AnalysisResult) {
	for _, class := range result.Classes {
		if !class.IsGUIClass {
			continue
		}
		if heuristics.LooksLikeAppName(class.Name) {
			class.IsAppClass = true
			continue
		}
		for _, method := range class.Methods {
			if heuristics.IsEntryPointMethod(method) {
				class.IsAppClass = true
				break
			}
		}
	}
}

// frameworkDetection accumulates the detected framework across the traversal.
// The first import or base-class match (in canonical table priority order per
// name) wins; later matches are ignored.
type frameworkDetection struct {
	framework models.Framework
}

func (d *frameworkDetection) observe(name string) {
	if d.framework.Detected() {
		return
	}
	d.framework = heuristics.MatchFramework(name)
}
