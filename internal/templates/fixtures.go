package templates

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pydesktop/pytestgen/internal/models"
)

// BuildConftest synthesizes the shared fixture file (conftest.py) for the
// generated suite: imports, a path preamble making the project root
// importable, one instance fixture per app/GUI class, and a main-window
// resolver fixture when the framework is recognized.
func BuildConftest(framework models.Framework, classes []*models.ClassRecord) string {
	imports := NewImportBlock()
	imports.Add("import pytest", "import os", "import sys")
	imports.Add(frameworkImports(framework)...)

	// One "from module import A, B" line per owning module.
	byModule := make(map[string][]string)
	for _, class := range classes {
		byModule[class.Module] = append(byModule[class.Module], class.Name)
	}
	modules := make([]string, 0, len(byModule))
	for module := range byModule {
		modules = append(modules, module)
	}
	sort.Strings(modules)
	for _, module := range modules {
		imports.Add(fmt.Sprintf("from %s import %s", module, strings.Join(byModule[module], ", ")))
	}

	var sections []string
	sections = append(sections, strings.Join(imports.Lines(), "\n"))
	sections = append(sections, pathPreamble)

	for _, class := range classes {
		sections = append(sections, buildInstanceFixture(framework, class))
	}

	if fixture := buildMainWindowFixture(framework); fixture != "" {
		sections = append(sections, fixture)
	}

	return strings.Join(sections, "\n") + "\n"
}

const pathPreamble = `
# Add project root to Python path
project_root = os.path.abspath(os.path.join(os.path.dirname(__file__), '..'))
if project_root not in sys.path:
    sys.path.insert(0, project_root)
`

// buildInstanceFixture emits the per-class fixture: instantiate, hide the
// window so the suite runs headless, yield, then best-effort teardown.
func buildInstanceFixture(framework models.Framework, class *models.ClassRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "@pytest.fixture\n")
	fmt.Fprintf(&b, "def %s():\n", FixtureName(class.Name))
	fmt.Fprintf(&b, "    \"\"\"Fixture to provide a test instance of %s.\"\"\"\n", class.Name)
	fmt.Fprintf(&b, "    app = %s()\n", class.Name)

	switch {
	case framework == models.FrameworkTkinter:
		b.WriteString("    # Configure for testing\n")
		b.WriteString("    app.root.withdraw()  # Hide window during tests\n")
		b.WriteString("    def process_events():\n")
		b.WriteString("        app.root.update()\n")
		b.WriteString("    app.process_events = process_events\n")
	case framework.QtFamily():
		b.WriteString("    # Configure for testing\n")
		b.WriteString("    app.setVisible(False)  # Hide window during tests\n")
	case framework == models.FrameworkWxPython:
		b.WriteString("    # Configure for testing\n")
		b.WriteString("    app.Hide()  # Hide window during tests\n")
	}

	b.WriteString("    yield app\n")
	b.WriteString("    # Clean up\n")
	b.WriteString("    try:\n")
	b.WriteString("        if hasattr(app, 'shutdown'):\n")
	b.WriteString("            app.shutdown()\n")
	b.WriteString("        elif hasattr(app, 'close'):\n")
	b.WriteString("            app.close()\n")
	b.WriteString("    except Exception:\n")
	b.WriteString("        pass\n")
	return b.String()
}

// buildMainWindowFixture emits a fixture resolving the main window from an
// app instance by probing conventional attribute names in priority order.
func buildMainWindowFixture(framework models.Framework) string {
	switch {
	case framework == models.FrameworkTkinter:
		return strings.Join([]string{
			"@pytest.fixture",
			"def main_window(app_instance):",
			"    \"\"\"Fixture to provide the main window of the application.\"\"\"",
			"    if hasattr(app_instance, 'root'):",
			"        return app_instance.root",
			"    elif hasattr(app_instance, 'window'):",
			"        return app_instance.window",
			"    elif hasattr(app_instance, 'main_window'):",
			"        return app_instance.main_window",
			"    # If we can't find it, assume the app itself is the main window",
			"    return app_instance",
			"",
		}, "\n")
	case framework.QtFamily():
		return strings.Join([]string{
			"@pytest.fixture",
			"def main_window(app_instance):",
			"    \"\"\"Fixture to provide the main window of the application.\"\"\"",
			"    # For PyQt/PySide, the app instance is typically the main window",
			"    return app_instance",
			"",
		}, "\n")
	}
	return ""
}
