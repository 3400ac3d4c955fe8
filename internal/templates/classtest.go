package templates

import (
	"fmt"
	"sort"
	"strings"

	"github.com/pydesktop/pytestgen/internal/heuristics"
	"github.com/pydesktop/pytestgen/internal/models"
)

// MaxMethodTests caps the number of method-existence smoke tests per class so
// generated files stay reviewable. The first MaxMethodTests eligible methods
// in lexicographic order are used.
const MaxMethodTests = 5

// TestInputText is the literal probe string round-tripped through generated
// text-input tests.
const TestInputText = "Test input text"

// BuildClassTest synthesizes a complete test_<class>.py file for one
// app/GUI class: construction test, title test, one test per recognized UI
// element, and capped method-existence tests. Sub-templates with no variant
// for the framework are silently omitted.
func BuildClassTest(framework models.Framework, class *models.ClassRecord, elements []models.UIElementRecord) string {
	imports := NewImportBlock()
	imports.Add("import pytest", "import os", "import sys")
	imports.Add(fmt.Sprintf("from %s import %s", class.Module, class.Name))
	imports.Add(frameworkTestImports(framework)...)

	var sections []string
	sections = append(sections, strings.Join(imports.Lines(), "\n"))
	sections = append(sections, assertionsImportBlock)

	fixture := FixtureName(class.Name)
	sections = append(sections, buildInitTest(class, fixture))

	if class.IsGUIClass {
		if titleTest := buildTitleTest(framework, class, fixture); titleTest != "" {
			sections = append(sections, titleTest)
		}
	}

	for _, element := range elements {
		if test := buildElementTest(framework, class, fixture, element); test != "" {
			sections = append(sections, test)
		}
	}

	sections = append(sections, buildMethodTests(class, fixture)...)

	return strings.Join(sections, "\n") + "\n"
}

// The generated suite prefers the framework's own assertion helpers but must
// stay runnable without the package installed.
const assertionsImportBlock = `
# Import custom assertions for GUI testing
try:
    from pydesktop_test.assertions import (
        assert_window_exists,
        assert_control_exists,
        assert_control_value,
        assert_control_enabled,
    )
except ImportError:
    # Define placeholder functions if the module is not available
    def assert_window_exists(*args, **kwargs): return args[0]
    def assert_control_exists(*args, **kwargs): return None
    def assert_control_value(*args, **kwargs): pass
    def assert_control_enabled(*args, **kwargs): pass
`

func testName(class *models.ClassRecord, suffix string) string {
	return fmt.Sprintf("test_%s_%s", SnakeCase(class.Name), suffix)
}

func buildInitTest(class *models.ClassRecord, fixture string) string {
	return strings.Join([]string{
		fmt.Sprintf("def %s(%s):", testName(class, "init"), fixture),
		fmt.Sprintf("    \"\"\"Test that %s initializes correctly.\"\"\"", class.Name),
		fmt.Sprintf("    assert %s is not None", fixture),
		fmt.Sprintf("    assert isinstance(%s, %s)", fixture, class.Name),
		"",
	}, "\n")
}

func buildTitleTest(framework models.Framework, class *models.ClassRecord, fixture string) string {
	switch {
	case framework == models.FrameworkTkinter:
		return strings.Join([]string{
			fmt.Sprintf("def %s(%s, main_window):", testName(class, "title"), fixture),
			fmt.Sprintf("    \"\"\"Test that the %s window has a title.\"\"\"", class.Name),
			"    title = main_window.title()",
			"    assert title is not None",
			"    assert len(title) > 0",
			"",
		}, "\n")
	case framework.QtFamily():
		return strings.Join([]string{
			fmt.Sprintf("def %s(%s):", testName(class, "title"), fixture),
			fmt.Sprintf("    \"\"\"Test that the %s window has a title.\"\"\"", class.Name),
			fmt.Sprintf("    title = %s.windowTitle()", fixture),
			"    assert title is not None",
			"    assert len(title) > 0",
			"",
		}, "\n")
	case framework == models.FrameworkWxPython:
		return strings.Join([]string{
			fmt.Sprintf("def %s(%s):", testName(class, "title"), fixture),
			fmt.Sprintf("    \"\"\"Test that the %s window has a title.\"\"\"", class.Name),
			fmt.Sprintf("    title = %s.GetTitle()", fixture),
			"    assert title is not None",
			"    assert len(title) > 0",
			"",
		}, "\n")
	}
	return ""
}

// buildElementTest dispatches on the element's base type name. Unrecognized
// types produce no test.
func buildElementTest(framework models.Framework, class *models.ClassRecord, fixture string, element models.UIElementRecord) string {
	switch element.BaseType() {
	case "Button", "QPushButton":
		return buildButtonTest(framework, class, fixture, element)
	case "Entry", "QLineEdit", "TextInput", "TextCtrl":
		return buildTextInputTest(framework, class, fixture, element)
	case "Text", "QTextEdit":
		return buildTextAreaTest(framework, class, fixture, element)
	case "Checkbutton", "QCheckBox", "CheckBox":
		return buildCheckboxTest(framework, class, fixture, element)
	case "Radiobutton", "QRadioButton", "RadioButton":
		return buildRadioTest(framework, class, fixture, element)
	case "Combobox", "QComboBox", "ComboBox", "Spinner":
		return buildComboTest(framework, class, fixture, element)
	}
	return ""
}

func buildButtonTest(framework models.Framework, class *models.ClassRecord, fixture string, element models.UIElementRecord) string {
	name := testName(class, SnakeCase(element.Name))
	switch {
	case framework == models.FrameworkTkinter:
		return strings.Join([]string{
			fmt.Sprintf("def %s(%s):", name, fixture),
			fmt.Sprintf("    \"\"\"Test that the %s button works correctly.\"\"\"", element.Name),
			fmt.Sprintf("    button = %s.%s", fixture, element.Name),
			"    assert button is not None",
			"    assert str(button['state']) in ('normal', 'active')",
			"    # Invoking may raise if no command is attached; that is fine",
			"    try:",
			"        button.invoke()",
			fmt.Sprintf("        if hasattr(%s, 'process_events'):", fixture),
			fmt.Sprintf("            %s.process_events()", fixture),
			"    except Exception:",
			"        pass",
			"",
		}, "\n")
	case framework.QtFamily():
		return strings.Join([]string{
			fmt.Sprintf("def %s(%s):", name, fixture),
			fmt.Sprintf("    \"\"\"Test that the %s button works correctly.\"\"\"", element.Name),
			fmt.Sprintf("    button = %s.%s", fixture, element.Name),
			"    assert button is not None",
			"    assert button.isEnabled()",
			"    try:",
			"        QTest.mouseClick(button, Qt.LeftButton)",
			"    except Exception:",
			"        # This might fail if the button has no slot connected",
			"        pass",
			"",
		}, "\n")
	}
	return ""
}

func buildTextInputTest(framework models.Framework, class *models.ClassRecord, fixture string, element models.UIElementRecord) string {
	name := testName(class, SnakeCase(element.Name))
	switch {
	case framework == models.FrameworkTkinter:
		return strings.Join([]string{
			fmt.Sprintf("def %s(%s):", name, fixture),
			fmt.Sprintf("    \"\"\"Test that the %s input field works correctly.\"\"\"", element.Name),
			fmt.Sprintf("    entry = %s.%s", fixture, element.Name),
			"    assert entry is not None",
			"    assert str(entry['state']) in ('normal', 'active')",
			"    entry.delete(0, tk.END)",
			fmt.Sprintf("    entry.insert(0, \"%s\")", TestInputText),
			fmt.Sprintf("    assert entry.get() == \"%s\"", TestInputText),
			"",
		}, "\n")
	case framework.QtFamily():
		return strings.Join([]string{
			fmt.Sprintf("def %s(%s):", name, fixture),
			fmt.Sprintf("    \"\"\"Test that the %s input field works correctly.\"\"\"", element.Name),
			fmt.Sprintf("    line_edit = %s.%s", fixture, element.Name),
			"    assert line_edit is not None",
			"    assert line_edit.isEnabled()",
			"    line_edit.clear()",
			fmt.Sprintf("    line_edit.setText(\"%s\")", TestInputText),
			fmt.Sprintf("    assert line_edit.text() == \"%s\"", TestInputText),
			"",
		}, "\n")
	}
	return ""
}

func buildTextAreaTest(framework models.Framework, class *models.ClassRecord, fixture string, element models.UIElementRecord) string {
	name := testName(class, SnakeCase(element.Name))
	switch {
	case framework == models.FrameworkTkinter:
		return strings.Join([]string{
			fmt.Sprintf("def %s(%s):", name, fixture),
			fmt.Sprintf("    \"\"\"Test that the %s text widget works correctly.\"\"\"", element.Name),
			fmt.Sprintf("    text = %s.%s", fixture, element.Name),
			"    assert text is not None",
			"    assert str(text['state']) in ('normal', 'active')",
			"    text.delete(1.0, tk.END)",
			fmt.Sprintf("    text.insert(1.0, \"%s\")", TestInputText),
			fmt.Sprintf("    assert text.get(1.0, tk.END).strip() == \"%s\"", TestInputText),
			"",
		}, "\n")
	case framework.QtFamily():
		return strings.Join([]string{
			fmt.Sprintf("def %s(%s):", name, fixture),
			fmt.Sprintf("    \"\"\"Test that the %s text area works correctly.\"\"\"", element.Name),
			fmt.Sprintf("    text_edit = %s.%s", fixture, element.Name),
			"    assert text_edit is not None",
			"    assert text_edit.isEnabled()",
			"    text_edit.clear()",
			fmt.Sprintf("    text_edit.setText(\"%s\")", TestInputText),
			fmt.Sprintf("    assert text_edit.toPlainText() == \"%s\"", TestInputText),
			"",
		}, "\n")
	}
	return ""
}

func buildCheckboxTest(framework models.Framework, class *models.ClassRecord, fixture string, element models.UIElementRecord) string {
	name := testName(class, SnakeCase(element.Name))
	switch {
	case framework == models.FrameworkTkinter:
		return strings.Join([]string{
			fmt.Sprintf("def %s(%s):", name, fixture),
			fmt.Sprintf("    \"\"\"Test that the %s checkbox works correctly.\"\"\"", element.Name),
			fmt.Sprintf("    checkbox = %s.%s", fixture, element.Name),
			"    assert checkbox is not None",
			"    assert str(checkbox['state']) in ('normal', 'active')",
			"    var = checkbox.cget('variable')",
			"    initial_value = var.get() if var else 0",
			"    checkbox.invoke()",
			"    new_value = var.get() if var else 0",
			"    assert new_value != initial_value",
			"",
		}, "\n")
	case framework.QtFamily():
		return strings.Join([]string{
			fmt.Sprintf("def %s(%s):", name, fixture),
			fmt.Sprintf("    \"\"\"Test that the %s checkbox works correctly.\"\"\"", element.Name),
			fmt.Sprintf("    checkbox = %s.%s", fixture, element.Name),
			"    assert checkbox is not None",
			"    assert checkbox.isEnabled()",
			"    initial_state = checkbox.isChecked()",
			"    checkbox.setChecked(not initial_state)",
			"    assert checkbox.isChecked() != initial_state",
			"",
		}, "\n")
	}
	return ""
}

func buildRadioTest(framework models.Framework, class *models.ClassRecord, fixture string, element models.UIElementRecord) string {
	name := testName(class, SnakeCase(element.Name))
	switch {
	case framework == models.FrameworkTkinter:
		return strings.Join([]string{
			fmt.Sprintf("def %s(%s):", name, fixture),
			fmt.Sprintf("    \"\"\"Test that the %s radio button works correctly.\"\"\"", element.Name),
			fmt.Sprintf("    radio = %s.%s", fixture, element.Name),
			"    assert radio is not None",
			"    assert str(radio['state']) in ('normal', 'active')",
			"    radio.invoke()",
			"    var = radio.cget('variable')",
			"    if var:",
			"        assert var.get() == radio.cget('value')",
			"",
		}, "\n")
	case framework.QtFamily():
		return strings.Join([]string{
			fmt.Sprintf("def %s(%s):", name, fixture),
			fmt.Sprintf("    \"\"\"Test that the %s radio button works correctly.\"\"\"", element.Name),
			fmt.Sprintf("    radio = %s.%s", fixture, element.Name),
			"    assert radio is not None",
			"    assert radio.isEnabled()",
			"    radio.setChecked(True)",
			"    assert radio.isChecked()",
			"",
		}, "\n")
	}
	return ""
}

func buildComboTest(framework models.Framework, class *models.ClassRecord, fixture string, element models.UIElementRecord) string {
	name := testName(class, SnakeCase(element.Name))
	switch {
	case framework == models.FrameworkTkinter:
		return strings.Join([]string{
			fmt.Sprintf("def %s(%s):", name, fixture),
			fmt.Sprintf("    \"\"\"Test that the %s combobox works correctly.\"\"\"", element.Name),
			fmt.Sprintf("    combo = %s.%s", fixture, element.Name),
			"    assert combo is not None",
			"    assert str(combo['state']) in ('normal', 'readonly', 'active')",
			"    values = combo['values']",
			"    if values and len(values) > 0:",
			"        combo.current(0)",
			"        assert combo.get() == values[0]",
			"",
		}, "\n")
	case framework.QtFamily():
		return strings.Join([]string{
			fmt.Sprintf("def %s(%s):", name, fixture),
			fmt.Sprintf("    \"\"\"Test that the %s combobox works correctly.\"\"\"", element.Name),
			fmt.Sprintf("    combo = %s.%s", fixture, element.Name),
			"    assert combo is not None",
			"    assert combo.isEnabled()",
			"    if combo.count() > 0:",
			"        combo.setCurrentIndex(0)",
			"        assert combo.currentIndex() == 0",
			"",
		}, "\n")
	}
	return ""
}

// buildMethodTests emits up to MaxMethodTests existence smoke tests for the
// class's public, non-lifecycle methods, alphabetically first.
func buildMethodTests(class *models.ClassRecord, fixture string) []string {
	var eligible []string
	for _, method := range class.Methods {
		if heuristics.IsTestableMethod(method) {
			eligible = append(eligible, method)
		}
	}
	sort.Strings(eligible)
	if len(eligible) > MaxMethodTests {
		eligible = eligible[:MaxMethodTests]
	}

	tests := make([]string, 0, len(eligible))
	for _, method := range eligible {
		tests = append(tests, strings.Join([]string{
			fmt.Sprintf("def %s(%s):", testName(class, SnakeCase(method)), fixture),
			fmt.Sprintf("    \"\"\"Test that the %s method exists.\"\"\"", method),
			fmt.Sprintf("    assert hasattr(%s, '%s')", fixture, method),
			fmt.Sprintf("    assert callable(getattr(%s, '%s'))", fixture, method),
			"",
		}, "\n"))
	}
	return tests
}
