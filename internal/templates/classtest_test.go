package templates

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pydesktop/pytestgen/internal/models"
)

func tkinterClass() *models.ClassRecord {
	return &models.ClassRecord{
		Module:     "app",
		Name:       "MyApp",
		Methods:    []string{"__init__", "run", "save_file", "_refresh"},
		IsGUIClass: true,
	}
}

func TestBuildClassTest_Tkinter(t *testing.T) {
	class := tkinterClass()
	elements := []models.UIElementRecord{
		{Name: "save_button", Type: "tk.Button", Class: "MyApp", Module: "app"},
		{Name: "name_entry", Type: "Entry", Class: "MyApp", Module: "app"},
	}

	content := BuildClassTest(models.FrameworkTkinter, class, elements)

	assert.Contains(t, content, "from app import MyApp")
	assert.Contains(t, content, "import tkinter as tk")
	assert.Contains(t, content, "from pydesktop_test.assertions import")
	assert.Contains(t, content, "except ImportError:")

	assert.Contains(t, content, "def test_my_app_init(my_app_instance):")
	assert.Contains(t, content, "assert isinstance(my_app_instance, MyApp)")

	// GUI classes get a title test; tkinter probes via the main_window fixture.
	assert.Contains(t, content, "def test_my_app_title(my_app_instance, main_window):")
	assert.Contains(t, content, "title = main_window.title()")

	assert.Contains(t, content, "def test_my_app_save_button(my_app_instance):")
	assert.Contains(t, content, "button = my_app_instance.save_button")
	assert.Contains(t, content, "def test_my_app_name_entry(my_app_instance):")
	assert.Contains(t, content, fmt.Sprintf("entry.insert(0, %q)", TestInputText))
	assert.Contains(t, content, fmt.Sprintf("assert entry.get() == %q", TestInputText))

	// Method tests cover public non-dunder methods only.
	assert.Contains(t, content, "def test_my_app_run(my_app_instance):")
	assert.Contains(t, content, "def test_my_app_save_file(my_app_instance):")
	assert.NotContains(t, content, "test_my_app__refresh")
	assert.NotContains(t, content, "test_my_app___init__")
}

func TestBuildClassTest_Qt(t *testing.T) {
	class := &models.ClassRecord{
		Module:     "ui.main",
		Name:       "MainWindow",
		Methods:    []string{"__init__", "show"},
		IsGUIClass: true,
	}
	elements := []models.UIElementRecord{
		{Name: "submit", Type: "QPushButton", Class: "MainWindow", Module: "ui.main"},
		{Name: "query_edit", Type: "QtWidgets.QLineEdit", Class: "MainWindow", Module: "ui.main"},
		{Name: "notes", Type: "QTextEdit", Class: "MainWindow", Module: "ui.main"},
	}

	content := BuildClassTest(models.FrameworkPyQt, class, elements)

	assert.Contains(t, content, "from ui.main import MainWindow")
	assert.Contains(t, content, "from PyQt5.QtTest import QTest")
	assert.Contains(t, content, "from PyQt5.QtCore import Qt")

	// Qt reads the title off the instance, not a main_window fixture.
	assert.Contains(t, content, "def test_main_window_title(main_window_instance):")
	assert.Contains(t, content, "title = main_window_instance.windowTitle()")

	assert.Contains(t, content, "QTest.mouseClick(button, Qt.LeftButton)")
	assert.Contains(t, content, "line_edit = main_window_instance.query_edit")
	assert.Contains(t, content, "text_edit.toPlainText()")
}

// Element tests dispatch on the trailing segment of the constructor type, so
// dotted and bare spellings of the same widget produce the same test.
func TestBuildClassTest_ElementDispatch(t *testing.T) {
	tests := []struct {
		name        string
		framework   models.Framework
		elementType string
		expected    string
	}{
		{name: "tkinter checkbox", framework: models.FrameworkTkinter, elementType: "tk.Checkbutton", expected: "checkbox.invoke()"},
		{name: "tkinter radio", framework: models.FrameworkTkinter, elementType: "Radiobutton", expected: "radio.invoke()"},
		{name: "tkinter combobox", framework: models.FrameworkTkinter, elementType: "ttk.Combobox", expected: "combo.current(0)"},
		{name: "qt checkbox", framework: models.FrameworkPyQt, elementType: "QCheckBox", expected: "checkbox.setChecked(not initial_state)"},
		{name: "qt radio", framework: models.FrameworkPyQt, elementType: "QRadioButton", expected: "radio.setChecked(True)"},
		{name: "qt combobox", framework: models.FrameworkPyQt, elementType: "QComboBox", expected: "combo.setCurrentIndex(0)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			class := &models.ClassRecord{Module: "app", Name: "MyApp", IsGUIClass: true}
			element := models.UIElementRecord{Name: "widget", Type: tt.elementType, Class: "MyApp", Module: "app"}
			content := BuildClassTest(tt.framework, class, []models.UIElementRecord{element})
			assert.Contains(t, content, tt.expected)
		})
	}
}

// Unrecognized element types and frameworks without a template variant are
// silently skipped; the construction test is always present.
func TestBuildClassTest_SkipsUnsupported(t *testing.T) {
	class := &models.ClassRecord{Module: "app", Name: "MyApp", IsGUIClass: true}
	elements := []models.UIElementRecord{
		{Name: "canvas", Type: "Canvas", Class: "MyApp", Module: "app"},
	}

	content := BuildClassTest(models.FrameworkKivy, class, elements)

	assert.Contains(t, content, "def test_my_app_init(my_app_instance):")
	assert.NotContains(t, content, "test_my_app_canvas")
	// Kivy has no title template.
	assert.NotContains(t, content, "title")
}

func TestBuildClassTest_MethodCap(t *testing.T) {
	class := &models.ClassRecord{
		Module: "app",
		Name:   "MyApp",
		Methods: []string{
			"zeta", "epsilon", "alpha", "gamma", "beta", "delta", "omega",
			"__init__", "_internal",
		},
		IsGUIClass: true,
	}

	content := BuildClassTest(models.FrameworkTkinter, class, nil)

	// First MaxMethodTests eligible methods in lexicographic order.
	for _, method := range []string{"alpha", "beta", "delta", "epsilon", "gamma"} {
		assert.Contains(t, content, fmt.Sprintf("def test_my_app_%s(", method))
	}
	assert.NotContains(t, content, "test_my_app_omega")
	assert.NotContains(t, content, "test_my_app_zeta")
	assert.Equal(t, MaxMethodTests, strings.Count(content, "assert callable(getattr("))
}

func TestBuildClassTest_NonGUIClassSkipsTitle(t *testing.T) {
	class := &models.ClassRecord{Module: "app", Name: "TaskRunnerApp", Methods: []string{"run"}}
	content := BuildClassTest(models.FrameworkTkinter, class, nil)
	assert.NotContains(t, content, "main_window.title()")
	assert.Contains(t, content, "def test_task_runner_app_init(task_runner_app_instance):")
}
