// Package heuristics holds the compiled-in signature tables used to classify
// imports, base classes, and constructor assignments in analyzed projects.
// Matching is deliberately loose: a missed widget costs one generated test, a
// crash costs the whole run.
package heuristics

import (
	"strings"

	"github.com/pydesktop/pytestgen/internal/models"
)

// frameworkPriority is the canonical order in which framework signature
// tables are consulted. Detection is first-match-wins in this order, which
// keeps results stable regardless of file traversal order.
var frameworkPriority = []models.Framework{
	models.FrameworkTkinter,
	models.FrameworkPyQt,
	models.FrameworkWxPython,
	models.FrameworkKivy,
	models.FrameworkPySide,
}

// frameworkSignatures maps each framework to name substrings that identify it
// in import statements and base-class lists.
var frameworkSignatures = map[models.Framework][]string{
	models.FrameworkTkinter:  {"tkinter", "tk", "Tk", "Frame", "Label", "Button", "Entry"},
	models.FrameworkPyQt:     {"PyQt", "QApplication", "QMainWindow", "QWidget", "QPushButton"},
	models.FrameworkWxPython: {"wx", "wxPython", "App", "Frame", "Panel", "Button"},
	models.FrameworkKivy:     {"kivy", "App", "Widget", "Label", "Button"},
	models.FrameworkPySide:   {"PySide", "QApplication", "QMainWindow", "QWidget"},
}

// widgetTypes maps each framework to the widget constructor names recognized
// as UI elements when assigned to self attributes in a constructor.
var widgetTypes = map[models.Framework][]string{
	models.FrameworkTkinter: {
		"Button", "Label", "Entry", "Text", "Frame", "Canvas", "Listbox",
		"Menubutton", "Menu", "Radiobutton", "Checkbutton", "Scale",
		"Scrollbar", "Spinbox", "Combobox",
	},
	models.FrameworkPyQt: {
		"QPushButton", "QLabel", "QLineEdit", "QTextEdit", "QFrame", "QWidget",
		"QListWidget", "QMenuBar", "QMenu", "QRadioButton", "QCheckBox",
		"QSlider", "QScrollBar", "QSpinBox", "QComboBox",
	},
	models.FrameworkWxPython: {
		"Button", "StaticText", "TextCtrl", "Panel", "Frame", "ListBox",
		"MenuBar", "Menu", "RadioButton", "CheckBox", "Slider", "ScrollBar",
		"SpinCtrl", "ComboBox",
	},
	models.FrameworkKivy: {
		"Button", "Label", "TextInput", "Widget", "BoxLayout", "GridLayout",
		"ListView", "Spinner", "CheckBox", "Slider", "ScrollView",
	},
	models.FrameworkPySide: {
		"QPushButton", "QLabel", "QLineEdit", "QTextEdit", "QFrame", "QWidget",
		"QListWidget", "QMenuBar", "QMenu", "QRadioButton", "QCheckBox",
		"QSlider", "QScrollBar", "QSpinBox", "QComboBox",
	},
}

// appNameFragments are class-name substrings that suggest an application or
// main-window class.
var appNameFragments = []string{
	"App", "Application", "MainWindow", "Window", "GUI", "Interface",
}

// entryPointMethods are method names that suggest a class is the application
// entry point.
var entryPointMethods = map[string]bool{
	"run":      true,
	"start":    true,
	"main":     true,
	"mainloop": true,
	"exec":     true,
	"exec_":    true,
	"show":     true,
}

// lifecycleMethods are dunder methods excluded from method smoke tests in
// addition to the leading-underscore rule.
var lifecycleMethods = map[string]bool{
	"__init__": true, "__del__": true, "__enter__": true, "__exit__": true,
	"__repr__": true, "__str__": true, "__len__": true, "__iter__": true,
	"__getitem__": true, "__setitem__": true, "__delitem__": true,
}

// MatchFramework checks an import or base-class name against every signature
// table in canonical priority order and returns the first framework whose
// signature appears as a substring. Returns FrameworkNone when nothing
// matches.
func MatchFramework(name string) models.Framework {
	for _, framework := range frameworkPriority {
		for _, signature := range frameworkSignatures[framework] {
			if strings.Contains(name, signature) {
				return framework
			}
		}
	}
	return models.FrameworkNone
}

// IsWidgetType reports whether a constructor type name is a recognized widget
// for any framework. The name must equal a table entry exactly or end with
// "." plus an entry; bare substring matches are rejected.
//
// All tables are consulted regardless of the detected framework. A
// user-defined class that happens to be called Frame is a tolerated false
// positive.
func IsWidgetType(typeName string) bool {
	for _, framework := range frameworkPriority {
		for _, widget := range widgetTypes[framework] {
			if typeName == widget || strings.HasSuffix(typeName, "."+widget) {
				return true
			}
		}
	}
	return false
}

// LooksLikeAppName reports whether a class name contains any of the
// application-like name fragments.
func LooksLikeAppName(className string) bool {
	for _, fragment := range appNameFragments {
		if strings.Contains(className, fragment) {
			return true
		}
	}
	return false
}

// IsEntryPointMethod reports whether a method name is a conventional
// application entry point (run, mainloop, exec, ...).
func IsEntryPointMethod(name string) bool {
	return entryPointMethods[name]
}

// IsTestableMethod reports whether a method is eligible for a generated
// method-existence test: public and not a lifecycle dunder.
func IsTestableMethod(name string) bool {
	if strings.HasPrefix(name, "_") {
		return false
	}
	return !lifecycleMethods[name]
}
