package models

import (
	"fmt"
	"strings"
)

// Framework identifies a desktop GUI toolkit detected in an analyzed project.
type Framework string

const (
	FrameworkTkinter  Framework = "tkinter"
	FrameworkPyQt     Framework = "pyqt"
	FrameworkPySide   Framework = "pyside"
	FrameworkWxPython Framework = "wxpython"
	FrameworkKivy     Framework = "kivy"

	// FrameworkNone means no known toolkit was detected. Generation still
	// produces construction tests for flagged classes.
	FrameworkNone Framework = ""
)

// Detected reports whether a framework was identified.
func (f Framework) Detected() bool {
	return f != FrameworkNone
}

// String returns the framework identifier, or "none" when undetected.
func (f Framework) String() string {
	if f == FrameworkNone {
		return "none"
	}
	return string(f)
}

// QtFamily reports whether the framework uses the Qt widget API. PyQt and
// PySide share test templates and differ only in import lines.
func (f Framework) QtFamily() bool {
	return f == FrameworkPyQt || f == FrameworkPySide
}

// ParseFramework maps a user-supplied framework name (config file or flag) to
// a Framework. Common aliases are accepted; an empty name means no override.
func ParseFramework(name string) (Framework, error) {
	switch strings.ToLower(name) {
	case "":
		return FrameworkNone, nil
	case "tkinter", "tk":
		return FrameworkTkinter, nil
	case "pyqt", "pyqt5":
		return FrameworkPyQt, nil
	case "pyside", "pyside2":
		return FrameworkPySide, nil
	case "wx", "wxpython":
		return FrameworkWxPython, nil
	case "kivy":
		return FrameworkKivy, nil
	}
	return FrameworkNone, fmt.Errorf("unknown GUI framework %q", name)
}
