package templates

import "github.com/pydesktop/pytestgen/internal/models"

// ImportBlock accumulates import lines for a generated file, preserving
// insertion order while dropping duplicates.
type ImportBlock struct {
	lines []string
	seen  map[string]bool
}

// NewImportBlock returns an empty import block.
func NewImportBlock() *ImportBlock {
	return &ImportBlock{seen: make(map[string]bool)}
}

// Add appends an import line unless it is already present.
func (b *ImportBlock) Add(lines ...string) {
	for _, line := range lines {
		if b.seen[line] {
			continue
		}
		b.seen[line] = true
		b.lines = append(b.lines, line)
	}
}

// Lines returns the accumulated import lines in insertion order.
func (b *ImportBlock) Lines() []string {
	return b.lines
}

// frameworkImports returns the framework-specific import lines for generated
// fixture files. Unknown frameworks get no extra imports.
func frameworkImports(framework models.Framework) []string {
	switch framework {
	case models.FrameworkTkinter:
		return []string{"import tkinter as tk"}
	case models.FrameworkPyQt:
		return []string{"from PyQt5 import QtWidgets", "from PyQt5.QtTest import QTest"}
	case models.FrameworkPySide:
		return []string{"from PySide2 import QtWidgets", "from PySide2.QtTest import QTest"}
	case models.FrameworkWxPython:
		return []string{"import wx"}
	case models.FrameworkKivy:
		return []string{"from kivy.app import App"}
	}
	return nil
}

// frameworkTestImports returns the framework-specific import lines for
// generated per-class test files.
func frameworkTestImports(framework models.Framework) []string {
	switch framework {
	case models.FrameworkTkinter:
		return []string{"import tkinter as tk"}
	case models.FrameworkPyQt:
		return []string{"from PyQt5.QtTest import QTest", "from PyQt5.QtCore import Qt"}
	case models.FrameworkPySide:
		return []string{"from PySide2.QtTest import QTest", "from PySide2.QtCore import Qt"}
	}
	return nil
}
