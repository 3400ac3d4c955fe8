package models

import "sort"

// ModuleRecord describes one analyzed Python source file.
type ModuleRecord struct {
	Name      string   // dotted module name derived from the relative path
	Path      string   // absolute path to the source file
	Imports   []string // import names in declaration order
	Classes   []string // declared class names in declaration order
	Functions []string // declared top-level function names in declaration order
}

// ClassRecord describes one class declaration found in the project.
// Records are keyed in AnalysisResult.Classes by "<module>.<name>".
type ClassRecord struct {
	Module      string
	Name        string
	Docstring   string
	Methods     []string
	BaseClasses []string // base names as written, unresolved
	IsGUIClass  bool     // a base name matched a framework signature
	IsAppClass  bool     // set during the final classification pass
	UIElements  []UIElementRecord
	FilePath    string
	LineNumber  int
}

// Key returns the class's lookup key in AnalysisResult.Classes.
func (c *ClassRecord) Key() string {
	return c.Module + "." + c.Name
}

// HasMethod reports whether the class declares the named method.
func (c *ClassRecord) HasMethod(name string) bool {
	for _, m := range c.Methods {
		if m == name {
			return true
		}
	}
	return false
}

// FunctionRecord describes one top-level function declaration.
type FunctionRecord struct {
	Module     string
	Name       string
	Docstring  string
	Args       []string // positional parameter names only
	FilePath   string
	LineNumber int
}

// UIElementRecord describes a widget-like attribute assignment found inside a
// class constructor: self.<Name> = <Type>(...). Keyed globally by
// "<module>.<class>.<name>".
type UIElementRecord struct {
	Name   string // attribute name on self
	Type   string // constructor type as written, possibly dotted
	Class  string // owning class name
	Module string // owning module name
}

// BaseType returns the trailing segment of a dotted element type, which is
// what the per-element test dispatch keys on.
func (e UIElementRecord) BaseType() string {
	for i := len(e.Type) - 1; i >= 0; i-- {
		if e.Type[i] == '.' {
			return e.Type[i+1:]
		}
	}
	return e.Type
}

// AnalysisResult is the aggregate inventory built by a single analyzer run.
// It is not mutated after Analyze returns.
type AnalysisResult struct {
	ProjectPath  string
	GUIFramework Framework
	Modules      map[string]*ModuleRecord
	Classes      map[string]*ClassRecord
	Functions    map[string]*FunctionRecord
	UIElements   map[string]UIElementRecord
}

// NewAnalysisResult returns a result with all inventory maps allocated, so a
// run that parses zero files still yields a structurally complete value.
func NewAnalysisResult(projectPath string) *AnalysisResult {
	return &AnalysisResult{
		ProjectPath: projectPath,
		Modules:     make(map[string]*ModuleRecord),
		Classes:     make(map[string]*ClassRecord),
		Functions:   make(map[string]*FunctionRecord),
		UIElements:  make(map[string]UIElementRecord),
	}
}

// AppClasses returns every class flagged as an app or GUI class, sorted by
// key so generation order is deterministic.
func (r *AnalysisResult) AppClasses() []*ClassRecord {
	var classes []*ClassRecord
	for _, class := range r.Classes {
		if class.IsAppClass || class.IsGUIClass {
			classes = append(classes, class)
		}
	}
	sort.Slice(classes, func(i, j int) bool {
		return classes[i].Key() < classes[j].Key()
	})
	return classes
}

// ElementsFor returns the UI elements recorded against the given class, in
// deterministic (key-sorted) order.
func (r *AnalysisResult) ElementsFor(class *ClassRecord) []UIElementRecord {
	keys := make([]string, 0, len(r.UIElements))
	for key, element := range r.UIElements {
		if element.Class == class.Name && element.Module == class.Module {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	elements := make([]UIElementRecord, 0, len(keys))
	for _, key := range keys {
		elements = append(elements, r.UIElements[key])
	}
	return elements
}

// GeneratedTestSet maps an output file path to generated test source text.
// A fresh set is produced on every GenerateTests call.
type GeneratedTestSet map[string]string

// Paths returns the output file paths in sorted order.
func (s GeneratedTestSet) Paths() []string {
	paths := make([]string, 0, len(s))
	for path := range s {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}
