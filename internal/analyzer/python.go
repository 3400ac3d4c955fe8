package analyzer

import (
	"context"
	"fmt"
	"os"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/pydesktop/pytestgen/internal/heuristics"
	"github.com/pydesktop/pytestgen/internal/models"
	"github.com/pydesktop/pytestgen/internal/utils"
)

// analyzeFile parses one source file and folds its declarations into the
// inventory. A new tree-sitter parser is created per call; parser instances
// are not reusable across goroutines.
func (a *ProjectAnalyzer) analyzeFile(ctx context.Context, file string, result *models.AnalysisResult, detection *frameworkDetection) error {
	content, err := os.ReadFile(file)
	if err != nil {
		return utils.WrapLoadError(file, err)
	}

	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())
	tree, err := parser.ParseCtx(ctx, nil, content)
	if err != nil {
		return utils.WrapParseError(file, err)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return fmt.Errorf("parser returned no syntax tree for %s", file)
	}
	// Tree-sitter is error-tolerant, but a file that does not parse cleanly
	// is excluded the same way a hard parse failure would be.
	if root.HasError() {
		return fmt.Errorf("source contains syntax errors: %s", file)
	}

	moduleName := a.moduleName(file)
	module := &models.ModuleRecord{
		Name: moduleName,
		Path: file,
	}
	result.Modules[moduleName] = module

	// Only immediate children are classified here; class and constructor
	// bodies get their own, deeper walks.
	for i := 0; i < int(root.ChildCount()); i++ {
		child := root.Child(i)
		switch child.Type() {
		case "import_statement":
			for _, name := range importedModules(child, content) {
				module.Imports = append(module.Imports, name)
				detection.observe(name)
			}
		case "import_from_statement":
			if name := fromImportModule(child, content); name != "" {
				module.Imports = append(module.Imports, name)
				detection.observe(name)
			}
		case "class_definition":
			a.analyzeClass(child, content, module, file, result, detection)
		case "function_definition":
			a.analyzeFunction(child, content, module, file, result)
		case "decorated_definition":
			for j := 0; j < int(child.ChildCount()); j++ {
				inner := child.Child(j)
				switch inner.Type() {
				case "class_definition":
					a.analyzeClass(inner, content, module, file, result, detection)
				case "function_definition":
					a.analyzeFunction(inner, content, module, file, result)
				}
			}
		}
	}

	return nil
}

// importedModules extracts the module paths from an "import a.b, c as d"
// statement.
func importedModules(node *sitter.Node, content []byte) []string {
	var names []string
	for i := 0; i < int(node.ChildCount()); i++ {
		child := node.Child(i)
		switch child.Type() {
		case "dotted_name":
			names = append(names, text(child, content))
		case "aliased_import":
			if name := child.ChildByFieldName("name"); name != nil {
				names = append(names, text(name, content))
			}
		}
	}
	return names
}

// fromImportModule extracts the source module of a "from x import y"
// statement. Bare relative imports ("from . import x") have no module name
// and yield "".
func fromImportModule(node *sitter.Node, content []byte) string {
	module := node.ChildByFieldName("module_name")
	if module == nil {
		return ""
	}
	switch module.Type() {
	case "dotted_name":
		return text(module, content)
	case "relative_import":
		for i := 0; i < int(module.ChildCount()); i++ {
			if child := module.Child(i); child.Type() == "dotted_name" {
				return text(child, content)
			}
		}
	}
	return ""
}

// analyzeClass records a class declaration: bases, methods, docstring, and
// any UI elements assigned to self inside the constructor.
func (a *ProjectAnalyzer) analyzeClass(node *sitter.Node, content []byte, module *models.ModuleRecord, file string, result *models.AnalysisResult, detection *frameworkDetection) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	className := text(nameNode, content)

	class := &models.ClassRecord{
		Module:     module.Name,
		Name:       className,
		FilePath:   file,
		LineNumber: int(node.StartPoint().Row + 1),
	}

	// Base classes as written: bare identifiers and dotted names like tk.Tk.
	// Subscripted generics and keyword arguments are not modeled.
	if superclasses := node.ChildByFieldName("superclasses"); superclasses != nil {
		for i := 0; i < int(superclasses.ChildCount()); i++ {
			arg := superclasses.Child(i)
			if arg.Type() != "identifier" && arg.Type() != "attribute" {
				continue
			}
			baseName := text(arg, content)
			class.BaseClasses = append(class.BaseClasses, baseName)
			if heuristics.MatchFramework(baseName).Detected() {
				class.IsGUIClass = true
				detection.observe(baseName)
			}
		}
	}

	if body := node.ChildByFieldName("body"); body != nil {
		class.Docstring = docstring(body, content)
		for i := 0; i < int(body.ChildCount()); i++ {
			method := body.Child(i)
			if method.Type() == "decorated_definition" {
				for j := 0; j < int(method.ChildCount()); j++ {
					if inner := method.Child(j); inner.Type() == "function_definition" {
						method = inner
						break
					}
				}
			}
			if method.Type() != "function_definition" {
				continue
			}
			methodName := text(method.ChildByFieldName("name"), content)
			class.Methods = append(class.Methods, methodName)
			if methodName == "__init__" {
				a.extractUIElements(method, content, class, result)
			}
		}
	}

	result.Classes[class.Key()] = class
	module.Classes = append(module.Classes, className)
}

// extractUIElements scans a constructor's full subtree for assignments of
// the shape self.<attr> = Type(...) or self.<attr> = mod.Type(...). A record
// is kept only when the constructor name matches a widget table entry.
func (a *ProjectAnalyzer) extractUIElements(initMethod *sitter.Node, content []byte, class *models.ClassRecord, result *models.AnalysisResult) {
	var walk func(node *sitter.Node)
	walk = func(node *sitter.Node) {
		if node == nil {
			return
		}
		if node.Type() == "assignment" {
			if element, ok := uiElementFromAssignment(node, content, class); ok {
				class.UIElements = append(class.UIElements, element)
				key := element.Module + "." + element.Class + "." + element.Name
				result.UIElements[key] = element
			}
		}
		for i := 0; i < int(node.ChildCount()); i++ {
			walk(node.Child(i))
		}
	}
	walk(initMethod)
}

// uiElementFromAssignment classifies a single assignment node, returning a
// record when both the target shape and the constructor name match.
func uiElementFromAssignment(node *sitter.Node, content []byte, class *models.ClassRecord) (models.UIElementRecord, bool) {
	left := node.ChildByFieldName("left")
	right := node.ChildByFieldName("right")
	if left == nil || right == nil {
		return models.UIElementRecord{}, false
	}
	if left.Type() != "attribute" || right.Type() != "call" {
		return models.UIElementRecord{}, false
	}

	object := left.ChildByFieldName("object")
	attr := left.ChildByFieldName("attribute")
	if object == nil || attr == nil || object.Type() != "identifier" || text(object, content) != "self" {
		return models.UIElementRecord{}, false
	}

	callee := right.ChildByFieldName("function")
	if callee == nil {
		return models.UIElementRecord{}, false
	}

	var elementType string
	switch callee.Type() {
	case "identifier":
		// Direct instantiation: self.button = Button(...)
		name := text(callee, content)
		if !heuristics.IsWidgetType(name) {
			return models.UIElementRecord{}, false
		}
		elementType = name
	case "attribute":
		// Dotted instantiation: self.button = tk.Button(...)
		calleeObject := callee.ChildByFieldName("object")
		calleeAttr := callee.ChildByFieldName("attribute")
		if calleeObject == nil || calleeAttr == nil || calleeObject.Type() != "identifier" {
			return models.UIElementRecord{}, false
		}
		if !heuristics.IsWidgetType(text(calleeAttr, content)) {
			return models.UIElementRecord{}, false
		}
		elementType = text(calleeObject, content) + "." + text(calleeAttr, content)
	default:
		return models.UIElementRecord{}, false
	}

	return models.UIElementRecord{
		Name:   text(attr, content),
		Type:   elementType,
		Class:  class.Name,
		Module: class.Module,
	}, true
}

// analyzeFunction records a top-level function's docstring and positional
// parameter names. Varargs, kwargs, and default values are not modeled.
func (a *ProjectAnalyzer) analyzeFunction(node *sitter.Node, content []byte, module *models.ModuleRecord, file string, result *models.AnalysisResult) {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return
	}
	functionName := text(nameNode, content)

	function := &models.FunctionRecord{
		Module:     module.Name,
		Name:       functionName,
		FilePath:   file,
		LineNumber: int(node.StartPoint().Row + 1),
	}

	if params := node.ChildByFieldName("parameters"); params != nil {
		for i := 0; i < int(params.ChildCount()); i++ {
			param := params.Child(i)
			switch param.Type() {
			case "identifier":
				function.Args = append(function.Args, text(param, content))
			case "typed_parameter":
				for j := 0; j < int(param.ChildCount()); j++ {
					if inner := param.Child(j); inner.Type() == "identifier" {
						function.Args = append(function.Args, text(inner, content))
						break
					}
				}
			case "default_parameter", "typed_default_parameter":
				if name := param.ChildByFieldName("name"); name != nil && name.Type() == "identifier" {
					function.Args = append(function.Args, text(name, content))
				}
			}
		}
	}

	if body := node.ChildByFieldName("body"); body != nil {
		function.Docstring = docstring(body, content)
	}

	result.Functions[module.Name+"."+functionName] = function
	module.Functions = append(module.Functions, functionName)
}

// docstring returns the leading string literal of a block, unquoted, or "".
func docstring(block *sitter.Node, content []byte) string {
	if block.ChildCount() == 0 {
		return ""
	}
	first := block.Child(0)
	if first.Type() != "expression_statement" || first.ChildCount() == 0 {
		return ""
	}
	str := first.Child(0)
	if str.Type() != "string" {
		return ""
	}
	return strings.Trim(text(str, content), "\"'")
}

func text(node *sitter.Node, content []byte) string {
	if node == nil {
		return ""
	}
	return string(content[node.StartByte():node.EndByte()])
}
