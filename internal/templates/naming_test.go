package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnakeCase(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple camel case", input: "MyApp", expected: "my_app"},
		{name: "single word", input: "App", expected: "app"},
		{name: "already lowercase", input: "widget", expected: "widget"},
		{name: "acronym prefix", input: "HTTPClient", expected: "http_client"},
		{name: "trailing acronym", input: "ParserXML", expected: "parser_xml"},
		{name: "digits", input: "Widget2Panel", expected: "widget2_panel"},
		{name: "multiple humps", input: "MainWindowController", expected: "main_window_controller"},
		{name: "non alphanumeric characters", input: "my-widget.name", expected: "my_widget_name"},
		{name: "empty", input: "", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SnakeCase(tt.input))
		})
	}
}

// The transform must be deterministic: generated fixture and test identifiers
// collide across runs only if SnakeCase drifts.
func TestSnakeCase_Deterministic(t *testing.T) {
	inputs := []string{"MyApp", "HTTPClient", "mainWindow", "A"}
	for _, input := range inputs {
		first := SnakeCase(input)
		for i := 0; i < 10; i++ {
			assert.Equal(t, first, SnakeCase(input))
		}
	}
}

func TestFixtureName(t *testing.T) {
	assert.Equal(t, "my_app_instance", FixtureName("MyApp"))
	assert.Equal(t, "main_window_instance", FixtureName("MainWindow"))
}

func TestTestFileName(t *testing.T) {
	assert.Equal(t, "test_my_app.py", TestFileName("MyApp"))
	assert.Equal(t, "test_calculator_gui.py", TestFileName("CalculatorGUI"))
}
