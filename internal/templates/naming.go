package templates

import (
	"regexp"
	"strings"
)

// The three-stage snake_case transform. Every generated fixture and test
// identifier goes through this, so the stages must stay in this exact order:
// collisions between generated names are only avoided because the transform
// is deterministic.
var (
	camelBoundary   = regexp.MustCompile(`(.)([A-Z][a-z]+)`)
	lowerUpperSplit = regexp.MustCompile(`([a-z0-9])([A-Z])`)
	nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// SnakeCase converts a class or attribute name to snake_case for use in
// generated identifiers: MyApp -> my_app, HTTPClient -> http_client.
func SnakeCase(text string) string {
	s := camelBoundary.ReplaceAllString(text, "${1}_${2}")
	s = lowerUpperSplit.ReplaceAllString(s, "${1}_${2}")
	s = nonAlphanumeric.ReplaceAllString(s, "_")
	return strings.ToLower(s)
}

// FixtureName returns the generated fixture identifier for a class.
func FixtureName(className string) string {
	return SnakeCase(className) + "_instance"
}

// TestFileName returns the generated test file name for a class.
func TestFileName(className string) string {
	return "test_" + SnakeCase(className) + ".py"
}
