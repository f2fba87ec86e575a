/*
Package catalog defines the static collection of utility tool records that
the search engine indexes.

A catalog is loaded once at startup, either from the built-in set or from a
JSON file, and is never mutated at runtime. The engine receives a fresh copy
via UpdateCatalog when the host wants to swap it.
*/
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// Category classifies a tool record.
type Category string

// Known categories.
const (
	CategoryDeveloper  Category = "developer"
	CategoryConverter  Category = "converter"
	CategoryCalculator Category = "calculator"
	CategoryText       Category = "text"
	CategoryDesign     Category = "design"
	CategorySecurity   Category = "security"
)

// Categories lists every known category in display order.
var Categories = []Category{
	CategoryDeveloper,
	CategoryConverter,
	CategoryCalculator,
	CategoryText,
	CategoryDesign,
	CategorySecurity,
}

// Tool is a single immutable catalog record.
type Tool struct {
	// ID uniquely identifies the tool (e.g., "json-formatter").
	ID string `json:"id"`

	// Name is the display name (e.g., "JSON Formatter").
	Name string `json:"name"`

	// Description is a short human-readable summary.
	Description string `json:"description"`

	// Category groups the tool for browsing and suggestions.
	Category Category `json:"category"`

	// Keywords are additional search terms, possibly multi-word.
	Keywords []string `json:"keywords,omitempty"`

	// Featured marks tools promoted in ranking and suggestion backfill.
	Featured bool `json:"featured,omitempty"`
}

// Validate checks a slice of tools for structural problems: empty or
// duplicate ids, empty names, and unknown categories.
func Validate(tools []Tool) error {
	known := make(map[Category]bool, len(Categories))
	for _, c := range Categories {
		known[c] = true
	}

	seen := make(map[string]bool, len(tools))
	for i, t := range tools {
		if t.ID == "" {
			return fmt.Errorf("tool %d: missing id", i)
		}
		if seen[t.ID] {
			return fmt.Errorf("duplicate tool id: %s", t.ID)
		}
		seen[t.ID] = true

		if t.Name == "" {
			return fmt.Errorf("tool %s: missing name", t.ID)
		}
		if t.Category != "" && !known[t.Category] {
			return fmt.Errorf("tool %s: unknown category %q", t.ID, t.Category)
		}
	}
	return nil
}

// LoadFrom reads and validates a catalog from a JSON file. The file contains
// a top-level array of tool records.
func LoadFrom(path string) ([]Tool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("catalog file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}

	var tools []Tool
	if err := json.Unmarshal(data, &tools); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	if err := Validate(tools); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	return tools, nil
}
