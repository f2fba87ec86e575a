package search

import (
	"reflect"
	"sort"
	"testing"

	"github.com/utilsearch/utilsearch/internal/catalog"
)

func testCatalog() []catalog.Tool {
	return []catalog.Tool{
		{
			ID:          "json-formatter",
			Name:        "JSON Formatter",
			Description: "Format, validate, and minify JSON documents",
			Category:    catalog.CategoryDeveloper,
			Keywords:    []string{"json", "format", "validate", "pretty print"},
			Featured:    true,
		},
		{
			ID:          "base64-encoder",
			Name:        "Base64 Encoder",
			Description: "Encode and decode Base64 strings",
			Category:    catalog.CategoryConverter,
			Keywords:    []string{"base64", "encode", "decode"},
		},
		{
			ID:          "unit-converter",
			Name:        "Unit Converter",
			Description: "Convert between metric and imperial units",
			Category:    catalog.CategoryConverter,
			Keywords:    []string{"units", "metric", "imperial"},
		},
		{
			ID:          "word-counter",
			Name:        "Word Counter",
			Description: "Count words and characters in text",
			Category:    catalog.CategoryText,
			Keywords:    []string{"count", "words"},
		},
		{
			ID:          "password-generator",
			Name:        "Password Generator",
			Description: "Generate strong random passwords",
			Category:    catalog.CategorySecurity,
			Keywords:    []string{"password", "random", "security"},
			Featured:    true,
		},
	}
}

func TestBuildIndex(t *testing.T) {
	idx := buildIndex(testCatalog())

	if idx.Size() != 5 {
		t.Fatalf("Size() = %d, want 5", idx.Size())
	}

	if !idx.nameWords["json"]["json-formatter"] {
		t.Error("nameWords[json] missing json-formatter")
	}
	if !idx.descWords["decode"]["base64-encoder"] {
		t.Error("descWords[decode] missing base64-encoder")
	}
	if len(idx.categoryIndex[catalog.CategoryConverter]) != 2 {
		t.Errorf("converter category has %d tools, want 2", len(idx.categoryIndex[catalog.CategoryConverter]))
	}
}

func TestBuildIndexKeywordSubWords(t *testing.T) {
	idx := buildIndex(testCatalog())

	// The full multi-word keyword and its sub-words are all indexed.
	for _, kw := range []string{"pretty print", "pretty", "print"} {
		if !idx.keywordIndex[kw]["json-formatter"] {
			t.Errorf("keywordIndex[%q] missing json-formatter", kw)
		}
	}
}

func TestBuildIndexNGramSources(t *testing.T) {
	idx := buildIndex(testCatalog())

	// Name and keyword grams are indexed.
	if !idx.ngramIndex["json"]["json-formatter"] {
		t.Error("ngramIndex[json] missing json-formatter")
	}
	if !idx.ngramIndex["prin"]["json-formatter"] {
		t.Error("keyword gram prin missing json-formatter")
	}
	// Description-only terms contribute no grams.
	if len(idx.ngramIndex["docu"]) != 0 {
		t.Error("description gram docu should not be indexed")
	}
}

func TestIndexCategories(t *testing.T) {
	idx := buildIndex(testCatalog())

	want := []catalog.Category{
		catalog.CategoryDeveloper,
		catalog.CategoryConverter,
		catalog.CategoryText,
		catalog.CategorySecurity,
	}
	if got := idx.Categories(); !reflect.DeepEqual(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
}

func TestSortedIDs(t *testing.T) {
	idx := buildIndex(testCatalog())
	ids := idx.sortedIDs()

	if len(ids) != 5 {
		t.Fatalf("got %d ids, want 5", len(ids))
	}
	if !sort.StringsAreSorted(ids) {
		t.Errorf("ids not sorted: %v", ids)
	}
}

func TestBuildIndexEmpty(t *testing.T) {
	idx := buildIndex(nil)
	if idx.Size() != 0 {
		t.Errorf("Size() = %d, want 0", idx.Size())
	}
	if got := idx.Categories(); got != nil {
		t.Errorf("Categories() = %v, want nil", got)
	}
}
