package search

import (
	"regexp"
	"strings"
)

// nonWord matches runs of characters that are neither word characters nor
// digits. Replacing them with a single space both strips punctuation and
// collapses whitespace.
var nonWord = regexp.MustCompile(`[^a-z0-9_]+`)

// stopWords are dropped during tokenization. Short connective words add
// noise to the word indices without improving recall.
var stopWords = map[string]bool{
	"the": true, "and": true, "for": true, "with": true,
	"that": true, "this": true, "from": true, "are": true,
	"not": true, "have": true, "has": true,
}

// Normalize lowercases text, replaces punctuation with spaces, collapses
// whitespace runs, and trims. Every comparison in this package goes through
// Normalize so tokenization stays consistent across indexing and querying.
func Normalize(text string) string {
	text = strings.ToLower(text)
	text = nonWord.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// Tokenize normalizes text and splits it into significant words, dropping
// stop words and tokens of two characters or fewer.
func Tokenize(text string) []string {
	var tokens []string
	for _, w := range strings.Fields(Normalize(text)) {
		if len(w) <= 2 || stopWords[w] {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

// N-gram window bounds used for the typo-tolerant index.
const (
	ngramMin = 3
	ngramMax = 4
)

// NGrams emits every contiguous substring of length minSize through maxSize
// over the normalized text, deduplicated in first-seen order. Returns nil
// for text shorter than minSize.
func NGrams(text string, minSize, maxSize int) []string {
	norm := Normalize(text)
	if len(norm) < minSize {
		return nil
	}

	seen := make(map[string]bool)
	var grams []string
	for size := minSize; size <= maxSize; size++ {
		for i := 0; i+size <= len(norm); i++ {
			g := norm[i : i+size]
			if seen[g] {
				continue
			}
			seen[g] = true
			grams = append(grams, g)
		}
	}
	return grams
}
