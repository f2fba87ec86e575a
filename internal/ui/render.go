package ui

import (
	"fmt"
	"strings"

	"github.com/utilsearch/utilsearch/internal/catalog"
	"github.com/utilsearch/utilsearch/internal/search"
)

// RenderResults formats ranked search results for terminal display.
func RenderResults(results []search.Result) string {
	if len(results) == 0 {
		return styleMuted.Render("No results found.") + "\n"
	}

	var b strings.Builder
	for i, r := range results {
		featured := ""
		if r.Tool.Featured {
			featured = " " + styleFeatured.Render(symbolFeatured)
		}
		fmt.Fprintf(&b, "%2d. %s %s%s\n", i+1,
			styleName.Render(r.Tool.Name),
			styleID.Render("("+r.Tool.ID+")"),
			featured)
		fmt.Fprintf(&b, "    %s\n", r.Tool.Description)
		fmt.Fprintf(&b, "    %s %s  %s %s  %s %s\n",
			styleMuted.Render("category:"), styleCategory.Render(string(r.Tool.Category)),
			styleMuted.Render("score:"), styleScore.Render(fmt.Sprintf("%.3f", r.Score)),
			styleMuted.Render("matched:"), strings.Join(r.MatchedFields, ","))
	}
	return b.String()
}

// RenderSuggestions formats typed suggestions one per line.
func RenderSuggestions(suggestions []search.Suggestion) string {
	if len(suggestions) == 0 {
		return styleMuted.Render("No suggestions.") + "\n"
	}

	var b strings.Builder
	for _, s := range suggestions {
		label := styleCategory.Render(fmt.Sprintf("%-8s", string(s.Type)))
		text := s.Text
		if s.Type == search.SuggestionUtility {
			text = styleName.Render(text)
		}
		fmt.Fprintf(&b, "%s %s %s\n", symbolBullet, label, text)
	}
	return b.String()
}

// RenderTools formats plain tool lists (recents, favorites).
func RenderTools(tools []catalog.Tool) string {
	if len(tools) == 0 {
		return styleMuted.Render("Empty.") + "\n"
	}

	var b strings.Builder
	for _, t := range tools {
		fmt.Fprintf(&b, "%s %s %s\n", symbolBullet,
			styleName.Render(t.Name),
			styleID.Render("("+t.ID+")"))
	}
	return b.String()
}
