package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/lysyi3m/blog-search/app/post"
)

// printResults writes each item with its metadata line and preview, followed by the summary.
func printResults(w io.Writer, items []post.Item, previewLength int) {
	if len(items) == 0 {
		fmt.Fprintln(w, post.NoResultsMessage)
	}

	for _, item := range items {
		fmt.Fprintf(w, "[%d] %s\n", item.ID, item.Title)
		fmt.Fprintf(w, "    %s\n", metaLine(item))
		fmt.Fprintf(w, "    %s\n\n", post.Preview(item.Content, previewLength))
	}

	fmt.Fprintln(w, post.Summary(len(items)))
}

func metaLine(item post.Item) string {
	parts := make([]string, 0, 3)
	for _, value := range []string{item.Author, item.Category, item.Date} {
		if value != "" {
			parts = append(parts, value)
		}
	}
	return strings.Join(parts, " | ")
}

func printOptions(w io.Writer, options post.Options) {
	fmt.Fprintln(w, "Categories:")
	for _, category := range options.Categories {
		fmt.Fprintf(w, "  %s\n", category)
	}

	fmt.Fprintln(w, "Authors:")
	for _, author := range options.Authors {
		fmt.Fprintf(w, "  %s\n", author)
	}
}

func describeCriteria(criteria post.Criteria) string {
	if !criteria.Active() {
		return "no filters"
	}

	var parts []string
	if criteria.SearchTerm != "" {
		parts = append(parts, fmt.Sprintf("search=%q", criteria.SearchTerm))
	}
	if criteria.Category != "" {
		parts = append(parts, fmt.Sprintf("category=%q", criteria.Category))
	}
	if criteria.Author != "" {
		parts = append(parts, fmt.Sprintf("author=%q", criteria.Author))
	}
	return strings.Join(parts, " ")
}
