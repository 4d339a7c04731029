package post

import (
	"fmt"
	"strings"
)

type Filterer struct{}

func NewFilterer() *Filterer {
	return &Filterer{}
}

// Run returns the items that satisfy every active constraint in criteria,
// in input order. It never returns nil.
func (f *Filterer) Run(items []Item, criteria Criteria) []Item {
	term := strings.ToLower(criteria.SearchTerm)

	filtered := make([]Item, 0, len(items))
	for _, item := range items {
		if f.rejectReason(item, term, criteria) == "" {
			filtered = append(filtered, item)
		}
	}

	return filtered
}

// Explain returns why item is excluded by criteria, or "" if it passes.
func (f *Filterer) Explain(item Item, criteria Criteria) string {
	return f.rejectReason(item, strings.ToLower(criteria.SearchTerm), criteria)
}

// rejectReason expects term to be lowercased already.
func (f *Filterer) rejectReason(item Item, term string, criteria Criteria) string {
	if term != "" && !f.containsFolded(item.Title, term) && !f.containsFolded(item.Content, term) {
		return fmt.Sprintf("Excluded by search: title and content do not contain '%s'", criteria.SearchTerm)
	}

	if criteria.Category != "" && item.Category != criteria.Category {
		return fmt.Sprintf("Excluded by category filter: '%s' is not '%s'", item.Category, criteria.Category)
	}

	if criteria.Author != "" && item.Author != criteria.Author {
		return fmt.Sprintf("Excluded by author filter: '%s' is not '%s'", item.Author, criteria.Author)
	}

	return ""
}

func (f *Filterer) containsFolded(value, term string) bool {
	return strings.Contains(strings.ToLower(value), term)
}

// Filter is shorthand for NewFilterer().Run(items, criteria).
func Filter(items []Item, criteria Criteria) []Item {
	return NewFilterer().Run(items, criteria)
}
