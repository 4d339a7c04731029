package post

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
)

// Dataset is the read-only collection of items loaded for a session.
type Dataset struct {
	items []Item
}

// NewDataset copies items so later changes to the caller's slice do not leak in.
func NewDataset(items []Item) *Dataset {
	return &Dataset{items: slices.Clone(items)}
}

// All returns every item in insertion order. The returned slice is a copy.
func (d *Dataset) All() []Item {
	if d == nil || len(d.items) == 0 {
		return []Item{}
	}
	return slices.Clone(d.items)
}

func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.items)
}

// Validate checks the invariants loaders must guarantee before a Dataset is built.
// All violations are reported, joined into a single error.
func Validate(items []Item) error {
	var errs []error
	seen := make(map[int]int, len(items))

	for i, item := range items {
		if item.ID <= 0 {
			errs = append(errs, fmt.Errorf("item at index %d: id must be positive, got %d", i, item.ID))
		} else if first, ok := seen[item.ID]; ok {
			errs = append(errs, fmt.Errorf("item at index %d: duplicate id %d (first seen at index %d)", i, item.ID, first))
		} else {
			seen[item.ID] = i
		}

		requiredFields := []struct {
			name  string
			value string
		}{
			{"title", item.Title},
			{"author", item.Author},
			{"category", item.Category},
		}
		for _, field := range requiredFields {
			if strings.TrimSpace(field.value) == "" {
				errs = append(errs, fmt.Errorf("item at index %d: %s is required", i, field.name))
			}
		}

		if item.Date != "" {
			if _, err := time.Parse(DateLayout, item.Date); err != nil {
				errs = append(errs, fmt.Errorf("item at index %d: invalid date %q", i, item.Date))
			}
		}
	}

	return errors.Join(errs...)
}
