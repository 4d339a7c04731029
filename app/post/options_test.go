package post

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDeriveOptions_FirstOccurrenceOrder(t *testing.T) {
	opts := DeriveOptions(samplePosts())

	want := Options{
		Categories: []string{"Programming", "Technology", "Design"},
		Authors:    []string{"John Doe", "Jane Smith", "Mike Johnson"},
	}
	if diff := cmp.Diff(want, opts); diff != "" {
		t.Errorf("Unexpected options (-want +got):\n%s", diff)
	}
}

func TestDeriveOptions_EmptyDataset(t *testing.T) {
	opts := DeriveOptions(nil)

	if opts.Categories == nil || opts.Authors == nil {
		t.Fatalf("Expected empty non-nil option lists, got %+v", opts)
	}
	if len(opts.Categories) != 0 || len(opts.Authors) != 0 {
		t.Errorf("Expected no options, got %+v", opts)
	}
}

func TestDeriveOptions_CaseDistinctValues(t *testing.T) {
	items := []Item{
		{ID: 1, Category: "Go", Author: "ann"},
		{ID: 2, Category: "go", Author: "Ann"},
		{ID: 3, Category: "Go", Author: "ann"},
	}

	opts := DeriveOptions(items)

	if diff := cmp.Diff([]string{"Go", "go"}, opts.Categories); diff != "" {
		t.Errorf("Unexpected categories (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"ann", "Ann"}, opts.Authors); diff != "" {
		t.Errorf("Unexpected authors (-want +got):\n%s", diff)
	}
}

func TestDeriveOptions_EachValueOnce(t *testing.T) {
	items := append(samplePosts(), samplePosts()...)
	opts := DeriveOptions(items)

	seen := make(map[string]int)
	for _, c := range opts.Categories {
		seen["c:"+c]++
	}
	for _, a := range opts.Authors {
		seen["a:"+a]++
	}
	for value, count := range seen {
		if count != 1 {
			t.Errorf("Expected %s exactly once, got %d", value, count)
		}
	}
	if len(opts.Categories) != 3 || len(opts.Authors) != 3 {
		t.Errorf("Expected 3 categories and 3 authors, got %d and %d", len(opts.Categories), len(opts.Authors))
	}
}
