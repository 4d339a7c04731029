package post

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDataset_AllPreservesOrder(t *testing.T) {
	dataset := NewDataset(samplePosts())

	if dataset.Len() != 4 {
		t.Errorf("Expected 4 items, got %d", dataset.Len())
	}
	if diff := cmp.Diff(samplePosts(), dataset.All()); diff != "" {
		t.Errorf("Unexpected items (-want +got):\n%s", diff)
	}
}

func TestDataset_IsImmutable(t *testing.T) {
	source := samplePosts()
	dataset := NewDataset(source)

	source[0].Title = "changed by caller"
	all := dataset.All()
	all[1].Author = "changed through All"

	again := dataset.All()
	if again[0].Title != "Introduction to React Hooks" {
		t.Errorf("Dataset changed through the source slice: %q", again[0].Title)
	}
	if again[1].Author != "Jane Smith" {
		t.Errorf("Dataset changed through All(): %q", again[1].Author)
	}
}

func TestDataset_Empty(t *testing.T) {
	var nilDataset *Dataset
	if nilDataset.Len() != 0 {
		t.Errorf("Expected nil dataset to be empty")
	}
	if all := NewDataset(nil).All(); all == nil || len(all) != 0 {
		t.Errorf("Expected empty non-nil slice, got %v", all)
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(samplePosts()); err != nil {
		t.Fatalf("Expected sample posts to be valid, got: %v", err)
	}
	if err := Validate(nil); err != nil {
		t.Errorf("Expected empty dataset to be valid, got: %v", err)
	}

	items := []Item{
		{ID: 1, Title: "A", Author: "x", Category: "c"},
		{ID: 1, Title: "B", Author: "x", Category: "c"},
		{ID: 0, Title: "C", Author: "x", Category: "c"},
		{ID: 4, Title: " ", Author: "", Category: "c", Date: "15/01/2024"},
	}

	err := Validate(items)
	if err == nil {
		t.Fatal("Expected validation error")
	}

	for _, want := range []string{
		"index 1: duplicate id 1",
		"index 2: id must be positive",
		"index 3: title is required",
		"index 3: author is required",
		"index 3: invalid date",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Expected error to contain %q, got: %v", want, err)
		}
	}
}

func TestItem_PublishedAt(t *testing.T) {
	item := Item{Date: "2024-02-20"}
	if got := item.PublishedAt(); got.Year() != 2024 || got.Month() != 2 || got.Day() != 20 {
		t.Errorf("Expected 2024-02-20, got %v", got)
	}
	if !(Item{Date: "soon"}).PublishedAt().IsZero() {
		t.Errorf("Expected zero time for malformed date")
	}
}

func TestCriteria_ActiveAndReset(t *testing.T) {
	if (Criteria{}).Active() {
		t.Error("Empty criteria should not be active")
	}

	for _, c := range []Criteria{{SearchTerm: " "}, {Category: "Design"}, {Author: "Jane Smith"}} {
		if !c.Active() {
			t.Errorf("Expected %+v to be active", c)
		}
		if c.Reset().Active() {
			t.Errorf("Expected reset of %+v to be inactive", c)
		}
	}
}
