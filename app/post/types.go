package post

import (
	"time"
)

// DateLayout is the ISO-8601 calendar date format used for Item.Date.
const DateLayout = "2006-01-02"

type Item struct {
	ID       int    `yaml:"id" json:"id"`
	Title    string `yaml:"title" json:"title"`
	Content  string `yaml:"content" json:"content"`
	Author   string `yaml:"author" json:"author"`
	Category string `yaml:"category" json:"category"`
	Date     string `yaml:"date" json:"date"` // YYYY-MM-DD, display only
}

// PublishedAt parses Date. A zero time is returned for an empty or malformed date.
func (i Item) PublishedAt() time.Time {
	t, err := time.Parse(DateLayout, i.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}

// Criteria is the active query. Empty fields impose no constraint.
type Criteria struct {
	SearchTerm string `form:"q" json:"q"`
	Category   string `form:"category" json:"category"`
	Author     string `form:"author" json:"author"`
}

// Active reports whether any constraint is set.
func (c Criteria) Active() bool {
	return c.SearchTerm != "" || c.Category != "" || c.Author != ""
}

// Reset returns criteria with every constraint cleared.
func (c Criteria) Reset() Criteria {
	return Criteria{}
}

type Options struct {
	Categories []string `json:"categories"`
	Authors    []string `json:"authors"`
}
