package api

import (
	"github.com/lysyi3m/blog-search/app/feed"
	"github.com/lysyi3m/blog-search/app/post"
)

type FiltererInterface interface {
	Run(items []post.Item, criteria post.Criteria) []post.Item
	Explain(item post.Item, criteria post.Criteria) string
}

type GeneratorInterface interface {
	Run(channel feed.Channel, items []post.Item) (string, error)
}

var (
	_ FiltererInterface  = (*post.Filterer)(nil)
	_ GeneratorInterface = (*feed.Generator)(nil)
)

type Handler struct {
	dataset       *post.Dataset
	filterer      FiltererInterface
	generator     GeneratorInterface
	previewLength int
	baseUrl       string
	version       string
}

type PostsResponse struct {
	Posts    []post.Item   `json:"posts"`
	Count    int           `json:"count"`
	Summary  string        `json:"summary"`
	Criteria post.Criteria `json:"criteria"`
}

type indexPage struct {
	Title     string
	FeedURL   string
	Criteria  post.Criteria
	Options   post.Options
	Posts     []postView
	ShowReset bool
	NoResults string
	Summary   string
}

type postView struct {
	post.Item
	Preview string
}
