package source

import (
	_ "embed"

	"github.com/lysyi3m/blog-search/app/post"
)

//go:embed sample/posts.yml
var sampleYAML []byte

// LoadSample returns the built-in four-post dataset.
func LoadSample() ([]post.Item, error) {
	return parseYAML(sampleYAML)
}
