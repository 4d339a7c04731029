package source

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/lysyi3m/blog-search/app/post"
	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

type document struct {
	Posts []post.Item `yaml:"posts" json:"posts"`
}

// LoadFile reads a YAML (.yml, .yaml) or JSON (.json, .jsonc, .hujson) dataset file.
// JSON files may contain comments and trailing commas.
func LoadFile(path string) ([]post.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yml", ".yaml":
		return parseYAML(data)
	case ".json", ".jsonc", ".hujson":
		return parseJSON(data)
	default:
		return nil, fmt.Errorf("unsupported dataset file extension %q", ext)
	}
}

func parseYAML(data []byte) ([]post.Item, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return postsOrEmpty(doc.Posts), nil
}

func parseJSON(data []byte) ([]post.Item, error) {
	standard, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	var doc document
	if err := json.Unmarshal(standard, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode JSON: %w", err)
	}
	return postsOrEmpty(doc.Posts), nil
}

func postsOrEmpty(items []post.Item) []post.Item {
	if items == nil {
		return []post.Item{}
	}
	return items
}
