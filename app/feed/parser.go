package feed

import (
	"bytes"
	"cmp"
	"fmt"
	"strings"

	"github.com/lysyi3m/blog-search/app/post"
	"github.com/mmcdole/gofeed"
)

const (
	DefaultCategory = "Uncategorized"
	DefaultAuthor   = "Unknown"
	DefaultTitle    = "Untitled"
)

type Parser struct {
	gofeedParser *gofeed.Parser
	extractor    *ContentExtractor
}

func NewParser() *Parser {
	return &Parser{
		gofeedParser: gofeed.NewParser(),
		extractor:    NewContentExtractor(),
	}
}

// Run parses an RSS/Atom document into posts numbered 1..N in feed order.
func (p *Parser) Run(data []byte) (*Metadata, []post.Item, error) {
	feed, err := p.gofeedParser.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse feed: %w", err)
	}

	metadata := &Metadata{
		Title:       feed.Title,
		Link:        feed.Link,
		Description: feed.Description,
		Language:    feed.Language,
	}

	if feed.Author != nil {
		metadata.Author = p.formatAuthor(feed.Author.Name, feed.Author.Email)
	} else if len(feed.Authors) > 0 && feed.Authors[0] != nil {
		metadata.Author = p.formatAuthor(feed.Authors[0].Name, feed.Authors[0].Email)
	}

	items := make([]post.Item, 0, len(feed.Items))
	for i, item := range feed.Items {
		if item == nil {
			continue
		}
		items = append(items, p.normalizeItem(i+1, item, metadata))
	}

	return metadata, items, nil
}

func (p *Parser) normalizeItem(id int, item *gofeed.Item, metadata *Metadata) post.Item {
	normalized := post.Item{
		ID:       id,
		Title:    cmp.Or(strings.TrimSpace(item.Title), item.Link, DefaultTitle),
		Content:  p.extractText(cmp.Or(item.Content, item.Description)),
		Author:   cmp.Or(p.extractAuthor(item), metadata.Author, DefaultAuthor),
		Category: DefaultCategory,
	}

	for _, category := range item.Categories {
		if category = strings.TrimSpace(category); category != "" {
			normalized.Category = category
			break
		}
	}

	if item.PublishedParsed != nil {
		normalized.Date = item.PublishedParsed.Format(post.DateLayout)
	} else if item.UpdatedParsed != nil {
		normalized.Date = item.UpdatedParsed.Format(post.DateLayout)
	}

	return normalized
}

// extractText reduces HTML bodies to readable text. Plain text is returned as is,
// and so is HTML the extractor cannot handle.
func (p *Parser) extractText(body string) string {
	if !strings.Contains(body, "<") {
		return strings.TrimSpace(body)
	}

	text, err := p.extractor.Run([]byte(body))
	if err != nil {
		return strings.TrimSpace(body)
	}
	return text
}

func (p *Parser) extractAuthor(item *gofeed.Item) string {
	for _, author := range item.Authors {
		if author == nil {
			continue
		}
		if name := p.formatAuthor(author.Name, author.Email); name != "" {
			return name
		}
	}

	if item.Author != nil {
		return p.formatAuthor(item.Author.Name, item.Author.Email)
	}

	return ""
}

// formatAuthor prefers the display name; the email is only used when no name is given.
func (p *Parser) formatAuthor(name, email string) string {
	return cmp.Or(strings.TrimSpace(name), strings.TrimSpace(email))
}
