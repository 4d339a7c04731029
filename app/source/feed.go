package source

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/lysyi3m/blog-search/app/feed"
	"github.com/lysyi3m/blog-search/app/post"
)

const DefaultFetchTimeout = 30 * time.Second

// EffectiveTimeout returns timeout, or DefaultFetchTimeout when it is not positive.
func EffectiveTimeout(timeout time.Duration) time.Duration {
	if timeout <= 0 {
		return DefaultFetchTimeout
	}
	return timeout
}

// FeedLoader turns an RSS or Atom feed, local or remote, into posts.
type FeedLoader struct {
	httpClient *http.Client
	parser     *feed.Parser
	userAgent  string
	timeout    time.Duration
}

func NewFeedLoader(httpClient *http.Client, userAgent string, timeout time.Duration) *FeedLoader {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &FeedLoader{
		httpClient: httpClient,
		parser:     feed.NewParser(),
		userAgent:  userAgent,
		timeout:    EffectiveTimeout(timeout),
	}
}

func (l *FeedLoader) Load(ctx context.Context, location string) ([]post.Item, error) {
	var (
		data []byte
		err  error
	)

	if isRemote(location) {
		data, err = l.fetchFeed(ctx, location)
	} else {
		data, err = os.ReadFile(location)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read feed: %w", err)
	}

	metadata, items, err := l.parser.Run(data)
	if err != nil {
		return nil, err
	}

	slog.Debug("Feed parsed", "feed", metadata.Title, "items", len(items))

	return items, nil
}

func (l *FeedLoader) fetchFeed(ctx context.Context, url string) ([]byte, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(timeoutCtx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if l.userAgent != "" {
		req.Header.Set("User-Agent", l.userAgent)
	}

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode, resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return data, nil
}

func isRemote(location string) bool {
	return strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://")
}
