// Package source loads the dataset a session searches over. Every loader
// validates its items before a post.Dataset is built, so the rest of the
// application can rely on unique ids and non-empty required fields.
package source

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/lysyi3m/blog-search/app/post"
)

type Kind string

const (
	KindSample Kind = "sample"
	KindFile   Kind = "file"
	KindFeed   Kind = "feed"
	KindSQLite Kind = "sqlite"
)

var ErrUnknownKind = errors.New("unknown source kind")

type Options struct {
	Kind       Kind
	Path       string
	Timeout    time.Duration // feed fetch timeout, 0 means 30s
	UserAgent  string
	HTTPClient *http.Client
}

// Load reads and validates the dataset described by opts.
func Load(ctx context.Context, opts Options) (*post.Dataset, error) {
	start := time.Now()

	var (
		items []post.Item
		err   error
	)

	switch opts.Kind {
	case KindSample, "":
		items, err = LoadSample()
	case KindFile:
		items, err = LoadFile(opts.Path)
	case KindFeed:
		items, err = NewFeedLoader(opts.HTTPClient, opts.UserAgent, opts.Timeout).Load(ctx, opts.Path)
	case KindSQLite:
		items, err = LoadSQLite(ctx, opts.Path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownKind, opts.Kind)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s source: %w", opts.Kind, err)
	}

	if err := post.Validate(items); err != nil {
		return nil, fmt.Errorf("invalid dataset from %s source: %w", opts.Kind, err)
	}

	dataset := post.NewDataset(items)

	slog.Info("Dataset loaded",
		"source", opts.Kind,
		"path", opts.Path,
		"posts", dataset.Len(),
		"duration", time.Since(start))

	return dataset, nil
}
