package source

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/lysyi3m/blog-search/app/database"
	"github.com/lysyi3m/blog-search/app/post"
)

// LoadSQLite reads every post from the SQLite database at path.
func LoadSQLite(ctx context.Context, path string) ([]post.Item, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db, err := database.NewConnection(ctx, path)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return readPosts(ctx, database.NewPostRepository(db))
}

// readPosts reads all posts and checks them against the table's row count.
func readPosts(ctx context.Context, repo database.PostRepository) ([]post.Item, error) {
	count, err := repo.GetPostCount(ctx)
	if err != nil {
		return nil, err
	}

	items, err := repo.GetAllPosts(ctx)
	if err != nil {
		return nil, err
	}

	if len(items) != count {
		return nil, fmt.Errorf("read %d posts but table holds %d", len(items), count)
	}

	slog.Debug("Posts read from database", "posts", count)

	return items, nil
}
