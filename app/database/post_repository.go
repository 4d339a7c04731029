package database

import (
	"context"
	"fmt"

	"github.com/lysyi3m/blog-search/app/post"
)

type PostRepository interface {
	GetAllPosts(ctx context.Context) ([]post.Item, error)
	GetPostCount(ctx context.Context) (int, error)
}

var _ PostRepository = (*SQLPostRepository)(nil)

// SQLPostRepository reads posts; the dataset is never written through it.
type SQLPostRepository struct {
	db *DB
}

func NewPostRepository(db *DB) *SQLPostRepository {
	return &SQLPostRepository{db: db}
}

// GetAllPosts returns every post in id order.
func (r *SQLPostRepository) GetAllPosts(ctx context.Context) ([]post.Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, COALESCE(content, ''), author, category, COALESCE(date, '')
		FROM posts
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	items := []post.Item{}
	for rows.Next() {
		var item post.Item
		if err := rows.Scan(&item.ID, &item.Title, &item.Content, &item.Author, &item.Category, &item.Date); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}

	return items, nil
}

func (r *SQLPostRepository) GetPostCount(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM posts`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count posts: %w", err)
	}
	return count, nil
}
