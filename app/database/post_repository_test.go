package database

import (
	"context"
	"path/filepath"
	"testing"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewConnection(context.Background(), filepath.Join(t.TempDir(), "posts.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func insertPost(t *testing.T, db *DB, id int, title, content, author, category, date string) {
	t.Helper()

	_, err := db.Exec(`INSERT INTO posts (id, title, content, author, category, date) VALUES (?, ?, ?, ?, ?, ?)`,
		id, title, content, author, category, date)
	if err != nil {
		t.Fatalf("Failed to insert post %d: %v", id, err)
	}
}

func TestNewConnectionAppliesMigrations(t *testing.T) {
	db := newTestDB(t)

	version, dirty, err := RunMigrations(db)
	if err != nil {
		t.Fatalf("Expected re-running migrations to succeed, got: %v", err)
	}
	if version != 1 {
		t.Errorf("Expected schema version 1, got %d", version)
	}
	if dirty {
		t.Error("Expected clean migration state")
	}
}

func TestGetAllPostsOrderedByID(t *testing.T) {
	db := newTestDB(t)
	insertPost(t, db, 3, "Web Design Trends in 2024", "Modern web design", "Mike Johnson", "Design", "2024-03-10")
	insertPost(t, db, 1, "Introduction to React Hooks", "React Hooks revolutionized", "John Doe", "Programming", "2024-01-15")
	insertPost(t, db, 2, "Machine Learning Basics", "Machine learning", "Jane Smith", "Technology", "2024-02-20")

	repo := NewPostRepository(db)
	items, err := repo.GetAllPosts(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	if len(items) != 3 {
		t.Fatalf("Expected 3 posts, got %d", len(items))
	}
	for i, item := range items {
		if item.ID != i+1 {
			t.Errorf("Expected post %d at position %d, got %d", i+1, i, item.ID)
		}
	}
	if items[0].Author != "John Doe" || items[0].Category != "Programming" || items[0].Date != "2024-01-15" {
		t.Errorf("Unexpected first post: %+v", items[0])
	}

	count, err := repo.GetPostCount(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if count != 3 {
		t.Errorf("Expected count 3, got %d", count)
	}
}

func TestGetAllPostsNullDate(t *testing.T) {
	db := newTestDB(t)

	if _, err := db.Exec(`INSERT INTO posts (id, title, author, category) VALUES (1, 'Untitled', 'Ann', 'Notes')`); err != nil {
		t.Fatalf("Failed to insert post: %v", err)
	}

	items, err := NewPostRepository(db).GetAllPosts(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("Expected 1 post, got %d", len(items))
	}
	if items[0].Date != "" || items[0].Content != "" {
		t.Errorf("Expected empty date and content, got %+v", items[0])
	}
}

func TestGetAllPostsEmpty(t *testing.T) {
	items, err := NewPostRepository(newTestDB(t)).GetAllPosts(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Errorf("Expected empty non-nil slice, got %v", items)
	}
}
