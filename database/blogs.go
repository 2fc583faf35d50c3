package database

import (
	"database/sql"
	"fmt"
	"time"

	"drama-bot/models"
)

// InsertBlog saves a new blog entry.
func InsertBlog(db *sql.DB, blog models.BlogEntry) error {
	query := `INSERT INTO blogs (title, content, image_url, excerpt, created_at) VALUES (?, ?, ?, ?, ?)`

	stmt, err := db.Prepare(query)
	if err != nil {
		return fmt.Errorf("failed to prepare statement for saving blog: %w", err)
	}
	defer stmt.Close()

	created := blog.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}

	if _, err := stmt.Exec(blog.Title, blog.Content, blog.ImageURL, blog.Excerpt, created); err != nil {
		return fmt.Errorf("failed to execute statement for saving blog %q: %w", blog.Title, err)
	}
	return nil
}

// GetRecentBlogs returns the most recent blog entries, newest first.
func GetRecentBlogs(db *sql.DB, limit int) ([]models.BlogEntry, error) {
	query := `SELECT id, title, content, image_url, excerpt, created_at
	          FROM blogs ORDER BY created_at DESC LIMIT ?`

	rows, err := db.Query(query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query blogs: %w", err)
	}
	defer rows.Close()

	var blogs []models.BlogEntry
	for rows.Next() {
		var b models.BlogEntry
		if err := rows.Scan(&b.ID, &b.Title, &b.Content, &b.ImageURL, &b.Excerpt, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan blog entry: %w", err)
		}
		blogs = append(blogs, b)
	}
	return blogs, rows.Err()
}
