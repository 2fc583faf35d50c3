package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"drama-bot/models"
)

// InsertPost saves a new post. The file name list is stored as a JSON array.
func InsertPost(db *sql.DB, post models.Post) error {
	names, err := json.Marshal(post.FileNames)
	if err != nil {
		return fmt.Errorf("failed to encode file names: %w", err)
	}

	now := time.Now()
	query := `INSERT INTO posts (title, image_url, channel_link, files_count, file_names, section, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	stmt, err := db.Prepare(query)
	if err != nil {
		return fmt.Errorf("failed to prepare statement for saving post: %w", err)
	}
	defer stmt.Close()

	_, err = stmt.Exec(
		post.Title,
		post.ImageURL,
		post.ChannelLink,
		post.FilesCount,
		string(names),
		post.Section,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("failed to execute statement for saving post %q: %w", post.Title, err)
	}

	return nil
}

// GetPostByTitle returns the first post matching the title case-insensitively,
// or nil when no post matches.
func GetPostByTitle(db *sql.DB, title string) (*models.Post, error) {
	query := `SELECT id, title, image_url, channel_link, files_count, file_names, section, created_at, updated_at
	          FROM posts WHERE title = ? COLLATE NOCASE LIMIT 1`

	post, err := scanPost(db.QueryRow(query, title))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query post %q: %w", title, err)
	}
	return post, nil
}

// GetPostsBySection returns all posts in a section, newest first.
func GetPostsBySection(db *sql.DB, section string) ([]models.Post, error) {
	query := `SELECT id, title, image_url, channel_link, files_count, file_names, section, created_at, updated_at
	          FROM posts WHERE section = ? ORDER BY created_at DESC`

	rows, err := db.Query(query, section)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts for section %s: %w", section, err)
	}
	defer rows.Close()

	return collectPosts(rows)
}

// GetAllPosts returns every post, newest first.
func GetAllPosts(db *sql.DB) ([]models.Post, error) {
	query := `SELECT id, title, image_url, channel_link, files_count, file_names, section, created_at, updated_at
	          FROM posts ORDER BY created_at DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	return collectPosts(rows)
}

// UpdatePostSection moves a post to a new section by title. This is the only
// mutation a post ever receives.
func UpdatePostSection(db *sql.DB, title, section string) error {
	query := `UPDATE posts SET section = ?, updated_at = ? WHERE title = ? COLLATE NOCASE`

	stmt, err := db.Prepare(query)
	if err != nil {
		return fmt.Errorf("failed to prepare statement for updating post section: %w", err)
	}
	defer stmt.Close()

	res, err := stmt.Exec(section, time.Now(), title)
	if err != nil {
		return fmt.Errorf("failed to update section for post %q: %w", title, err)
	}

	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("no post found with title %q", title)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*models.Post, error) {
	var post models.Post
	var names string
	err := row.Scan(
		&post.ID,
		&post.Title,
		&post.ImageURL,
		&post.ChannelLink,
		&post.FilesCount,
		&names,
		&post.Section,
		&post.CreatedAt,
		&post.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if names != "" {
		if err := json.Unmarshal([]byte(names), &post.FileNames); err != nil {
			return nil, fmt.Errorf("failed to decode file names for post %q: %w", post.Title, err)
		}
	}
	return &post, nil
}

func collectPosts(rows *sql.Rows) ([]models.Post, error) {
	var posts []models.Post
	for rows.Next() {
		post, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, *post)
	}
	return posts, rows.Err()
}
